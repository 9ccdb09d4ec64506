package category

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"

	appErrors "github.com/santiagopugliese/personal-finances/internal/errors"
	"github.com/santiagopugliese/personal-finances/internal/pkg"
)

type Service struct {
	Repository Repository
}

// Patch carries a partial category update. Neither field accepts null,
// so plain pointers are enough here.
type Patch struct {
	Name  *string
	Color *string
}

func (s *Service) CreateCategory(ctx context.Context, userID, name, color string) (*Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, appErrors.NewValidationError("name", "es obligatorio")
	}

	if err := s.ensureNameAvailable(ctx, name, userID); err != nil {
		return nil, err
	}

	if color == "" {
		color = DefaultColor
	}

	now := time.Now()
	cat := &Category{
		Id:        pkg.GenerateULID(),
		UserId:    userID,
		Name:      name,
		Color:     color,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.Repository.Create(ctx, cat); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	return cat, nil
}

func (s *Service) UpdateCategory(ctx context.Context, categoryID ulid.ULID, userID string, patch Patch) (*Category, error) {
	existing, err := s.GetCategoryByID(ctx, categoryID, userID)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return nil, appErrors.NewValidationError("name", "es obligatorio")
		}
		if !strings.EqualFold(existing.Name, name) {
			if err := s.ensureNameAvailable(ctx, name, userID); err != nil {
				return nil, err
			}
		}
		existing.Name = name
	}

	if patch.Color != nil {
		existing.Color = *patch.Color
	}

	existing.UpdatedAt = time.Now()

	if err := s.Repository.Update(ctx, existing); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	return existing, nil
}

// DeleteCategory removes the category; transactions that referenced it
// keep existing with a cleared category_id (FK is ON DELETE SET NULL).
func (s *Service) DeleteCategory(ctx context.Context, categoryID ulid.ULID, userID string) error {
	if _, err := s.GetCategoryByID(ctx, categoryID, userID); err != nil {
		return err
	}

	if err := s.Repository.Delete(ctx, categoryID, userID); err != nil {
		return appErrors.NewDatabaseError(err)
	}

	return nil
}

func (s *Service) GetCategoryByID(ctx context.Context, categoryID ulid.ULID, userID string) (*Category, error) {
	cat, err := s.Repository.GetByID(ctx, categoryID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrCategoryNotFound
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return cat, nil
}

func (s *Service) GetAllCategories(ctx context.Context, userID string) ([]*Category, error) {
	cats, err := s.Repository.GetAll(ctx, userID)
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return cats, nil
}

// Exists reports whether the category belongs to the user. It is the
// referential check the transaction service runs before accepting a
// category_id.
func (s *Service) Exists(ctx context.Context, categoryID ulid.ULID, userID string) (bool, error) {
	ok, err := s.Repository.Exists(ctx, categoryID, userID)
	if err != nil {
		return false, appErrors.NewDatabaseError(err)
	}
	return ok, nil
}

func (s *Service) ensureNameAvailable(ctx context.Context, name, userID string) error {
	_, err := s.Repository.GetByName(ctx, name, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return appErrors.NewConflictError("La categoría")
}
