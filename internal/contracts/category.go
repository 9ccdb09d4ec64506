package contracts

import (
	"time"

	"github.com/santiagopugliese/personal-finances/internal/domain/category"
)

type CategoryCreateRequest struct {
	Name  string `json:"name" binding:"required,max=100"`
	Color string `json:"color" binding:"omitempty,hexcolor"`
}

type CategoryUpdateRequest struct {
	Name  *string `json:"name" binding:"omitempty,max=100"`
	Color *string `json:"color" binding:"omitempty,hexcolor"`
}

type CategoryResponse struct {
	Id        string    `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewCategoryResponse(c *category.Category) *CategoryResponse {
	return &CategoryResponse{
		Id:        c.Id.String(),
		Name:      c.Name,
		Color:     c.Color,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

type CategorySingleResponse struct {
	Category *CategoryResponse `json:"category"`
}

type CategoryListResponse struct {
	Categories []*CategoryResponse `json:"categories"`
	Total      int                 `json:"total"`
}
