package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/santiagopugliese/personal-finances/internal/contracts"
	"github.com/santiagopugliese/personal-finances/internal/domain/category"
	appErrors "github.com/santiagopugliese/personal-finances/internal/errors"
	"github.com/santiagopugliese/personal-finances/internal/pkg"
)

func (h *Handler) CreateCategory(c *gin.Context) {
	var body contracts.CategoryCreateRequest

	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	created, err := h.CategoryService.CreateCategory(ctx, userID, body.Name, body.Color)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.CategorySingleResponse{
		Category: contracts.NewCategoryResponse(created),
	})
}

func (h *Handler) ListCategories(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	categories, err := h.CategoryService.GetAllCategories(ctx, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	responses := make([]*contracts.CategoryResponse, 0, len(categories))
	for _, cat := range categories {
		responses = append(responses, contracts.NewCategoryResponse(cat))
	}

	c.JSON(http.StatusOK, contracts.CategoryListResponse{
		Categories: responses,
		Total:      len(responses),
	})
}

func (h *Handler) GetCategory(c *gin.Context) {
	categoryID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "no es un identificador válido"))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	categoryEntity, err := h.CategoryService.GetCategoryByID(ctx, categoryID, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.CategorySingleResponse{
		Category: contracts.NewCategoryResponse(categoryEntity),
	})
}

func (h *Handler) UpdateCategory(c *gin.Context) {
	categoryID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "no es un identificador válido"))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var body contracts.CategoryUpdateRequest
	if err = c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	ctx := c.Request.Context()
	updated, err := h.CategoryService.UpdateCategory(ctx, categoryID, userID, category.Patch{
		Name:  body.Name,
		Color: body.Color,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.CategorySingleResponse{
		Category: contracts.NewCategoryResponse(updated),
	})
}

func (h *Handler) DeleteCategory(c *gin.Context) {
	categoryID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "no es un identificador válido"))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	if err := h.CategoryService.DeleteCategory(ctx, categoryID, userID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Categoría eliminada con éxito"})
}
