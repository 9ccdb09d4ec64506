package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/santiagopugliese/personal-finances/internal/contracts"
	"github.com/santiagopugliese/personal-finances/internal/domain/transaction"
	appErrors "github.com/santiagopugliese/personal-finances/internal/errors"
	"github.com/santiagopugliese/personal-finances/internal/pkg"
)

func (h *Handler) CreateTransaction(c *gin.Context) {
	var body contracts.TransactionCreateRequest

	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	input, err := body.ToInput()
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	created, err := h.TransactionService.CreateTransaction(ctx, userID, *input)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.TransactionSingleResponse{
		Transaction: contracts.NewTransactionResponse(created),
	})
}

func (h *Handler) GetTransactions(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	filters, err := h.parseTransactionFilters(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	pagination := h.parsePagination(c)

	ctx := c.Request.Context()
	transactions, total, err := h.TransactionService.GetAllTransactions(ctx, userID, filters, pagination)
	if err != nil {
		h.respondError(c, err)
		return
	}

	responses := make([]*contracts.TransactionResponse, 0, len(transactions))
	for _, t := range transactions {
		responses = append(responses, contracts.NewTransactionResponse(t))
	}

	c.JSON(http.StatusOK, pkg.NewPaginatedResponse(responses, pagination.Page, pagination.Limit, total))
}

func (h *Handler) GetTransaction(c *gin.Context) {
	transactionID, err := pkg.ParseULID(c.Param("id"))
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
	transactionEntity, err := h.TransactionService.GetTransactionByID(ctx, transactionID, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.TransactionSingleResponse{
		Transaction: contracts.NewTransactionResponse(transactionEntity),
	})
}

func (h *Handler) UpdateTransaction(c *gin.Context) {
	transactionID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "no es un identificador válido"))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var body contracts.TransactionUpdateRequest
	if err = c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	patch, err := body.ToPatch()
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	updated, err := h.TransactionService.UpdateTransaction(ctx, transactionID, userID, *patch)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.TransactionSingleResponse{
		Transaction: contracts.NewTransactionResponse(updated),
	})
}

func (h *Handler) DeleteTransaction(c *gin.Context) {
	transactionID, err := pkg.ParseULID(c.Param("id"))
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
	if err := h.TransactionService.DeleteTransaction(ctx, transactionID, userID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Transacción eliminada con éxito"})
}

func (h *Handler) parseTransactionFilters(c *gin.Context) (*transaction.Filters, error) {
	filters := &transaction.Filters{}

	if typeStr := c.Query("type"); typeStr != "" {
		t := transaction.Types(typeStr)
		if t != transaction.Income && t != transaction.Expense {
			return nil, appErrors.NewValidationError("type", "debe ser 'income' o 'expense'")
		}
		filters.Type = &t
	}

	if categoryIDStr := c.Query("category_id"); categoryIDStr != "" {
		categoryID, err := pkg.ParseULID(categoryIDStr)
		if err != nil {
			return nil, appErrors.NewValidationError("category_id", "no es un identificador válido")
		}
		filters.CategoryID = &categoryID
	}

	var err error
	if filters.DateFrom, err = parseDateQuery(c, "date_from"); err != nil {
		return nil, err
	}
	if filters.DateTo, err = parseDateQuery(c, "date_to"); err != nil {
		return nil, err
	}

	return filters, nil
}

func parseDateQuery(c *gin.Context, name string) (*time.Time, error) {
	value := c.Query(name)
	if value == "" {
		return nil, nil
	}
	date, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, appErrors.NewValidationError(name, "debe tener formato YYYY-MM-DD")
	}
	return &date, nil
}
