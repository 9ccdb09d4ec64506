package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/santiagopugliese/personal-finances/internal/domain/category"
	"github.com/santiagopugliese/personal-finances/internal/domain/rate"
	"github.com/santiagopugliese/personal-finances/internal/domain/report"
	"github.com/santiagopugliese/personal-finances/internal/domain/transaction"
	appErrors "github.com/santiagopugliese/personal-finances/internal/errors"
	"github.com/santiagopugliese/personal-finances/internal/logger"
	"github.com/santiagopugliese/personal-finances/internal/pkg"
)

type Handler struct {
	TransactionService *transaction.Service
	CategoryService    *category.Service
	RateService        *rate.Service
	ReportService      *report.Service
}

func (h *Handler) GetUserIDFromContext(c *gin.Context) (string, error) {
	userIDValue, exists := c.Get("user_id")
	if !exists {
		return "", appErrors.ErrUnauthorized
	}

	userID, ok := userIDValue.(string)
	if !ok || userID == "" {
		return "", appErrors.ErrUnauthorized
	}

	return userID, nil
}

func (h *Handler) parsePagination(c *gin.Context) *pkg.PaginationParams {
	page := c.DefaultQuery("page", "1")
	limit := c.DefaultQuery("limit", "50")

	var pageNum, limitNum int
	if p, err := pkg.ParseInt(page); err == nil && p > 0 {
		pageNum = p
	} else {
		pageNum = 1
	}

	if l, err := pkg.ParseInt(limit); err == nil && l > 0 {
		limitNum = l
	} else {
		limitNum = 50
	}

	return &pkg.PaginationParams{
		Page:  pageNum,
		Limit: limitNum,
	}
}

func (h *Handler) respondError(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	event := logger.Error().Str("code", appErr.Code).Str("path", c.FullPath())
	if appErr.Err != nil {
		event = event.Err(appErr.Err)
	}
	event.Msg("request_error")
	payload := gin.H{
		"error":   appErr.Code,
		"message": appErr.Message,
	}
	if len(appErr.Details) > 0 {
		payload["details"] = appErr.Details
	}
	c.JSON(appErr.StatusCode, payload)
}
