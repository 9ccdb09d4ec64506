package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/santiagopugliese/personal-finances/internal/contracts"
	appErrors "github.com/santiagopugliese/personal-finances/internal/errors"
)

// GetMonthlyReport aggregates the user's transactions per month and
// category. An optional month query param (YYYY-MM) restricts the
// result to one calendar month.
func (h *Handler) GetMonthlyReport(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var month *time.Time
	if monthStr := c.Query("month"); monthStr != "" {
		parsed, err := time.Parse("2006-01", monthStr)
		if err != nil {
			h.respondError(c, appErrors.NewValidationError("month", "debe tener formato YYYY-MM"))
			return
		}
		month = &parsed
	}

	ctx := c.Request.Context()
	rows, err := h.ReportService.GetMonthlySummary(ctx, userID, month)
	if err != nil {
		h.respondError(c, err)
		return
	}

	responses := make([]*contracts.MonthlyCategoryResponse, 0, len(rows))
	for _, row := range rows {
		responses = append(responses, contracts.NewMonthlyCategoryResponse(row))
	}

	c.JSON(http.StatusOK, contracts.MonthlyReportResponse{
		Rows:  responses,
		Total: len(responses),
	})
}
