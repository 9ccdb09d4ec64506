package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/santiagopugliese/personal-finances/internal/contracts"
)

func (h *Handler) GetLatestRate(c *gin.Context) {
	ctx := c.Request.Context()
	latest, err := h.RateService.Latest(ctx)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.RateSingleResponse{
		Rate: contracts.NewRateResponse(latest),
	})
}

// RefreshRate pulls a fresh quote from the external feed and stores it
// for today's date, overwriting any earlier quote for the same day.
func (h *Handler) RefreshRate(c *gin.Context) {
	ctx := c.Request.Context()
	refreshed, err := h.RateService.Refresh(ctx)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.RateSingleResponse{
		Rate: contracts.NewRateResponse(refreshed),
	})
}
