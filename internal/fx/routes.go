package fx

import (
	"context"
	"time"

	"go.uber.org/fx"

	"github.com/santiagopugliese/personal-finances/internal/domain/category"
	"github.com/santiagopugliese/personal-finances/internal/domain/rate"
	"github.com/santiagopugliese/personal-finances/internal/domain/report"
	"github.com/santiagopugliese/personal-finances/internal/domain/transaction"
	"github.com/santiagopugliese/personal-finances/internal/middleware"
	"github.com/santiagopugliese/personal-finances/internal/routes"
)

var RoutesModule = fx.Module("routes",
	fx.Provide(
		newHandler,
		newRateLimiter,
	),
)

func newHandler(
	transactionSvc *transaction.Service,
	categorySvc *category.Service,
	rateSvc *rate.Service,
	reportSvc *report.Service,
) *routes.Handler {
	return &routes.Handler{
		TransactionService: transactionSvc,
		CategoryService:    categorySvc,
		RateService:        rateSvc,
		ReportService:      reportSvc,
	}
}

func newRateLimiter(lc fx.Lifecycle) *middleware.RateLimiter {
	limiter := middleware.NewRateLimiter(100, time.Minute)

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			limiter.Stop()
			return nil
		},
	})

	return limiter
}
