package fx

import (
	"time"

	"go.uber.org/fx"

	"github.com/santiagopugliese/personal-finances/config"
	"github.com/santiagopugliese/personal-finances/internal/bluelytics"
	"github.com/santiagopugliese/personal-finances/internal/domain/category"
	"github.com/santiagopugliese/personal-finances/internal/domain/rate"
	"github.com/santiagopugliese/personal-finances/internal/domain/report"
	"github.com/santiagopugliese/personal-finances/internal/domain/transaction"
	"github.com/santiagopugliese/personal-finances/internal/infrastructure"
)

var DomainModule = fx.Module("domain",
	fx.Provide(
		newCategoryService,
		newRateService,
		newTransactionService,
		newReportService,
	),
)

func newCategoryService(repo *infrastructure.CategoryRepository) *category.Service {
	return &category.Service{Repository: repo}
}

func newRateService(
	cfg *config.Config,
	repo *infrastructure.RateRepository,
	source *bluelytics.Client,
) (*rate.Service, error) {
	location, err := time.LoadLocation(cfg.Rates.Timezone)
	if err != nil {
		return nil, err
	}
	return &rate.Service{
		Repository: repo,
		Source:     source,
		Location:   location,
	}, nil
}

func newTransactionService(
	repo *infrastructure.TransactionRepository,
	categorySvc *category.Service,
	rateSvc *rate.Service,
) *transaction.Service {
	return &transaction.Service{
		Repository: repo,
		Categories: categorySvc,
		Rates:      rateSvc,
	}
}

func newReportService(repo *infrastructure.ReportRepository) *report.Service {
	return &report.Service{Repository: repo}
}
