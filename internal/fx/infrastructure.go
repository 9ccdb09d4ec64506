package fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/santiagopugliese/personal-finances/config"
	"github.com/santiagopugliese/personal-finances/internal/bluelytics"
	"github.com/santiagopugliese/personal-finances/internal/infrastructure"
)

var InfrastructureModule = fx.Module("infrastructure",
	fx.Provide(
		newDatabase,
		newTransactionRepository,
		newCategoryRepository,
		newRateRepository,
		newReportRepository,
		newBluelyticsClient,
	),
)

func newDatabase(cfg *config.Config) (*gorm.DB, error) {
	return infrastructure.NewDb(cfg)
}

func newTransactionRepository(db *gorm.DB) *infrastructure.TransactionRepository {
	return &infrastructure.TransactionRepository{DB: db}
}

func newCategoryRepository(db *gorm.DB) *infrastructure.CategoryRepository {
	return &infrastructure.CategoryRepository{DB: db}
}

func newRateRepository(db *gorm.DB) *infrastructure.RateRepository {
	return &infrastructure.RateRepository{DB: db}
}

func newReportRepository(db *gorm.DB) *infrastructure.ReportRepository {
	return &infrastructure.ReportRepository{DB: db}
}

func newBluelyticsClient(cfg *config.Config) *bluelytics.Client {
	return bluelytics.NewClient(cfg.Rates)
}
