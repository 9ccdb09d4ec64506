package infrastructure

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/santiagopugliese/personal-finances/config"
	"github.com/santiagopugliese/personal-finances/internal/domain/category"
	"github.com/santiagopugliese/personal-finances/internal/domain/rate"
	"github.com/santiagopugliese/personal-finances/internal/domain/transaction"
	"github.com/santiagopugliese/personal-finances/internal/logger"
)

func NewDb(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.Error().
			Err(err).
			Str("host", cfg.Database.Host).
			Int("port", cfg.Database.Port).
			Str("database", cfg.Database.DBName).
			Msg("Fallo al conectar a la base de datos")
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Error().Err(err).Msg("Fallo al obtener la instancia de la base de datos")
		return nil, err
	}

	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	logger.Info().
		Str("host", cfg.Database.Host).
		Int("port", cfg.Database.Port).
		Str("database", cfg.Database.DBName).
		Msg("Conexión a la base de datos establecida")

	if err := runMigrations(db); err != nil {
		return nil, err
	}

	return db, nil
}

func runMigrations(db *gorm.DB) error {
	logger.Info().Msg("Ejecutando migraciones...")

	entities := []interface{}{
		&category.Category{},
		&transaction.Transaction{},
		&rate.ExchangeRate{},
	}

	for _, entity := range entities {
		if err := db.AutoMigrate(entity); err != nil {
			logger.Error().Err(err).Msg("Error al migrar entidad")
			return err
		}
	}

	if err := ensureCategoryFK(db); err != nil {
		logger.Warn().Err(err).Msg("Aviso al ajustar la FK de category_id")
	}

	logger.Info().Msg("Migraciones ejecutadas con éxito")
	return nil
}

// ensureCategoryFK makes deleting a category clear category_id on its
// transactions instead of failing or cascading.
func ensureCategoryFK(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	statements := []string{
		`ALTER TABLE transactions DROP CONSTRAINT IF EXISTS fk_transactions_category`,
		`ALTER TABLE transactions
			ADD CONSTRAINT fk_transactions_category
			FOREIGN KEY (category_id) REFERENCES categories(id)
			ON DELETE SET NULL`,
	}

	for _, stmt := range statements {
		if _, err := sqlDB.Exec(stmt); err != nil {
			return err
		}
	}

	return nil
}
