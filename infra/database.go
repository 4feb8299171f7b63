package infra

import (
	"errors"
	"time"

	"github.com/mbeller/hauskasse/pkg/config"
	"github.com/mbeller/hauskasse/pkg/domain"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDBConnection opens the pooled Postgres connection the repositories
// share. GORM's SQL logging is only enabled in development.
func NewDBConnection(cnf config.DB, appEnv string) (*gorm.DB, error) {
	if cnf.Url == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}

	logMode := logger.Silent
	if appEnv == "development" {
		logMode = logger.Info
	}

	connection, err := gorm.Open(postgres.Open(cnf.Url), &gorm.Config{
		Logger:                 logger.Default.LogMode(logMode),
		TranslateError:         true,
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := connection.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(cnf.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cnf.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(1 * time.Hour)

	return connection, nil
}

// Migrate keeps the schema in step with the entity model. Column naming
// quirks (such as accounts.ibannumber) live in the gorm tags, not here.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.Country{},
		&domain.Currency{},
		&domain.Bank{},
		&domain.Account{},
		&domain.Balance{},
		&domain.Transaction{},
		&domain.ServiceUser{},
		&domain.Salary{},
		&domain.Room{},
		&domain.HouseThing{},
		&domain.Supplier{},
	)
}
