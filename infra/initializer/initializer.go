// Package initializer wires configuration, logging, database and
// services into the dependency set the API and CLI run on.
package initializer

import (
	"fmt"
	"log/slog"

	"github.com/mbeller/hauskasse/infra"
	gormrepo "github.com/mbeller/hauskasse/infra/repository"
	"github.com/mbeller/hauskasse/pkg/config"
	"github.com/mbeller/hauskasse/pkg/domain"
	"github.com/mbeller/hauskasse/pkg/service"
	"github.com/mbeller/hauskasse/webapi"
)

// InitializeDependencies connects to the database, runs the schema
// migration and builds every service.
func InitializeDependencies(cfg *config.App) (webapi.Deps, *slog.Logger, error) {
	logger := setupLogger(cfg.Log)

	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		return webapi.Deps{}, nil, fmt.Errorf("connecting to database: %w", err)
	}
	if err := infra.Migrate(db); err != nil {
		return webapi.Deps{}, nil, fmt.Errorf("migrating schema: %w", err)
	}

	users := service.NewServiceUserService(
		gormrepo.New[domain.ServiceUser](db), logger)

	deps := webapi.Deps{
		Accounts: service.NewAccountService(
			gormrepo.New[domain.Account](db, "Currency", "Bank"), logger),
		Balances: service.NewBalanceService(
			gormrepo.New[domain.Balance](db, "Account"), logger),
		Banks: service.NewBankService(
			gormrepo.New[domain.Bank](db, "Country"), logger),
		Countries: service.NewCountryService(
			gormrepo.New[domain.Country](db), logger),
		Currencies: service.NewCurrencyService(
			gormrepo.New[domain.Currency](db), logger),
		Transactions: service.NewTransactionService(
			gormrepo.New[domain.Transaction](db, "Account"), logger),
		Salaries: service.NewSalaryService(
			gormrepo.New[domain.Salary](db, "User", "Currency"), logger),
		Users: users,
		HouseThings: service.NewHouseThingService(
			gormrepo.New[domain.HouseThing](db, "Room"), logger),
		Rooms: service.NewRoomService(
			gormrepo.New[domain.Room](db), logger),
		Suppliers: service.NewSupplierService(
			gormrepo.New[domain.Supplier](db, "Country"), logger),
		Auth: service.NewAuthService(users, cfg.Jwt, logger),
	}
	return deps, logger, nil
}
