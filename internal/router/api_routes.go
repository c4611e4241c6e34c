package router

import (
	"general-ledger/internal/config"
	"general-ledger/internal/handler"
	"general-ledger/internal/repository"
	"general-ledger/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
)

func SetupAPIRoutes(
	router fiber.Router,
	db *sqlx.DB,
	redis *redis.Client,
	cfg *config.Config,
) {
	// Initialize repositories
	accountRepo := repository.NewAccountRepository(db)
	typeRepo := repository.NewAccountTypeRepository(db)
	journalRepo := repository.NewJournalRepository(db)
	openingRepo := repository.NewOpeningBalanceRepository(db)

	// Initialize services
	treeService := service.NewAccountTreeService(accountRepo, typeRepo, journalRepo)
	sequenceService := service.NewSequenceService(journalRepo, redis)
	ledgerService := service.NewLedgerService(journalRepo, accountRepo, sequenceService)
	balanceService := service.NewBalanceService(accountRepo, typeRepo, journalRepo, openingRepo)
	reportService := service.NewReportService(balanceService)

	// Initialize handlers
	accountHandler := handler.NewAccountHandler(treeService, accountRepo, typeRepo, openingRepo)
	journalHandler := handler.NewJournalHandler(ledgerService)
	reportHandler := handler.NewReportHandler(reportService)

	// Master data
	accountTypes := router.Group("/account-types")
	accountTypes.Get("/", accountHandler.GetAccountTypes)
	accountTypes.Post("/", accountHandler.CreateAccountType)

	accounts := router.Group("/accounts")
	accounts.Get("/", accountHandler.GetAccounts)
	accounts.Post("/", accountHandler.CreateAccount)
	accounts.Get("/roots", accountHandler.GetRoots)
	accounts.Get("/:id", accountHandler.GetAccount)
	accounts.Put("/:id", accountHandler.UpdateAccount)
	accounts.Delete("/:id", accountHandler.DeactivateAccount)
	accounts.Get("/:id/children", accountHandler.GetChildren)
	accounts.Put("/:id/parent", accountHandler.ReparentAccount)
	accounts.Get("/:id/opening-balance", accountHandler.GetOpeningBalance)
	accounts.Put("/:id/opening-balance", accountHandler.SetOpeningBalance)

	// Journal
	journal := router.Group("/journal-entries")
	journal.Get("/", journalHandler.GetEntries)
	journal.Post("/", journalHandler.CreateEntry)
	journal.Get("/:id", journalHandler.GetEntry)
	journal.Put("/:id", journalHandler.UpdateEntry)
	journal.Post("/:id/reverse", journalHandler.ReverseEntry)

	// Reports
	reports := router.Group("/reports")
	reports.Get("/trial-balance", reportHandler.GetTrialBalance)
	reports.Get("/balance-sheet", reportHandler.GetBalanceSheet)
	reports.Get("/income-statement", reportHandler.GetIncomeStatement)
	reports.Get("/cash-flow", reportHandler.GetCashFlowStatement)
}
