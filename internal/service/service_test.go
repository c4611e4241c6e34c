package service_test

import (
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"general-ledger/internal/database"
	"general-ledger/internal/models"
	"general-ledger/internal/repository"
	"general-ledger/internal/service"
)

// testEnv wires the real repositories and services against an in-memory
// sqlite database, so tests cover the same SQL the MySQL deployment runs.
type testEnv struct {
	db          *sqlx.DB
	accountRepo *repository.AccountRepository
	typeRepo    *repository.AccountTypeRepository
	journalRepo *repository.JournalRepository
	openingRepo *repository.OpeningBalanceRepository

	tree    *service.AccountTreeService
	ledger  *service.LedgerService
	balance *service.BalanceService
	reports *service.ReportService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := database.NewSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	accountRepo := repository.NewAccountRepository(db)
	typeRepo := repository.NewAccountTypeRepository(db)
	journalRepo := repository.NewJournalRepository(db)
	openingRepo := repository.NewOpeningBalanceRepository(db)

	sequence := service.NewSequenceService(journalRepo, nil)
	balance := service.NewBalanceService(accountRepo, typeRepo, journalRepo, openingRepo)

	return &testEnv{
		db:          db,
		accountRepo: accountRepo,
		typeRepo:    typeRepo,
		journalRepo: journalRepo,
		openingRepo: openingRepo,
		tree:        service.NewAccountTreeService(accountRepo, typeRepo, journalRepo),
		ledger:      service.NewLedgerService(journalRepo, accountRepo, sequence),
		balance:     balance,
		reports:     service.NewReportService(balance),
	}
}

func (env *testEnv) createType(t *testing.T, name, normalBalance, cashFlowCategory string) *models.AccountType {
	t.Helper()
	accountType := &models.AccountType{
		Name:             name,
		NormalBalance:    normalBalance,
		CashFlowCategory: cashFlowCategory,
		IsActive:         true,
	}
	require.NoError(t, env.typeRepo.Create(accountType))
	return accountType
}

func (env *testEnv) createAccount(t *testing.T, code, name string, typeID int, parentID *int) *models.Account {
	t.Helper()
	account, err := env.tree.Create(models.AccountRequest{
		AccountCode:     code,
		AccountName:     name,
		AccountTypeID:   typeID,
		ParentAccountID: parentID,
	})
	require.NoError(t, err)
	return account
}

// standardChart seeds the five base account types and returns them keyed
// by name.
func (env *testEnv) standardChart(t *testing.T) map[string]*models.AccountType {
	t.Helper()
	return map[string]*models.AccountType{
		"Asset":     env.createType(t, "Asset", models.NormalDebit, models.CashFlowNone),
		"Liability": env.createType(t, "Liability", models.NormalCredit, models.CashFlowFinancing),
		"Equity":    env.createType(t, "Equity", models.NormalCredit, models.CashFlowNone),
		"Revenue":   env.createType(t, "Revenue", models.NormalCredit, models.CashFlowOperating),
		"Expense":   env.createType(t, "Expense", models.NormalDebit, models.CashFlowOperating),
	}
}

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return parsed
}

func debit(accountID int, amount string) models.JournalLineRequest {
	return models.JournalLineRequest{AccountID: accountID, DebitAmount: dec(amount)}
}

func credit(accountID int, amount string) models.JournalLineRequest {
	return models.JournalLineRequest{AccountID: accountID, CreditAmount: dec(amount)}
}

func dec(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func intPtr(v int) *int {
	return &v
}
