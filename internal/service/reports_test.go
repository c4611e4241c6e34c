package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"general-ledger/internal/models"
)

func TestTrialBalance(t *testing.T) {
	env := newTestEnv(t)
	parent, _, _, _, _ := seedExpenseTree(t, env)

	report := env.reports.TrialBalance(nil, mustDate(t, "2024-01-31"))
	require.NotNil(t, report)
	require.Len(t, report.Rows, 5)

	// Rows come back in lexical code order.
	codes := make([]string, 0, len(report.Rows))
	for _, row := range report.Rows {
		codes = append(codes, row.AccountCode)
	}
	assert.Equal(t, []string{"1000", "4000", "5000", "5100", "5200"}, codes)

	// A balanced ledger books every unit twice.
	assert.True(t, report.TotalDebit.Equal(report.TotalCredit), "debit %s credit %s", report.TotalDebit, report.TotalCredit)
	assert.True(t, report.TotalDebit.Equal(dec("300")))

	byCode := map[string]models.TrialBalanceRow{}
	for _, row := range report.Rows {
		byCode[row.AccountCode] = row
	}
	assert.True(t, byCode["5000"].ClosingBalance.IsZero())
	assert.True(t, byCode["5000"].TotalBalance.Equal(dec("100")))
	assert.True(t, byCode["1000"].ClosingBalance.Equal(dec("100")), "cash 200 in, 100 out")
	assert.Equal(t, "Expense", byCode["5100"].AccountType)
	assert.Equal(t, &parent.ID, byCode["5100"].ParentID)
}

func TestIncomeStatementBucketsExpenses(t *testing.T) {
	env := newTestEnv(t)
	seedExpenseTree(t, env)

	report := env.reports.IncomeStatement(mustDate(t, "2024-01-01"), mustDate(t, "2024-01-31"))
	require.NotNil(t, report)

	require.Len(t, report.Revenue, 1)
	assert.True(t, report.TotalRevenue.Equal(dec("200")))

	// "5100 Cost of Goods Sold" lands under COGS, "5200 Rent" under
	// operating expenses; the parent has no direct postings and no row.
	require.Len(t, report.CostOfGoodsSold, 1)
	assert.Equal(t, "5100", report.CostOfGoodsSold[0].AccountCode)
	require.Len(t, report.OperatingExpenses, 1)
	assert.Equal(t, "5200", report.OperatingExpenses[0].AccountCode)
	assert.Empty(t, report.InterestExpenses)
	assert.Empty(t, report.TaxExpenses)

	assert.True(t, report.GrossProfit.Equal(dec("160")), "200 revenue - 40 cogs, got %s", report.GrossProfit)
	assert.True(t, report.NetProfit.Equal(dec("100")), "gross 160 - 60 operating, got %s", report.NetProfit)
}

func TestIncomeStatementHeuristicBuckets(t *testing.T) {
	env := newTestEnv(t)
	types := env.standardChart(t)
	cash := env.createAccount(t, "1000", "Petty Float", types["Asset"].ID, nil)
	interest := env.createAccount(t, "5400", "Interest on Loans", types["Expense"].ID, nil)
	taxes := env.createAccount(t, "5500", "Income Tax", types["Expense"].ID, nil)

	_, err := env.ledger.CreateEntry(mustDate(t, "2024-03-01"), "Loan interest",
		[]models.JournalLineRequest{debit(interest.ID, "12"), credit(cash.ID, "12")})
	require.NoError(t, err)
	_, err = env.ledger.CreateEntry(mustDate(t, "2024-03-02"), "Quarterly tax",
		[]models.JournalLineRequest{debit(taxes.ID, "30"), credit(cash.ID, "30")})
	require.NoError(t, err)

	report := env.reports.IncomeStatement(mustDate(t, "2024-03-01"), mustDate(t, "2024-03-31"))
	require.Len(t, report.InterestExpenses, 1)
	assert.True(t, report.TotalInterest.Equal(dec("12")))
	require.Len(t, report.TaxExpenses, 1)
	assert.True(t, report.TotalTaxes.Equal(dec("30")))
	assert.True(t, report.NetProfit.Equal(dec("-42")), "no revenue this period, got %s", report.NetProfit)
}

func TestBalanceSheetIdentityWithNetIncome(t *testing.T) {
	env := newTestEnv(t)
	seedExpenseTree(t, env)

	report := env.reports.BalanceSheet(mustDate(t, "2024-01-31"))
	require.NotNil(t, report)

	// Cash took 200 in and paid 100 out.
	require.Len(t, report.Assets, 1)
	assert.True(t, report.TotalAssets.Equal(dec("100")))

	// No equity postings: the whole right-hand side is the synthetic net
	// income row, and the equity rows sum to the equity total.
	assert.True(t, report.NetIncome.Equal(dec("100")))
	require.Len(t, report.Equity, 1)
	assert.Equal(t, "Net Income", report.Equity[0].AccountName)
	assert.True(t, report.Equity[0].Amount.Equal(dec("100")))
	rowSum := dec("0")
	for _, row := range report.Equity {
		rowSum = rowSum.Add(row.Amount)
	}
	assert.True(t, rowSum.Equal(report.TotalEquity))
	assert.True(t, report.TotalEquity.Equal(dec("100")))
	assert.True(t, report.TotalLiabilities.IsZero())
	assert.True(t, report.TotalLiabilitiesAndEquity.Equal(report.TotalAssets))
	assert.True(t, report.IsBalanced, "assets must equal liabilities plus equity once net income is included")
}

func TestCashFlowFinancingActivity(t *testing.T) {
	env := newTestEnv(t)
	types := env.standardChart(t)
	cash := env.createAccount(t, "1000", "Cash", types["Asset"].ID, nil)
	loans := env.createAccount(t, "2000", "Loans Payable", types["Liability"].ID, nil)

	_, err := env.ledger.CreateEntry(mustDate(t, "2024-01-10"), "Draw down loan",
		[]models.JournalLineRequest{debit(cash.ID, "500"), credit(loans.ID, "500")})
	require.NoError(t, err)

	report := env.reports.CashFlow(mustDate(t, "2024-01-01"), mustDate(t, "2024-01-31"))
	require.NotNil(t, report)

	// The cash account itself is the result, never a source line.
	assert.Empty(t, report.OperatingActivities)
	assert.Empty(t, report.InvestingActivities)
	require.Len(t, report.FinancingActivities, 1)
	assert.Equal(t, "2000", report.FinancingActivities[0].AccountCode)
	assert.True(t, report.FinancingActivities[0].Amount.Equal(dec("500")))
	assert.True(t, report.TotalFinancing.Equal(dec("500")))

	// Financing is stored outflow-positive and subtracted.
	assert.True(t, report.NetCashFlow.Financing.Equal(dec("-500")))
	assert.True(t, report.NetCashFlow.Total.Equal(dec("-500")))
	assert.True(t, report.CashAtBeginning.IsZero())
	assert.True(t, report.CashAtEnd.Equal(dec("-500")))
}

func TestCashFlowKeepsNonAssetBankAccounts(t *testing.T) {
	env := newTestEnv(t)
	types := env.standardChart(t)
	cash := env.createAccount(t, "1000", "Cash", types["Asset"].ID, nil)
	bankLoan := env.createAccount(t, "2100", "Bank Loan", types["Liability"].ID, nil)
	bankCharges := env.createAccount(t, "5300", "Bank Charges", types["Expense"].ID, nil)

	_, err := env.ledger.CreateEntry(mustDate(t, "2024-01-05"), "Loan draw down",
		[]models.JournalLineRequest{debit(cash.ID, "400"), credit(bankLoan.ID, "400")})
	require.NoError(t, err)
	_, err = env.ledger.CreateEntry(mustDate(t, "2024-01-15"), "Monthly account fees",
		[]models.JournalLineRequest{debit(bankCharges.ID, "25"), credit(cash.ID, "25")})
	require.NoError(t, err)

	report := env.reports.CashFlow(mustDate(t, "2024-01-01"), mustDate(t, "2024-01-31"))
	require.NotNil(t, report)

	// "Bank" in the name only marks a cash position on asset accounts.
	// The expense stays an operating line and the liability a financing
	// line instead of leaking into the cash balances.
	require.Len(t, report.OperatingActivities, 1)
	assert.Equal(t, "5300", report.OperatingActivities[0].AccountCode)
	assert.True(t, report.OperatingActivities[0].Amount.Equal(dec("25")))
	require.Len(t, report.FinancingActivities, 1)
	assert.Equal(t, "2100", report.FinancingActivities[0].AccountCode)
	assert.True(t, report.FinancingActivities[0].Amount.Equal(dec("400")))

	// Only the asset cash account feeds the positions.
	assert.True(t, report.CashAtBeginning.IsZero())
	assert.True(t, report.NetCashFlow.Total.Equal(dec("-375")), "25 operating - 400 financing per the outflow-positive convention, got %s", report.NetCashFlow.Total)
	assert.True(t, report.CashAtEnd.Equal(report.CashAtBeginning.Add(report.NetCashFlow.Total)))
}

func TestCashFlowOpeningCashPosition(t *testing.T) {
	env := newTestEnv(t)
	types := env.standardChart(t)
	cash := env.createAccount(t, "1000", "Main Bank", types["Asset"].ID, nil)
	loans := env.createAccount(t, "2000", "Loans Payable", types["Liability"].ID, nil)
	require.NoError(t, env.openingRepo.Upsert(cash.ID, dec("1000")))

	// Pre-window and in-window movements.
	_, err := env.ledger.CreateEntry(mustDate(t, "2024-01-10"), "Early draw",
		[]models.JournalLineRequest{debit(cash.ID, "200"), credit(loans.ID, "200")})
	require.NoError(t, err)
	_, err = env.ledger.CreateEntry(mustDate(t, "2024-02-10"), "Second draw",
		[]models.JournalLineRequest{debit(cash.ID, "300"), credit(loans.ID, "300")})
	require.NoError(t, err)

	report := env.reports.CashFlow(mustDate(t, "2024-02-01"), mustDate(t, "2024-02-28"))
	assert.True(t, report.CashAtBeginning.Equal(dec("1200")), "opening 1000 + january 200, got %s", report.CashAtBeginning)
	assert.True(t, report.TotalFinancing.Equal(dec("300")), "only february activity counts")
	assert.True(t, report.CashAtEnd.Equal(dec("900")), "1200 - 300 per the outflow-positive convention")
}

func TestReportsAreShapedWhenEmpty(t *testing.T) {
	env := newTestEnv(t)

	tb := env.reports.TrialBalance(nil, mustDate(t, "2024-01-31"))
	require.NotNil(t, tb)
	assert.NotNil(t, tb.Rows)
	assert.Empty(t, tb.Rows)
	assert.True(t, tb.TotalDebit.IsZero())
	assert.Equal(t, "2024-01-31", tb.EndDate)

	bs := env.reports.BalanceSheet(mustDate(t, "2024-01-31"))
	require.NotNil(t, bs)
	assert.NotNil(t, bs.Assets)
	assert.True(t, bs.TotalAssets.IsZero())
	assert.True(t, bs.IsBalanced)

	is := env.reports.IncomeStatement(mustDate(t, "2024-01-01"), mustDate(t, "2024-01-31"))
	require.NotNil(t, is)
	assert.NotNil(t, is.Revenue)
	assert.True(t, is.NetProfit.IsZero())

	cf := env.reports.CashFlow(mustDate(t, "2024-01-01"), mustDate(t, "2024-01-31"))
	require.NotNil(t, cf)
	assert.NotNil(t, cf.OperatingActivities)
	assert.True(t, cf.NetCashFlow.Total.IsZero())
}
