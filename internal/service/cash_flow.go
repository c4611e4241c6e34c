package service

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"general-ledger/internal/models"
)

// CashFlow builds the cash-flow statement from accounts explicitly tagged
// with a cash flow category; untagged accounts are excluded rather than
// inferred. Cash and bank accounts are the result of the statement, not
// source lines, so they are skipped and instead define the opening and
// closing cash positions. Investing and financing totals are stored
// outflow-positive and subtracted when deriving net cash movement.
func (s *ReportService) CashFlow(start, end time.Time) *models.CashFlowStatement {
	report := &models.CashFlowStatement{
		StartDate:           formatReportDate(start),
		EndDate:             formatReportDate(end),
		OperatingActivities: []models.CashFlowRow{},
		InvestingActivities: []models.CashFlowRow{},
		FinancingActivities: []models.CashFlowRow{},
	}

	run, err := s.balance.Snapshot(&start, end)
	if err != nil {
		s.log.WithError(err).Error("cash flow snapshot failed")
		return report
	}

	for _, account := range run.Accounts() {
		if !account.IsActive {
			continue
		}
		accountType, ok := run.AccountType(account.ID)
		if !ok {
			continue
		}
		if isCashAccount(account.AccountName, accountType) {
			report.CashAtBeginning = report.CashAtBeginning.Add(openingCash(run, account.ID))
			continue
		}
		category := accountType.CashFlowCategory
		if category == "" || category == models.CashFlowNone {
			continue
		}
		debit, credit := run.PeriodActivity(account.ID)
		if debit.IsZero() && credit.IsZero() {
			continue
		}
		row := models.CashFlowRow{
			AccountID:   account.ID,
			AccountCode: account.AccountCode,
			AccountName: account.AccountName,
			Amount:      SignedBalance(accountType.NormalBalance, debit, credit),
		}
		switch category {
		case models.CashFlowOperating:
			report.OperatingActivities = append(report.OperatingActivities, row)
			report.TotalOperating = report.TotalOperating.Add(row.Amount)
		case models.CashFlowInvesting:
			report.InvestingActivities = append(report.InvestingActivities, row)
			report.TotalInvesting = report.TotalInvesting.Add(row.Amount)
		case models.CashFlowFinancing:
			report.FinancingActivities = append(report.FinancingActivities, row)
			report.TotalFinancing = report.TotalFinancing.Add(row.Amount)
		}
	}

	report.NetCashFlow = models.NetCashFlow{
		Operating: report.TotalOperating,
		Investing: report.TotalInvesting.Neg(),
		Financing: report.TotalFinancing.Neg(),
	}
	report.NetCashFlow.Total = report.TotalOperating.
		Sub(report.TotalInvesting).
		Sub(report.TotalFinancing)
	report.CashAtEnd = report.CashAtBeginning.Add(report.NetCashFlow.Total)
	return report
}

// openingCash is a cash account's own balance just before the window:
// opening balance plus signed activity dated before start.
func openingCash(run *BalanceRun, accountID int) decimal.Decimal {
	t, ok := run.AccountType(accountID)
	if !ok {
		return decimal.Zero
	}
	cum := run.cumulative[accountID]
	period := run.period[accountID]
	debit := cum.DebitTotal.Sub(period.DebitTotal)
	credit := cum.CreditTotal.Sub(period.CreditTotal)
	return run.opening[accountID].Add(SignedBalance(t.NormalBalance, debit, credit))
}

// isCashAccount matches only debit-normal asset accounts, so names like
// "Bank Charges" (expense) or "Bank Loan" (liability) keep their tagged
// category instead of being folded into the cash position.
func isCashAccount(name string, t models.AccountType) bool {
	if !strings.EqualFold(t.Name, "asset") || t.NormalBalance != models.NormalDebit {
		return false
	}
	lower := strings.ToLower(name)
	return strings.Contains(lower, "cash") || strings.Contains(lower, "bank")
}
