package service

import (
	"strings"
	"time"

	"general-ledger/internal/models"
)

// IncomeStatement reports period activity for revenue and expense
// accounts. Revenue is listed per root with descendants rolled up. Expense
// activity is bucketed per posting account (COGS, interest, taxes,
// operating) so each line lands in exactly one bucket; parents without
// their own lines contribute nothing directly.
func (s *ReportService) IncomeStatement(start, end time.Time) *models.IncomeStatement {
	report := &models.IncomeStatement{
		StartDate:         formatReportDate(start),
		EndDate:           formatReportDate(end),
		Revenue:           []models.IncomeStatementRow{},
		CostOfGoodsSold:   []models.IncomeStatementRow{},
		OperatingExpenses: []models.IncomeStatementRow{},
		InterestExpenses:  []models.IncomeStatementRow{},
		TaxExpenses:       []models.IncomeStatementRow{},
	}

	run, err := s.balance.Snapshot(&start, end)
	if err != nil {
		s.log.WithError(err).Error("income statement snapshot failed")
		return report
	}

	for _, root := range run.Roots() {
		accountType, ok := run.AccountType(root.ID)
		if !ok || !strings.EqualFold(accountType.Name, "revenue") {
			continue
		}
		row := models.IncomeStatementRow{
			AccountID:   root.ID,
			AccountCode: root.AccountCode,
			AccountName: root.AccountName,
			Amount:      run.PeriodTotal(root.ID),
		}
		report.Revenue = append(report.Revenue, row)
		report.TotalRevenue = report.TotalRevenue.Add(row.Amount)
	}

	for _, account := range run.Accounts() {
		if !account.IsActive {
			continue
		}
		accountType, ok := run.AccountType(account.ID)
		if !ok || !strings.EqualFold(accountType.Name, "expense") {
			continue
		}
		amount := run.PeriodOwn(account.ID)
		if amount.IsZero() {
			continue
		}
		row := models.IncomeStatementRow{
			AccountID:   account.ID,
			AccountCode: account.AccountCode,
			AccountName: account.AccountName,
			Amount:      amount,
		}
		switch classifyExpense(account.AccountName) {
		case models.ExpenseBucketCOGS:
			report.CostOfGoodsSold = append(report.CostOfGoodsSold, row)
			report.TotalCOGS = report.TotalCOGS.Add(amount)
		case models.ExpenseBucketInterest:
			report.InterestExpenses = append(report.InterestExpenses, row)
			report.TotalInterest = report.TotalInterest.Add(amount)
		case models.ExpenseBucketTaxes:
			report.TaxExpenses = append(report.TaxExpenses, row)
			report.TotalTaxes = report.TotalTaxes.Add(amount)
		default:
			report.OperatingExpenses = append(report.OperatingExpenses, row)
			report.TotalOperatingExpenses = report.TotalOperatingExpenses.Add(amount)
		}
	}

	report.GrossProfit = report.TotalRevenue.Sub(report.TotalCOGS)
	report.NetProfit = report.GrossProfit.
		Sub(report.TotalOperatingExpenses).
		Sub(report.TotalInterest).
		Sub(report.TotalTaxes)
	return report
}

// classifyExpense buckets an expense account by name substring. This is an
// inherited heuristic, not a stored classification; an account named
// "Interest-free Rent" will land under interest. Checked in order: COGS,
// interest, taxes.
func classifyExpense(name string) string {
	lower := strings.ToLower(name)
	switch {
	case strings.Contains(lower, "cost of goods"),
		strings.Contains(lower, "cogs"),
		strings.Contains(lower, "cost of sales"):
		return models.ExpenseBucketCOGS
	case strings.Contains(lower, "interest"):
		return models.ExpenseBucketInterest
	case strings.Contains(lower, "tax"):
		return models.ExpenseBucketTaxes
	default:
		return models.ExpenseBucketOperating
	}
}
