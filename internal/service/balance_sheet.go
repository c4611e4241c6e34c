package service

import (
	"strings"
	"time"

	"general-ledger/internal/models"
)

// BalanceSheet partitions the root accounts by type into assets,
// liabilities and equity as of a date. Equity gets a synthetic net income
// line from the year-to-date income statement. The assets = liabilities +
// equity identity is reported, not enforced: an unbalanced ledger yields
// an unbalanced sheet with IsBalanced false.
func (s *ReportService) BalanceSheet(asOf time.Time) *models.BalanceSheet {
	report := &models.BalanceSheet{
		AsOfDate:    formatReportDate(asOf),
		Assets:      []models.BalanceSheetRow{},
		Liabilities: []models.BalanceSheetRow{},
		Equity:      []models.BalanceSheetRow{},
	}

	run, err := s.balance.Snapshot(nil, asOf)
	if err != nil {
		s.log.WithError(err).Error("balance sheet snapshot failed")
		return report
	}

	for _, root := range run.Roots() {
		accountType, ok := run.AccountType(root.ID)
		if !ok {
			// Unresolvable type: the subtree still aggregates, but the
			// root has no section to land in.
			continue
		}
		row := models.BalanceSheetRow{
			AccountID:   root.ID,
			AccountCode: root.AccountCode,
			AccountName: root.AccountName,
			Amount:      run.TotalBalance(root.ID),
		}
		switch strings.ToLower(accountType.Name) {
		case "asset":
			report.Assets = append(report.Assets, row)
			report.TotalAssets = report.TotalAssets.Add(row.Amount)
		case "liability":
			report.Liabilities = append(report.Liabilities, row)
			report.TotalLiabilities = report.TotalLiabilities.Add(row.Amount)
		case "equity":
			report.Equity = append(report.Equity, row)
			report.TotalEquity = report.TotalEquity.Add(row.Amount)
		}
	}

	// Net income for the year to date belongs to equity until the books
	// are closed.
	yearStart := time.Date(asOf.Year(), time.January, 1, 0, 0, 0, 0, asOf.Location())
	income := s.IncomeStatement(yearStart, asOf)
	report.NetIncome = income.NetProfit
	report.Equity = append(report.Equity, models.BalanceSheetRow{
		AccountName: "Net Income",
		Amount:      report.NetIncome,
	})
	report.TotalEquity = report.TotalEquity.Add(report.NetIncome)

	report.TotalLiabilitiesAndEquity = report.TotalLiabilities.Add(report.TotalEquity)
	report.IsBalanced = report.TotalAssets.Sub(report.TotalLiabilitiesAndEquity).Abs().LessThanOrEqual(balanceEpsilon)
	return report
}
