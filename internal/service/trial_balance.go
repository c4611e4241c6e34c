package service

import (
	"time"

	"github.com/shopspring/decimal"

	"general-ledger/internal/models"
)

// TrialBalance lists every active account with its period debit/credit
// totals, own closing balance and rolled-up total balance, ordered by
// account code. A nil start widens the window to everything up to end.
func (s *ReportService) TrialBalance(start *time.Time, end time.Time) *models.TrialBalance {
	report := &models.TrialBalance{
		EndDate:     formatReportDate(end),
		Rows:        []models.TrialBalanceRow{},
		TotalDebit:  decimal.Zero,
		TotalCredit: decimal.Zero,
	}
	if start != nil {
		report.StartDate = formatReportDate(*start)
	}

	run, err := s.balance.Snapshot(start, end)
	if err != nil {
		s.log.WithError(err).Error("trial balance snapshot failed")
		return report
	}

	for _, account := range run.Accounts() {
		if !account.IsActive {
			continue
		}
		debit, credit := run.PeriodActivity(account.ID)
		typeName := ""
		if t, ok := run.AccountType(account.ID); ok {
			typeName = t.Name
		}
		report.Rows = append(report.Rows, models.TrialBalanceRow{
			AccountID:      account.ID,
			AccountCode:    account.AccountCode,
			AccountName:    account.AccountName,
			AccountType:    typeName,
			ParentID:       account.ParentAccountID,
			DebitTotal:     debit,
			CreditTotal:    credit,
			ClosingBalance: run.OwnBalance(account.ID),
			TotalBalance:   run.TotalBalance(account.ID),
		})
		report.TotalDebit = report.TotalDebit.Add(debit)
		report.TotalCredit = report.TotalCredit.Add(credit)
	}
	return report
}
