package service

import (
	"time"

	"github.com/sirupsen/logrus"

	"general-ledger/internal/utils"
)

const reportDateFormat = "2006-01-02"

// ReportService derives the four financial statements from snapshots of
// the account tree and the balance engine. All generators are read-only
// and always return a fully shaped result: on a failed snapshot the
// statement comes back with empty sections and zero totals instead of nil,
// so callers can render "no data" without special cases.
type ReportService struct {
	balance *BalanceService
	log     *logrus.Entry
}

func NewReportService(balance *BalanceService) *ReportService {
	return &ReportService{
		balance: balance,
		log:     utils.ComponentLogger("reports"),
	}
}

func formatReportDate(t time.Time) string {
	return t.Format(reportDateFormat)
}
