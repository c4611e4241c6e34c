package service

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"general-ledger/internal/apperrors"
	"general-ledger/internal/models"
	"general-ledger/internal/repository"
	"general-ledger/internal/utils"
)

// balanceEpsilon is the tolerance for the double-entry invariant:
// |total debit - total credit| must not exceed 0.01 currency units.
var balanceEpsilon = decimal.NewFromFloat(0.01)

// LedgerService records balanced journal entries. Writes fail loudly with
// typed errors and never leave a partially written entry behind, except
// for the documented header-without-lines window closed by a compensating
// delete.
type LedgerService struct {
	journalRepo *repository.JournalRepository
	accountRepo *repository.AccountRepository
	sequence    *SequenceService
	log         *logrus.Entry
}

func NewLedgerService(
	journalRepo *repository.JournalRepository,
	accountRepo *repository.AccountRepository,
	sequence *SequenceService,
) *LedgerService {
	return &LedgerService{
		journalRepo: journalRepo,
		accountRepo: accountRepo,
		sequence:    sequence,
		log:         utils.ComponentLogger("ledger"),
	}
}

// CreateEntry validates and persists a new journal entry. The header is
// written first; if line insertion fails the header is deleted again so no
// orphaned header stays observable.
func (s *LedgerService) CreateEntry(date time.Time, description string, lines []models.JournalLineRequest) (*models.JournalEntryWithLines, error) {
	totalDebit, totalCredit, err := s.validateLines(description, lines)
	if err != nil {
		return nil, err
	}

	entry := &models.JournalEntry{
		EntryNumber: s.sequence.NextEntryNumber(),
		Reference:   uuid.NewString(),
		EntryDate:   date,
		Description: description,
		TotalDebit:  totalDebit,
		TotalCredit: totalCredit,
		IsBalanced:  true,
	}

	exists, err := s.journalRepo.EntryNumberExists(entry.EntryNumber)
	if err != nil {
		return nil, apperrors.Storef(err, "check entry number %q", entry.EntryNumber)
	}
	if exists {
		entry.EntryNumber = s.sequence.FallbackEntryNumber()
	}

	if err := s.journalRepo.InsertHeader(entry); err != nil {
		// A concurrent writer can still claim the number between the
		// check and the insert. Retry once with a time-derived number.
		entry.EntryNumber = s.sequence.FallbackEntryNumber()
		if retryErr := s.journalRepo.InsertHeader(entry); retryErr != nil {
			return nil, apperrors.Storef(retryErr, "insert entry header")
		}
	}

	lineModels := buildLines(entry.ID, lines)
	if err := s.journalRepo.InsertLines(lineModels); err != nil {
		// Compensating delete: better a retryable gap than an orphaned
		// header with no lines.
		if delErr := s.journalRepo.DeleteHeader(entry.ID); delErr != nil {
			s.log.WithError(delErr).WithField("entry_id", entry.ID).Error("compensating header delete failed")
		}
		return nil, apperrors.Storef(err, "insert entry lines")
	}

	s.log.WithFields(logrus.Fields{
		"entry_id":     entry.ID,
		"entry_number": entry.EntryNumber,
		"total_debit":  totalDebit,
	}).Info("journal entry created")

	return &models.JournalEntryWithLines{JournalEntry: *entry, Lines: lineModels}, nil
}

// UpdateEntry replaces an entry's header fields and its complete line set.
// This is a destructive replace; concurrent updates race last-write-wins.
func (s *LedgerService) UpdateEntry(id int, date time.Time, description string, lines []models.JournalLineRequest) (*models.JournalEntryWithLines, error) {
	entry, err := s.findEntry(id)
	if err != nil {
		return nil, err
	}

	totalDebit, totalCredit, err := s.validateLines(description, lines)
	if err != nil {
		return nil, err
	}

	entry.EntryDate = date
	entry.Description = description
	entry.TotalDebit = totalDebit
	entry.TotalCredit = totalCredit
	entry.IsBalanced = true
	if err := s.journalRepo.UpdateHeader(entry); err != nil {
		return nil, apperrors.Storef(err, "update entry %d", id)
	}

	if err := s.journalRepo.DeleteLinesByEntry(id); err != nil {
		return nil, apperrors.Storef(err, "delete lines of entry %d", id)
	}
	lineModels := buildLines(id, lines)
	if err := s.journalRepo.InsertLines(lineModels); err != nil {
		return nil, apperrors.Storef(err, "insert lines of entry %d", id)
	}

	return &models.JournalEntryWithLines{JournalEntry: *entry, Lines: lineModels}, nil
}

// ReverseEntry swaps debit and credit on every line of an entry and
// recomputes the header totals. Applying it twice restores the original.
func (s *LedgerService) ReverseEntry(id int) (*models.JournalEntryWithLines, error) {
	entry, err := s.findEntry(id)
	if err != nil {
		return nil, err
	}
	lines, err := s.journalRepo.FindLinesByEntry(id)
	if err != nil {
		return nil, apperrors.Storef(err, "load lines of entry %d", id)
	}
	if len(lines) == 0 {
		return nil, apperrors.NotFoundf("entry %d has no lines", id)
	}

	totalDebit := decimal.Zero
	totalCredit := decimal.Zero
	for i, line := range lines {
		if err := s.journalRepo.UpdateLineAmounts(line.ID, line.CreditAmount, line.DebitAmount); err != nil {
			return nil, apperrors.Storef(err, "reverse line %d of entry %d", line.ID, id)
		}
		lines[i].DebitAmount, lines[i].CreditAmount = line.CreditAmount, line.DebitAmount
		totalDebit = totalDebit.Add(lines[i].DebitAmount)
		totalCredit = totalCredit.Add(lines[i].CreditAmount)
	}

	entry.TotalDebit = totalDebit
	entry.TotalCredit = totalCredit
	entry.IsBalanced = totalDebit.Sub(totalCredit).Abs().LessThanOrEqual(balanceEpsilon)
	if err := s.journalRepo.UpdateHeader(entry); err != nil {
		return nil, apperrors.Storef(err, "update totals of entry %d", id)
	}

	return &models.JournalEntryWithLines{JournalEntry: *entry, Lines: lines}, nil
}

func (s *LedgerService) GetEntry(id int) (*models.JournalEntryWithLines, error) {
	entry, err := s.findEntry(id)
	if err != nil {
		return nil, err
	}
	lines, err := s.journalRepo.FindLinesByEntry(id)
	if err != nil {
		return nil, apperrors.Storef(err, "load lines of entry %d", id)
	}
	return &models.JournalEntryWithLines{JournalEntry: *entry, Lines: lines}, nil
}

func (s *LedgerService) ListEntries(limit, offset int, search string) ([]models.JournalEntry, int, error) {
	entries, total, err := s.journalRepo.FindAll(limit, offset, search)
	if err != nil {
		return nil, 0, apperrors.Storef(err, "list entries")
	}
	return entries, total, nil
}

func (s *LedgerService) findEntry(id int) (*models.JournalEntry, error) {
	entry, err := s.journalRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFoundf("journal entry %d", id)
		}
		return nil, apperrors.Storef(err, "load entry %d", id)
	}
	return entry, nil
}

// validateLines enforces the write-time invariants: a description, at
// least one line, non-negative amounts, active existing accounts, and
// debits equal to credits within the epsilon.
func (s *LedgerService) validateLines(description string, lines []models.JournalLineRequest) (decimal.Decimal, decimal.Decimal, error) {
	if description == "" {
		return decimal.Zero, decimal.Zero, apperrors.Validationf("description is required")
	}
	if len(lines) == 0 {
		return decimal.Zero, decimal.Zero, apperrors.Validationf("entry requires at least one line")
	}

	totalDebit := decimal.Zero
	totalCredit := decimal.Zero
	for i, line := range lines {
		if line.DebitAmount.IsNegative() || line.CreditAmount.IsNegative() {
			return decimal.Zero, decimal.Zero, apperrors.Validationf("line %d has a negative amount", i+1)
		}
		account, err := s.accountRepo.FindByID(line.AccountID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return decimal.Zero, decimal.Zero, apperrors.Validationf("line %d references unknown account %d", i+1, line.AccountID)
			}
			return decimal.Zero, decimal.Zero, apperrors.Storef(err, "load account %d", line.AccountID)
		}
		if !account.IsActive {
			return decimal.Zero, decimal.Zero, apperrors.Validationf("line %d references inactive account %q", i+1, account.AccountCode)
		}
		totalDebit = totalDebit.Add(line.DebitAmount)
		totalCredit = totalCredit.Add(line.CreditAmount)
	}

	if totalDebit.Sub(totalCredit).Abs().GreaterThan(balanceEpsilon) {
		return decimal.Zero, decimal.Zero, apperrors.Validationf(
			"entry is not balanced: debit %s, credit %s", totalDebit, totalCredit)
	}
	return totalDebit, totalCredit, nil
}

func buildLines(entryID int, lines []models.JournalLineRequest) []models.JournalEntryLine {
	lineModels := make([]models.JournalEntryLine, 0, len(lines))
	for i, line := range lines {
		lineModels = append(lineModels, models.JournalEntryLine{
			JournalEntryID: entryID,
			AccountID:      line.AccountID,
			DebitAmount:    line.DebitAmount,
			CreditAmount:   line.CreditAmount,
			LineNumber:     i + 1,
			Description:    line.Description,
		})
	}
	return lineModels
}
