package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type JournalEntry struct {
	ID          int             `db:"id" json:"id"`
	EntryNumber string          `db:"entry_number" json:"entry_number"`
	Reference   string          `db:"reference" json:"reference"`
	EntryDate   time.Time       `db:"entry_date" json:"entry_date"`
	Description string          `db:"description" json:"description"`
	TotalDebit  decimal.Decimal `db:"total_debit" json:"total_debit"`
	TotalCredit decimal.Decimal `db:"total_credit" json:"total_credit"`
	IsBalanced  bool            `db:"is_balanced" json:"is_balanced"`
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at" json:"updated_at"`
}

type JournalEntryLine struct {
	ID             int             `db:"id" json:"id"`
	JournalEntryID int             `db:"journal_entry_id" json:"journal_entry_id"`
	AccountID      int             `db:"account_id" json:"account_id"`
	DebitAmount    decimal.Decimal `db:"debit_amount" json:"debit_amount"`
	CreditAmount   decimal.Decimal `db:"credit_amount" json:"credit_amount"`
	LineNumber     int             `db:"line_number" json:"line_number"`
	Description    string          `db:"description" json:"description"`
}

// JournalEntryWithLines is the read shape returned by the journal API.
type JournalEntryWithLines struct {
	JournalEntry
	Lines []JournalEntryLine `json:"lines"`
}

type JournalLineRequest struct {
	AccountID    int             `json:"account_id" validate:"required"`
	DebitAmount  decimal.Decimal `json:"debit_amount"`
	CreditAmount decimal.Decimal `json:"credit_amount"`
	Description  string          `json:"description"`
}

type JournalEntryRequest struct {
	EntryDate   string               `json:"entry_date" validate:"required"` // 2006-01-02
	Description string               `json:"description" validate:"required"`
	Lines       []JournalLineRequest `json:"lines" validate:"required"`
}

// AccountActivity is an aggregate of one account's posted debits and credits
// over some date window.
type AccountActivity struct {
	AccountID   int             `db:"account_id"`
	DebitTotal  decimal.Decimal `db:"debit_total"`
	CreditTotal decimal.Decimal `db:"credit_total"`
}
