package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Normal balance sides for an account type.
const (
	NormalDebit  = "debit"
	NormalCredit = "credit"
)

// Cash flow categories assigned per account type.
const (
	CashFlowOperating = "operating"
	CashFlowInvesting = "investing"
	CashFlowFinancing = "financing"
	CashFlowNone      = "none"
)

type AccountType struct {
	ID               int       `db:"id" json:"id"`
	Name             string    `db:"name" json:"name"` // Asset, Liability, Equity, Revenue, Expense
	NormalBalance    string    `db:"normal_balance" json:"normal_balance"`
	CashFlowCategory string    `db:"cash_flow_category" json:"cash_flow_category"`
	IsActive         bool      `db:"is_active" json:"is_active"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time `db:"updated_at" json:"updated_at"`
}

type Account struct {
	ID              int       `db:"id" json:"id"`
	AccountCode     string    `db:"account_code" json:"account_code"`
	AccountName     string    `db:"account_name" json:"account_name"`
	AccountTypeID   int       `db:"account_type_id" json:"account_type_id"`
	ParentAccountID *int      `db:"parent_account_id" json:"parent_account_id"`
	IsActive        bool      `db:"is_active" json:"is_active"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}

// OpeningBalance is the balance carried in before the earliest recorded
// transaction. Absent row means zero.
type OpeningBalance struct {
	ID        int             `db:"id" json:"id"`
	AccountID int             `db:"account_id" json:"account_id"`
	Balance   decimal.Decimal `db:"balance" json:"balance"`
	CreatedAt time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt time.Time       `db:"updated_at" json:"updated_at"`
}

type AccountTypeRequest struct {
	Name             string `json:"name" validate:"required"`
	NormalBalance    string `json:"normal_balance" validate:"required"`
	CashFlowCategory string `json:"cash_flow_category"`
	IsActive         bool   `json:"is_active"`
}

type AccountRequest struct {
	AccountCode     string `json:"account_code" validate:"required"`
	AccountName     string `json:"account_name" validate:"required"`
	AccountTypeID   int    `json:"account_type_id" validate:"required"`
	ParentAccountID *int   `json:"parent_account_id"`
	IsActive        bool   `json:"is_active"`
}

type ReparentRequest struct {
	ParentAccountID *int `json:"parent_account_id"`
}

type OpeningBalanceRequest struct {
	AccountID int             `json:"account_id" validate:"required"`
	Balance   decimal.Decimal `json:"balance"`
}
