package models

import "github.com/shopspring/decimal"

// TrialBalanceRow is one account row of the trial balance, sorted by code.
type TrialBalanceRow struct {
	AccountID      int             `json:"account_id"`
	AccountCode    string          `json:"account_code"`
	AccountName    string          `json:"account_name"`
	AccountType    string          `json:"account_type"`
	ParentID       *int            `json:"parent_account_id"`
	DebitTotal     decimal.Decimal `json:"debit_total"`
	CreditTotal    decimal.Decimal `json:"credit_total"`
	ClosingBalance decimal.Decimal `json:"closing_balance"` // own balance
	TotalBalance   decimal.Decimal `json:"total_balance"`   // own + descendants
}

type TrialBalance struct {
	StartDate   string            `json:"start_date,omitempty"`
	EndDate     string            `json:"end_date"`
	Rows        []TrialBalanceRow `json:"rows"`
	TotalDebit  decimal.Decimal   `json:"total_debit"`
	TotalCredit decimal.Decimal   `json:"total_credit"`
}

// BalanceSheetRow is one root account (descendants already rolled up).
type BalanceSheetRow struct {
	AccountID   int             `json:"account_id,omitempty"`
	AccountCode string          `json:"account_code,omitempty"`
	AccountName string          `json:"account_name"`
	Amount      decimal.Decimal `json:"amount"`
}

type BalanceSheet struct {
	AsOfDate                  string            `json:"as_of_date"`
	Assets                    []BalanceSheetRow `json:"assets"`
	Liabilities               []BalanceSheetRow `json:"liabilities"`
	Equity                    []BalanceSheetRow `json:"equity"`
	NetIncome                 decimal.Decimal   `json:"net_income"`
	TotalAssets               decimal.Decimal   `json:"total_assets"`
	TotalLiabilities          decimal.Decimal   `json:"total_liabilities"`
	TotalEquity               decimal.Decimal   `json:"total_equity"`
	TotalLiabilitiesAndEquity decimal.Decimal   `json:"total_liabilities_and_equity"`
	IsBalanced                bool              `json:"is_balanced"`
}

// Expense buckets used by the income statement.
const (
	ExpenseBucketCOGS      = "cogs"
	ExpenseBucketInterest  = "interest"
	ExpenseBucketTaxes     = "taxes"
	ExpenseBucketOperating = "operating"
)

type IncomeStatementRow struct {
	AccountID   int             `json:"account_id"`
	AccountCode string          `json:"account_code"`
	AccountName string          `json:"account_name"`
	Amount      decimal.Decimal `json:"amount"`
}

type IncomeStatement struct {
	StartDate              string               `json:"start_date"`
	EndDate                string               `json:"end_date"`
	Revenue                []IncomeStatementRow `json:"revenue"`
	CostOfGoodsSold        []IncomeStatementRow `json:"cost_of_goods_sold"`
	OperatingExpenses      []IncomeStatementRow `json:"operating_expenses"`
	InterestExpenses       []IncomeStatementRow `json:"interest_expenses"`
	TaxExpenses            []IncomeStatementRow `json:"tax_expenses"`
	TotalRevenue           decimal.Decimal      `json:"total_revenue"`
	TotalCOGS              decimal.Decimal      `json:"total_cogs"`
	TotalOperatingExpenses decimal.Decimal      `json:"total_operating_expenses"`
	TotalInterest          decimal.Decimal      `json:"total_interest"`
	TotalTaxes             decimal.Decimal      `json:"total_taxes"`
	GrossProfit            decimal.Decimal      `json:"gross_profit"`
	NetProfit              decimal.Decimal      `json:"net_profit"`
}

type CashFlowRow struct {
	AccountID   int             `json:"account_id"`
	AccountCode string          `json:"account_code"`
	AccountName string          `json:"account_name"`
	Amount      decimal.Decimal `json:"amount"`
}

// NetCashFlow breaks net cash movement down per category. Investing and
// financing activities are stored outflow-positive, so their contribution
// here carries a flipped sign.
type NetCashFlow struct {
	Operating decimal.Decimal `json:"operating"`
	Investing decimal.Decimal `json:"investing"`
	Financing decimal.Decimal `json:"financing"`
	Total     decimal.Decimal `json:"total"`
}

type CashFlowStatement struct {
	StartDate           string          `json:"start_date"`
	EndDate             string          `json:"end_date"`
	OperatingActivities []CashFlowRow   `json:"operating_activities"`
	InvestingActivities []CashFlowRow   `json:"investing_activities"`
	FinancingActivities []CashFlowRow   `json:"financing_activities"`
	TotalOperating      decimal.Decimal `json:"total_operating"`
	TotalInvesting      decimal.Decimal `json:"total_investing"`
	TotalFinancing      decimal.Decimal `json:"total_financing"`
	NetCashFlow         NetCashFlow     `json:"net_cash_flow"`
	CashAtBeginning     decimal.Decimal `json:"cash_at_beginning"`
	CashAtEnd           decimal.Decimal `json:"cash_at_end"`
}
