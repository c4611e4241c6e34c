package service

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"general-ledger/internal/apperrors"
	"general-ledger/internal/models"
	"general-ledger/internal/repository"
	"general-ledger/internal/utils"
)

// SignedBalance converts raw debit/credit totals into a signed balance
// using the account type's normal side. This is the single sign primitive
// shared by the aggregation engine and every statement generator.
func SignedBalance(normalBalance string, debit, credit decimal.Decimal) decimal.Decimal {
	if normalBalance == models.NormalCredit {
		return credit.Sub(debit)
	}
	return debit.Sub(credit)
}

// BalanceService computes point-in-time balances. Each report request
// takes one Snapshot and works on that in-memory copy, so concurrent
// reports never share memoized state.
type BalanceService struct {
	accountRepo *repository.AccountRepository
	typeRepo    *repository.AccountTypeRepository
	journalRepo *repository.JournalRepository
	openingRepo *repository.OpeningBalanceRepository
	log         *logrus.Entry
}

func NewBalanceService(
	accountRepo *repository.AccountRepository,
	typeRepo *repository.AccountTypeRepository,
	journalRepo *repository.JournalRepository,
	openingRepo *repository.OpeningBalanceRepository,
) *BalanceService {
	return &BalanceService{
		accountRepo: accountRepo,
		typeRepo:    typeRepo,
		journalRepo: journalRepo,
		openingRepo: openingRepo,
		log:         utils.ComponentLogger("balance"),
	}
}

// BalanceRun is one aggregation pass over a snapshot of the ledger. The
// memo tables are scoped to the run, never shared across requests.
type BalanceRun struct {
	accounts []models.Account // code order, inactive included
	byID     map[int]models.Account
	types    map[int]models.AccountType
	children map[int][]int // code order
	opening  map[int]decimal.Decimal

	cumulative map[int]models.AccountActivity // entry_date <= end
	period     map[int]models.AccountActivity // entry_date in [start, end]

	memoTotal  map[int]decimal.Decimal
	memoPeriod map[int]decimal.Decimal
}

// Snapshot fetches everything one aggregation pass needs. Failures on the
// auxiliary queries (opening balances, activity) degrade to zeros so a
// single bad row cannot block a whole statement; only the account fetch
// itself is fatal.
func (s *BalanceService) Snapshot(start *time.Time, end time.Time) (*BalanceRun, error) {
	accounts, err := s.accountRepo.GetAll()
	if err != nil {
		return nil, apperrors.Storef(err, "load accounts")
	}
	types, err := s.typeRepo.FindAll()
	if err != nil {
		s.log.WithError(err).Warn("account types unavailable, balances degrade to zero")
		types = nil
	}
	openings, err := s.openingRepo.GetAll()
	if err != nil {
		s.log.WithError(err).Warn("opening balances unavailable, assuming zero")
		openings = nil
	}
	cumulative, err := s.journalRepo.SumActivityByAccount(nil, end)
	if err != nil {
		s.log.WithError(err).Warn("activity totals unavailable, assuming zero")
		cumulative = nil
	}
	period := cumulative
	if start != nil {
		period, err = s.journalRepo.SumActivityByAccount(start, end)
		if err != nil {
			s.log.WithError(err).Warn("period activity unavailable, assuming zero")
			period = nil
		}
	}

	run := &BalanceRun{
		accounts:   accounts,
		byID:       make(map[int]models.Account, len(accounts)),
		types:      make(map[int]models.AccountType, len(types)),
		children:   make(map[int][]int),
		opening:    make(map[int]decimal.Decimal, len(openings)),
		cumulative: make(map[int]models.AccountActivity, len(cumulative)),
		period:     make(map[int]models.AccountActivity, len(period)),
		memoTotal:  make(map[int]decimal.Decimal),
		memoPeriod: make(map[int]decimal.Decimal),
	}
	for _, a := range accounts {
		run.byID[a.ID] = a
		if a.ParentAccountID != nil {
			run.children[*a.ParentAccountID] = append(run.children[*a.ParentAccountID], a.ID)
		}
	}
	for _, t := range types {
		run.types[t.ID] = t
	}
	for _, o := range openings {
		run.opening[o.AccountID] = o.Balance
	}
	for _, act := range cumulative {
		run.cumulative[act.AccountID] = act
	}
	for _, act := range period {
		run.period[act.AccountID] = act
	}
	return run, nil
}

// Accounts returns every account in the snapshot, ordered by code.
func (r *BalanceRun) Accounts() []models.Account {
	return r.accounts
}

// Roots returns the active root accounts in code order. Their total
// balances already include every descendant.
func (r *BalanceRun) Roots() []models.Account {
	roots := []models.Account{}
	for _, a := range r.accounts {
		if a.ParentAccountID == nil && a.IsActive {
			roots = append(roots, a)
		}
	}
	return roots
}

// AccountType resolves the type of an account. The second return is false
// for a dangling account_type_id; such accounts carry a zero balance but
// still participate in hierarchy traversal.
func (r *BalanceRun) AccountType(accountID int) (models.AccountType, bool) {
	a, ok := r.byID[accountID]
	if !ok {
		return models.AccountType{}, false
	}
	t, ok := r.types[a.AccountTypeID]
	return t, ok
}

// PeriodActivity returns the raw debit/credit totals posted to the account
// itself within the requested window.
func (r *BalanceRun) PeriodActivity(accountID int) (debit, credit decimal.Decimal) {
	act := r.period[accountID]
	return act.DebitTotal, act.CreditTotal
}

// OwnBalance is the account's balance from its opening balance and its own
// lines up to the cutoff, excluding descendants.
func (r *BalanceRun) OwnBalance(accountID int) decimal.Decimal {
	t, ok := r.AccountType(accountID)
	if !ok {
		return decimal.Zero
	}
	act := r.cumulative[accountID]
	return r.opening[accountID].Add(SignedBalance(t.NormalBalance, act.DebitTotal, act.CreditTotal))
}

// PeriodOwn is the signed activity of the account's own lines within the
// window, without the opening balance.
func (r *BalanceRun) PeriodOwn(accountID int) decimal.Decimal {
	t, ok := r.AccountType(accountID)
	if !ok {
		return decimal.Zero
	}
	act := r.period[accountID]
	return SignedBalance(t.NormalBalance, act.DebitTotal, act.CreditTotal)
}

// TotalBalance is the own balance plus the recursive total of every child,
// memoized per run so each account is computed exactly once. Every line
// belongs to exactly one account, so disjoint subtrees never double-count.
func (r *BalanceRun) TotalBalance(accountID int) decimal.Decimal {
	return r.rollup(accountID, r.memoTotal, r.OwnBalance, map[int]bool{})
}

// PeriodTotal rolls up PeriodOwn the same way.
func (r *BalanceRun) PeriodTotal(accountID int) decimal.Decimal {
	return r.rollup(accountID, r.memoPeriod, r.PeriodOwn, map[int]bool{})
}

// rollup is the depth-first accumulation. The visiting set terminates the
// walk on corrupt parent data instead of recursing forever; the write path
// rejects cycles, so it only matters for rows edited out of band.
func (r *BalanceRun) rollup(accountID int, memo map[int]decimal.Decimal, own func(int) decimal.Decimal, visiting map[int]bool) decimal.Decimal {
	if total, ok := memo[accountID]; ok {
		return total
	}
	if visiting[accountID] {
		return decimal.Zero
	}
	visiting[accountID] = true

	total := own(accountID)
	for _, childID := range r.children[accountID] {
		total = total.Add(r.rollup(childID, memo, own, visiting))
	}
	delete(visiting, accountID)

	memo[accountID] = total
	return total
}
