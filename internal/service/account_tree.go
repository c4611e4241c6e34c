package service

import (
	"database/sql"
	"errors"

	"general-ledger/internal/apperrors"
	"general-ledger/internal/models"
	"general-ledger/internal/repository"
)

// AccountTreeService owns the chart of accounts and its parent/child
// structure. All hierarchy rules live here: repositories only move rows.
type AccountTreeService struct {
	accountRepo *repository.AccountRepository
	typeRepo    *repository.AccountTypeRepository
	journalRepo *repository.JournalRepository
}

func NewAccountTreeService(
	accountRepo *repository.AccountRepository,
	typeRepo *repository.AccountTypeRepository,
	journalRepo *repository.JournalRepository,
) *AccountTreeService {
	return &AccountTreeService{
		accountRepo: accountRepo,
		typeRepo:    typeRepo,
		journalRepo: journalRepo,
	}
}

func (s *AccountTreeService) Create(req models.AccountRequest) (*models.Account, error) {
	if req.AccountCode == "" || req.AccountName == "" {
		return nil, apperrors.Validationf("account code and name are required")
	}

	if _, err := s.typeRepo.FindByID(req.AccountTypeID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFoundf("account type %d", req.AccountTypeID)
		}
		return nil, apperrors.Storef(err, "load account type %d", req.AccountTypeID)
	}

	if existing, err := s.accountRepo.FindByCode(req.AccountCode); err == nil && existing != nil {
		return nil, apperrors.Validationf("account code %q already exists", req.AccountCode)
	} else if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.Storef(err, "check account code %q", req.AccountCode)
	}

	if req.ParentAccountID != nil {
		parent, err := s.accountRepo.FindByID(*req.ParentAccountID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, apperrors.NotFoundf("parent account %d", *req.ParentAccountID)
			}
			return nil, apperrors.Storef(err, "load parent account %d", *req.ParentAccountID)
		}
		if !parent.IsActive {
			return nil, apperrors.Validationf("parent account %q is inactive", parent.AccountCode)
		}
	}

	account := &models.Account{
		AccountCode:     req.AccountCode,
		AccountName:     req.AccountName,
		AccountTypeID:   req.AccountTypeID,
		ParentAccountID: req.ParentAccountID,
		IsActive:        true,
	}
	if err := s.accountRepo.Create(account); err != nil {
		return nil, apperrors.Storef(err, "create account %q", req.AccountCode)
	}
	return account, nil
}

func (s *AccountTreeService) Get(id int) (*models.Account, error) {
	account, err := s.accountRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFoundf("account %d", id)
		}
		return nil, apperrors.Storef(err, "load account %d", id)
	}
	return account, nil
}

// Update changes code, name and type. Moves in the tree go through
// Reparent so the cycle check cannot be bypassed.
func (s *AccountTreeService) Update(id int, req models.AccountRequest) (*models.Account, error) {
	account, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if req.AccountCode == "" || req.AccountName == "" {
		return nil, apperrors.Validationf("account code and name are required")
	}
	if _, err := s.typeRepo.FindByID(req.AccountTypeID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFoundf("account type %d", req.AccountTypeID)
		}
		return nil, apperrors.Storef(err, "load account type %d", req.AccountTypeID)
	}
	if req.AccountCode != account.AccountCode {
		if existing, err := s.accountRepo.FindByCode(req.AccountCode); err == nil && existing != nil {
			return nil, apperrors.Validationf("account code %q already exists", req.AccountCode)
		} else if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.Storef(err, "check account code %q", req.AccountCode)
		}
	}

	// IsActive is deliberately not taken from the request: deactivation
	// goes through Deactivate so the constraint check cannot be bypassed.
	account.AccountCode = req.AccountCode
	account.AccountName = req.AccountName
	account.AccountTypeID = req.AccountTypeID
	if err := s.accountRepo.Update(account); err != nil {
		return nil, apperrors.Storef(err, "update account %d", id)
	}
	return account, nil
}

// Reparent moves an account under a new parent (nil makes it a root).
// The new parent may not be the account itself or any of its descendants.
func (s *AccountTreeService) Reparent(id int, newParentID *int) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	if newParentID != nil {
		if *newParentID == id {
			return apperrors.Cyclef("account %d cannot be its own parent", id)
		}
		if _, err := s.Get(*newParentID); err != nil {
			return err
		}
		descendants, err := s.Descendants(id)
		if err != nil {
			return err
		}
		for _, d := range descendants {
			if d.ID == *newParentID {
				return apperrors.Cyclef("account %d is a descendant of account %d", *newParentID, id)
			}
		}
	}
	if err := s.accountRepo.SetParent(id, newParentID); err != nil {
		return apperrors.Storef(err, "reparent account %d", id)
	}
	return nil
}

// Children returns the active direct children ordered by account code.
func (s *AccountTreeService) Children(id int) ([]models.Account, error) {
	if _, err := s.Get(id); err != nil {
		return nil, err
	}
	byParent, _, err := s.loadTree()
	if err != nil {
		return nil, err
	}
	children := []models.Account{}
	for _, c := range byParent[id] {
		if c.IsActive {
			children = append(children, c)
		}
	}
	return children, nil
}

// Descendants returns the transitive closure below an account, pre-order,
// siblings ordered by account code. Inactive accounts are included so the
// cycle check covers the whole subtree.
func (s *AccountTreeService) Descendants(id int) ([]models.Account, error) {
	byParent, _, err := s.loadTree()
	if err != nil {
		return nil, err
	}

	descendants := []models.Account{}
	visited := map[int]bool{id: true}
	stack := make([]models.Account, 0, len(byParent[id]))
	for i := len(byParent[id]) - 1; i >= 0; i-- {
		stack = append(stack, byParent[id][i])
	}
	for len(stack) > 0 {
		next := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[next.ID] {
			continue
		}
		visited[next.ID] = true
		descendants = append(descendants, next)
		for i := len(byParent[next.ID]) - 1; i >= 0; i-- {
			stack = append(stack, byParent[next.ID][i])
		}
	}
	return descendants, nil
}

// Roots returns the active top-level accounts ordered by account code.
func (s *AccountTreeService) Roots() ([]models.Account, error) {
	accounts, err := s.accountRepo.GetAllActive()
	if err != nil {
		return nil, apperrors.Storef(err, "load accounts")
	}
	roots := []models.Account{}
	for _, a := range accounts {
		if a.ParentAccountID == nil {
			roots = append(roots, a)
		}
	}
	return roots, nil
}

// IsDeletable reports whether an account can be soft-deleted: it must have
// no active children and no journal lines referencing it.
func (s *AccountTreeService) IsDeletable(id int) (bool, error) {
	if _, err := s.Get(id); err != nil {
		return false, err
	}
	hasChildren, err := s.accountRepo.HasActiveChildren(id)
	if err != nil {
		return false, apperrors.Storef(err, "check children of account %d", id)
	}
	if hasChildren {
		return false, nil
	}
	lines, err := s.journalRepo.CountLinesByAccount(id)
	if err != nil {
		return false, apperrors.Storef(err, "count lines of account %d", id)
	}
	return lines == 0, nil
}

// Deactivate soft-deletes an account. The row stays so historical lines
// keep resolving its code, name and type.
func (s *AccountTreeService) Deactivate(id int) error {
	deletable, err := s.IsDeletable(id)
	if err != nil {
		return err
	}
	if !deletable {
		return apperrors.Constraintf("account %d has active children or posted lines", id)
	}
	if err := s.accountRepo.SetActive(id, false); err != nil {
		return apperrors.Storef(err, "deactivate account %d", id)
	}
	return nil
}

// loadTree fetches every account once and indexes children by parent id.
// GetAll is ordered by code, so each child list stays code-ordered.
func (s *AccountTreeService) loadTree() (map[int][]models.Account, map[int]models.Account, error) {
	accounts, err := s.accountRepo.GetAll()
	if err != nil {
		return nil, nil, apperrors.Storef(err, "load accounts")
	}
	byParent := make(map[int][]models.Account)
	byID := make(map[int]models.Account, len(accounts))
	for _, a := range accounts {
		byID[a.ID] = a
		if a.ParentAccountID != nil {
			byParent[*a.ParentAccountID] = append(byParent[*a.ParentAccountID], a)
		}
	}
	return byParent, byID, nil
}
