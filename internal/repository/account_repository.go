package repository

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"general-ledger/internal/models"
)

type AccountRepository struct {
	db *sqlx.DB
}

func NewAccountRepository(db *sqlx.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) FindAll(limit, offset int, search string) ([]models.Account, int, error) {
	var accounts []models.Account
	var total int

	// Build query with search
	whereClause := ""
	args := []interface{}{}

	if search != "" {
		whereClause = "WHERE account_code LIKE ? OR account_name LIKE ?"
		searchPattern := "%" + search + "%"
		args = append(args, searchPattern, searchPattern)
	}

	// Get total count
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM accounts %s", whereClause)
	err := r.db.Get(&total, countQuery, args...)
	if err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
		SELECT id, account_code, account_name, account_type_id,
		       parent_account_id, is_active, created_at, updated_at
		FROM accounts %s
		ORDER BY account_code
		LIMIT ? OFFSET ?`, whereClause)
	args = append(args, limit, offset)
	err = r.db.Select(&accounts, query, args...)
	if err != nil {
		return nil, 0, err
	}

	return accounts, total, nil
}

func (r *AccountRepository) FindByID(id int) (*models.Account, error) {
	var account models.Account
	query := "SELECT * FROM accounts WHERE id = ? LIMIT 1"
	err := r.db.Get(&account, query, id)
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *AccountRepository) FindByCode(code string) (*models.Account, error) {
	var account models.Account
	query := "SELECT * FROM accounts WHERE account_code = ? LIMIT 1"
	err := r.db.Get(&account, query, code)
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *AccountRepository) Create(account *models.Account) error {
	query := `INSERT INTO accounts (account_code, account_name, account_type_id, parent_account_id, is_active)
	          VALUES (:account_code, :account_name, :account_type_id, :parent_account_id, :is_active)`
	result, err := r.db.NamedExec(query, account)
	if err != nil {
		return err
	}
	id, _ := result.LastInsertId()
	account.ID = int(id)
	return nil
}

func (r *AccountRepository) Update(account *models.Account) error {
	query := `UPDATE accounts SET account_code = :account_code, account_name = :account_name,
	          account_type_id = :account_type_id, is_active = :is_active,
	          updated_at = CURRENT_TIMESTAMP
	          WHERE id = :id`
	_, err := r.db.NamedExec(query, account)
	return err
}

// SetParent rewires the tree edge. Cycle checks belong to the tree service,
// not here.
func (r *AccountRepository) SetParent(id int, parentID *int) error {
	query := "UPDATE accounts SET parent_account_id = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?"
	_, err := r.db.Exec(query, parentID, id)
	return err
}

// SetActive flips the soft-delete flag. Accounts are never physically
// removed because historical lines must keep resolving code/name/type.
func (r *AccountRepository) SetActive(id int, active bool) error {
	query := "UPDATE accounts SET is_active = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?"
	_, err := r.db.Exec(query, active, id)
	return err
}

func (r *AccountRepository) HasActiveChildren(id int) (bool, error) {
	var count int
	query := "SELECT COUNT(*) FROM accounts WHERE parent_account_id = ? AND is_active = 1"
	err := r.db.Get(&count, query, id)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetAll returns every account, inactive included, ordered by code. The
// balance engine needs inactive accounts so historical postings still
// resolve through the hierarchy.
func (r *AccountRepository) GetAll() ([]models.Account, error) {
	var accounts []models.Account
	query := "SELECT * FROM accounts ORDER BY account_code"
	err := r.db.Select(&accounts, query)
	return accounts, err
}

func (r *AccountRepository) GetAllActive() ([]models.Account, error) {
	var accounts []models.Account
	query := "SELECT * FROM accounts WHERE is_active = 1 ORDER BY account_code"
	err := r.db.Select(&accounts, query)
	return accounts, err
}
