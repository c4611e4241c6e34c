package repository

import (
	"github.com/jmoiron/sqlx"

	"general-ledger/internal/models"
)

type AccountTypeRepository struct {
	db *sqlx.DB
}

func NewAccountTypeRepository(db *sqlx.DB) *AccountTypeRepository {
	return &AccountTypeRepository{db: db}
}

func (r *AccountTypeRepository) FindAll() ([]models.AccountType, error) {
	var types []models.AccountType
	query := "SELECT * FROM account_types ORDER BY id"
	err := r.db.Select(&types, query)
	return types, err
}

func (r *AccountTypeRepository) FindByID(id int) (*models.AccountType, error) {
	var at models.AccountType
	query := "SELECT * FROM account_types WHERE id = ? LIMIT 1"
	err := r.db.Get(&at, query, id)
	if err != nil {
		return nil, err
	}
	return &at, nil
}

func (r *AccountTypeRepository) Create(at *models.AccountType) error {
	query := `INSERT INTO account_types (name, normal_balance, cash_flow_category, is_active)
	          VALUES (:name, :normal_balance, :cash_flow_category, :is_active)`
	result, err := r.db.NamedExec(query, at)
	if err != nil {
		return err
	}
	id, _ := result.LastInsertId()
	at.ID = int(id)
	return nil
}

func (r *AccountTypeRepository) Update(at *models.AccountType) error {
	query := `UPDATE account_types SET name = :name, normal_balance = :normal_balance,
	          cash_flow_category = :cash_flow_category, is_active = :is_active,
	          updated_at = CURRENT_TIMESTAMP
	          WHERE id = :id`
	_, err := r.db.NamedExec(query, at)
	return err
}
