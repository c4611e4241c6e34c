package repository

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"general-ledger/internal/models"
)

type OpeningBalanceRepository struct {
	db *sqlx.DB
}

func NewOpeningBalanceRepository(db *sqlx.DB) *OpeningBalanceRepository {
	return &OpeningBalanceRepository{db: db}
}

func (r *OpeningBalanceRepository) GetAll() ([]models.OpeningBalance, error) {
	var balances []models.OpeningBalance
	query := "SELECT * FROM opening_balances"
	err := r.db.Select(&balances, query)
	return balances, err
}

func (r *OpeningBalanceRepository) FindByAccount(accountID int) (*models.OpeningBalance, error) {
	var ob models.OpeningBalance
	query := "SELECT * FROM opening_balances WHERE account_id = ? LIMIT 1"
	err := r.db.Get(&ob, query, accountID)
	if err != nil {
		return nil, err
	}
	return &ob, nil
}

// Upsert writes one balance per account. Done as select-then-write in Go
// so the same statements run on MySQL and sqlite.
func (r *OpeningBalanceRepository) Upsert(accountID int, balance decimal.Decimal) error {
	_, err := r.FindByAccount(accountID)
	if errors.Is(err, sql.ErrNoRows) {
		insert := "INSERT INTO opening_balances (account_id, balance) VALUES (?, ?)"
		_, err = r.db.Exec(insert, accountID, balance)
		return err
	}
	if err != nil {
		return err
	}
	update := "UPDATE opening_balances SET balance = ?, updated_at = CURRENT_TIMESTAMP WHERE account_id = ?"
	_, err = r.db.Exec(update, balance, accountID)
	return err
}
