package database

import (
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// NewSQLite opens a sqlite database and applies the schema. Use ":memory:"
// for throwaway databases in tests. The MySQL deployment is provisioned
// externally and is never migrated from here.
func NewSQLite(path string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("sqlite3", path+"?_foreign_keys=on")
	if err != nil {
		return nil, err
	}
	if path == ":memory:" {
		// Every pooled connection to :memory: would get its own empty
		// database; pin the pool to one connection.
		db.SetMaxOpenConns(1)
	}
	if err := migrate(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func migrate(db *sqlx.DB) error {
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS account_types (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name VARCHAR(100) NOT NULL,
		normal_balance VARCHAR(10) NOT NULL,
		cash_flow_category VARCHAR(20) NOT NULL DEFAULT 'none',
		is_active BOOLEAN NOT NULL DEFAULT 1,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS accounts (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		account_code VARCHAR(50) NOT NULL UNIQUE,
		account_name VARCHAR(200) NOT NULL,
		account_type_id INTEGER NOT NULL,
		parent_account_id INTEGER REFERENCES accounts(id),
		is_active BOOLEAN NOT NULL DEFAULT 1,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS journal_entries (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		entry_number VARCHAR(50) NOT NULL UNIQUE,
		reference VARCHAR(64) NOT NULL DEFAULT '',
		entry_date DATETIME NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		total_debit DECIMAL(15,2) NOT NULL DEFAULT 0,
		total_credit DECIMAL(15,2) NOT NULL DEFAULT 0,
		is_balanced BOOLEAN NOT NULL DEFAULT 1,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS journal_entry_lines (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		journal_entry_id INTEGER NOT NULL REFERENCES journal_entries(id),
		account_id INTEGER NOT NULL REFERENCES accounts(id),
		debit_amount DECIMAL(15,2) NOT NULL DEFAULT 0,
		credit_amount DECIMAL(15,2) NOT NULL DEFAULT 0,
		line_number INTEGER NOT NULL DEFAULT 1,
		description TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS opening_balances (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		account_id INTEGER NOT NULL UNIQUE REFERENCES accounts(id),
		balance DECIMAL(15,2) NOT NULL DEFAULT 0,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_accounts_parent ON accounts(parent_account_id)`,
	`CREATE INDEX IF NOT EXISTS idx_lines_entry ON journal_entry_lines(journal_entry_id)`,
	`CREATE INDEX IF NOT EXISTS idx_lines_account ON journal_entry_lines(account_id)`,
	`CREATE INDEX IF NOT EXISTS idx_entries_date ON journal_entries(entry_date)`,
}
