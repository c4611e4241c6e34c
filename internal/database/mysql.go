package database

import (
	"general-ledger/internal/config"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
)

// New opens the configured database. MySQL is the production target;
// sqlite3 is used for local development and tests.
func New(cfg *config.Config) (*sqlx.DB, error) {
	if cfg.DBDriver == "sqlite3" {
		return NewSQLite(cfg.DBPath)
	}
	return NewMySQL(cfg)
}

func NewMySQL(cfg *config.Config) (*sqlx.DB, error) {
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		return nil, err
	}

	// Connection pool settings
	db.SetMaxOpenConns(cfg.DBMaxOpenConns)
	db.SetMaxIdleConns(cfg.DBMaxIdleConns)
	db.SetConnMaxLifetime(cfg.DBConnMaxLifetime)

	// Test connection
	if err := db.Ping(); err != nil {
		return nil, err
	}

	return db, nil
}
