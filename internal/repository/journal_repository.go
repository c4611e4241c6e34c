package repository

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"general-ledger/internal/models"
)

type JournalRepository struct {
	db *sqlx.DB
}

func NewJournalRepository(db *sqlx.DB) *JournalRepository {
	return &JournalRepository{db: db}
}

func (r *JournalRepository) FindAll(limit, offset int, search string) ([]models.JournalEntry, int, error) {
	var entries []models.JournalEntry
	var total int

	whereClause := ""
	args := []interface{}{}

	if search != "" {
		whereClause = "WHERE entry_number LIKE ? OR description LIKE ?"
		searchPattern := "%" + search + "%"
		args = append(args, searchPattern, searchPattern)
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM journal_entries %s", whereClause)
	err := r.db.Get(&total, countQuery, args...)
	if err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
		SELECT * FROM journal_entries %s
		ORDER BY entry_date DESC, id DESC
		LIMIT ? OFFSET ?`, whereClause)
	args = append(args, limit, offset)
	err = r.db.Select(&entries, query, args...)
	if err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}

func (r *JournalRepository) FindByID(id int) (*models.JournalEntry, error) {
	var entry models.JournalEntry
	query := "SELECT * FROM journal_entries WHERE id = ? LIMIT 1"
	err := r.db.Get(&entry, query, id)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *JournalRepository) Count() (int, error) {
	var total int
	err := r.db.Get(&total, "SELECT COUNT(*) FROM journal_entries")
	return total, err
}

func (r *JournalRepository) InsertHeader(entry *models.JournalEntry) error {
	query := `INSERT INTO journal_entries (entry_number, reference, entry_date, description, total_debit, total_credit, is_balanced)
	          VALUES (:entry_number, :reference, :entry_date, :description, :total_debit, :total_credit, :is_balanced)`
	result, err := r.db.NamedExec(query, entry)
	if err != nil {
		return err
	}
	id, _ := result.LastInsertId()
	entry.ID = int(id)
	return nil
}

func (r *JournalRepository) UpdateHeader(entry *models.JournalEntry) error {
	query := `UPDATE journal_entries SET entry_date = :entry_date, description = :description,
	          total_debit = :total_debit, total_credit = :total_credit, is_balanced = :is_balanced,
	          updated_at = CURRENT_TIMESTAMP
	          WHERE id = :id`
	_, err := r.db.NamedExec(query, entry)
	return err
}

// DeleteHeader removes an entry header. Only used as the compensating
// action when line insertion fails, and for discarding entries that never
// received lines.
func (r *JournalRepository) DeleteHeader(id int) error {
	_, err := r.db.Exec("DELETE FROM journal_entries WHERE id = ?", id)
	return err
}

func (r *JournalRepository) InsertLines(lines []models.JournalEntryLine) error {
	if len(lines) == 0 {
		return nil
	}
	query := `INSERT INTO journal_entry_lines (journal_entry_id, account_id, debit_amount, credit_amount, line_number, description)
	          VALUES (:journal_entry_id, :account_id, :debit_amount, :credit_amount, :line_number, :description)`
	_, err := r.db.NamedExec(query, lines)
	return err
}

func (r *JournalRepository) FindLinesByEntry(entryID int) ([]models.JournalEntryLine, error) {
	var lines []models.JournalEntryLine
	query := "SELECT * FROM journal_entry_lines WHERE journal_entry_id = ? ORDER BY line_number, id"
	err := r.db.Select(&lines, query, entryID)
	return lines, err
}

func (r *JournalRepository) DeleteLinesByEntry(entryID int) error {
	_, err := r.db.Exec("DELETE FROM journal_entry_lines WHERE journal_entry_id = ?", entryID)
	return err
}

// UpdateLineAmounts rewrites one line's debit/credit pair. Reversal swaps
// the pair line by line in Go rather than in SQL, where self-referencing
// assignment order is dialect-dependent.
func (r *JournalRepository) UpdateLineAmounts(lineID int, debit, credit decimal.Decimal) error {
	query := "UPDATE journal_entry_lines SET debit_amount = ?, credit_amount = ? WHERE id = ?"
	_, err := r.db.Exec(query, debit, credit, lineID)
	return err
}

func (r *JournalRepository) CountLinesByAccount(accountID int) (int, error) {
	var count int
	query := "SELECT COUNT(*) FROM journal_entry_lines WHERE account_id = ?"
	err := r.db.Get(&count, query, accountID)
	return count, err
}

func (r *JournalRepository) EntryNumberExists(number string) (bool, error) {
	var count int
	query := "SELECT COUNT(*) FROM journal_entries WHERE entry_number = ?"
	err := r.db.Get(&count, query, number)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// SumActivityByAccount aggregates posted debits and credits per account for
// entries dated inside [start, end]. A nil start means everything up to end.
func (r *JournalRepository) SumActivityByAccount(start *time.Time, end time.Time) ([]models.AccountActivity, error) {
	var activity []models.AccountActivity
	query := `
		SELECT l.account_id,
		       COALESCE(SUM(l.debit_amount), 0) AS debit_total,
		       COALESCE(SUM(l.credit_amount), 0) AS credit_total
		FROM journal_entry_lines l
		JOIN journal_entries e ON e.id = l.journal_entry_id
		WHERE e.entry_date <= ?`
	args := []interface{}{end}
	if start != nil {
		query += " AND e.entry_date >= ?"
		args = append(args, *start)
	}
	query += " GROUP BY l.account_id"

	err := r.db.Select(&activity, query, args...)
	return activity, err
}
