package ledger

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/cleared-dev/spendwise/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// SQLiteStore keeps every user's ledger in one embedded database.
type SQLiteStore struct {
	db  *sql.DB
	log *zap.Logger
}

// OpenSQLite opens or creates the ledger database at dbPath.
func OpenSQLite(dbPath string, log *zap.Logger) (*SQLiteStore, error) {
	if log == nil {
		log = zap.NewNop()
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("creating ledger db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening ledger db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &SQLiteStore{db: db, log: log}, nil
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Append inserts e after the user's existing expenses.
func (s *SQLiteStore) Append(user string, e model.Expense) error {
	if err := ValidateUser(user); err != nil {
		return err
	}

	_, err := s.db.Exec(`INSERT INTO expenses
		(username, date, category, amount, description, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		user,
		e.Date.Format(dateFormat),
		string(e.Category),
		e.Amount.String(),
		e.Description,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting expense: %w", err)
	}

	s.log.Debug("expense appended",
		zap.String("user", user),
		zap.String("category", string(e.Category)),
		zap.String("amount", e.Amount.String()))
	return nil
}

// Load returns the user's expenses in insertion order.
func (s *SQLiteStore) Load(user string) (model.Ledger, error) {
	if err := ValidateUser(user); err != nil {
		return model.Ledger{}, err
	}

	rows, err := s.db.Query(`SELECT id, date, category, amount, description
		FROM expenses WHERE username = ? ORDER BY id`, user)
	if err != nil {
		return model.Ledger{}, fmt.Errorf("querying expenses: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var expenses []model.Expense
	for rows.Next() {
		var (
			id                   int64
			date, cat, amt, desc string
		)
		if err := rows.Scan(&id, &date, &cat, &amt, &desc); err != nil {
			return model.Ledger{}, fmt.Errorf("scanning expense: %w", err)
		}

		d, err := parseDate(date)
		if err != nil {
			return model.Ledger{}, &ParseError{Path: fmt.Sprintf("expenses#%d", id), Err: err}
		}
		amount, err := decimal.NewFromString(amt)
		if err != nil {
			return model.Ledger{}, &ParseError{Path: fmt.Sprintf("expenses#%d", id), Err: fmt.Errorf("parsing amount %q: %w", amt, err)}
		}

		expenses = append(expenses, model.Expense{
			Date:        d,
			Category:    model.Category(cat),
			Amount:      amount,
			Description: desc,
		})
	}
	if err := rows.Err(); err != nil {
		return model.Ledger{}, fmt.Errorf("reading expenses: %w", err)
	}

	s.log.Debug("ledger loaded", zap.String("user", user), zap.Int("records", len(expenses)))
	return model.Ledger{User: user, Expenses: expenses}, nil
}
