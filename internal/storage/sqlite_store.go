package storage

import (
	"database/sql"
	"errors"
	"eternalquest/internal/models"
	"eternalquest/internal/providers"
	"fmt"
	_ "modernc.org/sqlite"
	"os"
	"path/filepath"
	"strings"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS ledger (
	id        INTEGER PRIMARY KEY CHECK (id = 1),
	version   INTEGER NOT NULL,
	user_name TEXT    NOT NULL,
	score     INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS goals (
	position      INTEGER PRIMARY KEY,
	kind          TEXT    NOT NULL,
	name          TEXT    NOT NULL UNIQUE,
	points        INTEGER NOT NULL,
	completed     INTEGER NOT NULL DEFAULT 0,
	target_count  INTEGER NOT NULL DEFAULT 0,
	current_count INTEGER NOT NULL DEFAULT 0,
	bonus         INTEGER NOT NULL DEFAULT 0
);`

// SQLiteStore keeps one ledger per database file. Each Save creates the
// schema when needed and rewrites every row inside a single transaction.
type SQLiteStore struct {
	logger providers.Logger
}

func NewSQLiteStore(logger providers.Logger) *SQLiteStore {
	return &SQLiteStore{logger: logger}
}

func (s *SQLiteStore) open(path string) (*sql.DB, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	return db, nil
}

// hasLedger reports whether the database already carries the ledger table.
func hasLedger(db *sql.DB) (bool, error) {
	var n int
	err := db.QueryRow(`SELECT count(*) FROM sqlite_master WHERE type = 'table' AND name = 'ledger'`).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("inspect schema: %w", err)
	}
	return n > 0, nil
}

func (s *SQLiteStore) Save(path string, snapshot *models.Snapshot) error {
	db, err := s.open(path)
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err = db.Exec(sqliteSchema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err = tx.Exec(`DELETE FROM goals`); err != nil {
		return err
	}
	if _, err = tx.Exec(`DELETE FROM ledger`); err != nil {
		return err
	}
	if _, err = tx.Exec(
		`INSERT INTO ledger (id, version, user_name, score) VALUES (1, ?, ?, ?)`,
		snapshot.Version, snapshot.UserName, snapshot.Score,
	); err != nil {
		return fmt.Errorf("insert ledger: %w", err)
	}

	for i, g := range snapshot.Goals {
		_, err = tx.Exec(
			`INSERT INTO goals (position, kind, name, points, completed, target_count, current_count, bonus)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			i, string(g.Kind), g.Name, g.Points, g.Completed, g.Target, g.Current, g.Bonus,
		)
		if err != nil {
			return fmt.Errorf("insert goal %q: %w", g.Name, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	s.logger.Debugf(providers.TypeStorage, "Saved %d goals to sqlite %s", len(snapshot.Goals), path)
	return nil
}

func (s *SQLiteStore) Load(path string) (*models.Snapshot, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", models.ErrLedgerNotFound, path)
		}
		return nil, err
	}

	db, err := s.open(path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	// Load never writes: a database without the ledger table is left alone.
	ok, err := hasLedger(db)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s has no ledger", models.ErrLedgerNotFound, path)
	}

	var snapshot models.Snapshot
	err = db.QueryRow(`SELECT version, user_name, score FROM ledger WHERE id = 1`).
		Scan(&snapshot.Version, &snapshot.UserName, &snapshot.Score)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s has no ledger", models.ErrLedgerNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("read ledger: %w", err)
	}

	rows, err := db.Query(
		`SELECT kind, name, points, completed, target_count, current_count, bonus
		 FROM goals ORDER BY position`,
	)
	if err != nil {
		return nil, fmt.Errorf("read goals: %w", err)
	}
	defer rows.Close()

	snapshot.Goals = []models.Goal{}
	for rows.Next() {
		var g models.Goal
		var kind string
		if err := rows.Scan(&kind, &g.Name, &g.Points, &g.Completed, &g.Target, &g.Current, &g.Bonus); err != nil {
			return nil, fmt.Errorf("scan goal: %w", err)
		}
		g.Kind = models.Kind(kind)
		snapshot.Goals = append(snapshot.Goals, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read goals: %w", err)
	}

	return &snapshot, nil
}

func (s *SQLiteStore) Close() {}
