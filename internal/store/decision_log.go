package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"time"

	"degola/internal/ports"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

const tableName = "bot_decisions"

// DecisionLog persists bot decisions in a SQLite database.
type DecisionLog struct {
	db *sql.DB
	mu sync.Mutex
}

// Open opens (creating if needed) the SQLite database at path. Use ":memory:" for a throwaway log.
func Open(path string) (*DecisionLog, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open decision log: %w", err)
	}
	// A single connection keeps ":memory:" databases shared and serializes sqlite writes.
	db.SetMaxOpenConns(1)

	if err := createTables(db); err != nil {
		db.Close()
		return nil, err
	}
	return &DecisionLog{db: db}, nil
}

func createTables(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS ` + tableName + ` (
			id TEXT PRIMARY KEY,
			run_id TEXT,
			bot_id TEXT,
			kind TEXT,
			round INTEGER,
			hand TEXT,
			vira TEXT,
			opponent_card TEXT,
			outcome TEXT,
			created_at TEXT
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create decision table: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (l *DecisionLog) Close() error {
	return l.db.Close()
}

// RecordDecision inserts rec, assigning a uuid when rec.ID is empty.
func (l *DecisionLog) RecordDecision(ctx context.Context, rec ports.DecisionRecord) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	_, err := l.db.ExecContext(ctx, "INSERT INTO "+tableName+
		" (id, run_id, bot_id, kind, round, hand, vira, opponent_card, outcome, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
		rec.ID,
		rec.RunID,
		rec.BotID,
		rec.Kind,
		rec.Round,
		strings.Join(rec.Hand, " "),
		rec.Vira,
		rec.OpponentCard,
		rec.Outcome,
		rec.CreatedAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("failed to insert decision: %w", err)
	}
	return nil
}

// Records returns every decision of runID in insertion order.
func (l *DecisionLog) Records(ctx context.Context, runID string) ([]ports.DecisionRecord, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	rows, err := l.db.QueryContext(ctx,
		"SELECT id, run_id, bot_id, kind, round, hand, vira, opponent_card, outcome, created_at FROM "+tableName+
			" WHERE run_id = ? ORDER BY rowid", runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []ports.DecisionRecord
	for rows.Next() {
		var rec ports.DecisionRecord
		var hand, createdAt string
		if err := rows.Scan(
			&rec.ID,
			&rec.RunID,
			&rec.BotID,
			&rec.Kind,
			&rec.Round,
			&hand,
			&rec.Vira,
			&rec.OpponentCard,
			&rec.Outcome,
			&createdAt); err != nil {
			return nil, err
		}
		if hand != "" {
			rec.Hand = strings.Split(hand, " ")
		}
		rec.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
		records = append(records, rec)
	}
	return records, rows.Err()
}

// OutcomeCounts tallies the outcomes of one decision kind within runID.
func (l *DecisionLog) OutcomeCounts(ctx context.Context, runID, kind string) (map[string]int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	rows, err := l.db.QueryContext(ctx,
		"SELECT outcome, COUNT(*) FROM "+tableName+" WHERE run_id = ? AND kind = ? GROUP BY outcome", runID, kind)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var outcome string
		var n int
		if err := rows.Scan(&outcome, &n); err != nil {
			return nil, err
		}
		counts[outcome] = n
	}
	return counts, rows.Err()
}

var _ ports.DecisionLogPort = (*DecisionLog)(nil)
