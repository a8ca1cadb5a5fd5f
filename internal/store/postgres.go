package store

import (
	"context"
	_ "embed"
	"fmt"

	"degola/internal/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed schema_postgres.sql
var postgresSchema string

// PostgresDecisionLog persists bot decisions in PostgreSQL, for runs shared across machines.
type PostgresDecisionLog struct{ *pgxpool.Pool }

// OpenPostgres connects to dsn and applies the decision schema.
func OpenPostgres(ctx context.Context, dsn string) (*PostgresDecisionLog, error) {
	p, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres decision log: %w", err)
	}
	if _, err := p.Exec(ctx, postgresSchema); err != nil {
		p.Close()
		return nil, fmt.Errorf("failed to migrate decision schema: %w", err)
	}
	return &PostgresDecisionLog{p}, nil
}

func (l *PostgresDecisionLog) Close() error {
	l.Pool.Close()
	return nil
}

// RecordDecision inserts rec, assigning a uuid when rec.ID is empty.
func (l *PostgresDecisionLog) RecordDecision(ctx context.Context, rec ports.DecisionRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	hand := rec.Hand
	if hand == nil {
		hand = []string{}
	}
	_, err := l.Exec(ctx, `
		INSERT INTO bot_decisions (id, run_id, bot_id, kind, round, hand, vira, opponent_card, outcome, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, rec.ID, rec.RunID, rec.BotID, rec.Kind, rec.Round, hand, rec.Vira, rec.OpponentCard, rec.Outcome, rec.CreatedAt.UTC())
	if err != nil {
		return fmt.Errorf("failed to insert decision: %w", err)
	}
	return nil
}

// OutcomeCounts tallies the outcomes of one decision kind within runID.
func (l *PostgresDecisionLog) OutcomeCounts(ctx context.Context, runID, kind string) (map[string]int, error) {
	rows, err := l.Query(ctx, `
		SELECT outcome, COUNT(*) FROM bot_decisions
		 WHERE run_id = $1 AND kind = $2
		 GROUP BY outcome
	`, runID, kind)
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

var _ ports.DecisionLogPort = (*PostgresDecisionLog)(nil)
