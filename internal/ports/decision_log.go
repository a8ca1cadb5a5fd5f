package ports

import (
	"context"
	"time"
)

// DecisionRecord is one bot decision as persisted by a decision log.
type DecisionRecord struct {
	ID           string
	RunID        string // match id for live play, simulator run id otherwise
	BotID        string
	Kind         string
	Round        int
	Hand         []string
	Vira         string
	OpponentCard string // empty when the bot led the trick
	Outcome      string
	CreatedAt    time.Time
}

// DecisionLogPort persists bot decisions for later analysis.
type DecisionLogPort interface {
	// RecordDecision stores rec. Implementations assign rec.ID when it is empty.
	RecordDecision(ctx context.Context, rec DecisionRecord) error
}
