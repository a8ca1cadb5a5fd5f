package nakama

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"degola/internal/ports"

	"github.com/google/uuid"
	"github.com/heroiclabs/nakama-common/runtime"
)

// NakamaDecisionLogAdapter records bot decisions as system-owned storage objects.
type NakamaDecisionLogAdapter struct {
	nk         runtime.NakamaModule
	collection string
}

// NewNakamaDecisionLogAdapter creates a decision log writing to collection.
func NewNakamaDecisionLogAdapter(nk runtime.NakamaModule, collection string) *NakamaDecisionLogAdapter {
	return &NakamaDecisionLogAdapter{nk: nk, collection: collection}
}

type storedDecision struct {
	RunID        string   `json:"run_id"`
	BotID        string   `json:"bot_id"`
	Kind         string   `json:"kind"`
	Round        int      `json:"round"`
	Hand         []string `json:"hand"`
	Vira         string   `json:"vira"`
	OpponentCard string   `json:"opponent_card,omitempty"`
	Outcome      string   `json:"outcome"`
	CreatedAt    string   `json:"created_at"`
}

// RecordDecision writes rec under a fresh uuid key unless rec.ID is set.
func (a *NakamaDecisionLogAdapter) RecordDecision(ctx context.Context, rec ports.DecisionRecord) error {
	if a.nk == nil {
		return fmt.Errorf("nakama module is nil")
	}
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}

	value, err := json.Marshal(storedDecision{
		RunID:        rec.RunID,
		BotID:        rec.BotID,
		Kind:         rec.Kind,
		Round:        rec.Round,
		Hand:         rec.Hand,
		Vira:         rec.Vira,
		OpponentCard: rec.OpponentCard,
		Outcome:      rec.Outcome,
		CreatedAt:    rec.CreatedAt.Format(time.RFC3339),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal decision: %w", err)
	}

	_, err = a.nk.StorageWrite(ctx, []*runtime.StorageWrite{
		{
			Collection:      a.collection,
			Key:             rec.ID,
			Value:           string(value),
			PermissionRead:  runtime.STORAGE_PERMISSION_NO_READ,
			PermissionWrite: runtime.STORAGE_PERMISSION_NO_WRITE,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to write decision: %w", err)
	}
	return nil
}

var _ ports.DecisionLogPort = (*NakamaDecisionLogAdapter)(nil)
