package app

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"degola/internal/bot"
	"degola/internal/domain"
	"degola/internal/ports"
)

var (
	ErrUnknownDecision = errors.New("unknown decision kind")
	ErrInvalidIntel    = errors.New("invalid intel")
)

// DecisionRequest asks the bot for one decision.
type DecisionRequest struct {
	Kind    DecisionKind
	BotID   string
	MatchID string
	Intel   domain.Intel
}

// Decision holds the answer for the requested kind; only the matching field is meaningful.
type Decision struct {
	Kind          DecisionKind
	RaiseResponse domain.RaiseResponse
	Raise         bool
	Card          domain.CardToPlay
	PlayMaoDeOnze bool
}

// Outcome renders the decision as a short string for logs and storage.
func (d Decision) Outcome() string {
	switch d.Kind {
	case DecisionRaiseResponse:
		return d.RaiseResponse.String()
	case DecisionDecideIfRaises:
		return strconv.FormatBool(d.Raise)
	case DecisionChooseCard:
		if d.Card.Discard {
			return "discard " + d.Card.Card.String()
		}
		return "play " + d.Card.Card.String()
	case DecisionMaoDeOnze:
		return strconv.FormatBool(d.PlayMaoDeOnze)
	default:
		return ""
	}
}

// Result captures a decision and non-fatal outcomes.
type Result struct {
	Decision Decision
	// LogErr is set when the decision could not be recorded; the decision is still valid.
	LogErr error
}

// DecisionService runs bot decisions and records them.
type DecisionService struct {
	bot *bot.Bot
	log ports.DecisionLogPort
	now func() time.Time
}

// NewDecisionService constructs a DecisionService.
// b must be non-nil; log may be nil to skip recording.
func NewDecisionService(b *bot.Bot, log ports.DecisionLogPort) *DecisionService {
	return &DecisionService{bot: b, log: log, now: time.Now}
}

// Decide validates the request, asks the bot and records the decision.
// Returns an error for invalid input; recording failures are reported in Result.LogErr.
func (s *DecisionService) Decide(ctx context.Context, req DecisionRequest) (Result, error) {
	if s == nil || s.bot == nil {
		return Result{}, fmt.Errorf("decision service not configured")
	}
	if err := ValidateIntel(req.Intel); err != nil {
		return Result{}, err
	}

	decision, err := s.decide(req)
	if err != nil {
		return Result{}, err
	}

	result := Result{Decision: decision}
	if s.log != nil {
		if err := s.log.RecordDecision(ctx, s.record(req, decision)); err != nil {
			result.LogErr = err
		}
	}
	return result, nil
}

func (s *DecisionService) decide(req DecisionRequest) (Decision, error) {
	d := Decision{Kind: req.Kind}
	var err error
	switch req.Kind {
	case DecisionRaiseResponse:
		d.RaiseResponse, err = s.bot.RaiseResponse(req.Intel)
	case DecisionDecideIfRaises:
		d.Raise, err = s.bot.DecideIfRaises(req.Intel)
	case DecisionChooseCard:
		d.Card, err = s.bot.ChooseCard(req.Intel)
	case DecisionMaoDeOnze:
		d.PlayMaoDeOnze, err = s.bot.MaoDeOnzeResponse(req.Intel)
	default:
		return Decision{}, fmt.Errorf("%w: %q", ErrUnknownDecision, req.Kind)
	}
	if err != nil {
		return Decision{}, err
	}
	return d, nil
}

func (s *DecisionService) record(req DecisionRequest, d Decision) ports.DecisionRecord {
	rec := ports.DecisionRecord{
		RunID:     req.MatchID,
		BotID:     req.BotID,
		Kind:      string(req.Kind),
		Round:     req.Intel.RoundNumber,
		Hand:      cardStrings(req.Intel.Cards),
		Vira:      req.Intel.Vira.String(),
		Outcome:   d.Outcome(),
		CreatedAt: s.now().UTC(),
	}
	if c, ok := req.Intel.OpponentCard.Get(); ok {
		rec.OpponentCard = c.String()
	}
	return rec
}

// ValidateIntel checks the snapshot invariants a host must uphold.
func ValidateIntel(intel domain.Intel) error {
	if len(intel.Cards) > domain.HandSize {
		return fmt.Errorf("%w: hand has %d cards", ErrInvalidIntel, len(intel.Cards))
	}
	if !intel.Vira.Rank.Valid() || !intel.Vira.Suit.Valid() {
		return fmt.Errorf("%w: missing vira", ErrInvalidIntel)
	}
	if domain.HasDuplicates(intel.Cards) {
		return fmt.Errorf("%w: duplicate cards in hand", ErrInvalidIntel)
	}
	if domain.ContainsCard(intel.Cards, intel.Vira) {
		return fmt.Errorf("%w: vira %s is in hand", ErrInvalidIntel, intel.Vira)
	}
	if c, ok := intel.OpponentCard.Get(); ok {
		if domain.ContainsCard(intel.Cards, c) || c == intel.Vira {
			return fmt.Errorf("%w: opponent card %s is already dealt", ErrInvalidIntel, c)
		}
	}
	return nil
}

func cardStrings(cards []domain.Card) []string {
	out := make([]string, 0, len(cards))
	for _, c := range cards {
		out = append(out, c.String())
	}
	return out
}
