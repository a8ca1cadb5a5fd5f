package sim

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"

	"degola/internal/app"
	"degola/internal/domain"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"
)

// ErrPostcondition is returned when the bot answers with a card it does not hold
// or discards in the first trick.
var ErrPostcondition = errors.New("decision postcondition violated")

// Config controls one simulation run.
type Config struct {
	RunID   string
	Deals   int
	Seed    int64
	Workers int
}

// Summary aggregates the decisions taken across a run.
type Summary struct {
	Deals          int
	RaiseResponses map[domain.RaiseResponse]int
	Raises         int
	MaoDeOnze      int
	Discards       int
	// Trick outcomes of the chosen card in deals where the opponent led.
	Won, Tied, Lost int
	LogErrors       int
}

func newSummary() Summary {
	return Summary{RaiseResponses: make(map[domain.RaiseResponse]int)}
}

func (s *Summary) merge(o Summary) {
	s.Deals += o.Deals
	for k, v := range o.RaiseResponses {
		s.RaiseResponses[k] += v
	}
	s.Raises += o.Raises
	s.MaoDeOnze += o.MaoDeOnze
	s.Discards += o.Discards
	s.Won += o.Won
	s.Tied += o.Tied
	s.Lost += o.Lost
	s.LogErrors += o.LogErrors
}

// Deal is one simulated first-round situation.
type Deal struct {
	Hand          []domain.Card
	Vira          domain.Card
	Opponent      domain.OptionalCard
	Score         int
	OpponentScore int
}

// NewDeal deals a hand from a deck shuffled by rng. When opponentLeads is set the
// opponent's first card is exposed.
func NewDeal(rng *rand.Rand, opponentLeads bool) Deal {
	deck := domain.ShuffleDeck(domain.NewDeck(), rng)
	d := Deal{
		Hand:          append([]domain.Card(nil), deck[:domain.HandSize]...),
		Vira:          deck[domain.HandSize],
		Opponent:      domain.NoCard,
		Score:         rng.Intn(12),
		OpponentScore: rng.Intn(12),
	}
	if opponentLeads {
		d.Opponent = domain.SomeCard(deck[domain.HandSize+1])
	}
	return d
}

// Intel returns the snapshot the bot sees for the deal.
func (d Deal) Intel() domain.Intel {
	open := []domain.Card{d.Vira}
	if c, ok := d.Opponent.Get(); ok {
		open = append(open, c)
	}
	return domain.Intel{
		Cards:         d.Hand,
		OpenCards:     open,
		Vira:          d.Vira,
		RoundNumber:   1,
		Score:         d.Score,
		OpponentScore: d.OpponentScore,
		OpponentCard:  d.Opponent,
	}
}

// Runner plays simulated deals through a decision service.
type Runner struct {
	service *app.DecisionService
	logger  *log.Logger
	botID   string
}

func NewRunner(service *app.DecisionService, logger *log.Logger, botID string) *Runner {
	return &Runner{
		service: service,
		logger:  logger.WithPrefix("sim"),
		botID:   botID,
	}
}

// Run plays cfg.Deals deals on at most cfg.Workers goroutines. Deal i is seeded with
// cfg.Seed+i, so a run is reproducible regardless of scheduling.
func (r *Runner) Run(ctx context.Context, cfg Config) (Summary, error) {
	if cfg.Deals <= 0 {
		return newSummary(), fmt.Errorf("deals must be positive, got %d", cfg.Deals)
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}

	var (
		mu    sync.Mutex
		total = newSummary()
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < cfg.Deals; i++ {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rng := rand.New(rand.NewSource(cfg.Seed + int64(i)))
			deal := NewDeal(rng, i%2 == 1)

			s, err := r.playDeal(ctx, cfg.RunID, deal)
			if err != nil {
				return fmt.Errorf("deal %d: %w", i, err)
			}

			mu.Lock()
			total.merge(s)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return total, err
	}

	r.logger.Info("run complete",
		"run", cfg.RunID,
		"deals", total.Deals,
		"won", total.Won,
		"tied", total.Tied,
		"lost", total.Lost,
		"logErrors", total.LogErrors)
	return total, nil
}

func (r *Runner) playDeal(ctx context.Context, runID string, deal Deal) (Summary, error) {
	s := newSummary()
	s.Deals = 1
	intel := deal.Intel()

	for _, kind := range app.DecisionKinds {
		result, err := r.service.Decide(ctx, app.DecisionRequest{
			Kind:    kind,
			BotID:   r.botID,
			MatchID: runID,
			Intel:   intel,
		})
		if err != nil {
			return s, err
		}
		if result.LogErr != nil {
			s.LogErrors++
			r.logger.Warn("failed to record decision", "kind", kind, "err", result.LogErr)
		}

		d := result.Decision
		switch kind {
		case app.DecisionRaiseResponse:
			s.RaiseResponses[d.RaiseResponse]++
		case app.DecisionDecideIfRaises:
			if d.Raise {
				s.Raises++
			}
		case app.DecisionMaoDeOnze:
			if d.PlayMaoDeOnze {
				s.MaoDeOnze++
			}
		case app.DecisionChooseCard:
			if err := checkCard(deal, d.Card); err != nil {
				return s, err
			}
			if d.Card.Discard {
				s.Discards++
			}
			tallyTrick(&s, deal, d.Card)
		}
	}

	r.logger.Debug("deal played", "hand", deal.Hand, "vira", deal.Vira, "opponentLeads", deal.Opponent.Present())
	return s, nil
}

func checkCard(deal Deal, choice domain.CardToPlay) error {
	if !domain.ContainsCard(deal.Hand, choice.Card) {
		return fmt.Errorf("%w: %s is not in hand %v", ErrPostcondition, choice.Card, deal.Hand)
	}
	if choice.Discard {
		return fmt.Errorf("%w: discarded %s in the first trick", ErrPostcondition, choice.Card)
	}
	return nil
}

func tallyTrick(s *Summary, deal Deal, choice domain.CardToPlay) {
	opponent, ok := deal.Opponent.Get()
	if !ok {
		return
	}
	switch {
	case choice.Discard:
		s.Lost++
	case domain.Beats(choice.Card, opponent, deal.Vira):
		s.Won++
	case domain.Ties(choice.Card, opponent, deal.Vira):
		s.Tied++
	default:
		s.Lost++
	}
}
