package bot

import (
	"degola/internal/domain"
)

// Bot is the host-facing entry point: every call re-selects the round strategy
// from the snapshot, so a Bot carries no per-hand state and is safe for concurrent use.
type Bot struct {
	Tuning Tuning
}

// New creates a bot with the given tuning.
func New(tuning Tuning) *Bot {
	return &Bot{Tuning: tuning}
}

// NewDefault creates a bot with DefaultTuning.
func NewDefault() *Bot {
	return New(DefaultTuning)
}

// StrategyForRound returns the strategy governing round.
func (b *Bot) StrategyForRound(round int) (Strategy, error) {
	return strategyForRound(round, b.Tuning)
}

// RaiseResponse answers an opponent raise.
func (b *Bot) RaiseResponse(intel domain.Intel) (domain.RaiseResponse, error) {
	strategy, err := b.StrategyForRound(intel.RoundNumber)
	if err != nil {
		return domain.Decline, err
	}
	return strategy.RaiseResponse(intel), nil
}

// DecideIfRaises reports whether the bot raises the stake.
func (b *Bot) DecideIfRaises(intel domain.Intel) (bool, error) {
	strategy, err := b.StrategyForRound(intel.RoundNumber)
	if err != nil {
		return false, err
	}
	return strategy.DecideIfRaises(intel), nil
}

// ChooseCard selects the card to play. The result is always a member of intel.Cards.
func (b *Bot) ChooseCard(intel domain.Intel) (domain.CardToPlay, error) {
	if len(intel.Cards) == 0 {
		return domain.CardToPlay{}, ErrEmptyHand
	}
	strategy, err := b.StrategyForRound(intel.RoundNumber)
	if err != nil {
		return domain.CardToPlay{}, err
	}
	return strategy.ChooseCard(intel)
}

// MaoDeOnzeResponse reports whether to play the mão de onze.
func (b *Bot) MaoDeOnzeResponse(intel domain.Intel) (bool, error) {
	strategy, err := b.StrategyForRound(intel.RoundNumber)
	if err != nil {
		return false, err
	}
	return strategy.MaoDeOnzeResponse(intel), nil
}
