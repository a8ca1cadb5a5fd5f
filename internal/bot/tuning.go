package bot

import "degola/internal/domain"

// Tuning holds the empirical thresholds of the round strategies.
type Tuning struct {
	// StrongCutoff is the default rank from which a non-manilha counts as strong.
	StrongCutoff domain.Rank
	// HighCutoff is the stricter cutoff used when judging pairs of good cards.
	HighCutoff domain.Rank
	// LowCutoff is the looser cutoff used when the opponent's card is visible.
	LowCutoff domain.Rank
	// Baseline is the rank a leading card must exceed to be committed instead of a manilha.
	Baseline domain.Rank
	// OpponentScoreCeiling accepts raises with any strong card while the opponent is below it.
	OpponentScoreCeiling int
	// MaoDeOnzeThreshold is the hand strength the mão de onze must exceed to be accepted.
	MaoDeOnzeThreshold int
}

// DefaultTuning reproduces the thresholds the bot was calibrated with.
var DefaultTuning = Tuning{
	StrongCutoff:         domain.Ace,
	HighCutoff:           domain.Ace,
	LowCutoff:            domain.King,
	Baseline:             domain.King,
	OpponentScoreCeiling: 6,
	MaoDeOnzeThreshold:   21,
}
