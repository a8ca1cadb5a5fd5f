package bot

import (
	"fmt"
)

// StrategyForRound returns the strategy for round using DefaultTuning.
func StrategyForRound(round int) (Strategy, error) {
	return strategyForRound(round, DefaultTuning)
}

func strategyForRound(round int, tuning Tuning) (Strategy, error) {
	switch round {
	case 1:
		return &FirstRound{Tuning: tuning}, nil
	case 2:
		return &SecondRound{Tuning: tuning}, nil
	case 3:
		return &ThirdRound{Tuning: tuning}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedRound, round)
	}
}
