package bot

import (
	"degola/internal/domain"
)

func card(s string) domain.Card {
	c, err := domain.ParseCard(s)
	if err != nil {
		panic(err)
	}
	return c
}

func cards(list ...string) []domain.Card {
	out := make([]domain.Card, 0, len(list))
	for _, s := range list {
		out = append(out, card(s))
	}
	return out
}

func firstToPlay(round int, hand []domain.Card, vira domain.Card) domain.Intel {
	return domain.Intel{
		Cards:       hand,
		OpenCards:   []domain.Card{vira},
		Vira:        vira,
		RoundNumber: round,
	}
}

func secondToPlay(round int, hand []domain.Card, vira, opponent domain.Card) domain.Intel {
	intel := firstToPlay(round, hand, vira)
	intel.OpenCards = append(intel.OpenCards, opponent)
	intel.OpponentCard = domain.SomeCard(opponent)
	return intel
}

func withOpponentScore(intel domain.Intel, score int) domain.Intel {
	intel.OpponentScore = score
	return intel
}
