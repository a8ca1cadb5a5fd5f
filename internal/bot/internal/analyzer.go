package internal

import (
	"degola/internal/domain"
)

// BossStats describes the hand against every card the bot has not seen yet.
type BossStats struct {
	UnseenCards []domain.Card
	BossCards   []domain.Card // cards in hand no unseen card can beat
	Dominance   float64       // 0 to 1, share of unseen cards the strongest held card beats
}

// AnalyzeHand performs card counting over the exposed cards and identifies boss cards.
func AnalyzeHand(hand []domain.Card, open []domain.Card, vira domain.Card) BossStats {
	unseen := domain.RemoveCards(domain.NewDeck(), open)
	unseen = domain.RemoveCards(unseen, hand)
	unseen = domain.RemoveCards(unseen, []domain.Card{vira})

	stats := BossStats{UnseenCards: unseen}
	if len(hand) == 0 {
		return stats
	}
	if len(unseen) == 0 {
		stats.BossCards = append([]domain.Card(nil), hand...)
		stats.Dominance = 1.0
		return stats
	}

	highest := getHighestValue(unseen, vira)
	for _, c := range hand {
		if domain.RelativeValue(c, vira) >= highest {
			stats.BossCards = append(stats.BossCards, c)
		}
	}

	best := domain.RelativeValue(SelectStrongestCard(hand, vira), vira)
	beaten := 0
	for _, c := range unseen {
		if domain.RelativeValue(c, vira) < best {
			beaten++
		}
	}
	stats.Dominance = float64(beaten) / float64(len(unseen))

	return stats
}

func getHighestValue(cards []domain.Card, vira domain.Card) int {
	highest := 0
	for _, c := range cards {
		if v := domain.RelativeValue(c, vira); v > highest {
			highest = v
		}
	}
	return highest
}
