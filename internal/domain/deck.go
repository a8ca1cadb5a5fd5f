package domain

import (
	"math/rand"
)

// DeckSize is the number of cards in a truco deck (no 8s, 9s or 10s).
const DeckSize = 40

// HandSize is the number of cards dealt to each player.
const HandSize = 3

// NewDeck returns the 40-card deck in rank-then-suit order.
func NewDeck() []Card {
	deck := make([]Card, 0, DeckSize)
	for _, r := range Ranks {
		for _, s := range Suits {
			deck = append(deck, Card{Rank: r, Suit: s})
		}
	}
	return deck
}

// ShuffleDeck returns a shuffled copy of the given deck using rng.
func ShuffleDeck(deck []Card, rng *rand.Rand) []Card {
	out := make([]Card, len(deck))
	copy(out, deck)
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}
