package internal

import "degola/internal/domain"

// Band is the coarse strength class of a card.
type Band int

const (
	BandWeak Band = iota
	BandMedium
	BandStrong
)

// BandOf classifies a card by nominal rank: 4-6 are weak, 7-K medium, A-3 strong.
// Manilhas are always strong.
func BandOf(c, vira domain.Card) Band {
	if domain.IsManilha(c, vira) {
		return BandStrong
	}
	switch {
	case c.Rank >= domain.Ace:
		return BandStrong
	case c.Rank >= domain.Seven:
		return BandMedium
	default:
		return BandWeak
	}
}

// HandProfile summarizes a hand's composition under a vira.
type HandProfile struct {
	TotalCards int
	Weak       int
	Medium     int
	Strong     int
	Manilhas   int
	HasZap     bool
	Strength   int
}

// ProfileHand counts bands, manilhas and the summed relative value of a hand.
func ProfileHand(hand []domain.Card, vira domain.Card) HandProfile {
	profile := HandProfile{TotalCards: len(hand)}
	for _, c := range hand {
		switch BandOf(c, vira) {
		case BandWeak:
			profile.Weak++
		case BandMedium:
			profile.Medium++
		case BandStrong:
			profile.Strong++
		}
		if domain.IsManilha(c, vira) {
			profile.Manilhas++
		}
		if domain.IsZap(c, vira) {
			profile.HasZap = true
		}
		profile.Strength += domain.RelativeValue(c, vira)
	}
	return profile
}

// CountManilha returns the number of manilhas in hand.
func CountManilha(hand []domain.Card, vira domain.Card) int {
	n := 0
	for _, c := range hand {
		if domain.IsManilha(c, vira) {
			n++
		}
	}
	return n
}

// CountStrongCards counts manilhas plus non-manilhas ranked at or above cutoff.
func CountStrongCards(hand []domain.Card, vira domain.Card, cutoff domain.Rank) int {
	n := 0
	for _, c := range hand {
		if domain.IsManilha(c, vira) || c.Rank >= cutoff {
			n++
		}
	}
	return n
}

// CountWeakCards returns the number of weak-banded cards.
func CountWeakCards(hand []domain.Card, vira domain.Card) int {
	return countBand(hand, vira, BandWeak)
}

// CountMediumCards returns the number of medium-banded cards.
func CountMediumCards(hand []domain.Card, vira domain.Card) int {
	return countBand(hand, vira, BandMedium)
}

func countBand(hand []domain.Card, vira domain.Card, band Band) int {
	n := 0
	for _, c := range hand {
		if BandOf(c, vira) == band {
			n++
		}
	}
	return n
}

func allInBand(hand []domain.Card, vira domain.Card, band Band) bool {
	if len(hand) == 0 {
		return false
	}
	return countBand(hand, vira, band) == len(hand)
}

// HasOnlyWeakCards reports whether every card is weak-banded.
func HasOnlyWeakCards(hand []domain.Card, vira domain.Card) bool {
	return allInBand(hand, vira, BandWeak)
}

// HasOnlyMediumCards reports whether every card is medium-banded.
func HasOnlyMediumCards(hand []domain.Card, vira domain.Card) bool {
	return allInBand(hand, vira, BandMedium)
}

// HasOnlyStrongCards reports whether every card is strong-banded.
func HasOnlyStrongCards(hand []domain.Card, vira domain.Card) bool {
	return allInBand(hand, vira, BandStrong)
}

// HasManilhaAndStrongCard reports whether the hand holds a manilha and a strong non-manilha.
func HasManilhaAndStrongCard(hand []domain.Card, vira domain.Card) bool {
	manilhas := CountManilha(hand, vira)
	return manilhas > 0 && countBand(hand, vira, BandStrong) > manilhas
}

// HasManilhaAndTwoWeakCards reports whether the hand holds a manilha and at least two weak cards.
func HasManilhaAndTwoWeakCards(hand []domain.Card, vira domain.Card) bool {
	return CountManilha(hand, vira) > 0 && CountWeakCards(hand, vira) >= 2
}

// HandStrength sums the relative value of every card in hand.
func HandStrength(hand []domain.Card, vira domain.Card) int {
	total := 0
	for _, c := range hand {
		total += domain.RelativeValue(c, vira)
	}
	return total
}
