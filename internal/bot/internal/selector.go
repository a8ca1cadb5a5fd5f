package internal

import "degola/internal/domain"

// SelectWeakestCard returns the weakest card in hand, or the zero Card for an empty hand.
func SelectWeakestCard(hand []domain.Card, vira domain.Card) domain.Card {
	var weakest domain.Card
	for i, c := range hand {
		if i == 0 || domain.CompareValueTo(c, weakest, vira) < 0 {
			weakest = c
		}
	}
	return weakest
}

// SelectStrongestCard returns the strongest card in hand, or the zero Card for an empty hand.
func SelectStrongestCard(hand []domain.Card, vira domain.Card) domain.Card {
	var strongest domain.Card
	for i, c := range hand {
		if i == 0 || domain.CompareValueTo(c, strongest, vira) > 0 {
			strongest = c
		}
	}
	return strongest
}

// FindWeakestWinningCard returns the cheapest card that beats ref.
// The whole hand is scanned so the result is minimal, not merely the first winner.
func FindWeakestWinningCard(hand []domain.Card, ref, vira domain.Card) (domain.Card, bool) {
	var best domain.Card
	found := false
	for _, c := range hand {
		if !domain.Beats(c, ref, vira) {
			continue
		}
		if !found || domain.CompareValueTo(c, best, vira) < 0 {
			best = c
			found = true
		}
	}
	return best, found
}

// FindTyingCard returns the cheapest card that ties ref.
func FindTyingCard(hand []domain.Card, ref, vira domain.Card) (domain.Card, bool) {
	var best domain.Card
	found := false
	for _, c := range hand {
		if !domain.Ties(c, ref, vira) {
			continue
		}
		if !found || domain.CompareValueTo(c, best, vira) < 0 {
			best = c
			found = true
		}
	}
	return best, found
}

// FindManilha returns the first manilha in hand order.
func FindManilha(hand []domain.Card, vira domain.Card) (domain.Card, bool) {
	for _, c := range hand {
		if domain.IsManilha(c, vira) {
			return c, true
		}
	}
	return domain.Card{}, false
}

// SelectCardAbove returns the strongest non-manilha ranked above baseline,
// falling back to the strongest card so the manilha is only spent when nothing else qualifies.
func SelectCardAbove(hand []domain.Card, vira domain.Card, baseline domain.Rank) domain.Card {
	var best domain.Card
	found := false
	for _, c := range hand {
		if domain.IsManilha(c, vira) || c.Rank <= baseline {
			continue
		}
		if !found || domain.CompareValueTo(c, best, vira) > 0 {
			best = c
			found = true
		}
	}
	if !found {
		return SelectStrongestCard(hand, vira)
	}
	return best
}
