package domain

// ContainsCard reports whether hand holds c.
func ContainsCard(hand []Card, c Card) bool {
	for _, h := range hand {
		if h == c {
			return true
		}
	}
	return false
}

// RemoveCards removes the specified cards from a hand and returns the updated hand.
func RemoveCards(hand []Card, toRemove []Card) []Card {
	if len(toRemove) == 0 || len(hand) == 0 {
		return hand
	}

	remove := make(map[Card]bool, len(toRemove))
	for _, card := range toRemove {
		remove[card] = true
	}

	updated := make([]Card, 0, len(hand))
	for _, card := range hand {
		if remove[card] {
			continue
		}
		updated = append(updated, card)
	}

	return updated
}

// HasDuplicates reports whether any card appears more than once.
func HasDuplicates(cards []Card) bool {
	seen := make(map[Card]bool, len(cards))
	for _, c := range cards {
		if seen[c] {
			return true
		}
		seen[c] = true
	}
	return false
}
