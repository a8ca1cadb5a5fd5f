package domain

// ManilhaRank returns the rank made dominant by the vira.
func ManilhaRank(vira Card) Rank {
	return vira.Rank.Next()
}

// IsManilha reports whether c is one of the four cards of the manilha rank.
func IsManilha(c, vira Card) bool {
	return c.Rank == ManilhaRank(vira)
}

// IsZap reports whether c is the strongest manilha of the deal.
func IsZap(c, vira Card) bool {
	return IsManilha(c, vira) && c.Suit == Clubs
}

// RelativeValue maps a card onto the fixed strength scale used by every heuristic:
// non-manilhas take 1..9 in nominal order with the manilha rank removed, manilhas take 10..13 by suit.
func RelativeValue(c, vira Card) int {
	manilha := ManilhaRank(vira)
	if c.Rank == manilha {
		return 9 + int(c.Suit)
	}
	if c.Rank > manilha {
		return int(c.Rank) - 1
	}
	return int(c.Rank)
}

// CompareValueTo orders two cards under the given vira. The order is strict and total:
// the result is zero only when c and other are the same card.
func CompareValueTo(c, other, vira Card) int {
	if diff := RelativeValue(c, vira) - RelativeValue(other, vira); diff != 0 {
		return diff
	}
	return int(c.Suit) - int(other.Suit)
}

// Beats reports whether c wins a trick against other. Equal non-manilha ranks do not beat each other.
func Beats(c, other, vira Card) bool {
	return RelativeValue(c, vira) > RelativeValue(other, vira)
}

// Ties reports whether c and other would tie a trick: distinct non-manilhas of the same rank.
func Ties(c, other, vira Card) bool {
	if c == other || IsManilha(c, vira) || IsManilha(other, vira) {
		return false
	}
	return c.Rank == other.Rank
}

// BeatsOrTies reports whether c does not lose a trick against other.
func BeatsOrTies(c, other, vira Card) bool {
	return Beats(c, other, vira) || Ties(c, other, vira)
}
