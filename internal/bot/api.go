package bot

import (
	"errors"

	"degola/internal/domain"
)

var (
	// ErrUnexpectedRound is returned when a snapshot carries a round outside 1..3.
	ErrUnexpectedRound = errors.New("unexpected value for round")
	// ErrEmptyHand is returned when a card is requested from an empty hand.
	ErrEmptyHand = errors.New("cannot choose a card from an empty hand")
)

// Strategy is the capability set every round variant implements.
type Strategy interface {
	// RaiseResponse answers an opponent raise with decline, accept or re-raise.
	RaiseResponse(intel domain.Intel) domain.RaiseResponse
	// DecideIfRaises reports whether the bot should raise the stake.
	DecideIfRaises(intel domain.Intel) bool
	// ChooseCard selects a card from intel.Cards; it fails only on an empty hand.
	ChooseCard(intel domain.Intel) (domain.CardToPlay, error)
	// MaoDeOnzeResponse reports whether to play the mão de onze.
	MaoDeOnzeResponse(intel domain.Intel) bool
}
