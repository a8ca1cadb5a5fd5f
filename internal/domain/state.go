package domain

import (
	"fmt"
	"strings"
)

// Rank is a nominal truco rank. Values follow the fixed order 4 < 5 < 6 < 7 < Q < J < K < A < 2 < 3.
type Rank int

const (
	Four Rank = iota + 1
	Five
	Six
	Seven
	Queen
	Jack
	King
	Ace
	Two
	Three
)

// Ranks lists every rank in nominal order.
var Ranks = []Rank{Four, Five, Six, Seven, Queen, Jack, King, Ace, Two, Three}

// Suit is a card suit. Values follow the manilha order Diamonds < Spades < Hearts < Clubs.
type Suit int

const (
	Diamonds Suit = iota + 1
	Spades
	Hearts
	Clubs
)

// Suits lists every suit in manilha order.
var Suits = []Suit{Diamonds, Spades, Hearts, Clubs}

var rankSymbols = map[Rank]string{
	Four: "4", Five: "5", Six: "6", Seven: "7", Queen: "Q",
	Jack: "J", King: "K", Ace: "A", Two: "2", Three: "3",
}

var suitSymbols = map[Suit]string{
	Diamonds: "D", Spades: "S", Hearts: "H", Clubs: "C",
}

// Valid reports whether r is one of the ten truco ranks.
func (r Rank) Valid() bool {
	return r >= Four && r <= Three
}

// Next returns the rank after r in the cycle; the rank after Three is Four.
func (r Rank) Next() Rank {
	if r == Three {
		return Four
	}
	return r + 1
}

func (r Rank) String() string {
	if s, ok := rankSymbols[r]; ok {
		return s
	}
	return "?"
}

// Valid reports whether s is one of the four suits.
func (s Suit) Valid() bool {
	return s >= Diamonds && s <= Clubs
}

func (s Suit) String() string {
	if sym, ok := suitSymbols[s]; ok {
		return sym
	}
	return "?"
}

// Card is an immutable truco card.
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard builds a card. Callers are expected to pass valid ranks and suits.
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// ParseRank parses a rank symbol such as "Q" or "4".
func ParseRank(s string) (Rank, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for r, sym := range rankSymbols {
		if sym == s {
			return r, nil
		}
	}
	return 0, fmt.Errorf("invalid rank %q", s)
}

// ParseCard parses the wire form of a card, e.g. "4C", "QH" or "AD".
func ParseCard(s string) (Card, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) != 2 {
		return Card{}, fmt.Errorf("invalid card %q", s)
	}
	rank, err := ParseRank(s[:1])
	if err != nil {
		return Card{}, fmt.Errorf("invalid card %q: %w", s, err)
	}
	for suit, sym := range suitSymbols {
		if sym == s[1:] {
			return Card{Rank: rank, Suit: suit}, nil
		}
	}
	return Card{}, fmt.Errorf("invalid card %q: unknown suit", s)
}

// ParseCards parses a list of wire cards, stopping at the first invalid entry.
func ParseCards(raw []string) ([]Card, error) {
	cards := make([]Card, 0, len(raw))
	for _, s := range raw {
		c, err := ParseCard(s)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// OptionalCard is a card that may be absent, such as the opponent's card
// when the bot leads the trick.
type OptionalCard struct {
	card    Card
	present bool
}

// NoCard is the absent OptionalCard.
var NoCard = OptionalCard{}

// SomeCard wraps a present card.
func SomeCard(c Card) OptionalCard {
	return OptionalCard{card: c, present: true}
}

// Get returns the card and whether it is present.
func (o OptionalCard) Get() (Card, bool) {
	return o.card, o.present
}

// Present reports whether a card is held.
func (o OptionalCard) Present() bool {
	return o.present
}

// Intel is the read-only snapshot the bot receives at each decision point.
type Intel struct {
	Cards         []Card // bot hand in deal order
	OpenCards     []Card // cards exposed this hand, vira included
	Vira          Card
	RoundNumber   int
	Score         int
	OpponentScore int
	OpponentCard  OptionalCard // present only when the bot plays second in the trick
}

// PlayingSecond reports whether the opponent already played in the current trick.
func (i Intel) PlayingSecond() bool {
	return i.OpponentCard.Present()
}

// RaiseResponse answers an opponent's raise.
type RaiseResponse int

const (
	Decline RaiseResponse = -1
	Accept  RaiseResponse = 0
	Reraise RaiseResponse = 1
)

func (r RaiseResponse) String() string {
	switch r {
	case Decline:
		return "decline"
	case Accept:
		return "accept"
	case Reraise:
		return "reraise"
	default:
		return fmt.Sprintf("RaiseResponse(%d)", int(r))
	}
}

// CardToPlay is a card selection, either played face up or discarded face down.
type CardToPlay struct {
	Card    Card
	Discard bool
}

// Play selects c face up.
func Play(c Card) CardToPlay {
	return CardToPlay{Card: c}
}

// DiscardCard selects c face down.
func DiscardCard(c Card) CardToPlay {
	return CardToPlay{Card: c, Discard: true}
}
