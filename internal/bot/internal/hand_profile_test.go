package internal

import (
	"testing"

	"degola/internal/domain"
)

func card(s string) domain.Card {
	c, err := domain.ParseCard(s)
	if err != nil {
		panic(err)
	}
	return c
}

func hand(cards ...string) []domain.Card {
	out := make([]domain.Card, 0, len(cards))
	for _, s := range cards {
		out = append(out, card(s))
	}
	return out
}

// allHands enumerates every 3-card hand that excludes the vira.
func allHands(vira domain.Card) [][]domain.Card {
	deck := domain.RemoveCards(domain.NewDeck(), []domain.Card{vira})
	var hands [][]domain.Card
	for i := 0; i < len(deck); i++ {
		for j := i + 1; j < len(deck); j++ {
			for k := j + 1; k < len(deck); k++ {
				hands = append(hands, []domain.Card{deck[i], deck[j], deck[k]})
			}
		}
	}
	return hands
}

func TestProfileHand_AllWeak(t *testing.T) {
	vira := card("AD")
	h := hand("4C", "5H", "6D")

	profile := ProfileHand(h, vira)

	if profile.Weak != 3 {
		t.Fatalf("Weak = %d, want 3", profile.Weak)
	}
	if profile.Medium != 0 || profile.Strong != 0 || profile.Manilhas != 0 {
		t.Fatalf("unexpected profile: %+v", profile)
	}
	if !HasOnlyWeakCards(h, vira) {
		t.Fatal("HasOnlyWeakCards = false, want true")
	}
}

func TestProfileHand_AllMedium(t *testing.T) {
	vira := card("AD")
	h := hand("QC", "JH", "KD")

	if got := CountMediumCards(h, vira); got != 3 {
		t.Fatalf("CountMediumCards = %d, want 3", got)
	}
	if !HasOnlyMediumCards(h, vira) {
		t.Fatal("HasOnlyMediumCards = false, want true")
	}
	if HasOnlyStrongCards(h, vira) {
		t.Fatal("HasOnlyStrongCards = true, want false")
	}
}

func TestProfileHand_ManilhaCountsAsStrong(t *testing.T) {
	vira := card("AC") // manilha: Two
	h := hand("4C", "3H", "2D")

	profile := ProfileHand(h, vira)

	if profile.Weak != 1 || profile.Medium != 0 || profile.Strong != 2 || profile.Manilhas != 1 {
		t.Fatalf("unexpected profile: %+v", profile)
	}
	if profile.HasZap {
		t.Fatal("2D is not the zap")
	}
	if !HasManilhaAndStrongCard(h, vira) {
		t.Fatal("HasManilhaAndStrongCard = false, want true")
	}
	if HasManilhaAndTwoWeakCards(h, vira) {
		t.Fatal("HasManilhaAndTwoWeakCards = true, want false")
	}
}

func TestHasManilhaAndTwoWeakCards(t *testing.T) {
	vira := card("6H") // manilha: Seven
	h := hand("4H", "7C", "5D")

	if !HasManilhaAndTwoWeakCards(h, vira) {
		t.Fatal("HasManilhaAndTwoWeakCards = false, want true")
	}
	if HasManilhaAndStrongCard(h, vira) {
		t.Fatal("a lone manilha is not a manilha plus a strong card")
	}
	if !ProfileHand(h, vira).HasZap {
		t.Fatal("7C should be the zap")
	}
}

func TestCountStrongCardsCutoffs(t *testing.T) {
	vira := card("7H") // manilha: Queen
	h := hand("KC", "AS", "QD")

	if got := CountStrongCards(h, vira, domain.Ace); got != 2 {
		t.Fatalf("CountStrongCards(A) = %d, want 2", got)
	}
	if got := CountStrongCards(h, vira, domain.King); got != 3 {
		t.Fatalf("CountStrongCards(K) = %d, want 3", got)
	}
	if got := CountStrongCards(h, vira, domain.Three); got != 1 {
		t.Fatalf("CountStrongCards(3) = %d, want 1", got)
	}
}

func TestBandsPartitionEveryHand(t *testing.T) {
	vira := card("JS")
	for _, h := range allHands(vira) {
		p := ProfileHand(h, vira)
		if p.Weak+p.Medium+p.Strong != len(h) {
			t.Fatalf("bands of %v do not partition the hand: %+v", h, p)
		}
		if p.Manilhas > p.Strong {
			t.Fatalf("manilhas outside the strong band in %v: %+v", h, p)
		}
		if p.Strong != CountStrongCards(h, vira, domain.Ace) {
			t.Fatalf("strong band of %v disagrees with the ace cutoff", h)
		}
		if p.Strength != HandStrength(h, vira) {
			t.Fatalf("Strength = %d, HandStrength = %d", p.Strength, HandStrength(h, vira))
		}
	}
}

func TestHandStrength(t *testing.T) {
	vira := card("AD")
	if got := HandStrength(hand("KC", "AH", "KD"), vira); got != 22 {
		t.Fatalf("HandStrength = %d, want 22", got)
	}
	if got := HandStrength(hand("4C", "5H", "6D"), vira); got != 6 {
		t.Fatalf("HandStrength = %d, want 6", got)
	}
}

func TestOnlyPredicatesOnEmptyHand(t *testing.T) {
	vira := card("AD")
	if HasOnlyWeakCards(nil, vira) || HasOnlyMediumCards(nil, vira) || HasOnlyStrongCards(nil, vira) {
		t.Fatal("an empty hand has no band")
	}
}
