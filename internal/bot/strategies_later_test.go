package bot

import (
	"testing"

	"degola/internal/domain"
)

func TestSecondRound_ChooseCard(t *testing.T) {
	tests := []struct {
		name  string
		intel domain.Intel
		want  domain.CardToPlay
	}{
		{
			name:  "leads with a strong card",
			intel: firstToPlay(2, cards("6C", "3H"), card("4D")),
			want:  domain.Play(card("3H")),
		},
		{
			name:  "leads with the weakest when nothing is strong",
			intel: firstToPlay(2, cards("6C", "QH"), card("4D")),
			want:  domain.Play(card("6C")),
		},
		{
			name:  "wins the visible card cheaply",
			intel: secondToPlay(2, cards("3H", "KC"), card("4D"), card("JS")),
			want:  domain.Play(card("KC")),
		},
		{
			name:  "ties when it cannot win",
			intel: secondToPlay(2, cards("KH", "6C"), card("4D"), card("KS")),
			want:  domain.Play(card("KH")),
		},
		{
			name:  "discards the weakest when the trick is lost",
			intel: secondToPlay(2, cards("6C", "7H"), card("4D"), card("3S")),
			want:  domain.DiscardCard(card("6C")),
		},
	}

	strategy := &SecondRound{Tuning: DefaultTuning}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := strategy.ChooseCard(tt.intel)
			if err != nil {
				t.Fatalf("ChooseCard error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("ChooseCard = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSecondRound_RaiseResponse(t *testing.T) {
	strategy := &SecondRound{Tuning: DefaultTuning}

	if got := strategy.RaiseResponse(firstToPlay(2, cards("5C", "5H"), card("4D"))); got != domain.Reraise {
		t.Fatalf("RaiseResponse with zap and manilha = %v, want reraise", got)
	}
	if got := strategy.RaiseResponse(secondToPlay(2, cards("6C", "7H"), card("4D"), card("3S"))); got != domain.Decline {
		t.Fatalf("RaiseResponse with a lost trick = %v, want decline", got)
	}
	if got := strategy.RaiseResponse(secondToPlay(2, cards("3C", "7H"), card("4D"), card("KS"))); got != domain.Accept {
		t.Fatalf("RaiseResponse with a strong winner = %v, want accept", got)
	}
}

func TestSecondRound_DecideIfRaises(t *testing.T) {
	strategy := &SecondRound{Tuning: DefaultTuning}

	if !strategy.DecideIfRaises(firstToPlay(2, cards("5C", "5H"), card("4D"))) {
		t.Fatal("DecideIfRaises with two manilhas = false, want true")
	}
	if strategy.DecideIfRaises(firstToPlay(2, cards("6C", "7H"), card("4D"))) {
		t.Fatal("DecideIfRaises with a weak hand = true, want false")
	}
}

func TestThirdRound_RaiseResponse(t *testing.T) {
	tests := []struct {
		name  string
		intel domain.Intel
		want  domain.RaiseResponse
	}{
		{
			name:  "reraises with the zap",
			intel: firstToPlay(3, cards("AC"), card("KC")),
			want:  domain.Reraise,
		},
		{
			name:  "reraises when the visible card is beaten",
			intel: secondToPlay(3, cards("3H"), card("4D"), card("KS")),
			want:  domain.Reraise,
		},
		{
			name:  "accepts when the visible card is tied",
			intel: secondToPlay(3, cards("KH"), card("4D"), card("KS")),
			want:  domain.Accept,
		},
		{
			name:  "declines when the visible card wins",
			intel: secondToPlay(3, cards("6H"), card("4D"), card("KS")),
			want:  domain.Decline,
		},
		{
			name:  "declines a weak last card",
			intel: firstToPlay(3, cards("6H"), card("4D")),
			want:  domain.Decline,
		},
	}

	strategy := &ThirdRound{Tuning: DefaultTuning}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := strategy.RaiseResponse(tt.intel); got != tt.want {
				t.Fatalf("RaiseResponse = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestThirdRound_ChooseCard(t *testing.T) {
	strategy := &ThirdRound{Tuning: DefaultTuning}

	got, err := strategy.ChooseCard(secondToPlay(3, cards("6H"), card("4D"), card("KS")))
	if err != nil {
		t.Fatalf("ChooseCard error: %v", err)
	}
	if got != domain.DiscardCard(card("6H")) {
		t.Fatalf("ChooseCard = %+v, want discard 6H", got)
	}

	if !strategy.DecideIfRaises(firstToPlay(3, cards("AC"), card("KC"))) {
		t.Fatal("DecideIfRaises with a boss card = false, want true")
	}
}
