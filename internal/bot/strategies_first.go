package bot

import (
	botinternal "degola/internal/bot/internal"
	"degola/internal/domain"
)

// FirstRound decides the opening trick, where nothing but the vira and
// possibly the opponent's lead is known.
type FirstRound struct {
	Tuning Tuning
}

func (s *FirstRound) RaiseResponse(intel domain.Intel) domain.RaiseResponse {
	hand, vira := intel.Cards, intel.Vira

	if opponent, ok := intel.OpponentCard.Get(); ok && countNotLosing(hand, opponent, vira) >= 2 {
		return domain.Accept
	}

	if intel.OpponentScore < s.Tuning.OpponentScoreCeiling &&
		botinternal.CountStrongCards(hand, vira, s.Tuning.StrongCutoff) > 0 {
		return domain.Accept
	}

	if hasZapAndOtherManilha(hand, vira) {
		return domain.Reraise
	}

	if botinternal.CountManilha(hand, vira) > 0 {
		return domain.Accept
	}

	if botinternal.CountStrongCards(hand, vira, s.Tuning.HighCutoff) >= 2 {
		return domain.Accept
	}

	return domain.Decline
}

func (s *FirstRound) DecideIfRaises(intel domain.Intel) bool {
	hand, vira := intel.Cards, intel.Vira

	if botinternal.CountManilha(hand, vira) >= 2 ||
		botinternal.CountStrongCards(hand, vira, s.Tuning.StrongCutoff) > 2 {
		return true
	}

	opponent, ok := intel.OpponentCard.Get()
	if !ok {
		return false
	}

	if _, canBeat := botinternal.FindWeakestWinningCard(hand, opponent, vira); canBeat {
		return true
	}
	if botinternal.CountStrongCards(hand, vira, s.Tuning.LowCutoff) >= 2 {
		return true
	}
	return countNotLosing(hand, opponent, vira) >= 2 &&
		botinternal.CountStrongCards(hand, vira, s.Tuning.HighCutoff) > 0
}

func (s *FirstRound) ChooseCard(intel domain.Intel) (domain.CardToPlay, error) {
	if len(intel.Cards) == 0 {
		return domain.CardToPlay{}, ErrEmptyHand
	}
	if opponent, ok := intel.OpponentCard.Get(); ok {
		return domain.Play(s.playAsSecond(intel.Cards, opponent, intel.Vira)), nil
	}
	return domain.Play(s.playAsFirst(intel.Cards, intel.Vira)), nil
}

func (s *FirstRound) playAsFirst(hand []domain.Card, vira domain.Card) domain.Card {
	if botinternal.HasOnlyWeakCards(hand, vira) {
		return botinternal.SelectWeakestCard(hand, vira)
	}

	if botinternal.HasOnlyMediumCards(hand, vira) || botinternal.HasOnlyStrongCards(hand, vira) {
		return botinternal.SelectStrongestCard(hand, vira)
	}

	if botinternal.HasManilhaAndStrongCard(hand, vira) {
		return botinternal.SelectCardAbove(hand, vira, s.Tuning.Baseline)
	}

	if botinternal.HasManilhaAndTwoWeakCards(hand, vira) {
		return manilhaOrStrongest(hand, vira)
	}

	return botinternal.SelectStrongestCard(hand, vira)
}

func (s *FirstRound) playAsSecond(hand []domain.Card, opponent, vira domain.Card) domain.Card {
	strong := botinternal.CountStrongCards(hand, vira, s.Tuning.HighCutoff)
	manilhas := botinternal.CountManilha(hand, vira)
	weak := botinternal.CountWeakCards(hand, vira)
	medium := botinternal.CountMediumCards(hand, vira)

	// Comfortable hands win as cheaply as possible and otherwise shed the weakest card.
	if weak == 3 || medium >= 1 || strong >= 3 {
		if c, ok := botinternal.FindWeakestWinningCard(hand, opponent, vira); ok {
			return c
		}
		return botinternal.SelectWeakestCard(hand, vira)
	}

	if manilhas >= 1 {
		if strong >= 1 {
			if c, ok := botinternal.FindWeakestWinningCard(hand, opponent, vira); ok {
				return c
			}
			if c, ok := botinternal.FindTyingCard(hand, opponent, vira); ok {
				return c
			}
			return manilhaOrStrongest(hand, vira)
		}

		if weak >= 1 {
			if c, ok := botinternal.FindTyingCard(hand, opponent, vira); ok {
				return c
			}
			return manilhaOrStrongest(hand, vira)
		}
	}

	return botinternal.SelectStrongestCard(hand, vira)
}

func (s *FirstRound) MaoDeOnzeResponse(intel domain.Intel) bool {
	return acceptsMaoDeOnze(intel, s.Tuning)
}

// countNotLosing counts the cards in hand that beat or tie ref.
func countNotLosing(hand []domain.Card, ref, vira domain.Card) int {
	n := 0
	for _, c := range hand {
		if domain.BeatsOrTies(c, ref, vira) {
			n++
		}
	}
	return n
}

func hasZapAndOtherManilha(hand []domain.Card, vira domain.Card) bool {
	zap, other := false, false
	for _, c := range hand {
		switch {
		case domain.IsZap(c, vira):
			zap = true
		case domain.IsManilha(c, vira):
			other = true
		}
	}
	return zap && other
}

func manilhaOrStrongest(hand []domain.Card, vira domain.Card) domain.Card {
	if c, ok := botinternal.FindManilha(hand, vira); ok {
		return c
	}
	return botinternal.SelectStrongestCard(hand, vira)
}

func acceptsMaoDeOnze(intel domain.Intel, tuning Tuning) bool {
	return botinternal.HandStrength(intel.Cards, intel.Vira) > tuning.MaoDeOnzeThreshold
}
