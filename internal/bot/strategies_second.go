package bot

import (
	botinternal "degola/internal/bot/internal"
	"degola/internal/domain"
)

// SecondRound decides the middle trick. Discarding face down is allowed from here on.
type SecondRound struct {
	Tuning Tuning
}

func (s *SecondRound) RaiseResponse(intel domain.Intel) domain.RaiseResponse {
	hand, vira := intel.Cards, intel.Vira
	profile := botinternal.ProfileHand(hand, vira)

	if profile.HasZap && profile.Manilhas >= 2 {
		return domain.Reraise
	}

	if opponent, ok := intel.OpponentCard.Get(); ok {
		winner, canBeat := botinternal.FindWeakestWinningCard(hand, opponent, vira)
		if canBeat && botinternal.BandOf(winner, vira) == botinternal.BandStrong {
			return domain.Accept
		}
		if _, canTie := botinternal.FindTyingCard(hand, opponent, vira); !canBeat && !canTie {
			return domain.Decline
		}
	}

	if profile.Manilhas >= 1 || botinternal.CountStrongCards(hand, vira, s.Tuning.HighCutoff) >= 2 {
		return domain.Accept
	}
	return domain.Decline
}

func (s *SecondRound) DecideIfRaises(intel domain.Intel) bool {
	hand, vira := intel.Cards, intel.Vira
	profile := botinternal.ProfileHand(hand, vira)
	strong := botinternal.CountStrongCards(hand, vira, s.Tuning.HighCutoff)

	if profile.Manilhas >= 2 {
		return true
	}
	if opponent, ok := intel.OpponentCard.Get(); ok {
		_, canBeat := botinternal.FindWeakestWinningCard(hand, opponent, vira)
		return canBeat && strong >= 2
	}
	return profile.HasZap && strong >= 2
}

func (s *SecondRound) ChooseCard(intel domain.Intel) (domain.CardToPlay, error) {
	hand, vira := intel.Cards, intel.Vira
	if len(hand) == 0 {
		return domain.CardToPlay{}, ErrEmptyHand
	}

	if opponent, ok := intel.OpponentCard.Get(); ok {
		return winTieOrDiscard(hand, opponent, vira), nil
	}

	strongest := botinternal.SelectStrongestCard(hand, vira)
	if botinternal.BandOf(strongest, vira) == botinternal.BandStrong {
		return domain.Play(strongest), nil
	}
	return domain.Play(botinternal.SelectWeakestCard(hand, vira)), nil
}

func (s *SecondRound) MaoDeOnzeResponse(intel domain.Intel) bool {
	return acceptsMaoDeOnze(intel, s.Tuning)
}

// winTieOrDiscard wins as cheaply as possible, else ties, else hides the weakest card.
func winTieOrDiscard(hand []domain.Card, opponent, vira domain.Card) domain.CardToPlay {
	if c, ok := botinternal.FindWeakestWinningCard(hand, opponent, vira); ok {
		return domain.Play(c)
	}
	if c, ok := botinternal.FindTyingCard(hand, opponent, vira); ok {
		return domain.Play(c)
	}
	return domain.DiscardCard(botinternal.SelectWeakestCard(hand, vira))
}
