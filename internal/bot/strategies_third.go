package bot

import (
	botinternal "degola/internal/bot/internal"
	"degola/internal/domain"
)

// ThirdRound decides the last trick using the cards already exposed in the hand.
type ThirdRound struct {
	Tuning Tuning
}

func (s *ThirdRound) RaiseResponse(intel domain.Intel) domain.RaiseResponse {
	hand, vira := intel.Cards, intel.Vira

	if opponent, ok := intel.OpponentCard.Get(); ok {
		if _, canBeat := botinternal.FindWeakestWinningCard(hand, opponent, vira); canBeat {
			return domain.Reraise
		}
		if _, canTie := botinternal.FindTyingCard(hand, opponent, vira); canTie {
			return domain.Accept
		}
		return domain.Decline
	}

	stats := botinternal.AnalyzeHand(hand, intel.OpenCards, vira)
	if len(stats.BossCards) > 0 {
		return domain.Reraise
	}
	if botinternal.CountStrongCards(hand, vira, s.Tuning.HighCutoff) > 0 {
		return domain.Accept
	}
	return domain.Decline
}

func (s *ThirdRound) DecideIfRaises(intel domain.Intel) bool {
	hand, vira := intel.Cards, intel.Vira

	if opponent, ok := intel.OpponentCard.Get(); ok {
		_, canBeat := botinternal.FindWeakestWinningCard(hand, opponent, vira)
		return canBeat
	}
	return len(botinternal.AnalyzeHand(hand, intel.OpenCards, vira).BossCards) > 0
}

func (s *ThirdRound) ChooseCard(intel domain.Intel) (domain.CardToPlay, error) {
	hand, vira := intel.Cards, intel.Vira
	if len(hand) == 0 {
		return domain.CardToPlay{}, ErrEmptyHand
	}
	if opponent, ok := intel.OpponentCard.Get(); ok {
		return winTieOrDiscard(hand, opponent, vira), nil
	}
	return domain.Play(botinternal.SelectStrongestCard(hand, vira)), nil
}

func (s *ThirdRound) MaoDeOnzeResponse(intel domain.Intel) bool {
	return acceptsMaoDeOnze(intel, s.Tuning)
}
