package nakama

import (
	"fmt"

	"degola/internal/app"
	"degola/internal/domain"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

// intelDTO is the wire form of domain.Intel. Cards use their two-letter symbols.
type intelDTO struct {
	Cards         []string `json:"cards"`
	OpenCards     []string `json:"open_cards"`
	Vira          string   `json:"vira"`
	RoundNumber   int      `json:"round"`
	Score         int      `json:"score"`
	OpponentScore int      `json:"opponent_score"`
	OpponentCard  string   `json:"opponent_card,omitempty"`
}

func (d intelDTO) toDomain() (domain.Intel, error) {
	cards, err := domain.ParseCards(d.Cards)
	if err != nil {
		return domain.Intel{}, fmt.Errorf("cards: %w", err)
	}
	open, err := domain.ParseCards(d.OpenCards)
	if err != nil {
		return domain.Intel{}, fmt.Errorf("open_cards: %w", err)
	}
	vira, err := domain.ParseCard(d.Vira)
	if err != nil {
		return domain.Intel{}, fmt.Errorf("vira: %w", err)
	}

	intel := domain.Intel{
		Cards:         cards,
		OpenCards:     open,
		Vira:          vira,
		RoundNumber:   d.RoundNumber,
		Score:         d.Score,
		OpponentScore: d.OpponentScore,
		OpponentCard:  domain.NoCard,
	}
	if d.OpponentCard != "" {
		opponent, err := domain.ParseCard(d.OpponentCard)
		if err != nil {
			return domain.Intel{}, fmt.Errorf("opponent_card: %w", err)
		}
		intel.OpponentCard = domain.SomeCard(opponent)
	}
	return intel, nil
}

func decisionToStruct(result app.Result) (*structpb.Struct, error) {
	d := result.Decision
	fields := map[string]interface{}{
		"decision":     string(d.Kind),
		"log_recorded": result.LogErr == nil,
	}
	switch d.Kind {
	case app.DecisionRaiseResponse:
		fields["response"] = int(d.RaiseResponse)
		fields["response_name"] = d.RaiseResponse.String()
	case app.DecisionDecideIfRaises:
		fields["raise"] = d.Raise
	case app.DecisionChooseCard:
		fields["card"] = d.Card.Card.String()
		fields["discard"] = d.Card.Discard
	case app.DecisionMaoDeOnze:
		fields["play"] = d.PlayMaoDeOnze
	}
	return structpb.NewStruct(fields)
}

func marshalDecision(result app.Result) (string, error) {
	s, err := decisionToStruct(result)
	if err != nil {
		return "", err
	}
	b, err := protojson.Marshal(s)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
