package app

// DecisionKind names the decision point a bot is asked about.
type DecisionKind string

const (
	DecisionRaiseResponse  DecisionKind = "raise_response"
	DecisionDecideIfRaises DecisionKind = "decide_if_raises"
	DecisionChooseCard     DecisionKind = "choose_card"
	DecisionMaoDeOnze      DecisionKind = "mao_de_onze"
)

// DecisionKinds lists every supported decision point.
var DecisionKinds = []DecisionKind{
	DecisionRaiseResponse,
	DecisionDecideIfRaises,
	DecisionChooseCard,
	DecisionMaoDeOnze,
}
