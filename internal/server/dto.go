package server

import (
	"SwipeState/internal/dialogue"
	"SwipeState/internal/game"
)

type receiptLineDTO struct {
	Label string `json:"label"`
	Cost  int    `json:"cost"`
}

type choiceDTO struct {
	Label string `json:"label"`
}

// nodeDTO is the engine's current node as shown to the client: substituted
// text, speaker, expressions, choice labels, and ending fields.
type nodeDTO struct {
	ID               string           `json:"id"`
	Speaker          string           `json:"speaker"`
	Text             string           `json:"text"`
	DateExpression   string           `json:"date_expression"`
	PlayerExpression string           `json:"player_expression"`
	Choices          []choiceDTO      `json:"choices,omitempty"`
	IsEnding         bool             `json:"is_ending"`
	EndingTitle      string           `json:"ending_title,omitempty"`
	EndingText       string           `json:"ending_text,omitempty"`
	EndingReceipt    []receiptLineDTO `json:"ending_receipt,omitempty"`
}

type ledgerDTO struct {
	RunID         string           `json:"run_id"`
	Route         string           `json:"route"`
	Part          int              `json:"part"`
	CurrentNode   string           `json:"current_node"`
	Money         int              `json:"money"`
	Patience      int              `json:"patience"`
	Receipt       []receiptLineDTO `json:"receipt"`
	Part2Unlocked bool             `json:"part2_unlocked"`
	Part3Unlocked bool             `json:"part3_unlocked"`
	Ended         bool             `json:"ended"`
}

type routeInfoDTO struct {
	Route   string `json:"route"`
	Name    string `json:"name"`
	Nodes   int    `json:"nodes"`
	Endings int    `json:"endings"`
}

type errorDTO struct {
	Message string `json:"message"`
}

func expressionOrNeutral(expr string) string {
	if expr == "" {
		return "neutral"
	}
	return expr
}

func newReceiptDTO(lines []dialogue.ReceiptLine) []receiptLineDTO {
	if len(lines) == 0 {
		return nil
	}
	out := make([]receiptLineDTO, 0, len(lines))
	for _, line := range lines {
		out = append(out, receiptLineDTO{Label: line.Label, Cost: line.Cost})
	}
	return out
}

func newNodeDTO(n *dialogue.Node) nodeDTO {
	dto := nodeDTO{
		ID:               n.ID,
		Speaker:          n.Speaker,
		Text:             n.Text,
		DateExpression:   expressionOrNeutral(n.DateExpression),
		PlayerExpression: expressionOrNeutral(n.PlayerExpression),
		IsEnding:         n.IsEnding,
		EndingTitle:      n.EndingTitle,
		EndingText:       n.EndingText,
		EndingReceipt:    newReceiptDTO(n.EndingReceipt),
	}
	if !n.IsEnding {
		dto.Choices = make([]choiceDTO, 0, len(n.Choices))
		for _, c := range n.Choices {
			dto.Choices = append(dto.Choices, choiceDTO{Label: c.Label})
		}
	}
	return dto
}

func newLedgerDTO(l game.Ledger) ledgerDTO {
	return ledgerDTO{
		RunID:         l.RunID,
		Route:         string(l.Route),
		Part:          l.Part,
		CurrentNode:   l.CurrentNodeID,
		Money:         l.Money,
		Patience:      l.Patience,
		Receipt:       newReceiptDTO(l.Receipt),
		Part2Unlocked: l.Part2Unlocked,
		Part3Unlocked: l.Part3Unlocked,
		Ended:         l.Ended,
	}
}

func newRouteInfoDTO(g *dialogue.Graph) routeInfoDTO {
	endings := 0
	for range g.Endings() {
		endings++
	}
	return routeInfoDTO{
		Route:   string(g.RouteType),
		Name:    g.RouteName,
		Nodes:   g.Len(),
		Endings: endings,
	}
}
