package dialogue

import "strings"

// Text placeholders resolved at display time.
const (
	PlaceholderRumor       = "{RUMOR}"
	PlaceholderIntegration = "{INTEGRATION_RESULT}"
)

// TextSource supplies the dynamic lines substituted into node text.
// The engine implements it on top of the classifier and the scorer.
type TextSource interface {
	// RumorLine returns one rumor line for the current reputation.
	RumorLine() string
	// IntegrationLine returns the scorer's result text for the current tags.
	IntegrationLine() string
}

// Render resolves placeholders in the node's text and returns a display-ready
// node. The authored node is never mutated: when substitution happens the
// result is a copy, and when the text carries no placeholders the node is
// returned as-is. Rendering an already-rendered node is therefore a no-op.
func Render(node *Node, src TextSource) *Node {
	if node == nil {
		return nil
	}
	hasRumor := strings.Contains(node.Text, PlaceholderRumor)
	hasIntegration := strings.Contains(node.Text, PlaceholderIntegration)
	if !hasRumor && !hasIntegration {
		return node
	}

	display := *node
	if hasRumor {
		display.Text = strings.ReplaceAll(display.Text, PlaceholderRumor, src.RumorLine())
	}
	if hasIntegration {
		display.Text = strings.ReplaceAll(display.Text, PlaceholderIntegration, src.IntegrationLine())
	}
	return &display
}
