package game

import (
	"fmt"
	"log/slog"
	"time"

	"SwipeState/internal/dialogue"
	"SwipeState/internal/integration"
	"SwipeState/internal/reputation"
)

// Synthetic ending shown when patience runs out mid-date. It bypasses the
// node graph entirely.
const (
	PatienceEndingTitle = "PATIENCE EXHAUSTED"
	PatienceEndingText  = "You've reached your limit. Some dates just aren't worth the effort."
)

// Engine walks one dialogue graph at a time, applying choice effects to its
// ledger and feeding the choice log to the classifier. One Engine owns one
// Ledger and one Classifier for the lifetime of a playthrough.
//
// The engine is single-threaded by contract: callers must serialize calls
// (the ws session does this by driving the engine from its read loop).
type Engine struct {
	routes     map[dialogue.RouteType]*dialogue.Graph
	classifier *reputation.Classifier
	log        *slog.Logger

	ledger  *Ledger
	graph   *dialogue.Graph
	current *dialogue.Node // rendered display copy, never the authored node

	now func() time.Time

	observers      map[int]Observer
	nextObserverID int
}

// NewEngine builds an engine over the loaded route graphs. A nil logger
// falls back to slog.Default.
func NewEngine(routes map[dialogue.RouteType]*dialogue.Graph, classifier *reputation.Classifier, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		routes:     routes,
		classifier: classifier,
		log:        logger,
		ledger:     NewLedger(),
		now:        time.Now,
		observers:  make(map[int]Observer),
	}
}

// StartNewGame discards the whole playthrough: fresh ledger, cleared run
// log, reputation reset. Unlike StartRun this forgets everything.
func (e *Engine) StartNewGame() {
	e.ledger = NewLedger()
	e.classifier.Reset()
	e.graph = nil
	e.current = nil
	e.emitLedgerChanged()
}

// SetAppearance stores the cosmetic customization. Opaque to the engine.
func (e *Engine) SetAppearance(a Appearance) {
	e.ledger.Appearance = a
}

// Ledger returns a snapshot of the run state.
func (e *Engine) Ledger() Ledger {
	return e.ledger.Snapshot()
}

// CurrentNode returns the rendered node on display, or nil between runs.
func (e *Engine) CurrentNode() *dialogue.Node {
	return e.current
}

// Route returns the graph for a route, for presentation queries like the
// endings gallery.
func (e *Engine) Route(rt dialogue.RouteType) (*dialogue.Graph, bool) {
	g, ok := e.routes[rt]
	return g, ok
}

// StartRun begins one date: per-date ledger fields reset, run log and
// reputation retained, traversal starts at the start node.
func (e *Engine) StartRun(route dialogue.RouteType, part int) error {
	graph, ok := e.routes[route]
	if !ok {
		e.log.Error("no dialogue graph for route", "route", string(route))
		return fmt.Errorf("%w: %s", dialogue.ErrRouteNotFound, route)
	}
	e.graph = graph
	e.ledger.beginRun(route, part)
	e.emitLedgerChanged()
	return e.LoadNode(dialogue.StartNodeID)
}

// LoadNode resolves a node, renders its text once, and makes it current.
// A missing id is a fatal content error: it is logged, traversal halts, and
// no state changes.
func (e *Engine) LoadNode(id string) error {
	if e.graph == nil {
		return fmt.Errorf("%w: no active route", dialogue.ErrRouteNotFound)
	}
	node, ok := e.graph.GetNode(id)
	if !ok {
		e.log.Error("dialogue node not found", "node", id, "route", string(e.ledger.Route))
		return fmt.Errorf("%w: %s", dialogue.ErrNodeNotFound, id)
	}

	display := dialogue.Render(node, e)
	e.current = display
	e.ledger.CurrentNodeID = node.ID
	e.emitNodeChanged(display)

	if display.IsEnding {
		e.endRun(display)
	}
	return nil
}

// MakeChoice applies the player's selected choice. An out-of-range index or
// a missing current node is a silent no-op.
func (e *Engine) MakeChoice(index int) error {
	if e.current == nil || e.current.IsEnding {
		return nil
	}
	if index < 0 || index >= len(e.current.Choices) {
		return nil
	}
	choice := e.current.Choices[index]

	patienceApplied := false
	if choice.Effects != nil {
		e.ledger.Money += choice.Effects.MoneyChange
		if choice.Effects.PatienceChange != 0 {
			e.ledger.Patience += choice.Effects.PatienceChange
			patienceApplied = true
		}
	}
	for _, line := range choice.Receipt {
		e.ledger.AddReceiptLine(line.Label, line.Cost)
	}

	entry := e.ledger.LogChoice(e.current.ID, choice.Label, choice.Effects, e.now())
	e.classifier.Process(reputation.Entry{
		NodeID:      entry.NodeID,
		ChoiceLabel: entry.ChoiceLabel,
		MoneyChange: entry.Effects.MoneyChange,
		Tags:        entry.Effects.Tags,
	})

	e.emitChoiceMade(choice)
	e.emitLedgerChanged()

	// Patience exhaustion overrides whatever the choice pointed at.
	if patienceApplied && e.ledger.Patience <= 0 {
		e.triggerPatienceEnding()
		return nil
	}

	switch choice.NextID {
	case "":
		return nil
	case dialogue.SentinelNextID:
		return e.resolveIntegrationEnding()
	default:
		return e.LoadNode(choice.NextID)
	}
}

// resolveIntegrationEnding asks the scorer which of the two fixed endings
// the sentinel transition lands on.
func (e *Engine) resolveIntegrationEnding() error {
	result := integration.Calculate(e.classifier.Tags())
	if result.Accepted {
		return e.LoadNode(dialogue.EndingOnboardedID)
	}
	return e.LoadNode(dialogue.EndingNotAFitID)
}

func (e *Engine) triggerPatienceEnding() {
	node := &dialogue.Node{
		IsEnding:    true,
		EndingTitle: PatienceEndingTitle,
		EndingText:  PatienceEndingText,
	}
	e.current = node
	e.ledger.CurrentNodeID = ""
	e.endRun(node)
}

func (e *Engine) endRun(node *dialogue.Node) {
	e.ledger.Ended = true
	e.ledger.UnlockPart(e.ledger.Part + 1)
	e.emitEnded(node)
}

// RumorLine implements dialogue.TextSource.
func (e *Engine) RumorLine() string {
	return e.classifier.GenerateRumor()
}

// IntegrationLine implements dialogue.TextSource.
func (e *Engine) IntegrationLine() string {
	return integration.Calculate(e.classifier.Tags()).ResultText
}
