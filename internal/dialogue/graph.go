// Package dialogue implements the branching dialogue graph that drives a
// single date: nodes, player choices, choice effects, and the id index the
// engine uses to walk one route.
//
// Graphs are immutable after load. The engine never writes through a Graph;
// dynamic text is produced as a display copy by Render.
package dialogue

import (
	"errors"
	"iter"
)

// RouteType identifies which date archetype a graph belongs to.
type RouteType string

const (
	RouteNone         RouteType = ""
	RouteIncel        RouteType = "incel"
	RouteFemcel       RouteType = "femcel"
	RoutePerformative RouteType = "performative"
	RouteBop          RouteType = "bop"
	// RouteThemcel is the final combined route (part 3).
	RouteThemcel RouteType = "themcel"
)

// Reserved node ids and transition targets. These are part of the content
// contract: authored documents reference them literally.
const (
	// StartNodeID is where every route begins.
	StartNodeID = "start"
	// SentinelNextID defers the transition to the integration scorer.
	SentinelNextID = "{INTEGRATION_ENDING}"
	// EndingOnboardedID is loaded when the scorer accepts the player.
	EndingOnboardedID = "ending_onboarded"
	// EndingNotAFitID is loaded when the scorer rejects the player.
	EndingNotAFitID = "ending_not_a_fit"
)

var (
	// ErrNodeNotFound is returned when a referenced node id is absent.
	ErrNodeNotFound = errors.New("dialogue: node not found")
	// ErrRouteNotFound is returned when no graph is loaded for a route.
	ErrRouteNotFound = errors.New("dialogue: route not found")
	// ErrDuplicateNodeID is returned by the route parser for repeated ids.
	ErrDuplicateNodeID = errors.New("dialogue: duplicate node id")
)

// ReceiptLine is one line on the date receipt. A zero cost means the line
// is itemized but not billed.
type ReceiptLine struct {
	Label string `json:"label"`
	Cost  int    `json:"cost,omitempty"`
}

// Effects are applied to the ledger when a choice is taken. Tags are matched
// case-insensitively against the reputation flag vocabulary.
type Effects struct {
	MoneyChange    int      `json:"moneyChange,omitempty"`
	PatienceChange int      `json:"patienceChange,omitempty"`
	Tags           []string `json:"tags,omitempty"`
}

// Choice is one player response option. NextID is either a literal node id,
// empty (dead end, stay on the node), or SentinelNextID.
type Choice struct {
	Label   string        `json:"label"`
	NextID  string        `json:"nextId,omitempty"`
	Effects *Effects      `json:"effects,omitempty"`
	Receipt []ReceiptLine `json:"receiptLines,omitempty"`
}

// Node is one beat of dialogue. Non-ending nodes carry at least one choice;
// choices on an ending node are ignored by the engine.
type Node struct {
	ID               string        `json:"id"`
	Speaker          string        `json:"speaker"`
	Text             string        `json:"text"`
	DateExpression   string        `json:"dateExpression,omitempty"`
	PlayerExpression string        `json:"playerExpression,omitempty"`
	Choices          []Choice      `json:"choices,omitempty"`
	IsEnding         bool          `json:"isEnding,omitempty"`
	EndingTitle      string        `json:"endingTitle,omitempty"`
	EndingText       string        `json:"endingText,omitempty"`
	EndingReceipt    []ReceiptLine `json:"endingReceiptLines,omitempty"`
}

// Graph owns the ordered node collection for one route plus the derived
// id index. The index is rebuilt on every Load; lookups are O(1).
type Graph struct {
	RouteName string
	RouteType RouteType

	nodes []*Node
	index map[string]*Node
}

// NewGraph builds a graph and loads its nodes.
func NewGraph(name string, rt RouteType, nodes []*Node) *Graph {
	g := &Graph{RouteName: name, RouteType: rt}
	g.Load(nodes)
	return g
}

// Load replaces the owned node collection and rebuilds the id index.
// Duplicate ids are last-write-wins: the later node shadows the earlier one.
// Authored content is rejected for duplicates at parse time instead; see
// ParseRoute.
func (g *Graph) Load(nodes []*Node) {
	g.nodes = nodes
	g.index = make(map[string]*Node, len(nodes))
	for _, node := range nodes {
		if node.ID == "" {
			continue
		}
		g.index[node.ID] = node
	}
}

// GetNode returns the node with the given id. The second return is false
// for ids never loaded; callers treat that as a fatal content error.
func (g *Graph) GetNode(id string) (*Node, bool) {
	node, ok := g.index[id]
	return node, ok
}

// StartNode returns the route's entry node.
func (g *Graph) StartNode() (*Node, bool) {
	return g.GetNode(StartNodeID)
}

// Len reports the number of loaded nodes.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// All yields every node in original order.
func (g *Graph) All() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for _, node := range g.nodes {
			if !yield(node) {
				return
			}
		}
	}
}

// Endings yields the ending nodes lazily, in original node order. The
// sequence is restartable.
func (g *Graph) Endings() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for _, node := range g.nodes {
			if !node.IsEnding {
				continue
			}
			if !yield(node) {
				return
			}
		}
	}
}
