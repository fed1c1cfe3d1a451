package game

import (
	"errors"
	"io"
	"log/slog"
	"math/rand"
	"strings"
	"testing"

	"SwipeState/internal/dialogue"
	"SwipeState/internal/reputation"
)

func newTestEngine(graphs ...*dialogue.Graph) *Engine {
	routes := make(map[dialogue.RouteType]*dialogue.Graph)
	for _, g := range graphs {
		routes[g.RouteType] = g
	}
	classifier := reputation.NewClassifier(rand.New(rand.NewSource(7)))
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewEngine(routes, classifier, logger)
}

func dateGraph() *dialogue.Graph {
	return dialogue.NewGraph("The Test Date", dialogue.RouteIncel, []*dialogue.Node{
		{
			ID: "start", Speaker: "Devon", Text: "You made it.",
			Choices: []dialogue.Choice{
				{
					Label:   "Order the tasting menu",
					NextID:  "mid",
					Effects: &dialogue.Effects{MoneyChange: -40, PatienceChange: -1},
					Receipt: []dialogue.ReceiptLine{{Label: "Tasting menu", Cost: 40}},
				},
				{Label: "Sip water"},
				{Label: "Head for the door", NextID: "nowhere"},
				{Label: "Storm out", NextID: "mid", Effects: &dialogue.Effects{PatienceChange: -15}},
				{Label: "Sigh loudly", NextID: "mid", Effects: &dialogue.Effects{PatienceChange: -10}},
				{Label: "Cover the whole table", NextID: "mid", Effects: &dialogue.Effects{MoneyChange: -150}},
			},
		},
		{ID: "mid", Speaker: "Devon", Text: "More talk.", Choices: []dialogue.Choice{
			{Label: "Hm.", NextID: "fin"},
		}},
		{ID: "fin", IsEnding: true, EndingTitle: "IT ENDS", EndingText: "And that was that."},
	})
}

func verdictGraph() *dialogue.Graph {
	return dialogue.NewGraph("The Interview", dialogue.RouteThemcel, []*dialogue.Node{
		{
			ID: "start", Speaker: "Avery", Text: "Sit.",
			Choices: []dialogue.Choice{
				{Label: "Settle in", NextID: "verdict", Effects: &dialogue.Effects{Tags: []string{"stayedTooLong"}}},
				{Label: "Edge toward the door", NextID: "verdict", Effects: &dialogue.Effects{Tags: []string{"leftEarly"}}},
				{Label: "Shrug", NextID: "verdict"},
			},
		},
		{ID: "verdict", Speaker: "Avery", Text: "We've decided.", Choices: []dialogue.Choice{
			{Label: "Hear it", NextID: dialogue.SentinelNextID},
		}},
		{ID: dialogue.EndingOnboardedID, Text: "{INTEGRATION_RESULT}", IsEnding: true, EndingTitle: "ONBOARDED"},
		{ID: dialogue.EndingNotAFitID, Text: "{INTEGRATION_RESULT}", IsEnding: true, EndingTitle: "NOT A FIT"},
	})
}

// TestStartRunUnknownRoute tests the error path for an unloaded route
func TestStartRunUnknownRoute(t *testing.T) {
	e := newTestEngine(dateGraph())
	err := e.StartRun(dialogue.RouteBop, 1)
	if !errors.Is(err, dialogue.ErrRouteNotFound) {
		t.Fatalf("Expected ErrRouteNotFound, got %v", err)
	}
}

// TestStartRunLoadsStartNode tests that a run begins at the start node with
// fresh per-date state
func TestStartRunLoadsStartNode(t *testing.T) {
	e := newTestEngine(dateGraph())
	if err := e.StartRun(dialogue.RouteIncel, 1); err != nil {
		t.Fatalf("StartRun: %v", err)
	}

	node := e.CurrentNode()
	if node == nil || node.ID != dialogue.StartNodeID {
		t.Fatalf("Expected start node, got %+v", node)
	}

	led := e.Ledger()
	if led.Money != StartingMoney || led.Patience != StartingPatience {
		t.Errorf("Expected fresh money/patience, got %d/%d", led.Money, led.Patience)
	}
	if led.Route != dialogue.RouteIncel || led.Part != 1 || led.Ended {
		t.Errorf("Unexpected run state: %+v", led)
	}
}

// TestMakeChoiceAppliesEffects tests money, patience, receipt, and the run log
func TestMakeChoiceAppliesEffects(t *testing.T) {
	e := newTestEngine(dateGraph())
	if err := e.StartRun(dialogue.RouteIncel, 1); err != nil {
		t.Fatalf("StartRun: %v", err)
	}
	if err := e.MakeChoice(0); err != nil {
		t.Fatalf("MakeChoice: %v", err)
	}

	led := e.Ledger()
	if led.Money != 60 {
		t.Errorf("Expected money 60, got %d", led.Money)
	}
	if led.Patience != 9 {
		t.Errorf("Expected patience 9, got %d", led.Patience)
	}
	if len(led.Receipt) != 1 || led.Receipt[0].Label != "Tasting menu" || led.Receipt[0].Cost != 40 {
		t.Errorf("Unexpected receipt: %+v", led.Receipt)
	}
	if len(led.RunLog) != 1 {
		t.Fatalf("Expected 1 run log entry, got %d", len(led.RunLog))
	}
	entry := led.RunLog[0]
	if entry.NodeID != "start" || entry.ChoiceLabel != "Order the tasting menu" {
		t.Errorf("Unexpected log entry: %+v", entry)
	}
	if entry.Effects.MoneyChange != -40 {
		t.Errorf("Expected effects snapshot, got %+v", entry.Effects)
	}

	if node := e.CurrentNode(); node == nil || node.ID != "mid" {
		t.Errorf("Expected traversal to mid, got %+v", node)
	}
}

// TestMakeChoiceMoneyUnclamped tests that money goes negative without fuss
func TestMakeChoiceMoneyUnclamped(t *testing.T) {
	e := newTestEngine(dateGraph())
	if err := e.StartRun(dialogue.RouteIncel, 1); err != nil {
		t.Fatalf("StartRun: %v", err)
	}
	if err := e.MakeChoice(5); err != nil {
		t.Fatalf("MakeChoice: %v", err)
	}
	if led := e.Ledger(); led.Money != -50 {
		t.Errorf("Expected money -50, got %d", led.Money)
	}
}

// TestMakeChoiceEmptyNextIDStays tests that a choice without a destination
// leaves the current node in place
func TestMakeChoiceEmptyNextIDStays(t *testing.T) {
	e := newTestEngine(dateGraph())
	if err := e.StartRun(dialogue.RouteIncel, 1); err != nil {
		t.Fatalf("StartRun: %v", err)
	}
	if err := e.MakeChoice(1); err != nil {
		t.Fatalf("MakeChoice: %v", err)
	}
	if node := e.CurrentNode(); node == nil || node.ID != "start" {
		t.Errorf("Expected to remain on start, got %+v", node)
	}
	if e.Ledger().Ended {
		t.Error("Run should not have ended")
	}
}

// TestMakeChoiceOutOfRange tests that bad indices are silent no-ops
func TestMakeChoiceOutOfRange(t *testing.T) {
	e := newTestEngine(dateGraph())
	if err := e.StartRun(dialogue.RouteIncel, 1); err != nil {
		t.Fatalf("StartRun: %v", err)
	}
	before := e.Ledger()

	for _, idx := range []int{-1, 6, 100} {
		if err := e.MakeChoice(idx); err != nil {
			t.Fatalf("MakeChoice(%d): %v", idx, err)
		}
	}

	after := e.Ledger()
	if after.Money != before.Money || after.Patience != before.Patience || len(after.RunLog) != 0 {
		t.Errorf("State changed on out-of-range choice: %+v", after)
	}
}

// TestMakeChoiceMissingNodeHalts tests the fatal content error: effects apply
// but traversal stops on the current node
func TestMakeChoiceMissingNodeHalts(t *testing.T) {
	e := newTestEngine(dateGraph())
	if err := e.StartRun(dialogue.RouteIncel, 1); err != nil {
		t.Fatalf("StartRun: %v", err)
	}

	err := e.MakeChoice(2)
	if !errors.Is(err, dialogue.ErrNodeNotFound) {
		t.Fatalf("Expected ErrNodeNotFound, got %v", err)
	}
	if node := e.CurrentNode(); node == nil || node.ID != "start" {
		t.Errorf("Expected traversal halted on start, got %+v", node)
	}
	if led := e.Ledger(); led.CurrentNodeID != "start" || led.Ended {
		t.Errorf("Unexpected ledger after halt: %+v", led)
	}
}

// TestPatienceEndingOverridesNext tests that exhausted patience preempts the
// choice's destination
func TestPatienceEndingOverridesNext(t *testing.T) {
	e := newTestEngine(dateGraph())
	if err := e.StartRun(dialogue.RouteIncel, 1); err != nil {
		t.Fatalf("StartRun: %v", err)
	}
	if err := e.MakeChoice(3); err != nil {
		t.Fatalf("MakeChoice: %v", err)
	}

	node := e.CurrentNode()
	if node == nil || !node.IsEnding {
		t.Fatalf("Expected a synthetic ending, got %+v", node)
	}
	if node.EndingTitle != PatienceEndingTitle || node.EndingText != PatienceEndingText {
		t.Errorf("Unexpected ending content: %q / %q", node.EndingTitle, node.EndingText)
	}

	led := e.Ledger()
	if led.Patience != -5 {
		t.Errorf("Expected patience -5, got %d", led.Patience)
	}
	if led.CurrentNodeID != "" || !led.Ended {
		t.Errorf("Unexpected ledger: %+v", led)
	}
}

// TestPatienceEndingAtExactZero tests the <= 0 boundary
func TestPatienceEndingAtExactZero(t *testing.T) {
	e := newTestEngine(dateGraph())
	if err := e.StartRun(dialogue.RouteIncel, 1); err != nil {
		t.Fatalf("StartRun: %v", err)
	}
	if err := e.MakeChoice(4); err != nil {
		t.Fatalf("MakeChoice: %v", err)
	}
	if led := e.Ledger(); led.Patience != 0 || !led.Ended {
		t.Errorf("Expected run to end at patience 0, got %+v", led)
	}
}

// TestChoiceOnEndingIsNoOp tests that a finished run ignores further input
func TestChoiceOnEndingIsNoOp(t *testing.T) {
	e := newTestEngine(dateGraph())
	if err := e.StartRun(dialogue.RouteIncel, 1); err != nil {
		t.Fatalf("StartRun: %v", err)
	}
	if err := e.MakeChoice(3); err != nil {
		t.Fatalf("MakeChoice: %v", err)
	}
	before := e.Ledger()
	if err := e.MakeChoice(0); err != nil {
		t.Fatalf("MakeChoice after ending: %v", err)
	}
	if after := e.Ledger(); len(after.RunLog) != len(before.RunLog) {
		t.Error("Choice after ending should not log")
	}
}

// TestEndingUnlocksNextPart tests part progression on any ending
func TestEndingUnlocksNextPart(t *testing.T) {
	e := newTestEngine(dateGraph())
	if err := e.StartRun(dialogue.RouteIncel, 1); err != nil {
		t.Fatalf("StartRun: %v", err)
	}
	if err := e.MakeChoice(0); err != nil {
		t.Fatalf("MakeChoice: %v", err)
	}
	if err := e.MakeChoice(0); err != nil {
		t.Fatalf("MakeChoice: %v", err)
	}

	led := e.Ledger()
	if !led.Ended {
		t.Fatal("Expected the run to end on fin")
	}
	if !led.PartUnlocked(2) || led.PartUnlocked(3) {
		t.Errorf("Expected only part 2 unlocked: %+v", led)
	}
}

// TestStartRunKeepsRunLogAndUnlocks tests that a new date keeps cross-date
// state while resetting the per-date fields
func TestStartRunKeepsRunLogAndUnlocks(t *testing.T) {
	e := newTestEngine(dateGraph())
	if err := e.StartRun(dialogue.RouteIncel, 1); err != nil {
		t.Fatalf("StartRun: %v", err)
	}
	if err := e.MakeChoice(0); err != nil {
		t.Fatalf("MakeChoice: %v", err)
	}
	if err := e.MakeChoice(0); err != nil {
		t.Fatalf("MakeChoice: %v", err)
	}
	firstID := e.Ledger().RunID

	if err := e.StartRun(dialogue.RouteIncel, 2); err != nil {
		t.Fatalf("Second StartRun: %v", err)
	}

	led := e.Ledger()
	if led.Money != StartingMoney || led.Patience != StartingPatience || len(led.Receipt) != 0 {
		t.Errorf("Per-date state not reset: %+v", led)
	}
	if led.Ended {
		t.Error("New run should not be ended")
	}
	if len(led.RunLog) != 2 {
		t.Errorf("Run log should survive across dates, got %d entries", len(led.RunLog))
	}
	if !led.Part2Unlocked {
		t.Error("Unlocks should survive across dates")
	}
	if led.RunID == firstID {
		t.Error("Each run should get a fresh id")
	}
}

// TestStartNewGameForgetsEverything tests the full reset, classifier included
func TestStartNewGameForgetsEverything(t *testing.T) {
	e := newTestEngine(dateGraph(), verdictGraph())
	if err := e.StartRun(dialogue.RouteThemcel, 1); err != nil {
		t.Fatalf("StartRun: %v", err)
	}
	if err := e.MakeChoice(0); err != nil { // tags stayedTooLong
		t.Fatalf("MakeChoice: %v", err)
	}
	if err := e.MakeChoice(0); err != nil { // sentinel
		t.Fatalf("MakeChoice: %v", err)
	}
	if node := e.CurrentNode(); node.ID != dialogue.EndingOnboardedID {
		t.Fatalf("Expected onboarded ending before reset, got %q", node.ID)
	}

	e.StartNewGame()

	led := e.Ledger()
	if len(led.RunLog) != 0 || led.Part2Unlocked || led.Part3Unlocked {
		t.Errorf("New game should clear run log and unlocks: %+v", led)
	}
	if e.CurrentNode() != nil {
		t.Error("New game should clear the current node")
	}

	// The classifier was reset: a neutral run now fails the interview.
	if err := e.StartRun(dialogue.RouteThemcel, 1); err != nil {
		t.Fatalf("StartRun: %v", err)
	}
	if err := e.MakeChoice(2); err != nil { // no tags
		t.Fatalf("MakeChoice: %v", err)
	}
	if err := e.MakeChoice(0); err != nil { // sentinel
		t.Fatalf("MakeChoice: %v", err)
	}
	if node := e.CurrentNode(); node.ID != dialogue.EndingNotAFitID {
		t.Errorf("Expected not-a-fit after reset, got %q", node.ID)
	}
}

// TestSentinelRoutesOnVerdict tests both sides of the integration transition
func TestSentinelRoutesOnVerdict(t *testing.T) {
	tests := []struct {
		name       string
		choice     int
		wantEnding string
	}{
		{"accepted", 0, dialogue.EndingOnboardedID},
		{"rejected", 1, dialogue.EndingNotAFitID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine(verdictGraph())
			if err := e.StartRun(dialogue.RouteThemcel, 3); err != nil {
				t.Fatalf("StartRun: %v", err)
			}
			if err := e.MakeChoice(tt.choice); err != nil {
				t.Fatalf("MakeChoice: %v", err)
			}
			if err := e.MakeChoice(0); err != nil {
				t.Fatalf("MakeChoice: %v", err)
			}

			node := e.CurrentNode()
			if node == nil || node.ID != tt.wantEnding {
				t.Fatalf("Expected %q, got %+v", tt.wantEnding, node)
			}
			if !node.IsEnding {
				t.Error("Verdict node should be an ending")
			}
			if strings.Contains(node.Text, dialogue.PlaceholderIntegration) {
				t.Errorf("Integration placeholder not rendered: %q", node.Text)
			}
			if node.Text == "" {
				t.Error("Expected the verdict line in the node text")
			}
		})
	}
}

// TestRumorRenderLeavesAuthoredNodeUntouched tests that rendering substitutes
// on a display copy only
func TestRumorRenderLeavesAuthoredNodeUntouched(t *testing.T) {
	g := dialogue.NewGraph("The Second Date", dialogue.RouteFemcel, []*dialogue.Node{
		{ID: "start", Speaker: "Mara", Text: "Before you sit: {RUMOR}", Choices: []dialogue.Choice{
			{Label: "Sit anyway"},
		}},
	})
	e := newTestEngine(g)
	if err := e.StartRun(dialogue.RouteFemcel, 2); err != nil {
		t.Fatalf("StartRun: %v", err)
	}

	display := e.CurrentNode()
	if strings.Contains(display.Text, dialogue.PlaceholderRumor) {
		t.Errorf("Rumor placeholder not rendered: %q", display.Text)
	}

	authored, _ := g.GetNode("start")
	if display == authored {
		t.Error("Display node should be a copy when placeholders render")
	}
	if !strings.Contains(authored.Text, dialogue.PlaceholderRumor) {
		t.Errorf("Authored node was mutated: %q", authored.Text)
	}
}

// TestLoadNodeWithoutRoute tests LoadNode before any StartRun
func TestLoadNodeWithoutRoute(t *testing.T) {
	e := newTestEngine(dateGraph())
	if err := e.LoadNode("start"); !errors.Is(err, dialogue.ErrRouteNotFound) {
		t.Fatalf("Expected ErrRouteNotFound, got %v", err)
	}
}

type recordingObserver struct {
	nodes   []string
	choices []string
	ledgers int
	ended   []string
}

func (r *recordingObserver) NodeChanged(node *dialogue.Node) { r.nodes = append(r.nodes, node.ID) }
func (r *recordingObserver) ChoiceMade(choice dialogue.Choice) {
	r.choices = append(r.choices, choice.Label)
}
func (r *recordingObserver) LedgerChanged(money, patience int) { r.ledgers++ }
func (r *recordingObserver) Ended(node *dialogue.Node) {
	r.ended = append(r.ended, node.EndingTitle)
}

// TestObserverEvents tests the notification sequence and unsubscribe
func TestObserverEvents(t *testing.T) {
	e := newTestEngine(dateGraph())
	rec := &recordingObserver{}
	cancel := e.Subscribe(rec)

	if err := e.StartRun(dialogue.RouteIncel, 1); err != nil {
		t.Fatalf("StartRun: %v", err)
	}
	if len(rec.nodes) != 1 || rec.nodes[0] != "start" {
		t.Errorf("Expected one NodeChanged for start, got %v", rec.nodes)
	}
	if rec.ledgers == 0 {
		t.Error("Expected a LedgerChanged on run start")
	}

	if err := e.MakeChoice(0); err != nil {
		t.Fatalf("MakeChoice: %v", err)
	}
	if len(rec.choices) != 1 || rec.choices[0] != "Order the tasting menu" {
		t.Errorf("Expected ChoiceMade, got %v", rec.choices)
	}
	if len(rec.nodes) != 2 || rec.nodes[1] != "mid" {
		t.Errorf("Expected NodeChanged for mid, got %v", rec.nodes)
	}

	if err := e.MakeChoice(0); err != nil {
		t.Fatalf("MakeChoice: %v", err)
	}
	if len(rec.ended) != 1 || rec.ended[0] != "IT ENDS" {
		t.Errorf("Expected Ended with the authored title, got %v", rec.ended)
	}

	cancel()
	cancel() // idempotent
	seen := len(rec.nodes)
	if err := e.StartRun(dialogue.RouteIncel, 2); err != nil {
		t.Fatalf("StartRun: %v", err)
	}
	if len(rec.nodes) != seen {
		t.Error("Cancelled observer still received events")
	}
}

// TestSetAppearancePassesThrough tests appearance storage and survival across
// a new date
func TestSetAppearancePassesThrough(t *testing.T) {
	e := newTestEngine(dateGraph())
	a := Appearance{SkinTone: 2, EyeStyle: 1, MouthStyle: 3, Accessory: 4}
	e.SetAppearance(a)

	if err := e.StartRun(dialogue.RouteIncel, 1); err != nil {
		t.Fatalf("StartRun: %v", err)
	}
	if got := e.Ledger().Appearance; got != a {
		t.Errorf("Expected appearance %+v, got %+v", a, got)
	}
}

// TestLedgerSnapshotIsIsolated tests that mutating a snapshot cannot reach
// engine state
func TestLedgerSnapshotIsIsolated(t *testing.T) {
	e := newTestEngine(dateGraph())
	if err := e.StartRun(dialogue.RouteIncel, 1); err != nil {
		t.Fatalf("StartRun: %v", err)
	}
	if err := e.MakeChoice(0); err != nil {
		t.Fatalf("MakeChoice: %v", err)
	}

	snap := e.Ledger()
	snap.Receipt[0].Label = "tampered"
	snap.RunLog[0].ChoiceLabel = "tampered"

	fresh := e.Ledger()
	if fresh.Receipt[0].Label == "tampered" || fresh.RunLog[0].ChoiceLabel == "tampered" {
		t.Error("Snapshot shares backing arrays with engine state")
	}
}
