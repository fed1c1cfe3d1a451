// Package game holds the mutable state of one playthrough (the ledger) and
// the engine that walks dialogue graphs, applies choice effects, and decides
// how each date ends.
package game

import (
	"time"

	"github.com/google/uuid"

	"SwipeState/internal/dialogue"
)

// Starting values for each date. Money and patience are deliberately
// unbounded afterwards; going negative is gameplay, not an error.
const (
	StartingMoney    = 100
	StartingPatience = 10
)

// Appearance is the player's cosmetic customization. The engine passes it
// through untouched; only the presentation layer interprets the indices.
type Appearance struct {
	SkinTone   int `json:"skinTone"`
	EyeStyle   int `json:"eyeStyle"`
	MouthStyle int `json:"mouthStyle"`
	Accessory  int `json:"accessory"`
}

// ChoiceLogEntry records one choice for the reputation classifier. Entries
// are append-only and survive across dates; only a new game clears them.
type ChoiceLogEntry struct {
	NodeID      string
	ChoiceLabel string
	Effects     dialogue.Effects
	Timestamp   time.Time
}

// Ledger is the aggregate run state. It is owned by exactly one Engine and
// mutated only through engine operations.
type Ledger struct {
	RunID         string
	Appearance    Appearance
	Route         dialogue.RouteType
	Part          int
	CurrentNodeID string
	Money         int
	Patience      int
	Receipt       []dialogue.ReceiptLine
	RunLog        []ChoiceLogEntry
	Part2Unlocked bool
	Part3Unlocked bool
	Ended         bool
}

// NewLedger returns the state of a fresh game: part 1, nothing unlocked,
// empty run log.
func NewLedger() *Ledger {
	return &Ledger{
		RunID:         uuid.NewString(),
		Part:          1,
		CurrentNodeID: dialogue.StartNodeID,
		Money:         StartingMoney,
		Patience:      StartingPatience,
	}
}

// beginRun resets the per-date fields for a new run while keeping the run
// log, unlock flags, and appearance.
func (l *Ledger) beginRun(route dialogue.RouteType, part int) {
	l.RunID = uuid.NewString()
	l.Route = route
	l.Part = part
	l.CurrentNodeID = dialogue.StartNodeID
	l.Money = StartingMoney
	l.Patience = StartingPatience
	l.Receipt = nil
	l.Ended = false
}

// AddReceiptLine appends one line to the date receipt.
func (l *Ledger) AddReceiptLine(label string, cost int) {
	l.Receipt = append(l.Receipt, dialogue.ReceiptLine{Label: label, Cost: cost})
}

// LogChoice appends a choice-log entry with an effects snapshot. A nil
// effects pointer is recorded as the zero value.
func (l *Ledger) LogChoice(nodeID, label string, effects *dialogue.Effects, at time.Time) ChoiceLogEntry {
	entry := ChoiceLogEntry{
		NodeID:      nodeID,
		ChoiceLabel: label,
		Timestamp:   at,
	}
	if effects != nil {
		entry.Effects = *effects
	}
	l.RunLog = append(l.RunLog, entry)
	return entry
}

// UnlockPart flips the unlock flag for parts 2 and 3; other values no-op.
func (l *Ledger) UnlockPart(part int) {
	switch part {
	case 2:
		l.Part2Unlocked = true
	case 3:
		l.Part3Unlocked = true
	}
}

// PartUnlocked reports whether a story part is playable. Part 1 always is.
func (l *Ledger) PartUnlocked(part int) bool {
	switch part {
	case 1:
		return true
	case 2:
		return l.Part2Unlocked
	case 3:
		return l.Part3Unlocked
	default:
		return false
	}
}

// Snapshot returns a copy safe to hand to the presentation layer. Slices
// are cloned so callers cannot reach back into engine-owned state.
func (l *Ledger) Snapshot() Ledger {
	snap := *l
	snap.Receipt = append([]dialogue.ReceiptLine(nil), l.Receipt...)
	snap.RunLog = append([]ChoiceLogEntry(nil), l.RunLog...)
	return snap
}
