// Package reputation derives behavioral tags from the running choice log.
//
// Two signal sources feed the flags: keyword heuristics over choice labels
// and node ids, and explicit tag strings carried on a choice's effects.
// Flags are monotone within a game: once set they never revert until Reset.
package reputation

import (
	"math/rand"
	"strings"
)

// Canonical tag spellings exposed by Tags and consumed by the scorer.
const (
	TagLeftEarly            = "leftEarly"
	TagStayedTooLong        = "stayedTooLong"
	TagBoundarySetter       = "boundarySetter"
	TagHumorDeflect         = "humorDeflect"
	TagEngagedInSpreadsheet = "engagedInSpreadsheet"
	TagHighSpend            = "highSpend"
	TagChaosAgent           = "chaosAgent"
)

// Counter thresholds before a heuristic flips its flag.
const (
	boundaryThreshold   = 2
	humorThreshold      = 2
	engagementThreshold = 1
	chaosThreshold      = 1
)

// highSpendDelta is the money delta at or below which a single choice marks
// the player a high spender.
const highSpendDelta = -40

// Entry is the slice of one choice-log entry the classifier inspects.
type Entry struct {
	NodeID      string
	ChoiceLabel string
	MoneyChange int
	Tags        []string
}

// Classifier accumulates reputation flags across every date of one game.
// It is not safe for concurrent use; the engine owns exactly one and calls
// it from a single goroutine.
type Classifier struct {
	rng *rand.Rand

	leftEarly            bool
	stayedTooLong        bool
	boundarySetter       bool
	humorDeflect         bool
	engagedInSpreadsheet bool
	highSpend            bool
	chaosAgent           bool

	boundaryCount   int
	humorCount      int
	engagementCount int
	chaosCount      int
}

// NewClassifier builds a classifier drawing rumor lines from rng. Inject a
// seeded source for deterministic output.
func NewClassifier(rng *rand.Rand) *Classifier {
	return &Classifier{rng: rng}
}

// Reset clears every flag and counter. Called when a new game starts, not
// between dates.
func (c *Classifier) Reset() {
	rng := c.rng
	*c = Classifier{rng: rng}
}

// Process folds one choice-log entry into the flags.
func (c *Classifier) Process(e Entry) {
	label := e.ChoiceLabel
	nodeID := e.NodeID

	if earlyExitWords.matches(label) || leaveNodeIDs.matches(nodeID) {
		c.leftEarly = true
	}
	if stayWords.matches(label) || stayNodeIDs.matches(nodeID) {
		c.stayedTooLong = true
	}
	if boundaryWords.matches(label) {
		c.boundaryCount++
		if c.boundaryCount >= boundaryThreshold {
			c.boundarySetter = true
		}
	}
	if humorWords.matches(label) {
		c.humorCount++
		if c.humorCount >= humorThreshold {
			c.humorDeflect = true
		}
	}
	if spreadsheetWords.matches(label) || analyticNodeIDs.matches(nodeID) {
		c.engagementCount++
		if c.engagementCount >= engagementThreshold {
			c.engagedInSpreadsheet = true
		}
	}
	if chaosWords.matches(label) {
		c.chaosCount++
		if c.chaosCount >= chaosThreshold {
			c.chaosAgent = true
		}
	}
	if e.MoneyChange <= highSpendDelta {
		c.highSpend = true
	}

	for _, tag := range e.Tags {
		c.applyTag(tag)
	}
}

// applyTag sets a flag from an explicit effect tag, bypassing thresholds.
func (c *Classifier) applyTag(tag string) {
	switch strings.ToLower(tag) {
	case "leftearly":
		c.leftEarly = true
	case "stayedtoolong":
		c.stayedTooLong = true
	case "boundarysetter":
		c.boundarySetter = true
	case "humordeflect":
		c.humorDeflect = true
	case "engagedinspreadsheet":
		c.engagedInSpreadsheet = true
	case "highspend":
		c.highSpend = true
	case "chaosagent":
		c.chaosAgent = true
	}
}

// Tags returns the canonical spelling of every currently-true flag.
func (c *Classifier) Tags() []string {
	var tags []string
	if c.leftEarly {
		tags = append(tags, TagLeftEarly)
	}
	if c.stayedTooLong {
		tags = append(tags, TagStayedTooLong)
	}
	if c.boundarySetter {
		tags = append(tags, TagBoundarySetter)
	}
	if c.humorDeflect {
		tags = append(tags, TagHumorDeflect)
	}
	if c.engagedInSpreadsheet {
		tags = append(tags, TagEngagedInSpreadsheet)
	}
	if c.highSpend {
		tags = append(tags, TagHighSpend)
	}
	if c.chaosAgent {
		tags = append(tags, TagChaosAgent)
	}
	return tags
}
