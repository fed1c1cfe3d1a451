package game

import "SwipeState/internal/dialogue"

// Observer receives engine notifications so the presentation layer can stay
// in sync without reaching into engine state. Callbacks run synchronously on
// the goroutine that drove the engine call.
type Observer interface {
	// NodeChanged fires after a node is resolved and rendered.
	NodeChanged(node *dialogue.Node)
	// ChoiceMade fires after a choice's effects have been applied.
	ChoiceMade(choice dialogue.Choice)
	// LedgerChanged fires whenever money or patience move.
	LedgerChanged(money, patience int)
	// Ended fires once per run with the ending node (authored or synthetic).
	Ended(node *dialogue.Node)
}

// NoopObserver implements Observer with no-ops; embed it to handle a subset
// of events.
type NoopObserver struct{}

func (NoopObserver) NodeChanged(node *dialogue.Node)   {}
func (NoopObserver) ChoiceMade(choice dialogue.Choice) {}
func (NoopObserver) LedgerChanged(money, patience int) {}
func (NoopObserver) Ended(node *dialogue.Node)         {}

// Subscribe registers an observer and returns its cancel function. Cancel is
// idempotent; after it returns the observer receives no further events.
func (e *Engine) Subscribe(o Observer) func() {
	id := e.nextObserverID
	e.nextObserverID++
	e.observers[id] = o
	return func() {
		delete(e.observers, id)
	}
}

func (e *Engine) emitNodeChanged(node *dialogue.Node) {
	for _, o := range e.observers {
		o.NodeChanged(node)
	}
}

func (e *Engine) emitChoiceMade(choice dialogue.Choice) {
	for _, o := range e.observers {
		o.ChoiceMade(choice)
	}
}

func (e *Engine) emitLedgerChanged() {
	for _, o := range e.observers {
		o.LedgerChanged(e.ledger.Money, e.ledger.Patience)
	}
}

func (e *Engine) emitEnded(node *dialogue.Node) {
	for _, o := range e.observers {
		o.Ended(node)
	}
}
