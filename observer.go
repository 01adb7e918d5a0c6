package kdtree

import "time"

// Operation identifies a public tree operation in events and statistics.
type Operation string

const (
	OpInsert  Operation = "insert"
	OpRemove  Operation = "remove"
	OpSearch  Operation = "search"
	OpNearest Operation = "nearest"
	OpKNN     Operation = "knn"
	OpRange   Operation = "range"
	OpClear   Operation = "clear"
	OpRebuild Operation = "rebuild"
)

// Event describes one completed operation. Each completed mutating or query
// operation produces exactly one Event per registered observer. Payload is
// the operation's result value (InsertResult, NearestResult, ...).
type Event struct {
	Op      Operation
	Payload any
	Time    time.Time
}

// Observer receives operation events. Observers registered in Config run
// synchronously on the calling goroutine after the operation completes;
// a slow observer slows the caller. Because read-only queries may run
// concurrently, observers must be safe for concurrent use.
type Observer func(Event)

// notify delivers one event for a completed operation to every observer.
func (t *Tree) notify(op Operation, payload any) {
	if len(t.observers) == 0 {
		return
	}
	ev := Event{Op: op, Payload: payload, Time: time.Now()}
	for _, obs := range t.observers {
		obs(ev)
	}
}
