package mock

import (
	"sync"

	"github.com/fwojciec/codesearch"
)

var _ codesearch.Observer = (*Observer)(nil)

// Observer records every event it receives.
type Observer struct {
	mu     sync.Mutex
	events []codesearch.Event
}

func (o *Observer) Observe(e codesearch.Event) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}

// Events returns a copy of the recorded events in arrival order.
func (o *Observer) Events() []codesearch.Event {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]codesearch.Event, len(o.events))
	copy(out, o.events)
	return out
}

// Paths returns the paths of recorded events of the given kind.
func (o *Observer) Paths(kind codesearch.EventKind) []string {
	var out []string
	for _, e := range o.Events() {
		if e.Kind == kind {
			out = append(out, e.Path)
		}
	}
	return out
}
