// Package event carries synthetic key transitions from the controller mapper
// to the engine's input queue.
package event

import (
	"fmt"

	"github.com/qzvr/vrinput/keys"
)

// Event is a single key transition.
type Event struct {
	Key  keys.Code
	Down bool
}

func (e Event) String() string {
	if e.Down {
		return fmt.Sprintf("+%s", e.Key)
	}
	return fmt.Sprintf("-%s", e.Key)
}

// Sink receives key transitions in emission order.
type Sink interface {
	Post(ev Event)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(ev Event)

// Post calls f(ev).
func (f SinkFunc) Post(ev Event) { f(ev) }

// Queue is an in-memory Sink that also tracks which keys are held.
type Queue struct {
	events []Event
	held   keys.State
}

// Post appends ev and updates the held-key state.
func (q *Queue) Post(ev Event) {
	q.events = append(q.events, ev)
	q.held.Set(ev.Key, ev.Down)
}

// Drain returns the queued events and empties the queue. Held state is kept.
func (q *Queue) Drain() []Event {
	out := q.events
	q.events = nil
	return out
}

// Len returns the number of queued events.
func (q *Queue) Len() int {
	return len(q.events)
}

// Held returns the keys currently held down.
func (q *Queue) Held() keys.State {
	return q.held
}
