package loader

import (
	"sync"

	"github.com/bogrendigital/ui-loader/errors"
)

// Handle is an opaque reference to a tracked widget.
// Handle 0 is reserved and always invalid.
type Handle uint32

// EventType identifies a widget lifecycle event.
type EventType uint8

const (
	EventAttached EventType = iota
	EventDetached
)

// Event is one widget lifecycle notification.
type Event struct {
	Value  any
	Handle Handle
	Type   EventType
}

// Observer receives widget lifecycle events. Test harnesses subscribe one to
// verify that closing a loader detaches everything it attached.
type Observer interface {
	OnWidgetEvent(Event)
}

// Tracker records the widgets a loader currently owns. The loader attaches
// every widget it builds and detaches them on unload or Close, so the
// tracker's length is the live-widget count.
type Tracker struct {
	entries   []entry
	freeList  []Handle
	observers []Observer
	mu        sync.RWMutex
	closed    bool
}

type entry struct {
	value any
	valid bool
}

// NewTracker returns an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{
		entries:  make([]entry, 0, 64),
		freeList: make([]Handle, 0, 16),
	}
}

// Attach records a widget and returns its handle.
// Returns 0 if the tracker is closed.
func (t *Tracker) Attach(value any) Handle {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return 0
	}

	e := entry{value: value, valid: true}
	var h Handle
	if n := len(t.freeList); n > 0 {
		h = t.freeList[n-1]
		t.freeList = t.freeList[:n-1]
		t.entries[h-1] = e
	} else {
		t.entries = append(t.entries, e)
		h = Handle(len(t.entries))
	}
	t.mu.Unlock()

	t.notify(Event{Type: EventAttached, Handle: h, Value: value})
	return h
}

// Detach drops a tracked widget and returns (value, true) if it was live.
func (t *Tracker) Detach(h Handle) (any, bool) {
	t.mu.Lock()
	if h == 0 || int(h) > len(t.entries) || !t.entries[h-1].valid {
		t.mu.Unlock()
		return nil, false
	}
	value := t.entries[h-1].value
	t.entries[h-1] = entry{}
	t.freeList = append(t.freeList, h)
	t.mu.Unlock()

	t.notify(Event{Type: EventDetached, Handle: h, Value: value})
	return value, true
}

// Len returns the number of live widgets.
func (t *Tracker) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	n := 0
	for _, e := range t.entries {
		if e.valid {
			n++
		}
	}
	return n
}

// Each iterates over live widgets. Return false to stop.
func (t *Tracker) Each(fn func(Handle, any) bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for i, e := range t.entries {
		if !e.valid {
			continue
		}
		if !fn(Handle(i+1), e.value) {
			return
		}
	}
}

// Subscribe adds an observer for lifecycle events.
func (t *Tracker) Subscribe(o Observer) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.observers = append(t.observers, o)
}

// Unsubscribe removes an observer.
func (t *Tracker) Unsubscribe(o Observer) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i, obs := range t.observers {
		if obs == o {
			t.observers = append(t.observers[:i], t.observers[i+1:]...)
			return
		}
	}
}

// Close detaches all live widgets and stops accepting attachments.
func (t *Tracker) Close() error {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return errors.Closed(errors.PhaseBuild, "widget tracker")
	}
	t.closed = true
	var live []Handle
	for i, e := range t.entries {
		if e.valid {
			live = append(live, Handle(i+1))
		}
	}
	t.mu.Unlock()

	for _, h := range live {
		t.Detach(h)
	}
	return nil
}

func (t *Tracker) notify(e Event) {
	t.mu.RLock()
	obs := make([]Observer, len(t.observers))
	copy(obs, t.observers)
	t.mu.RUnlock()
	for _, o := range obs {
		o.OnWidgetEvent(e)
	}
}
