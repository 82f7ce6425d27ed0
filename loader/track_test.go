package loader

import "testing"

type recordingObserver struct {
	events []Event
}

func (o *recordingObserver) OnWidgetEvent(e Event) {
	o.events = append(o.events, e)
}

func TestTracker_AttachDetach(t *testing.T) {
	tr := NewTracker()

	h := tr.Attach("widget")
	if h == 0 {
		t.Fatal("expected non-zero handle")
	}
	if tr.Len() != 1 {
		t.Fatalf("len: %d", tr.Len())
	}

	v, ok := tr.Detach(h)
	if !ok || v != "widget" {
		t.Fatalf("detach: %v %v", v, ok)
	}
	if tr.Len() != 0 {
		t.Fatalf("len after detach: %d", tr.Len())
	}
	if _, ok := tr.Detach(h); ok {
		t.Fatal("double detach must fail")
	}
	if _, ok := tr.Detach(0); ok {
		t.Fatal("handle 0 is always invalid")
	}
}

func TestTracker_HandleReuse(t *testing.T) {
	tr := NewTracker()

	a := tr.Attach("a")
	tr.Detach(a)
	b := tr.Attach("b")
	if b != a {
		t.Fatalf("expected freed handle to be reused: %d vs %d", a, b)
	}

	v, ok := tr.Detach(b)
	if !ok || v != "b" {
		t.Fatalf("reused handle holds wrong value: %v", v)
	}
}

func TestTracker_Observers(t *testing.T) {
	tr := NewTracker()
	obs := &recordingObserver{}
	tr.Subscribe(obs)

	h := tr.Attach("w")
	if len(obs.events) != 1 || obs.events[0].Type != EventAttached || obs.events[0].Handle != h {
		t.Fatalf("attach event: %+v", obs.events)
	}

	tr.Detach(h)
	if len(obs.events) != 2 || obs.events[1].Type != EventDetached {
		t.Fatalf("detach event: %+v", obs.events)
	}

	tr.Unsubscribe(obs)
	tr.Attach("x")
	if len(obs.events) != 2 {
		t.Fatal("unsubscribed observer still notified")
	}
}

func TestTracker_CloseSweepsLiveWidgets(t *testing.T) {
	tr := NewTracker()
	obs := &recordingObserver{}
	tr.Subscribe(obs)

	tr.Attach("a")
	tr.Attach("b")

	if err := tr.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if tr.Len() != 0 {
		t.Fatalf("len after close: %d", tr.Len())
	}

	detached := 0
	for _, e := range obs.events {
		if e.Type == EventDetached {
			detached++
		}
	}
	if detached != 2 {
		t.Fatalf("expected 2 detach events, got %d", detached)
	}

	if h := tr.Attach("c"); h != 0 {
		t.Fatal("attach after close must return 0")
	}
	if err := tr.Close(); err == nil {
		t.Fatal("second close must report closed")
	}
}

func TestTracker_Each(t *testing.T) {
	tr := NewTracker()
	tr.Attach("a")
	h := tr.Attach("b")
	tr.Attach("c")
	tr.Detach(h)

	var seen []any
	tr.Each(func(_ Handle, v any) bool {
		seen = append(seen, v)
		return true
	})
	if len(seen) != 2 {
		t.Fatalf("expected 2 live widgets, saw %v", seen)
	}
}
