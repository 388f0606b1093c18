package stack

import (
	"reflect"
	"testing"
)

// recorder appends lifecycle events to a shared trace so tests can assert
// exact ordering. The context is the trace itself.
type trace struct {
	events []string
}

func (tr *trace) add(e string) {
	tr.events = append(tr.events, e)
}

type recorder struct {
	name    string
	onEnter func(*trace)
	onExit  func(*trace)
	onRun   func(*trace)
}

func (r *recorder) Enter(tr *trace) {
	tr.add(r.name + ".enter")
	if r.onEnter != nil {
		r.onEnter(tr)
	}
}

func (r *recorder) Exit(tr *trace) {
	tr.add(r.name + ".exit")
	if r.onExit != nil {
		r.onExit(tr)
	}
}

func (r *recorder) Run(tr *trace) {
	tr.add(r.name + ".run")
	if r.onRun != nil {
		r.onRun(tr)
	}
}

func count(events []string, e string) int {
	n := 0
	for _, ev := range events {
		if ev == e {
			n++
		}
	}
	return n
}

func TestEnterBeforeFirstRun(t *testing.T) {
	tr := &trace{}
	s := New[*trace]()
	a := &recorder{name: "A"}

	s.Push(a)
	s.Run(tr)

	want := []string{"A.enter", "A.run"}
	if !reflect.DeepEqual(tr.events, want) {
		t.Errorf("Expected %v, got %v", want, tr.events)
	}

	// Subsequent ticks run without re-entering
	s.Run(tr)
	s.Run(tr)
	if got := count(tr.events, "A.enter"); got != 1 {
		t.Errorf("Expected exactly 1 enter, got %d", got)
	}
	if got := count(tr.events, "A.run"); got != 3 {
		t.Errorf("Expected 3 runs, got %d", got)
	}
}

func TestEnterExitAlternation(t *testing.T) {
	tr := &trace{}
	s := New[*trace]()
	a := &recorder{name: "A"}
	b := &recorder{name: "B"}

	s.Push(a)
	s.Run(tr) // A.enter, A.run
	s.Push(b) // A.exit (suspended)
	s.Run(tr) // B.enter, B.run
	s.Pop()   // B.exit
	s.Run(tr) // A.enter (reactivated), A.run
	s.Pop()   // A.exit

	want := []string{
		"A.enter", "A.run",
		"A.exit",
		"B.enter", "B.run",
		"B.exit",
		"A.enter", "A.run",
		"A.exit",
	}
	if !reflect.DeepEqual(tr.events, want) {
		t.Errorf("Expected %v, got %v", want, tr.events)
	}
	if s.Len() != 0 {
		t.Errorf("Expected empty stack, got len %d", s.Len())
	}
}

func TestMultiPushLastListedOnTop(t *testing.T) {
	tr := &trace{}
	s := New[*trace]()
	a := &recorder{name: "A"}
	b := &recorder{name: "B"}
	c := &recorder{name: "C"}

	s.Push(a, b, c)
	s.Run(tr)

	if s.Top() != State[*trace](c) {
		t.Fatalf("Expected C on top, got %v", s.Top())
	}
	want := []string{"C.enter", "C.run"}
	if !reflect.DeepEqual(tr.events, want) {
		t.Errorf("Expected only C to activate, got %v", tr.events)
	}
	if s.Len() != 3 {
		t.Errorf("Expected 3 states on stack, got %d", s.Len())
	}

	// A and B become active as the stack unwinds
	s.Pop() // C.exit
	s.Run(tr)
	if got := tr.events[len(tr.events)-1]; got != "B.run" {
		t.Errorf("Expected B to run after C popped, got %s", got)
	}
}

func TestPushDuringEnter(t *testing.T) {
	tr := &trace{}
	s := New[*trace]()
	x := &recorder{name: "X"}
	y := &recorder{name: "Y"}
	a := &recorder{name: "A"}
	a.onEnter = func(tr *trace) {
		s.Push(x, y)
	}

	s.Push(a)
	s.Run(tr)

	// Pushing on top of A suspends it mid-Enter; stabilization then
	// enters Y (the new top). X stays dormant until Y pops.
	want := []string{"A.enter", "A.exit", "Y.enter", "Y.run"}
	if !reflect.DeepEqual(tr.events, want) {
		t.Errorf("Expected %v, got %v", want, tr.events)
	}
	if got := count(tr.events, "A.run"); got != 0 {
		t.Errorf("A should not have run, got %d runs", got)
	}
	if s.Len() != 3 {
		t.Errorf("Expected stack [A X Y], got len %d", s.Len())
	}
}

func TestPopDuringEnter(t *testing.T) {
	tr := &trace{}
	s := New[*trace]()
	a := &recorder{name: "A"}
	b := &recorder{name: "B"}
	// B bails out immediately; A below it takes over in the same tick.
	b.onEnter = func(tr *trace) {
		s.Pop()
	}

	s.Push(a, b)
	s.Run(tr)

	want := []string{"B.enter", "B.exit", "A.enter", "A.run"}
	if !reflect.DeepEqual(tr.events, want) {
		t.Errorf("Expected %v, got %v", want, tr.events)
	}
}

func TestPushDuringExit(t *testing.T) {
	tr := &trace{}
	s := New[*trace]()
	b := &recorder{name: "B"}
	a := &recorder{name: "A"}
	a.onExit = func(tr *trace) {
		s.Push(b)
	}

	s.Push(a)
	s.Run(tr)
	s.Pop() // A.exit pushes B while the pop is in flight
	s.Run(tr)

	want := []string{"A.enter", "A.run", "A.exit", "B.enter", "B.run"}
	if !reflect.DeepEqual(tr.events, want) {
		t.Errorf("Expected %v, got %v", want, tr.events)
	}
	if s.Top() != State[*trace](b) {
		t.Errorf("Expected B on top after exit-push")
	}
}

func TestReplace(t *testing.T) {
	tr := &trace{}
	s := New[*trace]()
	a := &recorder{name: "A"}
	d := &recorder{name: "D"}

	s.Push(a)
	s.Run(tr)
	s.Replace(d)
	s.Run(tr)

	want := []string{"A.enter", "A.run", "A.exit", "D.enter", "D.run"}
	if !reflect.DeepEqual(tr.events, want) {
		t.Errorf("Expected %v, got %v", want, tr.events)
	}
	if s.Len() != 1 {
		t.Errorf("Expected stack [D], got len %d", s.Len())
	}
}

func TestReplaceOnEmptyStack(t *testing.T) {
	tr := &trace{}
	s := New[*trace]()
	d := &recorder{name: "D"}

	// The guarded pop is skipped; Replace degrades to Push.
	s.Replace(d)
	s.Run(tr)

	want := []string{"D.enter", "D.run"}
	if !reflect.DeepEqual(tr.events, want) {
		t.Errorf("Expected %v, got %v", want, tr.events)
	}
}

func TestPopNeverEnteredSkipsExit(t *testing.T) {
	tr := &trace{}
	s := New[*trace]()
	a := &recorder{name: "A"}

	// Popped before any Run: no activation, so no Exit either.
	s.Push(a)
	s.Pop()

	if len(tr.events) != 0 {
		t.Errorf("Expected no lifecycle events, got %v", tr.events)
	}
}

func TestPopOutsideRunUsesCachedContext(t *testing.T) {
	tr1 := &trace{}
	s := New[*trace]()
	var exitCtx *trace
	a := &recorder{name: "A"}
	a.onExit = func(tr *trace) {
		exitCtx = tr
	}

	s.Push(a)
	s.Run(tr1)
	// Pop between ticks: Exit still gets the context from the last Run.
	s.Pop()

	if exitCtx != tr1 {
		t.Errorf("Expected exit to receive the cached context")
	}
}

func TestPopEmptyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Expected panic on Pop of empty stack")
		}
	}()

	s := New[*trace]()
	s.Pop()
}

func TestRunEmptyStackIsNoop(t *testing.T) {
	tr := &trace{}
	s := New[*trace]()
	s.Run(tr) // Must not panic or record anything
	if len(tr.events) != 0 {
		t.Errorf("Expected no events, got %v", tr.events)
	}
}

func TestSameStateTwiceTrackedPerOccurrence(t *testing.T) {
	tr := &trace{}
	s := New[*trace]()
	a := &recorder{name: "A"}

	// Each push is an independent occurrence of the same value.
	s.Push(a, a)
	s.Run(tr) // top occurrence activates
	s.Pop()   // top occurrence exits
	s.Run(tr) // bottom occurrence activates

	want := []string{"A.enter", "A.run", "A.exit", "A.enter", "A.run"}
	if !reflect.DeepEqual(tr.events, want) {
		t.Errorf("Expected %v, got %v", want, tr.events)
	}
}

func TestBaseStateIsInert(t *testing.T) {
	type world struct{ ticks int }

	s := New[*world]()
	s.Push(Base[*world]{})
	w := &world{}
	s.Run(w)
	s.Run(w)

	if s.Len() != 1 {
		t.Errorf("Expected base state to stay put, got len %d", s.Len())
	}
}
