// Package stack provides a lifecycle-correct state stack for game logic.
// A game pushes states (explore, combat, pause, ...) and drives the stack
// once per simulation tick; the stack guarantees that Enter and Exit fire
// exactly once per activation, even when a state mutates the stack from
// inside its own callbacks. It contains no external dependencies to keep
// game logic pure and testable.
package stack

import "fmt"

// State is a unit of behavior with lifecycle hooks over a context type C.
// Only the state at the top of a Stack is active; states below it are
// suspended and retain nothing beyond their own fields.
type State[C any] interface {
	// Enter is called once when the state becomes the active top,
	// before its first Run of that activation.
	Enter(ctx C)

	// Exit is called once when the state stops being the active top,
	// either because it was popped or because another state was pushed
	// above it. Always paired with a preceding Enter.
	Exit(ctx C)

	// Run is called once per tick while the state is the entered top.
	Run(ctx C)
}

// Base is a State with no-op callbacks, meant for embedding so concrete
// states only implement the hooks they care about.
type Base[C any] struct{}

func (Base[C]) Enter(C) {}
func (Base[C]) Exit(C)  {}
func (Base[C]) Run(C)   {}

// Stack is an ordered sequence of states with stack discipline.
// The last element is the top, the only state that ever receives Run.
//
// A single entered flag at the stack level is enough because at most one
// state is ever active; generalizing it to per-state flags would buy
// nothing. The last context seen by Run is cached so that Pop and Push
// can still supply a context to Exit when invoked between ticks.
//
// A Stack is not safe for concurrent use: exactly one logical thread of
// control drives it, and all operations complete before returning.
// Re-entrant mutation (a state pushing or popping during its own Enter,
// Exit or Run) is legal and handled without locks.
type Stack[C any] struct {
	states  []State[C]
	entered bool
	ctx     C
}

// New returns an empty stack. The zero value is also ready to use.
func New[C any]() *Stack[C] {
	return &Stack[C]{}
}

// Push installs one or more states, listed bottom-up: the last argument
// becomes the new top. If the current top has been entered it receives
// Exit first, so a suspended state never holds a dangling activation.
// The new top is not entered here; entry is deferred to the next Run.
func (s *Stack[C]) Push(states ...State[C]) {
	if len(states) == 0 {
		return
	}
	if s.entered {
		top := s.states[len(s.states)-1]
		s.entered = false
		top.Exit(s.ctx)
	}
	s.states = append(s.states, states...)
}

// Pop removes the current top. If it had been entered, Exit fires on it
// with the last cached context. The top is detached from the stack before
// Exit runs, so an Exit that pushes or pops operates on a consistent
// stack. Popping an empty stack panics: it indicates a logic bug in the
// state graph, not a recoverable runtime condition.
func (s *Stack[C]) Pop() {
	if len(s.states) == 0 {
		panic("stack: Pop on empty stack")
	}
	top := s.states[len(s.states)-1]
	s.states[len(s.states)-1] = nil
	s.states = s.states[:len(s.states)-1]
	if s.entered {
		s.entered = false
		top.Exit(s.ctx)
	}
}

// Replace swaps the current top for the given state: Pop followed by
// Push, with the Pop skipped when the stack is empty.
func (s *Stack[C]) Replace(state State[C]) {
	if len(s.states) > 0 {
		s.Pop()
	}
	s.Push(state)
}

// Run drives the stack for one tick. It first stabilizes the top: as long
// as the top state has not been entered, it is marked entered and its
// Enter is called. Enter may itself push or pop (invalidating the flag
// and possibly changing the top), so this repeats until the top has been
// entered and its Enter returned with the flag intact. Only then does the
// final top receive Run, exactly once. Run on an empty stack is a no-op.
//
// Termination of the stabilization loop is the caller's responsibility:
// a state whose Enter pushes states unboundedly will spin here.
func (s *Stack[C]) Run(ctx C) {
	s.ctx = ctx
	for len(s.states) > 0 && !s.entered {
		s.entered = true
		s.states[len(s.states)-1].Enter(ctx)
	}
	if len(s.states) == 0 {
		return
	}
	s.states[len(s.states)-1].Run(ctx)
}

// Top returns the current top state, or nil if the stack is empty.
func (s *Stack[C]) Top() State[C] {
	if len(s.states) == 0 {
		return nil
	}
	return s.states[len(s.states)-1]
}

// Len returns the number of states on the stack.
func (s *Stack[C]) Len() int {
	return len(s.states)
}

// String describes the stack for debugging.
func (s *Stack[C]) String() string {
	return fmt.Sprintf("stack[len=%d entered=%v]", len(s.states), s.entered)
}
