package fsm

import (
	"errors"
	"time"
)

var (
	ErrUnknownState = errors.New("fsm: unknown state")
)

// StateID is a unique identifier for a node
type StateID int

// Trigger is an external stimulus that may move the machine
type Trigger int

// Machine is a flat finite state machine
// T is the context type passed to actions and guards
type Machine[T any] struct {
	// Graph data, immutable after Init
	nodes map[StateID]*Node[T]

	InitialStateID StateID

	// Runtime state
	activeStateID StateID
	timeInState   time.Duration
	initialized   bool
}

// Node represents a state
type Node[T any] struct {
	ID   StateID
	Name string

	OnEnter []ActionFunc[T]

	// Transitions in evaluation priority
	Transitions []Transition[T]
}

// Transition defines a link between states
type Transition[T any] struct {
	Trigger  Trigger
	TargetID StateID
	Guard    GuardFunc[T] // nil = Always true
}

// GuardFunc returns true if the transition should occur
type GuardFunc[T any] func(ctx T) bool

// ActionFunc executes a side effect on entering a state
type ActionFunc[T any] func(ctx T, from, to StateID)
