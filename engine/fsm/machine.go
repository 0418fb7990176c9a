package fsm

import (
	"fmt"
	"time"
)

// Init activates the initial state without running its enter actions
func (m *Machine[T]) Init(initial StateID) error {
	if _, ok := m.nodes[initial]; !ok {
		return fmt.Errorf("%w: initial %d", ErrUnknownState, initial)
	}
	m.InitialStateID = initial
	m.activeStateID = initial
	m.timeInState = 0
	m.initialized = true
	return nil
}

// Update advances time in the current state
func (m *Machine[T]) Update(dt time.Duration) {
	if m.initialized {
		m.timeInState += dt
	}
}

// Fire evaluates the active node's transitions for trigger in priority order
// Returns true if a transition was taken
func (m *Machine[T]) Fire(ctx T, trigger Trigger) bool {
	if !m.initialized {
		return false
	}
	node := m.nodes[m.activeStateID]
	for _, t := range node.Transitions {
		if t.Trigger != trigger {
			continue
		}
		if t.Guard != nil && !t.Guard(ctx) {
			continue
		}
		m.transition(ctx, node, m.nodes[t.TargetID])
		return true
	}
	return false
}

func (m *Machine[T]) transition(ctx T, from, to *Node[T]) {
	m.activeStateID = to.ID
	m.timeInState = 0
	for _, fn := range to.OnEnter {
		fn(ctx, from.ID, to.ID)
	}
}

func (m *Machine[T]) Current() StateID {
	return m.activeStateID
}

// TimeInState is the time accumulated by Update since the last transition
func (m *Machine[T]) TimeInState() time.Duration {
	return m.timeInState
}
