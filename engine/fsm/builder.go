package fsm

import "fmt"

func NewMachine[T any]() *Machine[T] {
	return &Machine[T]{nodes: make(map[StateID]*Node[T])}
}

// AddState adds a node, replacing any node with the same id
func (m *Machine[T]) AddState(id StateID, name string) *Node[T] {
	node := &Node[T]{ID: id, Name: name}
	m.nodes[id] = node
	return node
}

// AddTransition adds a transition out of sourceID
func (m *Machine[T]) AddTransition(sourceID StateID, t Transition[T]) error {
	node, ok := m.nodes[sourceID]
	if !ok {
		return fmt.Errorf("%w: source %d", ErrUnknownState, sourceID)
	}
	if _, ok := m.nodes[t.TargetID]; !ok {
		return fmt.Errorf("%w: target %d", ErrUnknownState, t.TargetID)
	}
	node.Transitions = append(node.Transitions, t)
	return nil
}

// OnEnter registers an action run whenever id becomes active
func (m *Machine[T]) OnEnter(id StateID, fn ActionFunc[T]) error {
	node, ok := m.nodes[id]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownState, id)
	}
	node.OnEnter = append(node.OnEnter, fn)
	return nil
}
