package fsm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	stateIdle StateID = iota + 1
	stateRun
	stateDone
)

const (
	triggerGo Trigger = iota + 1
	triggerStop
)

type counter struct {
	enters []StateID
	from   []StateID
	allow  bool
}

func buildMachine(t *testing.T) *Machine[*counter] {
	t.Helper()
	m := NewMachine[*counter]()
	m.AddState(stateIdle, "idle")
	m.AddState(stateRun, "run")
	m.AddState(stateDone, "done")

	require.NoError(t, m.AddTransition(stateIdle, Transition[*counter]{Trigger: triggerGo, TargetID: stateRun}))
	require.NoError(t, m.AddTransition(stateRun, Transition[*counter]{
		Trigger: triggerStop, TargetID: stateDone,
		Guard: func(c *counter) bool { return c.allow },
	}))
	require.NoError(t, m.AddTransition(stateRun, Transition[*counter]{Trigger: triggerStop, TargetID: stateIdle}))

	require.NoError(t, m.OnEnter(stateRun, func(c *counter, _, to StateID) { c.enters = append(c.enters, to) }))
	require.NoError(t, m.OnEnter(stateIdle, func(c *counter, from, _ StateID) { c.from = append(c.from, from) }))
	require.NoError(t, m.Init(stateIdle))
	return m
}

func TestFireFollowsTransitions(t *testing.T) {
	m := buildMachine(t)
	c := &counter{}

	assert.False(t, m.Fire(c, triggerStop), "idle ignores stop")
	assert.True(t, m.Fire(c, triggerGo))
	assert.Equal(t, stateRun, m.Current())
	assert.Equal(t, []StateID{stateRun}, c.enters)

	// Guarded transition blocked, next in priority taken
	assert.True(t, m.Fire(c, triggerStop))
	assert.Equal(t, stateIdle, m.Current())
	assert.Equal(t, []StateID{stateRun}, c.from, "enter actions see the previous state")

	c.allow = true
	m.Fire(c, triggerGo)
	m.Fire(c, triggerStop)
	assert.Equal(t, stateDone, m.Current())
}

func TestTimeInStateResetsOnTransition(t *testing.T) {
	m := buildMachine(t)
	m.Update(300 * time.Millisecond)
	assert.Equal(t, 300*time.Millisecond, m.TimeInState())

	m.Fire(&counter{}, triggerGo)
	assert.Zero(t, m.TimeInState())
}

func TestBuilderRejectsUnknownStates(t *testing.T) {
	m := NewMachine[*counter]()
	m.AddState(stateIdle, "idle")
	assert.ErrorIs(t, m.AddTransition(stateRun, Transition[*counter]{TargetID: stateIdle}), ErrUnknownState)
	assert.ErrorIs(t, m.AddTransition(stateIdle, Transition[*counter]{TargetID: stateRun}), ErrUnknownState)
	assert.ErrorIs(t, m.Init(stateDone), ErrUnknownState)
	assert.False(t, m.Fire(&counter{}, triggerGo))
}
