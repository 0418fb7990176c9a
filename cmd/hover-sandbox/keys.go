package main

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/Danjb1/hovership/core"
)

type control uint8

const (
	ctlForward control = iota
	ctlReverse
	ctlLeft
	ctlRight
	ctlJump
	controlCount
)

// heldKeys turns key presses into held controls
// Terminals report no key release, a control stays held for window after its last press or repeat
type heldKeys struct {
	mu     sync.Mutex
	window time.Duration
	now    func() time.Time
	seen   [controlCount]time.Time

	jumpWasHeld bool
}

func newHeldKeys(window time.Duration) *heldKeys {
	return &heldKeys{window: window, now: time.Now}
}

// controlFor maps a key event, ok is false for keys that are not controls
func controlFor(ev *tcell.EventKey) (control, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return ctlForward, true
	case tcell.KeyDown:
		return ctlReverse, true
	case tcell.KeyLeft:
		return ctlLeft, true
	case tcell.KeyRight:
		return ctlRight, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return ctlForward, true
		case 's', 'S':
			return ctlReverse, true
		case 'a', 'A':
			return ctlLeft, true
		case 'd', 'D':
			return ctlRight, true
		case ' ':
			return ctlJump, true
		}
	}
	return 0, false
}

func (k *heldKeys) Press(c control) {
	k.mu.Lock()
	k.seen[c] = k.now()
	k.mu.Unlock()
}

// Release drops every control, used when the simulation is paused
func (k *heldKeys) Release() {
	k.mu.Lock()
	k.seen = [controlCount]time.Time{}
	k.mu.Unlock()
}

func (k *heldKeys) held(c control, now time.Time) bool {
	last := k.seen[c]
	return !last.IsZero() && now.Sub(last) <= k.window
}

func axis(positive, negative bool) float64 {
	switch {
	case positive && !negative:
		return 1
	case negative && !positive:
		return -1
	default:
		return 0
	}
}

// Sample is called once per tick by the loop goroutine
func (k *heldKeys) Sample() core.InputSample {
	k.mu.Lock()
	defer k.mu.Unlock()

	now := k.now()
	jump := k.held(ctlJump, now)
	in := core.InputSample{
		Throttle:    axis(k.held(ctlForward, now), k.held(ctlReverse, now)),
		Yaw:         axis(k.held(ctlRight, now), k.held(ctlLeft, now)),
		JumpHeld:    jump,
		JumpPressed: jump && !k.jumpWasHeld,
	}
	k.jumpWasHeld = jump
	return in
}
