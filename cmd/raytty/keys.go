package main

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"raycaster/world"
)

// Terminals report key presses and auto-repeat but no releases, so each
// press holds its action for a short time and repeats extend the hold.
const keyHold = 180 * time.Millisecond

type action int

const (
	actionNone action = iota
	actionLeft
	actionRight
	actionForward
	actionBack
	actionFocalDown
	actionFocalUp
	actionWidthDown
	actionWidthUp
	actionReset
	actionMinimap
	actionQuit
)

// actionFor maps a key event to an action.
func actionFor(ev *tcell.EventKey) action {
	return keyAction(ev.Key(), ev.Rune())
}

func keyAction(key tcell.Key, r rune) action {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return actionQuit
	case tcell.KeyLeft:
		return actionLeft
	case tcell.KeyRight:
		return actionRight
	case tcell.KeyUp:
		return actionForward
	case tcell.KeyDown:
		return actionBack
	case tcell.KeyRune:
	default:
		return actionNone
	}
	switch r {
	case 'a', 'A':
		return actionLeft
	case 'd', 'D':
		return actionRight
	case 'w', 'W':
		return actionForward
	case 's', 'S':
		return actionBack
	case '-':
		return actionFocalDown
	case '=', '+':
		return actionFocalUp
	case '[':
		return actionWidthDown
	case ']':
		return actionWidthUp
	case 'r', 'R':
		return actionReset
	case 'm', 'M':
		return actionMinimap
	case 'q', 'Q':
		return actionQuit
	}
	return actionNone
}

// heldKeys remembers when each movement action was last pressed.
type heldKeys struct {
	pressed map[action]time.Time
}

func newHeldKeys() *heldKeys {
	return &heldKeys{pressed: make(map[action]time.Time)}
}

func (h *heldKeys) press(a action, now time.Time) {
	h.pressed[a] = now
}

func (h *heldKeys) held(a action, now time.Time) bool {
	t, ok := h.pressed[a]
	return ok && now.Sub(t) < keyHold
}

// input returns the movement input for the actions still held at now.
func (h *heldKeys) input(now time.Time) world.Input {
	return world.KeyInput(
		h.held(actionLeft, now),
		h.held(actionRight, now),
		h.held(actionForward, now),
		h.held(actionBack, now),
	)
}
