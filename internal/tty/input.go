package tty

import (
	"time"

	"raycaster/internal/scene"

	"github.com/gdamore/tcell/v2"
)

// control is a held movement control
type control int

const (
	controlForward control = iota
	controlBackward
	controlTurnLeft
	controlTurnRight
	controlCount
)

// action is a one-shot command
type action int

const (
	actionNone action = iota
	actionQuit
	actionToggleMinimap
)

// KeyHold turns key press events into held controls. Terminals report no
// key releases, so a control stays held until hold has passed since its
// last press or auto-repeat event.
type KeyHold struct {
	hold    time.Duration
	pressed [controlCount]time.Time
}

// NewKeyHold creates a tracker that keeps controls held for hold
func NewKeyHold(hold time.Duration) *KeyHold {
	return &KeyHold{hold: hold}
}

// Press marks a control as held at now
func (k *KeyHold) Press(c control, now time.Time) {
	k.pressed[c] = now
}

// Release forgets every held control
func (k *KeyHold) Release() {
	k.pressed = [controlCount]time.Time{}
}

func (k *KeyHold) held(c control, now time.Time) bool {
	at := k.pressed[c]
	return !at.IsZero() && now.Sub(at) < k.hold
}

// State samples the held controls at now
func (k *KeyHold) State(now time.Time) scene.InputState {
	return scene.InputState{
		Forward:   k.held(controlForward, now),
		Backward:  k.held(controlBackward, now),
		TurnLeft:  k.held(controlTurnLeft, now),
		TurnRight: k.held(controlTurnRight, now),
	}
}

// translateKey maps a key event to a control or an action
func translateKey(ev *tcell.EventKey) (control, action, bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return 0, actionQuit, true
	case tcell.KeyTab:
		return 0, actionToggleMinimap, true
	case tcell.KeyUp:
		return controlForward, actionNone, true
	case tcell.KeyDown:
		return controlBackward, actionNone, true
	case tcell.KeyLeft:
		return controlTurnLeft, actionNone, true
	case tcell.KeyRight:
		return controlTurnRight, actionNone, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return controlForward, actionNone, true
		case 's', 'S':
			return controlBackward, actionNone, true
		case 'a', 'A':
			return controlTurnLeft, actionNone, true
		case 'd', 'D':
			return controlTurnRight, actionNone, true
		case 'm', 'M':
			return 0, actionToggleMinimap, true
		case 'q', 'Q':
			return 0, actionQuit, true
		}
	}
	return 0, actionNone, false
}
