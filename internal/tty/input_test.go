package tty

import (
	"testing"
	"time"

	"raycaster/internal/scene"

	"github.com/gdamore/tcell/v2"
)

func TestKeyHold(t *testing.T) {
	start := time.Unix(1000, 0)
	k := NewKeyHold(150 * time.Millisecond)

	if k.State(start).Any() {
		t.Fatalf("nothing should be held before any press")
	}

	k.Press(controlForward, start)
	k.Press(controlTurnLeft, start.Add(100*time.Millisecond))

	tests := []struct {
		name  string
		after time.Duration
		want  scene.InputState
	}{
		{"right after", 10 * time.Millisecond, scene.InputState{Forward: true}},
		{"both held", 120 * time.Millisecond, scene.InputState{Forward: true, TurnLeft: true}},
		{"forward expired", 150 * time.Millisecond, scene.InputState{TurnLeft: true}},
		{"all expired", 300 * time.Millisecond, scene.InputState{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := k.State(start.Add(tt.after)); got != tt.want {
				t.Errorf("State = %+v, want %+v", got, tt.want)
			}
		})
	}

	k.Press(controlBackward, start)
	k.Release()
	if k.State(start).Any() {
		t.Errorf("Release should drop held controls")
	}
}

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		name    string
		ev      *tcell.EventKey
		control control
		action  action
		ok      bool
	}{
		{"up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), controlForward, actionNone, true},
		{"w", tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), controlForward, actionNone, true},
		{"down", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), controlBackward, actionNone, true},
		{"S", tcell.NewEventKey(tcell.KeyRune, 'S', tcell.ModNone), controlBackward, actionNone, true},
		{"left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), controlTurnLeft, actionNone, true},
		{"a", tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), controlTurnLeft, actionNone, true},
		{"right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), controlTurnRight, actionNone, true},
		{"d", tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone), controlTurnRight, actionNone, true},
		{"tab", tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), 0, actionToggleMinimap, true},
		{"m", tcell.NewEventKey(tcell.KeyRune, 'm', tcell.ModNone), 0, actionToggleMinimap, true},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), 0, actionQuit, true},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), 0, actionQuit, true},
		{"unbound", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), 0, actionNone, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, a, ok := translateKey(tt.ev)
			if ok != tt.ok || a != tt.action || (ok && a == actionNone && c != tt.control) {
				t.Errorf("translateKey = (%v, %v, %v), want (%v, %v, %v)", c, a, ok, tt.control, tt.action, tt.ok)
			}
		})
	}
}
