package tty

import (
	"context"
	"io"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"raycaster/internal/bootstrap"
	"raycaster/internal/config"
	"raycaster/internal/scene"

	"github.com/gdamore/tcell/v2"
)

const testConfig = `display:
  screen_width: 40
  screen_height: 20
graphics:
  parallel_columns: false
minimap:
  enabled: true
  cell_size: 2
world:
  sprites: []
terminal:
  column_width: 1
  frame_rate: 30
  key_hold_ms: 150
`

const testMap = `aaaaa
a.+.a
a...a
aaaaa
`

func newRunner(t *testing.T) (*Runner, tcell.SimulationScreen) {
	t.Helper()
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	mapPath := filepath.Join(dir, "room.map")
	if err := os.WriteFile(configPath, []byte(testConfig), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(mapPath, []byte(testMap), 0o644); err != nil {
		t.Fatal(err)
	}

	rt, err := bootstrap.Load(bootstrap.Options{ConfigPath: configPath, MapPath: mapPath, LogOutput: io.Discard})
	if err != nil {
		t.Fatalf("bootstrap.Load: %v", err)
	}
	t.Cleanup(rt.Close)

	screen := newScreen(t, 20, 10)
	return NewRunner(screen, rt, nil), screen
}

func TestScaleSettings(t *testing.T) {
	cfg := config.Default()
	cfg.Display.ScreenHeight = 800
	cfg.Graphics.ProjectionConstant = 500
	cfg.Minimap.CellSize = 10
	cfg.Terminal.ColumnWidth = 2

	tests := []struct {
		height int
		k      float64
		cell   int
	}{
		{800, 500, 10},
		{80, 50, 1},
		{40, 25, 1},
		{160, 100, 2},
	}
	for _, tt := range tests {
		var s scene.Settings
		scaleSettings(&s, cfg, tt.height)
		if math.Abs(s.Render.ProjectionConstant-tt.k) > 1e-9 {
			t.Errorf("height %d: K = %v, want %v", tt.height, s.Render.ProjectionConstant, tt.k)
		}
		if s.MinimapCellSize != tt.cell {
			t.Errorf("height %d: cell = %d, want %d", tt.height, s.MinimapCellSize, tt.cell)
		}
		if s.Render.ColumnWidth != 2 {
			t.Errorf("height %d: column width = %d, want 2", tt.height, s.Render.ColumnWidth)
		}
	}
}

func TestRunnerMovesWhileKeyIsHeld(t *testing.T) {
	r, _ := newRunner(t)
	now := time.Unix(1000, 0)

	if r.HandleEvent(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), now) {
		t.Fatalf("up arrow should not quit")
	}
	if err := r.Tick(0.05, now); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	// Facing -x at 4 units per second
	if math.Abs(r.scene.Viewpoint.X-2.3) > 1e-9 {
		t.Errorf("x = %v, want 2.3", r.scene.Viewpoint.X)
	}

	if err := r.Tick(0.05, now.Add(time.Second)); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if math.Abs(r.scene.Viewpoint.X-2.3) > 1e-9 {
		t.Errorf("released key kept moving: x = %v", r.scene.Viewpoint.X)
	}
}

func TestRunnerDrawsMinimap(t *testing.T) {
	r, screen := newRunner(t)
	if err := r.Tick(0, time.Unix(1000, 0)); err != nil {
		t.Fatalf("Tick: %v", err)
	}

	wall := cellColor(r.scene.Materials.MinimapColor('a', r.scene.Settings.MinimapEmpty))
	fg, bg := cellColors(t, screen, 0, 0)
	if fg != wall || bg != wall {
		t.Errorf("top-left cell = %v/%v, want minimap wall %v", fg, bg, wall)
	}

	r.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'm', tcell.ModNone), time.Unix(1000, 0))
	if r.scene.Settings.MinimapEnabled {
		t.Fatalf("m should hide the minimap")
	}
	if err := r.Tick(0, time.Unix(1000, 0)); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if fg, _ := cellColors(t, screen, 0, 0); fg == wall {
		t.Errorf("minimap still drawn after toggling it off")
	}
}

func TestRunnerScalesToScreen(t *testing.T) {
	r, screen := newRunner(t)

	// 20 pixel rows against a 20 pixel configured height
	if r.scene.Settings.Render.ProjectionConstant != 500 {
		t.Errorf("K = %v, want 500", r.scene.Settings.Render.ProjectionConstant)
	}

	screen.SetSize(30, 5)
	r.HandleEvent(tcell.NewEventResize(30, 5), time.Now())
	if r.width != 30 || r.height != 10 {
		t.Errorf("size = %dx%d, want 30x10", r.width, r.height)
	}
	if r.scene.Settings.Render.ProjectionConstant != 250 {
		t.Errorf("K = %v, want 250", r.scene.Settings.Render.ProjectionConstant)
	}
}

func TestRunnerQuits(t *testing.T) {
	r, _ := newRunner(t)
	if !r.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), time.Now()) {
		t.Errorf("escape should quit")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := r.Run(ctx); err != nil {
		t.Errorf("Run with a cancelled context = %v", err)
	}
}
