package scene

import (
	"testing"

	"raycaster/internal/render"
	"raycaster/internal/threading/monitoring"
)

// phase orders the kinds of command a frame emits
func phase(t *testing.T, cmd render.DrawCommand) int {
	t.Helper()
	switch c := cmd.(type) {
	case render.Clear:
		return 0
	case render.GradientRect:
		return 1
	case render.TexturedRect:
		if c.Tint == render.White {
			return 4 // sprite
		}
		return 2 // wall
	case render.FillRect:
		return 3
	case render.StrokeRect, render.Line:
		return 5
	}
	t.Fatalf("unexpected command %T", cmd)
	return -1
}

func TestBuildFrameOrder(t *testing.T) {
	s := defaultScene(t)
	s.Monitor = monitoring.NewPerformanceMonitor()

	frame := s.BuildFrame(1200, 800)

	counts := make(map[int]int)
	last := 0
	for i, cmd := range frame.Commands {
		p := phase(t, cmd)
		if p < last {
			t.Fatalf("command %d (%T) out of order", i, cmd)
		}
		last = p
		counts[p]++
	}

	if counts[0] != 1 || counts[1] != 1 {
		t.Errorf("expected one clear and one floor, got %v", counts)
	}
	if counts[2] != 400 {
		t.Errorf("expected 400 wall slices, got %d", counts[2])
	}
	if counts[3] != 16*11 {
		t.Errorf("expected a minimap cell per tile, got %d", counts[3])
	}
	if counts[5] != 2 {
		t.Errorf("expected marker outline and line, got %d", counts[5])
	}
	if counts[4] != frame.VisibleSprites() {
		t.Errorf("sprite commands %d do not match visible sprites %d", counts[4], frame.VisibleSprites())
	}

	floor := frame.Commands[1].(render.GradientRect)
	if floor.Dst != (render.Rect{X: 0, Y: 400, W: 1200, H: 400}) {
		t.Errorf("floor should cover the lower half, got %+v", floor.Dst)
	}
	if floor.Top != s.Settings.FloorFar || floor.Bottom != s.Settings.FloorNear {
		t.Errorf("floor gradient should darken towards the horizon")
	}
	if len(frame.Depth()) != 400 {
		t.Errorf("depth buffer has %d entries, want 400", len(frame.Depth()))
	}
	if s.Monitor.GetCurrentMetrics().Columns != 400 {
		t.Errorf("monitor should see 400 columns")
	}
}

func TestBuildFrameWithoutMinimap(t *testing.T) {
	s := defaultScene(t)
	s.ToggleMinimap()

	frame := s.BuildFrame(640, 481)

	for _, cmd := range frame.Commands {
		switch cmd.(type) {
		case render.FillRect, render.StrokeRect, render.Line:
			t.Fatalf("minimap disabled but got %T", cmd)
		}
	}
	floor := frame.Commands[1].(render.GradientRect)
	if floor.Dst.Y != 240 || floor.Dst.H != 241 {
		t.Errorf("floor should fill the rows below the horizon, got %+v", floor.Dst)
	}
	if frame.Options.Columns() != 213 || len(frame.Depth()) != 213 {
		t.Errorf("expected 213 columns, got %d", len(frame.Depth()))
	}
}

func TestBuildFrameSpritesSeeWalls(t *testing.T) {
	s := defaultScene(t)
	// Face the cat at (8.5, 6.5) from (8.5, 4.5); nothing stands between
	s.Viewpoint = render.Viewpoint{X: 8.5, Y: 4.5, Angle: 1.5707963267948966}

	frame := s.BuildFrame(1200, 800)

	cat := frame.Sprites[3]
	if !cat.Visible {
		t.Fatalf("cat should be visible: %+v", cat)
	}
	if cat.Dst != cat.Naive {
		t.Errorf("nothing occludes the cat, got %+v from %+v", cat.Dst, cat.Naive)
	}
}
