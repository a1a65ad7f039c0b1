package render

import (
	"math"
	"testing"
)

func filledDepth(n int, v float64) []float64 {
	depth := make([]float64, n)
	for i := range depth {
		depth[i] = v
	}
	return depth
}

func TestProjectSpriteWithoutWallsIsUnclipped(t *testing.T) {
	opts := testOptions(1200, 800)
	depth := filledDepth(opts.Columns(), math.Inf(1))

	tests := []struct {
		name   string
		vp     Viewpoint
		sprite Sprite
	}{
		{"straight ahead", Viewpoint{X: 4, Y: 4, Angle: 0}, Sprite{X: 9, Y: 4}},
		{"off to the right", Viewpoint{X: 4, Y: 4, Angle: 0}, Sprite{X: 9, Y: 5.5}},
		{"turned viewpoint", Viewpoint{X: 2, Y: 3, Angle: 2.2}, Sprite{X: 0.5, Y: 6}},
		{"partly off screen", Viewpoint{X: 4, Y: 4, Angle: 0}, Sprite{X: 6, Y: 6.8}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sp := ProjectSprite(tt.sprite, tt.vp, depth, opts)
			if !sp.Visible {
				t.Fatalf("sprite should be visible: %+v", sp)
			}
			if sp.Dst != sp.Naive {
				t.Errorf("expected full naive span %+v, got %+v", sp.Naive, sp.Dst)
			}
			if sp.Dst.X < 0 || sp.Dst.Right() > float64(opts.Width)+epsilon {
				t.Errorf("span %+v leaves the screen", sp.Dst)
			}
		})
	}
}

func TestProjectSpriteBehindZeroDepthIsHidden(t *testing.T) {
	opts := testOptions(1200, 800)
	depth := filledDepth(opts.Columns(), 0)

	sp := ProjectSprite(Sprite{X: 9, Y: 4.3}, Viewpoint{X: 4, Y: 4}, depth, opts)
	if sp.Visible {
		t.Errorf("sprite behind walls at zero distance should clip to empty, got %+v", sp.Dst)
	}
	if sp.Naive.Empty() {
		t.Errorf("naive span should still be computed")
	}
}

func TestProjectSpriteCenteredOnForwardAxis(t *testing.T) {
	opts := testOptions(1200, 800)
	depth := filledDepth(opts.Columns(), math.Inf(1))
	vp := Viewpoint{X: 3.2, Y: 4.7, Angle: 0.3}

	for _, f := range []float64{0.5, 1, 2.5, 7, 40} {
		s := Sprite{X: vp.X + f*vp.GetForwardX(), Y: vp.Y + f*vp.GetForwardY()}
		sp := ProjectSprite(s, vp, depth, opts)
		if math.Abs(sp.CenterX-600) > 1e-6 {
			t.Errorf("f=%v: center x = %v, want 600", f, sp.CenterX)
		}
		if math.Abs(sp.Height-500/f) > 1e-6 {
			t.Errorf("f=%v: height = %v, want %v", f, sp.Height, 500/f)
		}
	}
}

func TestProjectSpriteBehindViewpoint(t *testing.T) {
	opts := testOptions(1200, 800)
	depth := filledDepth(opts.Columns(), math.Inf(1))
	vp := Viewpoint{X: 4, Y: 4, Angle: 0}

	for _, s := range []Sprite{{X: 2, Y: 4}, {X: 4, Y: 6}, {X: 4, Y: 4}} {
		if sp := ProjectSprite(s, vp, depth, opts); sp.Visible {
			t.Errorf("sprite at (%v, %v) should not be visible", s.X, s.Y)
		}
	}
}

func TestProjectSpritePartialOcclusion(t *testing.T) {
	opts := testOptions(1200, 800)
	columns := opts.Columns()
	depth := filledDepth(columns, math.Inf(1))
	for i := 0; i < columns/2; i++ {
		depth[i] = 1
	}

	// Depth 5 gives a 100 px sprite spanning 550..650
	sp := ProjectSprite(Sprite{X: 9, Y: 4, Texture: "cat"}, Viewpoint{X: 4, Y: 4}, depth, opts)
	if !sp.Visible {
		t.Fatalf("right half should stay visible")
	}

	want := Rect{X: 600, Y: 350, W: 50, H: 100}
	if math.Abs(sp.Dst.X-want.X) > epsilon || math.Abs(sp.Dst.W-want.W) > epsilon ||
		math.Abs(sp.Dst.Y-want.Y) > epsilon || math.Abs(sp.Dst.H-want.H) > epsilon {
		t.Errorf("dst = %+v, want %+v", sp.Dst, want)
	}
	if math.Abs(sp.Src.X-64) > epsilon || math.Abs(sp.Src.W-64) > epsilon || sp.Src.H != 128 {
		t.Errorf("src = %+v, want right half of the texture", sp.Src)
	}

	// Walls further than the sprite do not hide it
	for i := range depth {
		depth[i] = 6
	}
	sp = ProjectSprite(Sprite{X: 9, Y: 4}, Viewpoint{X: 4, Y: 4}, depth, opts)
	if sp.Dst != sp.Naive {
		t.Errorf("walls behind the sprite should not clip it")
	}
}

func TestProjectSpriteForwardScale(t *testing.T) {
	opts := testOptions(1200, 800)
	opts.ForwardScale = math.Cos(math.Pi / 4)
	depth := filledDepth(opts.Columns(), math.Inf(1))

	sp := ProjectSprite(Sprite{X: 6, Y: 4}, Viewpoint{X: 4, Y: 4}, depth, opts)
	if math.Abs(sp.Depth-2/opts.ForwardScale) > epsilon {
		t.Errorf("depth = %v, want %v", sp.Depth, 2/opts.ForwardScale)
	}
}

func TestCompositeKeepsListOrder(t *testing.T) {
	opts := testOptions(1200, 800)
	depth := filledDepth(opts.Columns(), math.Inf(1))
	vp := Viewpoint{X: 4, Y: 4}

	sprites := []Sprite{
		{X: 6, Y: 4, Texture: "near"},
		{X: 2, Y: 4, Texture: "behind"},
		{X: 10, Y: 4, Texture: "far"},
	}
	projections := Composite(sprites, vp, depth, opts)
	if len(projections) != 3 {
		t.Fatalf("expected one projection per sprite, got %d", len(projections))
	}

	cmds := SpriteCommands(projections)
	if len(cmds) != 2 {
		t.Fatalf("expected 2 visible sprites, got %d", len(cmds))
	}
	if cmds[0].(TexturedRect).Texture != "near" || cmds[1].(TexturedRect).Texture != "far" {
		t.Errorf("sprites should be drawn in list order")
	}
	if cmds[0].(TexturedRect).Tint != White {
		t.Errorf("sprites should not be tinted")
	}
}
