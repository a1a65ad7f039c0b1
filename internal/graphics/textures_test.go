package graphics

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"

	"golang.org/x/image/bmp"
)

func solid(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func encodeBMP(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := bmp.Encode(&buf, img); err != nil {
		t.Fatalf("bmp.Encode: %v", err)
	}
	return buf.Bytes()
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	return buf.Bytes()
}

func TestTextureManagerSources(t *testing.T) {
	red := color.RGBA{0xff, 0, 0, 0xff}
	green := color.RGBA{0, 0xff, 0, 0xff}
	fsys := fstest.MapFS{
		"wall.bmp":   {Data: encodeBMP(t, solid(4, 4, red))},
		"floor.png":  {Data: encodePNG(t, solid(16, 16, green))},
		"cat.bmp":    {Data: encodeBMP(t, solid(8, 8, green))},
		"broken.bmp": {Data: []byte("not a bitmap")},
	}

	tests := []struct {
		name   string
		source string
		pixel  *color.RGBA
	}{
		{"wall", SourceFile, &red},
		{"floor", SourceFile, &green},
		{"cat", SourceFile, &green},
		{"terracotta", SourceProcedural, nil},
		{"magic_ball", SourceProcedural, nil},
		{"no_such_texture", SourcePlaceholder, nil},
		{"broken", SourcePlaceholder, nil},
		{PlaceholderName, SourcePlaceholder, nil},
	}

	tm := NewTextureManager(fsys, 8)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tex := tm.Get(tt.name)
			if tex.Bounds() != image.Rect(0, 0, 8, 8) {
				t.Fatalf("expected 8x8 texture, got %v", tex.Bounds())
			}
			if got := tm.Source(tt.name); got != tt.source {
				t.Errorf("source = %q, want %q", got, tt.source)
			}
			if tt.pixel != nil && tex.RGBAAt(3, 5) != *tt.pixel {
				t.Errorf("pixel = %v, want %v", tex.RGBAAt(3, 5), *tt.pixel)
			}
		})
	}
}

func TestTextureManagerCaches(t *testing.T) {
	tm := NewTextureManager(nil, 16)

	first := tm.Get("leopard")
	second := tm.Get("leopard")
	if first != second {
		t.Errorf("expected the cached texture to be returned")
	}

	if n := tm.Preload([]string{"leopard", "red_stone", "missing"}); n != 0 {
		t.Errorf("expected no textures from files, got %d", n)
	}
	names := tm.Names()
	if len(names) != 3 || names[0] != "leopard" || names[1] != "missing" || names[2] != "red_stone" {
		t.Errorf("unexpected names %v", names)
	}
}

func TestPlaceholderIsCheckered(t *testing.T) {
	tex := Placeholder(16)
	if tex.RGBAAt(0, 0) != (color.RGBA{0xff, 0, 0xff, 0xff}) {
		t.Errorf("top-left should be magenta, got %v", tex.RGBAAt(0, 0))
	}
	if tex.RGBAAt(2, 0) != (color.RGBA{0, 0, 0, 0xff}) {
		t.Errorf("second check should be black, got %v", tex.RGBAAt(2, 0))
	}
}

func TestGeneratorsAreDeterministic(t *testing.T) {
	for name, generate := range generators {
		t.Run(name, func(t *testing.T) {
			a, b := generate(32), generate(32)
			if a.Bounds() != image.Rect(0, 0, 32, 32) {
				t.Fatalf("unexpected bounds %v", a.Bounds())
			}
			if !bytes.Equal(a.Pix, b.Pix) {
				t.Errorf("two runs produced different pixels")
			}
		})
	}
}

func TestSpriteTexturesAreTransparentAtTheEdges(t *testing.T) {
	for _, tex := range []*image.RGBA{MagicBall(64), Cat(64)} {
		if tex.RGBAAt(0, 0).A != 0 {
			t.Errorf("corner should be transparent, got %v", tex.RGBAAt(0, 0))
		}
	}
	if MagicBall(64).RGBAAt(32, 44).A != 0xff {
		t.Errorf("orb centre should be opaque")
	}
}

func TestResampleKeepsSameSizeImages(t *testing.T) {
	src := solid(8, 8, color.RGBA{1, 2, 3, 0xff})
	src.SetRGBA(7, 7, color.RGBA{9, 9, 9, 0xff})

	out := Resample(src, 8)
	if !bytes.Equal(out.Pix, src.Pix) {
		t.Errorf("same size resample should copy pixels exactly")
	}
}
