package world

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"raycaster/assets"
)

func TestMapLoader_StartMarkerAndComments(t *testing.T) {
	mapDir := t.TempDir()
	mapPath := filepath.Join(mapDir, "test.map")
	content := "# a comment\n\naaaa\na+.a\n\naaaa\n"
	if err := os.WriteFile(mapPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write map: %v", err)
	}

	mapData, err := LoadMap(mapPath)
	if err != nil {
		t.Fatalf("load map: %v", err)
	}

	if mapData.Grid.Width() != 4 || mapData.Grid.Height() != 3 {
		t.Fatalf("expected 4x3 grid, got %dx%d", mapData.Grid.Width(), mapData.Grid.Height())
	}
	if !mapData.HasStart || mapData.StartX != 1 || mapData.StartY != 1 {
		t.Fatalf("expected start at (1,1), got (%d,%d) has=%v", mapData.StartX, mapData.StartY, mapData.HasStart)
	}
	tag, err := mapData.Grid.Tag(1, 1)
	if err != nil {
		t.Fatalf("tag: %v", err)
	}
	if tag != TagEmpty {
		t.Errorf("start tile should be stored as empty, got %q", tag)
	}
}

func TestMapLoader_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		content string
		wantErr string
	}{
		{"empty", "# only comments\n\n", "no valid map data"},
		{"ragged", "aaa\naa\n", "line 2 has inconsistent width"},
		{"two starts", "a+a\na+a\n", "more than one start marker"},
		{"two starts one line", "++a\n", "more than one start marker"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseMap(strings.NewReader(tc.content))
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("expected error containing %q, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestMapLoader_MissingFile(t *testing.T) {
	if _, err := LoadMap(filepath.Join(t.TempDir(), "missing.map")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestMapLoader_DefaultLevel(t *testing.T) {
	mapData, err := ParseMap(strings.NewReader(assets.DefaultMap))
	if err != nil {
		t.Fatalf("parse default map: %v", err)
	}
	if mapData.Grid.Width() != 16 || mapData.Grid.Height() != 11 {
		t.Fatalf("expected 16x11, got %dx%d", mapData.Grid.Width(), mapData.Grid.Height())
	}
	if mapData.HasStart {
		t.Errorf("default level places the viewpoint from config, not a marker")
	}
	for x, want := range "adc............a" {
		if tag, _ := mapData.Grid.Tag(x, 4); tag != Tag(want) {
			t.Errorf("row 4 column %d = %q, want %q", x, tag, want)
		}
	}
}
