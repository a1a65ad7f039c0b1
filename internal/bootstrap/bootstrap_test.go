package bootstrap

import (
	"io"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadWithDefaults(t *testing.T) {
	rt, err := Load(Options{
		ConfigPath: filepath.Join(t.TempDir(), "missing.yaml"),
		LogOutput:  io.Discard,
	})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	defer rt.Close()

	if !rt.UsedDefaultConfig {
		t.Errorf("expected the embedded config to be used")
	}
	if rt.Scene.Grid.Width() != 16 || rt.Scene.Grid.Height() != 11 {
		t.Errorf("expected the embedded 16x11 level")
	}
	if rt.Scene.Monitor == nil {
		t.Errorf("scene should report to the performance monitor")
	}
	for _, name := range []string{"terracotta", "leopard", "magic_ball", "cat"} {
		if rt.Textures.Source(name) == "" {
			t.Errorf("texture %q was not preloaded", name)
		}
	}
}

func TestLoadMapOverride(t *testing.T) {
	dir := t.TempDir()
	mapPath := writeFile(t, dir, "room.map", "aaaaa\na.+.a\naaaaa\n")
	configPath := writeFile(t, dir, "config.yaml", "graphics:\n  parallel_columns: false\nworld:\n  sprites: []\n")

	rt, err := Load(Options{ConfigPath: configPath, MapPath: mapPath, LogOutput: io.Discard})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	defer rt.Close()

	if rt.UsedDefaultConfig {
		t.Errorf("config file exists and should be used")
	}
	if rt.Scene.Viewpoint.X != 2.5 || rt.Scene.Viewpoint.Y != 1.5 {
		t.Errorf("expected start marker position, got (%v, %v)", rt.Scene.Viewpoint.X, rt.Scene.Viewpoint.Y)
	}
	if rt.Threading.WorkerPool != nil {
		t.Errorf("parallel_columns false should not start a pool")
	}
}

func TestLoadReportsBadMap(t *testing.T) {
	dir := t.TempDir()
	mapPath := writeFile(t, dir, "ragged.map", "aaaa\naa\n")

	if _, err := Load(Options{ConfigPath: filepath.Join(dir, "none.yaml"), MapPath: mapPath, LogOutput: io.Discard}); err == nil {
		t.Errorf("expected an error for a ragged map")
	}
	if _, err := Load(Options{ConfigPath: filepath.Join(dir, "none.yaml"), MapPath: filepath.Join(dir, "absent.map"), LogOutput: io.Discard}); err == nil {
		t.Errorf("expected an error for a missing map")
	}
}

func TestLoadReportsBadConfig(t *testing.T) {
	dir := t.TempDir()
	configPath := writeFile(t, dir, "config.yaml", "graphics:\n  column_width: 0\n")

	if _, err := Load(Options{ConfigPath: configPath, LogOutput: io.Discard}); err == nil {
		t.Errorf("expected a validation error")
	}
}
