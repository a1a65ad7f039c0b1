package scene

import (
	"fmt"
	"image/color"

	"raycaster/internal/collision"
	"raycaster/internal/config"
	"raycaster/internal/logger"
	"raycaster/internal/render"
	"raycaster/internal/threading/monitoring"
	"raycaster/internal/world"

	"github.com/sirupsen/logrus"
)

// Settings are the tunables the frame driver needs besides the render options
type Settings struct {
	MoveSpeed     float64 // grid units per second
	TurnSpeed     float64 // radians per second
	MaxFrameDelta float64 // seconds; longer frames are simulated as this long
	Radius        float64 // collision footprint of the viewpoint

	MinimapEnabled  bool
	MinimapCellSize int

	ClearColor   color.RGBA
	FloorNear    color.RGBA // Bottom edge of the screen
	FloorFar     color.RGBA // Horizon
	MarkerColor  color.RGBA
	MinimapEmpty color.RGBA

	// Render holds projection settings; Width and Height are set per frame
	Render render.Options
}

// SettingsFromConfig extracts scene settings from the configuration
func SettingsFromConfig(cfg *config.Config) Settings {
	return Settings{
		MoveSpeed:       cfg.GetMoveSpeed(),
		TurnSpeed:       cfg.GetRotSpeed(),
		MaxFrameDelta:   cfg.Movement.MaxFrameDelta,
		Radius:          cfg.Camera.Radius,
		MinimapEnabled:  cfg.Minimap.Enabled,
		MinimapCellSize: cfg.Minimap.CellSize,
		ClearColor:      config.RGB(cfg.Graphics.Colors.Clear),
		FloorNear:       config.RGB(cfg.Graphics.Colors.FloorNear),
		FloorFar:        config.RGB(cfg.Graphics.Colors.FloorFar),
		MarkerColor:     config.RGB(cfg.Graphics.Colors.Marker),
		MinimapEmpty:    config.RGB(cfg.Minimap.EmptyColor),
		Render:          render.OptionsFromConfig(cfg, cfg.Display.ScreenWidth, cfg.Display.ScreenHeight),
	}
}

// Scene is everything one frame is built from. The grid, materials and
// sprites are fixed for the run; only the viewpoint moves.
type Scene struct {
	Grid      *world.Grid
	Materials *world.MaterialTable
	Viewpoint render.Viewpoint
	Sprites   []render.Sprite
	Settings  Settings

	// Monitor receives stage timings when set
	Monitor *monitoring.PerformanceMonitor

	log *logrus.Entry
}

// New creates a scene from the configuration and a loaded map. A start
// marker in the map overrides the configured start position.
func New(cfg *config.Config, m *world.MapData) (*Scene, error) {
	materials, err := world.NewMaterialTable(cfg.World.Materials)
	if err != nil {
		return nil, fmt.Errorf("failed to build material table: %w", err)
	}

	vp := render.Viewpoint{
		X:     cfg.Camera.StartX,
		Y:     cfg.Camera.StartY,
		Angle: cfg.Camera.StartAngle,
	}
	if m.HasStart {
		vp.X = float64(m.StartX) + 0.5
		vp.Y = float64(m.StartY) + 0.5
	}

	sprites := make([]render.Sprite, 0, len(cfg.World.Sprites))
	for _, s := range cfg.World.Sprites {
		sprites = append(sprites, render.Sprite{X: s.X, Y: s.Y, Texture: s.Texture})
	}

	s := &Scene{
		Grid:      m.Grid,
		Materials: materials,
		Viewpoint: vp,
		Sprites:   sprites,
		Settings:  SettingsFromConfig(cfg),
		log:       logger.For("scene"),
	}

	blocked, err := collision.Blocked(s.Grid, vp.X, vp.Y, s.Settings.Radius)
	if err != nil {
		return nil, fmt.Errorf("start position: %w", err)
	}
	if blocked {
		s.log.WithFields(logrus.Fields{"x": vp.X, "y": vp.Y}).Warn("start position overlaps a wall")
	}

	for _, sprite := range sprites {
		if !s.Grid.InBounds(int(sprite.X), int(sprite.Y)) || sprite.X < 0 || sprite.Y < 0 {
			s.log.WithFields(logrus.Fields{"x": sprite.X, "y": sprite.Y, "texture": sprite.Texture}).Warn("sprite outside the grid")
		}
	}

	s.log.WithFields(logrus.Fields{
		"width":   s.Grid.Width(),
		"height":  s.Grid.Height(),
		"sprites": len(sprites),
	}).Info("scene ready")

	return s, nil
}

func (s *Scene) logger() *logrus.Entry {
	if s.log == nil {
		s.log = logger.For("scene")
	}
	return s.log
}

// ToggleMinimap switches the minimap on or off
func (s *Scene) ToggleMinimap() {
	s.Settings.MinimapEnabled = !s.Settings.MinimapEnabled
}
