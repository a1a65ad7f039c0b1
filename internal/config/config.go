package config

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"os"

	"raycaster/assets"

	"gopkg.in/yaml.v3"
)

// Config holds all renderer configuration values
type Config struct {
	Display  DisplayConfig  `yaml:"display"`
	Camera   CameraConfig   `yaml:"camera"`
	Movement MovementConfig `yaml:"movement"`
	Graphics GraphicsConfig `yaml:"graphics"`
	Minimap  MinimapConfig  `yaml:"minimap"`
	World    WorldConfig    `yaml:"world"`
	Textures TexturesConfig `yaml:"textures"`
	Logging  LoggingConfig  `yaml:"logging"`
	Audio    AudioConfig    `yaml:"audio"`
	Terminal TerminalConfig `yaml:"terminal"`
}

type DisplayConfig struct {
	ScreenWidth  int    `yaml:"screen_width"`
	ScreenHeight int    `yaml:"screen_height"`
	WindowTitle  string `yaml:"window_title"`
	Resizable    bool   `yaml:"resizable"`
	TPS          int    `yaml:"tps"`
}

type CameraConfig struct {
	FieldOfView  float64 `yaml:"field_of_view"` // radians
	ForwardScale float64 `yaml:"forward_scale"`
	StartX       float64 `yaml:"start_x"`
	StartY       float64 `yaml:"start_y"`
	StartAngle   float64 `yaml:"start_angle"`
	Radius       float64 `yaml:"radius"`
}

type MovementConfig struct {
	MoveSpeed     float64 `yaml:"move_speed"`     // grid units per second
	RotationSpeed float64 `yaml:"rotation_speed"` // radians per second
	MaxFrameDelta float64 `yaml:"max_frame_delta"`
}

type GraphicsConfig struct {
	ColumnWidth        int           `yaml:"column_width"`
	ProjectionConstant float64       `yaml:"projection_constant"`
	TextureSize        int           `yaml:"texture_size"`
	BackgroundDistance float64       `yaml:"background_distance"`
	ParallelColumns    bool          `yaml:"parallel_columns"`
	Workers            int           `yaml:"workers"`
	Shading            ShadingConfig `yaml:"shading"`
	Colors             ColorsConfig  `yaml:"colors"`
}

type ShadingConfig struct {
	BrightBase      float64 `yaml:"bright_base"`
	DimBase         float64 `yaml:"dim_base"`
	Floor           float64 `yaml:"floor"`
	FalloffDistance float64 `yaml:"falloff_distance"`
}

// RGB converts a configured [r, g, b] triple to an opaque colour
func RGB(c [3]int) color.RGBA {
	return color.RGBA{uint8(c[0]), uint8(c[1]), uint8(c[2]), 0xff}
}

type ColorsConfig struct {
	Clear     [3]int `yaml:"clear"`
	FloorNear [3]int `yaml:"floor_near"`
	FloorFar  [3]int `yaml:"floor_far"`
	Marker    [3]int `yaml:"marker"`
}

type MinimapConfig struct {
	Enabled    bool   `yaml:"enabled"`
	CellSize   int    `yaml:"cell_size"`
	EmptyColor [3]int `yaml:"empty_color"`
}

type WorldConfig struct {
	MapFile   string                  `yaml:"map_file"`
	Materials map[string]MaterialData `yaml:"materials"`
	Sprites   []SpriteData            `yaml:"sprites"`
}

// MaterialData describes one solid tile material
type MaterialData struct {
	Letter       string `yaml:"letter"`
	Texture      string `yaml:"texture"`
	MinimapColor [3]int `yaml:"minimap_color"`
}

type SpriteData struct {
	X       float64 `yaml:"x"`
	Y       float64 `yaml:"y"`
	Texture string  `yaml:"texture"`
}

type TexturesConfig struct {
	Directory string `yaml:"directory"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type AudioConfig struct {
	BumpSound bool    `yaml:"bump_sound"`
	Volume    float64 `yaml:"volume"` // beep volume exponent, 0 is unchanged
}

// TerminalConfig applies to cmd/termview only
type TerminalConfig struct {
	ColumnWidth int `yaml:"column_width"` // pixels per ray, one pixel is half a cell
	FrameRate   int `yaml:"frame_rate"`
	KeyHoldMS   int `yaml:"key_hold_ms"` // a key counts as held this long after its last event
}

// Default returns the configuration embedded in the binary.
func Default() *Config {
	cfg, err := Parse(assets.DefaultConfig)
	if err != nil {
		panic("embedded config is invalid: " + err.Error())
	}
	return cfg
}

// Parse decodes yaml data on top of the built-in fallbacks and validates it.
func Parse(data []byte) (*Config, error) {
	config := fallback()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// LoadConfig loads the configuration from a yaml file. A missing file is
// reported with an error wrapping os.ErrNotExist.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", filename, err)
	}

	config, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}

	return config, nil
}

// LoadOrDefault loads filename, falling back to the embedded configuration
// when the file does not exist. Any other error is returned.
func LoadOrDefault(filename string) (*Config, bool, error) {
	config, err := LoadConfig(filename)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), true, nil
	}
	return config, false, err
}

// fallback holds values used for keys the yaml file leaves out
func fallback() *Config {
	return &Config{
		Display: DisplayConfig{
			ScreenWidth:  1200,
			ScreenHeight: 800,
			WindowTitle:  "Raycaster",
			Resizable:    true,
			TPS:          60,
		},
		Camera: CameraConfig{
			FieldOfView:  math.Pi / 2,
			ForwardScale: 1,
			StartX:       4,
			StartY:       4,
			StartAngle:   math.Pi,
			Radius:       0.1,
		},
		Movement: MovementConfig{
			MoveSpeed:     4,
			RotationSpeed: 3,
			MaxFrameDelta: 0.1,
		},
		Graphics: GraphicsConfig{
			ColumnWidth:        3,
			ProjectionConstant: 500,
			TextureSize:        128,
			BackgroundDistance: 100,
			Shading: ShadingConfig{
				BrightBase:      255,
				DimBase:         200,
				Floor:           50,
				FalloffDistance: 10,
			},
			Colors: ColorsConfig{
				Clear:     [3]int{80, 80, 80},
				FloorNear: [3]int{0x58, 0x47, 0x34},
				FloorFar:  [3]int{0x31, 0x28, 0x1d},
				Marker:    [3]int{0x00, 0xff, 0xff},
			},
		},
		Minimap: MinimapConfig{
			Enabled:  true,
			CellSize: 10,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Audio: AudioConfig{
			Volume: -1,
		},
		Terminal: TerminalConfig{
			ColumnWidth: 1,
			FrameRate:   30,
			KeyHoldMS:   150,
		},
	}
}

// Validate rejects values the renderer cannot work with
func (c *Config) Validate() error {
	switch {
	case c.Display.ScreenWidth <= 0 || c.Display.ScreenHeight <= 0:
		return fmt.Errorf("display size must be positive, got %dx%d", c.Display.ScreenWidth, c.Display.ScreenHeight)
	case c.Graphics.ColumnWidth <= 0:
		return fmt.Errorf("graphics.column_width must be positive, got %d", c.Graphics.ColumnWidth)
	case c.Graphics.TextureSize <= 0:
		return fmt.Errorf("graphics.texture_size must be positive, got %d", c.Graphics.TextureSize)
	case c.Graphics.ProjectionConstant <= 0:
		return fmt.Errorf("graphics.projection_constant must be positive, got %v", c.Graphics.ProjectionConstant)
	case c.Graphics.BackgroundDistance <= 0:
		return fmt.Errorf("graphics.background_distance must be positive, got %v", c.Graphics.BackgroundDistance)
	case c.Graphics.Shading.FalloffDistance <= 0:
		return fmt.Errorf("graphics.shading.falloff_distance must be positive, got %v", c.Graphics.Shading.FalloffDistance)
	case c.Camera.FieldOfView <= 0 || c.Camera.FieldOfView >= math.Pi:
		return fmt.Errorf("camera.field_of_view must be in (0, pi), got %v", c.Camera.FieldOfView)
	case c.Camera.ForwardScale <= 0:
		return fmt.Errorf("camera.forward_scale must be positive, got %v", c.Camera.ForwardScale)
	case c.Camera.Radius < 0 || c.Camera.Radius >= 0.5:
		return fmt.Errorf("camera.radius must be in [0, 0.5), got %v", c.Camera.Radius)
	case c.Minimap.CellSize <= 0:
		return fmt.Errorf("minimap.cell_size must be positive, got %d", c.Minimap.CellSize)
	case c.Terminal.ColumnWidth <= 0 || c.Terminal.FrameRate <= 0:
		return fmt.Errorf("terminal.column_width and terminal.frame_rate must be positive")
	}
	for key, material := range c.World.Materials {
		if len(material.Letter) != 1 || material.Letter == "." || material.Letter == "+" {
			return fmt.Errorf("world.materials.%s: letter must be a single character other than '.' and '+', got %q", key, material.Letter)
		}
	}
	return nil
}

// Helper functions for easy access to commonly used values
func (c *Config) GetScreenWidth() int {
	return c.Display.ScreenWidth
}

func (c *Config) GetScreenHeight() int {
	return c.Display.ScreenHeight
}

func (c *Config) GetMoveSpeed() float64 {
	return c.Movement.MoveSpeed
}

func (c *Config) GetRotSpeed() float64 {
	return c.Movement.RotationSpeed
}

func (c *Config) GetCameraFOV() float64 {
	return c.Camera.FieldOfView
}
