// Package bootstrap loads everything both front ends need before the first
// frame: configuration, logging, the level, textures and worker threads.
package bootstrap

import (
	"fmt"
	"io"
	"os"
	"strings"

	"raycaster/assets"
	"raycaster/internal/config"
	"raycaster/internal/graphics"
	"raycaster/internal/logger"
	"raycaster/internal/scene"
	"raycaster/internal/threading"
	"raycaster/internal/world"

	"github.com/sirupsen/logrus"
)

// Options select the files to start from
type Options struct {
	ConfigPath string    // Missing file falls back to the embedded config
	MapPath    string    // Overrides world.map_file when set
	LogOutput  io.Writer // Overrides stdout for logs when set
}

// Runtime is a loaded, ready to render scene
type Runtime struct {
	Config            *config.Config
	Scene             *scene.Scene
	Textures          *graphics.TextureManager
	Threading         *threading.ThreadingComponents
	UsedDefaultConfig bool
}

// Load builds the runtime. Errors name the file that caused them.
func Load(opts Options) (*Runtime, error) {
	cfg, usedDefault, err := config.LoadOrDefault(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	logger.Init(cfg.Logging.Level, cfg.Logging.Format)
	if opts.LogOutput != nil {
		logger.SetOutput(opts.LogOutput)
	}
	log := logger.For("bootstrap")
	if usedDefault {
		log.WithField("path", opts.ConfigPath).Info("config file not found, using built-in defaults")
	}

	mapData, source, err := LoadMap(cfg, opts.MapPath)
	if err != nil {
		return nil, err
	}

	sc, err := scene.New(cfg, mapData)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}

	textures := graphics.NewTextureManager(os.DirFS(cfg.Textures.Directory), cfg.Graphics.TextureSize)
	names := append(sc.Materials.Textures(), graphics.PlaceholderName)
	for _, sprite := range sc.Sprites {
		names = append(names, sprite.Texture)
	}
	fromFiles := textures.Preload(names)

	tc := threading.NewThreadingComponents(cfg)
	sc.Settings.Render.Pool = tc.WorkerPool
	sc.Monitor = tc.PerformanceMonitor

	log.WithFields(logrus.Fields{
		"map":             source,
		"textures":        len(textures.Names()),
		"texture_files":   fromFiles,
		"parallel":        tc.WorkerPool != nil,
		"texture_dir":     cfg.Textures.Directory,
		"projection_k":    cfg.Graphics.ProjectionConstant,
		"column_width_px": cfg.Graphics.ColumnWidth,
	}).Info("runtime loaded")

	return &Runtime{
		Config:            cfg,
		Scene:             sc,
		Textures:          textures,
		Threading:         tc,
		UsedDefaultConfig: usedDefault,
	}, nil
}

// LoadMap picks the level: the override path, then world.map_file, then the
// embedded default. It also returns a name for the source used.
func LoadMap(cfg *config.Config, override string) (*world.MapData, string, error) {
	path := override
	if path == "" {
		path = cfg.World.MapFile
	}
	if path == "" {
		data, err := world.ParseMap(strings.NewReader(assets.DefaultMap))
		if err != nil {
			return nil, "", fmt.Errorf("embedded map: %w", err)
		}
		return data, "embedded", nil
	}

	data, err := world.LoadMap(path)
	if err != nil {
		return nil, "", err
	}
	return data, path, nil
}

// Close stops background workers
func (r *Runtime) Close() {
	r.Threading.Shutdown()
}
