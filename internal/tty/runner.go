package tty

import (
	"context"
	"fmt"
	"math"
	"time"

	"raycaster/internal/bootstrap"
	"raycaster/internal/config"
	"raycaster/internal/logger"
	"raycaster/internal/mathutil"
	"raycaster/internal/render"
	"raycaster/internal/scene"
	"raycaster/internal/sound"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
)

// Runner drives a scene on a terminal screen
type Runner struct {
	screen  tcell.Screen
	scene   *scene.Scene
	cfg     *config.Config
	surface *Surface
	keys    *KeyHold
	sounds  *sound.SoundManager
	log     *logrus.Entry

	wasBumped bool
	width     int
	height    int
}

// NewRunner prepares a runner for an initialised screen. The sound
// manager may be nil.
func NewRunner(screen tcell.Screen, rt *bootstrap.Runtime, sounds *sound.SoundManager) *Runner {
	r := &Runner{
		screen:  screen,
		scene:   rt.Scene,
		cfg:     rt.Config,
		surface: NewSurface(screen, rt.Textures),
		keys:    NewKeyHold(time.Duration(rt.Config.Terminal.KeyHoldMS) * time.Millisecond),
		sounds:  sounds,
		log:     logger.For("tty"),
	}
	r.resize()
	return r
}

// scaleSettings adapts window-sized settings to a pixel surface of height
// h: the projection constant and minimap cells shrink with the surface so
// the view keeps the proportions it has at the configured screen height.
func scaleSettings(s *scene.Settings, cfg *config.Config, h int) {
	ratio := float64(h) / float64(cfg.Display.ScreenHeight)
	s.Render.ProjectionConstant = cfg.Graphics.ProjectionConstant * ratio
	s.Render.ColumnWidth = cfg.Terminal.ColumnWidth
	s.MinimapCellSize = mathutil.IntMax(1, int(math.Round(float64(cfg.Minimap.CellSize)*ratio)))
}

func (r *Runner) resize() {
	r.width, r.height = r.surface.Resize()
	scaleSettings(&r.scene.Settings, r.cfg, r.height)
	r.log.WithFields(logrus.Fields{
		"width":  r.width,
		"height": r.height,
		"k":      r.scene.Settings.Render.ProjectionConstant,
	}).Debug("terminal resized")
}

// HandleEvent applies one terminal event and reports whether to quit
func (r *Runner) HandleEvent(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		c, act, ok := translateKey(ev)
		if !ok {
			return false
		}
		switch act {
		case actionQuit:
			return true
		case actionToggleMinimap:
			r.scene.ToggleMinimap()
		default:
			r.keys.Press(c, now)
		}
	case *tcell.EventResize:
		r.screen.Sync()
		r.resize()
	case *tcell.EventFocus:
		if !ev.Focused {
			r.keys.Release()
		}
	}
	return false
}

// Tick advances the scene by dt seconds and draws a frame
func (r *Runner) Tick(dt float64, now time.Time) error {
	result, err := r.scene.Step(dt, r.keys.State(now))
	if err != nil {
		return fmt.Errorf("step: %w", err)
	}

	bumped := result.Bumped()
	if bumped && !r.wasBumped && r.sounds != nil {
		r.sounds.PlayBump()
	}
	r.wasBumped = bumped

	if m := r.scene.Monitor; m != nil {
		defer m.StartFrame().End()
	}
	frame := r.scene.BuildFrame(r.width, r.height)
	render.Submit(r.surface, frame.Commands)
	return nil
}

// Run draws frames at the configured rate until the user quits, ctx is
// cancelled or a step fails
func (r *Runner) Run(ctx context.Context) error {
	frameRate := r.cfg.Terminal.FrameRate
	ticker := time.NewTicker(time.Second / time.Duration(frameRate))
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	defer close(quit)
	go r.screen.ChannelEvents(events, quit)

	r.log.WithField("frame_rate", frameRate).Info("terminal view started")

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if ev == nil {
				return nil
			}
			if r.HandleEvent(ev, time.Now()) {
				return nil
			}
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			if err := r.Tick(dt, now); err != nil {
				return err
			}
		}
	}
}
