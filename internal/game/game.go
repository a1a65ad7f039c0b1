// Package game runs the scene in an ebiten window.
package game

import (
	"fmt"

	"raycaster/internal/bootstrap"
	"raycaster/internal/game/keytracker"
	"raycaster/internal/logger"
	"raycaster/internal/scene"
	"raycaster/internal/sound"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
)

const lowFPSThreshold = 30.0

// Game implements ebiten.Game over a loaded runtime
type Game struct {
	rt      *bootstrap.Runtime
	scene   *scene.Scene
	surface *Surface
	sounds  *sound.SoundManager
	keys    *keytracker.Set
	log     *logrus.Entry

	hud       hudFader
	wasBumped bool
	lastFrame scene.Frame
	lowFPS    bool
}

// NewGame creates the ebiten driver. Audio failure is logged and the game
// continues silently.
func NewGame(rt *bootstrap.Runtime) *Game {
	g := &Game{
		rt:      rt,
		scene:   rt.Scene,
		surface: NewSurface(rt.Textures),
		keys:    keytracker.NewSet(),
		log:     logger.For("game"),
	}

	if rt.Config.Audio.BumpSound {
		g.sounds = sound.NewSoundManager(rt.Config.Audio.Volume)
		if err := g.sounds.Initialize(); err != nil {
			g.log.WithError(err).Warn("audio unavailable, bump sound disabled")
			g.sounds = nil
		}
	}

	return g
}

// Update advances the viewpoint by one tick of held input
func (g *Game) Update() error {
	if ebiten.IsKeyPressed(quitKey) {
		return ebiten.Termination
	}
	if g.keys.JustPressed(minimapKey) {
		g.scene.ToggleMinimap()
	}
	if g.keys.JustPressed(hudKey) {
		g.hud.Toggle()
	}

	dt := 1.0 / float64(ebiten.TPS())
	g.hud.Update(float32(dt))
	result, err := g.scene.Step(dt, inputFromKeys(ebiten.IsKeyPressed))
	if err != nil {
		return fmt.Errorf("step: %w", err)
	}

	bumped := result.Bumped()
	if bumped && !g.wasBumped && g.sounds != nil {
		g.sounds.PlayBump()
	}
	g.wasBumped = bumped

	g.checkFrameRate()
	return nil
}

// checkFrameRate logs once each time the frame rate drops below the threshold
func (g *Game) checkFrameRate() {
	alerts := g.scene.Monitor.CheckPerformanceAlerts(lowFPSThreshold)
	low := len(alerts) > 0
	if low && !g.lowFPS {
		g.log.WithFields(logrus.Fields{
			"fps":       alerts[0].Value,
			"threshold": alerts[0].Threshold,
			"columns":   len(g.lastFrame.Projection.Columns),
		}).Warn(alerts[0].Message)
	}
	g.lowFPS = low
}

// Draw builds the frame for the current screen size and executes it
func (g *Game) Draw(screen *ebiten.Image) {
	timer := g.scene.Monitor.StartFrame()
	defer timer.End()

	bounds := screen.Bounds()
	g.lastFrame = g.scene.BuildFrame(bounds.Dx(), bounds.Dy())

	g.surface.Begin(screen)
	for _, cmd := range g.lastFrame.Commands {
		g.surface.Draw(cmd)
	}
	g.surface.Present()

	if alpha := g.hud.Alpha(); alpha > 0 {
		drawHUD(screen, hudLines(hudStats{
			FPS:       ebiten.ActualFPS(),
			TPS:       ebiten.ActualTPS(),
			Viewpoint: g.scene.Viewpoint,
			Frame:     g.lastFrame,
			Metrics:   g.rt.Threading.GetPerformanceMetrics(),
			Parallel:  g.scene.Settings.Render.Pool != nil,
		}), alpha)
	}
}

// Layout follows the window so the column count tracks resizes
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// Close releases audio
func (g *Game) Close() {
	if g.sounds != nil {
		g.sounds.Cleanup()
	}
}
