// Command termview renders the scene in a terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"raycaster/internal/bootstrap"
	"raycaster/internal/sound"
	"raycaster/internal/tty"

	"github.com/gdamore/tcell/v2"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "termview: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "config.yaml", "configuration file; the built-in defaults are used when it does not exist")
	mapPath := flag.String("map", "", "level file, overrides world.map_file")
	logPath := flag.String("log", "", "write logs to this file instead of discarding them")
	flag.Parse()

	var logOutput io.Writer = io.Discard
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		logOutput = f
	}

	rt, err := bootstrap.Load(bootstrap.Options{
		ConfigPath: *configPath,
		MapPath:    *mapPath,
		LogOutput:  logOutput,
	})
	if err != nil {
		return err
	}
	defer rt.Close()

	var sounds *sound.SoundManager
	if rt.Config.Audio.BumpSound {
		sounds = sound.NewSoundManager(rt.Config.Audio.Volume)
		if err := sounds.Initialize(); err != nil {
			sounds = nil
		} else {
			defer sounds.Cleanup()
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialise screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return tty.NewRunner(screen, rt, sounds).Run(ctx)
}
