package main

import (
	"errors"
	"flag"
	"fmt"
	"runtime"

	"github.com/hajimehoshi/ebiten/v2"

	"raycaster/logging"
	"raycaster/profiling"
	"raycaster/settings"
)

func main() {
	flag.Parse()
	runtime.GOMAXPROCS(runtime.NumCPU())

	if err := run(); err != nil {
		logging.Fatal("raycaster", "err", err)
	}
}

// run returns instead of exiting so the deferred cleanups always run.
func run() error {
	cfg, err := settings.Load(*configFlag)
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}
	level := cfg.Log.Level
	if *logLevelFlag != "" {
		level = *logLevelFlag
	}
	if err := logging.SetLevel(level); err != nil {
		return fmt.Errorf("configuring logger: %w", err)
	}

	profilePath := *cpuProfileFlag
	if *recordDefaultPGO && profilePath == "" {
		profilePath = defaultPGOPath
	}
	return profiling.Run(profilePath, func() error {
		return play(cfg)
	})
}

func play(cfg settings.Config) error {
	g, err := newGame(cfg)
	if err != nil {
		return fmt.Errorf("creating world: %w", err)
	}
	defer g.Close()

	if *recordDefaultPGO {
		g.enableAutoWalk(pgoRecordDuration)
		g.quitAfterAutoWalk = true
	}

	if *watchConfigFlag && *configFlag != "" {
		watcher, err := settings.Watch(*configFlag, g.setViewParams)
		if err != nil {
			logging.Warn("settings live reload disabled", "err", err)
		} else {
			defer watcher.Close()
		}
	}

	ebiten.SetTPS(defaultTPS)
	ebiten.SetWindowSize(g.Layout(0, 0))
	ebiten.SetWindowTitle("Raycaster")
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("game loop: %w", err)
	}
	return nil
}
