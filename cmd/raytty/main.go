// Command raytty runs the raycaster inside a terminal, drawing two pixels per
// character cell.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"raycaster/logging"
	"raycaster/render"
	"raycaster/settings"
	"raycaster/world"
)

var (
	configFlag  = flag.String("config", "raycaster.yaml", "settings file (.yaml, .yml or .toml)")
	logFileFlag = flag.String("log-file", "", "write logs to this file; the terminal is owned by the view")
	fpsFlag     = flag.Int("fps", 30, "frames per second")
)

// minimapRows is the minimap height in terminal rows.
const minimapRows = 8

type app struct {
	screen  tcell.Screen
	world   *world.World
	params  render.Params
	keys    *heldKeys
	minimap bool

	topDown     render.TopDown
	perspective render.Perspective
}

func newApp(s tcell.Screen, cfg settings.Config) (*app, error) {
	w, err := cfg.World()
	if err != nil {
		return nil, err
	}
	a := &app{
		screen:  s,
		world:   w,
		params:  cfg.Params(),
		keys:    newHeldKeys(),
		minimap: true,
	}
	a.resize()
	return a, nil
}

// resize fits the perspective view to the terminal, leaving the last row
// for the status line.
func (a *app) resize() {
	cols, rows := a.screen.Size()
	a.perspective = render.Perspective{Width: max(cols, 1), Height: max(rows-1, 1) * 2}
	a.topDown = render.TopDown{Width: minimapRows * 2, Height: minimapRows * 2}
}

// handle applies one event and reports whether the app should keep running.
func (a *app) handle(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.apply(actionFor(ev), now)
	case *tcell.EventResize:
		a.resize()
		a.screen.Sync()
	}
	return true
}

// apply performs one action and reports whether the app should keep running.
func (a *app) apply(act action, now time.Time) bool {
	switch act {
	case actionQuit:
		return false
	case actionLeft, actionRight, actionForward, actionBack:
		a.keys.press(act, now)
	case actionFocalDown:
		a.params = a.params.Adjust(-render.ParamStep, 0)
	case actionFocalUp:
		a.params = a.params.Adjust(render.ParamStep, 0)
	case actionWidthDown:
		a.params = a.params.Adjust(0, -render.ParamStep)
	case actionWidthUp:
		a.params = a.params.Adjust(0, render.ParamStep)
	case actionReset:
		a.params = render.DefaultParams()
	case actionMinimap:
		a.minimap = !a.minimap
	}
	return true
}

func (a *app) step(dt float64, now time.Time) error {
	if err := a.world.Update(dt, a.keys.input(now)); err != nil {
		logging.Warn("update", "err", err)
	}

	frame, err := render.RenderFrame(context.Background(), a.world, a.params, a.topDown, a.perspective)
	if err != nil {
		return err
	}

	blit(a.screen, frame.Perspective, 0, 0)
	if a.minimap {
		blit(a.screen, frame.TopDown, 0, 0)
	}
	_, rows := a.screen.Size()
	status := fmt.Sprintf("focal length: %.2f  view width: %.2f  [arrows/wasd move, -/= focal, [/] width, r reset, m map, q quit]",
		a.params.FocalLength, a.params.ViewWidth)
	drawText(a.screen, 0, rows-1, status, tcell.StyleDefault)
	a.screen.Show()
	return nil
}

func (a *app) run(fps int) error {
	ticker := time.NewTicker(time.Second / time.Duration(max(fps, 1)))
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	last := time.Now()
	for {
		select {
		case ev := <-events:
			if !a.handle(ev, time.Now()) {
				return nil
			}
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			if err := a.step(dt, now); err != nil {
				return err
			}
		}
	}
}

func main() {
	flag.Parse()

	var logOut io.Writer = io.Discard
	if *logFileFlag != "" {
		f, err := os.OpenFile(*logFileFlag, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "opening log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	}
	logging.SetOutput(logOut)

	cfg, err := settings.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading settings: %v\n", err)
		os.Exit(1)
	}
	if err := logging.SetLevel(cfg.Log.Level); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start tcell: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to init tcell.Screen: %v\n", err)
		os.Exit(1)
	}
	screen.HideCursor()
	screen.Clear()

	a, err := newApp(screen, cfg)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "creating world: %v\n", err)
		os.Exit(1)
	}

	runErr := a.run(*fpsFlag)
	screen.Fini()
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "raytty: %v\n", runErr)
		os.Exit(1)
	}
}
