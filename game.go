package main

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"raycaster/geom"
	"raycaster/logging"
	"raycaster/render"
	"raycaster/settings"
	"raycaster/world"
)

// Game owns the world and drives one update and one render per tick.
type Game struct {
	world       *world.World
	topDown     render.TopDown
	perspective render.Perspective
	scale       int

	// params is also written by the settings watcher goroutine.
	paramsMu sync.Mutex
	params   render.Params

	frame      render.Frame
	mainView   *ebiten.Image
	minimap    *ebiten.Image
	lastUpdate time.Time

	lastRenderDuration time.Duration
	showDebug          bool
	quitAfterAutoWalk  bool

	dragging  bool
	dragStart geom.Vector
	dragPos   geom.Vector

	autoWalk           bool
	autoWalkDeadline   time.Time
	autoWalkRand       *rand.Rand
	autoWalkInput      world.Input
	autoWalkFrameCount int

	audioCtx    *audio.Context
	audioStream *bumpAudioStream
	audioPlayer *audio.Player
	lastBump    time.Time
}

// newGame builds the world and renderers from cfg.
func newGame(cfg settings.Config) (*Game, error) {
	w, err := cfg.World()
	if err != nil {
		return nil, err
	}
	td, pv := cfg.Renderers()
	g := &Game{
		world:        w,
		topDown:      td,
		perspective:  pv,
		scale:        cfg.Window.Scale,
		params:       cfg.Params(),
		mainView:     ebiten.NewImage(pv.Width, pv.Height),
		minimap:      ebiten.NewImage(td.Width, td.Height),
		showDebug:    *debugFlag,
		autoWalkRand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	logging.Info("world ready",
		"map", w.Map.Size(), "position", w.Body.Position, "direction", w.Body.Direction)

	if *enableAudioFlag {
		g.startAudio()
	}
	return g, nil
}

func (g *Game) startAudio() {
	var sample []float32
	if *bumpSoundFlag != "" {
		s, err := loadBumpSample(audioSampleRate, *bumpSoundFlag)
		if err != nil {
			logging.Warn("bump sample unavailable, using tone", "err", err)
		} else {
			sample = s
		}
	}
	g.audioCtx = audio.NewContext(audioSampleRate)
	g.audioStream = newBumpAudioStream(sample)
	player, err := g.audioCtx.NewPlayer(g.audioStream)
	if err != nil {
		logging.Error("audio player creation failed", "err", err)
		g.audioStream = nil
		return
	}
	g.audioPlayer = player
	g.audioPlayer.SetBufferSize(audioPlayerBufferLatency)
	g.audioPlayer.Play()
}

// viewParams returns the current projection parameters.
func (g *Game) viewParams() render.Params {
	g.paramsMu.Lock()
	defer g.paramsMu.Unlock()
	return g.params
}

// setViewParams replaces the projection parameters, clamped.
func (g *Game) setViewParams(p render.Params) {
	g.paramsMu.Lock()
	g.params = p.Clamped()
	g.paramsMu.Unlock()
}

// frameStep returns the seconds since the previous tick, at most maxFrameStep.
func (g *Game) frameStep() float64 {
	now := time.Now()
	if g.lastUpdate.IsZero() {
		g.lastUpdate = now
		return 1.0 / defaultTPS
	}
	dt := now.Sub(g.lastUpdate).Seconds()
	g.lastUpdate = now
	return geom.Clamp(dt, 0, maxFrameStep)
}

// Update advances the world, then renders both views for Draw to present.
func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	in, ok := g.inputVector()
	if !ok && g.quitAfterAutoWalk {
		return ebiten.Termination
	}
	g.handleViewControls()
	g.handleDebugControls()

	if err := g.world.Update(g.frameStep(), in); err != nil {
		if !errors.Is(err, world.ErrUnresolved) {
			return err
		}
		logging.Warn("collision", "err", err)
	}
	if g.world.Contacts > 0 {
		g.bump()
	}

	start := time.Now()
	frame, err := render.RenderFrame(context.Background(), g.world, g.viewParams(), g.topDown, g.perspective)
	if err != nil {
		return err
	}
	g.frame = frame
	g.lastRenderDuration = time.Since(start)
	return nil
}

// bump plays the contact sound scaled by impact speed.
func (g *Game) bump() {
	if g.audioStream == nil {
		return
	}
	now := time.Now()
	if now.Sub(g.lastBump) < bumpCooldown {
		return
	}
	b := g.world.Body
	if b.Speed <= 0 {
		return
	}
	strength := b.Velocity.Length() / b.Speed
	if strength < minBumpStrength {
		return
	}
	g.lastBump = now
	g.audioStream.Trigger(float32(strength))
	logging.Debug("bump", "position", b.Position, "contacts", g.world.Contacts)
}

// Close releases audio resources.
func (g *Game) Close() {
	if g.audioPlayer != nil {
		if err := g.audioPlayer.Close(); err != nil {
			logging.Warn("closing audio player", "err", err)
		}
	}
}
