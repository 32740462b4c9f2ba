package main

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"raycaster/geom"
	"raycaster/logging"
	"raycaster/render"
	"raycaster/world"
)

// enableAutoWalk schedules scripted movement for a limited duration.
func (g *Game) enableAutoWalk(duration time.Duration) {
	g.autoWalk = true
	g.autoWalkDeadline = time.Now().Add(duration)
	g.autoWalkFrameCount = 0
}

// inputVector selects either manual or automatic input. ok is false once an
// auto walk has finished.
func (g *Game) inputVector() (in world.Input, ok bool) {
	if g.autoWalk {
		if time.Now().After(g.autoWalkDeadline) {
			g.autoWalk = false
			logging.Info("auto walk finished")
			return world.Input{}, false
		}
		return g.autoWalkVector(), true
	}
	return g.manualInput(), true
}

// manualInput merges keyboard and drag joystick input.
func (g *Game) manualInput() world.Input {
	keys := world.KeyInput(
		ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
	)
	return keys.Add(g.joystickInput())
}

// joystickInput tracks a left-button drag and maps its offset from the press
// point to an input.
func (g *Game) joystickInput() world.Input {
	x, y := ebiten.CursorPosition()
	cursor := geom.V(float64(x), float64(y))
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		g.dragging = true
		g.dragStart = cursor
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		g.dragging = false
	}
	if !g.dragging {
		return world.Input{}
	}
	g.dragPos = cursor
	return world.JoystickInput(cursor.Sub(g.dragStart), world.JoystickRadius)
}

// autoWalkVector holds a random turn and throttle for a few dozen frames at
// a time. Collision handling keeps the body inside the map.
func (g *Game) autoWalkVector() world.Input {
	if g.autoWalkFrameCount <= 0 {
		g.randomizeAutoWalkInput()
	}
	g.autoWalkFrameCount--
	return g.autoWalkInput
}

// randomizeAutoWalkInput mostly walks forward while turning a little.
func (g *Game) randomizeAutoWalkInput() {
	turn := g.autoWalkRand.Float64()*2 - 1
	throttle := -g.autoWalkRand.Float64()
	g.autoWalkInput = world.Input{Velocity: geom.V(turn, throttle)}
	g.autoWalkFrameCount = 20 + g.autoWalkRand.Intn(50)
}

// handleViewControls adjusts focal length (-/=), view width ([/]) and resets
// both (R).
func (g *Game) handleViewControls() {
	var focal, width float64
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		focal -= render.ParamStep
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		focal += render.ParamStep
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) {
		width -= render.ParamStep
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
		width += render.ParamStep
	}
	if focal != 0 || width != 0 {
		g.adjustViewParams(focal, width)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.setViewParams(render.DefaultParams())
	}
}

// adjustViewParams applies deltas within the clamp range.
func (g *Game) adjustViewParams(focal, width float64) {
	g.paramsMu.Lock()
	g.params = g.params.Adjust(focal, width)
	g.paramsMu.Unlock()
}

// handleDebugControls toggles the debug overlay.
func (g *Game) handleDebugControls() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.showDebug = !g.showDebug
	}
}
