package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"raycaster/world"
)

var (
	joystickRingColor = color.RGBA{255, 255, 255, 160}
	joystickKnobColor = color.RGBA{255, 255, 255, 220}
)

// Draw presents the frame rendered by the last Update: the upscaled
// first-person view, the minimap, the parameter labels and optional overlays.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.frame.Perspective != nil {
		g.mainView.WritePixels(g.frame.Perspective.RGBA())
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(float64(g.scale), float64(g.scale))
		screen.DrawImage(g.mainView, op)
	}
	if g.frame.TopDown != nil {
		g.minimap.WritePixels(g.frame.TopDown.RGBA())
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(minimapMargin, minimapMargin)
		screen.DrawImage(g.minimap, op)
	}

	p := g.viewParams()
	labels := fmt.Sprintf("focal length: %.2f\nview width: %.2f", p.FocalLength, p.ViewWidth)
	ebitenutil.DebugPrintAt(screen, labels, minimapMargin, 2*minimapMargin+g.topDown.Height)

	if g.dragging {
		g.drawJoystick(screen)
	}

	if g.showDebug {
		tps := ebiten.ActualTPS()
		if tps < 0 {
			tps = 0
		}
		b := g.world.Body
		debugMsg := fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nRender: %.2f ms\nPos: %.2f, %.2f\nDir: %.2f, %.2f\nContacts: %d",
			ebiten.ActualFPS(), tps, g.lastRenderDuration.Seconds()*1000,
			b.Position.X, b.Position.Y, b.Direction.X, b.Direction.Y, g.world.Contacts)
		ebitenutil.DebugPrintAt(screen, debugMsg, g.topDown.Width+minimapMargin+debugColumnGap, minimapMargin)
	}
}

// Layout reports the logical screen size used by Ebiten.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.perspective.Width * g.scale, g.perspective.Height * g.scale
}

// drawJoystick renders the drag ring around the press point and the current
// knob position.
func (g *Game) drawJoystick(screen *ebiten.Image) {
	cx, cy := float32(g.dragStart.X), float32(g.dragStart.Y)
	vector.StrokeCircle(screen, cx, cy, world.JoystickRadius, joystickStrokeWidth, joystickRingColor, true)
	in := world.JoystickInput(g.dragPos.Sub(g.dragStart), world.JoystickRadius)
	knob := g.dragStart.Add(in.Velocity.Scale(world.JoystickRadius))
	vector.StrokeLine(screen, cx, cy, float32(knob.X), float32(knob.Y), joystickStrokeWidth, joystickKnobColor, true)
}
