package render

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"raycaster/bitmap"
	"raycaster/geom"
	"raycaster/tilemap"
	"raycaster/world"
)

func newWorld(t *testing.T) *world.World {
	t.Helper()
	w, err := world.New(tilemap.Default())
	require.NoError(t, err)
	return w
}

func pixel(t *testing.T, b *bitmap.Bitmap, x, y int) bitmap.Color {
	t.Helper()
	c, ok := b.At(x, y)
	require.True(t, ok, "pixel %d,%d out of range", x, y)
	return c
}

func TestParamsClamp(t *testing.T) {
	assert.Equal(t, Params{FocalLength: 1, ViewWidth: 1}, DefaultParams())

	p := Params{FocalLength: 0, ViewWidth: 9}.Clamped()
	assert.Equal(t, Params{FocalLength: MinParam, ViewWidth: MaxParam}, p)

	p = DefaultParams().Adjust(-10, ParamStep)
	assert.Equal(t, MinParam, p.FocalLength)
	assert.InDelta(t, 1.05, p.ViewWidth, 1e-12)
}

func TestProjectedHeight(t *testing.T) {
	const bufferHeight = 200.0

	prev := ProjectedHeight(1, 0.1, bufferHeight)
	for d := 0.2; d < 10; d += 0.1 {
		h := ProjectedHeight(1, d, bufferHeight)
		assert.Less(t, h, prev, "distance %v", d)
		prev = h
	}

	base := ProjectedHeight(1, 2.5, bufferHeight)
	for _, f := range []float64{0.01, 0.5, 2, 5} {
		assert.InDelta(t, base*f, ProjectedHeight(f, 2.5, bufferHeight), 1e-9)
	}
	assert.Equal(t, 200.0, ProjectedHeight(1, 1, bufferHeight))
}

func TestCastCentreColumn(t *testing.T) {
	w := newWorld(t)

	// with two columns the second sample sits on the view plane centre
	cols, err := Cast(w, DefaultParams(), 2)
	require.NoError(t, err)
	require.Len(t, cols, 2)
	assert.Equal(t, geom.V(1.125, 7), cols[1].Hit)
	assert.Equal(t, 5.875, cols[1].Distance)
	assert.Equal(t, FaceHorizontal, cols[1].Face)

	w.Body.Direction = geom.V(1, 0)
	cols, err = Cast(w, DefaultParams(), 2)
	require.NoError(t, err)
	assert.Equal(t, geom.V(2, 1.125), cols[1].Hit)
	assert.Equal(t, FaceVertical, cols[1].Face)

	cols, err = Cast(w, DefaultParams(), 0)
	require.NoError(t, err)
	assert.Empty(t, cols)
}

func TestCastEveryColumnHitsWall(t *testing.T) {
	w := newWorld(t)
	for _, p := range []Params{DefaultParams(), {FocalLength: MinParam, ViewWidth: MaxParam}, {FocalLength: MaxParam, ViewWidth: MinParam}} {
		cols, err := Cast(w, p, 64)
		require.NoError(t, err)
		for i, c := range cols {
			assert.Greater(t, c.Distance, 0.0, "column %d", i)
		}
	}
}

func TestPerspectiveDraw(t *testing.T) {
	w := newWorld(t)
	r := Perspective{Width: 200, Height: 200}

	b, err := r.Draw(w, DefaultParams())
	require.NoError(t, err)
	assert.Equal(t, 200, b.Width())
	assert.Equal(t, 200, b.Height())

	// south wall 5.875 away: white slice of about 34 rows around the middle
	assert.Equal(t, HorizontalFaceColor, pixel(t, b, 100, 100))
	assert.Equal(t, bitmap.Black, pixel(t, b, 100, 0))
	assert.Equal(t, bitmap.Black, pixel(t, b, 100, 199))

	// interior wall 0.875 to the east fills the whole column in gray
	w.Body.Direction = geom.V(1, 0)
	b, err = r.Draw(w, DefaultParams())
	require.NoError(t, err)
	assert.Equal(t, VerticalFaceColor, pixel(t, b, 100, 0))
	assert.Equal(t, VerticalFaceColor, pixel(t, b, 100, 100))
	assert.Equal(t, VerticalFaceColor, pixel(t, b, 100, 199))
}

func TestTopDownDraw(t *testing.T) {
	w := newWorld(t)
	b, err := TopDown{Width: 100, Height: 100}.Draw(w, DefaultParams())
	require.NoError(t, err)

	assert.Equal(t, WallColor, pixel(t, b, 0, 0))
	assert.Equal(t, FloorColor, pixel(t, b, 43, 56))
	assert.Equal(t, BodyColor, pixel(t, b, 13, 13))
	assert.Equal(t, RayColor, pixel(t, b, 14, 50))
	assert.Equal(t, ViewPlaneColor, pixel(t, b, 15, 26))
}

func TestRenderersAreIdempotent(t *testing.T) {
	w := newWorld(t)
	require.NoError(t, w.Update(0.3, world.Input{Velocity: geom.V(0.4, -1)}))
	p := Params{FocalLength: 0.8, ViewWidth: 1.3}

	td := TopDown{Width: 100, Height: 100}
	a, err := td.Draw(w, p)
	require.NoError(t, err)
	b, err := td.Draw(w, p)
	require.NoError(t, err)
	assert.True(t, a.Equal(b))
	assert.NotSame(t, a, b)

	pv := Perspective{Width: 200, Height: 200}
	c, err := pv.Draw(w, p)
	require.NoError(t, err)
	d, err := pv.Draw(w, p)
	require.NoError(t, err)
	assert.True(t, c.Equal(d))
}

func TestDrawClampsParams(t *testing.T) {
	w := newWorld(t)
	zero := Params{}
	clamped := zero.Clamped()

	cols, err := Cast(w, zero, 50)
	require.NoError(t, err)
	want, err := Cast(w, clamped, 50)
	require.NoError(t, err)
	assert.Equal(t, want, cols)

	td := TopDown{Width: 100, Height: 100}
	a, err := td.Draw(w, zero)
	require.NoError(t, err)
	b, err := td.Draw(w, clamped)
	require.NoError(t, err)
	assert.True(t, a.Equal(b))

	pv := Perspective{Width: 120, Height: 80}
	c, err := pv.Draw(w, Params{FocalLength: 40, ViewWidth: -3})
	require.NoError(t, err)
	d, err := pv.Draw(w, Params{FocalLength: MaxParam, ViewWidth: MinParam})
	require.NoError(t, err)
	assert.True(t, c.Equal(d))
}

func TestRenderFrame(t *testing.T) {
	w := newWorld(t)
	td := TopDown{Width: 100, Height: 100}
	pv := Perspective{Width: 200, Height: 200}

	f, err := RenderFrame(context.Background(), w, DefaultParams(), td, pv)
	require.NoError(t, err)

	want, err := td.Draw(w, DefaultParams())
	require.NoError(t, err)
	assert.True(t, want.Equal(f.TopDown))
	want, err = pv.Draw(w, DefaultParams())
	require.NoError(t, err)
	assert.True(t, want.Equal(f.Perspective))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = RenderFrame(ctx, w, DefaultParams(), td, pv)
	assert.ErrorIs(t, err, context.Canceled)
}
