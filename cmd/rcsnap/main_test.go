package main

import (
	"context"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"raycaster/geom"
	"raycaster/settings"
	"raycaster/world"
)

func TestSnapshotWritesScaledFrames(t *testing.T) {
	dir := t.TempDir()
	cfg := settings.Default()
	cfg.Minimap = settings.Buffer{Width: 32, Height: 32}
	cfg.Perspective = settings.Buffer{Width: 40, Height: 30}

	paths, err := snapshot(context.Background(), cfg, options{
		dir:    dir,
		frames: 5,
		every:  2,
		dt:     0.05,
		input:  world.Input{Velocity: geom.V(0.5, -1)},
		scale:  2,
	})
	require.NoError(t, err)
	require.Len(t, paths, 6)
	assert.Equal(t, filepath.Join(dir, "frame_0000_perspective.png"), paths[0])
	assert.Equal(t, filepath.Join(dir, "frame_0004_topdown.png"), paths[5])

	f, err := os.Open(paths[0])
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 80, img.Bounds().Dx())
	assert.Equal(t, 60, img.Bounds().Dy())
}

func TestSnapshotRejectsEmptyRun(t *testing.T) {
	_, err := snapshot(context.Background(), settings.Default(), options{dir: t.TempDir()})
	assert.ErrorIs(t, err, errNoFrames)
}
