package render

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"raycaster/bitmap"
	"raycaster/world"
)

// Frame holds the two buffers produced for one tick.
type Frame struct {
	TopDown     *bitmap.Bitmap
	Perspective *bitmap.Bitmap
}

// RenderFrame draws both views in parallel. Both renderers only read the
// world, so the caller must not Update it until RenderFrame returns.
func RenderFrame(ctx context.Context, w *world.World, p Params, td TopDown, pv Perspective) (Frame, error) {
	var f Frame
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		b, err := td.Draw(w, p)
		if err != nil {
			return fmt.Errorf("top-down: %w", err)
		}
		f.TopDown = b
		return nil
	})

	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		b, err := pv.Draw(w, p)
		if err != nil {
			return fmt.Errorf("perspective: %w", err)
		}
		f.Perspective = b
		return nil
	})

	if err := g.Wait(); err != nil {
		return Frame{}, err
	}
	return f, nil
}
