// Command rcsnap renders frames headlessly and writes them as PNG files.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"raycaster/geom"
	"raycaster/logging"
	"raycaster/profiling"
	"raycaster/render"
	"raycaster/settings"
	"raycaster/world"
)

var (
	configFlag   = flag.String("config", "raycaster.yaml", "settings file (.yaml, .yml or .toml)")
	outFlag      = flag.String("out", "snapshots", "output directory")
	framesFlag   = flag.Int("frames", 1, "number of frames to simulate and write")
	dtFlag       = flag.Float64("dt", 1.0/30, "seconds per simulated frame")
	turnFlag     = flag.Float64("turn", 0, "turn input in [-1, 1] held for every frame")
	throttleFlag = flag.Float64("throttle", 0, "throttle input in [-1, 1]; negative moves forward")
	scaleFlag    = flag.Int("scale", 0, "upscale factor; 0 uses window.scale from settings")
	everyFlag    = flag.Int("every", 1, "write every n-th frame")
	profileFlag  = flag.String("cpuprofile", "", "write a CPU profile to this file")
)

var errNoFrames = errors.New("nothing to render")

// options describe one snapshot run.
type options struct {
	dir    string
	frames int
	every  int
	dt     float64
	input  world.Input
	scale  int
}

// snapshot simulates opts.frames updates and writes both views of every
// opts.every-th frame. It returns the written paths.
func snapshot(ctx context.Context, cfg settings.Config, opts options) ([]string, error) {
	if opts.frames < 1 || opts.every < 1 {
		return nil, errNoFrames
	}
	if opts.scale < 1 {
		opts.scale = cfg.Window.Scale
	}
	w, err := cfg.World()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(opts.dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating %s: %w", opts.dir, err)
	}

	td, pv := cfg.Renderers()
	params := cfg.Params()
	var written []string
	for i := 0; i < opts.frames; i++ {
		if i > 0 {
			if err := w.Update(opts.dt, opts.input); err != nil {
				return written, fmt.Errorf("frame %d: %w", i, err)
			}
		}
		if i%opts.every != 0 {
			continue
		}
		frame, err := render.RenderFrame(ctx, w, params, td, pv)
		if err != nil {
			return written, fmt.Errorf("frame %d: %w", i, err)
		}
		for _, view := range []struct {
			name string
			img  image.Image
		}{
			{"perspective", frame.Perspective.Scaled(opts.scale)},
			{"topdown", frame.TopDown.Scaled(opts.scale)},
		} {
			path := filepath.Join(opts.dir, fmt.Sprintf("frame_%04d_%s.png", i, view.name))
			if err := writePNG(path, view.img); err != nil {
				return written, err
			}
			written = append(written, path)
		}
		logging.Debug("frame written", "frame", i, "position", w.Body.Position, "contacts", w.Contacts)
	}
	return written, nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return f.Close()
}

func main() {
	flag.Parse()

	cfg, err := settings.Load(*configFlag)
	if err != nil {
		logging.Fatal("loading settings", "err", err)
	}
	if err := logging.SetLevel(cfg.Log.Level); err != nil {
		logging.Fatal("configuring logger", "err", err)
	}

	var paths []string
	err = profiling.Run(*profileFlag, func() (err error) {
		paths, err = snapshot(context.Background(), cfg, options{
			dir:    *outFlag,
			frames: *framesFlag,
			every:  *everyFlag,
			dt:     *dtFlag,
			input:  world.Input{Velocity: geom.V(*turnFlag, *throttleFlag)},
			scale:  *scaleFlag,
		})
		return err
	})
	if err != nil {
		logging.Fatal("snapshot", "err", err, "written", len(paths))
	}
	logging.Info("snapshots written", "count", len(paths), "dir", *outFlag)
}
