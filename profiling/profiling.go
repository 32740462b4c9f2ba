// Package profiling wraps pprof CPU profiling for the command binaries.
package profiling

import (
	"fmt"
	"os"
	"runtime/pprof"
	"sync"

	"raycaster/logging"
)

// Start writes a pprof CPU profile to path until the returned stop function
// runs. Stop may be called more than once.
func Start(path string) (stop func(), err error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating profile %s: %w", path, err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return nil, fmt.Errorf("starting CPU profile: %w", err)
	}
	logging.Info("cpu profile started", "path", path)

	var once sync.Once
	return func() {
		once.Do(func() {
			pprof.StopCPUProfile()
			if err := f.Close(); err != nil {
				logging.Warn("closing profile", "path", path, "err", err)
				return
			}
			logging.Info("cpu profile written", "path", path)
		})
	}, nil
}

// Run calls fn while profiling to path and flushes the profile before
// returning, whatever fn returns. An empty path runs fn unprofiled.
func Run(path string, fn func() error) error {
	if path == "" {
		return fn()
	}
	stop, err := Start(path)
	if err != nil {
		return err
	}
	defer stop()
	return fn()
}
