package settings

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"raycaster/logging"
	"raycaster/render"
)

// Watcher reloads the config file when it changes and hands the new
// projection parameters to a callback.
type Watcher struct {
	path     string
	onChange func(render.Params)

	fsnotify *fsnotify.Watcher
	done     chan struct{}
	wg       sync.WaitGroup
	once     sync.Once
}

// Watch starts watching path. The file's directory is watched so editors that
// replace the file on save are still seen. onChange runs on the watcher
// goroutine.
func Watch(path string, onChange func(render.Params)) (*Watcher, error) {
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		fsWatch.Close()
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}
	if err := fsWatch.Add(filepath.Dir(abs)); err != nil {
		fsWatch.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		path:     abs,
		onChange: onChange,
		fsnotify: fsWatch,
		done:     make(chan struct{}),
	}
	w.wg.Add(1)
	go w.start()
	return w, nil
}

func (w *Watcher) start() {
	defer w.wg.Done()
	for {
		select {
		case e, ok := <-w.fsnotify.Events:
			if !ok {
				return
			}
			if filepath.Clean(e.Name) != w.path {
				continue
			}
			if e.Op&(fsnotify.Create|fsnotify.Write) != 0 {
				w.reload()
			}

		case err, ok := <-w.fsnotify.Errors:
			if !ok {
				return
			}
			logging.Error("config watcher", "err", err)

		case <-w.done:
			return
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := Load(w.path)
	if err != nil {
		// keep the previous values
		logging.Warn("config reload failed", "path", w.path, "err", err)
		return
	}
	p := cfg.Params()
	logging.Debug("config reloaded", "focal_length", p.FocalLength, "view_width", p.ViewWidth)
	w.onChange(p)
}

// Close stops the watcher and waits for its goroutine.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.fsnotify.Close()
		w.wg.Wait()
	})
	return err
}
