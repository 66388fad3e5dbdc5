package script

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/gogpu/tin"
)

// DefaultDebounce is the quiet period Watch waits for before reloading.
const DefaultDebounce = 250 * time.Millisecond

// Watch reloads the scene whenever its file changes, until ctx is done.
// Bursts of events within debounce are coalesced into one reload. Reload
// errors are logged and the previous version keeps running.
//
// The directory is watched rather than the file so that editors saving
// through a rename are noticed.
func (s *LuaScene) Watch(ctx context.Context, debounce time.Duration) error {
	if s.path == "" {
		return fmt.Errorf("script: %s was not loaded from a file", s.name)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("script: watch: %w", err)
	}
	defer w.Close()
	if err := w.Add(filepath.Dir(s.path)); err != nil {
		return fmt.Errorf("script: watch %s: %w", s.path, err)
	}

	log := tin.Logger().With("path", s.path)
	log.Debug("script: watching")

	target, _ := filepath.Abs(s.path)
	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			name, _ := filepath.Abs(ev.Name)
			if name != target || !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(debounce)
			fire = timer.C

		case <-fire:
			timer, fire = nil, nil
			if err := s.Reload(); err != nil {
				log.Warn("script: reload failed", "error", err)
			}

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warn("script: watch error", "error", err)
		}
	}
}
