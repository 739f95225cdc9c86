package app

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bft-labs/rangemap/pkg/log"
)

const watchDebounce = 100 * time.Millisecond

// watch solves the input, then solves it again after every write until ctx is
// done. The parent directory is watched so editors that replace the file are
// still seen. Failures of individual runs are logged and do not stop watching.
func (a *App) watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(a.cfg.Input)
	name := filepath.Base(a.cfg.Input)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	a.solveLogged(ctx)

	debounce := time.NewTimer(watchDebounce)
	debounce.Stop()
	defer debounce.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != name {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			debounce.Reset(watchDebounce)

		case <-debounce.C:
			a.solveLogged(ctx)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			a.logger.Warn("watcher error", log.Err(err))
		}
	}
}

func (a *App) solveLogged(ctx context.Context) {
	if _, err := a.SolveOnce(ctx); err != nil {
		a.logger.Error("solve failed", log.String("input", a.cfg.Input), log.Err(err))
	}
}
