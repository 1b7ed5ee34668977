package scenario

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchDebounce batches the bursts of events editors emit on save.
const watchDebounce = 100 * time.Millisecond

// Watch reloads the file whenever it changes and hands the result to fn.
//
// The parent directory is watched rather than the file itself, so editors that
// save by renaming a temporary file over the original are still noticed.
// Watch blocks until ctx is done.
//
// Parameters:
//   - ctx: Stops the watch when cancelled
//   - fn: Called with the reloaded scenario, or the load or watch error
//
// Returns:
//   - error: ctx.Err() once cancelled, or a setup error
func (f *File) Watch(ctx context.Context, fn func(*Scenario, error)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Close()

	if err := w.Add(filepath.Dir(f.path)); err != nil {
		return fmt.Errorf("watch %s: %w", f.path, err)
	}

	target := filepath.Clean(f.path)
	var pending <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			pending = time.After(watchDebounce)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			fn(nil, err)

		case <-pending:
			pending = nil
			fn(Load(f.path))
		}
	}
}
