// This file is part of Pim65.
//
// Pim65 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Pim65 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Pim65.  If not, see <https://www.gnu.org/licenses/>.

package watch

import (
	"context"
	"path/filepath"
	"time"

	"github.com/howeyc/fsnotify"

	"github.com/jetsetilly/pim65/curated"
	"github.com/jetsetilly/pim65/logger"
)

// WatchError is the pattern used for errors returned by Watch().
const WatchError = "watch: %v"

// Settle is the amount of time to wait after the last change before running
// the function. build tools often write a file in several steps.
const Settle = 100 * time.Millisecond

// Watch runs fn once immediately and then again whenever any of the files
// change. Returns when the context is cancelled.
//
// The directory containing each file is watched rather than the file itself
// so that files which are replaced, rather than written to, are still noticed.
func Watch(ctx context.Context, files []string, fn func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return curated.Errorf(WatchError, err)
	}
	defer watcher.Close()

	names := make(map[string]bool)
	dirs := make(map[string]bool)
	for _, f := range files {
		f, err = filepath.Abs(f)
		if err != nil {
			return curated.Errorf(WatchError, err)
		}
		names[f] = true

		d := filepath.Dir(f)
		if dirs[d] {
			continue
		}
		if err := watcher.Watch(d); err != nil {
			return curated.Errorf(WatchError, err)
		}
		dirs[d] = true
	}

	run := time.After(time.Millisecond)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-run:
			fn()
		case ev := <-watcher.Event:
			if names[filepath.Clean(ev.Name)] && !ev.IsAttrib() {
				logger.Logf(logger.Allow, "watch", "%s changed", ev.Name)
				run = time.After(Settle)
			}
		case err := <-watcher.Error:
			logger.Logf(logger.Allow, "watch", "%v", err)
		}
	}
}
