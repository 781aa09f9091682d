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

package watch_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jetsetilly/pim65/test"
	"github.com/jetsetilly/pim65/watch"
)

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "program.bin")
	other := filepath.Join(dir, "other.bin")
	test.DemandSuccess(t, os.WriteFile(path, []byte{0x00}, 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	calls := make(chan bool, 10)
	done := make(chan error)
	go func() {
		done <- watch.Watch(ctx, []string{path}, func() {
			calls <- true
		})
	}()

	wait := func() bool {
		select {
		case <-calls:
			return true
		case <-time.After(5 * time.Second):
			return false
		}
	}

	// initial run
	test.DemandSuccess(t, wait())

	// changes to files not being watched are ignored
	test.DemandSuccess(t, os.WriteFile(other, []byte{0x00}, 0o644))
	select {
	case <-calls:
		t.Errorf("unexpected call after change to unwatched file")
	case <-time.After(watch.Settle * 3):
	}

	test.DemandSuccess(t, os.WriteFile(path, []byte{0x01}, 0o644))
	test.ExpectSuccess(t, wait())

	cancel()
	select {
	case err := <-done:
		test.ExpectSuccess(t, err)
	case <-time.After(5 * time.Second):
		t.Errorf("watch did not end after context was cancelled")
	}
}

func TestWatchMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "program.bin")
	err := watch.Watch(context.Background(), []string{path}, func() {})
	test.ExpectFailure(t, err)
}
