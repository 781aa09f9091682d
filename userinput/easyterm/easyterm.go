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

//go:build unix

package easyterm

import (
	"fmt"
	"os"
	"sync"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// Terminal is a terminal that can be switched between canonical, cbreak and
// raw modes.
type Terminal struct {
	input *os.File

	canAttr    unix.Termios
	cbreakAttr unix.Termios
	rawAttr    unix.Termios

	mu sync.Mutex
}

// NewTerminal is the preferred method of initialisation for the Terminal
// type. The current attributes of the terminal are taken to be the canonical
// mode.
func NewTerminal(input *os.File) (*Terminal, error) {
	if input == nil {
		return nil, fmt.Errorf("easyterm: terminal requires an input file")
	}

	pt := &Terminal{input: input}

	if err := termios.Tcgetattr(pt.input.Fd(), &pt.canAttr); err != nil {
		return nil, fmt.Errorf("easyterm: %w", err)
	}

	// the cbreak and raw modes are modifications of the canonical mode
	pt.cbreakAttr = pt.canAttr
	termios.Cfmakecbreak(&pt.cbreakAttr)
	pt.rawAttr = pt.canAttr
	termios.Cfmakeraw(&pt.rawAttr)

	return pt, nil
}

func (pt *Terminal) set(attr *unix.Termios) error {
	pt.mu.Lock()
	defer pt.mu.Unlock()
	return termios.Tcsetattr(pt.input.Fd(), termios.TCSANOW, attr)
}

// CanonicalMode restores the terminal to the mode it was in when the
// Terminal was created.
func (pt *Terminal) CanonicalMode() error {
	return pt.set(&pt.canAttr)
}

// CBreakMode puts the terminal into cbreak mode. Input is available one byte
// at a time and is not echoed.
func (pt *Terminal) CBreakMode() error {
	return pt.set(&pt.cbreakAttr)
}

// RawMode puts the terminal into raw mode.
func (pt *Terminal) RawMode() error {
	return pt.set(&pt.rawAttr)
}

// Pending returns the number of bytes waiting to be read.
func (pt *Terminal) Pending() (int, error) {
	return termios.Tiocinq(pt.input.Fd())
}

// Flush discards any input that has not been read.
func (pt *Terminal) Flush() error {
	return termios.Tcflush(pt.input.Fd(), termios.TCIFLUSH)
}
