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

package userinput

import (
	"os"

	"golang.org/x/term"

	"github.com/jetsetilly/pim65/curated"
	"github.com/jetsetilly/pim65/logger"
	"github.com/jetsetilly/pim65/userinput/easyterm"
)

// Sentinel errors.
const (
	NotATerminal = "userinput: %s is not a terminal"
	InputError   = "userinput: %v"
)

// Keys reads key presses from a terminal.
type Keys struct {
	input *os.File
	term  *easyterm.Terminal

	// the most recent error from the terminal. Poll() cannot return an error
	// so it is recorded here
	err error
}

// NewKeys is the preferred method of initialisation for the Keys type. The
// terminal is put into cbreak mode until Close() is called.
func NewKeys(input *os.File) (*Keys, error) {
	if !term.IsTerminal(int(input.Fd())) {
		return nil, curated.Errorf(NotATerminal, input.Name())
	}

	t, err := easyterm.NewTerminal(input)
	if err != nil {
		return nil, curated.Errorf(InputError, err)
	}

	if err := t.CBreakMode(); err != nil {
		return nil, curated.Errorf(InputError, err)
	}

	logger.Logf(logger.Allow, "userinput", "reading keys from %s", input.Name())

	return &Keys{
		input: input,
		term:  t,
	}, nil
}

// Poll implements the keyboard.Source interface. It never blocks.
func (k *Keys) Poll() (uint8, bool) {
	if k.err != nil {
		return 0, false
	}

	n, err := k.term.Pending()
	if err != nil {
		k.fail(err)
		return 0, false
	}
	if n == 0 {
		return 0, false
	}

	var b [1]byte
	if _, err := k.input.Read(b[:]); err != nil {
		k.fail(err)
		return 0, false
	}

	return Translate(b[0]), true
}

// record the error and log it. no further polling is attempted.
func (k *Keys) fail(err error) {
	k.err = curated.Errorf(InputError, err)
	logger.Log(logger.Allow, "userinput", k.err)
}

// Err returns the error that stopped polling, if any.
func (k *Keys) Err() error {
	return k.err
}

// Close restores the terminal to canonical mode. Any unread input is
// discarded.
func (k *Keys) Close() error {
	_ = k.term.Flush()
	return k.term.CanonicalMode()
}

// Translate a byte from the host terminal to the value expected by the
// guest. New line is translated to carriage return and delete is translated
// to backspace. The high bit is always cleared.
func Translate(b byte) uint8 {
	switch b {
	case '\n':
		return 0x0d
	case 0x7f:
		return 0x08
	}
	return b & 0x7f
}
