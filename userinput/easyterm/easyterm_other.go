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

//go:build !unix

package easyterm

import (
	"fmt"
	"os"
)

// Terminal is not supported on this platform.
type Terminal struct{}

// NewTerminal always returns an error on this platform.
func NewTerminal(input *os.File) (*Terminal, error) {
	return nil, fmt.Errorf("easyterm: terminal modes not supported on this platform")
}

// CanonicalMode does nothing on this platform.
func (pt *Terminal) CanonicalMode() error {
	return nil
}

// CBreakMode does nothing on this platform.
func (pt *Terminal) CBreakMode() error {
	return nil
}

// RawMode does nothing on this platform.
func (pt *Terminal) RawMode() error {
	return nil
}

// Pending always returns zero on this platform.
func (pt *Terminal) Pending() (int, error) {
	return 0, nil
}

// Flush does nothing on this platform.
func (pt *Terminal) Flush() error {
	return nil
}
