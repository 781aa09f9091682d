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

// Package userinput handles input from the real keyboard of the user of the
// simulator.
//
// It is a translation layer between the host terminal and the keyboard
// peripheral. The Keys type implements the keyboard.Source interface and is
// polled by the keyboard whenever the guest reads the keyboard data address
// and there is no buffered input. The host terminal is put into cbreak mode
// so that keys are available without waiting for the return key.
package userinput
