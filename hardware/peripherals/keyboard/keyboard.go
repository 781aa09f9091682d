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

// Package keyboard emulates the Apple II keyboard as seen by a guest
// program.
//
// Reading $C000 returns the current key with the high bit set, or zero if no
// key is waiting. Accessing $C010, either by reading or by writing, clears the
// keyboard strobe and moves on to the next key.
//
// Keys come from a buffer that is filled before the simulation starts. The
// input strings support C-style escape sequences. Once the buffer has been
// consumed, keys can be taken from a Source, such as the host terminal.
package keyboard

import (
	"github.com/jetsetilly/pim65/hardware/peripherals"
	"github.com/jetsetilly/pim65/logger"
)

// Source provides keys from outside the emulation.
type Source interface {
	// Poll returns the next key if one is available. Poll must not block.
	Poll() (uint8, bool)
}

// Keyboard is the buffered key input device.
type Keyboard struct {
	buffer []uint8
	index  int

	source Source
}

// NewKeyboard is the preferred method of initialisation for the Keyboard
// type. The input strings are decoded and concatenated in order.
func NewKeyboard(input ...string) *Keyboard {
	return &Keyboard{
		buffer: ParseInput(input...),
	}
}

// AttachSource sets the source of keys to be used once the buffer has been
// consumed. A nil source detaches any existing source.
func (k *Keyboard) AttachSource(src Source) {
	k.source = src
}

// Attach the keyboard to the address space by hooking the keyboard data and
// strobe addresses.
func (k *Keyboard) Attach(bus peripherals.Bus) {
	bus.AddReadHook(peripherals.KeyboardData, k.ReadData)
	bus.AddReadHook(peripherals.KeyboardStrobe, k.ClearStrobe)
	bus.AddWriteHook(peripherals.KeyboardStrobe, func(_ uint8) {
		k.ClearStrobe()
	})
	logger.Logf(logger.Allow, "keyboard", "attached with %d buffered keys", len(k.buffer))
}

// poll the source if the buffer is empty. the buffer is extended by one key
// if one is available.
func (k *Keyboard) poll() {
	if k.source == nil || k.index < len(k.buffer) {
		return
	}
	if key, ok := k.source.Poll(); ok {
		k.buffer = append(k.buffer, key)
	}
}

// ReadData returns the value seen by the guest at the keyboard data address.
// The current key is returned with the high bit set. If there is no key then
// zero is returned.
func (k *Keyboard) ReadData() uint8 {
	k.poll()
	if k.index < len(k.buffer) {
		return k.buffer[k.index] | 0x80
	}
	return 0x00
}

// ClearStrobe moves on to the next key. The value returned is the value
// ReadData() would have returned before the strobe was cleared.
func (k *Keyboard) ClearStrobe() uint8 {
	v := k.ReadData()
	if k.index < len(k.buffer) {
		k.index++
	}
	return v
}

// HasInput returns true if there are keys in the buffer that have not been
// consumed. Keys that may be available from an attached Source are not
// considered.
func (k *Keyboard) HasInput() bool {
	return k.index < len(k.buffer)
}

// Remaining returns the number of unconsumed keys in the buffer.
func (k *Keyboard) Remaining() int {
	return len(k.buffer) - k.index
}
