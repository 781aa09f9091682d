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

package peripherals_test

import (
	"testing"

	"github.com/jetsetilly/pim65/hardware/memory"
	"github.com/jetsetilly/pim65/hardware/peripherals"
	"github.com/jetsetilly/pim65/test"
)

func TestBus(t *testing.T) {
	test.ExpectImplements(t, memory.NewAddressSpace(), peripherals.Bus(nil))
}

func TestSlotROM(t *testing.T) {
	test.ExpectEquality(t, peripherals.SlotROM(2), uint16(0xc200))
	test.ExpectEquality(t, peripherals.SlotROM(6), uint16(0xc600))
}
