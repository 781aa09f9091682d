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

package cpu

import (
	"fmt"

	"github.com/jetsetilly/pim65/disassembly"
)

// appendTrace adds a line to the trace log for the instruction at address. the
// line shows the state of the registers before the instruction is executed.
func (mc *CPU) appendTrace(address uint16) {
	text, _ := disassembly.Disassemble(mc.mem, address)
	mc.trace = append(mc.trace, fmt.Sprintf("$%04X: %-20s  %s", address, text, mc.FormatState()))
}

// Trace returns the trace log collected since the last reset. The returned
// slice should not be modified.
func (mc *CPU) Trace() []string {
	return mc.trace
}

// Disassemble the instruction at address. Returns the text of the instruction
// and the number of bytes it occupies.
func (mc *CPU) Disassemble(address uint16) (string, int) {
	return disassembly.Disassemble(mc.mem, address)
}
