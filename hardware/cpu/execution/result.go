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

package execution

import (
	"fmt"

	"github.com/jetsetilly/pim65/hardware/cpu/instructions"
)

// Result records what happened during the most recent call to CPU.Step().
type Result struct {
	// the address at which the instruction (or PC hook) began
	Address uint16

	// the definition of the instruction. will be nil if the opcode was invalid
	// or if the step was handled by a PC hook
	Defn *instructions.Definition

	// the number of bytes read through the program counter
	ByteCount int

	// the operand data for the instruction. for branches this is the offset
	// byte and not the target address
	InstructionData uint16

	// whether the step was handled by a PC hook rather than by the instruction
	// table
	Hooked bool

	// whether the instruction completed
	Final bool

	// whether a known addressing quirk was triggered
	CPUBug Bug
}

// Reset the Result to its zero state.
func (r *Result) Reset() {
	*r = Result{}
}

func (r Result) String() string {
	if r.Hooked {
		return fmt.Sprintf("$%04X: (hooked)", r.Address)
	}
	if r.Defn == nil {
		return fmt.Sprintf("$%04X: ???", r.Address)
	}
	s := fmt.Sprintf("$%04X: %s", r.Address, r.Defn)
	if r.CPUBug != NoBug {
		s = fmt.Sprintf("%s [%s]", s, r.CPUBug)
	}
	return s
}
