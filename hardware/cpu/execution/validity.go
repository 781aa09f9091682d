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
	"github.com/jetsetilly/pim65/curated"
	"github.com/jetsetilly/pim65/hardware/cpu/instructions"
)

// IsValid checks whether the instance of Result contains information
// consistent with the instruction definition.
func (r Result) IsValid() error {
	if r.Hooked {
		if r.Defn != nil {
			return curated.Errorf("cpu: hooked result should not have an instruction definition")
		}
		return nil
	}

	if !r.Final {
		return curated.Errorf("cpu: execution not finalised (bad opcode?)")
	}

	if r.Defn == nil {
		return curated.Errorf("cpu: finalised result has no instruction definition")
	}

	// byte count
	if r.ByteCount != r.Defn.Bytes {
		return curated.Errorf("cpu: unexpected number of bytes read during decode (%d instead of %d)", r.ByteCount, r.Defn.Bytes)
	}

	// bugs can only be triggered by some addressing modes
	switch r.CPUBug {
	case NoBug:
	case JmpIndirectAddressingBug:
		if r.Defn.AddressingMode != instructions.Indirect {
			return curated.Errorf("cpu: %s reported for %s", r.CPUBug, r.Defn.AddressingMode)
		}
	case IndexedIndirectAddressingBug:
		if r.Defn.AddressingMode != instructions.IndexedIndirect {
			return curated.Errorf("cpu: %s reported for %s", r.CPUBug, r.Defn.AddressingMode)
		}
	case ZeroPageIndexBug:
		if r.Defn.AddressingMode != instructions.ZeroPageIndexedX && r.Defn.AddressingMode != instructions.ZeroPageIndexedY {
			return curated.Errorf("cpu: %s reported for %s", r.CPUBug, r.Defn.AddressingMode)
		}
	}

	return nil
}
