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

package disassembly

import (
	"fmt"
	"io"

	"github.com/jetsetilly/pim65/hardware/memory/cpubus"
)

// WriteAttr controls what is printed by the Write*() functions.
type WriteAttr struct {
	ByteCode bool
}

// Write a linear disassembly of count instructions, starting at origin, to
// io.Writer. Returns the address following the last instruction written.
func Write(output io.Writer, attr WriteAttr, mem cpubus.Memory, origin uint16, count int) (uint16, error) {
	address := origin
	for i := 0; i < count; i++ {
		e := Decode(mem, address)
		if err := WriteLine(output, attr, e); err != nil {
			return address, err
		}
		address += uint16(e.Bytes())
	}
	return address, nil
}

// WriteLine writes a single Entry to io.Writer.
func WriteLine(output io.Writer, attr WriteAttr, e Entry) error {
	var err error
	if attr.ByteCode {
		_, err = fmt.Fprintf(output, "$%04X: %-8s  %s\n", e.Address, e.BytecodeString(), e.String())
	} else {
		_, err = fmt.Fprintf(output, "$%04X: %s\n", e.Address, e.String())
	}
	return err
}
