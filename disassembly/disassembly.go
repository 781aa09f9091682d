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
	"strings"

	"github.com/jetsetilly/pim65/hardware/cpu/instructions"
	"github.com/jetsetilly/pim65/hardware/memory/cpubus"
)

// the table is shared by all calls to Decode()
var definitions = instructions.GetDefinitions()

// Entry is a single disassembled instruction.
type Entry struct {
	Address uint16

	// nil if the opcode at Address is not a documented 6502 instruction
	Defn *instructions.Definition

	// the raw bytes of the instruction
	Bytecode []uint8

	Operator string
	Operand  string
}

// Bytes returns the number of bytes occupied by the instruction. An invalid
// opcode occupies a single byte.
func (e Entry) Bytes() int {
	return len(e.Bytecode)
}

// String returns the operator and operand of the entry, separated by a space.
func (e Entry) String() string {
	if e.Defn == nil {
		return fmt.Sprintf("%s  %s", e.Operator, e.Operand)
	}
	if e.Operand == "" {
		return e.Operator
	}
	return fmt.Sprintf("%s %s", e.Operator, e.Operand)
}

// BytecodeString returns the raw bytes of the instruction as a space
// separated string of hex values.
func (e Entry) BytecodeString() string {
	s := strings.Builder{}
	for i, b := range e.Bytecode {
		if i > 0 {
			s.WriteRune(' ')
		}
		s.WriteString(fmt.Sprintf("%02X", b))
	}
	return s.String()
}

// Decode the instruction at the specified address.
func Decode(mem cpubus.Memory, address uint16) Entry {
	opcode := mem.Read(address)
	e := Entry{
		Address:  address,
		Bytecode: []uint8{opcode},
	}

	defn := definitions[opcode]
	if defn == nil {
		e.Operator = "???"
		e.Operand = fmt.Sprintf("($%02X)", opcode)
		return e
	}
	e.Defn = defn
	e.Operator = defn.Operator.String()

	// operand bytes. addition wraps at the top of memory
	var lo, hi uint8
	if defn.Bytes > 1 {
		lo = mem.Read(address + 1)
		e.Bytecode = append(e.Bytecode, lo)
	}
	if defn.Bytes > 2 {
		hi = mem.Read(address + 2)
		e.Bytecode = append(e.Bytecode, hi)
	}
	word := uint16(hi)<<8 | uint16(lo)

	switch defn.AddressingMode {
	case instructions.Implied:
		if defn.UsesAccumulator() {
			e.Operand = "A"
		}
	case instructions.Immediate:
		e.Operand = fmt.Sprintf("#$%02X", lo)
	case instructions.Relative:
		// branch target is relative to the address of the following instruction
		target := address + 2 + uint16(int8(lo))
		e.Operand = fmt.Sprintf("$%04X", target)
	case instructions.ZeroPage:
		e.Operand = fmt.Sprintf("$%02X", lo)
	case instructions.ZeroPageIndexedX:
		e.Operand = fmt.Sprintf("$%02X,X", lo)
	case instructions.ZeroPageIndexedY:
		e.Operand = fmt.Sprintf("$%02X,Y", lo)
	case instructions.Absolute:
		e.Operand = fmt.Sprintf("$%04X", word)
	case instructions.AbsoluteIndexedX:
		e.Operand = fmt.Sprintf("$%04X,X", word)
	case instructions.AbsoluteIndexedY:
		e.Operand = fmt.Sprintf("$%04X,Y", word)
	case instructions.Indirect:
		e.Operand = fmt.Sprintf("($%04X)", word)
	case instructions.IndexedIndirect:
		e.Operand = fmt.Sprintf("($%02X,X)", lo)
	case instructions.IndirectIndexed:
		e.Operand = fmt.Sprintf("($%02X),Y", lo)
	}

	return e
}

// Disassemble the instruction at the specified address. Returns the textual
// form of the instruction and the number of bytes it occupies.
func Disassemble(mem cpubus.Memory, address uint16) (string, int) {
	e := Decode(mem, address)
	return e.String(), e.Bytes()
}
