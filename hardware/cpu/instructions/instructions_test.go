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

package instructions_test

import (
	"testing"

	"github.com/jetsetilly/pim65/hardware/cpu/instructions"
	"github.com/jetsetilly/pim65/test"
)

func TestTable(t *testing.T) {
	defs := instructions.GetDefinitions()
	test.DemandEquality(t, len(defs), 256)

	var count int
	for i, defn := range defs {
		if defn == nil {
			continue
		}
		count++

		// table is indexed by opcode
		test.ExpectEquality(t, int(defn.OpCode), i)

		// length of instruction agrees with the addressing mode
		test.ExpectEquality(t, defn.Bytes, defn.AddressingMode.Bytes(), defn)
	}

	// the documented instruction set
	test.ExpectEquality(t, count, 151)

	// a selection of undocumented opcodes are not in the table
	for _, op := range []uint8{0x02, 0x03, 0x1a, 0x80, 0xff} {
		test.ExpectSuccess(t, defs[op] == nil, op)
	}
}

func TestAccumulatorForms(t *testing.T) {
	defs := instructions.GetDefinitions()

	var count int
	for _, defn := range defs {
		if defn != nil && defn.UsesAccumulator() {
			count++
		}
	}
	test.ExpectEquality(t, count, 4)

	test.ExpectSuccess(t, defs[0x0a].UsesAccumulator())
	test.ExpectSuccess(t, defs[0x4a].UsesAccumulator())
	test.ExpectSuccess(t, defs[0x2a].UsesAccumulator())
	test.ExpectSuccess(t, defs[0x6a].UsesAccumulator())
	test.ExpectFailure(t, defs[0xe8].UsesAccumulator())
}

func TestBranches(t *testing.T) {
	defs := instructions.GetDefinitions()
	for _, op := range []uint8{0x10, 0x30, 0x50, 0x70, 0x90, 0xb0, 0xd0, 0xf0} {
		test.ExpectSuccess(t, defs[op].IsBranch(), op)
	}
	test.ExpectFailure(t, defs[0x4c].IsBranch())
}

func TestOperators(t *testing.T) {
	op, ok := instructions.LookupOperator("lda")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, op, instructions.Lda)
	test.ExpectEquality(t, op.String(), "LDA")
	test.ExpectEquality(t, op.Identifier(), "Lda")

	_, ok = instructions.LookupOperator("XYZ")
	test.ExpectFailure(t, ok)
}
