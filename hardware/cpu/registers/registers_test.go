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

package registers_test

import (
	"testing"

	"github.com/jetsetilly/pim65/hardware/cpu/registers"
	"github.com/jetsetilly/pim65/test"
)

func TestRegister(t *testing.T) {
	var carry, overflow bool

	// initialisation
	r8 := registers.NewRegister(0, "test")
	test.ExpectSuccess(t, r8.IsZero())
	test.ExpectEquality(t, r8.Value(), 0)
	test.ExpectEquality(t, r8.String(), "test=$00")

	// loading & addition
	r8.Load(127)
	test.ExpectEquality(t, r8.Value(), 127)
	carry, overflow = r8.Add(2, false)
	test.ExpectEquality(t, r8.Value(), 129)
	test.ExpectFailure(t, carry)
	test.ExpectSuccess(t, overflow)

	// addition boundary
	r8.Load(255)
	test.ExpectSuccess(t, r8.IsNegative())
	carry, overflow = r8.Add(1, false)
	test.ExpectSuccess(t, carry)
	test.ExpectFailure(t, overflow)
	test.ExpectSuccess(t, r8.IsZero())

	// addition boundary with carry
	r8.Load(254)
	carry, overflow = r8.Add(1, true)
	test.ExpectSuccess(t, carry)
	test.ExpectFailure(t, overflow)
	test.ExpectSuccess(t, r8.IsZero())

	r8.Load(255)
	carry, overflow = r8.Add(1, true)
	test.ExpectSuccess(t, carry)
	test.ExpectFailure(t, overflow)
	test.ExpectEquality(t, r8.Value(), 1)

	// adding zero with carry set from a value of 0xff carries
	r8.Load(0xff)
	carry, _ = r8.Add(0, true)
	test.ExpectSuccess(t, carry)
	test.ExpectEquality(t, r8.Value(), 0)

	// subtraction
	r8.Load(11)
	carry, _ = r8.Subtract(1, true)
	test.ExpectEquality(t, r8.Value(), 10)
	test.ExpectSuccess(t, carry)

	r8.Load(12)
	r8.Subtract(1, false)
	test.ExpectEquality(t, r8.Value(), 10)

	r8.Load(0x01)
	carry, _ = r8.Subtract(0x06, false)
	test.ExpectEquality(t, r8.Value(), 0xfa)
	test.ExpectFailure(t, carry)

	// subtract on boundary
	r8.Load(0)
	carry, _ = r8.Subtract(1, true)
	test.ExpectEquality(t, r8.Value(), 255)
	test.ExpectFailure(t, carry)
	r8.Load(1)
	r8.Subtract(1, false)
	test.ExpectEquality(t, r8.Value(), 255)
	r8.Load(1)
	r8.Subtract(2, true)
	test.ExpectEquality(t, r8.Value(), 255)

	// subtraction overflow: -128 - 1 = +127
	r8.Load(0x80)
	carry, overflow = r8.Subtract(1, true)
	test.ExpectEquality(t, r8.Value(), 0x7f)
	test.ExpectSuccess(t, carry)
	test.ExpectSuccess(t, overflow)

	// logical operators
	r8.Load(0x21)
	r8.AND(0x01)
	test.ExpectEquality(t, r8.Value(), 0x01)
	r8.EOR(0xff)
	test.ExpectEquality(t, r8.Value(), 0xfe)
	r8.ORA(0x1)
	test.ExpectEquality(t, r8.Value(), 0xff)

	// shifts
	carry = r8.ASL()
	test.ExpectEquality(t, r8.Value(), 0xfe)
	test.ExpectSuccess(t, carry)
	carry = r8.LSR()
	test.ExpectEquality(t, r8.Value(), 0x7f)
	test.ExpectFailure(t, carry)
	carry = r8.LSR()
	test.ExpectSuccess(t, carry)

	// rotation
	r8.Load(0xff)
	carry = r8.ROL(false)
	test.ExpectEquality(t, r8.Value(), 0xfe)
	test.ExpectSuccess(t, carry)
	carry = r8.ROR(true)
	test.ExpectEquality(t, r8.Value(), 0xff)
	test.ExpectFailure(t, carry)
}

// exhaustive test of the signed overflow and carry rules. the reference
// results are computed with signed and unsigned integer arithmetic.
func TestArithmeticLaw(t *testing.T) {
	for a := 0; a <= 0xff; a++ {
		for m := 0; m <= 0xff; m++ {
			for _, c := range []bool{false, true} {
				ci := 0
				if c {
					ci = 1
				}

				r := registers.NewRegister(uint8(a), "A")
				carry, overflow := r.Add(uint8(m), c)

				sum := a + m + ci
				signed := int(int8(a)) + int(int8(m)) + ci
				if !test.ExpectEquality(t, r.Value(), uint8(sum), "ADC", a, m, c) ||
					!test.ExpectEquality(t, carry, sum > 0xff, "ADC carry", a, m, c) ||
					!test.ExpectEquality(t, overflow, signed < -128 || signed > 127, "ADC overflow", a, m, c) {
					return
				}

				r = registers.NewRegister(uint8(a), "A")
				carry, overflow = r.Subtract(uint8(m), c)

				diff := a - m - (1 - ci)
				signed = int(int8(a)) - int(int8(m)) - (1 - ci)
				if !test.ExpectEquality(t, r.Value(), uint8(diff), "SBC", a, m, c) ||
					!test.ExpectEquality(t, carry, diff >= 0, "SBC carry", a, m, c) ||
					!test.ExpectEquality(t, overflow, signed < -128 || signed > 127, "SBC overflow", a, m, c) {
					return
				}
			}
		}
	}
}

func TestCompare(t *testing.T) {
	r8 := registers.NewRegister(0x10, "X")

	res, carry := r8.Compare(0x10)
	test.ExpectEquality(t, res, 0)
	test.ExpectSuccess(t, carry)

	res, carry = r8.Compare(0x20)
	test.ExpectEquality(t, res, 0xf0)
	test.ExpectFailure(t, carry)

	// register is unchanged
	test.ExpectEquality(t, r8.Value(), 0x10)
}

func TestProgramCounter(t *testing.T) {
	pc := registers.NewProgramCounter(0)
	test.ExpectEquality(t, pc.Address(), 0)

	pc.Load(127)
	test.ExpectEquality(t, pc.Address(), 127)
	pc.Add(2)
	test.ExpectEquality(t, pc.Address(), 129)

	pc.Load(0xffff)
	pc.Add(2)
	test.ExpectEquality(t, pc.Address(), 0x0001)

	pc.Load(0x1000)
	pc.AddSigned(-2)
	test.ExpectEquality(t, pc.Address(), 0x0ffe)
	pc.AddSigned(0x7f)
	test.ExpectEquality(t, pc.Address(), 0x107d)
	test.ExpectEquality(t, pc.String(), "$107D")
}

func TestStatusRegister(t *testing.T) {
	var sr registers.StatusRegister

	sr.Reset()
	test.ExpectEquality(t, sr.String(), "nv-bdIzc")
	test.ExpectEquality(t, sr.Value(), registers.Unused|registers.InterruptDisable)

	sr.FromValue(0xff)
	test.ExpectEquality(t, sr.String(), "NV-BDIZC")
	test.ExpectEquality(t, sr.Value(), 0xff)

	// the unused bit is always set
	sr.FromValue(0x00)
	test.ExpectEquality(t, sr.Value(), 0x20)
	test.ExpectEquality(t, sr.String(), "nv-bdizc")
}
