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

package cpu_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jetsetilly/pim65/hardware/cpu"
	"github.com/jetsetilly/pim65/hardware/cpu/execution"
	"github.com/jetsetilly/pim65/hardware/cpu/registers"
	"github.com/jetsetilly/pim65/hardware/memory/cpubus"
	"github.com/jetsetilly/pim65/test"
)

const origin = uint16(0x0200)

func step(t *testing.T, mc *cpu.CPU) execution.Result {
	t.Helper()
	err := mc.Step()
	if err != nil {
		t.Fatal(err)
	}
	err = mc.LastResult.IsValid()
	if err != nil {
		t.Fatal(err)
	}
	return mc.LastResult
}

// prepare clears memory, places the program at the origin and resets the CPU.
func prepare(mc *cpu.CPU, mem *mockMem, program ...uint8) {
	mem.Clear()
	mem.putInstructions(origin, program...)
	mem.setVector(cpubus.Reset, origin)
	mc.Reset()
}

func testReset(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	mem.Clear()
	mem.setVector(cpubus.Reset, 0x1234)

	mc.A.Load(1)
	mc.X.Load(2)
	mc.Y.Load(3)
	mc.SP.Load(4)
	mc.Status.FromValue(0xff)

	mc.Reset()
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x1234))
	test.ExpectEquality(t, mc.A.Value(), uint8(0))
	test.ExpectEquality(t, mc.X.Value(), uint8(0))
	test.ExpectEquality(t, mc.Y.Value(), uint8(0))
	test.ExpectEquality(t, mc.SP.Value(), uint8(0xfd))
	test.ExpectEquality(t, mc.Status.Value(), registers.Unused|registers.InterruptDisable)
	test.ExpectEquality(t, mc.Status.String(), "nv-bdIzc")
	test.ExpectEquality(t, mc.InstructionCount, 0)
	test.ExpectEquality(t, mc.Halted, false)
	test.ExpectEquality(t, mc.Success, false)
}

func testFlagAccessors(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	prepare(mc, mem)

	test.ExpectEquality(t, mc.GetFlag(registers.InterruptDisable), true)
	test.ExpectEquality(t, mc.GetFlag(registers.Unused), true)
	test.ExpectEquality(t, mc.GetFlag(registers.Carry), false)

	mc.SetFlag(registers.Carry|registers.Negative, true)
	test.ExpectEquality(t, mc.Status.Carry, true)
	test.ExpectEquality(t, mc.Status.Negative, true)
	test.ExpectEquality(t, mc.GetFlag(registers.Carry|registers.Negative), true)

	mc.SetFlag(registers.Carry, false)
	test.ExpectEquality(t, mc.Status.Carry, false)
	test.ExpectEquality(t, mc.GetFlag(registers.Carry|registers.Negative), false)

	// the unused flag can never be cleared
	mc.SetFlag(registers.Unused, false)
	test.ExpectEquality(t, mc.GetFlag(registers.Unused), true)
}

func testStatusInstructions(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	// SEC; CLC; CLI; SEI; SED; CLD; CLV
	prepare(mc, mem, 0x38, 0x18, 0x58, 0x78, 0xf8, 0xd8, 0xb8)
	step(t, mc) // SEC
	test.ExpectEquality(t, mc.Status.String(), "nv-bdIzC")
	step(t, mc) // CLC
	test.ExpectEquality(t, mc.Status.String(), "nv-bdIzc")
	step(t, mc) // CLI
	test.ExpectEquality(t, mc.Status.String(), "nv-bdizc")
	step(t, mc) // SEI
	test.ExpectEquality(t, mc.Status.String(), "nv-bdIzc")
	step(t, mc) // SED
	test.ExpectEquality(t, mc.Status.String(), "nv-bDIzc")
	step(t, mc) // CLD
	test.ExpectEquality(t, mc.Status.String(), "nv-bdIzc")

	mc.Status.Overflow = true
	step(t, mc) // CLV
	test.ExpectEquality(t, mc.Status.String(), "nv-bdIzc")

	// PHP; PLP
	prepare(mc, mem, 0x08, 0x28)
	step(t, mc) // PHP
	test.ExpectEquality(t, mc.SP.Value(), uint8(0xfc))

	// the break and unused bits are set in the pushed value
	test.ExpectEquality(t, mem.internal[0x01fd], uint8(0x34))

	// mangle status register
	mc.Status.Negative = true
	mc.Status.Overflow = true

	// restore status register. the break flag is not restored
	step(t, mc) // PLP
	test.ExpectEquality(t, mc.SP.Value(), uint8(0xfd))
	test.ExpectEquality(t, mc.Status.String(), "nv-bdIzc")
}

func testRegisterArithmetic(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	// LDA immediate; ADC immediate; SEC; SBC immediate
	prepare(mc, mem, 0xa9, 1, 0x69, 10, 0x38, 0xe9, 8)
	step(t, mc) // LDA #1
	step(t, mc) // ADC #10
	test.ExpectEquality(t, mc.A.Value(), uint8(11))
	step(t, mc) // SEC
	step(t, mc) // SBC #8
	test.ExpectEquality(t, mc.A.Value(), uint8(3))
	test.ExpectEquality(t, mc.Status.Carry, true)

	// signed overflow
	// LDA #$7f; CLC; ADC #1
	prepare(mc, mem, 0xa9, 0x7f, 0x18, 0x69, 0x01)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x80))
	test.ExpectEquality(t, mc.Status.String(), "NV-bdIzc")

	// unsigned carry
	// LDA #$ff; CLC; ADC #1
	prepare(mc, mem, 0xa9, 0xff, 0x18, 0x69, 0x01)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x00))
	test.ExpectEquality(t, mc.Status.String(), "nv-bdIZC")

	// borrow
	// SEC; LDA #0; SBC #1
	prepare(mc, mem, 0x38, 0xa9, 0x00, 0xe9, 0x01)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), uint8(0xff))
	test.ExpectEquality(t, mc.Status.String(), "Nv-bdIzc")

	// decimal mode has no effect on arithmetic
	// SED; CLC; LDA #$09; ADC #$01
	prepare(mc, mem, 0xf8, 0x18, 0xa9, 0x09, 0x69, 0x01)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x0a))
}

func testRegisterBitwiseInstructions(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	// ORA immediate; EOR immediate; AND immediate
	prepare(mc, mem, 0x09, 0xff, 0x49, 0xf0, 0x29, 0x01,
		// ASL implied; LSR implied; LSR implied
		0x0a, 0x4a, 0x4a,
		// ROL implied; ROR implied; ROR implied; ROR implied
		0x2a, 0x6a, 0x6a, 0x6a)

	test.ExpectEquality(t, mc.A.Value(), uint8(0))
	step(t, mc) // ORA #$FF
	test.ExpectEquality(t, mc.A.Value(), uint8(255))
	step(t, mc) // EOR #$F0
	test.ExpectEquality(t, mc.A.Value(), uint8(15))
	step(t, mc) // AND #$01
	test.ExpectEquality(t, mc.A.Value(), uint8(1))

	step(t, mc) // ASL
	test.ExpectEquality(t, mc.A.Value(), uint8(2))
	test.ExpectEquality(t, mc.Status.String(), "nv-bdIzc")
	step(t, mc) // LSR
	test.ExpectEquality(t, mc.A.Value(), uint8(1))
	test.ExpectEquality(t, mc.Status.String(), "nv-bdIzc")
	step(t, mc) // LSR
	test.ExpectEquality(t, mc.A.Value(), uint8(0))
	test.ExpectEquality(t, mc.Status.String(), "nv-bdIZC")

	step(t, mc) // ROL
	test.ExpectEquality(t, mc.A.Value(), uint8(1))
	test.ExpectEquality(t, mc.Status.String(), "nv-bdIzc")
	step(t, mc) // ROR
	test.ExpectEquality(t, mc.A.Value(), uint8(0))
	test.ExpectEquality(t, mc.Status.String(), "nv-bdIZC")
	step(t, mc) // ROR
	test.ExpectEquality(t, mc.A.Value(), uint8(128))
	test.ExpectEquality(t, mc.Status.String(), "Nv-bdIzc")
	step(t, mc) // ROR
	test.ExpectEquality(t, mc.A.Value(), uint8(64))
	test.ExpectEquality(t, mc.Status.String(), "nv-bdIzc")
}

func testImmediateImplied(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	prepare(mc, mem,
		// LDX immediate; INX; DEX
		0xa2, 5, 0xe8, 0xca,
		// LDA immediate; PHA; LDA immediate; PLA
		0xa9, 5, 0x48, 0xa9, 0, 0x68,
		// TAX; TAY; LDX immediate; TXA; LDY immediate; TYA; INY; DEY
		0xaa, 0xa8, 0xa2, 1, 0x8a, 0xa0, 2, 0x98, 0xc8, 0x88,
		// TSX; LDX immediate; TXS
		0xba, 0xa2, 100, 0x9a)

	step(t, mc) // LDX #5
	test.ExpectEquality(t, mc.X.Value(), uint8(5))
	step(t, mc) // INX
	test.ExpectEquality(t, mc.X.Value(), uint8(6))
	step(t, mc) // DEX
	test.ExpectEquality(t, mc.X.Value(), uint8(5))
	test.ExpectEquality(t, mc.Status.String(), "nv-bdIzc")

	step(t, mc) // LDA #5
	step(t, mc) // PHA
	test.ExpectEquality(t, mc.SP.Value(), uint8(0xfc))
	step(t, mc) // LDA #0
	test.ExpectEquality(t, mc.A.Value(), uint8(0))
	test.ExpectEquality(t, mc.Status.Zero, true)
	step(t, mc) // PLA
	test.ExpectEquality(t, mc.A.Value(), uint8(5))
	test.ExpectEquality(t, mc.SP.Value(), uint8(0xfd))
	test.ExpectEquality(t, mc.Status.Zero, false)

	step(t, mc) // TAX
	test.ExpectEquality(t, mc.X.Value(), uint8(5))
	step(t, mc) // TAY
	test.ExpectEquality(t, mc.Y.Value(), uint8(5))
	step(t, mc) // LDX #1
	step(t, mc) // TXA
	test.ExpectEquality(t, mc.A.Value(), uint8(1))
	step(t, mc) // LDY #2
	step(t, mc) // TYA
	test.ExpectEquality(t, mc.A.Value(), uint8(2))
	step(t, mc) // INY
	test.ExpectEquality(t, mc.Y.Value(), uint8(3))
	step(t, mc) // DEY
	test.ExpectEquality(t, mc.Y.Value(), uint8(2))

	step(t, mc) // TSX
	test.ExpectEquality(t, mc.X.Value(), uint8(0xfd))
	test.ExpectEquality(t, mc.Status.Negative, true)
	step(t, mc) // LDX #100
	step(t, mc) // TXS
	test.ExpectEquality(t, mc.SP.Value(), uint8(100))
}

func testStackWrap(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	// LDA #$aa; PHA; PLA
	prepare(mc, mem, 0xa9, 0xaa, 0x48, 0x68)
	mc.SP.Load(0x00)
	step(t, mc)
	step(t, mc) // PHA
	test.ExpectEquality(t, mc.SP.Value(), uint8(0xff))
	test.ExpectEquality(t, mem.internal[0x0100], uint8(0xaa))
	step(t, mc) // PLA
	test.ExpectEquality(t, mc.SP.Value(), uint8(0x00))
}

func testAddressingModes(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	var r execution.Result

	// zero page
	prepare(mc, mem, 0xa5, 0x10)
	mem.internal[0x10] = 0x42
	step(t, mc) // LDA $10
	test.ExpectEquality(t, mc.A.Value(), uint8(0x42))

	// zero page,X wraps within the zero page
	prepare(mc, mem, 0xa2, 0x20, 0xb5, 0xf0)
	mem.internal[0x10] = 0x42
	step(t, mc)     // LDX #$20
	r = step(t, mc) // LDA $F0,X
	test.ExpectEquality(t, mc.A.Value(), uint8(0x42))
	test.ExpectEquality(t, r.CPUBug, execution.ZeroPageIndexBug)

	// zero page,Y
	prepare(mc, mem, 0xa0, 0x01, 0xb6, 0x0f)
	mem.internal[0x10] = 0x42
	step(t, mc)     // LDY #1
	r = step(t, mc) // LDX $0F,Y
	test.ExpectEquality(t, mc.X.Value(), uint8(0x42))
	test.ExpectEquality(t, r.CPUBug, execution.NoBug)

	// absolute
	prepare(mc, mem, 0xad, 0x34, 0x12)
	mem.internal[0x1234] = 0x99
	r = step(t, mc) // LDA $1234
	test.ExpectEquality(t, mc.A.Value(), uint8(0x99))
	test.ExpectEquality(t, mc.Status.Negative, true)
	test.ExpectEquality(t, r.InstructionData, uint16(0x1234))

	// absolute,X
	prepare(mc, mem, 0xa2, 0x04, 0xbd, 0x30, 0x12)
	mem.internal[0x1234] = 0x99
	step(t, mc) // LDX #4
	step(t, mc) // LDA $1230,X
	test.ExpectEquality(t, mc.A.Value(), uint8(0x99))

	// absolute,Y wraps at the top of memory
	prepare(mc, mem, 0xa0, 0x04, 0xb9, 0xfe, 0xff)
	mem.internal[0x0002] = 0x77
	step(t, mc) // LDY #4
	step(t, mc) // LDA $FFFE,Y
	test.ExpectEquality(t, mc.A.Value(), uint8(0x77))

	// indexed indirect
	prepare(mc, mem, 0xa2, 0x04, 0xa1, 0x1c)
	mem.internal[0x20] = 0x34
	mem.internal[0x21] = 0x12
	mem.internal[0x1234] = 0x99
	step(t, mc)     // LDX #4
	r = step(t, mc) // LDA ($1C,X)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x99))
	test.ExpectEquality(t, r.CPUBug, execution.NoBug)

	// indexed indirect with the pointer wrapping within the zero page
	prepare(mc, mem, 0xa2, 0x10, 0xa1, 0xf0)
	mem.internal[0x00] = 0x34
	mem.internal[0x01] = 0x12
	mem.internal[0x1234] = 0x99
	step(t, mc)     // LDX #$10
	r = step(t, mc) // LDA ($F0,X)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x99))
	test.ExpectEquality(t, r.CPUBug, execution.IndexedIndirectAddressingBug)

	// indirect indexed
	prepare(mc, mem, 0xa0, 0x04, 0xb1, 0x30)
	mem.internal[0x30] = 0x30
	mem.internal[0x31] = 0x12
	mem.internal[0x1234] = 0x99
	step(t, mc) // LDY #4
	step(t, mc) // LDA ($30),Y
	test.ExpectEquality(t, mc.A.Value(), uint8(0x99))

	// indirect indexed with the pointer on the last byte of the zero page. the
	// high byte of the pointer is read from $00
	prepare(mc, mem, 0xa0, 0x04, 0xb1, 0xff)
	mem.internal[0xff] = 0x30
	mem.internal[0x00] = 0x12
	mem.internal[0x1234] = 0x99
	step(t, mc) // LDY #4
	step(t, mc) // LDA ($FF),Y
	test.ExpectEquality(t, mc.A.Value(), uint8(0x99))
}

func testStoresAndRMW(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	// LDA #$42; STA $C010; LDX #$43; STX $11; LDY #$44; STY $12
	prepare(mc, mem, 0xa9, 0x42, 0x8d, 0x10, 0xc0, 0xa2, 0x43, 0x86, 0x11, 0xa0, 0x44, 0x84, 0x12)
	for i := 0; i < 6; i++ {
		step(t, mc)
	}
	test.ExpectEquality(t, mem.internal[0xc010], uint8(0x42))
	test.ExpectEquality(t, mem.internal[0x11], uint8(0x43))
	test.ExpectEquality(t, mem.internal[0x12], uint8(0x44))

	// store instructions never read the target address
	test.ExpectEquality(t, mem.reads[0xc010], 0)

	// INC $10; DEC $10; DEC $10
	prepare(mc, mem, 0xe6, 0x10, 0xc6, 0x10, 0xc6, 0x10)
	mem.internal[0x10] = 0xff
	step(t, mc) // INC $10
	test.ExpectEquality(t, mem.internal[0x10], uint8(0x00))
	test.ExpectEquality(t, mc.Status.Zero, true)
	step(t, mc) // DEC $10
	test.ExpectEquality(t, mem.internal[0x10], uint8(0xff))
	test.ExpectEquality(t, mc.Status.Negative, true)
	step(t, mc) // DEC $10
	test.ExpectEquality(t, mem.internal[0x10], uint8(0xfe))

	// ASL $10; ROL $10; LSR $10; ROR $10
	prepare(mc, mem, 0x06, 0x10, 0x26, 0x10, 0x46, 0x10, 0x66, 0x10)
	mem.internal[0x10] = 0x81
	step(t, mc) // ASL $10
	test.ExpectEquality(t, mem.internal[0x10], uint8(0x02))
	test.ExpectEquality(t, mc.Status.Carry, true)
	step(t, mc) // ROL $10
	test.ExpectEquality(t, mem.internal[0x10], uint8(0x05))
	test.ExpectEquality(t, mc.Status.Carry, false)
	step(t, mc) // LSR $10
	test.ExpectEquality(t, mem.internal[0x10], uint8(0x02))
	test.ExpectEquality(t, mc.Status.Carry, true)
	step(t, mc) // ROR $10
	test.ExpectEquality(t, mem.internal[0x10], uint8(0x81))
	test.ExpectEquality(t, mc.Status.Carry, false)
	test.ExpectEquality(t, mc.Status.Negative, true)

	// the accumulator is unaffected by the memory forms
	test.ExpectEquality(t, mc.A.Value(), uint8(0))
}

func testCompareAndBit(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	// LDA #$40; CMP #$40; CMP #$41; CMP #$3f
	prepare(mc, mem, 0xa9, 0x40, 0xc9, 0x40, 0xc9, 0x41, 0xc9, 0x3f)
	step(t, mc)
	step(t, mc) // CMP #$40
	test.ExpectEquality(t, mc.Status.String(), "nv-bdIZC")
	step(t, mc) // CMP #$41
	test.ExpectEquality(t, mc.Status.String(), "Nv-bdIzc")
	step(t, mc) // CMP #$3f
	test.ExpectEquality(t, mc.Status.String(), "nv-bdIzC")
	test.ExpectEquality(t, mc.A.Value(), uint8(0x40))

	// LDX #$10; CPX #$20; LDY #$20; CPY #$10
	prepare(mc, mem, 0xa2, 0x10, 0xe0, 0x20, 0xa0, 0x20, 0xc0, 0x10)
	step(t, mc)
	step(t, mc) // CPX #$20
	test.ExpectEquality(t, mc.Status.Carry, false)
	step(t, mc)
	step(t, mc) // CPY #$10
	test.ExpectEquality(t, mc.Status.Carry, true)
	test.ExpectEquality(t, mc.Status.Zero, false)

	// LDA #$01; BIT $10; BIT $11
	prepare(mc, mem, 0xa9, 0x01, 0x24, 0x10, 0x2c, 0x11, 0x00)
	mem.internal[0x10] = 0xc0
	mem.internal[0x11] = 0x01
	step(t, mc)
	step(t, mc) // BIT $10
	test.ExpectEquality(t, mc.Status.String(), "NV-bdIZc")
	step(t, mc) // BIT $0011
	test.ExpectEquality(t, mc.Status.String(), "nv-bdIzc")
	test.ExpectEquality(t, mc.A.Value(), uint8(0x01))
}

func testBranches(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	// LDA #0; BEQ +2; NOP; NOP; BNE -2
	prepare(mc, mem, 0xa9, 0x00, 0xf0, 0x02, 0xea, 0xea, 0xd0, 0xfe)
	step(t, mc)
	r := step(t, mc) // BEQ
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0206))
	test.ExpectEquality(t, r.InstructionData, uint16(0x02))
	step(t, mc) // BNE not taken
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0208))

	// LDX #2; DEX; BNE $0202
	prepare(mc, mem, 0xa2, 0x02, 0xca, 0xd0, 0xfd)
	step(t, mc) // LDX #2
	step(t, mc) // DEX
	step(t, mc) // BNE taken
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0202))
	step(t, mc) // DEX
	step(t, mc) // BNE not taken
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0205))
	test.ExpectEquality(t, mc.X.Value(), uint8(0))

	// the remaining branch instructions with their flag conditions
	type branch struct {
		opcode uint8
		flag   uint8
		set    bool
	}
	branches := []branch{
		{0x90, registers.Carry, false},    // BCC
		{0xb0, registers.Carry, true},     // BCS
		{0x30, registers.Negative, true},  // BMI
		{0x10, registers.Negative, false}, // BPL
		{0x50, registers.Overflow, false}, // BVC
		{0x70, registers.Overflow, true},  // BVS
	}
	for _, b := range branches {
		prepare(mc, mem, b.opcode, 0x10)
		mc.SetFlag(b.flag, b.set)
		step(t, mc)
		test.ExpectEquality(t, mc.PC.Address(), uint16(0x0212), fmt.Sprintf("%02x taken", b.opcode))

		prepare(mc, mem, b.opcode, 0x10)
		mc.SetFlag(b.flag, !b.set)
		step(t, mc)
		test.ExpectEquality(t, mc.PC.Address(), uint16(0x0202), fmt.Sprintf("%02x not taken", b.opcode))
	}
}

func testJumps(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	// JMP absolute
	prepare(mc, mem, 0x4c, 0x00, 0x30)
	step(t, mc)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x3000))

	// JMP indirect
	prepare(mc, mem, 0x6c, 0x00, 0x30)
	mem.internal[0x3000] = 0x00
	mem.internal[0x3001] = 0x40
	r := step(t, mc)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x4000))
	test.ExpectEquality(t, r.CPUBug, execution.NoBug)

	// JMP indirect with the pointer on a page boundary. the high byte is read
	// from the start of the same page
	prepare(mc, mem, 0x6c, 0xff, 0x30)
	mem.internal[0x30ff] = 0x00
	mem.internal[0x3000] = 0x40
	mem.internal[0x3100] = 0x50
	r = step(t, mc)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x4000))
	test.ExpectEquality(t, r.CPUBug, execution.JmpIndirectAddressingBug)
}

func testSubroutines(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	mem.Clear()
	mem.setVector(cpubus.Reset, 0x1000)
	mem.putInstructions(0x1000, 0x20, 0x00, 0x20) // JSR $2000
	mem.putInstructions(0x2000, 0x60)             // RTS
	mc.Reset()

	step(t, mc) // JSR
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x2000))
	test.ExpectEquality(t, mc.SP.Value(), uint8(0xfb))

	// the pushed address is the address of the last byte of the JSR
	test.ExpectEquality(t, mem.internal[0x01fd], uint8(0x10))
	test.ExpectEquality(t, mem.internal[0x01fc], uint8(0x02))

	step(t, mc) // RTS
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x1003))
	test.ExpectEquality(t, mc.SP.Value(), uint8(0xfd))
}

func testInterrupts(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	// CLI; BRK; signature byte
	prepare(mc, mem, 0x58, 0x00, 0xea)
	mem.setVector(cpubus.IRQ, 0x3000)
	mem.putInstructions(0x3000, 0x40) // RTI

	step(t, mc) // CLI
	step(t, mc) // BRK
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x3000))
	test.ExpectEquality(t, mc.Status.InterruptDisable, true)
	test.ExpectEquality(t, mc.SP.Value(), uint8(0xfa))

	// the return address skips the signature byte. the pushed status has the
	// break flag set
	test.ExpectEquality(t, mem.internal[0x01fd], uint8(0x02))
	test.ExpectEquality(t, mem.internal[0x01fc], uint8(0x03))
	test.ExpectEquality(t, mem.internal[0x01fb], uint8(0x30))

	step(t, mc) // RTI
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0203))
	test.ExpectEquality(t, mc.SP.Value(), uint8(0xfd))
	test.ExpectEquality(t, mc.Status.String(), "nv-bdizc")

	// a status byte with every bit set. the break flag is discarded by RTI and
	// the unused flag always reads as set
	prepare(mc, mem, 0x40) // RTI
	mc.Push(0x20)
	mc.Push(0x00)
	mc.Push(0xff)

	step(t, mc) // RTI
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x2000))
	test.ExpectEquality(t, mc.SP.Value(), uint8(0xfd))
	test.ExpectEquality(t, mc.Status.Break, false)
	test.ExpectEquality(t, mc.Status.Negative, true)
	test.ExpectEquality(t, mc.Status.Overflow, true)
	test.ExpectEquality(t, mc.Status.Carry, true)
	test.ExpectEquality(t, mc.Status.Value()&registers.Unused, registers.Unused)
	test.ExpectEquality(t, mc.Status.Value(), uint8(0xef))
	test.ExpectEquality(t, mc.Status.String(), "NV-bDIZC")
}

func testBrkAbort(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	defer mc.SetBrkAbort(false)
	mc.SetBrkAbort(true)

	// LDA #$42; BRK; $00
	prepare(mc, mem, 0xa9, 0x42, 0x00, 0x00)
	step(t, mc)
	err := mc.Step()
	test.DemandFailure(t, err)

	var abort cpu.BrkAbort
	test.DemandEquality(t, errors.As(err, &abort), true)
	test.ExpectEquality(t, abort.PC, uint16(0x0202))
	test.ExpectEquality(t, abort.Registers.A, uint8(0x42))
	test.ExpectEquality(t, abort.Registers.SP, uint8(0xfd))
	test.ExpectEquality(t, mc.InstructionCount, 1)

	// nothing has been pushed
	test.ExpectEquality(t, mc.SP.Value(), uint8(0xfd))

	// BRK followed by a non-zero byte is taken as normal
	prepare(mc, mem, 0x00, 0x01)
	mem.setVector(cpubus.IRQ, 0x3000)
	step(t, mc)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x3000))
}

func testInvalidOpcode(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	defer mc.SetTrace(false)
	mc.SetTrace(true)

	prepare(mc, mem, 0x02)
	err := mc.Step()
	test.DemandFailure(t, err)

	var invalid cpu.InvalidOpcode
	test.DemandEquality(t, errors.As(err, &invalid), true)
	test.ExpectEquality(t, invalid, cpu.InvalidOpcode{PC: 0x0200, Opcode: 0x02})
	test.ExpectEquality(t, err.Error(), "cpu: invalid opcode $02 at $0200")
	test.ExpectEquality(t, mc.InstructionCount, 0)

	// invalid opcodes are not traced
	test.ExpectEquality(t, len(mc.Trace()), 0)
}

func testPCHooks(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	mem.Clear()
	mem.setVector(cpubus.Reset, 0x0300)
	mem.putInstructions(0x0300, 0x20, 0x00, 0x02, 0xea) // JSR $0200; NOP

	// the byte at the hooked address would be an invalid opcode if it was
	// ever executed
	mem.putInstructions(0x0200, 0x02)

	mc.AddPCHook(0x0200, func() error {
		mc.A.Load(0x55)
		mc.Return()
		return nil
	})
	defer mc.RemovePCHook(0x0200)

	mc.Reset()
	step(t, mc) // JSR
	r := step(t, mc)
	test.ExpectEquality(t, r.Hooked, true)
	test.ExpectEquality(t, r.Address, uint16(0x0200))
	test.ExpectEquality(t, mc.A.Value(), uint8(0x55))
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0303))
	test.ExpectEquality(t, mc.InstructionCount, 2)

	// errors from the hook are returned by Step() and the hook is not counted
	hookErr := errors.New("hook failure")
	mc.AddPCHook(0x0303, func() error {
		return hookErr
	})
	defer mc.RemovePCHook(0x0303)
	err := mc.Step()
	test.ExpectEquality(t, errors.Is(err, hookErr), true)
	test.ExpectEquality(t, mc.InstructionCount, 2)
}

func TestCPU(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)

	testReset(t, mc, mem)
	testFlagAccessors(t, mc, mem)
	testStatusInstructions(t, mc, mem)
	testRegisterArithmetic(t, mc, mem)
	testRegisterBitwiseInstructions(t, mc, mem)
	testImmediateImplied(t, mc, mem)
	testStackWrap(t, mc, mem)
	testAddressingModes(t, mc, mem)
	testStoresAndRMW(t, mc, mem)
	testCompareAndBit(t, mc, mem)
	testBranches(t, mc, mem)
	testJumps(t, mc, mem)
	testSubroutines(t, mc, mem)
	testInterrupts(t, mc, mem)
	testBrkAbort(t, mc, mem)
	testInvalidOpcode(t, mc, mem)
	testPCHooks(t, mc, mem)
}
