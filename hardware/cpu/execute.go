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
	"github.com/jetsetilly/pim65/hardware/cpu/execution"
	"github.com/jetsetilly/pim65/hardware/cpu/instructions"
	"github.com/jetsetilly/pim65/hardware/cpu/registers"
	"github.com/jetsetilly/pim65/hardware/memory/cpubus"
	"github.com/jetsetilly/pim65/logger"
)

// Step executes a single instruction, or calls the PC hook registered for the
// current PC. Does nothing if the CPU has halted.
//
// If the PC is at the success address the CPU halts without fetching an
// instruction and the InstructionCount is unchanged.
//
// Errors are InvalidOpcode, BrkAbort or whatever error is returned by a PC
// hook.
func (mc *CPU) Step() error {
	if mc.Halted {
		return nil
	}

	if mc.PC.Address() == cpubus.Success {
		mc.Halted = true
		mc.Success = true
		logger.Logf(logger.Allow, "cpu", "success after %d instructions", mc.InstructionCount)
		return nil
	}

	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()

	if hook, ok := mc.pcHooks[mc.PC.Address()]; ok {
		mc.LastResult.Hooked = true
		if err := hook(); err != nil {
			return err
		}
		mc.InstructionCount++
		return nil
	}

	opcode := mc.read8BitPC()
	defn := mc.instructions[opcode]
	if defn == nil {
		return InvalidOpcode{PC: mc.LastResult.Address, Opcode: opcode}
	}
	mc.LastResult.Defn = defn

	if mc.tracing {
		mc.appendTrace(mc.LastResult.Address)
	}

	if err := mc.execute(defn); err != nil {
		return err
	}

	mc.LastResult.Final = true
	mc.InstructionCount++

	return nil
}

// resolve the effective address for the addressing mode of the instruction.
// the PC is advanced past the operand. for immediate addressing the effective
// address is the address of the operand itself. for relative addressing it is
// the branch target.
func (mc *CPU) resolve(defn *instructions.Definition) uint16 {
	var address uint16

	switch defn.AddressingMode {
	case instructions.Implied:

	case instructions.Immediate:
		address = mc.PC.Address()
		mc.read8BitPC()

	case instructions.Relative:
		offset := mc.read8BitPC()
		mc.LastResult.InstructionData = uint16(offset)

		// the offset is relative to the address of the following instruction
		pc := mc.PC
		pc.AddSigned(int8(offset))
		address = pc.Address()

	case instructions.ZeroPage:
		address = uint16(mc.read8BitPC())
		mc.LastResult.InstructionData = address

	case instructions.ZeroPageIndexedX:
		zp := mc.read8BitPC()
		mc.LastResult.InstructionData = uint16(zp)
		address = uint16(zp + mc.X.Value())
		if uint16(zp)+mc.X.Address() > 0xff {
			mc.LastResult.CPUBug = execution.ZeroPageIndexBug
		}

	case instructions.ZeroPageIndexedY:
		zp := mc.read8BitPC()
		mc.LastResult.InstructionData = uint16(zp)
		address = uint16(zp + mc.Y.Value())
		if uint16(zp)+mc.Y.Address() > 0xff {
			mc.LastResult.CPUBug = execution.ZeroPageIndexBug
		}

	case instructions.Absolute:
		address = mc.read16BitPC()
		mc.LastResult.InstructionData = address

	case instructions.AbsoluteIndexedX:
		address = mc.read16BitPC()
		mc.LastResult.InstructionData = address
		address += mc.X.Address()

	case instructions.AbsoluteIndexedY:
		address = mc.read16BitPC()
		mc.LastResult.InstructionData = address
		address += mc.Y.Address()

	case instructions.Indirect:
		indirect := mc.read16BitPC()
		mc.LastResult.InstructionData = indirect

		// the high byte of the pointer is not incremented when reading the
		// high byte of the address. if the pointer is on a page boundary, the
		// high byte is read from the start of the same page
		lo := mc.mem.Read(indirect)
		hi := mc.mem.Read((indirect & 0xff00) | ((indirect + 1) & 0x00ff))
		address = uint16(hi)<<8 | uint16(lo)
		if indirect&0x00ff == 0x00ff {
			mc.LastResult.CPUBug = execution.JmpIndirectAddressingBug
			logger.Logf(logger.Allow, "cpu", "%s at $%04X", mc.LastResult.CPUBug, mc.LastResult.Address)
		}

	case instructions.IndexedIndirect:
		zp := mc.read8BitPC()
		mc.LastResult.InstructionData = uint16(zp)
		ptr := zp + mc.X.Value()
		if uint16(zp)+mc.X.Address() > 0xff {
			mc.LastResult.CPUBug = execution.IndexedIndirectAddressingBug
		}
		address = mc.read16BitZeroPage(ptr)

	case instructions.IndirectIndexed:
		zp := mc.read8BitPC()
		mc.LastResult.InstructionData = uint16(zp)
		address = mc.read16BitZeroPage(zp) + mc.Y.Address()
	}

	return address
}

// the operand for read and RMW instructions. for the accumulator forms of the
// shift instructions the operand is the accumulator.
func (mc *CPU) operand(defn *instructions.Definition, address uint16) uint8 {
	if defn.UsesAccumulator() {
		return mc.A.Value()
	}
	return mc.mem.Read(address)
}

// store the result of an RMW instruction.
func (mc *CPU) store(defn *instructions.Definition, address uint16, v uint8) {
	if defn.UsesAccumulator() {
		mc.A.Load(v)
	} else {
		mc.mem.Write(address, v)
	}
	mc.updateNZ(v)
}

func (mc *CPU) branch(condition bool, address uint16) {
	if condition {
		mc.PC.Load(address)
	}
}

func (mc *CPU) compare(r registers.Register, v uint8) {
	result, carry := r.Compare(v)
	mc.Status.Carry = carry
	mc.updateNZ(result)
}

func (mc *CPU) pullStatus() {
	// the break flag has no storage in the status register. the unused flag is
	// always set
	mc.Status.FromValue((mc.Pull() | registers.Unused) &^ registers.Break)
}

// execute the instruction. the opcode has already been read.
func (mc *CPU) execute(defn *instructions.Definition) error {
	address := mc.resolve(defn)

	switch defn.Operator {
	case instructions.Nop:

	// flags
	case instructions.Clc:
		mc.Status.Carry = false
	case instructions.Cld:
		mc.Status.DecimalMode = false
	case instructions.Cli:
		mc.Status.InterruptDisable = false
	case instructions.Clv:
		mc.Status.Overflow = false
	case instructions.Sec:
		mc.Status.Carry = true
	case instructions.Sed:
		mc.Status.DecimalMode = true
	case instructions.Sei:
		mc.Status.InterruptDisable = true

	// transfers
	case instructions.Tax:
		mc.X.Load(mc.A.Value())
		mc.updateNZ(mc.X.Value())
	case instructions.Tay:
		mc.Y.Load(mc.A.Value())
		mc.updateNZ(mc.Y.Value())
	case instructions.Txa:
		mc.A.Load(mc.X.Value())
		mc.updateNZ(mc.A.Value())
	case instructions.Tya:
		mc.A.Load(mc.Y.Value())
		mc.updateNZ(mc.A.Value())
	case instructions.Tsx:
		mc.X.Load(mc.SP.Value())
		mc.updateNZ(mc.X.Value())
	case instructions.Txs:
		// does not affect the status register
		mc.SP.Load(mc.X.Value())

	// stack
	case instructions.Pha:
		mc.Push(mc.A.Value())
	case instructions.Pla:
		mc.A.Load(mc.Pull())
		mc.updateNZ(mc.A.Value())
	case instructions.Php:
		mc.Push(mc.Status.Value() | registers.Break | registers.Unused)
	case instructions.Plp:
		mc.pullStatus()

	// loads
	case instructions.Lda:
		mc.A.Load(mc.mem.Read(address))
		mc.updateNZ(mc.A.Value())
	case instructions.Ldx:
		mc.X.Load(mc.mem.Read(address))
		mc.updateNZ(mc.X.Value())
	case instructions.Ldy:
		mc.Y.Load(mc.mem.Read(address))
		mc.updateNZ(mc.Y.Value())

	// stores. the store instructions do not read memory
	case instructions.Sta:
		mc.mem.Write(address, mc.A.Value())
	case instructions.Stx:
		mc.mem.Write(address, mc.X.Value())
	case instructions.Sty:
		mc.mem.Write(address, mc.Y.Value())

	// arithmetic
	case instructions.Adc:
		carry, overflow := mc.A.Add(mc.mem.Read(address), mc.Status.Carry)
		mc.Status.Carry = carry
		mc.Status.Overflow = overflow
		mc.updateNZ(mc.A.Value())
	case instructions.Sbc:
		carry, overflow := mc.A.Subtract(mc.mem.Read(address), mc.Status.Carry)
		mc.Status.Carry = carry
		mc.Status.Overflow = overflow
		mc.updateNZ(mc.A.Value())

	// logic
	case instructions.And:
		mc.A.AND(mc.mem.Read(address))
		mc.updateNZ(mc.A.Value())
	case instructions.Eor:
		mc.A.EOR(mc.mem.Read(address))
		mc.updateNZ(mc.A.Value())
	case instructions.Ora:
		mc.A.ORA(mc.mem.Read(address))
		mc.updateNZ(mc.A.Value())
	case instructions.Bit:
		v := mc.mem.Read(address)
		mc.Status.Zero = mc.A.Value()&v == 0
		mc.Status.Negative = v&0x80 == 0x80
		mc.Status.Overflow = v&0x40 == 0x40

	// comparisons
	case instructions.Cmp:
		mc.compare(mc.A, mc.mem.Read(address))
	case instructions.Cpx:
		mc.compare(mc.X, mc.mem.Read(address))
	case instructions.Cpy:
		mc.compare(mc.Y, mc.mem.Read(address))

	// increments and decrements
	case instructions.Inc:
		v := mc.mem.Read(address) + 1
		mc.mem.Write(address, v)
		mc.updateNZ(v)
	case instructions.Dec:
		v := mc.mem.Read(address) - 1
		mc.mem.Write(address, v)
		mc.updateNZ(v)
	case instructions.Inx:
		mc.X.Load(mc.X.Value() + 1)
		mc.updateNZ(mc.X.Value())
	case instructions.Dex:
		mc.X.Load(mc.X.Value() - 1)
		mc.updateNZ(mc.X.Value())
	case instructions.Iny:
		mc.Y.Load(mc.Y.Value() + 1)
		mc.updateNZ(mc.Y.Value())
	case instructions.Dey:
		mc.Y.Load(mc.Y.Value() - 1)
		mc.updateNZ(mc.Y.Value())

	// shifts and rotates. these operate on either the accumulator or memory
	case instructions.Asl:
		mc.acc8.Load(mc.operand(defn, address))
		mc.Status.Carry = mc.acc8.ASL()
		mc.store(defn, address, mc.acc8.Value())
	case instructions.Lsr:
		mc.acc8.Load(mc.operand(defn, address))
		mc.Status.Carry = mc.acc8.LSR()
		mc.store(defn, address, mc.acc8.Value())
	case instructions.Rol:
		mc.acc8.Load(mc.operand(defn, address))
		mc.Status.Carry = mc.acc8.ROL(mc.Status.Carry)
		mc.store(defn, address, mc.acc8.Value())
	case instructions.Ror:
		mc.acc8.Load(mc.operand(defn, address))
		mc.Status.Carry = mc.acc8.ROR(mc.Status.Carry)
		mc.store(defn, address, mc.acc8.Value())

	// branches
	case instructions.Bcc:
		mc.branch(!mc.Status.Carry, address)
	case instructions.Bcs:
		mc.branch(mc.Status.Carry, address)
	case instructions.Beq:
		mc.branch(mc.Status.Zero, address)
	case instructions.Bne:
		mc.branch(!mc.Status.Zero, address)
	case instructions.Bmi:
		mc.branch(mc.Status.Negative, address)
	case instructions.Bpl:
		mc.branch(!mc.Status.Negative, address)
	case instructions.Bvc:
		mc.branch(!mc.Status.Overflow, address)
	case instructions.Bvs:
		mc.branch(mc.Status.Overflow, address)

	// jumps and subroutines
	case instructions.Jmp:
		mc.PC.Load(address)
	case instructions.Jsr:
		// the address pushed is the address of the last byte of the JSR
		// instruction
		mc.PushWord(mc.PC.Address() - 1)
		mc.PC.Load(address)
	case instructions.Rts:
		mc.Return()

	// interrupts
	case instructions.Brk:
		if mc.brkAbort && mc.mem.Read(mc.PC.Address()) == 0x00 {
			return BrkAbort{PC: mc.LastResult.Address, Registers: mc.Snapshot()}
		}

		// the byte following the BRK is skipped
		mc.PC.Add(1)
		mc.PushWord(mc.PC.Address())
		mc.Push(mc.Status.Value() | registers.Break | registers.Unused)
		mc.Status.InterruptDisable = true
		mc.PC.Load(mc.read16Bit(cpubus.IRQ))
		logger.Logf(logger.Allow, "cpu", "BRK at $%04X: vector to %s", mc.LastResult.Address, mc.PC)
	case instructions.Rti:
		mc.pullStatus()
		mc.PC.Load(mc.PullWord())

	default:
		// the instruction table only contains documented opcodes so this
		// should never happen
		return InvalidOpcode{PC: mc.LastResult.Address, Opcode: defn.OpCode}
	}

	return nil
}
