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

	"github.com/jetsetilly/pim65/hardware/cpu/execution"
	"github.com/jetsetilly/pim65/hardware/cpu/instructions"
	"github.com/jetsetilly/pim65/hardware/cpu/registers"
	"github.com/jetsetilly/pim65/hardware/memory/cpubus"
	"github.com/jetsetilly/pim65/logger"
)

// PCHook is called by Step() when the PC matches the address the hook was
// registered with. The hook is called instead of the instruction at that
// address.
type PCHook func() error

// CPU implements the 6502 found in the Apple II and many other home computers
// of the era.
type CPU struct {
	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.Register
	Status registers.StatusRegister

	mem          cpubus.Memory
	instructions []*instructions.Definition

	// hooks indexed by the address of the PC
	pcHooks map[uint16]PCHook

	// register used when RMW instructions operate on memory
	acc8 registers.Register

	// LastResult is the result of the most recent call to Step()
	LastResult execution.Result

	// Halted is true once the PC has reached the success address. Success is
	// true if that's the reason the CPU halted
	Halted  bool
	Success bool

	// the number of instructions executed since the last reset. calls to PC
	// hooks count as one instruction
	InstructionCount int

	// tracing is enabled with SetTrace(). the trace is cleared on reset
	tracing bool
	trace   []string

	// if brkAbort is true then a BRK instruction followed by a zero byte
	// causes Step() to return a BrkAbort error instead of taking the interrupt
	brkAbort bool
}

// NewCPU is the preferred method of initialisation for the CPU structure. Note
// that the CPU will not be reset until Reset() is called.
func NewCPU(mem cpubus.Memory) *CPU {
	return &CPU{
		mem:          mem,
		PC:           registers.NewProgramCounter(0),
		A:            registers.NewRegister(0, "A"),
		X:            registers.NewRegister(0, "X"),
		Y:            registers.NewRegister(0, "Y"),
		SP:           registers.NewRegister(0, "SP"),
		acc8:         registers.NewRegister(0, "acc"),
		instructions: instructions.GetDefinitions(),
		pcHooks:      make(map[uint16]PCHook),
	}
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s", mc.PC.Label(), mc.PC, mc.FormatState())
}

// FormatState returns the registers (excluding the PC) and the status flags
// in the format used by the trace log.
func (mc *CPU) FormatState() string {
	return fmt.Sprintf("A=$%02X X=$%02X Y=$%02X SP=$%02X [%s]",
		mc.A.Value(), mc.X.Value(), mc.Y.Value(), mc.SP.Value(), mc.Status)
}

// Reset CPU. Registers are cleared, the stack pointer is set to the
// conventional power-on value and the PC is loaded from the reset vector.
func (mc *CPU) Reset() {
	mc.LastResult.Reset()
	mc.A.Load(0)
	mc.X.Load(0)
	mc.Y.Load(0)
	mc.SP.Load(0xfd)
	mc.Status.Reset()
	mc.PC.Load(mc.read16Bit(cpubus.Reset))

	mc.Halted = false
	mc.Success = false
	mc.InstructionCount = 0
	mc.trace = mc.trace[:0]

	logger.Logf(logger.Allow, "cpu", "reset: PC=%s", mc.PC)
}

// SetTrace turns the trace log on or off.
func (mc *CPU) SetTrace(tracing bool) {
	mc.tracing = tracing
}

// SetBrkAbort turns the BRK abort behaviour on or off.
func (mc *CPU) SetBrkAbort(abort bool) {
	mc.brkAbort = abort
}

// AddPCHook registers a hook to be called when the PC reaches address. A
// later hook for the same address replaces the earlier one.
func (mc *CPU) AddPCHook(address uint16, hook PCHook) {
	mc.pcHooks[address] = hook
}

// RemovePCHook removes the hook registered for address, if any.
func (mc *CPU) RemovePCHook(address uint16) {
	delete(mc.pcHooks, address)
}

// GetFlag returns true if the flag (see registers package for values) is set.
// The flag argument can be a combination of flags, in which case all flags must
// be set.
func (mc *CPU) GetFlag(flag uint8) bool {
	return mc.Status.Value()&flag == flag
}

// SetFlag sets or clears the flag (see registers package for values).
func (mc *CPU) SetFlag(flag uint8, set bool) {
	v := mc.Status.Value()
	if set {
		v |= flag
	} else {
		v &^= flag
	}
	mc.Status.FromValue(v)
}

// Snapshot returns a copy of the register values.
func (mc *CPU) Snapshot() Registers {
	return Registers{
		PC:     mc.PC.Address(),
		A:      mc.A.Value(),
		X:      mc.X.Value(),
		Y:      mc.Y.Value(),
		SP:     mc.SP.Value(),
		Status: mc.Status.Value(),
	}
}

// Registers is a copy of the CPU registers at a moment in time.
type Registers struct {
	PC     uint16
	A      uint8
	X      uint8
	Y      uint8
	SP     uint8
	Status uint8
}

func (r Registers) String() string {
	return fmt.Sprintf("A=$%02X X=$%02X Y=$%02X SP=$%02X PC=$%04X", r.A, r.X, r.Y, r.SP, r.PC)
}

// Push a byte onto the stack. The stack pointer wraps within page one.
func (mc *CPU) Push(data uint8) {
	mc.mem.Write(cpubus.StackBase|mc.SP.Address(), data)
	mc.SP.Load(mc.SP.Value() - 1)
}

// Pull a byte from the stack.
func (mc *CPU) Pull() uint8 {
	mc.SP.Load(mc.SP.Value() + 1)
	return mc.mem.Read(cpubus.StackBase | mc.SP.Address())
}

// PushWord pushes the high byte and then the low byte of a 16 bit value.
func (mc *CPU) PushWord(data uint16) {
	mc.Push(uint8(data >> 8))
	mc.Push(uint8(data))
}

// PullWord is the reverse of PushWord().
func (mc *CPU) PullWord() uint16 {
	lo := mc.Pull()
	hi := mc.Pull()
	return uint16(hi)<<8 | uint16(lo)
}

// Return from a subroutine. Equivalent to the RTS instruction and intended for
// use by PC hooks.
func (mc *CPU) Return() {
	mc.PC.Load(mc.PullWord())
	mc.PC.Add(1)
}

// read16Bit reads a little-endian word. the address of the high byte wraps at
// the top of memory.
func (mc *CPU) read16Bit(address uint16) uint16 {
	return cpubus.ReadWord(mc.mem, address)
}

// read16BitZeroPage reads a little-endian word from the zero page. the address
// of the high byte wraps within the zero page.
func (mc *CPU) read16BitZeroPage(address uint8) uint16 {
	return cpubus.ReadWordZeroPage(mc.mem, address)
}

// read8BitPC reads the byte at the PC and advances the PC.
func (mc *CPU) read8BitPC() uint8 {
	v := mc.mem.Read(mc.PC.Address())
	mc.PC.Add(1)
	mc.LastResult.ByteCount++
	return v
}

// read16BitPC reads the little-endian word at the PC and advances the PC.
func (mc *CPU) read16BitPC() uint16 {
	lo := mc.read8BitPC()
	hi := mc.read8BitPC()
	return uint16(hi)<<8 | uint16(lo)
}

func (mc *CPU) updateNZ(v uint8) {
	mc.Status.Zero = v == 0
	mc.Status.Negative = v&0x80 == 0x80
}
