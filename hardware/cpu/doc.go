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

// Package cpu emulates the MOS 6502 microprocessor. The emulation is
// results-accurate, meaning that the effect of each instruction on the
// registers and on memory is correct but no attempt is made to emulate the
// timing of the instruction. Decimal mode can be set and cleared but it has no
// effect on arithmetic.
//
// The instance of the CPU type requires an instance of a cpubus.Memory
// implementation as the sole argument. The cpubus.Memory interface defines
// the memory operations required by the CPU. See the cpubus package for
// details.
//
// The bread-and-butter of the CPU type is the Step() function. Each call
// executes exactly one instruction, or calls exactly one PC hook. The Run()
// function calls Step() until the CPU halts or the instruction limit is
// reached.
//
//	mc := cpu.NewCPU(mem)
//	mc.Reset()
//
//	success, err := mc.Run(1000)
//
// The CPU halts when the program counter reaches the success address
// (cpubus.Success). A run that reaches the instruction limit without halting
// results in an InstructionLimitExceeded error.
//
// PC hooks are functions that are called instead of the instruction at a
// specific address. They are used by peripherals that emulate ROM routines in
// Go rather than in 6502 code. The hook is responsible for leaving the PC in a
// sensible state, usually by calling the Return() function which behaves like
// the RTS instruction.
//
// The LastResult field can be inspected for information about the last
// instruction executed. See the execution package for more information.
//
// When tracing is enabled a line is added to the trace log for every
// instruction executed. Each line shows the address, the disassembly of the
// instruction and the state of the registers before the instruction was
// executed.
package cpu
