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

// Package disassembly decodes 6502 machine code into human readable
// mnemonics and operands.
//
// The Disassemble() function is used by the CPU when producing an execution
// trace. The instruction at the address is decoded by reading memory through
// the supplied cpubus.Memory implementation. This means that disassembling an
// address that is hooked by a peripheral will trigger that hook.
//
// For listings of more than one instruction, the Write() function writes a
// linear disassembly to an io.Writer. No attempt is made to follow the flow of
// the program.
package disassembly
