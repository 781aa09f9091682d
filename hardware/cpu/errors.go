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

import "fmt"

// InvalidOpcode is returned by Step() when the byte at the PC is not a
// documented 6502 opcode.
type InvalidOpcode struct {
	PC     uint16
	Opcode uint8
}

func (e InvalidOpcode) Error() string {
	return fmt.Sprintf("cpu: invalid opcode $%02X at $%04X", e.Opcode, e.PC)
}

// InstructionLimitExceeded is returned by Run() when the instruction limit is
// reached before the CPU halts.
type InstructionLimitExceeded struct {
	PC    uint16
	Limit int
}

func (e InstructionLimitExceeded) Error() string {
	return fmt.Sprintf("cpu: instruction limit (%d) reached at PC=$%04X", e.Limit, e.PC)
}

// BrkAbort is returned by Step() when BRK abort is enabled and a BRK
// instruction is followed by a zero byte. PC is the address of the BRK
// instruction. Registers is a copy of the registers at the moment the BRK was
// encountered.
type BrkAbort struct {
	PC        uint16
	Registers Registers
}

func (e BrkAbort) Error() string {
	return fmt.Sprintf("cpu: BRK $00 at $%04X: %s", e.PC, e.Registers)
}
