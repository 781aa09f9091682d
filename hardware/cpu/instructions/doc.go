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

// Package instructions defines the table of instructions for the 6502. Only
// the documented instructions are defined. Undocumented opcodes have no
// entry in the table and are treated as invalid by the CPU.
//
// The table is generated from the CSV file in the generator directory. To
// regenerate the table run "go generate" in this package.
package instructions

//go:generate go run ./generator
