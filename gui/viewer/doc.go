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

// Package viewer is a terminal user interface for inspecting the simulator
// after a run. It shows the text screen, the CPU registers, the tail of the
// trace and a pane for memory or disassembly views.
//
// Commands are typed into the input line at the bottom of the viewer:
//
//	m ADDR    show memory from ADDR
//	d ADDR    disassemble from ADDR
//	t         show the trace
//	q         quit (as does the escape key)
//
// Addresses are in any of the forms accepted by setup.ParseAddress().
package viewer
