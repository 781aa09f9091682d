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

// Package reflection gathers the state of the simulator into a single value
// that can be inspected or visualised after a run. The WriteDot() function
// renders the state as a graphviz graph using the memviz package.
package reflection

import (
	"io"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/pim65/hardware"
	"github.com/jetsetilly/pim65/hardware/cpu"
	"github.com/jetsetilly/pim65/hardware/cpu/execution"
)

// stack page of the 6502.
const stackPage = 0x0100

// Window is a region of the address space.
type Window struct {
	Origin uint16
	Data   []uint8
}

// State packages together the details of the simulator at the end of a run.
type State struct {
	Registers cpu.Registers

	// status register as a string of flags
	Status string

	// the most recent CPU step
	LastResult execution.Result

	InstructionCount int
	Halted           bool
	Success          bool

	// the active part of the stack, from the top of the stack down to the
	// current stack pointer. the most recently pushed value is last
	Stack []uint8

	// an optional region of memory. nil if no window was requested
	Window *Window

	// non-blank lines of the text screen
	Screen []string
}

// Gather the state of the simulator. If length is greater than zero then a
// window of memory beginning at origin is included.
func Gather(sim *hardware.Simulator, origin uint16, length int) *State {
	st := &State{
		Registers:        sim.CPU.Snapshot(),
		Status:           sim.CPU.Status.String(),
		LastResult:       sim.CPU.LastResult,
		InstructionCount: sim.CPU.InstructionCount,
		Halted:           sim.CPU.Halted,
		Success:          sim.CPU.Success,
	}

	// the stack grows downwards. the first free byte is at SP
	sp := int(st.Registers.SP)
	for a := 0xff; a > sp; a-- {
		st.Stack = append(st.Stack, sim.Mem.Peek(uint16(stackPage+a)))
	}

	if length > 0 {
		st.Window = &Window{
			Origin: origin,
			Data:   sim.DumpMemory(origin, length),
		}
	}

	if s := sim.DumpScreen(); s != "" {
		st.Screen = strings.Split(s, "\n")
	}

	return st
}

// WriteDot writes the state as a graphviz graph.
func WriteDot(output io.Writer, st *State) {
	memviz.Map(output, st)
}
