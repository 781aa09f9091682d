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

// Package counter accumulates statistics about the instructions executed by
// the CPU. A Counter is attached to the simulator with AddObserver().
package counter

import (
	"fmt"
	"io"
	"sort"

	"github.com/jetsetilly/pim65/hardware/cpu/execution"
	"github.com/jetsetilly/pim65/hardware/cpu/instructions"
)

// Count is the number of times an operator has been executed.
type Count struct {
	Operator instructions.Operator
	Count    int
}

// Counter inspects the result of every CPU step.
type Counter struct {
	operators map[instructions.Operator]int
	bugs      map[execution.Bug]int
	hooked    int
	total     int
}

// NewCounter is the preferred method of initialisation for the Counter type.
func NewCounter() *Counter {
	ct := &Counter{}
	ct.Clear()
	return ct
}

// OnStep accumulates the count values for the most recent CPU step.
func (ct *Counter) OnStep(r execution.Result) {
	ct.total++

	if r.Hooked {
		ct.hooked++
		return
	}

	if r.Defn == nil {
		return
	}

	ct.operators[r.Defn.Operator]++
	if r.CPUBug != execution.NoBug {
		ct.bugs[r.CPUBug]++
	}
}

// Clear count data.
func (ct *Counter) Clear() {
	ct.operators = make(map[instructions.Operator]int)
	ct.bugs = make(map[execution.Bug]int)
	ct.hooked = 0
	ct.total = 0
}

// Total number of steps seen, including steps handled by a PC hook.
func (ct *Counter) Total() int {
	return ct.total
}

// Hooked returns the number of steps handled by a PC hook.
func (ct *Counter) Hooked() int {
	return ct.hooked
}

// Operator returns the number of times the operator has been executed.
func (ct *Counter) Operator(op instructions.Operator) int {
	return ct.operators[op]
}

// Bug returns the number of times the addressing quirk was triggered.
func (ct *Counter) Bug(bug execution.Bug) int {
	return ct.bugs[bug]
}

// Top returns the n most frequently executed operators, most frequent
// first. Operators with equal counts are in operator order.
func (ct *Counter) Top(n int) []Count {
	c := make([]Count, 0, len(ct.operators))
	for op, v := range ct.operators {
		c = append(c, Count{Operator: op, Count: v})
	}

	sort.Slice(c, func(i, j int) bool {
		if c[i].Count == c[j].Count {
			return c[i].Operator < c[j].Operator
		}
		return c[i].Count > c[j].Count
	})

	if n >= 0 && n < len(c) {
		c = c[:n]
	}

	return c
}

// Write a summary of the counts to output, listing the n most frequently
// executed operators.
func (ct *Counter) Write(output io.Writer, n int) {
	fmt.Fprintf(output, "steps: %d (hooked: %d)\n", ct.total, ct.hooked)
	for _, c := range ct.Top(n) {
		fmt.Fprintf(output, "  %s %6d  %5.1f%%\n", c.Operator, c.Count, float64(c.Count)*100/float64(ct.total))
	}

	bugs := make([]execution.Bug, 0, len(ct.bugs))
	for b := range ct.bugs {
		bugs = append(bugs, b)
	}
	sort.Slice(bugs, func(i, j int) bool { return bugs[i] < bugs[j] })
	for _, b := range bugs {
		fmt.Fprintf(output, "  %s: %d\n", b, ct.bugs[b])
	}
}
