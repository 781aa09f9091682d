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

package hardware

import (
	"context"

	"github.com/jetsetilly/pim65/logger"
)

// It can be expensive to check the context after every instruction. The
// PerformanceBrake is the number of instructions between checks.
const PerformanceBrake = 100

// Run the simulation until the CPU halts, an error occurs or the maximum
// number of instructions have been executed. Returns true if the CPU halted at
// the success address.
//
// Reaching maxInstructions is reported with a cpu.InstructionLimitExceeded
// error.
func (sim *Simulator) Run(maxInstructions int, trace bool, brkAbort bool) (bool, error) {
	return sim.RunContext(context.Background(), maxInstructions, trace, brkAbort)
}

// RunContext is the same as Run() but will also stop if the context is
// cancelled. The context's error is returned in that case.
func (sim *Simulator) RunContext(ctx context.Context, maxInstructions int, trace bool, brkAbort bool) (bool, error) {
	sim.CPU.SetTrace(trace)
	sim.CPU.SetBrkAbort(brkAbort)

	var performanceFilter int

	success, err := sim.CPU.RunFunc(maxInstructions, func() error {
		for _, o := range sim.observers {
			o.OnStep(sim.CPU.LastResult)
		}

		performanceFilter++
		if performanceFilter >= PerformanceBrake {
			performanceFilter = 0
			return ctx.Err()
		}

		return nil
	})
	if err != nil {
		logger.Logf(logger.Allow, "simulator", "%v", err)
		return false, err
	}

	logger.Logf(logger.Allow, "simulator", "halted after %d instructions (success=%v)", sim.CPU.InstructionCount, success)

	return success, nil
}
