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

package performance

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/pim65/curated"
	"github.com/jetsetilly/pim65/hardware"
	"github.com/jetsetilly/pim65/hardware/cpu"
	"github.com/jetsetilly/pim65/setup"
)

// CheckError is the pattern used for errors returned by Check().
const CheckError = "performance: %v"

// the number of instructions to run between checks of the measurement
// period. the program is reloaded if it exceeds this number.
const batchSize = 1000000

// Result of a performance check.
type Result struct {
	Instructions int
	Runs         int
	Duration     time.Duration
}

// MIPS returns the number of millions of instructions executed per second.
func (r Result) MIPS() float64 {
	if r.Duration <= 0 {
		return 0
	}
	return float64(r.Instructions) / r.Duration.Seconds() / 1000000
}

func (r Result) String() string {
	return fmt.Sprintf("%.2f MIPS (%d instructions in %.2f seconds, %d runs)",
		r.MIPS(), r.Instructions, r.Duration.Seconds(), r.Runs)
}

// Measure runs the simulation repeatedly for the specified duration. The
// program is reloaded each time it halts or executes batchSize instructions.
//
// A program that halts without success is not an error but any other error
// encountered by the simulation is.
func Measure(cfg *setup.Config, duration time.Duration) (Result, error) {
	var res Result

	sim := hardware.NewSimulator(cfg)
	defer sim.Cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), duration)
	defer cancel()

	start := time.Now()
	for ctx.Err() == nil {
		err := sim.Load()
		if err != nil {
			return res, curated.Errorf(CheckError, err)
		}

		_, err = sim.RunContext(ctx, batchSize, false, false)
		res.Instructions += sim.InstructionCount()
		res.Runs++

		if err != nil {
			if errors.Is(err, context.DeadlineExceeded) {
				break
			}
			if !errors.As(err, &cpu.InstructionLimitExceeded{}) {
				return res, curated.Errorf(CheckError, err)
			}
		}
	}
	res.Duration = time.Since(start)

	return res, nil
}

// Check the performance of the simulator with the supplied configuration.
// The result is written to output. Profiles are created as requested.
func Check(output io.Writer, profile Profile, cfg *setup.Config, duration string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf(CheckError, err)
	}

	var res Result
	err = RunProfiler(profile, "performance", func() error {
		var err error
		res, err = Measure(cfg, dur)
		return err
	})
	if err != nil {
		return err
	}

	_, err = io.WriteString(output, res.String()+"\n")
	return err
}
