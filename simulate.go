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

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jetsetilly/pim65/disassembly"
	"github.com/jetsetilly/pim65/gui/viewer"
	"github.com/jetsetilly/pim65/hardware"
	"github.com/jetsetilly/pim65/reflection"
	"github.com/jetsetilly/pim65/reflection/counter"
	"github.com/jetsetilly/pim65/setup"
	"github.com/jetsetilly/pim65/userinput"
)

// the number of trace lines shown when the simulation ends with an error.
const traceTail = 20

// errHalted is returned by simulate() when the simulation halts without
// reaching the success address.
var errHalted = errors.New("simulation halted without reaching success address")

// options for a single run of the simulation.
type options struct {
	stdout io.Writer
	stderr io.Writer

	configFile      string
	maxInstructions int
	trace           bool
	verbose         bool
	brkAbort        bool
	screen          bool
	keys            []string
	disk            string
	interactive     bool

	// memory window for the hex dump and the memviz output. a length of zero
	// means no window
	dumpOrigin uint16
	dumpLength int

	memviz  string
	opcount int
	view    bool
}

// simulate loads the configuration and runs the simulation once.
func simulate(ctx context.Context, opts options) (rerr error) {
	cfg, err := setup.Load(opts.configFile)
	if err != nil {
		return err
	}

	sim := hardware.NewSimulator(cfg)
	defer func() {
		err := sim.Cleanup()
		if err != nil && rerr == nil {
			rerr = err
		}
	}()

	if len(opts.keys) > 0 || opts.interactive {
		kb := sim.SetupKeyboard(opts.keys...)
		if opts.interactive {
			keys, err := userinput.NewKeys(os.Stdin)
			if err != nil {
				return err
			}
			defer keys.Close()
			kb.AttachSource(keys)
		}
	}

	if opts.disk != "" {
		err = sim.SetupHardDrive(opts.disk)
		if err != nil {
			return err
		}
	}

	err = sim.Load()
	if err != nil {
		return err
	}

	var ct *counter.Counter
	if opts.opcount > 0 {
		ct = counter.NewCounter()
		sim.AddObserver(ct)
	}

	success, err := sim.RunContext(ctx, opts.maxInstructions, opts.trace, opts.brkAbort)
	if err != nil {
		if opts.trace {
			fmt.Fprintf(opts.stderr, "\nTrace (last %d instructions):\n", traceTail)
			trace := sim.Trace()
			if len(trace) > traceTail {
				trace = trace[len(trace)-traceTail:]
			}
			for _, l := range trace {
				fmt.Fprintf(opts.stderr, "  %s\n", l)
			}
		}
		writeScreen(opts.stderr, sim, opts.screen)
		return err
	}

	if opts.trace {
		fmt.Fprintln(opts.stdout, "Trace:")
		for _, l := range sim.Trace() {
			fmt.Fprintf(opts.stdout, "  %s\n", l)
		}
		fmt.Fprintln(opts.stdout)
	}

	if opts.verbose || opts.trace {
		fmt.Fprintf(opts.stdout, "Instructions executed: %d\n", sim.InstructionCount())
	}

	writeScreen(opts.stderr, sim, opts.screen)

	if opts.dumpLength > 0 {
		fmt.Fprintln(opts.stdout, sim.Mem.HexDump(opts.dumpOrigin, opts.dumpLength))
	}

	if ct != nil {
		ct.Write(opts.stdout, opts.opcount)
	}

	if opts.memviz != "" {
		err = writeMemviz(opts.memviz, sim, opts.dumpOrigin, opts.dumpLength)
		if err != nil {
			return err
		}
	}

	if opts.view {
		outcome := "simulation completed successfully"
		if !success {
			outcome = errHalted.Error()
		}
		err = viewer.NewViewer(sim, outcome).Run()
		if err != nil {
			return err
		}
	}

	if !success {
		return errHalted
	}

	if opts.verbose {
		fmt.Fprintln(opts.stdout, "Simulation completed successfully")
	}

	return nil
}

// the screen is only written if it is requested and not blank.
func writeScreen(output io.Writer, sim *hardware.Simulator, screen bool) {
	if !screen {
		return
	}
	if s := sim.DumpScreen(); s != "" {
		fmt.Fprintf(output, "\nScreen:\n%s\n", s)
	}
}

func writeMemviz(filename string, sim *hardware.Simulator, origin uint16, length int) (rerr error) {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = err
		}
	}()

	reflection.WriteDot(f, reflection.Gather(sim, origin, length))

	return nil
}

func writeDisassembly(output io.Writer, sim *hardware.Simulator, origin uint16, count int, bytecode bool) error {
	attr := disassembly.WriteAttr{
		ByteCode: bytecode,
	}
	_, err := disassembly.Write(output, attr, sim.Mem, origin, count)
	return err
}

// parseDump parses a memory window of the form ADDR:LEN. the address takes any
// of the forms accepted by setup.ParseAddress(). the length is decimal.
func parseDump(s string) (uint16, int, error) {
	a, l, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, fmt.Errorf("dump: expected ADDR:LEN (%s)", s)
	}

	origin, err := setup.ParseAddress(a)
	if err != nil {
		return 0, 0, fmt.Errorf("dump: %w", err)
	}

	length, err := strconv.Atoi(strings.TrimSpace(l))
	if err != nil || length <= 0 {
		return 0, 0, fmt.Errorf("dump: invalid length (%s)", l)
	}

	return origin, length, nil
}
