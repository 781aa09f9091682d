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
	"os/signal"

	"github.com/jetsetilly/pim65/hardware"
	"github.com/jetsetilly/pim65/hardware/peripherals/harddrive"
	"github.com/jetsetilly/pim65/hardware/preferences"
	"github.com/jetsetilly/pim65/logger"
	"github.com/jetsetilly/pim65/modalflag"
	"github.com/jetsetilly/pim65/paths"
	"github.com/jetsetilly/pim65/performance"
	"github.com/jetsetilly/pim65/prefs"
	"github.com/jetsetilly/pim65/setup"
	"github.com/jetsetilly/pim65/statsview"
	"github.com/jetsetilly/pim65/version"
	"github.com/jetsetilly/pim65/watch"
)

// #mainthread
func main() {
	// ctrl-c cancels the context. a running simulation stops at the next
	// performance brake
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	exitVal := launch(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(exitVal)
}

// launch parses the arguments and runs the selected mode. returns the value to
// use with os.Exit().
func launch(ctx context.Context, args []string, stdout io.Writer, stderr io.Writer) int {
	md := &modalflag.Modes{Output: stdout}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "DISASM", "PERFORMANCE", "MKDISK", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0
	case modalflag.ParseError:
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 10
	}

	switch md.Mode() {
	case "RUN":
		err = run(ctx, md, stdout, stderr)
	case "DISASM":
		err = disasm(md)
	case "PERFORMANCE":
		err = perform(md)
	case "MKDISK":
		err = mkdisk(md)
	case "VERSION":
		fmt.Fprintln(stdout, version.String())
	}

	if err != nil {
		if errors.Is(err, errHalted) {
			fmt.Fprintln(stderr, err)
		} else {
			fmt.Fprintf(stderr, "error: %v\n", err)
		}
		return 1
	}

	return 0
}

func run(ctx context.Context, md *modalflag.Modes, stdout io.Writer, stderr io.Writer) error {
	md.NewMode()

	opts := options{stdout: stdout, stderr: stderr}

	// the default values of some flags are replaced by the preference values
	// if the flag is not set explicitly
	maxInstructions := md.AddInt("n", preferences.DefaultMaxInstructions, "maximum number of instructions to execute (default from preferences)")
	trace := md.AddBool("trace", false, "print instruction trace (default from preferences)")
	brkAbort := md.AddBool("brkabort", false, "abort with register dump on BRK 00 (default from preferences)")
	screen := md.AddBool("screen", false, "dump 40-column text screen on exit (default from preferences)")

	verbose := md.AddBool("verbose", false, "verbose output. the log is echoed to stderr")
	keys := md.AddStringList("keys", "keyboard input string (C-style escapes, \\n=CR). can be specified more than once")
	disk := md.AddString("disk", "", "path to .2mg disk image for hard drive emulation (slot 2)")
	interactive := md.AddBool("interactive", false, "take keyboard input from the terminal once -keys input is exhausted")
	dump := md.AddString("dump", "", "hex dump memory on exit (ADDR:LEN)")
	memviz := md.AddString("memviz", "", "write graphviz file of the CPU state and the -dump window on exit")
	opcount := md.AddInt("opcount", 0, "print the most frequently executed instructions on exit")
	view := md.AddBool("view", false, "open the terminal viewer on exit")
	rerun := md.AddBool("watch", false, "run again whenever the configuration or a binary file changes")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	prefsOverride := md.AddString("prefs", "", "preferences for this run only (key::value; key::value)")
	savePrefs := md.AddBool("saveprefs", false, "save -n, -trace, -brkabort and -screen as the new defaults")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *prefsOverride != "" {
		prefs.PushCommandLineStack(*prefsOverride)
		defer func() {
			if unused := prefs.PopCommandLineStack(); unused != "" {
				logger.Logf(logger.Allow, "prefs", "unused preferences: %s", unused)
			}
		}()
	}

	pref, err := preferences.NewPreferences(paths.ResourcePath(prefs.DefaultPrefsFile))
	if err != nil {
		return err
	}

	explicit := make(map[string]bool)
	md.Visit(func(flg string) {
		explicit[flg] = true
	})
	if !explicit["n"] {
		*maxInstructions = pref.MaxInstructions.Get().(int)
	}
	if !explicit["trace"] {
		*trace = pref.Trace.Get().(bool)
	}
	if !explicit["brkabort"] {
		*brkAbort = pref.BrkAbort.Get().(bool)
	}
	if !explicit["screen"] {
		*screen = pref.Screen.Get().(bool)
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("configuration file required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	if *verbose {
		logger.SetEcho(stderr, false)
	} else {
		logger.SetEcho(nil, false)
	}

	if *savePrefs {
		err = pref.MaxInstructions.Set(*maxInstructions)
		if err != nil {
			return err
		}
		err = pref.Trace.Set(*trace)
		if err != nil {
			return err
		}
		err = pref.BrkAbort.Set(*brkAbort)
		if err != nil {
			return err
		}
		err = pref.Screen.Set(*screen)
		if err != nil {
			return err
		}
		err = pref.Save()
		if err != nil {
			return err
		}
	}

	if *stats {
		statsview.Launch(stdout)
	}

	opts.configFile = md.GetArg(0)
	opts.maxInstructions = *maxInstructions
	opts.trace = *trace
	opts.verbose = *verbose
	opts.brkAbort = *brkAbort
	opts.screen = *screen
	opts.keys = *keys
	opts.disk = *disk
	opts.interactive = *interactive
	opts.memviz = *memviz
	opts.opcount = *opcount
	opts.view = *view

	if *dump != "" {
		opts.dumpOrigin, opts.dumpLength, err = parseDump(*dump)
		if err != nil {
			return err
		}
	}

	if !*rerun {
		return simulate(ctx, opts)
	}

	// the configuration is loaded here only to discover which files to watch.
	// simulate() loads it again on every run
	cfg, err := setup.Load(opts.configFile)
	if err != nil {
		return err
	}

	return watch.Watch(ctx, cfg.Files(), func() {
		err := simulate(ctx, opts)
		if err != nil {
			if errors.Is(err, errHalted) {
				fmt.Fprintln(stderr, err)
			} else {
				fmt.Fprintf(stderr, "error: %v\n", err)
			}
		}
		fmt.Fprintf(stdout, "* watching %d files\n", len(cfg.Files()))
	})
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	bytecode := md.AddBool("bytecode", false, "include bytecode in disassembly")
	origin := md.AddString("origin", "", "address to start disassembly (default is the start address)")
	count := md.AddInt("count", 32, "number of instructions to disassemble")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("configuration file required for %s mode", md)
	case 1:
		cfg, err := setup.Load(md.GetArg(0))
		if err != nil {
			return err
		}

		sim := hardware.NewSimulator(cfg)
		defer sim.Cleanup()

		err = sim.Load()
		if err != nil {
			return err
		}

		address := cfg.StartAddr
		if *origin != "" {
			address, err = setup.ParseAddress(*origin)
			if err != nil {
				return err
			}
		}

		return writeDisassembly(md.Output, sim, address, *count, *bytecode)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	duration := md.AddString("duration", "5s", "run duration")
	profile := md.AddString("profile", "NONE", "create profile reports: CPU, MEM, TRACE, ALL (comma separated)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("configuration file required for %s mode", md)
	case 1:
		prf, err := performance.ParseProfileString(*profile)
		if err != nil {
			return err
		}

		cfg, err := setup.Load(md.GetArg(0))
		if err != nil {
			return err
		}

		return performance.Check(md.Output, prf, cfg, *duration)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}
}

func mkdisk(md *modalflag.Modes) error {
	md.NewMode()

	blocks := md.AddInt("blocks", 280, "number of 512 byte blocks in the image")
	force := md.AddBool("force", false, "overwrite an existing image")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("disk image filename required for %s mode", md)
	case 1:
		path := md.GetArg(0)
		if !*force {
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("%s already exists (use -force to overwrite)", path)
			}
		}

		err = harddrive.Create(path, *blocks)
		if err != nil {
			return err
		}
		fmt.Fprintf(md.Output, "created %s (%d blocks)\n", path, *blocks)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	return nil
}
