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
	"errors"
	"io/fs"
	"os"

	"github.com/jetsetilly/pim65/curated"
	"github.com/jetsetilly/pim65/hardware/cpu"
	"github.com/jetsetilly/pim65/hardware/cpu/execution"
	"github.com/jetsetilly/pim65/hardware/memory"
	"github.com/jetsetilly/pim65/hardware/peripherals/harddrive"
	"github.com/jetsetilly/pim65/hardware/peripherals/keyboard"
	"github.com/jetsetilly/pim65/hardware/peripherals/textscreen"
	"github.com/jetsetilly/pim65/logger"
	"github.com/jetsetilly/pim65/setup"
)

// Sentinel errors.
const (
	BinaryNotFound = "simulator: binary file not found: %v"
	BinaryError    = "simulator: %v"
	DiskNotFound   = "simulator: disk image not found: %v"
)

// Simulator is the main container for the emulated components.
type Simulator struct {
	CPU *cpu.CPU
	Mem *memory.AddressSpace

	// peripherals are nil until the corresponding Setup function is called
	Keyboard  *keyboard.Keyboard
	HardDrive *harddrive.HardDrive

	cfg *setup.Config

	observers []Observer
}

// Observer implementations are notified at the end of every successful CPU
// step during Run() and RunContext().
type Observer interface {
	OnStep(result execution.Result)
}

// AddObserver adds an Observer to the simulator.
func (sim *Simulator) AddObserver(o Observer) {
	sim.observers = append(sim.observers, o)
}

// NewSimulator creates a new Simulator and everything associated with the
// hardware. Nothing is loaded until Load() is called.
func NewSimulator(cfg *setup.Config) *Simulator {
	sim := &Simulator{
		cfg: cfg,
		Mem: memory.NewAddressSpace(),
	}
	sim.CPU = cpu.NewCPU(sim.Mem)
	return sim
}

// Config returns the configuration the simulator was created with.
func (sim *Simulator) Config() *setup.Config {
	return sim.cfg
}

// Load each binary named in the configuration into the address space, point
// the reset vector at the start address and reset the CPU.
//
// Binaries are loaded in order so later binaries overwrite earlier ones where
// they overlap.
func (sim *Simulator) Load() error {
	for _, b := range sim.cfg.Binaries {
		data, err := os.ReadFile(b.File)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return curated.Errorf(BinaryNotFound, b.File)
			}
			return curated.Errorf(BinaryError, err)
		}

		if err := sim.Mem.LoadBinary(data, b.LoadAddr); err != nil {
			return curated.Errorf(BinaryError, err)
		}

		logger.Logf(logger.Allow, "simulator", "loaded %s at %s (%d bytes)", b.File, setup.Address(b.LoadAddr), len(data))
	}

	sim.Mem.SetResetVector(sim.cfg.StartAddr)
	sim.CPU.Reset()

	return nil
}

// SetupKeyboard attaches a keyboard that will present the input strings to
// the guest. The strings are parsed with keyboard.ParseInput().
func (sim *Simulator) SetupKeyboard(input ...string) *keyboard.Keyboard {
	sim.Keyboard = keyboard.NewKeyboard(input...)
	sim.Keyboard.Attach(sim.Mem)
	return sim.Keyboard
}

// SetupHardDrive opens the disk image and attaches it to slot 2. Any
// previously attached hard drive is closed.
//
// The slot ROM is written to the address space immediately so binaries loaded
// by Load() can overwrite it if they wish.
func (sim *Simulator) SetupHardDrive(path string) error {
	if sim.HardDrive != nil {
		if err := sim.HardDrive.Close(); err != nil {
			return err
		}
		sim.HardDrive = nil
	}

	hd, err := harddrive.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return curated.Errorf(DiskNotFound, path)
		}
		return err
	}

	if err := hd.Attach(sim.Mem, sim.CPU); err != nil {
		_ = hd.Close()
		return err
	}

	sim.HardDrive = hd
	logger.Logf(logger.Allow, "simulator", "hard drive %s attached to slot 2", path)

	return nil
}

// Trace returns the trace log of the most recent run.
func (sim *Simulator) Trace() []string {
	return sim.CPU.Trace()
}

// DumpMemory returns a copy of a region of the address space. Hooks are not
// triggered.
func (sim *Simulator) DumpMemory(origin uint16, length int) []uint8 {
	return sim.Mem.Dump(origin, length)
}

// DumpScreen returns the text screen as a string.
func (sim *Simulator) DumpScreen() string {
	return textscreen.Dump(sim.Mem)
}

// InstructionCount returns the number of instructions executed.
func (sim *Simulator) InstructionCount() int {
	return sim.CPU.InstructionCount
}

// Cleanup releases any resources held by the peripherals. It is safe to call
// more than once.
func (sim *Simulator) Cleanup() error {
	if sim.HardDrive != nil {
		err := sim.HardDrive.Close()
		sim.HardDrive = nil
		return err
	}
	return nil
}
