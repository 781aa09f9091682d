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

// Package hardware is the base package for the 6502 system emulation. It and
// its sub-packages contain everything required for a headless emulation.
//
// The Simulator type is the root of the emulation and contains references to
// the CPU, the address space and the optional peripherals. Binaries are
// loaded as described by a setup.Config and the CPU is run until it reaches
// the success address, an error occurs or the instruction limit is reached.
//
//	cfg, _ := setup.Load("config.json")
//	sim := hardware.NewSimulator(cfg)
//	defer sim.Cleanup()
//
//	sim.SetupKeyboard("RUN\n")
//	_ = sim.Load()
//	success, err := sim.Run(1000, false, false)
//
// The keyboard and the text screen are always at their conventional
// addresses. The hard drive occupies slot 2.
package hardware
