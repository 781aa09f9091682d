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

package cpu

// Run calls Step() until the CPU halts or until InstructionCount reaches
// maxInstructions. Returns true if the CPU halted at the success address.
//
// If the instruction limit is reached before the CPU halts then an
// InstructionLimitExceeded error is returned. Errors from Step() are returned
// immediately.
func (mc *CPU) Run(maxInstructions int) (bool, error) {
	return mc.RunFunc(maxInstructions, nil)
}

// RunFunc is the same as Run() but calls onStep after every step that does not
// halt the CPU. An error returned by onStep ends the run and is returned. A nil
// onStep is allowed.
func (mc *CPU) RunFunc(maxInstructions int, onStep func() error) (bool, error) {
	for mc.InstructionCount < maxInstructions && !mc.Halted {
		if err := mc.Step(); err != nil {
			return false, err
		}

		// the step that halts the CPU is not an instruction
		if onStep != nil && !mc.Halted {
			if err := onStep(); err != nil {
				return false, err
			}
		}
	}

	if !mc.Halted {
		return false, InstructionLimitExceeded{PC: mc.PC.Address(), Limit: maxInstructions}
	}

	return mc.Success, nil
}
