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

// Package harddrive emulates a ProDOS block device in slot 2 of the Apple II.
//
// The device is backed by a 2IMG disk image. The image begins with a 64 byte
// header that is followed by the disk blocks, each of 512 bytes. Block n is
// found at byte offset 64 + n*512.
//
// The slot ROM contains the signature bytes ProDOS looks for when it scans
// the slots for block devices. The ROM entry point is $C20A. The instruction
// at the entry point is never executed. Instead a PC hook is registered with
// the CPU and the block call is handled by Go code.
//
// The block call parameters are found in the zero page:
//
//	$42		command (1 = read, 2 = write)
//	$43		unit number (must be $20)
//	$44, $45	buffer address
//	$46, $47	block number
//
// On success the A register is zero and the carry flag is clear. Failures
// (bad unit, bad command, block out of range or a host file error) are not
// reported to the guest. They are returned as errors and end the simulation.
package harddrive
