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

// Package setup loads the configuration that describes which binaries are
// loaded into the address space and where execution begins.
//
// The configuration is a JSON file of the following form:
//
//	{
//		"binaries": [
//			{"file": "boot.bin", "load_addr": "$0800"},
//			{"file": "rom.bin", "load_addr": 53248}
//		],
//		"start_addr": "0x0800"
//	}
//
// Binary paths that are not absolute are relative to the directory containing
// the configuration file. Addresses can be JSON numbers or strings. Strings
// are hexadecimal if they begin with "0x", "0X" or "$" and decimal otherwise.
package setup
