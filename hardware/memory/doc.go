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

// Package memory implements the 64KB address space of the 6502. Every address
// is backed by a byte of RAM but any address can have a read hook or a write
// hook attached. Hooks are how peripherals appear in the address space.
//
// A hooked access replaces the access to the backing store. A read from an
// address with a read hook returns whatever the hook returns and the backing
// byte is not consulted. Similarly, a write to an address with a write hook is
// passed to the hook and the backing byte is left untouched.
//
// The Peek() and Poke() functions access the backing store directly and never
// trigger a hook. They are intended for the host, for debugging and for
// loading, and should never be used to emulate guest behaviour.
package memory
