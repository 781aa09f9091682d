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

package setup

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/jetsetilly/pim65/curated"
)

// Sentinel errors.
const (
	BadAddress     = "setup: invalid address (%s)"
	AddressRange   = "setup: address out of range (%d)"
	MissingStart   = "setup: start_addr is missing"
	MissingFile    = "setup: binary %d has no file"
	MissingLoad    = "setup: binary %d has no load_addr"
	ConfigError    = "setup: %v"
	ConfigNotFound = "setup: config file not found: %v"
)

// Address is a 16 bit address that can be read from a JSON number or a JSON
// string.
type Address uint16

// ParseAddress parses a string representation of an address. Strings
// beginning with "0x", "0X" or "$" are hexadecimal. Any other string is
// decimal. Leading and trailing white space is ignored.
func ParseAddress(s string) (uint16, error) {
	s = strings.TrimSpace(s)

	base := 10
	digits := s
	switch {
	case strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X"):
		base = 16
		digits = s[2:]
	case strings.HasPrefix(s, "$"):
		base = 16
		digits = s[1:]
	}

	// ParseUint() would accept a sign or underscores with base 0 but we never
	// use base 0. checking for an empty string gives a better message
	if digits == "" {
		return 0, curated.Errorf(BadAddress, s)
	}

	v, err := strconv.ParseUint(digits, base, 64)
	if err != nil {
		return 0, curated.Errorf(BadAddress, s)
	}
	if v > 0xffff {
		return 0, curated.Errorf(AddressRange, v)
	}

	return uint16(v), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (a *Address) UnmarshalJSON(data []byte) error {
	var v interface{}

	d := json.NewDecoder(strings.NewReader(string(data)))
	d.UseNumber()
	if err := d.Decode(&v); err != nil {
		return err
	}

	switch v := v.(type) {
	case json.Number:
		n, err := strconv.ParseInt(v.String(), 10, 64)
		if err != nil {
			return curated.Errorf(BadAddress, v.String())
		}
		if n < 0 || n > 0xffff {
			return curated.Errorf(AddressRange, n)
		}
		*a = Address(n)
	case string:
		n, err := ParseAddress(v)
		if err != nil {
			return err
		}
		*a = Address(n)
	default:
		return curated.Errorf(BadAddress, string(data))
	}

	return nil
}

func (a Address) String() string {
	return fmt.Sprintf("$%04X", uint16(a))
}
