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

package keyboard

// ParseInput decodes the input strings and concatenates the result. The
// following escape sequences are recognised:
//
//	\n and \r	carriage return ($0D)
//	\t		tab ($09)
//	\\		backslash
//	\0		zero byte
//	\e		escape ($1B)
//	\xHH		byte with the hex value HH
//
// A backslash that does not begin a recognised sequence, including a \x
// sequence without two valid hex digits, is taken literally and the
// characters that follow it are decoded as normal.
func ParseInput(input ...string) []uint8 {
	var b []uint8

	for _, s := range input {
		i := 0
		for i < len(s) {
			if s[i] != '\\' || i+1 >= len(s) {
				b = append(b, s[i])
				i++
				continue
			}

			switch s[i+1] {
			case 'n', 'r':
				b = append(b, 0x0d)
				i += 2
			case 't':
				b = append(b, 0x09)
				i += 2
			case '\\':
				b = append(b, '\\')
				i += 2
			case '0':
				b = append(b, 0x00)
				i += 2
			case 'e':
				b = append(b, 0x1b)
				i += 2
			case 'x':
				if i+3 < len(s) {
					hi, okh := hexDigit(s[i+2])
					lo, okl := hexDigit(s[i+3])
					if okh && okl {
						b = append(b, hi<<4|lo)
						i += 4
						break
					}
				}
				b = append(b, '\\')
				i++
			default:
				b = append(b, '\\')
				i++
			}
		}
	}

	return b
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
