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

// the generator creates the table.go file in the instructions package from
// the definitions in instructions.csv. it should be run from the
// instructions package directory with "go generate".
package main

import (
	"encoding/csv"
	"fmt"
	"go/format"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jetsetilly/pim65/hardware/cpu/instructions"
)

const definitionsCSVFile = "./generator/instructions.csv"
const generatedGoFile = "./table.go"

const leadingBoilerPlate = "// Code generated by generator/instructions_gen.go. DO NOT EDIT.\n\n" +
	"package instructions\n\n" +
	"// GetDefinitions returns the table of instruction definitions for the 6502.\n" +
	"// The table has 256 entries, indexed by opcode. Undefined opcodes are nil.\n" +
	"func GetDefinitions() []*Definition {\n" +
	"return []*Definition{"

const trailingBoilerPlate = "}\n}\n"

func parseCSV() (map[uint8]instructions.Definition, error) {
	df, err := os.Open(definitionsCSVFile)
	if err != nil {
		return nil, fmt.Errorf("error opening instruction definitions (%s)", err)
	}
	defer df.Close()

	csvr := csv.NewReader(df)
	csvr.Comment = rune('#')
	csvr.TrimLeadingSpace = true
	csvr.ReuseRecord = true

	// the effect field is optional (defaulting to READ)
	csvr.FieldsPerRecord = -1

	deftable := make(map[uint8]instructions.Definition)

	line := 0
	for {
		line++
		rec, err := csvr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		if !(len(rec) == 3 || len(rec) == 4) {
			return nil, fmt.Errorf("wrong number of fields in instruction definition (%s) [line %d]", rec, line)
		}

		for i := 0; i < len(rec); i++ {
			rec[i] = strings.TrimSpace(rec[i])
		}

		defn := instructions.Definition{}

		// field: opcode
		n, err := strconv.ParseUint(strings.TrimPrefix(rec[0], "0x"), 16, 8)
		if err != nil {
			return nil, fmt.Errorf("invalid opcode (%s) [line %d]", rec[0], line)
		}
		defn.OpCode = uint8(n)

		if _, ok := deftable[defn.OpCode]; ok {
			return nil, fmt.Errorf("duplicate opcode (%#02x) [line %d]", defn.OpCode, line)
		}

		// field: mnemonic
		var ok bool
		defn.Operator, ok = instructions.LookupOperator(rec[1])
		if !ok {
			return nil, fmt.Errorf("unknown mnemonic for %#02x (%s) [line %d]", defn.OpCode, rec[1], line)
		}

		// field: addressing mode. the addressing mode also defines how many
		// bytes an opcode requires
		switch strings.ToUpper(rec[2]) {
		default:
			return nil, fmt.Errorf("invalid addressing mode for %#02x (%s) [line %d]", defn.OpCode, rec[2], line)
		case "IMPLIED":
			defn.AddressingMode = instructions.Implied
		case "IMMEDIATE":
			defn.AddressingMode = instructions.Immediate
		case "RELATIVE":
			defn.AddressingMode = instructions.Relative
		case "ABSOLUTE":
			defn.AddressingMode = instructions.Absolute
		case "ZERO_PAGE":
			defn.AddressingMode = instructions.ZeroPage
		case "INDIRECT":
			defn.AddressingMode = instructions.Indirect
		case "PRE_INDEX_INDIRECT":
			defn.AddressingMode = instructions.IndexedIndirect
		case "POST_INDEX_INDIRECT":
			defn.AddressingMode = instructions.IndirectIndexed
		case "ABSOLUTE_INDEXED_X":
			defn.AddressingMode = instructions.AbsoluteIndexedX
		case "ABSOLUTE_INDEXED_Y":
			defn.AddressingMode = instructions.AbsoluteIndexedY
		case "INDEXED_ZERO_PAGE_X":
			defn.AddressingMode = instructions.ZeroPageIndexedX
		case "INDEXED_ZERO_PAGE_Y":
			defn.AddressingMode = instructions.ZeroPageIndexedY
		}
		defn.Bytes = defn.AddressingMode.Bytes()

		// field: effect category
		if len(rec) == 3 {
			defn.Effect = instructions.Read
		} else {
			switch rec[3] {
			default:
				return nil, fmt.Errorf("unknown category for %#02x (%s) [line %d]", defn.OpCode, rec[3], line)
			case "READ":
				defn.Effect = instructions.Read
			case "WRITE":
				defn.Effect = instructions.Write
			case "RMW":
				defn.Effect = instructions.RMW
			case "FLOW":
				defn.Effect = instructions.Flow
			case "SUB-ROUTINE":
				defn.Effect = instructions.Subroutine
			case "INTERRUPT":
				defn.Effect = instructions.Interrupt
			}
		}

		deftable[defn.OpCode] = defn
	}

	return deftable, nil
}

func generate(deftable map[uint8]instructions.Definition) string {
	s := strings.Builder{}
	s.WriteString(leadingBoilerPlate)
	for opcode := 0; opcode < 256; opcode++ {
		defn, ok := deftable[uint8(opcode)]
		if !ok {
			s.WriteString(fmt.Sprintf("\nnil, // 0x%02x", opcode))
			continue
		}
		s.WriteString(fmt.Sprintf("\n&Definition{OpCode: 0x%02x, Operator: %s, Bytes: %d, AddressingMode: %s, Effect: %s},",
			defn.OpCode, defn.Operator.Identifier(), defn.Bytes, defn.AddressingMode, defn.Effect))
	}
	s.WriteString("\n")
	s.WriteString(trailingBoilerPlate)
	return s.String()
}

func main() {
	deftable, err := parseCSV()
	if err != nil {
		fmt.Printf("error during instruction table generation: %s\n", err)
		os.Exit(10)
	}

	fmt.Printf("%d instructions defined, %d opcodes undefined\n", len(deftable), 256-len(deftable))

	output, err := format.Source([]byte(generate(deftable)))
	if err != nil {
		fmt.Printf("error during instruction table generation: %s\n", err)
		os.Exit(10)
	}

	err = os.WriteFile(generatedGoFile, output, 0644)
	if err != nil {
		fmt.Printf("error during instruction table generation: %s\n", err)
		os.Exit(10)
	}
}
