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

package harddrive

import (
	"os"

	"github.com/jetsetilly/pim65/curated"
	"github.com/jetsetilly/pim65/hardware/memory/cpubus"
	"github.com/jetsetilly/pim65/hardware/peripherals"
	"github.com/jetsetilly/pim65/logger"
)

// Geometry of the disk image.
const (
	BlockSize  = 512
	HeaderSize = 64
)

// Slot ROM for slot 2.
var (
	ROMBase    = peripherals.SlotROM(2)
	EntryPoint = ROMBase + 0x0a
)

// Block call parameter addresses.
const (
	ParamCommand = uint16(0x42)
	ParamUnit    = uint16(0x43)
	ParamBuffer  = uint16(0x44)
	ParamBlock   = uint16(0x46)
)

// Block call commands and the expected unit number.
const (
	CmdRead    = 0x01
	CmdWrite   = 0x02
	UnitNumber = 0x20
)

// Sentinel errors. IOError wraps all errors returned by a block call.
const (
	IOError         = "hard drive i/o error: %v"
	BadUnit         = "invalid unit number: $%02X (expected $%02X)"
	BadCommand      = "invalid command: $%02X"
	BlockOutOfRange = "block %d out of range"
	BadBlockLength  = "block must be %d bytes (not %d)"
)

// HardDrive is an open 2IMG disk image.
type HardDrive struct {
	path string
	f    *os.File

	// size of the image file when it was opened
	size int64
}

// Open the 2IMG disk image for reading and writing. The image is not
// created if it does not exist. See Create().
func Open(path string) (*HardDrive, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, curated.Errorf(IOError, err)
	}

	// get file info. not using Stat() on the file handle because the
	// windows version (when running under wine) does not handle that
	fs, err := os.Stat(path)
	if err != nil {
		f.Close()
		return nil, curated.Errorf(IOError, err)
	}

	hd := &HardDrive{
		path: path,
		f:    f,
		size: fs.Size(),
	}

	hdr, err := hd.readHeader()
	if err != nil {
		logger.Logf(logger.Allow, "harddrive", "%s: %v", path, err)
	} else if hdr.Blocks != uint32(hd.NumBlocks()) {
		logger.Logf(logger.Allow, "harddrive", "%s: header says %d blocks but file has room for %d", path, hdr.Blocks, hd.NumBlocks())
	}

	logger.Logf(logger.Allow, "harddrive", "opened %s (%d blocks)", path, hd.NumBlocks())

	return hd, nil
}

// Close the disk image. It is safe to call Close() more than once.
func (hd *HardDrive) Close() error {
	if hd.f == nil {
		return nil
	}
	err := hd.f.Close()
	hd.f = nil
	if err != nil {
		return curated.Errorf(IOError, err)
	}
	logger.Logf(logger.Allow, "harddrive", "closed %s", hd.path)
	return nil
}

// Path returns the path of the disk image.
func (hd *HardDrive) Path() string {
	return hd.path
}

// NumBlocks returns the number of complete blocks in the image.
func (hd *HardDrive) NumBlocks() int {
	if hd.size < HeaderSize {
		return 0
	}
	return int((hd.size - HeaderSize) / BlockSize)
}

// ROM returns the contents of the slot ROM.
func (hd *HardDrive) ROM() []uint8 {
	rom := make([]uint8, peripherals.SlotROMSize)

	// ProDOS block device signature
	rom[0x01] = 0x20
	rom[0x03] = 0x00
	rom[0x05] = 0x03
	rom[0x07] = 0x00

	// the low byte of the entry point
	rom[0xff] = uint8(EntryPoint)

	// RTS at the entry point. never executed because of the PC hook
	rom[0x0a] = 0x60

	return rom
}

// offset of the block in the image file. returns an error if the block is not
// entirely inside the file.
func (hd *HardDrive) offset(block uint16) (int64, error) {
	offset := HeaderSize + int64(block)*BlockSize
	if offset+BlockSize > hd.size {
		return 0, curated.Errorf(BlockOutOfRange, block)
	}
	return offset, nil
}

// ReadBlock returns a copy of the block.
func (hd *HardDrive) ReadBlock(block uint16) ([]uint8, error) {
	if hd.f == nil {
		return nil, curated.Errorf(IOError, os.ErrClosed)
	}

	offset, err := hd.offset(block)
	if err != nil {
		return nil, err
	}

	data := make([]uint8, BlockSize)
	if _, err := hd.f.ReadAt(data, offset); err != nil {
		return nil, err
	}

	return data, nil
}

// WriteBlock writes the block and flushes it to disk. The data must be
// exactly BlockSize bytes long.
func (hd *HardDrive) WriteBlock(block uint16, data []uint8) error {
	if hd.f == nil {
		return curated.Errorf(IOError, os.ErrClosed)
	}

	if len(data) != BlockSize {
		return curated.Errorf(BadBlockLength, BlockSize, len(data))
	}

	offset, err := hd.offset(block)
	if err != nil {
		return err
	}

	if _, err := hd.f.WriteAt(data, offset); err != nil {
		return err
	}

	return hd.f.Sync()
}

// HandleBlockCall performs the block call described by the parameters in the
// zero page. Returns the values for the A register and the carry flag.
func (hd *HardDrive) HandleBlockCall(mem cpubus.Memory) (uint8, bool, error) {
	cmd := mem.Read(ParamCommand)
	unit := mem.Read(ParamUnit)
	buffer := uint16(mem.Read(ParamBuffer)) | uint16(mem.Read(ParamBuffer+1))<<8
	block := uint16(mem.Read(ParamBlock)) | uint16(mem.Read(ParamBlock+1))<<8

	if unit != UnitNumber {
		return 0, false, curated.Errorf(IOError, curated.Errorf(BadUnit, unit, UnitNumber))
	}

	switch cmd {
	case CmdRead:
		data, err := hd.ReadBlock(block)
		if err != nil {
			logger.Logf(logger.Allow, "harddrive", "read: %v", err)
			return 0, false, curated.Errorf(IOError, err)
		}
		for i, d := range data {
			mem.Write(buffer+uint16(i), d)
		}

	case CmdWrite:
		data := make([]uint8, BlockSize)
		for i := range data {
			data[i] = mem.Read(buffer + uint16(i))
		}
		if err := hd.WriteBlock(block, data); err != nil {
			logger.Logf(logger.Allow, "harddrive", "write: %v", err)
			return 0, false, curated.Errorf(IOError, err)
		}

	default:
		return 0, false, curated.Errorf(IOError, curated.Errorf(BadCommand, cmd))
	}

	return 0, false, nil
}
