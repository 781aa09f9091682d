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
	"encoding/binary"
	"io"
	"os"

	"github.com/jetsetilly/pim65/curated"
	"github.com/jetsetilly/pim65/logger"
)

// Magic is the first four bytes of a 2IMG file.
const Magic = "2IMG"

// the creator code written by Create()
const creator = "PM65"

// ProDOS ordered image. the only format supported.
const formatProDOS = 1

// Header is the fixed part of a 2IMG header. All values are little-endian.
type Header struct {
	Magic      [4]byte
	Creator    [4]byte
	HeaderSize uint16
	Version    uint16
	Format     uint32
	Flags      uint32
	Blocks     uint32
	DataOffset uint32
	DataLength uint32

	// the comment and creator data chunks are not used
	CommentOffset     uint32
	CommentLength     uint32
	CreatorDataOffset uint32
	CreatorDataLength uint32

	Reserved [16]byte
}

// Sentinel errors for header validation.
const (
	BadMagic  = "not a 2IMG image (magic is %q)"
	BadFormat = "unsupported 2IMG format (%d)"
)

func (hd *HardDrive) readHeader() (Header, error) {
	var hdr Header
	r := io.NewSectionReader(hd.f, 0, HeaderSize)
	if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		return hdr, err
	}
	if string(hdr.Magic[:]) != Magic {
		return hdr, curated.Errorf(BadMagic, hdr.Magic[:])
	}
	if hdr.Format != formatProDOS {
		return hdr, curated.Errorf(BadFormat, hdr.Format)
	}
	return hdr, nil
}

// Create a blank 2IMG disk image with the specified number of blocks. An
// existing file at path is truncated.
func Create(path string, blocks int) error {
	if blocks <= 0 || blocks > 0xffff {
		return curated.Errorf(IOError, curated.Errorf(BlockOutOfRange, blocks))
	}

	hdr := Header{
		HeaderSize: HeaderSize,
		Version:    1,
		Format:     formatProDOS,
		Blocks:     uint32(blocks),
		DataOffset: HeaderSize,
		DataLength: uint32(blocks * BlockSize),
	}
	copy(hdr.Magic[:], Magic)
	copy(hdr.Creator[:], creator)

	f, err := os.Create(path)
	if err != nil {
		return curated.Errorf(IOError, err)
	}
	defer func() {
		err := f.Close()
		if err != nil {
			logger.Logf(logger.Allow, "harddrive", "could not close %s: %v", path, err)
		}
	}()

	if err := binary.Write(f, binary.LittleEndian, &hdr); err != nil {
		return curated.Errorf(IOError, err)
	}

	// zeroed blocks
	if err := f.Truncate(HeaderSize + int64(blocks)*BlockSize); err != nil {
		return curated.Errorf(IOError, err)
	}

	logger.Logf(logger.Allow, "harddrive", "created %s (%d blocks)", path, blocks)

	return nil
}
