// Copyright (c) 2025 The go-mszip contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of go-mszip.
//
// go-mszip is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// go-mszip is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with go-mszip.  If not, see <https://www.gnu.org/licenses/>.

package mszip

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"
)

// headerSize is the fixed, non-negotiable size of the container header.
const headerSize = 24

// magic is the fixed 6-byte preamble Cabinet.dll.Compress hardcodes for
// every MSZIP container it produces.
var magic = [6]byte{0x0A, 0x51, 0xE5, 0xC0, 0x18, 0x00}

// header is the parsed form of the 24-byte container header.
type header struct {
	algorithm           Algorithm
	decompressedLen     uint64
	firstChunkDecompLen uint64
}

// encodeHeader packs h into a 24-byte buffer, computing and writing the
// CRC byte at offset 6.
//
// The CRC is not "CRC-32 of the whole header with byte 6 zeroed": it is
// the two-stage construction Cabinet.dll actually uses, computed by
// crcByte on the buffer once the rest of the fields are in place.
func encodeHeader(algorithm Algorithm, decompressedLen, firstChunkDecompLen uint64) []byte {
	buf := make([]byte, headerSize)
	copy(buf[0:6], magic[:])
	buf[6] = 0 // crc placeholder, filled in below
	buf[7] = byte(algorithm)
	binary.LittleEndian.PutUint64(buf[8:16], decompressedLen)
	binary.LittleEndian.PutUint64(buf[16:24], firstChunkDecompLen)
	buf[6] = crcByte(buf)
	return buf
}

// crcByte computes the header CRC per the Cabinet.dll convention: a
// two-stage CRC-32 (zlib/Ethernet polynomial 0xEDB88320, reflected)
// first over the 6 magic bytes, then continued (using that value as
// the seed) over bytes [7:24) — i.e. everything after the CRC byte
// itself, which is excluded from both stages.
func crcByte(buf []byte) byte {
	stage1 := crc32.ChecksumIEEE(buf[0:6])
	stage2 := crc32.Update(stage1, crc32.IEEETable, buf[7:24])
	return byte(stage2)
}

// decodeHeader parses and validates the first 24 bytes of buf.
func decodeHeader(buf []byte) (*header, error) {
	if len(buf) < headerSize {
		return nil, newError(MalformedHeader, fmt.Sprintf("need %d bytes, got %d", headerSize, len(buf)))
	}

	var got [6]byte
	copy(got[:], buf[0:6])
	if got != magic {
		return nil, newError(MalformedHeader,
			fmt.Sprintf("bad magic: expected %x, got %x", magic, got))
	}

	algorithm := Algorithm(buf[7])
	if algorithm != AlgorithmMSZIP {
		return nil, newError(UnsupportedAlgorithm,
			fmt.Sprintf("expected MSZIP, got %s", algorithm))
	}

	expected := buf[6]
	actual := crcByte(buf[:headerSize])
	if expected != actual {
		return nil, newError(ChecksumMismatch,
			fmt.Sprintf("header crc byte: expected %#02x, got %#02x", expected, actual))
	}

	return &header{
		algorithm:           algorithm,
		decompressedLen:     binary.LittleEndian.Uint64(buf[8:16]),
		firstChunkDecompLen: binary.LittleEndian.Uint64(buf[16:24]),
	}, nil
}
