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
)

// chunkPadding is the fixed 2-byte marker ("CK" in ASCII, little-endian
// as 0x434B) that follows every chunk's size field.
const chunkPadding = 0x434B

// chunkPrefixSize is the width of the 4-byte size field plus the 2-byte
// padding marker that precedes every chunk's DEFLATE payload.
const chunkPrefixSize = 6

// maxChunkPlaintext is the maximum plaintext a single chunk may carry.
// It is also the DEFLATE sliding-window size this format relies on.
const maxChunkPlaintext = 32768

// appendChunk appends a framed chunk (size prefix, "CK" padding,
// payload) for the given DEFLATE payload bytes to dst and returns the
// extended slice.
func appendChunk(dst []byte, payload []byte) []byte {
	var prefix [chunkPrefixSize]byte
	//nolint:gosec // payload length is bounded by a single chunk of compressed 32KiB plaintext, far under 1<<32
	binary.LittleEndian.PutUint32(prefix[0:4], uint32(len(payload))+2)
	binary.LittleEndian.PutUint16(prefix[4:6], chunkPadding)
	dst = append(dst, prefix[:]...)
	dst = append(dst, payload...)
	return dst
}

// readChunk reads one framed chunk from buf starting at offset off and
// returns its DEFLATE payload slice along with the offset of the byte
// following the chunk.
func readChunk(buf []byte, off int) (payload []byte, next int, err error) {
	if off+chunkPrefixSize > len(buf) {
		return nil, 0, newError(MalformedChunk, fmt.Sprintf("chunk prefix runs past end of buffer at offset %d", off))
	}

	size := binary.LittleEndian.Uint32(buf[off : off+4])
	padding := binary.LittleEndian.Uint16(buf[off+4 : off+6])
	if padding != chunkPadding {
		return nil, 0, newError(MalformedChunk, fmt.Sprintf("bad chunk padding: expected %#04x, got %#04x", chunkPadding, padding))
	}
	if size < 2 {
		return nil, 0, newError(MalformedChunk, fmt.Sprintf("chunk size %d smaller than padding field", size))
	}

	payloadLen := int(size) - 2
	payloadStart := off + chunkPrefixSize
	payloadEnd := payloadStart + payloadLen
	if payloadEnd > len(buf) || payloadEnd < payloadStart {
		return nil, 0, newError(MalformedChunk, fmt.Sprintf("chunk payload of %d bytes runs past end of buffer at offset %d", payloadLen, payloadStart))
	}

	return buf[payloadStart:payloadEnd], payloadEnd, nil
}
