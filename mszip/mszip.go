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

import "fmt"

// DefaultLevel is the DEFLATE compression level [Compress] uses unless
// told otherwise. It matches Cabinet.dll's own default.
const DefaultLevel = 9

// MaxDecompressedLen bounds the allocation [Decompress] is willing to
// make on the strength of an untrusted header's decompressed-length
// field, guarding against a header claiming an implausible size. It is
// deliberately generous; callers with tighter requirements should check
// the header length themselves before calling Decompress on untrusted
// input of unknown provenance.
const MaxDecompressedLen = 1 << 34 // 16 GiB

// Compress packs plaintext into an MSZIP container, splitting it into
// chunks of at most 32768 bytes, each compressed as an independent raw
// DEFLATE stream primed with the plaintext of every prior chunk.
//
// level follows zlib convention: -1 means "library default", 0 means
// no compression, 9 means maximum compression (and is what DefaultLevel
// is set to, matching Cabinet.dll). Any other value is a programmer
// error, not a data error — per spec.md §7, compress has no legitimate
// input that can fail.
func Compress(plaintext []byte, level int) ([]byte, error) {
	if err := validateLevel(level); err != nil {
		return nil, err
	}

	firstChunkLen := len(plaintext)
	if firstChunkLen > maxChunkPlaintext {
		firstChunkLen = maxChunkPlaintext
	}

	out := encodeHeader(AlgorithmMSZIP, uint64(len(plaintext)), uint64(firstChunkLen))

	var dict dictWindow
	for off := 0; off < len(plaintext); off += maxChunkPlaintext {
		end := off + maxChunkPlaintext
		if end > len(plaintext) {
			end = len(plaintext)
		}
		chunk := plaintext[off:end]

		payload, err := deflateChunk(chunk, dict.bytes(), level)
		if err != nil {
			return nil, err
		}
		out = appendChunk(out, payload)
		dict.append(chunk)
	}

	return out, nil
}

// Decompress unpacks an MSZIP container back into its plaintext,
// verifying the header magic, CRC and algorithm byte, the first chunk's
// decompressed length, and the total decompressed length against the
// header. The lengths of later chunks are not checked individually.
func Decompress(compressed []byte) ([]byte, error) {
	hdr, err := decodeHeader(compressed)
	if err != nil {
		return nil, err
	}

	if hdr.decompressedLen > MaxDecompressedLen {
		return nil, newError(LengthMismatch,
			fmt.Sprintf("declared length %d exceeds MaxDecompressedLen %d", hdr.decompressedLen, MaxDecompressedLen))
	}

	out := make([]byte, 0, hdr.decompressedLen)

	var dict dictWindow
	off := headerSize
	first := true
	for uint64(len(out)) < hdr.decompressedLen {
		payload, next, err := readChunk(compressed, off)
		if err != nil {
			return nil, err
		}
		off = next

		plaintext, err := inflateChunk(payload, dict.bytes())
		if err != nil {
			return nil, err
		}

		if first {
			if uint64(len(plaintext)) != hdr.firstChunkDecompLen {
				return nil, newError(LengthMismatch,
					fmt.Sprintf("first chunk decompressed to %d bytes, header declared %d", len(plaintext), hdr.firstChunkDecompLen))
			}
			first = false
		}

		out = append(out, plaintext...)
		dict.append(plaintext)
	}

	if uint64(len(out)) != hdr.decompressedLen {
		return nil, newError(LengthMismatch,
			fmt.Sprintf("decompressed %d bytes, header declared %d", len(out), hdr.decompressedLen))
	}

	return out, nil
}
