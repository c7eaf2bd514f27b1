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
	"bytes"
	"testing"
)

func TestAppendReadChunkRoundTrip(t *testing.T) {
	t.Parallel()

	payloads := [][]byte{
		{},
		{0x01},
		bytes.Repeat([]byte{0xAB}, 1000),
	}

	var buf []byte
	for _, p := range payloads {
		buf = appendChunk(buf, p)
	}

	off := 0
	for i, want := range payloads {
		got, next, err := readChunk(buf, off)
		if err != nil {
			t.Fatalf("readChunk %d: %v", i, err)
		}
		if !bytes.Equal(got, want) {
			t.Errorf("readChunk %d = %x, want %x", i, got, want)
		}
		off = next
	}
	if off != len(buf) {
		t.Errorf("consumed %d bytes, buffer is %d bytes", off, len(buf))
	}
}

func TestReadChunkBadPadding(t *testing.T) {
	t.Parallel()

	buf := appendChunk(nil, []byte("hello"))
	buf[4] ^= 0xFF // corrupt the padding field

	_, _, err := readChunk(buf, 0)
	assertKind(t, err, MalformedChunk)
}

func TestReadChunkPastEnd(t *testing.T) {
	t.Parallel()

	buf := appendChunk(nil, []byte("hello world"))
	buf = buf[:len(buf)-3] // truncate mid-payload

	_, _, err := readChunk(buf, 0)
	assertKind(t, err, MalformedChunk)
}

func TestReadChunkPrefixPastEnd(t *testing.T) {
	t.Parallel()

	_, _, err := readChunk([]byte{0x01, 0x02}, 0)
	assertKind(t, err, MalformedChunk)
}

func TestAppendChunkSizeIncludesPadding(t *testing.T) {
	t.Parallel()

	payload := []byte("payload-bytes")
	buf := appendChunk(nil, payload)

	size := uint32(buf[0]) | uint32(buf[1])<<8 | uint32(buf[2])<<16 | uint32(buf[3])<<24
	if int(size) != len(payload)+2 {
		t.Errorf("chunk size field = %d, want %d", size, len(payload)+2)
	}
}
