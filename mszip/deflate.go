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
	"fmt"
	"io"

	"github.com/klauspost/compress/flate"
)

// dictWindow tracks the trailing plaintext Cabinet.dll's decompressor
// would see as the preset dictionary for the next chunk. The container
// format technically defines the dictionary as "all prior plaintext",
// but the DEFLATE sliding window is only 32 KiB wide, so anything
// beyond that never participates in a match; keeping only the trailing
// 32 KiB here is an observable-equivalent optimization noted in
// spec.md §9.
type dictWindow struct {
	buf []byte
}

func (w *dictWindow) bytes() []byte {
	return w.buf
}

// append folds plaintext into the window, evicting from the front once
// the window exceeds maxChunkPlaintext. p may be longer than
// maxChunkPlaintext (Decompress passes whatever a chunk inflated to);
// only its trailing maxChunkPlaintext bytes are then kept.
func (w *dictWindow) append(p []byte) {
	w.buf = append(w.buf, p...)
	if overflow := len(w.buf) - maxChunkPlaintext; overflow > 0 {
		w.buf = w.buf[overflow:]
	}
}

// deflateChunk compresses a single plaintext chunk into a standalone
// raw DEFLATE stream primed with dict, flushed to a terminal state so
// the stream neither expects nor tolerates further input.
func deflateChunk(chunk, dict []byte, level int) ([]byte, error) {
	var out bytes.Buffer
	w, err := flate.NewWriterDict(&out, level, dict)
	if err != nil {
		return nil, wrapError(DeflateError, "open compressor", err)
	}
	if _, err := w.Write(chunk); err != nil {
		return nil, wrapError(DeflateError, "compress chunk", err)
	}
	if err := w.Close(); err != nil {
		return nil, wrapError(DeflateError, "finalize chunk stream", err)
	}
	return out.Bytes(), nil
}

// inflateChunk decompresses a single chunk's raw DEFLATE payload in
// one shot, primed with dict.
func inflateChunk(payload, dict []byte) ([]byte, error) {
	r := flate.NewReaderDict(bytes.NewReader(payload), dict)
	defer func() { _ = r.Close() }()

	plaintext, err := io.ReadAll(r)
	if err != nil {
		return nil, wrapError(DeflateError, "decompress chunk", err)
	}
	return plaintext, nil
}

func validateLevel(level int) error {
	if level < -1 || level > 9 {
		return fmt.Errorf("mszip: level %d out of range [-1, 9]", level)
	}
	return nil
}
