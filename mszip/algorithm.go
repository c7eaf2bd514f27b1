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

// Algorithm is the Cabinet compression-algorithm byte stored in the
// container header. See
// https://learn.microsoft.com/en-us/windows/win32/api/compressapi/nf-compressapi-createcompressor
// for the parameter this mirrors.
type Algorithm uint8

const (
	// AlgorithmMSZIP is the only algorithm this package implements.
	AlgorithmMSZIP Algorithm = 2

	// AlgorithmXPRESS, AlgorithmXPRESSHuff, and AlgorithmLZMS are
	// recognized so that [Decompress] can name them in an
	// UnsupportedAlgorithm error; none of the three is implemented.
	AlgorithmXPRESS     Algorithm = 3
	AlgorithmXPRESSHuff Algorithm = 4
	AlgorithmLZMS       Algorithm = 5
)

// String returns the symbolic algorithm name, or "unknown(N)" for any
// value this package does not recognize.
func (a Algorithm) String() string {
	switch a {
	case AlgorithmMSZIP:
		return "MSZIP"
	case AlgorithmXPRESS:
		return "XPRESS"
	case AlgorithmXPRESSHuff:
		return "XPRESS_HUFF"
	case AlgorithmLZMS:
		return "LZMS"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(a))
	}
}
