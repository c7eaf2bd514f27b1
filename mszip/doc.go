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

// Package mszip implements the MSZIP container format produced and
// consumed by the Windows Cabinet compression API
// (CreateCompressor/Compress/Decompress with COMPRESS_ALGORITHM_MSZIP).
//
// A container is a 24-byte header followed by a sequence of framed
// chunks, each an independent raw DEFLATE stream primed with a preset
// dictionary of all prior plaintext. [Decompress] reads back what
// [Compress] produces. The DEFLATE engine used here has no zlib-style
// memory-level setting, so [Compress] sets none; acceptance of its
// output by Cabinet.dll is not exercised by this package's tests.
package mszip
