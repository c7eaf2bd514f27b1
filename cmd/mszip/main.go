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

// Command mszip compresses and decompresses MSZIP containers.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/frereit/go-mszip/mszip"
)

const appVersion = "0.1.0"

var (
	decompress = flag.Bool("d", false, "decompress instead of compress")
	inputFile  = flag.String("i", "", "input file path (default: stdin)")
	outputFile = flag.String("o", "", "output file path (default: stdout)")
	level      = flag.Int("level", mszip.DefaultLevel, "compression level, -1..9 (ignored with -d)")
	version    = flag.Bool("version", false, "print version and exit")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [-d] [-i input] [-o output] [-level N]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Compresses stdin to an MSZIP container on stdout, or with -d\n")
		fmt.Fprintf(os.Stderr, "decompresses an MSZIP container on stdin back to stdout.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *version {
		fmt.Printf("mszip version %s\n", appVersion)
		os.Exit(0)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	in, err := openInput(*inputFile)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer func() { _ = in.close() }()

	out, err := openOutput(*outputFile)
	if err != nil {
		return fmt.Errorf("open output: %w", err)
	}
	defer func() { _ = out.close() }()

	data, err := io.ReadAll(in.r)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	var result []byte
	if *decompress {
		result, err = mszip.Decompress(data)
		if err != nil {
			return fmt.Errorf("decompress: %w", err)
		}
	} else {
		result, err = mszip.Compress(data, *level)
		if err != nil {
			return fmt.Errorf("compress: %w", err)
		}
	}

	if _, err := out.w.Write(result); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

type inputSource struct {
	r     io.Reader
	close func() error
}

func openInput(path string) (*inputSource, error) {
	if path == "" {
		return &inputSource{r: os.Stdin, close: func() error { return nil }}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return &inputSource{r: f, close: f.Close}, nil
}

type outputSink struct {
	w     io.Writer
	close func() error
}

func openOutput(path string) (*outputSink, error) {
	if path == "" {
		return &outputSink{w: os.Stdout, close: func() error { return nil }}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return &outputSink{w: f, close: f.Close}, nil
}
