// SPDX-License-Identifier: MIT
// Copyright (c) 2026 exoticorn
// Source: github.com/exoticorn/upkr-go

/*
Package upkr implements the core of upkr, a small-footprint LZ77 plus
adaptive-binary-arithmetic (rANS) compressor aimed at environments where the
decompressor is the constraint: retro CPUs, demoscene executable packers,
tiny WebAssembly runtimes. The format trades encoder complexity for a
decoder that can be hand-written in well under 200 bytes of assembly.

The package has no file format of its own: Pack produces exactly the bytes
Unpack consumes, with no magic, no length prefix and no checksum. An
encoder and a decoder must agree on a Config bit-for-bit; a mismatched
Config produces garbage silently rather than an error.

# Compress

	packed := upkr.Pack(data, level, upkr.DefaultConfig(), nil)

level ranges 0 (fastest, greedy) to 9 (slowest, closest to optimal); out of
range values are clamped. Pack never fails.

# Decompress

	out, err := upkr.Unpack(packed, upkr.DefaultConfig(), len(data)+16)

maxSize bounds the output buffer; Unpack returns an error rather than
growing past it.

# Diagnostics

CalculateMargin, CompressedSize and CreateHeatmap are read-only passes over
an already-packed stream, used by external tooling (in-place decompression,
size reporting, heatmap visualisation) that is otherwise out of scope for
this package.
*/
package upkr
