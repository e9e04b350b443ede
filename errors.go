// SPDX-License-Identifier: MIT
// Copyright (c) 2026 exoticorn
// Source: github.com/exoticorn/upkr-go

package upkr

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Unpack, CalculateMargin and CompressedSize.
var (
	// ErrUnexpectedEOF is returned when the rANS decoder needs more input bytes
	// (or bits, in bitstream mode) than packed data supplies.
	ErrUnexpectedEOF = errors.New("upkr: unexpected end of input")

	// ErrValueOverflow is returned when a prefix-coded length or offset would
	// need more than 32 bits to represent, which only corrupt or malicious
	// input can trigger.
	ErrValueOverflow = errors.New("upkr: value overflow")
)

// OffsetOutOfRangeError is returned when a decoded match offset reaches
// before the start of the output produced so far.
type OffsetOutOfRangeError struct {
	Offset   int
	Position int
}

func (e *OffsetOutOfRangeError) Error() string {
	return fmt.Sprintf("upkr: match offset out of range: %d > %d", e.Offset, e.Position)
}

// OverSizeError is returned when decoded output would exceed the caller's
// maxSize limit.
type OverSizeError struct {
	Size  int
	Limit int
}

func (e *OverSizeError) Error() string {
	return fmt.Sprintf("upkr: unpacked data over size limit: %d > %d", e.Size, e.Limit)
}
