// SPDX-License-Identifier: MIT
// Copyright (c) 2026 exoticorn
// Source: github.com/exoticorn/upkr-go

package upkr

// Config is the bit-exact format configuration shared by Pack and Unpack.
// Every field must match between the encoder and the decoder; a mismatch
// produces garbage rather than an error, since the format carries no magic
// bytes to detect it.
type Config struct {
	// UseBitstream selects bit-packed rANS output (state width 15 bits)
	// instead of byte-renormalised output (state width 12 bits).
	UseBitstream bool

	// ParityContexts selects separate context banks by position modulo N.
	// Must be 1, 2 or 4.
	ParityContexts int

	// InvertBitEncoding flips rANS bit polarity everywhere.
	InvertBitEncoding bool

	// IsMatchBit is the polarity of the literal/match type bit.
	IsMatchBit bool

	// NewOffsetBit is the polarity of the new-offset bit.
	NewOffsetBit bool

	// ContinueValueBit is the polarity of the prefix-code continuation bit.
	ContinueValueBit bool

	// BitstreamIsBigEndian selects MSB-first bit packing in bitstream mode.
	BitstreamIsBigEndian bool

	// SimplifiedProbUpdate selects the single-expression context update
	// tailored for 8-bit CPUs instead of the two-branch standard update.
	SimplifiedProbUpdate bool

	// NoRepeatedOffsets disables the last-offset shortcut: every match
	// re-encodes its offset in full.
	NoRepeatedOffsets bool

	// EOFInLength selects EOF via a length-1 match instead of an
	// offset-0 sentinel.
	EOFInLength bool

	// MaxOffset upper-bounds match offsets accepted and emitted. Zero means
	// unbounded (up to the input size).
	MaxOffset uint32

	// MaxLength upper-bounds match lengths accepted and emitted. Zero means
	// unbounded (up to the input size).
	MaxLength uint32
}

// DefaultConfig returns the standard upkr format: byte-mode rANS, one
// context bank, no polarity inversions, last-offset shortcut enabled, EOF
// via offset-0, and no length caps.
func DefaultConfig() Config {
	return Config{
		UseBitstream:         false,
		ParityContexts:       1,
		InvertBitEncoding:    false,
		IsMatchBit:           true,
		NewOffsetBit:         true,
		ContinueValueBit:     true,
		BitstreamIsBigEndian: false,
		SimplifiedProbUpdate: false,
		NoRepeatedOffsets:    false,
		EOFInLength:          false,
		MaxOffset:            0,
		MaxLength:            0,
	}
}

// minLength is the smallest length a Match op may carry: 2 when EOFInLength
// is set (length 1 is reserved for the EOF sentinel), else 1.
func (c *Config) minLength() uint32 {
	if c.EOFInLength {
		return 2
	}
	return 1
}

// maxOffset returns the effective offset cap, substituting "unbounded" for
// a zero MaxOffset.
func (c *Config) maxOffset() uint32 {
	if c.MaxOffset == 0 {
		return ^uint32(0)
	}
	return c.MaxOffset
}

// maxLength returns the effective length cap, substituting "unbounded" for
// a zero MaxLength.
func (c *Config) maxLength() uint32 {
	if c.MaxLength == 0 {
		return ^uint32(0)
	}
	return c.MaxLength
}
