// SPDX-License-Identifier: MIT
// Copyright (c) 2026 exoticorn
// Source: github.com/exoticorn/upkr-go

package upkr

import "testing"

func TestOp_LiteralRoundTripsThroughRans(t *testing.T) {
	config := DefaultConfig()

	encState := newCoderState(&config)
	coder := newRansEncoder(&config)
	literalOp('Z').encode(coder, &encState, &config)
	literalOp('y').encode(coder, &encState, &config)
	encodeEOF(coder, &encState, &config)
	packed := coder.finish()

	out, err := Unpack(packed, config, 16)
	if err != nil {
		t.Fatalf("Unpack failed: %v", err)
	}
	if string(out) != "Zy" {
		t.Fatalf("got %q, want %q", out, "Zy")
	}
}

func TestOp_MatchWithLastOffsetShortcut(t *testing.T) {
	config := DefaultConfig()

	encState := newCoderState(&config)
	coder := newRansEncoder(&config)
	for _, b := range []byte("ab") {
		literalOp(b).encode(coder, &encState, &config)
	}
	matchOp(2, 2).encode(coder, &encState, &config) // "abab"
	literalOp('!').encode(coder, &encState, &config)
	// A literal intervened, so this reuses offset 2 via the new-offset
	// shortcut rather than re-encoding it.
	matchOp(2, 2).encode(coder, &encState, &config)
	encodeEOF(coder, &encState, &config)
	packed := coder.finish()

	out, err := Unpack(packed, config, 16)
	if err != nil {
		t.Fatalf("Unpack failed: %v", err)
	}
	if want := "abab!b!"; string(out) != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}

func TestEncodeLength_PrefixCodeRoundTrips(t *testing.T) {
	config := DefaultConfig()
	values := []uint32{1, 2, 3, 4, 7, 8, 255, 256, 65535, 1 << 20}

	for _, v := range values {
		encState := newCoderState(&config)
		coder := newRansEncoder(&config)
		encodeLength(coder, &encState, 0, v, &config)
		packed := coder.finish()

		dec, err := newRansDecoder(packed, &config)
		if err != nil {
			t.Fatalf("newRansDecoder failed: %v", err)
		}
		decState := newCoderState(&config)
		got, err := decodeLength(dec, &decState, 0, config)
		if err != nil {
			t.Fatalf("decodeLength failed for %d: %v", v, err)
		}
		if got != v {
			t.Fatalf("decodeLength roundtrip mismatch: got %d want %d", got, v)
		}
	}
}
