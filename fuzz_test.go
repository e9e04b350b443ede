// SPDX-License-Identifier: MIT
// Copyright (c) 2026 exoticorn
// Source: github.com/exoticorn/upkr-go

package upkr

import (
	"bytes"
	"testing"
)

func FuzzPackUnpack(f *testing.F) {
	for _, in := range testInputSet() {
		f.Add(in.data, 0)
		f.Add(in.data, 9)
	}
	f.Add([]byte("the quick brown fox"), 5)

	f.Fuzz(func(t *testing.T, data []byte, level int) {
		if level < 0 {
			level = -level
		}
		level %= 10

		config := DefaultConfig()
		packed := Pack(data, level, config, nil)

		out, err := Unpack(packed, config, len(data))
		if err != nil {
			t.Fatalf("Unpack failed for level %d: %v", level, err)
		}
		if !bytes.Equal(out, data) {
			t.Fatalf("round trip mismatch at level %d: got %q want %q", level, out, data)
		}
	})
}

func FuzzUnpackNeverPanics(f *testing.F) {
	config := DefaultConfig()
	f.Add(Pack([]byte("seed data for the arithmetic coder"), 5, config, nil))
	f.Add([]byte{})
	f.Add([]byte{0x00})

	f.Fuzz(func(t *testing.T, packed []byte) {
		_, _ = Unpack(packed, config, 1<<20)
	})
}
