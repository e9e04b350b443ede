// SPDX-License-Identifier: MIT
// Copyright (c) 2026 exoticorn
// Source: github.com/exoticorn/upkr-go

package upkr

import (
	"bytes"
	"testing"
)

func TestCalculateMargin_NonNegative(t *testing.T) {
	config := DefaultConfig()
	for _, in := range testInputSet() {
		packed := Pack(in.data, 5, config, nil)
		margin, err := CalculateMargin(packed, config)
		if err != nil {
			t.Fatalf("%s: CalculateMargin failed: %v", in.name, err)
		}
		if margin < 0 {
			t.Fatalf("%s: margin = %d, want >= 0", in.name, margin)
		}
	}
}

func TestCalculateMargin_GrowsWithCompressionRatio(t *testing.T) {
	config := DefaultConfig()
	incompressible := bytes.Repeat([]byte{0, 1, 2, 3, 5, 8, 13, 21, 34, 55, 89, 144, 233}, 50)
	compressible := bytes.Repeat([]byte{0xAA}, len(incompressible))

	packedIncompressible := Pack(incompressible, 5, config, nil)
	packedCompressible := Pack(compressible, 5, config, nil)

	marginIncompressible, err := CalculateMargin(packedIncompressible, config)
	if err != nil {
		t.Fatalf("CalculateMargin failed: %v", err)
	}
	marginCompressible, err := CalculateMargin(packedCompressible, config)
	if err != nil {
		t.Fatalf("CalculateMargin failed: %v", err)
	}
	if marginCompressible < marginIncompressible {
		t.Fatalf("expected more margin for highly compressible data: %d < %d", marginCompressible, marginIncompressible)
	}
}
