// SPDX-License-Identifier: MIT
// Copyright (c) 2026 exoticorn
// Source: github.com/exoticorn/upkr-go

package upkr

import "testing"

func TestCreateHeatmap_ReconstructsOriginalBytes(t *testing.T) {
	config := DefaultConfig()
	data := []byte("the quick brown fox jumps over the lazy dog, the quick fox runs")
	packed := Pack(data, 6, config, nil)

	hm, err := CreateHeatmap(packed, config)
	if err != nil {
		t.Fatalf("CreateHeatmap failed: %v", err)
	}
	if hm.Len() != len(data) {
		t.Fatalf("heatmap length = %d, want %d", hm.Len(), len(data))
	}
	for i := range data {
		if hm.Byte(i) != data[i] {
			t.Fatalf("byte %d = %q, want %q", i, hm.Byte(i), data[i])
		}
	}
}

func TestCreateHeatmap_CostsArePositive(t *testing.T) {
	config := DefaultConfig()
	data := []byte("abcabcabcabcabcabcabc")
	packed := Pack(data, 5, config, nil)

	hm, err := CreateHeatmap(packed, config)
	if err != nil {
		t.Fatalf("CreateHeatmap failed: %v", err)
	}
	sawLiteral := false
	sawCopy := false
	for i := 0; i < hm.Len(); i++ {
		if hm.Cost(i) <= 0 {
			t.Fatalf("byte %d has non-positive cost %f", i, hm.Cost(i))
		}
		if hm.IsLiteral(i) {
			sawLiteral = true
		} else {
			sawCopy = true
		}
	}
	if !sawLiteral {
		t.Fatalf("expected at least one literal byte in the heatmap")
	}
	if !sawCopy {
		t.Fatalf("expected at least one copied (match) byte for repetitive input")
	}
}

func TestCreateHeatmap_EmptyInput(t *testing.T) {
	config := DefaultConfig()
	packed := Pack(nil, 3, config, nil)

	hm, err := CreateHeatmap(packed, config)
	if err != nil {
		t.Fatalf("CreateHeatmap failed: %v", err)
	}
	if hm.Len() != 0 {
		t.Fatalf("heatmap length = %d, want 0", hm.Len())
	}
}
