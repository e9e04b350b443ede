// SPDX-License-Identifier: MIT
// Copyright (c) 2026 exoticorn
// Source: github.com/exoticorn/upkr-go

package upkr

import "testing"

func TestContextStore_ProbabilityAdaptsTowardObservedBit(t *testing.T) {
	config := DefaultConfig()
	cs := newContextStore(1, &config)

	for i := 0; i < 200; i++ {
		cs.update(0, true)
	}
	if p := cs.prob(0); p < 240 {
		t.Fatalf("probability did not climb toward oneProb after many 1-bits: got %d", p)
	}

	for i := 0; i < 200; i++ {
		cs.update(0, false)
	}
	if p := cs.prob(0); p > 16 {
		t.Fatalf("probability did not fall toward 0 after many 0-bits: got %d", p)
	}
}

func TestContextStore_SimplifiedUpdateAlsoConverges(t *testing.T) {
	config := DefaultConfig()
	config.SimplifiedProbUpdate = true
	cs := newContextStore(1, &config)

	for i := 0; i < 200; i++ {
		cs.update(0, true)
	}
	if p := cs.prob(0); p < 200 {
		t.Fatalf("simplified update did not climb: got %d", p)
	}
}

func TestContextStore_InvertBitEncoding(t *testing.T) {
	config := DefaultConfig()
	config.InvertBitEncoding = true
	cs := newContextStore(1, &config)

	for i := 0; i < 200; i++ {
		cs.update(0, true)
	}
	// inverted: observed bit is false when the caller passes true, so
	// probability should fall rather than climb.
	if p := cs.prob(0); p > 56 {
		t.Fatalf("inverted update should move toward 0 given repeated true bits: got %d", p)
	}
}

func TestContextStore_CloneIsIndependent(t *testing.T) {
	config := DefaultConfig()
	cs := newContextStore(4, &config)
	cs.update(0, true)

	clone := cs.clone()
	clone.update(1, true)

	if cs.probs[1] == clone.probs[1] {
		t.Fatalf("clone should diverge from original after independent updates")
	}
}
