// SPDX-License-Identifier: MIT
// Copyright (c) 2026 exoticorn
// Source: github.com/exoticorn/upkr-go

package upkr

import "testing"

func TestConfig_MinLength(t *testing.T) {
	c := DefaultConfig()
	if got := c.minLength(); got != 1 {
		t.Fatalf("minLength() = %d, want 1", got)
	}
	c.EOFInLength = true
	if got := c.minLength(); got != 2 {
		t.Fatalf("minLength() with EOFInLength = %d, want 2", got)
	}
}

func TestConfig_UnboundedDefaults(t *testing.T) {
	c := DefaultConfig()
	if got := c.maxOffset(); got != ^uint32(0) {
		t.Fatalf("maxOffset() default = %d, want max uint32", got)
	}
	if got := c.maxLength(); got != ^uint32(0) {
		t.Fatalf("maxLength() default = %d, want max uint32", got)
	}
}

func TestConfig_ExplicitBounds(t *testing.T) {
	c := DefaultConfig()
	c.MaxOffset = 100
	c.MaxLength = 50
	if got := c.maxOffset(); got != 100 {
		t.Fatalf("maxOffset() = %d, want 100", got)
	}
	if got := c.maxLength(); got != 50 {
		t.Fatalf("maxLength() = %d, want 50", got)
	}
}
