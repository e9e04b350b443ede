// SPDX-License-Identifier: MIT
// Copyright (c) 2026 exoticorn
// Source: github.com/exoticorn/upkr-go

package upkr

import "testing"

func TestBuildSuffixArray_SortsAllSuffixesLexicographically(t *testing.T) {
	data := []byte("banana")
	sa := buildSuffixArray(data)

	if len(sa) != len(data) {
		t.Fatalf("suffix array length = %d, want %d", len(sa), len(data))
	}

	for i := 1; i < len(sa); i++ {
		a := string(data[sa[i-1]:])
		b := string(data[sa[i]:])
		if a > b {
			t.Fatalf("suffix array not sorted at rank %d: %q > %q", i, a, b)
		}
	}
}

func TestInverseSuffixArray_IsAPermutationInverse(t *testing.T) {
	data := []byte("mississippi")
	sa := buildSuffixArray(data)
	inv := inverseSuffixArray(sa)

	for pos := range data {
		if sa[inv[pos]] != int32(pos) {
			t.Fatalf("sa[inv[%d]] mismatch", pos)
		}
	}
}

func TestKasaiLCP_MatchesBruteForce(t *testing.T) {
	data := []byte("abababab")
	sa := buildSuffixArray(data)
	inv := inverseSuffixArray(sa)
	lcp := kasaiLCP(data, sa, inv)

	for rank := 0; rank+1 < len(sa); rank++ {
		want := commonPrefixLen(data[sa[rank]:], data[sa[rank+1]:])
		if int(lcp[rank]) != want {
			t.Fatalf("lcp[%d] = %d, want %d", rank, lcp[rank], want)
		}
	}
}

func commonPrefixLen(a, b []byte) int {
	n := 0
	for n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}
	return n
}
