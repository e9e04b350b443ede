// SPDX-License-Identifier: MIT
// Copyright (c) 2026 exoticorn
// Source: github.com/exoticorn/upkr-go
//
// Grounded on _examples/original_source/src/match_finder.rs's
// MatchFinder::new: builds a suffix array over the whole input, its
// inverse, and the Kasai LCP array. original_source builds the array with
// the cdivsufsort crate (a DC3/SA-IS binding); no suffix-array library
// appears anywhere in the retrieved Go corpus, so the array is built here
// with prefix doubling (a comparison sort per doubling round, so
// O(n log^2 n)) instead — see DESIGN.md for why no
// third-party dependency could fill this role.

package upkr

import "sort"

// buildSuffixArray returns the suffix array of data: sa[i] is the
// starting offset of the lexicographically i-th suffix.
func buildSuffixArray(data []byte) []int32 {
	n := len(data)
	sa := make([]int32, n)
	rank := make([]int32, n)
	tmp := make([]int32, n)

	for i := 0; i < n; i++ {
		sa[i] = int32(i)
		rank[i] = int32(data[i])
	}

	for k := 1; k < n; k *= 2 {
		key := func(i int32) (int32, int32) {
			r1 := rank[i]
			r2 := int32(-1)
			if int(i)+k < n {
				r2 = rank[int(i)+k]
			}
			return r1, r2
		}
		sort.Slice(sa, func(a, b int) bool {
			ra1, ra2 := key(sa[a])
			rb1, rb2 := key(sa[b])
			if ra1 != rb1 {
				return ra1 < rb1
			}
			return ra2 < rb2
		})

		tmp[sa[0]] = 0
		for i := 1; i < n; i++ {
			tmp[sa[i]] = tmp[sa[i-1]]
			r1a, r2a := key(sa[i-1])
			r1b, r2b := key(sa[i])
			if r1a != r1b || r2a != r2b {
				tmp[sa[i]]++
			}
		}
		copy(rank, tmp)
		if rank[sa[n-1]] == int32(n-1) {
			break
		}
	}

	return sa
}

// inverseSuffixArray returns, for every data offset, its rank in sa.
func inverseSuffixArray(sa []int32) []uint32 {
	inv := make([]uint32, len(sa))
	for rank, pos := range sa {
		inv[pos] = uint32(rank)
	}
	return inv
}

// kasaiLCP computes, for every suffix-array rank i, the length of the
// longest common prefix between the suffix at rank i and the suffix at
// rank i+1 (0 for the last rank), using Kasai's linear-time algorithm.
func kasaiLCP(data []byte, sa []int32, inv []uint32) []uint32 {
	n := len(data)
	lcp := make([]uint32, n)
	length := 0
	for pos := 0; pos < n; pos++ {
		rank := inv[pos]
		if int(rank)+1 < n {
			j := int(sa[rank+1])
			for pos+length < n && j+length < n && data[pos+length] == data[j+length] {
				length++
			}
			lcp[rank] = uint32(length)
		}
		if length > 0 {
			length--
		}
	}
	return lcp
}
