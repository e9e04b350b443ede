// SPDX-License-Identifier: MIT
// Copyright (c) 2026 exoticorn
// Source: github.com/exoticorn/upkr-go
//
// Grounded on _examples/original_source/src/match_finder.rs: the same
// suffix-array neighbor-walk algorithm (move left/right from the query
// position's rank, bounded by LCP and a patience counter, draining a
// max-heap of candidate positions per descending length), ported from
// Rust's BinaryHeap/Iterator idiom to Go's container/heap and a
// pull-style next() method.

package upkr

import "container/heap"

// matchFinder indexes the whole input once and answers nearest-match
// queries at any position via the suffix array / LCP structure.
type matchFinder struct {
	data []byte
	sa   []int32
	inv  []uint32
	lcp  []uint32

	maxQueueSize        int
	maxMatchesPerLength int
	patience            int
	maxLengthDiff       int
}

func newMatchFinder(data []byte) *matchFinder {
	sa := buildSuffixArray(data)
	inv := inverseSuffixArray(sa)
	lcp := kasaiLCP(data, sa, inv)
	return &matchFinder{
		data:                data,
		sa:                  sa,
		inv:                 inv,
		lcp:                 lcp,
		maxQueueSize:        100,
		maxMatchesPerLength: 5,
		patience:            100,
		maxLengthDiff:       2,
	}
}

// match is one candidate back-reference: length bytes available starting
// at pos, which must be strictly before the query position.
type match struct {
	Pos    int
	Length int
}

// matches returns an iterator over candidate matches for the suffix
// starting at pos, visiting strictly decreasing lengths and, within a
// length, up to maxMatchesPerLength positions drawn from a bounded
// neighborhood of the query's suffix-array rank.
func (f *matchFinder) matches(pos int) *matchIter {
	index := int(f.inv[pos])
	it := &matchIter{
		finder:        f,
		posLimit:      pos,
		leftIndex:     index,
		leftLength:    maxInt,
		rightIndex:    index,
		rightLength:   maxInt,
		currentLength: maxInt,
		queue:         &posHeap{},
	}
	it.moveLeft()
	it.moveRight()
	return it
}

const maxInt = int(^uint(0) >> 1)

type posHeap []int

func (h posHeap) Len() int            { return len(h) }
func (h posHeap) Less(i, j int) bool  { return h[i] > h[j] } // max-heap
func (h posHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *posHeap) Push(x any) { *h = append(*h, x.(int)) }
func (h *posHeap) Pop() any {
	old := *h
	n := len(old)
	v := old[n-1]
	*h = old[:n-1]
	return v
}

// matchIter walks matches for one query position in decreasing-length
// order, refilling its queue with a fresh neighborhood each time the
// current length's candidates are exhausted.
type matchIter struct {
	finder        *matchFinder
	posLimit      int
	leftIndex     int
	leftLength    int
	rightIndex    int
	rightLength   int
	currentLength int
	matchesLeft   int
	maxLength     int
	queue         *posHeap
}

// next returns the next candidate match, or ok=false once no match of
// length >= 2 remains within maxLengthDiff of the best length seen.
func (it *matchIter) next() (match, bool) {
	if it.queue.Len() == 0 || it.matchesLeft == 0 {
		it.queue = &posHeap{}
		it.currentLength = it.currentLength - 1
		if it.currentLength < 0 {
			it.currentLength = 0
		}
		if bound := maxOf(it.leftLength, it.rightLength); it.currentLength > bound {
			it.currentLength = bound
		}
		it.maxLength = maxOf(it.maxLength, it.currentLength)

		if it.currentLength < 2 || it.currentLength+it.finder.maxLengthDiff < it.maxLength {
			return match{}, false
		}

		for it.queue.Len() < it.finder.maxQueueSize &&
			(it.leftLength == it.currentLength || it.rightLength == it.currentLength) {
			if it.leftLength == it.currentLength {
				heap.Push(it.queue, int(it.finder.sa[it.leftIndex]))
				it.moveLeft()
			}
			if it.rightLength == it.currentLength {
				heap.Push(it.queue, int(it.finder.sa[it.rightIndex]))
				it.moveRight()
			}
		}
		it.matchesLeft = it.finder.maxMatchesPerLength
	}

	it.matchesLeft--
	if it.queue.Len() == 0 {
		return match{}, false
	}
	pos := heap.Pop(it.queue).(int)
	return match{Pos: pos, Length: it.currentLength}, true
}

func (it *matchIter) moveLeft() {
	patience := it.finder.patience
	for it.leftLength > 0 && patience > 0 && it.leftIndex > 0 {
		it.leftIndex--
		if l := int(it.finder.lcp[it.leftIndex]); l < it.leftLength {
			it.leftLength = l
		}
		if p := int(it.finder.sa[it.leftIndex]); p >= 0 && p < it.posLimit {
			return
		}
		patience--
	}
	it.leftLength = 0
}

func (it *matchIter) moveRight() {
	patience := it.finder.patience
	for it.rightLength > 0 && patience > 0 && it.rightIndex+1 < len(it.finder.sa) {
		it.rightIndex++
		if l := int(it.finder.lcp[it.rightIndex-1]); l < it.rightLength {
			it.rightLength = l
		}
		if p := int(it.finder.sa[it.rightIndex]); p >= 0 && p < it.posLimit {
			return
		}
		patience--
	}
	it.rightLength = 0
}

func maxOf(a, b int) int {
	if a > b {
		return a
	}
	return b
}
