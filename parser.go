// SPDX-License-Identifier: MIT
// Copyright (c) 2026 exoticorn
// Source: github.com/exoticorn/upkr-go
//
// Grounded on _examples/original_source/src/parsing_packer.rs: the same
// forward dynamic-programming arrival table keyed by output position,
// the same cost-pruned per-offset dedup, the same near-match ring buffer
// over the last 1024 positions and 256 last-seen-byte positions, ported
// from Rust's Rc<Parse> shared-tail chains to a Go slice-backed arena of
// parse links (parseArena below) since Go has no reference-counted Rc --
// an arena freed only once per pack() call is the idiomatic substitute
// _examples/WoozyMasta-lzo's own arena-less code offered no precedent for,
// so this part follows the Rust shape most closely of anything in parser.go.

package upkr

import (
	"math"
	"sort"
)

// parseLink is one node in a shared-tail parse chain: the token at this
// step, plus the index of the chain it extends (-1 for the empty chain).
type parseLink struct {
	prev int
	op   Op
}

// parseArena owns every parseLink produced during one parse; chains share
// tails by construction (multiple arrivals can point at the same prev
// index), and the whole arena is discarded together once pack() has
// walked the winning chain.
type parseArena struct {
	links []parseLink
}

func (a *parseArena) push(prev int, op Op) int {
	a.links = append(a.links, parseLink{prev: prev, op: op})
	return len(a.links) - 1
}

// ops walks the chain starting at link back to the root, returning the
// tokens in forward (encode) order.
func (a *parseArena) ops(link int) []Op {
	var rev []Op
	for link >= 0 {
		rev = append(rev, a.links[link].op)
		link = a.links[link].prev
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	return rev
}

// arrival is one candidate parse state reaching a given output position.
type arrival struct {
	link  int // index into the arena, -1 for the empty chain
	state coderState
	cost  float64
}

// parse runs the optimal parser over data and returns the winning token
// sequence in encode order.
func parse(data []byte, level int, config *Config, progress func(int)) []Op {
	lp := levelParams(level)
	finder := newMatchFinder(data)
	finder.maxQueueSize = maxOf(lp.maxQueueSize, 1)
	finder.patience = maxOf(lp.patience, 1)
	finder.maxMatchesPerLength = maxOf(lp.maxMatchesPerLength, 1)
	finder.maxLengthDiff = lp.maxLengthDiff

	arena := &parseArena{}
	arrivals := make(map[int][]arrival)

	addArrival := func(pos int, arr arrival) {
		vec := arrivals[pos]
		if lp.maxArrivals == 0 {
			if len(vec) == 0 {
				arrivals[pos] = []arrival{arr}
			} else if vec[0].cost > arr.cost {
				vec[0] = arr
			}
			return
		}
		vec = append(vec, arr)
		if len(vec) > lp.maxArrivals*2 {
			vec = sortArrivals(vec, lp.maxArrivals)
		}
		arrivals[pos] = vec
	}

	addMatch := func(cc *costCounter, pos, offset, length int, from arrival) {
		if uint32(length) < config.minLength() {
			return
		}
		if uint32(length) > config.maxLength() {
			length = int(config.maxLength())
		}
		cc.reset()
		state := from.state.clone()
		op := matchOp(uint32(offset), uint32(length))
		op.encode(cc, &state, config)
		addArrival(pos+length, arrival{
			link:  arena.push(from.link, op),
			state: state,
			cost:  from.cost + cc.cost,
		})
	}

	addArrival(0, arrival{link: -1, state: newCoderState(config), cost: 0})

	cc := acquireCostCounter(config)
	defer releaseCostCounter(cc)

	var nearMatches [1024]int
	var lastSeen [256]int
	for i := range nearMatches {
		nearMatches[i] = -1
	}
	for i := range lastSeen {
		lastSeen[i] = -1
	}

	bestPerOffset := make(map[uint32]float64)

	for pos := 0; pos < len(data); pos++ {
		if progress != nil {
			progress(pos + 1)
		}

		here, ok := arrivals[pos]
		if !ok {
			continue
		}
		delete(arrivals, pos)
		here = sortArrivals(here, lp.maxArrivals)

		for k := range bestPerOffset {
			delete(bestPerOffset, k)
		}
		bestCost := math.MaxFloat64
		for _, a := range here {
			if a.cost < bestCost {
				bestCost = a.cost
			}
			if cur, ok := bestPerOffset[a.state.lastOffset]; !ok || a.cost < cur {
				bestPerOffset[a.state.lastOffset] = a.cost
			}
		}

	arrivalLoop:
		for _, a := range here {
			threshold := bestCost + lp.maxCostDelta
			if po := bestPerOffset[a.state.lastOffset] + lp.maxOffsetCostDelta; po < threshold {
				threshold = po
			}
			if a.cost > threshold {
				continue
			}

			foundLastOffset := false
			closestMatch := -1
			it := finder.matches(pos)
			for {
				m, ok := it.next()
				if !ok {
					break
				}
				if closestMatch < m.Pos {
					closestMatch = m.Pos
				}
				offset := pos - m.Pos
				if uint32(offset) <= config.maxOffset() {
					if uint32(offset) == a.state.lastOffset {
						foundLastOffset = true
					}
					addMatch(cc, pos, offset, m.Length, a)
					if m.Length >= lp.greedySize {
						break arrivalLoop
					}
				}
			}

			nearLeft := lp.numNearMatches
			matchPos := lastSeen[data[pos]]
			for nearLeft > 0 && matchPos >= 0 && matchPos > closestMatch {
				offset := pos - matchPos
				if uint32(offset) > config.maxOffset() {
					break
				}
				length := matchLength(data, pos, offset)
				if uint32(offset) == a.state.lastOffset {
					foundLastOffset = true
				}
				addMatch(cc, pos, offset, length, a)
				if offset < len(nearMatches) {
					matchPos = nearMatches[matchPos%len(nearMatches)]
				} else {
					matchPos = -1
				}
				nearLeft--
			}

			if !foundLastOffset && a.state.lastOffset > 0 {
				offset := int(a.state.lastOffset)
				if offset <= pos {
					length := matchLength(data, pos, offset)
					if length > 0 {
						addMatch(cc, pos, offset, length, a)
					}
				}
			}

			cc.reset()
			state := a.state
			op := literalOp(data[pos])
			op.encode(cc, &state, config)
			addArrival(pos+1, arrival{
				link:  arena.push(a.link, op),
				state: state,
				cost:  a.cost + cc.cost,
			})
		}

		idx := pos % len(nearMatches)
		nearMatches[idx] = lastSeen[data[pos]]
		lastSeen[data[pos]] = pos
	}

	final := arrivals[len(data)]
	best := final[0]
	for _, a := range final[1:] {
		if a.cost < best.cost {
			best = a
		}
	}
	return arena.ops(best.link)
}

// sortArrivals orders vec by ascending cost, then deduplicates by last
// offset: the cheapest arrival per distinct last offset is kept first,
// and remaining (higher-cost, offset-repeating) arrivals fill any
// leftover room up to maxArrivals. maxArrivals == 0 disables the cap
// entirely (addArrival handles that case itself).
func sortArrivals(vec []arrival, maxArrivals int) []arrival {
	if maxArrivals == 0 {
		return vec
	}
	sort.Slice(vec, func(i, j int) bool { return vec[i].cost < vec[j].cost })

	seen := make(map[uint32]bool)
	kept := make([]arrival, 0, minInt(len(vec), maxArrivals))
	var rest []arrival
	for _, a := range vec {
		if !seen[a.state.lastOffset] {
			seen[a.state.lastOffset] = true
			if len(kept) < maxArrivals {
				kept = append(kept, a)
				continue
			}
		}
		rest = append(rest, a)
	}
	for _, a := range rest {
		if len(kept) >= maxArrivals {
			break
		}
		kept = append(kept, a)
	}
	return kept
}
