// SPDX-License-Identifier: MIT
// Copyright (c) 2026 exoticorn
// Source: github.com/exoticorn/upkr-go
//
// Grounded on _examples/original_source/src/heatmap.rs: the same
// data/cost/literal-index triple, the same reference-counted cost
// redistribution in finish(), and the same reverse() used to present the
// map in forward reading order after a pass that naturally runs backward
// is not needed here (the Go pass below decodes forward, so reverse is
// exposed for callers who build a heatmap from a reversed traversal).

package upkr

import "math"

// Heatmap pairs every decoded output byte with an estimate of how many
// bits it cost to encode, spreading a match's cost evenly across the
// bytes it copies and crediting cost back to the literal byte(s) a
// repeated run ultimately derives from.
type Heatmap struct {
	data         []byte
	cost         []float32
	literalIndex []int
}

func newHeatmap() *Heatmap {
	return &Heatmap{}
}

func (h *Heatmap) addLiteral(b byte, cost float32) {
	h.data = append(h.data, b)
	h.cost = append(h.cost, cost)
	h.literalIndex = append(h.literalIndex, len(h.literalIndex))
}

func (h *Heatmap) addMatch(offset, length int, cost float32) {
	cost /= float32(length)
	for i := 0; i < length; i++ {
		h.data = append(h.data, h.data[len(h.data)-offset])
		h.literalIndex = append(h.literalIndex, h.literalIndex[len(h.literalIndex)-offset])
		h.cost = append(h.cost, cost)
	}
}

// finish shares cost between every literal and the copies derived from
// it: for a literal referenced R times (itself included), each copy moves
// 1/R of the way toward the literal's cost, and the literal ends at the
// mean cost of the whole group. Copies do not end at equal costs.
func (h *Heatmap) finish() {
	refCount := make([]int, len(h.literalIndex))
	for _, index := range h.literalIndex {
		refCount[index]++
	}

	shifted := make([]float32, len(h.literalIndex))
	for i, index := range h.literalIndex {
		delta := (h.cost[index] - h.cost[i]) / float32(refCount[index])
		shifted[i] += delta
		shifted[index] -= delta
	}

	for i := range h.cost {
		h.cost[i] += shifted[i]
	}
}

// reverse flips the heatmap end-to-end, for callers that built it while
// walking the decoded output backward.
func (h *Heatmap) reverse() {
	n := len(h.data)
	for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
		h.data[i], h.data[j] = h.data[j], h.data[i]
		h.cost[i], h.cost[j] = h.cost[j], h.cost[i]
		h.literalIndex[i], h.literalIndex[j] = h.literalIndex[j], h.literalIndex[i]
	}
	for i, index := range h.literalIndex {
		h.literalIndex[i] = n - 1 - index
	}
}

// Len returns the number of decoded output bytes recorded.
func (h *Heatmap) Len() int { return len(h.cost) }

// IsLiteral reports whether the byte at index was itself a literal
// rather than a copy produced by a later match.
func (h *Heatmap) IsLiteral(index int) bool { return h.literalIndex[index] == index }

// Cost returns the estimated bit cost attributed to the byte at index.
func (h *Heatmap) Cost(index int) float32 { return h.cost[index] }

// Byte returns the decoded byte at index.
func (h *Heatmap) Byte(index int) byte { return h.data[index] }

// CreateHeatmap decodes packed and returns a Heatmap pairing every output
// byte with its estimated encoding cost in bits.
func CreateHeatmap(packed []byte, config Config) (*Heatmap, error) {
	dec, err := newRansDecoder(packed, &config)
	if err != nil {
		return nil, err
	}
	state := newCoderState(&config)
	hm := newHeatmap()

	var log2Table [oneProb]float64
	for p := 1; p < oneProb; p++ {
		log2Table[p] = math.Log2(float64(oneProb) / float64(p))
	}
	bitCost := func(prob uint16, bit bool) float64 {
		p := uint32(prob)
		if bit == config.InvertBitEncoding {
			p = oneProb - p
		}
		return log2Table[p]
	}

	decodeTrackedBit := func(ctx int) (bool, float64, error) {
		prob := state.contexts.prob(ctx)
		bit, err := dec.decodeBit(prob)
		if err != nil {
			return false, 0, err
		}
		c := bitCost(prob, bit)
		state.contexts.update(ctx, bit)
		return bit, c, nil
	}

	decodeTrackedLength := func(contextStart int) (uint32, float64, error) {
		ctx := contextStart
		value := uint32(0)
		cost := 0.0
		shift := uint(0)
		for {
			if shift >= 32 {
				return 0, 0, ErrValueOverflow
			}
			cont, c, err := decodeTrackedBit(ctx)
			if err != nil {
				return 0, 0, err
			}
			cost += c
			if cont != config.ContinueValueBit {
				return value | (1 << shift), cost, nil
			}
			payload, c2, err := decodeTrackedBit(ctx + 1)
			if err != nil {
				return 0, 0, err
			}
			cost += c2
			value |= uint32(boolToInt(payload)) << shift
			shift++
			ctx += 2
		}
	}

	for {
		tokenCost := 0.0
		isMatch, c, err := decodeTrackedBit(state.literalBase())
		if err != nil {
			return nil, err
		}
		tokenCost += c

		if isMatch == config.IsMatchBit {
			newOffset := true
			if !state.prevWasMatch && !config.NoRepeatedOffsets {
				bit, c, err := decodeTrackedBit(newOffsetContext(state.parityContexts))
				if err != nil {
					return nil, err
				}
				tokenCost += c
				newOffset = bit == config.NewOffsetBit
			}

			offset := state.lastOffset
			if newOffset {
				v, c, err := decodeTrackedLength(offsetPrefixContext(state.parityContexts))
				if err != nil {
					return nil, err
				}
				tokenCost += c
				if !config.EOFInLength && v == 1 {
					hm.finish()
					return hm, nil
				}
				if config.EOFInLength {
					offset = v
				} else {
					offset = v - 1
				}
				state.lastOffset = offset
			}

			length, c, err := decodeTrackedLength(lengthPrefixContext(state.parityContexts))
			if err != nil {
				return nil, err
			}
			tokenCost += c
			if config.EOFInLength && length == 1 {
				hm.finish()
				return hm, nil
			}

			if offset == 0 || int(offset) > len(hm.data) {
				return nil, &OffsetOutOfRangeError{Offset: int(offset), Position: len(hm.data)}
			}
			hm.addMatch(int(offset), int(length), float32(tokenCost))

			state.prevWasMatch = true
			state.pos += int(length)
		} else {
			var b byte
			ctx := 1
			base := state.literalBase()
			for i := 0; i < 8; i++ {
				bit, c, err := decodeTrackedBit(base + ctx)
				if err != nil {
					return nil, err
				}
				tokenCost += c
				b = (b << 1) | byte(boolToInt(bit))
				ctx = (ctx << 1) | boolToInt(bit)
			}
			hm.addLiteral(b, float32(tokenCost))
			state.pos++
			state.prevWasMatch = false
		}
	}
}
