// SPDX-License-Identifier: MIT
// Copyright (c) 2026 exoticorn
// Source: github.com/exoticorn/upkr-go
//
// Grounded on _examples/original_source/src/context_state.rs: the same
// flat probability array and the same two update variants, ported to the
// receiver-based accessor style _examples/WoozyMasta-lzo uses for its
// internal types (slidingWindowDict, etc).

package upkr

// contextStore owns a fixed-size array of adaptive probabilities, one per
// context index. Encoder and decoder must mutate a contextStore of the
// same size in lockstep; any divergence corrupts all subsequent output.
type contextStore struct {
	probs                []uint8
	invertBitEncoding    bool
	simplifiedProbUpdate bool
}

func newContextStore(size int, config *Config) contextStore {
	probs := make([]uint8, size)
	for i := range probs {
		probs[i] = initProb
	}
	return contextStore{
		probs:                probs,
		invertBitEncoding:    config.InvertBitEncoding,
		simplifiedProbUpdate: config.SimplifiedProbUpdate,
	}
}

func (cs *contextStore) clone() contextStore {
	probs := make([]uint8, len(cs.probs))
	copy(probs, cs.probs)
	return contextStore{
		probs:                probs,
		invertBitEncoding:    cs.invertBitEncoding,
		simplifiedProbUpdate: cs.simplifiedProbUpdate,
	}
}

// prob returns the current probability of "bit = 1" for context index i,
// as a value in [1, oneProb-1].
func (cs *contextStore) prob(i int) uint16 {
	return uint16(cs.probs[i])
}

// update moves the probability at context index i toward the observed bit
// by one adaptation step.
func (cs *contextStore) update(i int, bit bool) {
	old := cs.probs[i]
	observed := bit != cs.invertBitEncoding

	var next uint8
	if cs.simplifiedProbUpdate {
		var offset int32
		if observed {
			offset = oneProb >> updateRate
		}
		next = uint8(offset + int32(old) - ((int32(old) + updateAdd) >> updateRate))
	} else if observed {
		next = old + uint8((oneProb-uint32(old)+updateAdd)>>updateRate)
	} else {
		next = old - uint8((uint32(old)+updateAdd)>>updateRate)
	}
	cs.probs[i] = next
}
