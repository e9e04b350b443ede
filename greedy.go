// SPDX-License-Identifier: MIT
// Copyright (c) 2026 exoticorn
// Source: github.com/exoticorn/upkr-go
//
// Grounded on _examples/original_source/src/greedy_packer.rs: a single
// forward pass with no dynamic-programming lookahead, used for level 0.

package upkr

// greedyPack is the level-0 fast path: for each position it takes the
// suffix array's best match if its offset fits a soft cap that grows
// with match length, else tries extending the last offset, else falls
// back to a literal.
func greedyPack(data []byte, config *Config, progress func(int)) []byte {
	finder := newMatchFinder(data)
	coder := newRansEncoder(config)
	state := newCoderState(config)

	pos := 0
	for pos < len(data) {
		if progress != nil {
			progress(pos)
		}

		encoded := false
		if m, ok := finder.matches(pos).next(); ok {
			offsetCap := uint32(1) << minInt(m.Length*3-1, 31)
			if config.maxOffset() < offsetCap {
				offsetCap = config.maxOffset()
			}
			offset := uint32(pos - m.Pos)
			if offset < offsetCap && uint32(m.Length) >= config.minLength() {
				length := m.Length
				if uint32(length) > config.maxLength() {
					length = int(config.maxLength())
				}
				matchOp(offset, uint32(length)).encode(coder, &state, config)
				pos += length
				encoded = true
			}
		}

		if !encoded && state.lastOffset != 0 {
			offset := int(state.lastOffset)
			length := matchLength(data, pos, offset)
			if uint32(length) > config.maxLength() {
				length = int(config.maxLength())
			}
			if uint32(length) >= config.minLength() {
				matchOp(state.lastOffset, uint32(length)).encode(coder, &state, config)
				pos += length
				encoded = true
			}
		}

		if !encoded {
			literalOp(data[pos]).encode(coder, &state, config)
			pos++
		}
	}

	encodeEOF(coder, &state, config)
	return coder.finish()
}

// matchLength returns how many bytes starting at pos match the bytes
// starting offset bytes earlier, up to the end of data.
func matchLength(data []byte, pos, offset int) int {
	n := 0
	for pos+n < len(data) && data[pos+n] == data[pos+n-offset] {
		n++
	}
	return n
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
