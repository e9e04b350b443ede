// SPDX-License-Identifier: MIT
// Copyright (c) 2026 exoticorn
// Source: github.com/exoticorn/upkr-go
//
// Grounded on _examples/original_source/src/lib.rs's pack() dispatch
// (level 0 -> greedy_packer, else parsing_packer) and
// parsing_packer::pack's op-list-to-byte-stream tail.

package upkr

// Pack compresses data at the given level (0-9, clamped if out of
// range) using config. Level 0 runs a single greedy forward pass; levels
// 1-9 run a dynamic-programming optimal parser whose search effort scales
// with level. progress, if non-nil, is called synchronously from the
// encoder's main loop with the number of input bytes consumed so far; it
// must not mutate data or config.
func Pack(data []byte, level int, config Config, progress func(int)) []byte {
	if level <= 0 {
		return greedyPack(data, &config, progress)
	}

	ops := parse(data, level, &config, progress)
	state := newCoderState(&config)
	coder := newRansEncoder(&config)
	for _, op := range ops {
		op.encode(coder, &state, &config)
	}
	encodeEOF(coder, &state, &config)
	return coder.finish()
}
