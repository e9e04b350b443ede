// SPDX-License-Identifier: MIT
// Copyright (c) 2026 exoticorn
// Source: github.com/exoticorn/upkr-go
//
// Grounded on _examples/original_source/src/lz.rs's calculate_margin:
// the same unpack_internal pass, whose decoded output is built and then
// discarded, tracking the running max of (output position - input bytes
// consumed).

package upkr

// CalculateMargin returns the minimum number of bytes by which an
// in-place decompressor's output tail must lead the input tail when the
// compressed data and the expanding output share one buffer: the
// smallest M such that writing the decoded bytes into the last len(out)
// bytes of a len(data)+M buffer never overtakes the not-yet-read
// compressed bytes at the front of that same buffer.
func CalculateMargin(packed []byte, config Config) (int, error) {
	mt := &marginTracker{}
	_, inPos, err := unpackInternal(packed, config, 0, mt)
	if err != nil {
		return 0, err
	}
	return mt.margin + inPos - mt.lastOutPos, nil
}

// marginTracker implements decodeTracker, recording the running maximum
// of (output position - input bytes consumed) across every decode step.
type marginTracker struct {
	margin     int
	lastOutPos int
}

func (mt *marginTracker) onStep(outPos, inPos int) {
	mt.lastOutPos = outPos
	if d := outPos - inPos; d > mt.margin {
		mt.margin = d
	}
}

func (mt *marginTracker) onLiteral(outPos int) {}
func (mt *marginTracker) onMatch(outPos, offset, length int) {}
