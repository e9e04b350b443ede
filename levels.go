// SPDX-License-Identifier: MIT
// Copyright (c) 2026 exoticorn
// Source: github.com/exoticorn/upkr-go
//
// Grounded on _examples/original_source/src/parsing_packer.rs's
// Config::from_level table.

package upkr

// parserLevel holds the optimal parser's tuning knobs for one compression
// level (0-9). Level 0 bypasses the parser entirely via the greedy packer.
type parserLevel struct {
	maxArrivals         int
	maxCostDelta        float64
	maxOffsetCostDelta  float64
	numNearMatches      int
	greedySize          int
	maxQueueSize        int
	patience            int
	maxMatchesPerLength int
	maxLengthDiff       int
}

// levelParams returns the tuning parameters for level, clamped to [0, 9].
func levelParams(level int) parserLevel {
	if level < 0 {
		level = 0
	}
	if level > 9 {
		level = 9
	}

	var maxArrivals int
	switch level {
	case 0, 1:
		maxArrivals = 0
	case 2:
		maxArrivals = 2
	case 3:
		maxArrivals = 4
	case 4:
		maxArrivals = 8
	case 5:
		maxArrivals = 16
	case 6:
		maxArrivals = 32
	case 7:
		maxArrivals = 64
	case 8:
		maxArrivals = 96
	default:
		maxArrivals = 128
	}

	maxCostDelta := 16.0
	var maxOffsetCostDelta float64
	switch {
	case level <= 4:
		maxOffsetCostDelta = 0
	case level <= 8:
		maxOffsetCostDelta = 4
	default:
		maxOffsetCostDelta = 8
	}

	numNearMatches := level - 1
	if numNearMatches < 0 {
		numNearMatches = 0
	}
	greedySize := 4 + level*level*3

	var maxLengthDiff int
	switch {
	case level <= 1:
		maxLengthDiff = 0
	case level <= 3:
		maxLengthDiff = 1
	case level <= 5:
		maxLengthDiff = 2
	case level <= 7:
		maxLengthDiff = 3
	default:
		maxLengthDiff = 4
	}

	return parserLevel{
		maxArrivals:         maxArrivals,
		maxCostDelta:        maxCostDelta,
		maxOffsetCostDelta:  maxOffsetCostDelta,
		numNearMatches:      numNearMatches,
		greedySize:          greedySize,
		maxQueueSize:        level * 100,
		patience:            level * 100,
		maxMatchesPerLength: level,
		maxLengthDiff:       maxLengthDiff,
	}
}
