// SPDX-License-Identifier: MIT
// Copyright (c) 2026 exoticorn
// Source: github.com/exoticorn/upkr-go
//
// Grounded on _examples/WoozyMasta-lzo/sliding_window_pool.go's
// sync.Pool idiom (acquire/release wrapping a reset of the struct),
// applied to the cost-counter a worst-case quadratic number of arrivals
// can otherwise allocate afresh for every candidate parse.

package upkr

import "sync"

var costCounterPool = sync.Pool{
	New: func() any { return &costCounter{} },
}

func acquireCostCounter(config *Config) *costCounter {
	cc := costCounterPool.Get().(*costCounter)
	if cc.log2Table[1] == 0 {
		*cc = *newCostCounter(config)
	} else {
		cc.invertBitEncoding = config.InvertBitEncoding
		cc.cost = 0
	}
	return cc
}

func releaseCostCounter(cc *costCounter) {
	costCounterPool.Put(cc)
}
