// SPDX-License-Identifier: MIT
// Copyright (c) 2026 exoticorn
// Source: github.com/exoticorn/upkr-go
//
// Grounded on _examples/original_source/src/rans.rs for the exact
// bit-exact renormalisation arithmetic, and on
// _examples/other_examples/f52e473d_ha1tch-unz__pkg-ans-ans.go.go for Go
// rANS idiom (byte-wise state renormalisation, reversing the output buffer
// on Finish). No third-party binary-rANS library appears anywhere in the
// retrieved corpus — the shape needed here (per-bit, context-adaptive,
// optional bit-packed output) is specific enough that every pack repo that
// touches rANS hand-rolls it too.

package upkr

import "math"

// entropyCoder is the capability every LZ token-layer encode step needs:
// push one coded bit at a given probability. ransEncoder and costCounter
// both implement it, sharing no state, so the optimal parser can estimate
// cost without producing output.
type entropyCoder interface {
	encodeBit(bit bool, prob uint16)
}

func encodeWithContext(coder entropyCoder, cs *contextStore, ctx int, bit bool) {
	coder.encodeBit(bit, cs.prob(ctx))
	cs.update(ctx, bit)
}

// pendingBit is one deferred (prob, bit) pair. rANS is LIFO: the encoder
// cannot stream output while tokens are still being produced, so it
// records every bit and replays them in reverse in finish.
type pendingBit struct {
	prob uint16
	bit  bool
}

// ransEncoder defers every encoded bit and produces output only once, in
// finish, by replaying the deferred list backwards through the rANS
// renormalisation recurrence.
type ransEncoder struct {
	bits                 []pendingBit
	useBitstream         bool
	bitstreamIsBigEndian bool
	invertBitEncoding    bool
}

func newRansEncoder(config *Config) *ransEncoder {
	return &ransEncoder{
		useBitstream:         config.UseBitstream,
		bitstreamIsBigEndian: config.BitstreamIsBigEndian,
		invertBitEncoding:    config.InvertBitEncoding,
	}
}

func (e *ransEncoder) encodeBit(bit bool, prob uint16) {
	e.bits = append(e.bits, pendingBit{prob: prob, bit: bit != e.invertBitEncoding})
}

// finish replays the deferred bits in reverse and returns the packed
// output bytes.
func (e *ransEncoder) finish() []byte {
	var buffer []byte

	var lBits uint32 = 12
	if e.useBitstream {
		lBits = 15
	}
	state := uint32(1) << lBits

	var byteAcc byte
	bitPos := 8
	if e.bitstreamIsBigEndian {
		bitPos = 0
	}

	flush := func() {
		if !e.useBitstream {
			buffer = append(buffer, byte(state))
			state >>= 8
			return
		}
		if e.bitstreamIsBigEndian {
			byteAcc |= byte(state&1) << uint(bitPos)
			bitPos++
			if bitPos == 8 {
				buffer = append(buffer, byteAcc)
				byteAcc = 0
				bitPos = 0
			}
		} else {
			bitPos--
			byteAcc |= byte(state&1) << uint(bitPos)
			if bitPos == 0 {
				buffer = append(buffer, byteAcc)
				byteAcc = 0
				bitPos = 8
			}
		}
		state >>= 1
	}

	numFlushBits := uint32(8)
	if e.useBitstream {
		numFlushBits = 1
	}
	maxStateFactor := uint32(1) << (lBits + numFlushBits - probBits)

	for i := len(e.bits) - 1; i >= 0; i-- {
		step := e.bits[i]
		var start, prob uint32
		if step.bit {
			start, prob = 0, uint32(step.prob)
		} else {
			start, prob = uint32(step.prob), oneProb-uint32(step.prob)
		}
		maxState := maxStateFactor * prob
		for state >= maxState {
			flush()
		}
		state = ((state / prob) << probBits) + (state % prob) + start
	}

	for state > 0 {
		flush()
	}

	if e.useBitstream && byteAcc != 0 {
		buffer = append(buffer, byteAcc)
	}

	reverseBytes(buffer)
	return buffer
}

func reverseBytes(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}

// costCounter is a shadow encoder that produces no output: for every coded
// bit it adds -log2(p_bit/oneProb) to an accumulator, via a precomputed
// table. The optimal parser uses it to score candidate parses exactly.
type costCounter struct {
	cost              float64
	log2Table         [oneProb]float64
	invertBitEncoding bool
}

func newCostCounter(config *Config) *costCounter {
	cc := &costCounter{invertBitEncoding: config.InvertBitEncoding}
	for prob := 1; prob < oneProb; prob++ {
		cc.log2Table[prob] = math.Log2(float64(oneProb) / float64(prob))
	}
	return cc
}

func (cc *costCounter) encodeBit(bit bool, prob uint16) {
	var p uint32
	if bit != cc.invertBitEncoding {
		p = uint32(prob)
	} else {
		p = oneProb - uint32(prob)
	}
	cc.cost += cc.log2Table[p]
}

func (cc *costCounter) reset() {
	cc.cost = 0
}

// ransDecoder mirrors ransEncoder's renormalisation, reading bytes (or
// bits) forward as the state drops below the low watermark.
type ransDecoder struct {
	data                 []byte
	pos                  int
	state                uint32
	useBitstream         bool
	bitstreamIsBigEndian bool
	invertBitEncoding    bool
	pendingByte          byte
	bitsLeft             uint8
}

func newRansDecoder(data []byte, config *Config) (*ransDecoder, error) {
	d := &ransDecoder{
		data:                 data,
		useBitstream:         config.UseBitstream,
		bitstreamIsBigEndian: config.BitstreamIsBigEndian,
		invertBitEncoding:    config.InvertBitEncoding,
	}
	if err := d.refill(); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *ransDecoder) clone() *ransDecoder {
	cp := *d
	return &cp
}

func (d *ransDecoder) refill() error {
	if d.useBitstream {
		for d.state < 1<<15 {
			if d.bitsLeft == 0 {
				if d.pos >= len(d.data) {
					return ErrUnexpectedEOF
				}
				d.pendingByte = d.data[d.pos]
				d.pos++
				d.bitsLeft = 8
			}
			if d.bitstreamIsBigEndian {
				d.state = (d.state << 1) | uint32(d.pendingByte>>7)
				d.pendingByte <<= 1
			} else {
				d.state = (d.state << 1) | uint32(d.pendingByte&1)
				d.pendingByte >>= 1
			}
			d.bitsLeft--
		}
		return nil
	}
	for d.state < 1<<12 {
		if d.pos >= len(d.data) {
			return ErrUnexpectedEOF
		}
		d.state = (d.state << 8) | uint32(d.data[d.pos])
		d.pos++
	}
	return nil
}

const probMask = oneProb - 1

// decodeBit decodes one bit coded at probability prob.
func (d *ransDecoder) decodeBit(prob uint16) (bool, error) {
	if err := d.refill(); err != nil {
		return false, err
	}

	p := uint32(prob)
	bit := (d.state & probMask) < p

	var start uint32
	if bit {
		start, p = 0, p
	} else {
		start, p = p, oneProb-p
	}
	d.state = p*(d.state>>probBits) + (d.state & probMask) - start

	return bit != d.invertBitEncoding, nil
}

func decodeWithContext(d *ransDecoder, cs *contextStore, ctx int) (bool, error) {
	bit, err := d.decodeBit(cs.prob(ctx))
	if err != nil {
		return false, err
	}
	cs.update(ctx, bit)
	return bit, nil
}

// CompressedSize returns a diagnostic estimate of the compressed size in
// bytes: the input left over after the leading bytes (or bits) consumed to
// prime the decoder's initial state, plus the entropy resident in that
// primed state.
func CompressedSize(packed []byte, config Config) (float32, error) {
	d, err := newRansDecoder(packed, &config)
	if err != nil {
		return 0, err
	}
	remaining := float32(len(d.data)-d.pos) + float32(d.bitsLeft)/8
	return remaining + float32(math.Log2(float64(d.state)))/8, nil
}
