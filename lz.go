// SPDX-License-Identifier: MIT
// Copyright (c) 2026 exoticorn
// Source: github.com/exoticorn/upkr-go
//
// Grounded on _examples/original_source/src/lz.rs for the token protocol,
// but implementing spec.md §4.3's per-byte type-bit context layout (one
// type bit per literal byte, rather than the length-prefixed literal runs
// a later revision of lz.rs batches them into — see SPEC_FULL.md §0).

package upkr

// opKind tags an Op as a literal byte or a back-reference match. Go has no
// sum types, so Op is a small tagged struct rather than the Rust enum
// lz.rs uses.
type opKind uint8

const (
	opLiteral opKind = iota
	opMatch
)

// Op is one LZ77 token: either a literal byte or a back-reference of
// length Len at offset Offset (a 1-based distance into already-emitted
// output).
type Op struct {
	Kind   opKind
	Byte   byte
	Offset uint32
	Len    uint32
}

func literalOp(b byte) Op             { return Op{Kind: opLiteral, Byte: b} }
func matchOp(offset, length uint32) Op { return Op{Kind: opMatch, Offset: offset, Len: length} }

// coderState is the encoder-side LZ protocol state threaded through every
// token: which contexts are live, the last match offset (for the
// last-offset shortcut), whether the previous token was a match, and the
// output position (used to pick the parity context bank).
type coderState struct {
	contexts       contextStore
	lastOffset     uint32
	prevWasMatch   bool
	pos            int
	parityContexts int
}

func newCoderState(config *Config) coderState {
	return coderState{
		contexts:       newContextStore(numContexts(config.ParityContexts), config),
		lastOffset:     0,
		prevWasMatch:   false,
		pos:            0,
		parityContexts: config.ParityContexts,
	}
}

func (s *coderState) clone() coderState {
	cp := *s
	cp.contexts = s.contexts.clone()
	return cp
}

func (s *coderState) literalBase() int {
	return (s.pos % s.parityContexts) * literalBankSize
}

// encode emits one token through coder, mutating state in lockstep with
// whatever the decoder will do when it reads the same bits back.
func (op Op) encode(coder entropyCoder, state *coderState, config *Config) {
	switch op.Kind {
	case opLiteral:
		encodeWithContext(coder, &state.contexts, state.literalBase(), config.IsMatchBit == false)
		base := state.literalBase()
		ctx := 1
		for i := 7; i >= 0; i-- {
			bit := (op.Byte>>uint(i))&1 != 0
			encodeWithContext(coder, &state.contexts, base+ctx, bit)
			ctx = (ctx << 1) | boolToInt(bit)
		}
		state.pos++
		state.prevWasMatch = false

	case opMatch:
		encodeWithContext(coder, &state.contexts, state.literalBase(), config.IsMatchBit == true)

		newOffset := true
		if !state.prevWasMatch && !config.NoRepeatedOffsets {
			newOffset = op.Offset != state.lastOffset
			encodeWithContext(coder, &state.contexts, newOffsetContext(state.parityContexts), newOffset == config.NewOffsetBit)
		}
		if newOffset {
			var v uint32
			if config.EOFInLength {
				v = op.Offset
			} else {
				v = op.Offset + 1
			}
			encodeLength(coder, state, offsetPrefixContext(state.parityContexts), v, config)
			state.lastOffset = op.Offset
		}
		encodeLength(coder, state, lengthPrefixContext(state.parityContexts), op.Len, config)
		state.prevWasMatch = true
		state.pos += int(op.Len)
	}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// encodeEOF appends the in-band end-of-stream marker. In standard mode
// this is a match token whose offset prefix code carries value 1 (offset
// 0, the reserved sentinel) and no length follows. In EOFInLength mode it
// is a match token with an arbitrary valid offset followed by length 1,
// a length no real match can carry since minLength is 2 in that mode.
func encodeEOF(coder entropyCoder, state *coderState, config *Config) {
	encodeWithContext(coder, &state.contexts, state.literalBase(), config.IsMatchBit == true)

	if !state.prevWasMatch && !config.NoRepeatedOffsets {
		encodeWithContext(coder, &state.contexts, newOffsetContext(state.parityContexts), config.NewOffsetBit)
	}
	encodeLength(coder, state, offsetPrefixContext(state.parityContexts), 1, config)
	if config.EOFInLength {
		encodeLength(coder, state, lengthPrefixContext(state.parityContexts), 1, config)
	}
}

// encodeBit encodes one raw context bit.
func encodeBit(coder entropyCoder, state *coderState, ctx int, bit bool) {
	encodeWithContext(coder, &state.contexts, ctx, bit)
}

// encodeLength encodes value (>=1) as upkr's universal prefix code:
// value = 2^k + m, m in [0, 2^k); k continuation/payload bit pairs
// followed by one stop bit.
func encodeLength(coder entropyCoder, state *coderState, contextStart int, value uint32, config *Config) {
	ctx := contextStart
	for value >= 2 {
		encodeBit(coder, state, ctx, config.ContinueValueBit)
		encodeBit(coder, state, ctx+1, value&1 != 0)
		ctx += 2
		value >>= 1
	}
	encodeBit(coder, state, ctx, !config.ContinueValueBit)
}
