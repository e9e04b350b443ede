// SPDX-License-Identifier: MIT
// Copyright (c) 2026 exoticorn
// Source: github.com/exoticorn/upkr-go
//
// Grounded on _examples/original_source/src/lz.rs's unpack/unpack_internal,
// mirroring the encode-side protocol in lz.go.

package upkr

// Unpack decompresses packed data produced by Pack with the same Config,
// into a freshly allocated buffer. maxSize bounds the output size; once
// exceeded, Unpack fails with *OverSizeError rather than growing without
// limit. maxSize <= 0 means unbounded. Unpack also returns
// ErrUnexpectedEOF if the input ends before the EOF marker is reached,
// ErrValueOverflow if a corrupt stream encodes a prefix-coded value wider
// than 32 bits, and *OffsetOutOfRangeError if a match references data
// before the start of the output.
func Unpack(packed []byte, config Config, maxSize int) ([]byte, error) {
	out, _, err := unpackInternal(packed, config, maxSize, nil)
	return out, err
}

// unpackInternal drives the shared decode loop. When tracker is non-nil
// it is notified of every literal and match emitted, so CalculateMargin
// can piggyback on the same pass instead of duplicating the state
// machine. CreateHeatmap does not use it: it runs its own decode loop.
func unpackInternal(packed []byte, config Config, maxSize int, tracker decodeTracker) ([]byte, int, error) {
	dec, err := newRansDecoder(packed, &config)
	if err != nil {
		return nil, 0, err
	}
	state := newCoderState(&config)

	var out []byte

	for {
		if tracker != nil {
			tracker.onStep(len(out), dec.pos)
		}

		isMatch, err := decodeWithContext(dec, &state.contexts, state.literalBase())
		if err != nil {
			return nil, 0, err
		}

		if isMatch == config.IsMatchBit {
			newOffset := true
			if !state.prevWasMatch && !config.NoRepeatedOffsets {
				bit, err := decodeWithContext(dec, &state.contexts, newOffsetContext(state.parityContexts))
				if err != nil {
					return nil, 0, err
				}
				newOffset = bit == config.NewOffsetBit
			}

			offset := state.lastOffset
			if newOffset {
				v, err := decodeLength(dec, &state, offsetPrefixContext(state.parityContexts), config)
				if err != nil {
					return nil, 0, err
				}
				if !config.EOFInLength && v == 1 {
					return out, dec.pos, nil
				}
				if config.EOFInLength {
					offset = v
				} else {
					offset = v - 1
				}
				state.lastOffset = offset
			}

			length, err := decodeLength(dec, &state, lengthPrefixContext(state.parityContexts), config)
			if err != nil {
				return nil, 0, err
			}
			if config.EOFInLength && length == 1 {
				return out, dec.pos, nil
			}

			if offset == 0 || int(offset) > len(out) {
				return nil, 0, &OffsetOutOfRangeError{Offset: int(offset), Position: len(out)}
			}
			if maxSize > 0 && len(out)+int(length) > maxSize {
				return nil, 0, &OverSizeError{Size: len(out) + int(length), Limit: maxSize}
			}

			out = appendMatch(out, int(offset), int(length))
			if tracker != nil {
				tracker.onMatch(len(out), int(offset), int(length))
			}

			state.prevWasMatch = true
			state.pos += int(length)
		} else {
			var b byte
			ctx := 1
			base := state.literalBase()
			for i := 0; i < 8; i++ {
				bit, err := decodeWithContext(dec, &state.contexts, base+ctx)
				if err != nil {
					return nil, 0, err
				}
				b = (b << 1) | byte(boolToInt(bit))
				ctx = (ctx << 1) | boolToInt(bit)
			}
			if maxSize > 0 && len(out)+1 > maxSize {
				return nil, 0, &OverSizeError{Size: len(out) + 1, Limit: maxSize}
			}
			out = append(out, b)
			if tracker != nil {
				tracker.onLiteral(len(out))
			}
			state.pos++
			state.prevWasMatch = false
		}
	}
}

// decodeLength is the decode-side mirror of encodeLength: reads
// continuation/payload bit pairs until a stop bit appears, rejecting
// streams whose value never stops within 32 bits of payload.
func decodeLength(dec *ransDecoder, state *coderState, contextStart int, config Config) (uint32, error) {
	ctx := contextStart
	value := uint32(0)
	shift := uint(0)
	for {
		if shift >= 32 {
			return 0, ErrValueOverflow
		}
		cont, err := decodeWithContext(dec, &state.contexts, ctx)
		if err != nil {
			return 0, err
		}
		if cont != config.ContinueValueBit {
			return value | (1 << shift), nil
		}
		payload, err := decodeWithContext(dec, &state.contexts, ctx+1)
		if err != nil {
			return 0, err
		}
		value |= uint32(boolToInt(payload)) << shift
		shift++
		ctx += 2
	}
}

// decodeTracker receives a callback for every token unpackInternal emits,
// letting diagnostic passes observe the decode without re-implementing it.
type decodeTracker interface {
	onStep(outPos, inPos int)
	onLiteral(outPos int)
	onMatch(outPos, offset, length int)
}
