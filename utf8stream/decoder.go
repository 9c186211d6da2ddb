// Package utf8stream decodes byte streams as UTF-8 with standards-conforming
// error reporting.
//
// The decoder implements the WHATWG Encoding Standard UTF-8 decoder
// (https://encoding.spec.whatwg.org/#utf-8-decoder): a single pass over the
// input with one byte of look-ahead, yielding one item (a codepoint or an
// error) per lead-byte decision. Errors never terminate the stream; the
// decoder resynchronizes at the next lead byte. The boundary restrictions on
// the first continuation byte preclude overlong encodings, surrogate halves
// and codepoints above 0x10FFFF, so every successfully decoded rune is a
// Unicode scalar value.
package utf8stream

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
)

// Decoder is a streaming UTF-8 decoder. It owns nothing beyond a single
// byte of look-ahead and produces a finite item sequence for any finite
// input.
type Decoder struct {
	r *bufio.Reader
}

// NewDecoder decodes the byte stream read from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: bufio.NewReader(r)}
}

// Decode returns a decoder over p.
func Decode(p []byte) *Decoder {
	return NewDecoder(bytes.NewReader(p))
}

const (
	defaultLower = 0x80
	defaultUpper = 0xbf
)

// Next returns the next decoded codepoint. At the end of the stream it
// returns io.EOF. An invalid sequence is reported as a *DecodeError and
// decoding may continue: a rejected continuation byte is not consumed and
// becomes the next lead byte.
func (d *Decoder) Next() (rune, error) {
	first, err := d.r.ReadByte()
	if err == io.EOF {
		return 0, io.EOF
	}
	if err != nil {
		return 0, err
	}

	// Track the bytes seen so far, so an error can report the problematic
	// slice.
	var seen [4]byte
	seen[0] = first

	var codepoint uint32
	var needed int
	lower, upper := byte(defaultLower), byte(defaultUpper)

	switch {
	case first <= 0x7f:
		return rune(first), nil

	case 0xc2 <= first && first <= 0xdf:
		needed = 1
		codepoint = uint32(first&0x1f) << 6

	case 0xe0 <= first && first <= 0xef:
		needed = 2
		codepoint = uint32(first&0x0f) << 12
		switch first {
		case 0xe0:
			lower = 0xa0
		case 0xed:
			upper = 0x9f
		}

	case 0xf0 <= first && first <= 0xf4:
		needed = 3
		codepoint = uint32(first&0x07) << 18
		switch first {
		case 0xf0:
			lower = 0x90
		case 0xf4:
			upper = 0x8f
		}

	default:
		// 0x80..0xBF, 0xC0, 0xC1, 0xF5..0xFF can never start a sequence.
		return 0, &DecodeError{bytes: seen, numBad: 1, numConsumed: 1}
	}

	for i := 0; i < needed; i++ {
		// Peek rather than consume: an out-of-range byte must stay in the
		// stream.
		peeked, err := d.r.Peek(1)
		if err == io.EOF {
			return 0, &DecodeError{bytes: seen, numBad: i + 1, numConsumed: i}
		}
		if err != nil {
			return 0, err
		}
		b := peeked[0]
		seen[i+1] = b

		if b < lower || b > upper {
			return 0, &DecodeError{bytes: seen, numBad: i + 2, numConsumed: i}
		}

		d.r.ReadByte() // consume the peeked byte
		lower, upper = defaultLower, defaultUpper
		codepoint |= uint32(b&0x3f) << (6 * (needed - i - 1))
	}

	return rune(codepoint), nil
}

// DecodeError describes one invalid UTF-8 sequence. It reports the bytes
// involved and how many of them the decoder consumed.
type DecodeError struct {
	bytes       [4]byte
	numBad      int
	numConsumed int
}

// Bytes returns the offending byte slice. It includes a rejected
// continuation byte even though that byte remains in the stream.
func (e *DecodeError) Bytes() []byte {
	return e.bytes[:e.numBad]
}

// NumBadBytes returns the length of Bytes.
func (e *DecodeError) NumBadBytes() int {
	return e.numBad
}

// NumConsumedBadBytes reports how many continuation bytes past the lead
// were consumed before the sequence was rejected. For an invalid lead byte
// it is 1, the lead itself.
func (e *DecodeError) NumConsumedBadBytes() int {
	return e.numConsumed
}

// ConsumedBytes returns the prefix of Bytes that the decoder actually
// consumed.
func (e *DecodeError) ConsumedBytes() []byte {
	return e.bytes[:min(e.numBad, e.numConsumed+1)]
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("invalid UTF-8 sequence % x", e.Bytes())
}
