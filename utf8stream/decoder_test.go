package utf8stream

import (
	"bytes"
	"errors"
	"io"
	"reflect"
	"testing"
)

// item is either a codepoint or the shape of a DecodeError.
type item struct {
	r        rune
	bad      int // DecodeError.NumBadBytes, 0 for a codepoint
	consumed int // DecodeError.NumConsumedBadBytes
}

func cp(r rune) item           { return item{r: r} }
func bad(n, consumed int) item { return item{bad: n, consumed: consumed} }

func drain(t *testing.T, input []byte) []item {
	t.Helper()
	d := Decode(input)
	var items []item
	for {
		r, err := d.Next()
		if err == io.EOF {
			return items
		}
		var derr *DecodeError
		if errors.As(err, &derr) {
			items = append(items, bad(derr.NumBadBytes(), derr.NumConsumedBadBytes()))
			continue
		}
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		items = append(items, cp(r))
	}
}

func TestDecodeASCII(t *testing.T) {
	got := drain(t, []byte("hello"))
	want := []item{cp('h'), cp('e'), cp('l'), cp('l'), cp('o')}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("decode(hello) = %v, want %v", got, want)
	}
}

func TestDecodeMultibyte(t *testing.T) {
	got := drain(t, []byte("κόσμε"))
	want := []item{cp('κ'), cp('ό'), cp('σ'), cp('μ'), cp('ε')}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("decode(κόσμε) = %v, want %v", got, want)
	}
	got = drain(t, []byte("\U0001F4A9"))
	want = []item{cp(0x1f4a9)}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("decode(U+1F4A9) = %v, want %v", got, want)
	}
}

// A rejected continuation byte is not consumed and decodes on its own.
func TestDecodeResynchronizes(t *testing.T) {
	got := drain(t, []byte{0xce, 0x61})
	want := []item{bad(2, 0), cp('a')}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("decode(CE 61) = %v, want %v", got, want)
	}
}

func TestDecodeThreeByteBoundaries(t *testing.T) {
	// ED 86 AD is a well-formed sequence just below the surrogate block.
	got := drain(t, []byte{0xed, 0x86, 0xad, 0xed, 0xba, 0xad})
	want := []item{cp(0xd1ad), bad(2, 0), bad(1, 1), bad(1, 1)}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("decode(ED 86 AD ED BA AD) = %v, want %v", got, want)
	}

	// E0 9F would be an overlong three-byte encoding.
	got = drain(t, []byte{0xe0, 0x9f, 0x80})
	if len(got) == 0 || got[0] != bad(2, 0) {
		t.Errorf("decode(E0 9F 80) starts with %v, want %v", got, bad(2, 0))
	}

	// E0 A0 80 is the smallest valid three-byte sequence.
	got = drain(t, []byte{0xe0, 0xa0, 0x80})
	want = []item{cp(0x0800)}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("decode(E0 A0 80) = %v, want %v", got, want)
	}
}

func TestDecodeFourByteBoundaries(t *testing.T) {
	// F0 8F would be overlong, F4 90 would pass 0x10FFFF.
	got := drain(t, []byte{0xf0, 0x8f, 0xbf, 0xbf})
	if len(got) == 0 || got[0] != bad(2, 0) {
		t.Errorf("decode(F0 8F ...) starts with %v, want %v", got, bad(2, 0))
	}
	got = drain(t, []byte{0xf4, 0x90, 0x80, 0x80})
	if len(got) == 0 || got[0] != bad(2, 0) {
		t.Errorf("decode(F4 90 ...) starts with %v, want %v", got, bad(2, 0))
	}
	got = drain(t, []byte{0xf4, 0x8f, 0xbf, 0xbf})
	want := []item{cp(0x10ffff)}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("decode(F4 8F BF BF) = %v, want %v", got, want)
	}
}

func TestDecodeInvalidLeadBytes(t *testing.T) {
	for _, lead := range []byte{0x80, 0xbf, 0xc0, 0xc1, 0xf5, 0xff} {
		got := drain(t, []byte{lead})
		want := []item{bad(1, 1)}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("decode(%#x) = %v, want %v", lead, got, want)
		}
	}
}

func TestDecodeTruncatedSequence(t *testing.T) {
	got := drain(t, []byte{0xe0, 0xa0})
	want := []item{bad(2, 1)}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("decode(E0 A0) = %v, want %v", got, want)
	}
	got = drain(t, []byte{0xf0})
	want = []item{bad(1, 0)}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("decode(F0) = %v, want %v", got, want)
	}
}

func TestDecodeErrorBytes(t *testing.T) {
	d := Decode([]byte{0xce, 0x61})
	_, err := d.Next()
	var derr *DecodeError
	if !errors.As(err, &derr) {
		t.Fatalf("expected a DecodeError, got %v", err)
	}
	if !bytes.Equal(derr.Bytes(), []byte{0xce, 0x61}) {
		t.Errorf("Bytes() = % x", derr.Bytes())
	}
	// The rejected continuation byte stays in the stream, so only the lead
	// counts as consumed.
	if !bytes.Equal(derr.ConsumedBytes(), []byte{0xce}) {
		t.Errorf("ConsumedBytes() = % x", derr.ConsumedBytes())
	}
	if derr.Error() == "" {
		t.Errorf("empty error message")
	}
}

// Decoding a valid string and re-encoding its runes reproduces the input.
func TestDecodeReencode(t *testing.T) {
	input := "aκόࠀ\U0001F4A9z"
	d := Decode([]byte(input))
	var out []rune
	for {
		r, err := d.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		out = append(out, r)
	}
	if string(out) != input {
		t.Errorf("re-encoded %q, want %q", string(out), input)
	}
}

func TestDecodeEmptyInput(t *testing.T) {
	d := Decode(nil)
	if _, err := d.Next(); err != io.EOF {
		t.Errorf("Next on empty input: %v, want io.EOF", err)
	}
	// EOF is sticky.
	if _, err := d.Next(); err != io.EOF {
		t.Errorf("second Next on empty input: %v, want io.EOF", err)
	}
}
