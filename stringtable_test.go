package utfdump

import (
	"strings"
	"testing"
)

func TestStringPoolRoundTrip(t *testing.T) {
	pool := newStringPool()
	words := []string{"LATIN SMALL LETTER A", "<control>", "1/3", "κ"}
	offsets := make([]uint32, len(words))
	for i, w := range words {
		off, err := pool.push(w)
		if err != nil {
			t.Fatalf("push(%q): %v", w, err)
		}
		offsets[i] = off
	}
	table := stringTable{bytes: pool.buf}
	for i, w := range words {
		got, ok := table.get(offsets[i])
		if !ok || got != w {
			t.Errorf("get(%d) = %q, %v, want %q", offsets[i], got, ok, w)
		}
	}
}

func TestStringPoolDedup(t *testing.T) {
	pool := newStringPool()
	a, _ := pool.push("<control>")
	b, _ := pool.push("NULL")
	c, _ := pool.push("<control>")
	if a != c {
		t.Errorf("identical strings got offsets %d and %d", a, c)
	}
	if a == b {
		t.Errorf("distinct strings share offset %d", a)
	}
	wantLen := 1 + len("<control>") + 1 + len("NULL")
	if len(pool.buf) != wantLen {
		t.Errorf("pool holds %d bytes, want %d", len(pool.buf), wantLen)
	}
}

func TestStringPoolLengthLimit(t *testing.T) {
	pool := newStringPool()
	if _, err := pool.push(strings.Repeat("x", 255)); err != nil {
		t.Errorf("255-byte string rejected: %v", err)
	}
	if _, err := pool.push(strings.Repeat("y", 256)); err != ErrStringTooLong {
		t.Errorf("256-byte string: err = %v, want ErrStringTooLong", err)
	}
}

func TestStringTableMisses(t *testing.T) {
	table := stringTable{bytes: []byte{3, 'a', 'b'}} // length byte overruns
	if _, ok := table.get(0); ok {
		t.Errorf("truncated entry did not miss")
	}
	if _, ok := table.get(10); ok {
		t.Errorf("out-of-bounds offset did not miss")
	}
	bad := stringTable{bytes: []byte{2, 0xff, 0xfe}}
	if _, ok := bad.get(0); ok {
		t.Errorf("invalid UTF-8 entry did not miss")
	}
}

func TestStringTableNilSentinel(t *testing.T) {
	table := stringTable{bytes: []byte{1, 'a'}}
	if _, ok := table.getU24(u24le{0xff, 0xff, 0xff}); ok {
		t.Errorf("nil sentinel resolved to a string")
	}
	if s, ok := table.getU24(u24le{0, 0, 0}); !ok || s != "a" {
		t.Errorf("getU24(0) = %q, %v, want \"a\"", s, ok)
	}
}
