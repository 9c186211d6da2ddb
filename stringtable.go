package utfdump

import (
	"errors"
	"unicode/utf8"
)

// nilString is the 24-bit offset sentinel meaning "no string".
const nilString = 0xffffff

// Builder capacity errors.
var (
	ErrDataOutOfCapacity        = errors.New("data buf out of capacity")
	ErrStringsMapOutOfCapacity  = errors.New("strings map out of capacity")
	ErrStringTooLong            = errors.New("string too long to add to table")
	ErrStringTableOutOfCapacity = errors.New("string table out of capacity")
)

// stringTable is a read-only view of the length-prefixed string pool. An
// offset addresses the single length byte of an entry, which is immediately
// followed by that many bytes of UTF-8.
type stringTable struct {
	bytes []byte
}

func (t stringTable) get(off uint32) (string, bool) {
	i := int(off)
	if i >= len(t.bytes) {
		return "", false
	}
	start := i + 1
	end := start + int(t.bytes[i])
	if end > len(t.bytes) {
		return "", false
	}
	s := t.bytes[start:end]
	if !utf8.Valid(s) {
		return "", false
	}
	return string(s), true
}

// getU24 resolves a packed 24-bit offset, honouring the absent sentinel.
func (t stringTable) getU24(off u24le) (string, bool) {
	v := off.uint32()
	if v == nilString {
		return "", false
	}
	return t.get(v)
}

// stringPool is the append-only build-time string store. The dedup map is
// auxiliary and not part of the on-disk layout.
type stringPool struct {
	buf   []byte
	dedup map[string]uint32
}

func newStringPool() *stringPool {
	return &stringPool{dedup: make(map[string]uint32)}
}

// push appends s as len|bytes and returns the offset of the length byte.
// Identical strings share a single offset.
func (p *stringPool) push(s string) (uint32, error) {
	if off, ok := p.dedup[s]; ok {
		return off, nil
	}
	if len(s) > 255 {
		return 0, ErrStringTooLong
	}
	off := len(p.buf)
	// Non-nil offsets must stay below the sentinel value.
	if off >= nilString {
		return 0, ErrStringTableOutOfCapacity
	}
	p.buf = append(p.buf, byte(len(s)))
	p.buf = append(p.buf, s...)
	p.dedup[s] = uint32(off)
	return uint32(off), nil
}
