package utfdump

import (
	"bytes"
	"errors"
	"math"
	"sync"
)

// magicNumber identifies an encoded database blob.
var magicNumber = [8]byte{'U', 'T', 'F', 'D', 'U', 'M', 'P', '!'}

// Blob validation errors.
var (
	ErrInvalidHeader     = errors.New("invalid header")
	ErrInsufficientBytes = errors.New("fewer bytes than expected")
	ErrOutOfBounds       = errors.New("index out of bounds")
	ErrLeftoverBytes     = errors.New("unexpected bytes found after expected end of data")
	ErrInvalidTableSize  = errors.New("invalid table size")
)

// UnicodeData is a read-only view over an encoded database blob. The view
// borrows the blob's bytes and holds no mutable state, so a value may be
// copied and used from multiple goroutines concurrently without
// synchronization.
//
// The zero value is an empty database; use FromBytes.
type UnicodeData struct {
	groups  groupTable
	chars   []byte
	strings stringTable
}

// FromBytes validates blob and wraps it. The blob must consist of the
// 8-byte magic number, three little-endian uint32 table lengths, and the
// group, char and string tables in that order, with no trailing bytes.
func FromBytes(blob []byte) (UnicodeData, error) {
	bs := byteStream{rest: blob}

	head, err := bs.consume(len(magicNumber))
	if err != nil {
		return UnicodeData{}, err
	}
	if !bytes.Equal(head, magicNumber[:]) {
		return UnicodeData{}, ErrInvalidHeader
	}

	groupLen, err := bs.consumeLen()
	if err != nil {
		return UnicodeData{}, err
	}
	charLen, err := bs.consumeLen()
	if err != nil {
		return UnicodeData{}, err
	}
	stringLen, err := bs.consumeLen()
	if err != nil {
		return UnicodeData{}, err
	}

	groupBytes, err := bs.consume(groupLen)
	if err != nil {
		return UnicodeData{}, err
	}
	charBytes, err := bs.consume(charLen)
	if err != nil {
		return UnicodeData{}, err
	}
	stringBytes, err := bs.consume(stringLen)
	if err != nil {
		return UnicodeData{}, err
	}
	if err := bs.checkEmpty(); err != nil {
		return UnicodeData{}, err
	}

	groups, err := newGroupTable(groupBytes)
	if err != nil {
		return UnicodeData{}, err
	}
	if len(charBytes)%charRecordSize != 0 {
		return UnicodeData{}, ErrInvalidTableSize
	}

	tracer().Debugf("unicode data: %d groups, %d records, %d string bytes",
		groups.len(), len(charBytes)/charRecordSize, len(stringBytes))

	return UnicodeData{
		groups:  groups,
		chars:   charBytes,
		strings: stringTable{bytes: stringBytes},
	}, nil
}

// FromBytesOnce returns a function that parses blob on first use and caches
// the result. Intended for blobs embedded in the binary image, e.g. via
// go:embed.
func FromBytesOnce(blob []byte) func() (UnicodeData, error) {
	return sync.OnceValues(func() (UnicodeData, error) {
		return FromBytes(blob)
	})
}

// Get looks up the record for a codepoint. The second return value is false
// for codepoints the database has no data for; a malformed record is
// treated as a miss, never as an error.
func (d UnicodeData) Get(codepoint uint32) (CharData, bool) {
	index, ok := d.groups.charTableIndexFor(codepoint)
	if !ok {
		return CharData{}, false
	}
	start := uint64(index) * charRecordSize
	end := start + charRecordSize
	if end > uint64(len(d.chars)) {
		return CharData{}, false
	}
	return d.charDataAt(codepoint, d.chars[start:end])
}

// Walk calls fn for every codepoint that owns a char-table record, in
// ascending codepoint order, until fn returns false. Members of a USE_PREV
// group are visited once, through their prototype; unassigned ranges are
// skipped.
func (d UnicodeData) Walk(fn func(CharData) bool) {
	n := len(d.chars) / charRecordSize
	numGroups := d.groups.len()
	codepoint := uint32(0)
	g := 0

	for i := 0; i < n; i++ {
		// Groups contribute no records of their own; skip over any group
		// starting at the current codepoint.
		for g < numGroups {
			e := d.groups.entry(g)
			if e.start != codepoint {
				break
			}
			codepoint = e.end + 1
			g++
		}
		rec := d.chars[i*charRecordSize : (i+1)*charRecordSize]
		if cd, ok := d.charDataAt(codepoint, rec); ok {
			if !fn(cd) {
				return
			}
		}
		codepoint++
	}
}

func (d UnicodeData) charDataAt(codepoint uint32, rec []byte) (CharData, bool) {
	r, ok := decodeRecord(rec)
	if !ok {
		return CharData{}, false
	}

	name, ok := d.strings.get(r.name)
	if !ok {
		return CharData{}, false
	}

	var decomp DecompMapping
	hasDecomp := false
	if value, ok := d.strings.getU24(u24LEFrom(r.decomp)); ok && r.decompKind != decompAbsent {
		hasDecomp = true
		if r.decompKind == decompAnon {
			decomp = DecompMapping{value: value}
		} else {
			decomp = DecompMapping{
				kind:    DecompKind(r.decompKind - decompNamedBase),
				hasKind: true,
				value:   value,
			}
		}
	}

	numeric, _ := d.strings.getU24(u24LEFrom(r.numeric))
	oldName, _ := d.strings.getU24(u24LEFrom(r.oldName))
	comment, _ := d.strings.getU24(u24LEFrom(r.comment))
	uppercase, _ := d.strings.getU24(u24LEFrom(r.uppercase))
	lowercase, _ := d.strings.getU24(u24LEFrom(r.lowercase))
	titlecase, _ := d.strings.getU24(u24LEFrom(r.titlecase))

	return CharData{
		codepoint:    codepoint,
		name:         name,
		category:     r.category,
		combining:    r.combining,
		bidi:         r.bidi,
		decomp:       decomp,
		hasDecomp:    hasDecomp,
		decimalDigit: r.decimal,
		digit:        r.digit,
		numeric:      numeric,
		mirrored:     r.mirrored,
		oldName:      oldName,
		comment:      comment,
		uppercase:    uppercase,
		lowercase:    lowercase,
		titlecase:    titlecase,
	}, true
}

func u24LEFrom(v uint32) u24le {
	return u24le{byte(v), byte(v >> 8), byte(v >> 16)}
}

// byteStream consumes a blob front to back during validation.
type byteStream struct {
	rest []byte
}

func (b *byteStream) consume(n int) ([]byte, error) {
	if n > len(b.rest) {
		return nil, ErrInsufficientBytes
	}
	consumed := b.rest[:n]
	b.rest = b.rest[n:]
	return consumed, nil
}

func (b *byteStream) consumeLen() (int, error) {
	bs, err := b.consume(4)
	if err != nil {
		return 0, err
	}
	v := u32le(bs).uint32()
	if uint64(v) > math.MaxInt32 {
		return 0, ErrOutOfBounds
	}
	return int(v), nil
}

func (b *byteStream) checkEmpty() error {
	if len(b.rest) != 0 {
		return ErrLeftoverBytes
	}
	return nil
}
