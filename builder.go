package utfdump

import (
	"fmt"
	"io"
	"math"
	"strings"
)

// Row is one parsed line of UnicodeData.txt. String fields use "" for an
// absent UCD field and DecimalDigit/Digit use -1. Decomp holds the raw
// decomposition field as found, including a leading <kind> token when one
// is present. Uppercase, Lowercase and Titlecase hold hexadecimal codepoint
// strings.
//
// Format parsing is intentionally outside the base package; package ucd
// parses the concrete UnicodeData.txt format and feeds this API.
type Row struct {
	Codepoint    uint32
	Name         string
	Category     Category
	Combining    CombiningClass
	Bidi         BidiCategory
	Decomp       string
	DecimalDigit int8
	Digit        int8
	Numeric      string
	Mirrored     bool
	OldName      string
	Comment      string
	Uppercase    string
	Lowercase    string
	Titlecase    string
}

// RowReader yields UCD rows one-by-one in ascending codepoint order.
// It should return io.EOF when the stream is exhausted.
type RowReader interface {
	Next() (Row, error)
}

const (
	groupFirstSuffix = ", First>"
	groupLastSuffix  = ", Last>"
)

// Builder accumulates UCD rows and serializes them into an encoded database
// blob. A Builder is constructed, populated in codepoint order, serialized
// once, and discarded; it is not safe for concurrent use.
type Builder struct {
	groups       []groupEntry
	chars        []byte
	pool         *stringPool
	prev         int64  // last codepoint seen, -1 before the first row
	pendingFirst string // rewritten name of an open First..Last range
	inRange      bool
	totalSpan    uint32 // cumulative span of all groups so far
	rows         int
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{pool: newStringPool(), prev: -1}
}

// Compile drains reader into a fresh Builder and serializes the blob.
func Compile(name string, reader RowReader) ([]byte, error) {
	b := NewBuilder()
	for {
		row, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if err := b.AddRow(row); err != nil {
			return nil, err
		}
	}
	blob, err := b.Bytes()
	if err != nil {
		return nil, err
	}
	tracer().Infof("compiled %s: %d rows, %d groups, %d records, %d string bytes",
		name, b.rows, len(b.groups), len(b.chars)/charRecordSize, len(b.pool.buf))
	return blob, nil
}

// AddRow appends one row. Rows must arrive in strictly ascending codepoint
// order. A "<..., First>" row opens a range and emits the prototype record
// under the rewritten range name; the matching "<..., Last>" row closes it
// with a USE_PREV group. Gaps between consecutive codepoints become
// unassigned groups.
func (b *Builder) AddRow(row Row) error {
	codepoint := row.Codepoint
	if codepoint > 0x10ffff {
		return fmt.Errorf("codepoint out of range: %#x", codepoint)
	}
	if int64(codepoint) <= b.prev {
		return fmt.Errorf("rows out of order: U+%04X after U+%04X", codepoint, b.prev)
	}

	if b.inRange {
		rangeName, ok := stripRangeName(row.Name, groupLastSuffix)
		if !ok {
			return fmt.Errorf("expected end of range %q, got U+%04X %q",
				b.pendingFirst, codepoint, row.Name)
		}
		if rangeName != b.pendingFirst {
			return fmt.Errorf("range end %q does not match range start %q",
				rangeName, b.pendingFirst)
		}
		err := b.pushGroup(groupEntry{
			start: uint32(b.prev) + 1,
			end:   codepoint,
			kind:  groupUsePrev,
		})
		if err != nil {
			return err
		}
		b.inRange = false
		b.pendingFirst = ""
		b.prev = int64(codepoint)
		return nil
	}

	if _, ok := stripRangeName(row.Name, groupLastSuffix); ok {
		return fmt.Errorf("range end without range start: U+%04X %q", codepoint, row.Name)
	}

	if b.prev >= 0 && int64(codepoint) > b.prev+1 {
		err := b.pushGroup(groupEntry{
			start: uint32(b.prev) + 1,
			end:   codepoint - 1,
			kind:  groupUnassigned,
		})
		if err != nil {
			return err
		}
	}
	b.prev = int64(codepoint)

	name := row.Name
	if rangeName, ok := stripRangeName(name, groupFirstSuffix); ok {
		name = rangeName
		b.inRange = true
		b.pendingFirst = rangeName
	}
	return b.appendRecord(name, row)
}

// Bytes serializes the blob. It fails if a "<..., First>" row is still
// awaiting its "<..., Last>" counterpart.
func (b *Builder) Bytes() ([]byte, error) {
	if b.inRange {
		return nil, fmt.Errorf("unterminated range %q", b.pendingFirst)
	}

	groupLen := len(b.groups) * groupEntrySize
	if uint64(groupLen) > math.MaxUint32 ||
		uint64(len(b.chars)) > math.MaxUint32 ||
		uint64(len(b.pool.buf)) > math.MaxUint32 {
		return nil, ErrDataOutOfCapacity
	}

	out := make([]byte, 0, len(magicNumber)+12+groupLen+len(b.chars)+len(b.pool.buf))
	out = append(out, magicNumber[:]...)
	out = appendUint32LE(out, uint32(groupLen))
	out = appendUint32LE(out, uint32(len(b.chars)))
	out = appendUint32LE(out, uint32(len(b.pool.buf)))
	for _, g := range b.groups {
		out = g.appendTo(out)
	}
	out = append(out, b.chars...)
	out = append(out, b.pool.buf...)
	return out, nil
}

func (b *Builder) pushGroup(e groupEntry) error {
	e.totalLenBefore = b.totalSpan
	span := uint64(e.end) - uint64(e.start) + 1
	cumulative := uint64(b.totalSpan) + span
	if cumulative > math.MaxUint32 {
		return ErrDataOutOfCapacity
	}
	b.totalSpan = uint32(cumulative)
	b.groups = append(b.groups, e)
	return nil
}

func (b *Builder) appendRecord(name string, row Row) error {
	decompKind, decompValue, err := parseDecomp(row.Decomp)
	if err != nil {
		return fmt.Errorf("U+%04X: %w", row.Codepoint, err)
	}

	nameOff, err := b.pool.push(name)
	if err != nil {
		return err
	}
	decompOff, err := b.pushOptional(decompValue)
	if err != nil {
		return err
	}
	numericOff, err := b.pushOptional(row.Numeric)
	if err != nil {
		return err
	}
	oldNameOff, err := b.pushOptional(row.OldName)
	if err != nil {
		return err
	}
	commentOff, err := b.pushOptional(row.Comment)
	if err != nil {
		return err
	}
	uppercaseOff, err := b.pushOptional(row.Uppercase)
	if err != nil {
		return err
	}
	lowercaseOff, err := b.pushOptional(row.Lowercase)
	if err != nil {
		return err
	}
	titlecaseOff, err := b.pushOptional(row.Titlecase)
	if err != nil {
		return err
	}

	b.chars = recordFields{
		category:   row.Category,
		bidi:       row.Bidi,
		decompKind: decompKind,
		mirrored:   row.Mirrored,
		name:       nameOff,
		decomp:     decompOff,
		numeric:    numericOff,
		oldName:    oldNameOff,
		comment:    commentOff,
		uppercase:  uppercaseOff,
		lowercase:  lowercaseOff,
		titlecase:  titlecaseOff,
		combining:  row.Combining,
		decimal:    row.DecimalDigit,
		digit:      row.Digit,
	}.appendTo(b.chars)
	b.rows++
	return nil
}

func (b *Builder) pushOptional(s string) (uint32, error) {
	if s == "" {
		return nilString, nil
	}
	return b.pool.push(s)
}

// stripRangeName rewrites "<CJK Ideograph Extension A, First>" (or the
// matching ", Last>" form) to "CJK Ideograph Extension A".
func stripRangeName(name, suffix string) (string, bool) {
	if !strings.HasPrefix(name, "<") || !strings.HasSuffix(name, suffix) {
		return "", false
	}
	return name[1 : len(name)-len(suffix)], true
}

// parseDecomp splits the raw UCD decomposition field into its wire kind
// ordinal and the space-separated hexadecimal value string.
func parseDecomp(field string) (kind uint8, value string, err error) {
	if field == "" {
		return decompAbsent, "", nil
	}
	if strings.HasPrefix(field, "<") {
		token, rest, ok := strings.Cut(field[1:], ">")
		if !ok {
			return 0, "", fmt.Errorf("malformed decomposition %q", field)
		}
		k, ok := parseDecompKind(token)
		if !ok {
			return 0, "", fmt.Errorf("unknown decomposition kind %q", token)
		}
		return decompNamedBase + uint8(k), strings.TrimSpace(rest), nil
	}
	return decompAnon, field, nil
}
