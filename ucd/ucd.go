// Package ucd parses the Unicode Character Database's UnicodeData.txt
// format into utfdump rows.
//
// Each non-blank line carries 15 semicolon-separated fields:
//
//	codepoint;name;category;combining;bidi;decomposition;decimal;digit;
//	numeric;mirrored;unicode-1-name;iso-comment;uppercase;lowercase;titlecase
//
// The parser is streaming: Reader yields one Row per call and returns
// io.EOF when the source is exhausted, matching utfdump.RowReader.
package ucd

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/npillmayer/utfdump"
)

const numFields = 15

// Reader streams rows from a UnicodeData.txt source.
type Reader struct {
	scanner *bufio.Scanner
	line    int
}

// NewReader reads uncompressed UnicodeData.txt lines from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{scanner: bufio.NewScanner(r)}
}

// Open wraps r, transparently decompressing gzip input. The UCD source is
// commonly pre-staged as UnicodeData.txt.gz.
func Open(r io.Reader) (*Reader, error) {
	br := bufio.NewReader(r)
	head, err := br.Peek(2)
	if err == nil && head[0] == 0x1f && head[1] == 0x8b {
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, err
		}
		return NewReader(zr), nil
	}
	return NewReader(br), nil
}

// Next returns the next parsed row, skipping blank lines.
// It returns io.EOF when exhausted.
func (r *Reader) Next() (utfdump.Row, error) {
	for r.scanner.Scan() {
		r.line++
		line := strings.TrimSpace(r.scanner.Text())
		if line == "" {
			continue
		}
		row, err := ParseLine(line)
		if err != nil {
			return utfdump.Row{}, fmt.Errorf("line %d: %w", r.line, err)
		}
		return row, nil
	}
	if err := r.scanner.Err(); err != nil {
		return utfdump.Row{}, err
	}
	return utfdump.Row{}, io.EOF
}

// ParseLine parses one semicolon-delimited UnicodeData.txt line.
func ParseLine(line string) (utfdump.Row, error) {
	fields := strings.Split(line, ";")
	if len(fields) != numFields {
		return utfdump.Row{}, fmt.Errorf("expected %d fields, got %d", numFields, len(fields))
	}
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	codepoint, err := strconv.ParseUint(fields[0], 16, 32)
	if err != nil {
		return utfdump.Row{}, fmt.Errorf("bad codepoint %q: %w", fields[0], err)
	}
	category, ok := utfdump.ParseCategory(fields[2])
	if !ok {
		return utfdump.Row{}, fmt.Errorf("unknown general category %q", fields[2])
	}
	combining, err := strconv.ParseUint(fields[3], 10, 8)
	if err != nil {
		return utfdump.Row{}, fmt.Errorf("bad combining class %q: %w", fields[3], err)
	}
	bidi, ok := utfdump.ParseBidiCategory(fields[4])
	if !ok {
		return utfdump.Row{}, fmt.Errorf("unknown bidi class %q", fields[4])
	}
	decimalDigit, err := parseDigitField(fields[6])
	if err != nil {
		return utfdump.Row{}, fmt.Errorf("bad decimal digit %q: %w", fields[6], err)
	}
	digit, err := parseDigitField(fields[7])
	if err != nil {
		return utfdump.Row{}, fmt.Errorf("bad digit %q: %w", fields[7], err)
	}

	return utfdump.Row{
		Codepoint:    uint32(codepoint),
		Name:         fields[1],
		Category:     category,
		Combining:    utfdump.CombiningClass(combining),
		Bidi:         bidi,
		Decomp:       fields[5],
		DecimalDigit: decimalDigit,
		Digit:        digit,
		Numeric:      fields[8],
		Mirrored:     fields[9] == "Y",
		OldName:      fields[10],
		Comment:      fields[11],
		Uppercase:    fields[12],
		Lowercase:    fields[13],
		Titlecase:    fields[14],
	}, nil
}

func parseDigitField(s string) (int8, error) {
	if s == "" {
		return -1, nil
	}
	v, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return 0, err
	}
	if v > 9 {
		return 0, fmt.Errorf("digit value out of range: %d", v)
	}
	return int8(v), nil
}
