package utfdump

// CharData is one codepoint's record from the encoded database. Values are
// immutable; string fields are copies and may outlive the blob they were
// decoded from.
//
// Optional fields report presence through a second return value. Absent UCD
// fields are never stored as empty strings.
type CharData struct {
	codepoint    uint32
	name         string
	category     Category
	combining    CombiningClass
	bidi         BidiCategory
	decomp       DecompMapping
	hasDecomp    bool
	decimalDigit int8 // -1 when absent
	digit        int8 // -1 when absent
	numeric      string
	mirrored     bool
	oldName      string
	comment      string
	uppercase    string
	lowercase    string
	titlecase    string
}

// Codepoint returns the codepoint the record describes.
func (cd CharData) Codepoint() uint32 {
	return cd.codepoint
}

// Name returns the character name. Members of a "First..Last" range share
// the range's name, e.g. "CJK Ideograph Extension A".
func (cd CharData) Name() string {
	return cd.name
}

// Category returns the general category.
func (cd CharData) Category() Category {
	return cd.category
}

// CombiningClass returns the canonical combining class.
func (cd CharData) CombiningClass() CombiningClass {
	return cd.combining
}

// BidiCategory returns the bidirectional class.
func (cd CharData) BidiCategory() BidiCategory {
	return cd.bidi
}

// DecompMapping returns the decomposition mapping, if any.
func (cd CharData) DecompMapping() (DecompMapping, bool) {
	return cd.decomp, cd.hasDecomp
}

// DecimalDigitValue returns the decimal digit value, if any.
func (cd CharData) DecimalDigitValue() (uint8, bool) {
	if cd.decimalDigit < 0 {
		return 0, false
	}
	return uint8(cd.decimalDigit), true
}

// DigitValue returns the digit value, if any.
func (cd CharData) DigitValue() (uint8, bool) {
	if cd.digit < 0 {
		return 0, false
	}
	return uint8(cd.digit), true
}

// NumericValue returns the numeric value as found in the UCD, if any. The
// value may be a fraction such as "1/3".
func (cd CharData) NumericValue() (string, bool) {
	return cd.numeric, cd.numeric != ""
}

// Mirrored reports whether the character is mirrored in bidirectional text.
func (cd CharData) Mirrored() bool {
	return cd.mirrored
}

// Unicode1Name returns the Unicode 1.0 name, if any.
func (cd CharData) Unicode1Name() (string, bool) {
	return cd.oldName, cd.oldName != ""
}

// Comment returns the ISO 10646 comment, if any.
func (cd CharData) Comment() (string, bool) {
	return cd.comment, cd.comment != ""
}

// Uppercase returns the simple uppercase mapping as a hexadecimal codepoint
// string, if any.
func (cd CharData) Uppercase() (string, bool) {
	return cd.uppercase, cd.uppercase != ""
}

// Lowercase returns the simple lowercase mapping as a hexadecimal codepoint
// string, if any.
func (cd CharData) Lowercase() (string, bool) {
	return cd.lowercase, cd.lowercase != ""
}

// Titlecase returns the simple titlecase mapping as a hexadecimal codepoint
// string, if any.
func (cd CharData) Titlecase() (string, bool) {
	return cd.titlecase, cd.titlecase != ""
}

// DecompMapping describes how a codepoint decomposes. Value holds the
// space-separated hexadecimal codepoints as found in the UCD; Kind is absent
// for a canonical decomposition.
type DecompMapping struct {
	kind    DecompKind
	hasKind bool
	value   string
}

// Kind returns the compatibility formatting tag, if any.
func (m DecompMapping) Kind() (DecompKind, bool) {
	return m.kind, m.hasKind
}

// Value returns the decomposition value string.
func (m DecompMapping) Value() string {
	return m.value
}
