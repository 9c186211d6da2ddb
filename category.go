package utfdump

import (
	"fmt"
	"strings"
)

// Category is the Unicode general category of a codepoint.
type Category uint8

const (
	Lu Category = iota
	Ll
	Lt
	Mn
	Mc
	Me
	Nd
	Nl
	No
	Zs
	Zl
	Zp
	Cc
	Cf
	Cs
	Co
	Cn
	Lm
	Lo
	Pc
	Pd
	Ps
	Pe
	Pi
	Pf
	Po
	Sm
	Sc
	Sk
	So

	numCategories = 30
)

var categoryNames = [numCategories]struct{ abbr, full string }{
	Lu: {"Lu", "Letter, Uppercase"},
	Ll: {"Ll", "Letter, Lowercase"},
	Lt: {"Lt", "Letter, Titlecase"},
	Mn: {"Mn", "Mark, Non-Spacing"},
	Mc: {"Mc", "Mark, Spacing Combining"},
	Me: {"Me", "Mark, Enclosing"},
	Nd: {"Nd", "Number, Decimal Digit"},
	Nl: {"Nl", "Number, Letter"},
	No: {"No", "Number, Other"},
	Zs: {"Zs", "Separator, Space"},
	Zl: {"Zl", "Separator, Line"},
	Zp: {"Zp", "Separator: Paragraph"},
	Cc: {"Cc", "Other, Control"},
	Cf: {"Cf", "Other, Format"},
	Cs: {"Cs", "Other, Surrogate"},
	Co: {"Co", "Other, Private Use"},
	Cn: {"Cn", "Other, Not Assigned"},
	Lm: {"Lm", "Letter, Modifier"},
	Lo: {"Lo", "Letter, Other"},
	Pc: {"Pc", "Punctuation, Connector"},
	Pd: {"Pd", "Punctuation, Dash"},
	Ps: {"Ps", "Punctuation, Open"},
	Pe: {"Pe", "Punctuation, Close"},
	Pi: {"Pi", "Punctuation, Initial Quote"},
	Pf: {"Pf", "Punctuation, Final Quote"},
	Po: {"Po", "Punctuation, Other"},
	Sm: {"Sm", "Symbol, Math"},
	Sc: {"Sc", "Symbol, Currency"},
	Sk: {"Sk", "Symbol, Modifier"},
	So: {"So", "Symbol, Other"},
}

// Abbreviation returns the two-letter UCD abbreviation, e.g. "Lu".
func (c Category) Abbreviation() string {
	if c >= numCategories {
		return ""
	}
	return categoryNames[c].abbr
}

// FullName returns the category name in plain English, e.g.
// "Letter, Uppercase".
func (c Category) FullName() string {
	if c >= numCategories {
		return ""
	}
	return categoryNames[c].full
}

func (c Category) String() string {
	if c >= numCategories {
		return fmt.Sprintf("Category(%d)", uint8(c))
	}
	return c.Abbreviation()
}

func categoryFromByte(b uint8) (Category, bool) {
	if b >= numCategories {
		return 0, false
	}
	return Category(b), true
}

// ParseCategory resolves a UCD general-category abbreviation.
func ParseCategory(s string) (Category, bool) {
	for c := Category(0); c < numCategories; c++ {
		if strings.EqualFold(s, categoryNames[c].abbr) {
			return c, true
		}
	}
	return 0, false
}

// BidiCategory is the Bidirectional Algorithm's classification of a
// codepoint.
type BidiCategory uint8

const (
	BidiL BidiCategory = iota
	BidiR
	BidiAL
	BidiEN
	BidiES
	BidiET
	BidiAN
	BidiCS
	BidiNSM
	BidiBN
	BidiB
	BidiS
	BidiWS
	BidiON
	BidiLRE
	BidiLRO
	BidiRLE
	BidiRLO
	BidiPDF
	BidiLRI
	BidiRLI
	BidiFSI
	BidiPDI

	numBidiCategories = 23
)

var bidiNames = [numBidiCategories]struct{ abbr, full string }{
	BidiL:   {"L", "Left_To_Right"},
	BidiR:   {"R", "Right_To_Left"},
	BidiAL:  {"AL", "Arabic_Letter"},
	BidiEN:  {"EN", "European_Number"},
	BidiES:  {"ES", "European_Separator"},
	BidiET:  {"ET", "European_Terminator"},
	BidiAN:  {"AN", "Arabic_Number"},
	BidiCS:  {"CS", "Common_Separator"},
	BidiNSM: {"NSM", "Nonspacing_Mark"},
	BidiBN:  {"BN", "Boundary_Neutral"},
	BidiB:   {"B", "Paragraph_Separator"},
	BidiS:   {"S", "Segment_Separator"},
	BidiWS:  {"WS", "White_Space"},
	BidiON:  {"ON", "Other_Neutral"},
	BidiLRE: {"LRE", "Left_To_Right_Embedding"},
	BidiLRO: {"LRO", "Left_To_Right_Override"},
	BidiRLE: {"RLE", "Right_To_Left_Embedding"},
	BidiRLO: {"RLO", "Right_To_Left_Override"},
	BidiPDF: {"PDF", "Pop_Directional_Format"},
	BidiLRI: {"LRI", "Left_To_Right_Isolate"},
	BidiRLI: {"RLI", "Right_To_Left_Isolate"},
	BidiFSI: {"FSI", "First_Strong_Isolate"},
	BidiPDI: {"PDI", "Pop_Directional_Isolate"},
}

// Abbreviation returns the UCD bidi-class abbreviation, e.g. "AL".
func (b BidiCategory) Abbreviation() string {
	if b >= numBidiCategories {
		return ""
	}
	return bidiNames[b].abbr
}

// FullName returns the bidi-class property value name, e.g. "Arabic_Letter".
func (b BidiCategory) FullName() string {
	if b >= numBidiCategories {
		return ""
	}
	return bidiNames[b].full
}

func (b BidiCategory) String() string {
	if b >= numBidiCategories {
		return fmt.Sprintf("BidiCategory(%d)", uint8(b))
	}
	return b.Abbreviation()
}

func bidiFromByte(b uint8) (BidiCategory, bool) {
	if b >= numBidiCategories {
		return 0, false
	}
	return BidiCategory(b), true
}

// ParseBidiCategory resolves a UCD bidi-class abbreviation.
func ParseBidiCategory(s string) (BidiCategory, bool) {
	for b := BidiCategory(0); b < numBidiCategories; b++ {
		if strings.EqualFold(s, bidiNames[b].abbr) {
			return b, true
		}
	}
	return 0, false
}

// CombiningClass is the canonical combining class used by canonical
// ordering of combining marks.
type CombiningClass uint8

var combiningClassNames = map[CombiningClass]string{
	0:   "Not_Reordered",
	1:   "Overlay",
	6:   "Han_Reading",
	7:   "Nukta",
	8:   "Kana_Voicing",
	9:   "Virama",
	200: "Attached_Below_Left",
	202: "Attached_Below",
	214: "Attached_Above",
	216: "Attached_Above_Right",
	218: "Below_Left",
	220: "Below",
	222: "Below_Right",
	224: "Left",
	226: "Right",
	228: "Above_Left",
	230: "Above",
	232: "Above_Right",
	233: "Double_Below",
	234: "Double_Above",
	240: "Iota_Subscript",
}

// Name returns the canonical name of the combining class, for the values
// that have one.
func (c CombiningClass) Name() (string, bool) {
	name, ok := combiningClassNames[c]
	return name, ok
}

// IsCombining reports whether the class participates in canonical
// reordering, i.e. is non-zero.
func (c CombiningClass) IsCombining() bool {
	return c != 0
}

func (c CombiningClass) String() string {
	if name, ok := c.Name(); ok {
		return name
	}
	return fmt.Sprintf("Ccc%d", uint8(c))
}

// DecompKind is the compatibility formatting tag of a decomposition
// mapping. A canonical decomposition carries no kind.
type DecompKind uint8

const (
	DecompNoBreak DecompKind = iota
	DecompCompat
	DecompSuper
	DecompFraction
	DecompSub
	DecompFont
	DecompCircle
	DecompWide
	DecompVertical
	DecompSquare
	DecompIsolated
	DecompFinal
	DecompInitial
	DecompMedial
	DecompSmall
	DecompNarrow

	numDecompKinds = 16
)

var decompKindNames = [numDecompKinds]string{
	DecompNoBreak:  "noBreak",
	DecompCompat:   "compat",
	DecompSuper:    "super",
	DecompFraction: "fraction",
	DecompSub:      "sub",
	DecompFont:     "font",
	DecompCircle:   "circle",
	DecompWide:     "wide",
	DecompVertical: "vertical",
	DecompSquare:   "square",
	DecompIsolated: "isolated",
	DecompFinal:    "final",
	DecompInitial:  "initial",
	DecompMedial:   "medial",
	DecompSmall:    "small",
	DecompNarrow:   "narrow",
}

// Name returns the UCD formatting tag as it appears in UnicodeData.txt,
// e.g. "noBreak".
func (k DecompKind) Name() string {
	if k >= numDecompKinds {
		return ""
	}
	return decompKindNames[k]
}

func (k DecompKind) String() string {
	if k >= numDecompKinds {
		return fmt.Sprintf("DecompKind(%d)", uint8(k))
	}
	return k.Name()
}

func parseDecompKind(s string) (DecompKind, bool) {
	for k := DecompKind(0); k < numDecompKinds; k++ {
		if strings.EqualFold(s, decompKindNames[k]) {
			return k, true
		}
	}
	return 0, false
}
