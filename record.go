package utfdump

// Packed per-codepoint record codec. A record is 28 bytes:
//
//	flags_and_categories                             : u16 LE
//	name, decomp, numeric, old_name, comment,
//	uppercase, lowercase, titlecase                  : u24 LE each
//	combining                                        : u8
//	digit                                            : u8
//
// flags_and_categories packs, LSB first: category ordinal (5 bits), bidi
// category ordinal (5 bits), decomposition-kind ordinal (5 bits), mirrored
// flag (1 bit). digit packs the decimal digit value in the low nibble and
// the digit value in the high nibble, with 0xF meaning absent.

const charRecordSize = 28

// Wire ordinals for the decomposition kind. Named kinds follow at
// decompNamedBase + DecompKind.
const (
	decompAbsent    = 0
	decompAnon      = 1
	decompNamedBase = 2
)

const digitAbsent = 0xf

// recordFields is the unpacked form of one char-table record. String fields
// hold string-pool offsets, with nilString marking absence.
type recordFields struct {
	category   Category
	bidi       BidiCategory
	decompKind uint8 // wire ordinal, decompAbsent..decompNamedBase+15
	mirrored   bool
	name       uint32
	decomp     uint32
	numeric    uint32
	oldName    uint32
	comment    uint32
	uppercase  uint32
	lowercase  uint32
	titlecase  uint32
	combining  CombiningClass
	decimal    int8 // -1 when absent
	digit      int8 // -1 when absent
}

func (r recordFields) appendTo(dst []byte) []byte {
	flags := uint16(r.category) & 0x1f
	flags |= (uint16(r.bidi) & 0x1f) << 5
	flags |= (uint16(r.decompKind) & 0x1f) << 10
	if r.mirrored {
		flags |= 1 << 15
	}
	dst = appendUint16LE(dst, flags)
	for _, off := range [...]uint32{
		r.name, r.decomp, r.numeric, r.oldName,
		r.comment, r.uppercase, r.lowercase, r.titlecase,
	} {
		dst = appendUint24LE(dst, off)
	}
	dst = append(dst, uint8(r.combining), packDigits(r.decimal, r.digit))
	return dst
}

// decodeRecord unpacks a 28-byte record, rejecting out-of-range category,
// bidi and decomposition-kind ordinals.
func decodeRecord(rec []byte) (recordFields, bool) {
	if len(rec) != charRecordSize {
		return recordFields{}, false
	}
	flags := u16le(rec[0:2]).uint16()

	category, ok := categoryFromByte(uint8(flags & 0x1f))
	if !ok {
		return recordFields{}, false
	}
	bidi, ok := bidiFromByte(uint8((flags >> 5) & 0x1f))
	if !ok {
		return recordFields{}, false
	}
	decompKind := uint8((flags >> 10) & 0x1f)
	if decompKind >= decompNamedBase+numDecompKinds {
		return recordFields{}, false
	}

	return recordFields{
		category:   category,
		bidi:       bidi,
		decompKind: decompKind,
		mirrored:   flags>>15 != 0,
		name:       u24le(rec[2:5]).uint32(),
		decomp:     u24le(rec[5:8]).uint32(),
		numeric:    u24le(rec[8:11]).uint32(),
		oldName:    u24le(rec[11:14]).uint32(),
		comment:    u24le(rec[14:17]).uint32(),
		uppercase:  u24le(rec[17:20]).uint32(),
		lowercase:  u24le(rec[20:23]).uint32(),
		titlecase:  u24le(rec[23:26]).uint32(),
		combining:  CombiningClass(rec[26]),
		decimal:    unpackDigit(rec[27] & 0xf),
		digit:      unpackDigit((rec[27] >> 4) & 0xf),
	}, true
}

func packDigits(decimal, digit int8) byte {
	lo, hi := byte(digitAbsent), byte(digitAbsent)
	if decimal >= 0 {
		lo = byte(decimal) & 0xf
	}
	if digit >= 0 {
		hi = byte(digit) & 0xf
	}
	return lo | hi<<4
}

func unpackDigit(nibble byte) int8 {
	if nibble == digitAbsent {
		return -1
	}
	return int8(nibble)
}
