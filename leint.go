package utfdump

// Fixed-width little-endian integer views over the packed blob. Table
// entries sit at unaligned byte positions, so decoding is done byte-by-byte
// rather than through machine-word loads.

// u16le is a little-endian 16-bit field.
type u16le [2]byte

func (u u16le) uint16() uint16 {
	return uint16(u[0]) | uint16(u[1])<<8
}

// u24le is a little-endian 24-bit field. The high byte is zero-extended.
type u24le [3]byte

func (u u24le) uint32() uint32 {
	return uint32(u[0]) | uint32(u[1])<<8 | uint32(u[2])<<16
}

// u32le is a little-endian 32-bit field.
type u32le [4]byte

func (u u32le) uint32() uint32 {
	return uint32(u[0]) | uint32(u[1])<<8 | uint32(u[2])<<16 | uint32(u[3])<<24
}

func appendUint16LE(dst []byte, v uint16) []byte {
	return append(dst, byte(v), byte(v>>8))
}

// appendUint24LE stores the low 24 bits of v; callers guarantee v fits.
func appendUint24LE(dst []byte, v uint32) []byte {
	return append(dst, byte(v), byte(v>>8), byte(v>>16))
}

func appendUint32LE(dst []byte, v uint32) []byte {
	return append(dst, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
}
