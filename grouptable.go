package utfdump

import "math"

// The group table range-compresses the UCD's "First..Last" blocks and its
// unassigned gaps. Entries are 13 bytes:
//
//	start            : u32 LE   (inclusive)
//	end              : u32 LE   (inclusive)
//	total_len_before : u32 LE   (sum of the spans of all earlier groups)
//	kind             : u8
//
// A USE_PREV group contributes no char-table records; its members resolve to
// the prototype record of the codepoint at start-1. Any other kind marks the
// range as unassigned.

const groupEntrySize = 13

const (
	groupUnassigned = 0
	groupUsePrev    = 1
)

type groupEntry struct {
	start          uint32
	end            uint32
	totalLenBefore uint32
	kind           uint8
}

func (e groupEntry) appendTo(dst []byte) []byte {
	dst = appendUint32LE(dst, e.start)
	dst = appendUint32LE(dst, e.end)
	dst = appendUint32LE(dst, e.totalLenBefore)
	return append(dst, e.kind)
}

// groupTable is a read-only view of the serialized group entries, sorted by
// start and non-overlapping.
type groupTable struct {
	bytes []byte
}

func newGroupTable(bs []byte) (groupTable, error) {
	if len(bs)%groupEntrySize != 0 {
		return groupTable{}, ErrInvalidTableSize
	}
	return groupTable{bytes: bs}, nil
}

func (t groupTable) len() int {
	return len(t.bytes) / groupEntrySize
}

func (t groupTable) entry(i int) groupEntry {
	e := t.bytes[i*groupEntrySize:]
	return groupEntry{
		start:          u32le(e[0:4]).uint32(),
		end:            u32le(e[4:8]).uint32(),
		totalLenBefore: u32le(e[8:12]).uint32(),
		kind:           e[12],
	}
}

// charTableIndexFor resolves a codepoint to its char-table index by binary
// search. A codepoint outside every group indexes at codepoint minus the
// cumulative span of the groups before it; a codepoint inside a USE_PREV
// group resolves to the prototype record at start-1. The second return
// value is false for unassigned codepoints and for malformed entries that
// would make the arithmetic wrap.
func (t groupTable) charTableIndexFor(codepoint uint32) (uint32, bool) {
	lo, hi := 0, t.len()
	offset := uint32(0)

	for lo < hi {
		mid := lo + (hi-lo)/2
		e := t.entry(mid)

		switch {
		case e.start <= codepoint && codepoint <= e.end:
			if e.kind != groupUsePrev {
				return 0, false
			}
			// The prototype lies immediately before the group.
			if e.start == 0 || e.start-1 < e.totalLenBefore {
				return 0, false
			}
			return e.start - 1 - e.totalLenBefore, true

		case codepoint > e.end:
			span := uint64(e.end) - uint64(e.start) + 1
			cumulative := uint64(e.totalLenBefore) + span
			if e.end < e.start || cumulative > math.MaxUint32 {
				return 0, false
			}
			offset = uint32(cumulative)
			lo = mid + 1

		default:
			hi = mid
		}
	}

	if codepoint < offset {
		return 0, false
	}
	return codepoint - offset, true
}
