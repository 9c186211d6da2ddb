package utfdump

import (
	"math/rand"
	"testing"
)

func serializeGroups(groups []groupEntry) groupTable {
	var bs []byte
	for _, g := range groups {
		bs = g.appendTo(bs)
	}
	return groupTable{bytes: bs}
}

func TestGroupTableSizeValidation(t *testing.T) {
	if _, err := newGroupTable(make([]byte, groupEntrySize+1)); err != ErrInvalidTableSize {
		t.Errorf("odd-sized table: err = %v, want ErrInvalidTableSize", err)
	}
	table, err := newGroupTable(make([]byte, 2*groupEntrySize))
	if err != nil {
		t.Fatalf("newGroupTable: %v", err)
	}
	if table.len() != 2 {
		t.Errorf("len() = %d, want 2", table.len())
	}
}

func TestCharTableIndexEmptyTable(t *testing.T) {
	table := groupTable{}
	for _, c := range []uint32{0, 0x61, 0x10ffff} {
		index, ok := table.charTableIndexFor(c)
		if !ok || index != c {
			t.Errorf("empty table: index(%#x) = %d, %v, want identity", c, index, ok)
		}
	}
}

func TestCharTableIndexBasics(t *testing.T) {
	table := serializeGroups([]groupEntry{
		{start: 0x02, end: 0x60, totalLenBefore: 0, kind: groupUnassigned},
		{start: 0x81, end: 0x9f, totalLenBefore: 0x5f, kind: groupUsePrev},
	})

	if index, ok := table.charTableIndexFor(0x00); !ok || index != 0 {
		t.Errorf("index(0x00) = %d, %v, want 0", index, ok)
	}
	if index, ok := table.charTableIndexFor(0x61); !ok || index != 2 {
		t.Errorf("index(0x61) = %d, %v, want 2", index, ok)
	}
	if _, ok := table.charTableIndexFor(0x10); ok {
		t.Errorf("unassigned codepoint resolved")
	}
	// Any member of the USE_PREV group resolves to the prototype at 0x80.
	want := uint32(0x80) - 0x5f
	for _, c := range []uint32{0x81, 0x90, 0x9f} {
		if index, ok := table.charTableIndexFor(c); !ok || index != want {
			t.Errorf("index(%#x) = %d, %v, want %d", c, index, ok, want)
		}
	}
	// Past the last group the cumulative offset keeps applying.
	span := uint32(0x5f + 0x1f)
	if index, ok := table.charTableIndexFor(0xa0); !ok || index != 0xa0-span {
		t.Errorf("index(0xa0) = %d, %v, want %d", index, ok, 0xa0-span)
	}
}

func TestCharTableIndexMalformedEntries(t *testing.T) {
	// A USE_PREV group claiming to start at zero has no prototype.
	table := serializeGroups([]groupEntry{
		{start: 0, end: 5, kind: groupUsePrev},
	})
	if _, ok := table.charTableIndexFor(3); ok {
		t.Errorf("USE_PREV at start 0 resolved")
	}
	// total_len_before larger than start-1 would wrap below zero.
	table = serializeGroups([]groupEntry{
		{start: 4, end: 8, totalLenBefore: 100, kind: groupUsePrev},
	})
	if _, ok := table.charTableIndexFor(5); ok {
		t.Errorf("underflowing USE_PREV resolved")
	}
	// end < start makes the span arithmetic invalid.
	table = serializeGroups([]groupEntry{
		{start: 10, end: 5, kind: groupUnassigned},
	})
	if _, ok := table.charTableIndexFor(20); ok {
		t.Errorf("inverted group range resolved")
	}
}

// TestCharTableIndexRandomized builds random layouts of singleton records,
// unassigned gaps and USE_PREV ranges, then checks the binary search against
// the mapping recorded while generating.
func TestCharTableIndexRandomized(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 50; trial++ {
		var groups []groupEntry
		expected := make(map[uint32]uint32)
		c, index, span := uint32(0), uint32(0), uint32(0)
		lastWasRecord := false

		for len(groups) < 20 {
			switch rng.Intn(3) {
			case 0: // a codepoint with its own record
				expected[c] = index
				index++
				c++
				lastWasRecord = true
			case 1: // unassigned gap
				n := uint32(rng.Intn(40) + 1)
				groups = append(groups, groupEntry{
					start: c, end: c + n - 1, totalLenBefore: span,
					kind: groupUnassigned,
				})
				span += n
				c += n
				lastWasRecord = false
			case 2: // USE_PREV range; needs a prototype record at c-1
				if !lastWasRecord {
					continue
				}
				n := uint32(rng.Intn(40) + 1)
				proto := expected[c-1]
				groups = append(groups, groupEntry{
					start: c, end: c + n - 1, totalLenBefore: span,
					kind: groupUsePrev,
				})
				for i := uint32(0); i < n; i++ {
					expected[c+i] = proto
				}
				span += n
				c += n
				lastWasRecord = false
			}
		}

		table := serializeGroups(groups)
		for probe := uint32(0); probe < c; probe++ {
			want, assigned := expected[probe]
			got, ok := table.charTableIndexFor(probe)
			if ok != assigned {
				t.Fatalf("trial %d: index(%#x) ok = %v, want %v", trial, probe, ok, assigned)
			}
			if assigned && got != want {
				t.Fatalf("trial %d: index(%#x) = %d, want %d", trial, probe, got, want)
			}
		}
		for probe := c; probe < c+10; probe++ {
			got, ok := table.charTableIndexFor(probe)
			if !ok || got != probe-span {
				t.Fatalf("trial %d: index(%#x) past layout = %d, %v, want %d",
					trial, probe, got, ok, probe-span)
			}
		}
	}
}
