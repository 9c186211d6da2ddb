// Package nameindex builds a searchable index from character names to
// codepoints.
//
// Names are not unique: "<control>" covers every C0 and C1 control, and a
// "First..Last" range name stands for thousands of codepoints through its
// prototype. A name therefore resolves to a list of codepoints.
package nameindex

import (
	"sort"

	"github.com/derekparker/trie"

	"github.com/npillmayer/utfdump"
)

// Index is a prefix trie over the character names of one database. It is
// built once and read-only afterwards.
type Index struct {
	names *trie.Trie
	size  int
}

// New walks every record in data and indexes it under its name. Members of
// a USE_PREV group appear once, under the prototype codepoint.
func New(data utfdump.UnicodeData) *Index {
	names := trie.New()
	size := 0
	data.Walk(func(cd utfdump.CharData) bool {
		name := cd.Name()
		if node, ok := names.Find(name); ok {
			codepoints := node.Meta().([]uint32)
			names.Add(name, append(codepoints, cd.Codepoint()))
		} else {
			names.Add(name, []uint32{cd.Codepoint()})
			size++
		}
		return true
	})
	return &Index{names: names, size: size}
}

// Len returns the number of distinct names.
func (ix *Index) Len() int {
	return ix.size
}

// Lookup returns the codepoints registered under an exact name, in
// ascending order, or nil.
func (ix *Index) Lookup(name string) []uint32 {
	node, ok := ix.names.Find(name)
	if !ok {
		return nil
	}
	return node.Meta().([]uint32)
}

// PrefixSearch returns all names starting with prefix, sorted.
func (ix *Index) PrefixSearch(prefix string) []string {
	matches := ix.names.PrefixSearch(prefix)
	sort.Strings(matches)
	return matches
}
