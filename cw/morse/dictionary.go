package morse

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sort"

	"github.com/derekparker/trie"
	"github.com/zeebo/xxh3"
)

// Errors returned by NewDictionary.
var (
	ErrEmptyDictionary  = errors.New("morse: dictionary is empty")
	ErrDuplicateSymbol  = errors.New("morse: duplicate symbol")
	ErrDuplicateCode    = errors.New("morse: duplicate code word")
	ErrDuplicatePattern = errors.New("morse: duplicate dot/dash pattern")
)

// Entry pairs a code word with its display symbol.
type Entry struct {
	Code   CodeWord
	Symbol rune
}

func (e Entry) String() string {
	return fmt.Sprintf("%c %s", e.Symbol, e.Code)
}

// Dictionary is an ordered, immutable set of entries. Order matters: the
// classifier resolves ties in favor of the earlier entry.
type Dictionary struct {
	entries  []Entry
	bySymbol map[rune]int
	patterns *trie.Trie
	sum      uint64
}

// NewDictionary validates entries and builds the lookup indexes. The slice
// is copied. Codes that differ only in gap lengths render to the same
// pattern and are rejected, so every entry stays reachable by Decode.
func NewDictionary(entries []Entry) (*Dictionary, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyDictionary
	}
	d := &Dictionary{
		entries:  append([]Entry(nil), entries...),
		bySymbol: make(map[rune]int, len(entries)),
		patterns: trie.New(),
	}
	byCode := make(map[CodeWord]rune, len(entries))
	byPattern := make(map[string]rune, len(entries))
	buf := make([]byte, 0, len(entries)*12)
	for i, e := range d.entries {
		if e.Code == 0 {
			return nil, fmt.Errorf("%w: symbol %q", ErrZeroCode, e.Symbol)
		}
		if _, dup := d.bySymbol[e.Symbol]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateSymbol, e.Symbol)
		}
		if other, dup := byCode[e.Code]; dup {
			return nil, fmt.Errorf("%w: %s used by %q and %q", ErrDuplicateCode, e.Code, other, e.Symbol)
		}
		pattern := e.Code.Pattern()
		if other, dup := byPattern[pattern]; dup {
			return nil, fmt.Errorf("%w: %q used by %q and %q", ErrDuplicatePattern, pattern, other, e.Symbol)
		}
		d.bySymbol[e.Symbol] = i
		byCode[e.Code] = e.Symbol
		byPattern[pattern] = e.Symbol
		d.patterns.Add(pattern, i)

		buf = binary.BigEndian.AppendUint64(buf, uint64(e.Code))
		buf = binary.BigEndian.AppendUint32(buf, uint32(e.Symbol))
	}
	d.sum = xxh3.Hash(buf)
	return d, nil
}

// Len returns the number of entries.
func (d *Dictionary) Len() int {
	return len(d.entries)
}

// Entry returns the i-th entry.
func (d *Dictionary) Entry(i int) Entry {
	return d.entries[i]
}

// Entries returns a copy of all entries in dictionary order.
func (d *Dictionary) Entries() []Entry {
	return append([]Entry(nil), d.entries...)
}

// Lookup finds the entry for a display symbol.
func (d *Dictionary) Lookup(symbol rune) (Entry, bool) {
	i, ok := d.bySymbol[symbol]
	if !ok {
		return Entry{}, false
	}
	return d.entries[i], true
}

// Decode finds the entry whose code renders as the given dot/dash pattern.
func (d *Dictionary) Decode(pattern string) (Entry, bool) {
	node, ok := d.patterns.Find(pattern)
	if !ok {
		return Entry{}, false
	}
	return d.entries[node.Meta().(int)], true
}

// Completions returns the entries whose pattern starts with prefix, in
// dictionary order. The empty prefix matches every entry.
func (d *Dictionary) Completions(prefix string) []Entry {
	keys := d.patterns.PrefixSearch(prefix)
	idx := make([]int, 0, len(keys))
	for _, k := range keys {
		if node, ok := d.patterns.Find(k); ok {
			idx = append(idx, node.Meta().(int))
		}
	}
	sort.Ints(idx)
	out := make([]Entry, len(idx))
	for i, j := range idx {
		out[i] = d.entries[j]
	}
	return out
}

// Fingerprint identifies the dictionary content and order. Two dictionaries
// with equal fingerprints yield the same classification templates.
func (d *Dictionary) Fingerprint() uint64 {
	return d.sum
}
