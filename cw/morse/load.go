package morse

import (
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// ErrInvalidEntry is returned for malformed dictionary file entries.
var ErrInvalidEntry = errors.New("morse: invalid dictionary entry")

// DictionaryFile is the YAML form of a dictionary:
//
//	include_standard: true
//	entries:
//	  - symbol: "="
//	    pattern: "-...-"
//	  - symbol: "+"
//	    code: 0xbae8
//
// An entry gives either a pattern or a raw code. With include_standard the
// entries extend the standard set; an entry for a standard symbol replaces it
// in place.
type DictionaryFile struct {
	IncludeStandard bool        `yaml:"include_standard"`
	Entries         []FileEntry `yaml:"entries"`
}

// FileEntry is one entry of a DictionaryFile.
type FileEntry struct {
	Symbol  string `yaml:"symbol"`
	Pattern string `yaml:"pattern,omitempty"`
	Code    uint64 `yaml:"code,omitempty"`
}

// Build converts the file form into a Dictionary.
func (f DictionaryFile) Build() (*Dictionary, error) {
	var entries []Entry
	pos := map[rune]int{}
	if f.IncludeStandard {
		entries = Standard().Entries()
		for i, e := range entries {
			pos[e.Symbol] = i
		}
	}
	for i, fe := range f.Entries {
		e, err := fe.entry()
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		if j, ok := pos[e.Symbol]; ok {
			tracer().Debugf("dictionary entry %q overrides %s", e.Symbol, entries[j].Code)
			entries[j] = e
			continue
		}
		pos[e.Symbol] = len(entries)
		entries = append(entries, e)
	}
	return NewDictionary(entries)
}

func (fe FileEntry) entry() (Entry, error) {
	sym, size := utf8.DecodeRuneInString(fe.Symbol)
	if size == 0 || size != len(fe.Symbol) || sym == utf8.RuneError {
		return Entry{}, fmt.Errorf("%w: symbol %q must be a single character", ErrInvalidEntry, fe.Symbol)
	}
	switch {
	case fe.Pattern != "" && fe.Code != 0:
		return Entry{}, fmt.Errorf("%w: %q sets both pattern and code", ErrInvalidEntry, fe.Symbol)
	case fe.Pattern != "":
		code, err := Encode(fe.Pattern)
		if err != nil {
			return Entry{}, err
		}
		return Entry{Code: code, Symbol: sym}, nil
	case fe.Code != 0:
		return Entry{Code: CodeWord(fe.Code), Symbol: sym}, nil
	default:
		return Entry{}, fmt.Errorf("%w: %q has neither pattern nor code", ErrInvalidEntry, fe.Symbol)
	}
}

// LoadDictionary decodes a YAML DictionaryFile from r.
func LoadDictionary(r io.Reader) (*Dictionary, error) {
	var f DictionaryFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("morse: decode dictionary: %w", err)
	}
	d, err := f.Build()
	if err != nil {
		return nil, err
	}
	tracer().Debugf("loaded dictionary with %d entries", d.Len())
	return d, nil
}

// LoadDictionaryFile reads a YAML dictionary from path.
func LoadDictionaryFile(path string) (*Dictionary, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("morse: open dictionary: %w", err)
	}
	defer fh.Close()
	return LoadDictionary(fh)
}
