// Package morse holds the bit-packed representation of Morse symbols and
// the dictionaries that map them to display characters.
//
// A CodeWord is read from its most significant 1-bit downwards. Every bit
// is one dit slot: 1 keys the tone, 0 leaves it silent. A dit is written
// as 10, a dah as 1110, and a symbol ends with two more silent slots so the
// trailing gap spans the 3-dit inter-character space. The letter A (.-) is
// therefore 10111000, or 0xb8.
//
// Dictionaries are static configuration; nothing in this module mutates one
// after construction.
package morse

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'cw'
func tracer() tracing.Trace {
	return tracing.Select("cw")
}
