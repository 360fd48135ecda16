package morse

import "sync"

// standardEntries is the ITU letter, digit and punctuation set.
var standardEntries = []Entry{
	{0xb8, 'A'},
	{0xea8, 'B'},
	{0x3ae8, 'C'},
	{0x3a8, 'D'},
	{0x8, 'E'},
	{0xae8, 'F'},
	{0xee8, 'G'},
	{0x2a8, 'H'},
	{0x28, 'I'},
	{0xbbb8, 'J'},
	{0xeb8, 'K'},
	{0xba8, 'L'},
	{0x3b8, 'M'},
	{0xe8, 'N'},
	{0x3bb8, 'O'},
	{0x2ee8, 'P'},
	{0xeeb8, 'Q'},
	{0x2e8, 'R'},
	{0xa8, 'S'},
	{0x38, 'T'},
	{0x2b8, 'U'},
	{0xab8, 'V'},
	{0xbb8, 'W'},
	{0x3ab8, 'X'},
	{0xebb8, 'Y'},
	{0x3ba8, 'Z'},
	{0x3bbbb8, '0'},
	{0xbbbb8, '1'},
	{0x2bbb8, '2'},
	{0xabb8, '3'},
	{0x2ab8, '4'},
	{0xaa8, '5'},
	{0x3aa8, '6'},
	{0xeea8, '7'},
	{0x3bba8, '8'},
	{0xeeee8, '9'},
	{0x2bba8, '?'},
	{0xbaeb8, '.'},
	{0x3babb8, ','},
	{0xeae8, '/'},
	{0x3aab8, '-'},
}

var standard = sync.OnceValue(func() *Dictionary {
	d, err := NewDictionary(standardEntries)
	if err != nil {
		panic("morse: standard dictionary: " + err.Error())
	}
	return d
})

// Standard returns the built-in 41-entry dictionary (A-Z, 0-9 and ? . , / -).
func Standard() *Dictionary {
	return standard()
}
