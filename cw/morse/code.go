package morse

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"
)

// CodeWidth is the number of dit slots a CodeWord can hold.
const CodeWidth = 64

// Errors returned by Encode and code word validation.
var (
	ErrEmptyPattern   = errors.New("morse: pattern is empty")
	ErrInvalidElement = errors.New("morse: pattern may only contain '.' and '-'")
	ErrCodeOverflow   = errors.New("morse: pattern does not fit into a code word")
	ErrZeroCode       = errors.New("morse: code word has no significant bits")
)

// CodeWord is a bit-packed Morse symbol. The value 0 carries no symbol.
type CodeWord uint64

// Len returns the number of dit slots, counted from the most significant
// set bit.
func (c CodeWord) Len() int {
	return bits.Len64(uint64(c))
}

// Pattern renders the keyed runs as dots and dashes. A run of one slot is a
// dot, any longer run a dash.
func (c CodeWord) Pattern() string {
	var sb strings.Builder
	run := 0
	for i := c.Len() - 1; i >= 0; i-- {
		if c&(1<<uint(i)) != 0 {
			run++
			continue
		}
		sb.WriteString(element(run))
		run = 0
	}
	sb.WriteString(element(run))
	return sb.String()
}

func element(run int) string {
	switch {
	case run == 0:
		return ""
	case run == 1:
		return "."
	default:
		return "-"
	}
}

// String formats the code word as hex followed by its pattern.
func (c CodeWord) String() string {
	return fmt.Sprintf("%#x(%s)", uint64(c), c.Pattern())
}

// Encode builds the code word for a dot/dash pattern such as ".-".
func Encode(pattern string) (CodeWord, error) {
	if pattern == "" {
		return 0, ErrEmptyPattern
	}
	var code uint64
	n := 0
	push := func(slots uint64, width int) error {
		if n+width > CodeWidth {
			return fmt.Errorf("%w: %q", ErrCodeOverflow, pattern)
		}
		code = code<<uint(width) | slots
		n += width
		return nil
	}
	for _, r := range pattern {
		var err error
		switch r {
		case '.':
			err = push(0b10, 2)
		case '-':
			err = push(0b1110, 4)
		default:
			return 0, fmt.Errorf("%w: %q", ErrInvalidElement, pattern)
		}
		if err != nil {
			return 0, err
		}
	}
	if err := push(0, 2); err != nil {
		return 0, err
	}
	return CodeWord(code), nil
}
