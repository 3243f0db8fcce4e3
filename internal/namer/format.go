package namer

import (
	"fmt"
	"strings"
)

// layoutByDirective maps strftime-style directives onto Go reference-time
// layout tokens. %I maps to the unpadded hour on purpose: names read
// 8:08PM, not 08:08PM.
var layoutByDirective = map[byte]string{
	'Y': "2006",
	'y': "06",
	'm': "01",
	'd': "02",
	'b': "Jan",
	'B': "January",
	'a': "Mon",
	'A': "Monday",
	'H': "15",
	'I': "3",
	'M': "04",
	'S': "05",
	'p': "PM",
	'Z': "MST",
	'z': "-0700",
	'%': "%",
}

// translateFormat converts a strftime-style pattern into a Go time layout.
// Directives outside the supported set fail with ErrInvalidFormat so bad
// patterns are rejected before anything touches the filesystem.
func translateFormat(pattern string) (string, error) {
	var b strings.Builder
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		if c != '%' {
			b.WriteByte(c)
			continue
		}
		i++
		if i >= len(pattern) {
			return "", fmt.Errorf("%w: trailing %% in %q", ErrInvalidFormat, pattern)
		}
		layout, ok := layoutByDirective[pattern[i]]
		if !ok {
			return "", fmt.Errorf("%w: unsupported directive %%%c in %q", ErrInvalidFormat, pattern[i], pattern)
		}
		b.WriteString(layout)
	}
	return b.String(), nil
}
