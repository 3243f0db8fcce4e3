package namer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslateFormat(t *testing.T) {
	cases := []struct {
		pattern string
		layout  string
	}{
		{"%Y-%m-%d", "2006-01-02"},
		{"%Y%m%d", "20060102"},
		{"%I:%M%p", "3:04PM"},
		{"%I:%M:%S%p", "3:04:05PM"},
		{"%b %d, %Y", "Jan 02, 2006"},
		{"%H%M", "1504"},
		{"100%%", "100%"},
		{"", ""},
	}

	for _, tc := range cases {
		layout, err := translateFormat(tc.pattern)
		require.NoError(t, err, "pattern %q", tc.pattern)
		assert.Equal(t, tc.layout, layout, "pattern %q", tc.pattern)
	}
}

func TestTranslateFormatUnsupportedDirective(t *testing.T) {
	for _, pattern := range []string{"%Q", "%Y-%q", "%"} {
		_, err := translateFormat(pattern)
		assert.ErrorIs(t, err, ErrInvalidFormat, "pattern %q", pattern)
	}
}
