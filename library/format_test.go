package library

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncateString(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"fits", "short", 10, "short"},
		{"ascii cut", "abcdefghijklmnop", 10, "abcdefg..."},
		{"tiny width", "abcdef", 2, "ab"},
		{"multi-byte cut", "Cien años de soledad, edición conmemorativa", 10, "Cien añ..."},
		{"multi-byte fits", "Ñandú", 5, "Ñandú"},
		{"tiny width multi-byte", "ééé ééé", 2, "éé"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TruncateString(tt.in, tt.max)
			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(got))
			assert.LessOrEqual(t, utf8.RuneCountInString(got), tt.max)
		})
	}
}
