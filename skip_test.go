package jsrs

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSkip(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"empty", "", 0},
		{"none", "a  ", 0},
		{"spaces", "  a", 2},
		{"mixed ascii", "\t\r\n b", 4},
		{"NBSP", " x", 2},
		{"BOM", "\ufeffx", 3},
		{"paragraph separator", " x", 3},
		{"line comment", "// c", 4},
		{"line comment LF", "// c\nx", 5},
		{"line comment CRLF", "// c\r\nx", 6},
		{"block comment", "/* c */x", 7},
		{"block comment with stars", "/****/x", 6},
		{"unterminated block", "/* c", 0},
		{"unterminated after spaces", "  /* c", 2},
		{"lone slash", "/x", 0},
		{"comment run", "/* a */ // b\n\tx", 14},
		{"comment at end", "  //", 4},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, skip([]byte(tc.input)))
		})
	}
}

func TestSkipComment(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"short", "/", 0},
		{"not comment", "/a", 0},
		{"line to end", "//abc", 5},
		{"line to LS", "//a b", 6},
		{"block", "/*a*/b", 5},
		{"block empty", "/**/", 4},
		{"block unterminated", "/*a*", 0},
		{"block lone star", "/*", 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, skipComment([]byte(tc.input)))
		})
	}
}
