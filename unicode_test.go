package jsrs

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLineTerminator(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"empty", "", 0},
		{"LF", "\n", 1},
		{"CR", "\r", 1},
		{"CRLF", "\r\nx", 2},
		{"LS", " x", 3},
		{"PS", " ", 3},
		{"letter", "a", 0},
		{"space", " ", 0},
		{"NBSP", "\u00a0", 0},
		{"other E2 80", "—", 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, lineTerminator([]byte(tc.input)))
		})
	}
}

func TestWhitespace(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"empty", "", 0},
		{"space", " x", 1},
		{"tab", "\t", 1},
		{"VT", "\v", 1},
		{"FF", "\f", 1},
		{"raw NBSP byte", "\xA0", 1},
		{"NBSP", "\u00a0x", 2},
		{"ogham", "\u1680", 3},
		{"en quad", "\u2000", 3},
		{"hair space", "\u200a", 3},
		{"narrow NBSP", "\u202f", 3},
		{"math space", "\u205f", 3},
		{"ideographic", "\u3000", 3},
		{"BOM", "\ufeff", 3},
		{"LF", "\n", 0},
		{"ZWNJ", "\u200c", 0},
		{"letter", "a", 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, whitespace([]byte(tc.input)))
		})
	}
}

func TestDecodeCodePoint(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  uint32
		size  int
	}{
		{"ascii", []byte("A"), 0x41, 1},
		{"two byte", []byte("é"), 0xE9, 2},
		{"three byte", []byte("€"), 0x20AC, 3},
		{"four byte", []byte("😀"), 0x1F600, 4},
		{"trailing bytes ignored", []byte("éxyz"), 0xE9, 2},
		{"stray continuation", []byte{0x80}, replacementChar, 1},
		{"invalid lead", []byte{0xFF, 0x41}, replacementChar, 1},
		{"bad continuation", []byte{0xC3, 0x28}, replacementChar, 2},
		{"truncated", []byte{0xE2, 0x82}, replacementChar, 2},
		{"truncated after lead", []byte{0xF0}, replacementChar, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cp, size := decodeCodePoint(tc.input)
			require.Equal(t, tc.want, cp)
			require.Equal(t, tc.size, size)
		})
	}
}

func TestAppendCodePoint(t *testing.T) {
	tests := []struct {
		name string
		cp   uint32
		want string
	}{
		{"ascii", 0x41, "A"},
		{"two byte", 0xE9, "é"},
		{"three byte", 0x20AC, "€"},
		{"four byte", 0x1F600, "😀"},
		{"high surrogate", 0xD83D, "�"},
		{"low surrogate", 0xDE00, "�"},
		{"too large", 0x110000, "�"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, string(appendCodePoint(nil, tc.cp)))
		})
	}
}

func TestIsIDStart(t *testing.T) {
	for _, cp := range []rune{'a', 'z', 'A', 'Z', '_', '$', 'λ', 'п', '中', 'ᚠ'} {
		require.True(t, isIDStart(uint32(cp)), "%q", cp)
	}
	for _, cp := range []rune{'0', '9', '-', ' ', '\u200c', '́', '😀', '\u2028'} {
		require.False(t, isIDStart(uint32(cp)), "%q", cp)
	}
}

func TestIsIDPart(t *testing.T) {
	for _, cp := range []rune{'a', 'Z', '0', '9', '_', '$', 'λ', '中', '\u200c', '\u200d', '́', '०'} {
		require.True(t, isIDPart(uint32(cp)), "%q", cp)
	}
	for _, cp := range []rune{'-', '+', ' ', '\'', '😀', '\u2028'} {
		require.False(t, isIDPart(uint32(cp)), "%q", cp)
	}
}
