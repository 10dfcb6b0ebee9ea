package jsrs

// skip returns the number of bytes of whitespace, line terminators and
// comments at the start of b. It stops before an unterminated block comment,
// leaving the caller to fail on the '/' that opens it.
func skip(b []byte) int {
	pos := 0
	for pos < len(b) {
		if n := whitespace(b[pos:]); n > 0 {
			pos += n
			continue
		}
		if n := lineTerminator(b[pos:]); n > 0 {
			pos += n
			continue
		}
		if b[pos] == '/' {
			n := skipComment(b[pos:])
			if n == 0 {
				break
			}
			pos += n
			continue
		}
		break
	}
	return pos
}

// skipComment returns the byte length of the comment at the start of b, or 0
// when b does not start with a complete comment. A line comment includes its
// terminating line terminator and may end at the end of input; a block
// comment must be closed by */.
func skipComment(b []byte) int {
	if len(b) < 2 {
		return 0
	}
	switch b[1] {
	case '/':
		pos := 2
		for pos < len(b) {
			if n := lineTerminator(b[pos:]); n > 0 {
				return pos + n
			}
			pos++
		}
		return pos
	case '*':
		for pos := 2; pos+1 < len(b); pos++ {
			if b[pos] == '*' && b[pos+1] == '/' {
				return pos + 2
			}
		}
		return 0
	}
	return 0
}
