package jsrs

// parseQuoted parses the quoted string starting at pos. The quote style is
// fixed by the opening byte. While no escape has been seen the result
// aliases the input; the first escape switches to a decode buffer sized to
// the remaining span.
func (p *parser[V]) parseQuoted(pos int) ([]byte, int, error) {
	quote := p.data[pos]
	start := pos + 1
	var buf []byte
	i := start
	for i < len(p.data) {
		c := p.data[i]
		if c == quote {
			if buf == nil {
				return p.data[start:i], i + 1, nil
			}
			return buf, i + 1, nil
		}
		if c == '\\' {
			if buf == nil {
				buf = make([]byte, 0, len(p.data)-start)
				buf = append(buf, p.data[start:i]...)
			}
			n, err := p.escape(&buf, i)
			if err != nil {
				return nil, 0, err
			}
			i += n
			continue
		}
		if lineTerminator(p.data[i:]) > 0 {
			return nil, 0, p.errorf(SyntaxError, i, "Unexpected line end in string")
		}
		if buf != nil {
			buf = append(buf, c)
		}
		i++
	}
	return nil, 0, p.errorf(SyntaxError, pos, "Error while parsing string")
}

// escape decodes the escape sequence whose backslash sits at position i,
// appending the decoded bytes to buf, and returns the number of input bytes
// consumed. A backslash before a line terminator consumes the terminator
// and emits nothing. Any character without a dedicated meaning stands for
// itself.
func (p *parser[V]) escape(buf *[]byte, i int) (int, error) {
	rest := p.data[i+1:]
	if len(rest) == 0 {
		return 0, p.errorf(SyntaxError, i, "Error while parsing string")
	}
	if n := lineTerminator(rest); n > 0 {
		return 1 + n, nil
	}
	switch rest[0] {
	case 'b':
		*buf = append(*buf, '\b')
	case 'f':
		*buf = append(*buf, '\f')
	case 'n':
		*buf = append(*buf, '\n')
	case 'r':
		*buf = append(*buf, '\r')
	case 't':
		*buf = append(*buf, '\t')
	case 'v':
		*buf = append(*buf, '\v')
	case 'x':
		if len(rest) < 3 {
			return 0, p.errorf(UnicodeEscapeError, i, "Invalid hexadecimal escape sequence")
		}
		hi, ok1 := hexDigit(rest[1])
		lo, ok2 := hexDigit(rest[2])
		if !ok1 || !ok2 {
			return 0, p.errorf(UnicodeEscapeError, i, "Invalid hexadecimal escape sequence")
		}
		*buf = append(*buf, hi<<4|lo)
		return 4, nil
	case 'u':
		cp, n, err := p.unicodeEscape(i + 1)
		if err != nil {
			return 0, err
		}
		consumed := 1 + n
		if n == 5 && cp >= 0xD800 && cp < 0xDC00 {
			// A high surrogate joins an immediately following \uHHHH low
			// surrogate into one astral code point. Anything else leaves
			// it isolated, and the encoder replaces it with U+FFFD.
			j := i + consumed
			if j+1 < len(p.data) && p.data[j] == '\\' && p.data[j+1] == 'u' {
				if lo, n2, err2 := p.unicodeEscape(j + 1); err2 == nil && n2 == 5 && lo >= 0xDC00 && lo < 0xE000 {
					cp = 0x10000 + (cp-0xD800)<<10 + (lo - 0xDC00)
					consumed += 1 + n2
				}
			}
		}
		*buf = appendCodePoint(*buf, cp)
		return consumed, nil
	default:
		*buf = append(*buf, rest[0])
	}
	return 2, nil
}

// unicodeEscape decodes the sequence after a backslash given the position of
// its 'u': either exactly four hex digits, or one to six hex digits in
// braces. It returns the code point and the number of bytes consumed
// starting at the 'u'.
func (p *parser[V]) unicodeEscape(pos int) (uint32, int, error) {
	rest := p.data[pos+1:]
	if len(rest) > 0 && rest[0] == '{' {
		var cp uint32
		i := 1
		for ; i < len(rest) && rest[i] != '}'; i++ {
			d, ok := hexDigit(rest[i])
			if !ok || i > 6 {
				return 0, 0, p.errorf(UnicodeEscapeError, pos-1, "Invalid Unicode code point escape")
			}
			cp = cp<<4 | uint32(d)
		}
		if i == 1 || i >= len(rest) {
			return 0, 0, p.errorf(UnicodeEscapeError, pos-1, "Invalid Unicode code point escape")
		}
		return cp, i + 2, nil
	}
	if len(rest) < 4 {
		return 0, 0, p.errorf(UnicodeEscapeError, pos-1, "Invalid Unicode escape sequence")
	}
	var cp uint32
	for i := 0; i < 4; i++ {
		d, ok := hexDigit(rest[i])
		if !ok {
			return 0, 0, p.errorf(UnicodeEscapeError, pos-1, "Invalid Unicode escape sequence")
		}
		cp = cp<<4 | uint32(d)
	}
	return cp, 5, nil
}
