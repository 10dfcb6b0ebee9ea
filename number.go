package jsrs

import (
	"bytes"
	"math"
	"strconv"
)

// number is the result of scanning a numeric literal before it is handed to
// the builder: either a 32-bit integer or a 64-bit float.
type number struct {
	isInt bool
	i     int32
	f     float64
}

func (n number) format() string {
	if n.isInt {
		return strconv.FormatInt(int64(n.i), 10)
	}
	return formatNumber(n.f)
}

func (p *parser[V]) parseNumber(pos int) (V, int, error) {
	n, end, err := p.scanNumber(pos)
	if err != nil {
		var zero V
		return zero, 0, err
	}
	if n.isInt {
		return p.b.Int(n.i), end, nil
	}
	return p.b.Number(n.f), end, nil
}

// scanNumber scans the numeric literal at pos: an optional sign, then a
// NaN/Infinity keyword, a 0b/0o/0x prefixed integer, a noctal leading-zero
// literal, or a decimal literal.
func (p *parser[V]) scanNumber(pos int) (number, int, error) {
	i := pos
	neg := false
	if i < len(p.data) && (p.data[i] == '+' || p.data[i] == '-') {
		neg = p.data[i] == '-'
		i++
	}
	if i < len(p.data) && (p.data[i] == 'N' || p.data[i] == 'I') {
		if bytes.HasPrefix(p.data[i:], nanToken) {
			return number{f: math.NaN()}, i + len(nanToken), nil
		}
		if bytes.HasPrefix(p.data[i:], infinityToken) {
			f := math.Inf(1)
			if neg {
				f = math.Inf(-1)
			}
			return number{f: f}, i + len(infinityToken), nil
		}
		return number{}, 0, p.errorf(SyntaxError, pos, "Invalid format: expected number")
	}
	if i < len(p.data) && p.data[i] == '0' && i+1 < len(p.data) {
		switch c := p.data[i+1]; {
		case c >= '0' && c <= '9':
			return p.scanNoctal(pos, i, neg)
		case c == 'b':
			return p.scanInteger(pos, i+2, 2, neg)
		case c == 'o':
			return p.scanInteger(pos, i+2, 8, neg)
		case c == 'x':
			return p.scanInteger(pos, i+2, 16, neg)
		}
	}
	return p.scanDecimal(pos)
}

// scanNoctal handles a decimal-looking literal with a leading zero. Strict
// octal spellings are rejected; a literal containing an 8 or 9 falls back to
// decimal, the legacy ECMAScript reading.
func (p *parser[V]) scanNoctal(pos, start int, neg bool) (number, int, error) {
	i := start
	octal := true
	for i < len(p.data) && p.data[i] >= '0' && p.data[i] <= '9' {
		if p.data[i] > '7' {
			octal = false
		}
		i++
	}
	if octal {
		return number{}, 0, p.errorf(SyntaxError, pos, "Use new octal literal syntax")
	}
	var v int64
	f := 0.0
	overflow := false
	for _, c := range p.data[start:i] {
		d := int64(c - '0')
		if !overflow && v > (math.MaxInt64-d)/10 {
			overflow = true
			f = float64(v)
		}
		if overflow {
			f = f*10 + float64(d)
		} else {
			v = v*10 + d
		}
	}
	if overflow {
		if neg {
			f = -f
		}
		return number{f: f}, i, nil
	}
	return integerNumber(v, neg), i, nil
}

// scanInteger consumes digits of the given base after a 0b/0o/0x prefix,
// accumulating into an int64. Overflow promotes to the big-integer path,
// which re-accumulates the same digits into a float.
func (p *parser[V]) scanInteger(pos, start, base int, neg bool) (number, int, error) {
	i := start
	var v int64
	f := 0.0
	overflow := false
	for i < len(p.data) {
		d, ok := digitVal(p.data[i], base)
		if !ok {
			break
		}
		if !overflow && v > (math.MaxInt64-int64(d))/int64(base) {
			overflow = true
			for _, c := range p.data[start:i] {
				pd, _ := digitVal(c, base)
				f = f*float64(base) + float64(pd)
			}
		}
		if overflow {
			f = f*float64(base) + float64(d)
		} else {
			v = v*int64(base) + int64(d)
		}
		i++
	}
	if i == start {
		return number{}, 0, p.errorf(SyntaxError, pos, "Invalid format: expected number")
	}
	if overflow {
		if neg {
			f = -f
		}
		return number{f: f}, i, nil
	}
	return integerNumber(v, neg), i, nil
}

// integerNumber classifies an accumulated magnitude: values strictly inside
// the 32-bit signed range become Int, the rest become Number.
func integerNumber(v int64, neg bool) number {
	if neg {
		if v <= math.MaxInt32 {
			return number{isInt: true, i: int32(-v)}
		}
		return number{f: -float64(v)}
	}
	if v < math.MaxInt32 {
		return number{isInt: true, i: int32(v)}
	}
	return number{f: float64(v)}
}

// scanDecimal consumes the longest prefix of sign, digits, '.', 'e', 'E',
// '+' and '-' that still parses as a finite float. Spans without a '.' or
// exponent classify as integers.
func (p *parser[V]) scanDecimal(pos int) (number, int, error) {
	end := pos
	for end < len(p.data) && isNumberByte(p.data[end]) {
		end++
	}
	for l := end; l > pos; l-- {
		span := p.data[pos:l]
		f, err := strconv.ParseFloat(string(span), 64)
		if err != nil || math.IsInf(f, 0) {
			continue
		}
		if !bytes.ContainsAny(span, ".eE") {
			if v, err := strconv.ParseInt(string(span), 10, 64); err == nil && v != math.MinInt64 {
				return integerNumber(abs64(v), v < 0), l, nil
			}
		}
		return number{f: f}, l, nil
	}
	return number{}, 0, p.errorf(SyntaxError, pos, "Invalid format: expected number")
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

func isNumberByte(c byte) bool {
	return c >= '0' && c <= '9' || c == '.' || c == 'e' || c == 'E' || c == '+' || c == '-'
}

func hexDigit(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

func digitVal(c byte, base int) (byte, bool) {
	d, ok := hexDigit(c)
	if !ok || int(d) >= base {
		return 0, false
	}
	return d, true
}
