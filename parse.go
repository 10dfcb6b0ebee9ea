package jsrs

import (
	"bytes"
	"fmt"
)

var (
	nullToken      = []byte("null")
	undefinedToken = []byte("undefined")
	trueToken      = []byte("true")
	falseToken     = []byte("false")
	nanToken       = []byte("NaN")
	infinityToken  = []byte("Infinity")
)

// Parse deserializes a single UTF-8 encoded record into a *Value tree. The
// whole input must be consumed by the value and surrounding whitespace or
// comments. Errors are of type *Error and carry the byte offset at which
// parsing failed.
func Parse(data []byte) (*Value, error) {
	return ParseWith[*Value](data, valueBuilder{})
}

// ParseWith deserializes a single record, constructing values through the
// given builder instead of the built-in *Value representation.
func ParseWith[V any](data []byte, b Builder[V]) (V, error) {
	var zero V
	if b == nil {
		return zero, typeErrorf("nil builder")
	}
	p := &parser[V]{data: data, b: b}
	pos := skip(data)
	v, _, end, err := p.parseValue(pos)
	if err != nil {
		return zero, err
	}
	end += skip(data[end:])
	if end != len(data) {
		return zero, p.errorf(SyntaxError, end, "Invalid format")
	}
	return v, nil
}

// parser carries one parse over a single buffer. base is the offset of
// data[0] within the caller's original input, so errors from segmented
// message streams report absolute positions.
type parser[V any] struct {
	data []byte
	base int
	b    Builder[V]
}

func (p *parser[V]) errorf(kind ErrorKind, pos int, format string, args ...any) *Error {
	return &Error{Kind: kind, Offset: p.base + pos, reason: fmt.Sprintf(format, args...)}
}

// dispatch classifies the value starting at pos by its first byte. The null
// and undefined keywords are verified here so that sub-parsers can consume
// them without backtracking.
func (p *parser[V]) dispatch(pos int) (Kind, *Error) {
	if pos >= len(p.data) {
		return kindUnknown, p.errorf(InvalidType, pos, "Invalid type")
	}
	switch c := p.data[pos]; c {
	case ',', ']':
		return Undefined, nil
	case '{':
		return Object, nil
	case '[':
		return Array, nil
	case '"', '\'':
		return String, nil
	case 't', 'f':
		return Bool, nil
	case 'n':
		if bytes.HasPrefix(p.data[pos:], nullToken) {
			return Null, nil
		}
	case 'u':
		if bytes.HasPrefix(p.data[pos:], undefinedToken) {
			return Undefined, nil
		}
	case 'N', 'I', '.', '+', '-':
		return Number, nil
	default:
		if c >= '0' && c <= '9' {
			return Number, nil
		}
	}
	return kindUnknown, p.errorf(InvalidType, pos, "Invalid type")
}

// parseValue parses the value whose first significant byte is at pos,
// returning it with its syntactic kind and the position just past its span.
// An elision (a bare ',' or ']') parses as Undefined with an empty span.
func (p *parser[V]) parseValue(pos int) (v V, kind Kind, end int, err error) {
	kind, derr := p.dispatch(pos)
	if derr != nil {
		return v, kindUnknown, 0, derr
	}
	switch kind {
	case Undefined:
		v = p.b.Undefined()
		end = pos
		if p.data[pos] == 'u' {
			end = pos + len(undefinedToken)
		}
	case Null:
		v = p.b.Null()
		end = pos + len(nullToken)
	case Bool:
		v, end, err = p.parseBool(pos)
	case Number:
		v, end, err = p.parseNumber(pos)
	case String:
		var s []byte
		s, end, err = p.parseQuoted(pos)
		if err == nil {
			v = p.b.String(s)
		}
	case Array:
		v, end, err = p.parseArray(pos)
	case Object:
		v, end, err = p.parseObject(pos)
	}
	return v, kind, end, err
}

func (p *parser[V]) parseBool(pos int) (V, int, error) {
	if bytes.HasPrefix(p.data[pos:], trueToken) {
		return p.b.Bool(true), pos + len(trueToken), nil
	}
	if bytes.HasPrefix(p.data[pos:], falseToken) {
		return p.b.Bool(false), pos + len(falseToken), nil
	}
	var zero V
	return zero, 0, p.errorf(SyntaxError, pos, "Invalid format: expected boolean")
}

func (p *parser[V]) parseArray(pos int) (V, int, error) {
	var zero V
	arr := p.b.NewArray()
	i := pos + 1
	i += skip(p.data[i:])
	if i < len(p.data) && p.data[i] == ']' {
		return arr.Build(), i + 1, nil
	}
	for {
		if i >= len(p.data) {
			return zero, 0, p.errorf(SyntaxError, i, "Missing closing bracket")
		}
		v, kind, end, err := p.parseValue(i)
		if err != nil {
			return zero, 0, err
		}
		// An elision closed by ']' adds no element; an interior elision
		// adds an undefined one, so [,,1] has length three.
		if !(kind == Undefined && end == i && p.data[i] == ']') {
			arr.Push(v)
		}
		i = end + skip(p.data[end:])
		if i >= len(p.data) {
			return zero, 0, p.errorf(SyntaxError, i, "Missing closing bracket")
		}
		switch p.data[i] {
		case ',':
			i++
			i += skip(p.data[i:])
		case ']':
			return arr.Build(), i + 1, nil
		default:
			return zero, 0, p.errorf(SyntaxError, i, "Invalid format in array: missed comma")
		}
	}
}

func (p *parser[V]) parseObject(pos int) (V, int, error) {
	var zero V
	obj := p.b.NewObject()
	i := pos + 1
	for {
		i += skip(p.data[i:])
		if i >= len(p.data) {
			return zero, 0, p.errorf(SyntaxError, i, "Missing closing brace")
		}
		if p.data[i] == '}' {
			return obj.Build(), i + 1, nil
		}
		key, end, err := p.parseKey(i)
		if err != nil {
			return zero, 0, err
		}
		i = end + skip(p.data[end:])
		if i >= len(p.data) || p.data[i] != ':' {
			return zero, 0, p.errorf(SyntaxError, i, "Unexpected token")
		}
		i++
		i += skip(p.data[i:])
		v, kind, end, err := p.parseValue(i)
		if err != nil {
			return zero, 0, err
		}
		// Entries with an undefined value are not added, keeping parsed
		// objects canonical.
		if kind != Undefined {
			if serr := obj.Set(key, v); serr != nil {
				return zero, 0, p.errorf(PropertySetError, i, "Cannot add property to object: %v", serr)
			}
		}
		i = end + skip(p.data[end:])
		if i >= len(p.data) {
			return zero, 0, p.errorf(SyntaxError, i, "Missing closing brace")
		}
		switch p.data[i] {
		case ',':
			i++
		case '}':
			return obj.Build(), i + 1, nil
		default:
			return zero, 0, p.errorf(SyntaxError, i, "Invalid format in object")
		}
	}
}

// parseKey parses an object key at pos: a quoted string, a numeric literal
// normalized to its canonical textual form, or an identifier.
func (p *parser[V]) parseKey(pos int) (string, int, error) {
	switch c := p.data[pos]; {
	case c == '\'' || c == '"':
		s, end, err := p.parseQuoted(pos)
		if err != nil {
			return "", 0, err
		}
		return string(s), end, nil
	case c >= '0' && c <= '9' || c == '.' || c == '+' || c == '-':
		n, end, err := p.scanNumber(pos)
		if err != nil {
			return "", 0, err
		}
		return n.format(), end, nil
	default:
		return p.parseIdentKey(pos)
	}
}

// parseIdentKey consumes an identifier key. Code points may be written
// directly or as \uHHHH / \u{…} escapes; the decoded code point must satisfy
// ID_Start in the first position and ID_Part afterwards. Unescaped
// identifiers are copied straight from the input; a key with escapes is
// first decoded into a fresh buffer.
func (p *parser[V]) parseIdentKey(pos int) (string, int, error) {
	var buf []byte
	i := pos
	for i < len(p.data) {
		if p.data[i] == '\\' {
			if i+1 >= len(p.data) || p.data[i+1] != 'u' {
				return "", 0, p.errorf(UnicodeEscapeError, i, "Invalid Unicode escape sequence")
			}
			cp, n, err := p.unicodeEscape(i + 1)
			if err != nil {
				return "", 0, err
			}
			if i == pos && !isIDStart(cp) || i != pos && !isIDPart(cp) {
				return "", 0, p.errorf(SyntaxError, i, "Unexpected identifier")
			}
			if buf == nil {
				buf = append(buf, p.data[pos:i]...)
			}
			buf = appendCodePoint(buf, cp)
			i += 1 + n
			continue
		}
		cp, n := decodeCodePoint(p.data[i:])
		if i == pos {
			if !isIDStart(cp) {
				return "", 0, p.errorf(SyntaxError, i, "Unexpected identifier")
			}
		} else if !isIDPart(cp) {
			break
		}
		if buf != nil {
			buf = append(buf, p.data[i:i+n]...)
		}
		i += n
	}
	if i == pos {
		return "", 0, p.errorf(SyntaxError, pos, "Unexpected identifier")
	}
	if buf != nil {
		return string(buf), i, nil
	}
	return string(p.data[pos:i]), i, nil
}
