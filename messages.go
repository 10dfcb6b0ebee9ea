package jsrs

// messageTerminator frames records in a network stream.
const messageTerminator = 0x00

// ParseMessages walks a buffer of NUL-delimited JSRS records, parses every
// complete record as an object and appends it to out. Bytes after the last
// NUL are returned verbatim so the caller can carry them into the next read.
// A malformed record aborts the whole call; out keeps the records parsed
// before it and error offsets refer to the original buffer.
func ParseMessages(data []byte, out *[]*Value) ([]byte, error) {
	return ParseMessagesWith(data, valueBuilder{}, out)
}

// ParseMessagesWith is ParseMessages constructing records through the given
// builder.
func ParseMessagesWith[V any](data []byte, b Builder[V], out *[]V) ([]byte, error) {
	if b == nil || out == nil {
		return nil, typeErrorf("nil builder or sink")
	}
	parsed := 0
	for i := 0; i < len(data); i++ {
		if data[i] != messageTerminator {
			continue
		}
		p := &parser[V]{data: data[parsed:i], base: parsed, b: b}
		pos := skip(p.data)
		if pos >= len(p.data) || p.data[pos] != '{' {
			return nil, p.errorf(SyntaxError, pos, "Invalid message type")
		}
		v, end, err := p.parseObject(pos)
		if err != nil {
			return nil, err
		}
		end += skip(p.data[end:])
		if end != len(p.data) {
			return nil, p.errorf(SyntaxError, end, "Invalid format")
		}
		*out = append(*out, v)
		parsed = i + 1
	}
	return data[parsed:], nil
}
