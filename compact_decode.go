package toon

import (
	"encoding/binary"
	"math"
	"unicode/utf8"
)

// maxCompactLength bounds any single length-prefixed field TOON-Compact
// decodes, guarding against a corrupt or adversarial length field driving
// an enormous allocation before the input itself is even fully read.
const maxCompactLength = 256 * 1024 * 1024

// compactReader walks a TOON-Compact byte stream with an explicit cursor
// over an in-memory slice, since the whole stream is already available.
type compactReader struct {
	data []byte
	pos  int
}

func (r *compactReader) remaining() int { return len(r.data) - r.pos }

func (r *compactReader) readByte() (byte, error) {
	if r.remaining() < 1 {
		return 0, errTruncated("expected one more byte")
	}
	b := r.data[r.pos]
	r.pos++
	return b, nil
}

func (r *compactReader) readN(n int) ([]byte, error) {
	if n < 0 || n > maxCompactLength {
		return nil, errTruncated("declared length is out of bounds")
	}
	if r.remaining() < n {
		return nil, errTruncated("declared length exceeds remaining input")
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

func (r *compactReader) readUint32() (uint32, error) {
	b, err := r.readN(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (r *compactReader) readInt64() (int64, error) {
	b, err := r.readN(8)
	if err != nil {
		return 0, err
	}
	return int64(binary.LittleEndian.Uint64(b)), nil
}

func (r *compactReader) readFloat64() (float64, error) {
	b, err := r.readN(8)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(b)), nil
}

// checkCompactCount rejects a declared array/object element count before
// the caller sizes an allocation from it: every element consumes at least
// one more byte of input, so a count exceeding the bytes actually left
// can only come from a corrupt or adversarial stream.
func checkCompactCount(r *compactReader, n uint32) error {
	if uint64(n) > uint64(r.remaining()) {
		return errTruncated("declared count exceeds remaining input")
	}
	return nil
}

// decodeCompact parses a complete TOON-Compact stream: the five-byte
// magic prefix, one tagged value, and nothing else.
func decodeCompact(input []byte) (Value, error) {
	if len(input) < len(compactMagic) {
		return Value{}, errBadMagic()
	}
	for i, b := range compactMagic {
		if input[i] != b {
			return Value{}, errBadMagic()
		}
	}

	r := &compactReader{data: input, pos: len(compactMagic)}
	v, err := readCompactValue(r)
	if err != nil {
		return Value{}, err
	}
	if r.remaining() != 0 {
		return Value{}, errTrailingGarbage(0, r.pos+1)
	}
	return v, nil
}

func readCompactValue(r *compactReader) (Value, error) {
	tag, err := r.readByte()
	if err != nil {
		return Value{}, err
	}
	switch tag {
	case tagNull:
		return Null, nil
	case tagFalse:
		return NewBool(false), nil
	case tagTrue:
		return NewBool(true), nil
	case tagInt64:
		i, err := r.readInt64()
		if err != nil {
			return Value{}, err
		}
		return NewNumberFromInt(i), nil
	case tagFloat:
		f, err := r.readFloat64()
		if err != nil {
			return Value{}, err
		}
		n, err := NumberFromFloat64(f)
		if err != nil {
			return Value{}, errNumberDomain(f)
		}
		return NewNumber(n), nil
	case tagString:
		return readCompactString(r)
	case tagArray:
		return readCompactArray(r)
	case tagObject:
		return readCompactObject(r)
	default:
		return Value{}, errUnknownTag(tag)
	}
}

func readCompactString(r *compactReader) (Value, error) {
	n, err := r.readUint32()
	if err != nil {
		return Value{}, err
	}
	b, err := r.readN(int(n))
	if err != nil {
		return Value{}, err
	}
	if !utf8.Valid(b) {
		return Value{}, &DecodeErr{Kind: KindErrDomain, Message: errNonUTF8String().Message}
	}
	return NewString(string(b)), nil
}

func readCompactArray(r *compactReader) (Value, error) {
	n, err := r.readUint32()
	if err != nil {
		return Value{}, err
	}
	if err := checkCompactCount(r, n); err != nil {
		return Value{}, err
	}
	elems := make([]Value, 0, n)
	for i := uint32(0); i < n; i++ {
		v, err := readCompactValue(r)
		if err != nil {
			return Value{}, err
		}
		elems = append(elems, v)
	}
	return NewArray(elems), nil
}

// readCompactObject requires each key to be a tagged String and enforces
// strictly ascending key order, reporting a repeated key as DuplicateKey
// and any other out-of-order key as UnsortedKeys. (The text decoder checks
// for duplicate keys only, not for their order.)
func readCompactObject(r *compactReader) (Value, error) {
	n, err := r.readUint32()
	if err != nil {
		return Value{}, err
	}
	if err := checkCompactCount(r, n); err != nil {
		return Value{}, err
	}
	fields := make(map[string]Value, n)
	prevKey := ""
	for i := uint32(0); i < n; i++ {
		kv, err := readCompactValue(r)
		if err != nil {
			return Value{}, err
		}
		if kv.Kind() != KindString {
			return Value{}, errExpectedToken(0, 0, "a String key in compact object")
		}
		key := kv.Str()
		if i > 0 && key <= prevKey {
			if key == prevKey {
				return Value{}, errDuplicateKey(0, key)
			}
			return Value{}, errUnsortedKeys(key)
		}
		prevKey = key

		v, err := readCompactValue(r)
		if err != nil {
			return Value{}, err
		}
		fields[key] = v
	}
	return NewObject(fields), nil
}

// errNumberDomain reports a decoded Float64 payload that is NaN or
// infinite, which the wire format itself should never contain but a
// corrupt stream might.
func errNumberDomain(f float64) *DecodeErr {
	return &DecodeErr{Kind: KindErrDomain, Message: "NaNOrInfinity: decoded number is not finite"}
}
