package toon

import (
	"bytes"
	"encoding/binary"
	"unicode/utf8"
)

// encodeCompact renders v as a TOON-Compact stream: a five-byte magic
// prefix followed by one tagged value.
func encodeCompact(v Value) ([]byte, error) {
	buf := new(bytes.Buffer)
	buf.Write(compactMagic[:])
	if err := writeCompactValue(buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeCompactValue(buf *bytes.Buffer, v Value) error {
	switch v.Kind() {
	case KindNull:
		buf.WriteByte(tagNull)
		return nil
	case KindBool:
		if v.Bool() {
			buf.WriteByte(tagTrue)
		} else {
			buf.WriteByte(tagFalse)
		}
		return nil
	case KindNumber:
		return writeCompactNumber(buf, v.Num())
	case KindString:
		return writeCompactString(buf, v.Str())
	case KindArray:
		return writeCompactArray(buf, v)
	case KindObject:
		return writeCompactObject(buf, v)
	default:
		return &EncodeErr{Kind: KindErrDomain, Message: "not a representable value"}
	}
}

// writeCompactNumber uses the Int64 tag whenever n.IsInteger() (a whole
// number of magnitude at most 2^53) and the 8-byte Float64 tag otherwise.
func writeCompactNumber(buf *bytes.Buffer, n Number) error {
	if n.IsInteger() {
		buf.WriteByte(tagInt64)
		return binary.Write(buf, binary.LittleEndian, n.Int64())
	}
	buf.WriteByte(tagFloat)
	return binary.Write(buf, binary.LittleEndian, n.Float64())
}

func writeCompactString(buf *bytes.Buffer, s string) error {
	if !utf8.ValidString(s) {
		return errNonUTF8String()
	}
	buf.WriteByte(tagString)
	if err := binary.Write(buf, binary.LittleEndian, uint32(len(s))); err != nil {
		return err
	}
	buf.WriteString(s)
	return nil
}

func writeCompactArray(buf *bytes.Buffer, v Value) error {
	elems := v.Elems()
	buf.WriteByte(tagArray)
	if err := binary.Write(buf, binary.LittleEndian, uint32(len(elems))); err != nil {
		return err
	}
	for _, e := range elems {
		if err := writeCompactValue(buf, e); err != nil {
			return err
		}
	}
	return nil
}

// writeCompactObject always emits pairs sorted ascending by UTF-8 byte
// order, the same order the text codec uses.
func writeCompactObject(buf *bytes.Buffer, v Value) error {
	keys := v.SortedKeys()
	fields := v.Fields()
	buf.WriteByte(tagObject)
	if err := binary.Write(buf, binary.LittleEndian, uint32(len(keys))); err != nil {
		return err
	}
	for _, k := range keys {
		if err := writeCompactString(buf, k); err != nil {
			return err
		}
		if err := writeCompactValue(buf, fields[k]); err != nil {
			return err
		}
	}
	return nil
}
