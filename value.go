// Package toon implements TOON, a lossless alternative encoding for the
// JSON data model. It defines a human-readable indentation-based text form
// (TOON-Text) and a self-delimiting binary form (TOON-Compact), together
// with a tabular sub-layout that compresses homogeneous arrays of record
// objects.
//
// A conforming Value round-trips through either form: decode(encode(v))
// reproduces v under JSON equivalence (numbers equal under double value
// equality, strings under byte equality, object key membership and mapping
// identical — key order is never preserved, see the Object docs below).
//
// Basic usage:
//
//	v := toon.NewObject(map[string]toon.Value{
//		"name": toon.NewString("Alice"),
//		"age":  toon.NewNumberFromInt(30),
//	})
//	out, err := toon.Encode(v, toon.EncodeOptions{})
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(string(out))
package toon

import "fmt"

// Kind identifies which variant a Value holds.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is the neutral in-memory representation of a JSON value: a tagged
// variant over Null, Bool, Number, String, Array, and Object. It has no
// persistent identity beyond a single encode or decode call.
type Value struct {
	kind Kind
	b    bool
	num  Number
	str  string
	arr  []Value
	obj  map[string]Value
}

// Null is the singleton null value.
var Null = Value{kind: KindNull}

// NewBool wraps a bool.
func NewBool(b bool) Value { return Value{kind: KindBool, b: b} }

// NewNumber wraps a canonical Number (see number.go).
func NewNumber(n Number) Value { return Value{kind: KindNumber, num: n} }

// NewNumberFromInt wraps an int64 as a Number.
func NewNumberFromInt(i int64) Value { return Value{kind: KindNumber, num: NumberFromInt64(i)} }

// NewNumberFromFloat wraps a float64 as a Number. Returns an error if f is
// NaN or infinite.
func NewNumberFromFloat(f float64) (Value, error) {
	n, err := NumberFromFloat64(f)
	if err != nil {
		return Value{}, err
	}
	return Value{kind: KindNumber, num: n}, nil
}

// NewString wraps a string. Must be valid UTF-8 with no surrogate halves;
// callers that build Values directly are responsible for this invariant
// (the JSON and TOON decoders enforce it on input).
func NewString(s string) Value { return Value{kind: KindString, str: s} }

// NewArray wraps an ordered slice of Values. The slice is taken by
// reference; callers should not mutate it after passing it in.
func NewArray(elems []Value) Value {
	if elems == nil {
		elems = []Value{}
	}
	return Value{kind: KindArray, arr: elems}
}

// NewObject wraps a key/value mapping. Encode always emits keys sorted
// ascending by UTF-8 byte order; the map argument's Go iteration order is
// irrelevant and never observed.
func NewObject(fields map[string]Value) Value {
	if fields == nil {
		fields = map[string]Value{}
	}
	return Value{kind: KindObject, obj: fields}
}

// Kind reports which variant v holds.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is the null variant.
func (v Value) IsNull() bool { return v.kind == KindNull }

// IsScalar reports whether v is Null, Bool, Number, or String — the four
// variants eligible as tabular cell values.
func (v Value) IsScalar() bool {
	switch v.kind {
	case KindNull, KindBool, KindNumber, KindString:
		return true
	default:
		return false
	}
}

// Bool returns the boolean payload. Only meaningful when Kind() == KindBool.
func (v Value) Bool() bool { return v.b }

// Num returns the Number payload. Only meaningful when Kind() == KindNumber.
func (v Value) Num() Number { return v.num }

// Str returns the string payload. Only meaningful when Kind() == KindString.
func (v Value) Str() string { return v.str }

// Elems returns the array payload. Only meaningful when Kind() == KindArray.
func (v Value) Elems() []Value { return v.arr }

// Fields returns the object payload. Only meaningful when Kind() ==
// KindObject. The returned map must not be mutated by callers.
func (v Value) Fields() map[string]Value { return v.obj }

// SortedKeys returns the object's keys sorted ascending by UTF-8 byte
// order, the order encode always emits them in.
func (v Value) SortedKeys() []string {
	keys := make([]string, 0, len(v.obj))
	for k := range v.obj {
		keys = append(keys, k)
	}
	sortByteOrder(keys)
	return keys
}

// Equal reports whether v and other are equal under JSON equivalence:
// Null/Bool/String/Array compared element-wise, Number compared under
// double-precision value equality, Object compared as a mapping (key
// order ignored).
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == other.b
	case KindNumber:
		return v.num.Equal(other.num)
	case KindString:
		return v.str == other.str
	case KindArray:
		if len(v.arr) != len(other.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equal(other.arr[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(v.obj) != len(other.obj) {
			return false
		}
		for k, val := range v.obj {
			ov, ok := other.obj[k]
			if !ok || !val.Equal(ov) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// GoString implements fmt.GoStringer for friendlier test failure output.
func (v Value) GoString() string {
	switch v.kind {
	case KindNull:
		return "toon.Null"
	case KindBool:
		return fmt.Sprintf("toon.NewBool(%v)", v.b)
	case KindNumber:
		return fmt.Sprintf("toon.NewNumber(%s)", v.num.canonicalText())
	case KindString:
		return fmt.Sprintf("toon.NewString(%q)", v.str)
	case KindArray:
		return fmt.Sprintf("toon.NewArray(%#v)", v.arr)
	case KindObject:
		return fmt.Sprintf("toon.NewObject(%#v)", v.obj)
	default:
		return "toon.Value{}"
	}
}
