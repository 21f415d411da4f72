// Package toonjson bridges encoding/json's generic decoded tree to and
// from toon.Value, so the CLI and tests can round-trip ordinary JSON
// documents through the TOON codec.
package toonjson

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/tooncodec/toon"
)

// ToValue decodes a JSON document into a toon.Value. It uses
// json.Decoder.UseNumber so the decoded text is available verbatim at
// Number construction time, rather than going through encoding/json's
// default float64 unmarshaling before a Number ever sees it.
func ToValue(data []byte) (toon.Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw interface{}
	if err := dec.Decode(&raw); err != nil {
		return toon.Value{}, fmt.Errorf("toonjson: %w", err)
	}
	if dec.More() {
		return toon.Value{}, fmt.Errorf("toonjson: trailing data after JSON value")
	}
	return fromInterface(raw)
}

func fromInterface(raw interface{}) (toon.Value, error) {
	switch x := raw.(type) {
	case nil:
		return toon.Null, nil
	case bool:
		return toon.NewBool(x), nil
	case json.Number:
		return numberFromJSON(x)
	case string:
		return toon.NewString(x), nil
	case []interface{}:
		elems := make([]toon.Value, len(x))
		for i, e := range x {
			v, err := fromInterface(e)
			if err != nil {
				return toon.Value{}, err
			}
			elems[i] = v
		}
		return toon.NewArray(elems), nil
	case map[string]interface{}:
		fields := make(map[string]toon.Value, len(x))
		for k, e := range x {
			v, err := fromInterface(e)
			if err != nil {
				return toon.Value{}, err
			}
			fields[k] = v
		}
		return toon.NewObject(fields), nil
	default:
		return toon.Value{}, fmt.Errorf("toonjson: unsupported JSON type %T", raw)
	}
}

// numberFromJSON converts a json.Number's decimal text into a Number.
// Every path ends up stored as a float64, so only magnitudes within
// float64's exact integer range (±2^53) round-trip to the same digits;
// larger int64 literals and arbitrary-precision decimals are rounded to
// the nearest representable double.
func numberFromJSON(n json.Number) (toon.Value, error) {
	if i, err := n.Int64(); err == nil {
		return toon.NewNumberFromInt(i), nil
	}
	f, _, err := big.ParseFloat(n.String(), 10, 53, big.ToNearestEven)
	if err != nil {
		return toon.Value{}, fmt.Errorf("toonjson: %q is not a valid number: %w", n.String(), err)
	}
	asFloat, _ := f.Float64()
	v, verr := toon.NewNumberFromFloat(asFloat)
	if verr != nil {
		return toon.Value{}, fmt.Errorf("toonjson: %w", verr)
	}
	return v, nil
}

// FromValue renders a toon.Value back into a JSON document.
func FromValue(v toon.Value) ([]byte, error) {
	raw, err := toInterface(v)
	if err != nil {
		return nil, err
	}
	return json.Marshal(raw)
}

func toInterface(v toon.Value) (interface{}, error) {
	switch v.Kind() {
	case toon.KindNull:
		return nil, nil
	case toon.KindBool:
		return v.Bool(), nil
	case toon.KindNumber:
		return v.Num().Float64(), nil
	case toon.KindString:
		return v.Str(), nil
	case toon.KindArray:
		elems := v.Elems()
		out := make([]interface{}, len(elems))
		for i, e := range elems {
			converted, err := toInterface(e)
			if err != nil {
				return nil, err
			}
			out[i] = converted
		}
		return out, nil
	case toon.KindObject:
		fields := v.Fields()
		out := make(map[string]interface{}, len(fields))
		for k, e := range fields {
			converted, err := toInterface(e)
			if err != nil {
				return nil, err
			}
			out[k] = converted
		}
		return out, nil
	default:
		return nil, fmt.Errorf("toonjson: unrepresentable value kind %v", v.Kind())
	}
}
