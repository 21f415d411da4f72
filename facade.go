package toon

// Encode renders v as either TOON-Text or TOON-Compact, selected by
// opts.Compact. Encoding never fails partway through: on error the
// returned byte slice is nil.
func Encode(v Value, opts EncodeOptions) ([]byte, error) {
	var (
		out []byte
		err error
	)
	if opts.Compact {
		out, err = encodeCompact(v)
	} else {
		out, err = encodeText(v, opts)
	}
	if err != nil {
		if ee, ok := err.(*EncodeErr); ok {
			ee.Codec = codecName(opts.Compact)
			return nil, ee
		}
		return nil, err
	}
	return out, nil
}

// Decode parses a TOON stream, auto-detecting TOON-Compact by its magic
// prefix and otherwise parsing TOON-Text. Zero-byte input is always
// EmptyInput regardless of form.
func Decode(data []byte, opts DecodeOptions) (Value, error) {
	if len(data) == 0 {
		return Value{}, errEmptyInput()
	}

	compact := len(data) >= len(compactMagic)
	for i, b := range compactMagic {
		if compact && data[i] != b {
			compact = false
			break
		}
	}

	var (
		v   Value
		err error
	)
	if compact {
		v, err = decodeCompact(data)
	} else {
		v, err = decodeText(data)
	}
	if err != nil {
		if de, ok := err.(*DecodeErr); ok {
			de.Codec = codecName(compact)
			return Value{}, de
		}
		return Value{}, err
	}
	return v, nil
}

func codecName(compact bool) string {
	if compact {
		return "compact"
	}
	return "text"
}
