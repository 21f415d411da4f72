package toon

// EncodeString is Encode for callers who want a string instead of bytes,
// the common case for TOON-Text (SPEC_FULL.md §4 "Supplemented features").
func EncodeString(v Value, opts EncodeOptions) (string, error) {
	b, err := Encode(v, opts)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// DecodeString is Decode for callers holding a string, e.g. from a
// config file or an HTTP body already read into memory.
func DecodeString(s string, opts DecodeOptions) (Value, error) {
	return Decode([]byte(s), opts)
}

// Valid reports whether data parses as a well-formed TOON stream (either
// form) under the default (non-strict) decode options, without returning
// the decoded Value. Useful for quick validation in CLI and test code.
func Valid(data []byte) bool {
	_, err := Decode(data, DecodeOptions{})
	return err == nil
}
