package toon

// encodeText renders v as a complete TOON-Text document.
func encodeText(v Value, opts EncodeOptions) ([]byte, error) {
	w := newTextWriter(opts.indentUnit())
	if err := writeValueAfter(w, 0, "", v, opts); err != nil {
		return nil, err
	}
	return []byte(w.String()), nil
}

// writeValueAfter writes v, continuing the current line with prefix (a
// "key: " fragment, or "" at the root / inside an array) and opening any
// aggregate on that same line.
func writeValueAfter(w *writer, depth int, prefix string, v Value, opts EncodeOptions) error {
	switch v.Kind() {
	case KindObject:
		return writeObject(w, depth, prefix, v, opts)
	case KindArray:
		return writeArray(w, depth, prefix, v, opts)
	default:
		text, err := encodeScalarText(v)
		if err != nil {
			return err
		}
		w.line(depth, prefix+text)
		return nil
	}
}

func writeObject(w *writer, depth int, prefix string, v Value, opts EncodeOptions) error {
	keys := v.SortedKeys()
	if len(keys) == 0 {
		w.line(depth, prefix+openBrace+closeBrace)
		return nil
	}

	w.line(depth, prefix+openBrace)
	fields := v.Fields()
	for _, k := range keys {
		keyText, err := encodeKeyText(k)
		if err != nil {
			return err
		}
		if err := writeValueAfter(w, depth+1, keyText+colon+space, fields[k], opts); err != nil {
			return err
		}
	}
	w.line(depth, closeBrace)
	return nil
}

func writeArray(w *writer, depth int, prefix string, v Value, opts EncodeOptions) error {
	elems := v.Elems()
	if len(elems) == 0 {
		w.line(depth, prefix+openBracket+closeBracket)
		return nil
	}

	if opts.TabularArrays {
		ok, reason := tabularEligible(v)
		if ok {
			return writeTabularArray(w, depth, prefix, v, opts)
		}
		if opts.Strict {
			return errNonUniformArray(reason)
		}
	}

	w.line(depth, prefix+openBracket)
	for i, e := range elems {
		if err := writeValueAfter(w, depth+1, "", e, opts); err != nil {
			return err
		}
		if i != len(elems)-1 {
			w.appendToLast(comma)
		}
	}
	w.line(depth, closeBracket)
	return nil
}
