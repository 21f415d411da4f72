package toon

import "strings"

// tabularEligible reports whether v qualifies for the tabular layout: the
// array must be non-empty, every element an Object, every element sharing
// the same key set, and every value in every element a scalar. The rule
// against a raw comma/newline in an unquoted cell is guaranteed by
// encodeScalarText's quoting rules and is not separately checked.
func tabularEligible(v Value) (bool, string) {
	elems := v.Elems()
	if len(elems) == 0 {
		return false, "array is empty"
	}
	if elems[0].Kind() != KindObject {
		return false, "elements are not all objects"
	}
	keySet := elems[0].SortedKeys()

	for _, e := range elems {
		if e.Kind() != KindObject {
			return false, "elements are not all objects"
		}
		keys := e.SortedKeys()
		if !equalStringSlices(keys, keySet) {
			return false, "elements do not share the same key set"
		}
		for _, k := range keys {
			if !e.Fields()[k].IsScalar() {
				return false, "an element's value is a nested aggregate"
			}
		}
	}
	return true, ""
}

func equalStringSlices(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// writeTabularArray emits the `#`-header tabular layout. Callers must
// already know v is tabular-eligible.
func writeTabularArray(w *writer, depth int, prefix string, v Value, opts EncodeOptions) error {
	elems := v.Elems()
	keys := elems[0].SortedKeys()

	w.line(depth, prefix+openBracket)

	headerCells := make([]string, len(keys))
	for i, k := range keys {
		cell, err := encodeKeyText(k)
		if err != nil {
			return err
		}
		headerCells[i] = cell
	}
	w.line(depth+1, hash+space+strings.Join(headerCells, comma+space))

	for ri, elem := range elems {
		cells := make([]string, len(keys))
		for ci, k := range keys {
			cell, err := encodeScalarText(elem.Fields()[k])
			if err != nil {
				return err
			}
			cells[ci] = cell
		}
		row := strings.Join(cells, comma+space)
		if ri != len(elems)-1 {
			row += comma
		}
		w.line(depth+1, row)
	}

	w.line(depth, closeBracket)
	return nil
}

// parseTabularArray parses the rows following a `#` header line into an
// Array of Objects, zipping each row with the header's keys. The lines
// consumed lie strictly between the opening `[` and closing `]`.
func parseTabularArray(p *textParser, header lineInfo, bodyIndent int) (Value, error) {
	headerCells, err := splitDelimited(header, strings.TrimPrefix(strings.TrimSpace(header.content), hash))
	if err != nil {
		return Value{}, err
	}
	keys := make([]string, len(headerCells))
	for i, c := range headerCells {
		k, err := decodeCellText(header.lineNumber, c)
		if err != nil {
			return Value{}, err
		}
		s, ok := asKeyString(k)
		if !ok {
			return Value{}, errExpectedToken(header.lineNumber, 1, "a string key in tabular header")
		}
		keys[i] = s
	}

	var rows []Value
	for {
		ln, ok := p.peekLine()
		if !ok || ln.indent < bodyIndent {
			break
		}
		if ln.indent > bodyIndent {
			return Value{}, errInconsistentIndent(ln.lineNumber, ln.original)
		}
		if strings.TrimRight(ln.content, comma) == closeBracket {
			break
		}
		p.consumeLine()

		rowContent := strings.TrimSuffix(strings.TrimSpace(ln.content), comma)
		cells, err := splitDelimited(ln, rowContent)
		if err != nil {
			return Value{}, err
		}
		if len(cells) != len(keys) {
			return Value{}, errMixedCellType(ln.lineNumber)
		}

		fields := make(map[string]Value, len(keys))
		for i, c := range cells {
			val, err := decodeCellText(ln.lineNumber, c)
			if err != nil {
				return Value{}, err
			}
			fields[keys[i]] = val
		}
		rows = append(rows, NewObject(fields))
	}

	return NewArray(rows), nil
}

func asKeyString(v Value) (string, bool) {
	if v.Kind() != KindString {
		return "", false
	}
	return v.Str(), true
}
