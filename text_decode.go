package toon

import (
	"strings"
	"unicode/utf8"
)

// textParser walks preprocessed lines with a recursive-descent structure
// over the brace/bracket/tabular grammar, tracking peek/advance position
// and line/column error context.
type textParser struct {
	lines []lineInfo
	pos   int

	// lastClosingHadComma records whether the most recently consumed
	// aggregate-closing line ("}" or "]") carried a trailing comma, so
	// the enclosing array body can use it as that element's separator.
	lastClosingHadComma bool
}

func (p *textParser) peekLine() (lineInfo, bool) {
	if p.pos >= len(p.lines) {
		return lineInfo{}, false
	}
	return p.lines[p.pos], true
}

func (p *textParser) consumeLine() lineInfo {
	ln := p.lines[p.pos]
	p.pos++
	return ln
}

// decodeText parses a complete TOON-Text document.
func decodeText(input []byte) (Value, error) {
	if !utf8.Valid(input) {
		return Value{}, &DecodeErr{Kind: KindErrDomain, Message: errNonUTF8String().Message}
	}
	lines, err := preprocessLines(string(input))
	if err != nil {
		return Value{}, err
	}
	if len(lines) == 0 {
		return Value{}, errEmptyInput()
	}

	p := &textParser{lines: lines}
	root, err := p.parseRoot()
	if err != nil {
		return Value{}, err
	}
	if p.pos != len(p.lines) {
		ln := p.lines[p.pos]
		return Value{}, errTrailingGarbage(ln.lineNumber, ln.indent+1)
	}
	return root, nil
}

func (p *textParser) parseRoot() (Value, error) {
	ln, ok := p.peekLine()
	if !ok {
		return Value{}, errEmptyInput()
	}
	if ln.indent != 0 {
		return Value{}, errInconsistentIndent(ln.lineNumber, ln.original)
	}
	p.consumeLine()
	token, _ := stripTrailingComma(strings.TrimSpace(ln.content))
	return p.parseTokenValue(ln, token)
}

// parseTokenValue interprets one already-extracted value token: a scalar
// literal, a quoted string, an empty aggregate, or an aggregate opener
// ("{" / "[") whose body spans the lines following ln.
func (p *textParser) parseTokenValue(ln lineInfo, token string) (Value, error) {
	switch token {
	case nullLiteral:
		return Null, nil
	case trueLiteral:
		return NewBool(true), nil
	case falseLiteral:
		return NewBool(false), nil
	case openBrace + closeBrace:
		return NewObject(nil), nil
	case openBracket + closeBracket:
		return NewArray(nil), nil
	case openBrace:
		return p.parseObjectBody(ln)
	case openBracket:
		return p.parseArrayBody(ln)
	}

	if len(token) > 0 && token[0] == '"' {
		lit, consumed, err := scanQuotedLiteral(token)
		if err != nil {
			return Value{}, errUnterminatedString(ln.lineNumber, len(ln.original))
		}
		if consumed != len(token) {
			return Value{}, errTrailingGarbage(ln.lineNumber, consumed+1)
		}
		unescaped, uerr := jsonUnquote(lit)
		if uerr != nil {
			return Value{}, errBadEscape(ln.lineNumber, 1, 0)
		}
		return NewString(unescaped), nil
	}

	if looksLikeJSONNumber(token) {
		n, err := parseJSONNumber(token)
		if err != nil {
			return Value{}, errBadNumber(ln.lineNumber, 1, token)
		}
		return NewNumber(n), nil
	}

	return NewString(token), nil
}

// parseObjectBody parses the entries of an object whose "{" appeared on
// openLine, up to and including the matching "}" at openLine's indent.
func (p *textParser) parseObjectBody(openLine lineInfo) (Value, error) {
	openIndent := openLine.indent
	fields := make(map[string]Value)
	childIndent := -1

	for {
		ln, ok := p.peekLine()
		if !ok {
			return Value{}, errExpectedToken(openLine.lineNumber, 1, "'}' to close object")
		}
		trimmed := strings.TrimSpace(ln.content)
		bare, hadComma := stripTrailingComma(trimmed)
		if ln.indent == openIndent && bare == closeBrace {
			p.consumeLine()
			p.lastClosingHadComma = hadComma
			return NewObject(fields), nil
		}
		if ln.indent <= openIndent {
			return Value{}, errExpectedToken(ln.lineNumber, 1, "'}' to close object")
		}
		if childIndent == -1 {
			childIndent = ln.indent
		} else if ln.indent != childIndent {
			return Value{}, errInconsistentIndent(ln.lineNumber, ln.original)
		}

		p.consumeLine()
		key, valueToken, err := splitKeyValue(ln)
		if err != nil {
			return Value{}, err
		}
		if _, dup := fields[key]; dup {
			return Value{}, errDuplicateKey(ln.lineNumber, key)
		}
		fv, err := p.parseTokenValue(ln, valueToken)
		if err != nil {
			return Value{}, err
		}
		fields[key] = fv
	}
}

// parseArrayBody parses the elements of an array whose "[" appeared on
// openLine, up to and including the matching "]" at openLine's indent.
// If the first body line is a "#" header, it delegates to the tabular
// layout instead.
func (p *textParser) parseArrayBody(openLine lineInfo) (Value, error) {
	openIndent := openLine.indent

	if first, ok := p.peekLine(); ok && first.indent > openIndent {
		if strings.HasPrefix(strings.TrimSpace(first.content), hash) {
			header := p.consumeLine()
			arr, err := parseTabularArray(p, header, header.indent)
			if err != nil {
				return Value{}, err
			}
			closeLn, ok := p.peekLine()
			if !ok || closeLn.indent != openIndent {
				return Value{}, errExpectedToken(openLine.lineNumber, 1, "']' to close array")
			}
			trimmed := strings.TrimSpace(closeLn.content)
			bare, hadComma := stripTrailingComma(trimmed)
			if bare != closeBracket {
				return Value{}, errExpectedToken(closeLn.lineNumber, 1, "']' to close array")
			}
			p.consumeLine()
			p.lastClosingHadComma = hadComma
			return arr, nil
		}
	}

	var elems []Value
	childIndent := -1

	for {
		ln, ok := p.peekLine()
		if !ok {
			return Value{}, errExpectedToken(openLine.lineNumber, 1, "']' to close array")
		}
		trimmed := strings.TrimSpace(ln.content)
		bare, hadComma := stripTrailingComma(trimmed)
		if ln.indent == openIndent && bare == closeBracket {
			p.consumeLine()
			p.lastClosingHadComma = hadComma
			return NewArray(elems), nil
		}
		if ln.indent <= openIndent {
			return Value{}, errExpectedToken(ln.lineNumber, 1, "']' to close array")
		}
		if childIndent == -1 {
			childIndent = ln.indent
		} else if ln.indent != childIndent {
			return Value{}, errInconsistentIndent(ln.lineNumber, ln.original)
		}

		p.consumeLine()
		token, scalarHadComma := stripTrailingComma(trimmed)
		v, err := p.parseTokenValue(ln, token)
		if err != nil {
			return Value{}, err
		}
		hadCommaFinal := scalarHadComma
		if v.Kind() == KindObject || v.Kind() == KindArray {
			hadCommaFinal = p.lastClosingHadComma
		}
		elems = append(elems, v)

		next, hasNext := p.peekLine()
		isLast := !hasNext
		if hasNext {
			nextBare, _ := stripTrailingComma(strings.TrimSpace(next.content))
			isLast = next.indent == openIndent && nextBare == closeBracket
		}
		if !isLast && !hadCommaFinal {
			return Value{}, errExpectedToken(ln.lineNumber, len(ln.original), "',' between array elements")
		}
		_ = hadComma
	}
}

// splitKeyValue splits one object-entry line into its key and the raw
// value token following "<key>: ".
func splitKeyValue(ln lineInfo) (string, string, error) {
	content := ln.content
	i := 0
	var key string

	if i < len(content) && content[i] == '"' {
		lit, consumed, err := scanQuotedLiteral(content[i:])
		if err != nil {
			return "", "", errUnterminatedString(ln.lineNumber, i+1)
		}
		unescaped, uerr := jsonUnquote(lit)
		if uerr != nil {
			return "", "", errBadEscape(ln.lineNumber, i+1, 0)
		}
		key = unescaped
		i += consumed
	} else {
		start := i
		for i < len(content) && content[i] != ':' {
			i++
		}
		if i == start {
			return "", "", errExpectedToken(ln.lineNumber, i+1, "an object key")
		}
		key = content[start:i]
	}

	if i >= len(content) || content[i] != ':' {
		return "", "", errExpectedToken(ln.lineNumber, i+1, "':' after object key")
	}
	i++
	if i >= len(content) || content[i] != ' ' {
		return "", "", errExpectedToken(ln.lineNumber, i+1, "a single space after ':'")
	}
	i++

	value := content[i:]
	if value == "" {
		return "", "", errExpectedToken(ln.lineNumber, i+1, "a value after ':'")
	}
	return key, value, nil
}

// scanQuotedLiteral scans a JSON string literal starting at s[0] == '"',
// returning its raw (still-escaped) content and the number of bytes of s
// it consumed, including both quotes.
func scanQuotedLiteral(s string) (string, int, error) {
	i := 1
	for i < len(s) {
		switch s[i] {
		case '\\':
			if i+1 >= len(s) {
				return "", 0, errUnterminatedString(0, 0)
			}
			i += 2
		case '"':
			return s[1:i], i + 1, nil
		default:
			i++
		}
	}
	return "", 0, errUnterminatedString(0, 0)
}

// splitDelimited splits a tabular header or row's content into its
// comma-separated cells, keeping quoted strings intact.
func splitDelimited(ln lineInfo, content string) ([]string, error) {
	var cells []string
	i, n := 0, len(content)

	for i < n {
		for i < n && content[i] == ' ' {
			i++
		}
		if i >= n {
			break
		}
		start := i
		if content[i] == '"' {
			_, consumed, err := scanQuotedLiteral(content[i:])
			if err != nil {
				return nil, errUnterminatedString(ln.lineNumber, i+1)
			}
			i += consumed
		} else {
			for i < n && content[i] != ',' {
				i++
			}
		}
		cells = append(cells, strings.TrimSpace(content[start:i]))
		if i < n && content[i] == ',' {
			i++
		} else if i < n {
			return nil, errExpectedToken(ln.lineNumber, i+1, "',' between cells")
		}
	}
	return cells, nil
}

// decodeCellText parses one tabular cell's scalar token — cells never
// hold aggregates.
func decodeCellText(lineNumber int, token string) (Value, error) {
	token = strings.TrimSpace(token)
	switch token {
	case nullLiteral:
		return Null, nil
	case trueLiteral:
		return NewBool(true), nil
	case falseLiteral:
		return NewBool(false), nil
	}
	if len(token) > 0 && token[0] == '"' {
		lit, consumed, err := scanQuotedLiteral(token)
		if err != nil || consumed != len(token) {
			return Value{}, errUnterminatedString(lineNumber, 1)
		}
		unescaped, uerr := jsonUnquote(lit)
		if uerr != nil {
			return Value{}, errBadEscape(lineNumber, 1, 0)
		}
		return NewString(unescaped), nil
	}
	if looksLikeJSONNumber(token) {
		n, err := parseJSONNumber(token)
		if err != nil {
			return Value{}, errBadNumber(lineNumber, 1, token)
		}
		return NewNumber(n), nil
	}
	return NewString(token), nil
}
