package toon

import "strings"

// lineInfo is one preprocessed physical line of TOON-Text input, split
// between indentation and content.
type lineInfo struct {
	original   string // full raw line, used for error context
	indent     int    // count of leading indent characters
	content    string // line with leading indent and trailing whitespace stripped
	lineNumber int     // 1-based
}

// preprocessLines splits input into lineInfo records, blank lines
// dropped entirely (the grammar has no meaning for them). It rejects any
// line whose leading whitespace mixes spaces and tabs — mixing within a
// single line's indent is never valid.
func preprocessLines(input string) ([]lineInfo, error) {
	raw := strings.Split(input, "\n")
	lines := make([]lineInfo, 0, len(raw))

	for i, text := range raw {
		if strings.TrimSpace(text) == "" {
			continue
		}

		leadLen := 0
		hasSpace, hasTab := false, false
		for leadLen < len(text) && (text[leadLen] == ' ' || text[leadLen] == '\t') {
			if text[leadLen] == ' ' {
				hasSpace = true
			} else {
				hasTab = true
			}
			leadLen++
		}
		if hasSpace && hasTab {
			return nil, errInconsistentIndent(i+1, text)
		}

		lines = append(lines, lineInfo{
			original:   text,
			indent:     leadLen,
			content:    strings.TrimRight(text[leadLen:], " \t"),
			lineNumber: i + 1,
		})
	}

	return lines, nil
}

// stripTrailingComma removes one trailing comma from s, if present,
// reporting whether it was there. Used wherever the grammar tolerates an
// optional trailing comma.
func stripTrailingComma(s string) (string, bool) {
	if strings.HasSuffix(s, comma) {
		return strings.TrimSuffix(s, comma), true
	}
	return s, false
}
