package toon

import "testing"

func TestPreprocessLinesDropsBlankLines(t *testing.T) {
	lines, err := preprocessLines("a: 1\n\n\nb: 2\n")
	if err != nil {
		t.Fatalf("preprocessLines: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[0].lineNumber != 1 || lines[1].lineNumber != 4 {
		t.Fatalf("unexpected line numbers: %+v", lines)
	}
}

func TestPreprocessLinesRejectsMixedIndent(t *testing.T) {
	_, err := preprocessLines("a:\n \tb: 1")
	if err == nil {
		t.Fatalf("expected an error for mixed space/tab indent")
	}
	de, ok := err.(*DecodeErr)
	if !ok || de.Kind != KindErrLexical {
		t.Fatalf("got %v, want a lexical DecodeErr", err)
	}
}

func TestPreprocessLinesTracksIndentWidth(t *testing.T) {
	lines, err := preprocessLines("a:\n  b: 1\n    c: 2")
	if err != nil {
		t.Fatalf("preprocessLines: %v", err)
	}
	if lines[1].indent != 2 || lines[2].indent != 4 {
		t.Fatalf("unexpected indents: %+v", lines)
	}
}

func TestStripTrailingComma(t *testing.T) {
	if s, ok := stripTrailingComma("a,b,"); !ok || s != "a,b" {
		t.Fatalf("stripTrailingComma = %q, %v", s, ok)
	}
	if s, ok := stripTrailingComma("a,b"); ok || s != "a,b" {
		t.Fatalf("stripTrailingComma = %q, %v, want no trailing comma", s, ok)
	}
}
