package toon

import "testing"

func TestEncodeDecodeRoundTripBothForms(t *testing.T) {
	v := NewObject(map[string]Value{
		"name": NewString("Alice"),
		"tags": NewArray([]Value{NewString("a"), NewString("b")}),
	})

	for _, compact := range []bool{false, true} {
		out, err := Encode(v, EncodeOptions{Compact: compact})
		if err != nil {
			t.Fatalf("Encode(compact=%v): %v", compact, err)
		}
		back, err := Decode(out, DecodeOptions{})
		if err != nil {
			t.Fatalf("Decode(compact=%v): %v", compact, err)
		}
		if !back.Equal(v) {
			t.Fatalf("round trip mismatch (compact=%v):\nwant: %#v\ngot:  %#v", compact, v, back)
		}
	}
}

func TestDecodeEmptyInput(t *testing.T) {
	_, err := Decode(nil, DecodeOptions{})
	if err == nil {
		t.Fatalf("expected EmptyInput error")
	}
	de, ok := err.(*DecodeErr)
	if !ok {
		t.Fatalf("expected *DecodeErr, got %T", err)
	}
	if de.Kind != KindErrFraming {
		t.Fatalf("expected framing error kind, got %v", de.Kind)
	}
}

func TestEncodeStringDecodeString(t *testing.T) {
	v := NewNumberFromInt(7)
	s, err := EncodeString(v, EncodeOptions{})
	if err != nil {
		t.Fatalf("EncodeString: %v", err)
	}
	back, err := DecodeString(s, DecodeOptions{})
	if err != nil {
		t.Fatalf("DecodeString: %v", err)
	}
	if !back.Equal(v) {
		t.Fatalf("mismatch: want %#v got %#v", v, back)
	}
}

func TestValid(t *testing.T) {
	if !Valid([]byte("42")) {
		t.Fatalf("expected 42 to be valid TOON-Text")
	}
	if Valid([]byte("")) {
		t.Fatalf("expected empty input to be invalid")
	}
	if Valid([]byte("{\n  a: 1\n  a: 2\n}")) {
		t.Fatalf("expected duplicate-key input to be invalid")
	}
}
