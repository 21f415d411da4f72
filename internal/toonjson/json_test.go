package toonjson

import "testing"

func TestToValueFromValueRoundTrip(t *testing.T) {
	input := `{"name":"Alice","age":30,"tags":["a","b"],"active":true,"note":null}`

	v, err := ToValue([]byte(input))
	if err != nil {
		t.Fatalf("ToValue: %v", err)
	}

	out, err := FromValue(v)
	if err != nil {
		t.Fatalf("FromValue: %v", err)
	}

	back, err := ToValue(out)
	if err != nil {
		t.Fatalf("ToValue(FromValue(v)): %v", err)
	}
	if !back.Equal(v) {
		t.Fatalf("round trip mismatch")
	}
}

// TestToValueLargeIntegerRoundsToNearestFloat64: a literal one past
// float64's exact integer range decodes without error, but since Number
// stores only a float64 it lands on the nearest representable double
// rather than keeping its original digits.
func TestToValueLargeIntegerRoundsToNearestFloat64(t *testing.T) {
	v, err := ToValue([]byte(`9007199254740993`))
	if err != nil {
		t.Fatalf("ToValue: %v", err)
	}
	if got, want := v.Num().Int64(), int64(9007199254740992); got != want {
		t.Fatalf("got %d, want %d (nearest representable float64)", got, want)
	}
}

func TestToValueRejectsTrailingData(t *testing.T) {
	if _, err := ToValue([]byte(`1 2`)); err == nil {
		t.Fatalf("expected trailing-data error")
	}
}
