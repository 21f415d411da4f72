package toon

import "testing"

// TestEncodeTextScenarios covers spec.md §8's concrete scenarios S1, S2,
// S3, S5 — fixed expected output, not a marshal/unmarshal grid.
func TestEncodeTextScenarios(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		opts EncodeOptions
		want string
	}{
		{
			name: "S1 flat object sorted by key",
			v: NewObject(map[string]Value{
				"name":   NewString("Alice"),
				"age":    NewNumberFromInt(30),
				"active": NewBool(true),
			}),
			want: "{\n  active: true\n  age: 30\n  name: Alice\n}",
		},
		{
			name: "S2 ordinary array",
			v:    NewArray([]Value{NewNumberFromInt(1), NewNumberFromInt(2), NewNumberFromInt(3)}),
			want: "[\n  1,\n  2,\n  3\n]",
		},
		{
			name: "S3 tabular array",
			v: NewArray([]Value{
				NewObject(map[string]Value{"id": NewNumberFromInt(1), "name": NewString("Alice")}),
				NewObject(map[string]Value{"id": NewNumberFromInt(2), "name": NewString("Bob")}),
			}),
			opts: EncodeOptions{TabularArrays: true},
			want: "[\n  # id, name\n  1, Alice,\n  2, Bob\n]",
		},
		{
			name: "S5 empty aggregates",
			v: NewObject(map[string]Value{
				"empty_array":  NewArray(nil),
				"empty_object": NewObject(nil),
			}),
			want: "{\n  empty_array: []\n  empty_object: {}\n}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := encodeText(tt.v, tt.opts)
			if err != nil {
				t.Fatalf("encodeText: %v", err)
			}
			if string(got) != tt.want {
				t.Fatalf("encodeText mismatch:\nwant: %q\ngot:  %q", tt.want, string(got))
			}
		})
	}
}

// TestEncodeTextS4StrictNonUniform covers spec.md §8 scenario S4: a
// strict tabular encode of mismatched-shape objects must fail closed.
func TestEncodeTextS4StrictNonUniform(t *testing.T) {
	v := NewArray([]Value{
		NewObject(map[string]Value{"a": NewNumberFromInt(1)}),
		NewObject(map[string]Value{"b": NewNumberFromInt(2)}),
	})
	_, err := encodeText(v, EncodeOptions{TabularArrays: true, Strict: true})
	if err == nil {
		t.Fatalf("expected NonUniformArray error")
	}
	ee, ok := err.(*EncodeErr)
	if !ok {
		t.Fatalf("expected *EncodeErr, got %T", err)
	}
	if ee.Kind != KindErrStructural {
		t.Fatalf("expected structural error kind, got %v", ee.Kind)
	}
}

// TestEncodeTextS4NonStrictFallsBack: the same input without Strict
// silently falls back to the ordinary array layout instead of erroring.
func TestEncodeTextS4NonStrictFallsBack(t *testing.T) {
	v := NewArray([]Value{
		NewObject(map[string]Value{"a": NewNumberFromInt(1)}),
		NewObject(map[string]Value{"b": NewNumberFromInt(2)}),
	})
	out, err := encodeText(v, EncodeOptions{TabularArrays: true})
	if err != nil {
		t.Fatalf("encodeText: %v", err)
	}
	want := "[\n  {\n    a: 1\n  },\n  {\n    b: 2\n  }\n]"
	if string(out) != want {
		t.Fatalf("mismatch:\nwant: %q\ngot:  %q", want, string(out))
	}
}

// TestEncodeTextStrictNonUniformAppliesToScalarArrays: strict mode must
// reject an ineligible array even when its elements aren't objects at
// all, not only when they're objects with mismatched key sets.
func TestEncodeTextStrictNonUniformAppliesToScalarArrays(t *testing.T) {
	v := NewArray([]Value{NewNumberFromInt(1), NewNumberFromInt(2), NewNumberFromInt(3)})
	_, err := encodeText(v, EncodeOptions{TabularArrays: true, Strict: true})
	if err == nil {
		t.Fatalf("expected NonUniformArray error for a scalar array")
	}
	ee, ok := err.(*EncodeErr)
	if !ok || ee.Kind != KindErrStructural {
		t.Fatalf("got %v, want a structural EncodeErr", err)
	}
}

func TestEncodeTextIndentTab(t *testing.T) {
	v := NewObject(map[string]Value{"a": NewNumberFromInt(1)})
	out, err := encodeText(v, EncodeOptions{IndentTab: true})
	if err != nil {
		t.Fatalf("encodeText: %v", err)
	}
	want := "{\n\ta: 1\n}"
	if string(out) != want {
		t.Fatalf("mismatch:\nwant: %q\ngot:  %q", want, string(out))
	}
}

func TestNewNumberFromFloatRejectsNaN(t *testing.T) {
	_, err := NewNumberFromFloat(nan())
	if err == nil {
		t.Fatalf("expected NaNOrInfinity rejection")
	}
}

func nan() float64 {
	var zero float64
	return zero / zero
}
