package toon

import "testing"

func TestIsBareString(t *testing.T) {
	tests := []struct {
		s    string
		want bool
	}{
		{"Alice", true},
		{"snake_case", true},
		{"kebab-case", true},
		{"a.b.c", true},
		{"user@example.com", true},
		{"path/to/thing", true},
		{"c++", true},
		{"日本語", true},
		{"", false},
		{"null", false},
		{"true", false},
		{"false", false},
		{"42", false},
		{"-3.14", false},
		{"has space", false},
		{"has,comma", false},
		{"has:colon", false},
		{"has[bracket", false},
		{"has{brace", false},
		{"#leading-hash", false},
		{"1leading-digit", false},
	}
	for _, tt := range tests {
		t.Run(tt.s, func(t *testing.T) {
			if got := isBareString(tt.s); got != tt.want {
				t.Fatalf("isBareString(%q) = %v, want %v", tt.s, got, tt.want)
			}
		})
	}
}

func TestEncodeStringTextQuotesTabularLookingHeader(t *testing.T) {
	got, err := encodeStringText("#not-a-header")
	if err != nil {
		t.Fatalf("encodeStringText: %v", err)
	}
	if got != `"#not-a-header"` {
		t.Fatalf("encodeStringText = %q, want quoted", got)
	}
}
