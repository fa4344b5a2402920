package dataset

import "testing"

func TestParseValueKinds(t *testing.T) {
	cases := []struct {
		raw  string
		kind Kind
	}{
		{"42", KindNumber},
		{"-3.5", KindNumber},
		{"1,234.5", KindNumber},
		{"85%", KindNumber},
		{"true", KindBool},
		{"FALSE", KindBool},
		{"hello", KindText},
		{"2024-01-01", KindText},
		{"", KindNull},
		{"NaN", KindNull},
		{"none", KindNull},
		{"NULL", KindNull},
		{"n/a", KindNull},
		{"  ", KindNull},
	}
	for _, c := range cases {
		if got := ParseValue(c.raw).Kind(); got != c.kind {
			t.Errorf("ParseValue(%q) kind = %v, want %v", c.raw, got, c.kind)
		}
	}
}

func TestParseValueNumbers(t *testing.T) {
	cases := map[string]float64{
		"42":      42,
		"1,234.5": 1234.5,
		"85%":     85,
		"-0.5":    -0.5,
		"1e3":     1000,
	}
	for raw, want := range cases {
		v := ParseValue(raw)
		got, ok := v.Float()
		if !ok || got != want {
			t.Errorf("ParseValue(%q) = %v (numeric=%v), want %v", raw, got, ok, want)
		}
	}
}

func TestParseValueKeepsTextVerbatim(t *testing.T) {
	v := ParseValue("  New York  ")
	s, ok := v.Text()
	if !ok || s != "  New York  " {
		t.Fatalf("text should be kept verbatim, got %q", s)
	}
}

func TestValueString(t *testing.T) {
	cases := []struct {
		v    Value
		want string
	}{
		{Number(42), "42"},
		{Number(3.14), "3.14"},
		{Bool(true), "true"},
		{Text("x"), "x"},
	}
	for _, c := range cases {
		if got := c.v.String(); got != c.want {
			t.Errorf("String() = %q, want %q", got, c.want)
		}
	}
}
