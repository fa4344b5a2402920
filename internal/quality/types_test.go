package quality

import (
	"testing"

	"github.com/tablewise/tablewise/internal/dataset"
)

func TestSuggestTypeNumeric(t *testing.T) {
	cases := []struct {
		name string
		col  dataset.Column
		want string
	}{
		{"small ints", nums("a", 1, 2, 100), "int8"},
		{"medium ints", nums("a", 1, 2, 1000), "int16"},
		{"large ints", nums("a", 1, 40000), "int32"},
		{"huge ints", nums("a", 1, 3e9), "int64"},
		{"narrowable floats", nums("a", 0.5, 1.5), "float32"},
		{"negative int8 bound", nums("a", -128, 127), "int8"},
	}
	for _, c := range cases {
		ct := SuggestType(&c.col)
		if ct.SuggestedType != c.want {
			t.Errorf("%s: suggested %s, want %s", c.name, ct.SuggestedType, c.want)
		}
		if ct.CurrentType != "float64" {
			t.Errorf("%s: current %s, want float64", c.name, ct.CurrentType)
		}
		if !ct.OptimizationPossible {
			t.Errorf("%s: expected optimization flag", c.name)
		}
	}
}

func TestSuggestTypeCategory(t *testing.T) {
	// 3 distinct over 9 values: ratio 0.33 under the 0.5 threshold
	c := texts("city", "oslo", "lima", "kyiv", "oslo", "lima", "kyiv", "oslo", "lima", "kyiv")
	ct := SuggestType(&c)
	if ct.SuggestedType != "category" {
		t.Fatalf("suggested %s, want category", ct.SuggestedType)
	}
}

func TestSuggestTypeHighCardinalityText(t *testing.T) {
	c := texts("id", "u-1", "u-2", "u-3", "u-4")
	ct := SuggestType(&c)
	if ct.SuggestedType != "string" || ct.OptimizationPossible {
		t.Fatalf("unique text should stay string: %+v", ct)
	}
}

func TestSuggestTypeNumericText(t *testing.T) {
	// Text column where every value parses as a number
	c := texts("year", "2001", "2002", "2003")
	ct := SuggestType(&c)
	if ct.SuggestedType != "int16" {
		t.Fatalf("numeric text suggested %s, want int16", ct.SuggestedType)
	}
}

func TestSuggestTypeBool(t *testing.T) {
	c := col("flag", dataset.Bool(true), dataset.Bool(false))
	ct := SuggestType(&c)
	if ct.SuggestedType != "bool" || ct.OptimizationPossible {
		t.Fatalf("bool column: %+v", ct)
	}
}

func TestSuggestTypeEstimatesBytes(t *testing.T) {
	c := nums("a", 1, 2, 100)
	ct := SuggestType(&c)
	if ct.EstimatedBytes != 3 {
		t.Fatalf("estimated = %d, want 3 (one byte per int8 row)", ct.EstimatedBytes)
	}
	if ct.EstimatedBytes >= ct.MemoryBytes {
		t.Fatalf("narrowing should shrink footprint: %d -> %d", ct.MemoryBytes, ct.EstimatedBytes)
	}
}

func TestEstimatedBytes(t *testing.T) {
	c := nums("a", 1, 2, 3, 4)
	if got := EstimatedBytes("int8", &c); got != 4 {
		t.Errorf("int8 bytes = %d, want 4", got)
	}
	if got := EstimatedBytes("float64", &c); got != 32 {
		t.Errorf("float64 bytes = %d, want 32", got)
	}

	tc := texts("c", "aa", "bb", "aa")
	// 3 rows * 2 + dict ("aa"+"bb" = 4)
	if got := EstimatedBytes("category", &tc); got != 10 {
		t.Errorf("category bytes = %d, want 10", got)
	}
}
