package quality

import (
	"strings"
	"testing"

	"github.com/tablewise/tablewise/internal/dataset"
)

func TestSuggestAlwaysHasAllCategories(t *testing.T) {
	rep := Analyze(dataset.New([]dataset.Column{nums("clean", 1, 2, 3)}))
	sug := Suggest(rep)
	if len(sug) != len(Categories()) {
		t.Fatalf("categories = %d, want %d", len(sug), len(Categories()))
	}
	for _, cat := range Categories() {
		items, ok := sug[cat]
		if !ok {
			t.Errorf("category %s missing", cat)
		}
		if items == nil {
			t.Errorf("category %s should be an empty list, not nil", cat)
		}
	}
}

func TestSuggestMissingValueTiers(t *testing.T) {
	mk := func(missing, total int) dataset.Column {
		vals := make([]dataset.Value, total)
		for i := range vals {
			if i < missing {
				vals[i] = dataset.Null()
			} else {
				vals[i] = dataset.Text("v" + strings.Repeat("x", i))
			}
		}
		return dataset.Column{Name: "c", Values: vals}
	}

	severe := Suggest(Analyze(dataset.New([]dataset.Column{mk(80, 100)})))
	if got := severe[CategoryMissingValues]; len(got) != 1 || !strings.Contains(got[0], "dropping") {
		t.Fatalf("severe tier should suggest dropping: %v", got)
	}

	few := Suggest(Analyze(dataset.New([]dataset.Column{mk(2, 100)})))
	if got := few[CategoryMissingValues]; len(got) != 1 || !strings.Contains(got[0], "handle_missing_basic") {
		t.Fatalf("few tier should point at handle_missing_basic: %v", got)
	}
}

func TestSuggestDuplicatesAndOutliers(t *testing.T) {
	ds := dataset.New([]dataset.Column{
		nums("v", 1, 2, 3, 4, 100, 1),
		texts("k", "a", "b", "c", "d", "e", "a"),
	})
	sug := Suggest(Analyze(ds))
	if got := sug[CategoryDuplicates]; len(got) != 1 || !strings.Contains(got[0], "remove_duplicates") {
		t.Fatalf("duplicates suggestion: %v", got)
	}
	if got := sug[CategoryOutliers]; len(got) != 1 || !strings.Contains(got[0], "'v'") {
		t.Fatalf("outliers suggestion: %v", got)
	}
}

func TestSuggestTypeOptimizationIncludesSavings(t *testing.T) {
	// 3 float64 cells at 24 bytes each narrow to int8 at 1 byte per row.
	sug := Suggest(Analyze(dataset.New([]dataset.Column{nums("a", 1, 2, 3)})))
	got := sug[CategoryTypeOptimization]
	if len(got) != 1 || !strings.Contains(got[0], "int8") || !strings.Contains(got[0], "saves ~69 bytes") {
		t.Fatalf("type optimization suggestion: %v", got)
	}
}

func TestSuggestDeterministic(t *testing.T) {
	ds := dataset.New([]dataset.Column{
		nums("v", 1, 2, 100),
		texts("t", " pad", "x", "x"),
	})
	rep := Analyze(ds)
	a, b := Suggest(rep), Suggest(rep)
	for _, cat := range Categories() {
		if strings.Join(a[cat], "|") != strings.Join(b[cat], "|") {
			t.Fatalf("category %s not deterministic", cat)
		}
	}
}
