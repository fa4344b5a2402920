package dataset

import "testing"

func testData() *Dataset {
	return New([]Column{
		{Name: "id", Values: []Value{Number(1), Number(2), Number(3)}},
		{Name: "name", Values: []Value{Text("ann"), Text("bob"), Null()}},
		{Name: "active", Values: []Value{Bool(true), Bool(false), Bool(true)}},
	})
}

func TestNewPadsRaggedColumns(t *testing.T) {
	ds := New([]Column{
		{Name: "a", Values: []Value{Number(1), Number(2)}},
		{Name: "b", Values: []Value{Text("x")}},
	})
	if ds.NumRows() != 2 {
		t.Fatalf("rows = %d, want 2", ds.NumRows())
	}
	if !ds.Columns[1].Values[1].IsNull() {
		t.Fatal("short column should be padded with nulls")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	ds := testData()
	cp := ds.Clone()
	if !ds.Equal(cp) {
		t.Fatal("clone should equal original")
	}
	cp.Columns[0].Values[0] = Number(99)
	if v, _ := ds.Columns[0].Values[0].Float(); v != 1 {
		t.Fatal("mutating clone leaked into original")
	}
}

func TestColumnLookupCaseInsensitive(t *testing.T) {
	ds := testData()
	c, ok := ds.Column("NAME")
	if !ok || c.Name != "name" {
		t.Fatalf("lookup failed: ok=%v", ok)
	}
	if _, ok := ds.Column("missing"); ok {
		t.Fatal("unexpected column hit")
	}
}

func TestDominantKind(t *testing.T) {
	cases := []struct {
		vals []Value
		want Kind
	}{
		{[]Value{Number(1), Number(2), Null()}, KindNumber},
		{[]Value{Text("a"), Number(1), Text("b")}, KindText},
		{[]Value{Bool(true), Null()}, KindBool},
		{[]Value{Null(), Null()}, KindNull},
		// Ties resolve number over text
		{[]Value{Number(1), Text("a")}, KindNumber},
	}
	for i, c := range cases {
		col := Column{Name: "c", Values: c.vals}
		if got := col.DominantKind(); got != c.want {
			t.Errorf("case %d: kind = %v, want %v", i, got, c.want)
		}
	}
}

func TestRowKeyDistinguishesKinds(t *testing.T) {
	// Number 1 and text "1" must produce different keys
	a := New([]Column{{Name: "x", Values: []Value{Number(1)}}})
	b := New([]Column{{Name: "x", Values: []Value{Text("1")}}})
	if a.RowKey(0) == b.RowKey(0) {
		t.Fatal("keys for different kinds should differ")
	}
}

func TestDistinctRowCount(t *testing.T) {
	ds := New([]Column{
		{Name: "a", Values: []Value{Number(1), Number(1), Number(2)}},
		{Name: "b", Values: []Value{Text("x"), Text("x"), Text("y")}},
	})
	if got := ds.DistinctRowCount(); got != 2 {
		t.Fatalf("distinct rows = %d, want 2", got)
	}
}

func TestSelectRows(t *testing.T) {
	ds := testData()
	out := ds.SelectRows([]int{0, 2})
	if out.NumRows() != 2 {
		t.Fatalf("rows = %d, want 2", out.NumRows())
	}
	if v, _ := out.Columns[0].Values[1].Float(); v != 3 {
		t.Fatalf("row selection out of order: %v", v)
	}
	// Original untouched
	if ds.NumRows() != 3 {
		t.Fatal("SelectRows mutated input")
	}
}

func TestMemoryEstimateGrowsWithData(t *testing.T) {
	small := New([]Column{{Name: "a", Values: []Value{Text("x")}}})
	big := New([]Column{{Name: "a", Values: []Value{Text("a much longer string value"), Text("and another one")}}})
	if small.MemoryEstimate() >= big.MemoryEstimate() {
		t.Fatalf("memory estimate not monotonic: %d vs %d", small.MemoryEstimate(), big.MemoryEstimate())
	}
}

func TestColumnStats(t *testing.T) {
	c := Column{Name: "n", Values: []Value{Number(3), Null(), Number(1), Text("x")}}
	if got := c.NonNull(); got != 3 {
		t.Errorf("NonNull = %d, want 3", got)
	}
	if got := c.Missing(); got != 1 {
		t.Errorf("Missing = %d, want 1", got)
	}
	fs := c.SortedFloats()
	if len(fs) != 2 || fs[0] != 1 || fs[1] != 3 {
		t.Errorf("SortedFloats = %v", fs)
	}
}
