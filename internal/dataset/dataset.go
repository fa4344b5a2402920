package dataset

import (
	"fmt"
	"sort"
	"strings"
)

// Column is an ordered sequence of cells under a name.
type Column struct {
	Name   string
	Values []Value
}

// Dataset is an ordered set of equally sized columns. The zero value is an
// empty dataset. Analysis and cleaning code treats a Dataset as immutable;
// anything that changes data works on a Clone.
type Dataset struct {
	Columns []Column
}

// New builds a Dataset, padding short columns with nulls so every column has
// the same length.
func New(cols []Column) *Dataset {
	rows := 0
	for _, c := range cols {
		if len(c.Values) > rows {
			rows = len(c.Values)
		}
	}
	for i := range cols {
		for len(cols[i].Values) < rows {
			cols[i].Values = append(cols[i].Values, Null())
		}
	}
	return &Dataset{Columns: cols}
}

func (d *Dataset) NumCols() int { return len(d.Columns) }

func (d *Dataset) NumRows() int {
	if len(d.Columns) == 0 {
		return 0
	}
	return len(d.Columns[0].Values)
}

// Column returns the named column, or false if absent. Lookup is
// case-insensitive the way spreadsheet headers usually are.
func (d *Dataset) Column(name string) (*Column, bool) {
	for i := range d.Columns {
		if strings.EqualFold(d.Columns[i].Name, name) {
			return &d.Columns[i], true
		}
	}
	return nil, false
}

// Clone deep-copies the dataset.
func (d *Dataset) Clone() *Dataset {
	cols := make([]Column, len(d.Columns))
	for i, c := range d.Columns {
		vals := make([]Value, len(c.Values))
		copy(vals, c.Values)
		cols[i] = Column{Name: c.Name, Values: vals}
	}
	return &Dataset{Columns: cols}
}

// Equal reports structural equality: same column names in the same order
// with identical cells.
func (d *Dataset) Equal(o *Dataset) bool {
	if len(d.Columns) != len(o.Columns) {
		return false
	}
	for i := range d.Columns {
		if d.Columns[i].Name != o.Columns[i].Name {
			return false
		}
		if len(d.Columns[i].Values) != len(o.Columns[i].Values) {
			return false
		}
		for j, v := range d.Columns[i].Values {
			if v != o.Columns[i].Values[j] {
				return false
			}
		}
	}
	return true
}

// Row returns the cells of row i across all columns.
func (d *Dataset) Row(i int) []Value {
	row := make([]Value, len(d.Columns))
	for c := range d.Columns {
		row[c] = d.Columns[c].Values[i]
	}
	return row
}

// RowKey builds a canonical key for row i, used for duplicate detection.
// The kind tag keeps text "true" distinct from boolean true.
func (d *Dataset) RowKey(i int) string {
	var b strings.Builder
	for c := range d.Columns {
		v := d.Columns[c].Values[i]
		fmt.Fprintf(&b, "%d:%s\x1f", v.Kind(), v.String())
	}
	return b.String()
}

// DominantKind infers the prevailing non-null kind of a column. Numbers win
// ties over text, text over bool; an all-null column reports KindNull.
func (c *Column) DominantKind() Kind {
	var num, txt, bl int
	for _, v := range c.Values {
		switch v.Kind() {
		case KindNumber:
			num++
		case KindText:
			txt++
		case KindBool:
			bl++
		}
	}
	switch {
	case num == 0 && txt == 0 && bl == 0:
		return KindNull
	case num >= txt && num >= bl:
		return KindNumber
	case txt >= bl:
		return KindText
	default:
		return KindBool
	}
}

// NonNull counts cells that are not null.
func (c *Column) NonNull() int {
	n := 0
	for _, v := range c.Values {
		if !v.IsNull() {
			n++
		}
	}
	return n
}

// Missing counts null cells.
func (c *Column) Missing() int { return len(c.Values) - c.NonNull() }

// Floats collects the numeric cells of a column in order.
func (c *Column) Floats() []float64 {
	out := make([]float64, 0, len(c.Values))
	for _, v := range c.Values {
		if f, ok := v.Float(); ok {
			out = append(out, f)
		}
	}
	return out
}

// SortedFloats collects numeric cells and sorts them, for quantile math.
func (c *Column) SortedFloats() []float64 {
	out := c.Floats()
	sort.Float64s(out)
	return out
}

// Distinct counts distinct non-null display values in a column.
func (c *Column) Distinct() int {
	seen := make(map[string]struct{}, len(c.Values))
	for _, v := range c.Values {
		if v.IsNull() {
			continue
		}
		seen[v.String()] = struct{}{}
	}
	return len(seen)
}

// Per-cell payload cost in bytes. Deliberately an approximation: the point
// is a stable, monotonic estimate, not an object-graph measurement.
const cellOverheadBytes = 16

// MemoryEstimate approximates the in-memory footprint of the dataset.
func (d *Dataset) MemoryEstimate() int64 {
	var total int64
	for i := range d.Columns {
		total += d.Columns[i].MemoryBytes()
	}
	return total
}

// MemoryBytes approximates the column's footprint from its cell payloads.
func (c *Column) MemoryBytes() int64 {
	var total int64
	for _, v := range c.Values {
		total += cellOverheadBytes
		switch v.Kind() {
		case KindNumber:
			total += 8
		case KindBool:
			total++
		case KindText:
			s, _ := v.Text()
			total += int64(len(s))
		}
	}
	return total
}

// DistinctRowCount counts distinct rows by full-row key.
func (d *Dataset) DistinctRowCount() int {
	rows := d.NumRows()
	seen := make(map[string]struct{}, rows)
	for i := 0; i < rows; i++ {
		seen[d.RowKey(i)] = struct{}{}
	}
	return len(seen)
}

// SelectRows produces a new dataset with only the rows whose indexes are in
// keep (ascending order expected).
func (d *Dataset) SelectRows(keep []int) *Dataset {
	cols := make([]Column, len(d.Columns))
	for c := range d.Columns {
		vals := make([]Value, 0, len(keep))
		for _, i := range keep {
			vals = append(vals, d.Columns[c].Values[i])
		}
		cols[c] = Column{Name: d.Columns[c].Name, Values: vals}
	}
	return &Dataset{Columns: cols}
}
