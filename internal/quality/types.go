package quality

import (
	"math"

	"github.com/tablewise/tablewise/internal/dataset"
)

// CategoryCardinalityRatio is the distinct/non-null threshold under which a
// text column is better stored as a categorical encoding.
const CategoryCardinalityRatio = 0.5

func analyzeTypes(ds *dataset.Dataset) []ColumnType {
	out := make([]ColumnType, 0, ds.NumCols())
	for i := range ds.Columns {
		out = append(out, SuggestType(&ds.Columns[i]))
	}
	return out
}

// SuggestType inspects one column's representation and value range and
// proposes a narrower type where one fits: integer widths for integral
// numerics, float32 for losslessly narrowable floats, numeric or
// categorical types for text whose values allow it.
func SuggestType(c *dataset.Column) ColumnType {
	ct := ColumnType{
		Column:      c.Name,
		MemoryBytes: c.MemoryBytes(),
	}
	switch c.DominantKind() {
	case dataset.KindNumber:
		ct.CurrentType = "float64"
		ct.SuggestedType = narrowestNumeric(c.Floats())
	case dataset.KindText:
		ct.CurrentType = "string"
		ct.SuggestedType = suggestTextType(c)
	case dataset.KindBool:
		ct.CurrentType = "bool"
		ct.SuggestedType = "bool"
	default:
		ct.CurrentType = "null"
		ct.SuggestedType = "null"
	}
	ct.EstimatedBytes = EstimatedBytes(ct.SuggestedType, c)
	ct.OptimizationPossible = ct.SuggestedType != ct.CurrentType
	return ct
}

func narrowestNumeric(vals []float64) string {
	if len(vals) == 0 {
		return "float64"
	}
	integral := true
	lo, hi := vals[0], vals[0]
	for _, v := range vals {
		if v != math.Trunc(v) {
			integral = false
		}
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if integral {
		switch {
		case lo >= math.MinInt8 && hi <= math.MaxInt8:
			return "int8"
		case lo >= math.MinInt16 && hi <= math.MaxInt16:
			return "int16"
		case lo >= math.MinInt32 && hi <= math.MaxInt32:
			return "int32"
		default:
			return "int64"
		}
	}
	for _, v := range vals {
		if float64(float32(v)) != v {
			return "float64"
		}
	}
	return "float32"
}

func suggestTextType(c *dataset.Column) string {
	nonNull := 0
	numeric := 0
	for _, v := range c.Values {
		s, ok := v.Text()
		if !ok {
			continue
		}
		nonNull++
		if _, isNum := dataset.ParseValue(s).Float(); isNum {
			numeric++
		}
	}
	if nonNull == 0 {
		return "string"
	}
	// Text that is secretly numeric (mixed columns where text won the
	// dominant-kind vote) converts wholesale only when every value parses.
	if numeric == nonNull {
		floats := make([]float64, 0, nonNull)
		for _, v := range c.Values {
			if s, ok := v.Text(); ok {
				if f, isNum := dataset.ParseValue(s).Float(); isNum {
					floats = append(floats, f)
				}
			}
		}
		return narrowestNumeric(floats)
	}
	if float64(c.Distinct())/float64(nonNull) < CategoryCardinalityRatio {
		return "category"
	}
	return "string"
}

// typeWidths approximates bytes per cell for suggested types; text and
// category widths are handled separately.
var typeWidths = map[string]int64{
	"bool":    1,
	"int8":    1,
	"int16":   2,
	"int32":   4,
	"int64":   8,
	"float32": 4,
	"float64": 8,
	"null":    1,
}

// EstimatedBytes returns the per-row cost of a suggested type; category and
// string fall back to the column's observed average text width.
func EstimatedBytes(suggested string, c *dataset.Column) int64 {
	rows := int64(len(c.Values))
	if w, ok := typeWidths[suggested]; ok {
		return rows * w
	}
	if suggested == "category" {
		// Code per row plus the dictionary of distinct values.
		var dict int64
		seen := map[string]struct{}{}
		for _, v := range c.Values {
			if s, ok := v.Text(); ok {
				if _, dup := seen[s]; !dup {
					seen[s] = struct{}{}
					dict += int64(len(s))
				}
			}
		}
		return rows*2 + dict
	}
	return c.MemoryBytes()
}
