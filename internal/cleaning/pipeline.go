package cleaning

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/tablewise/tablewise/internal/dataset"
	"github.com/tablewise/tablewise/internal/quality"
)

// MissingPlaceholder fills non-numeric cells that have no mode to impute
// from.
const MissingPlaceholder = "Unknown"

// Clean applies the requested operations to a copy of ds and returns the
// cleaned dataset with a before/after summary. The input dataset is never
// mutated. Operations run in canonical order regardless of the order given.
// Unknown operations fail validation before anything executes, so a
// returned error means ds was untouched and no partial cleaning happened.
// An empty operation list is a no-op: equal dataset back, empty log.
func Clean(ds *dataset.Dataset, ops []Operation) (*dataset.Dataset, *Summary, error) {
	requested := map[Operation]struct{}{}
	var unknown []string
	valid := map[Operation]struct{}{}
	for _, op := range canonicalOrder {
		valid[op] = struct{}{}
	}
	for _, op := range ops {
		if _, ok := valid[op]; !ok {
			unknown = append(unknown, string(op))
			continue
		}
		requested[op] = struct{}{}
	}
	if len(unknown) > 0 {
		return nil, nil, &ValidationError{Unknown: unknown}
	}

	sum := &Summary{
		OriginalRows:    ds.NumRows(),
		OriginalColumns: ds.NumCols(),
		MemoryBefore:    ds.MemoryEstimate(),
		Log:             []string{},
	}

	out := ds.Clone()
	for _, op := range canonicalOrder {
		if _, ok := requested[op]; !ok {
			continue
		}
		var line string
		switch op {
		case OpRemoveDuplicates:
			out, line = removeDuplicates(out)
		case OpFixDataTypes:
			out, line = fixDataTypes(out)
		case OpHandleMissingBasic:
			out, line = handleMissing(out)
		case OpCleanText:
			out, line = cleanText(out)
		case OpRemoveOutliers:
			out, line = removeOutliers(out)
		}
		sum.Log = append(sum.Log, line)
	}

	sum.ResultRows = out.NumRows()
	sum.ResultColumns = out.NumCols()
	sum.RowsChanged = sum.OriginalRows - sum.ResultRows
	sum.MemoryAfter = out.MemoryEstimate()
	sum.MemorySaved = sum.MemoryBefore - sum.MemoryAfter
	return out, sum, nil
}

// removeDuplicates drops rows whose full-row key already occurred earlier,
// keeping the first occurrence.
func removeDuplicates(ds *dataset.Dataset) (*dataset.Dataset, string) {
	rows := ds.NumRows()
	seen := make(map[string]struct{}, rows)
	keep := make([]int, 0, rows)
	for i := 0; i < rows; i++ {
		key := ds.RowKey(i)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		keep = append(keep, i)
	}
	removed := rows - len(keep)
	if removed == 0 {
		return ds, "Removed 0 duplicate rows"
	}
	return ds.SelectRows(keep), fmt.Sprintf("Removed %d duplicate rows", removed)
}

// fixDataTypes converts text columns whose values all round-trip as numbers
// or booleans. Narrowing suggestions that only change storage width have no
// cell-level representation here and are left to the report.
func fixDataTypes(ds *dataset.Dataset) (*dataset.Dataset, string) {
	converted := 0
	for i := range ds.Columns {
		c := &ds.Columns[i]
		if c.DominantKind() != dataset.KindText {
			continue
		}
		if tryConvertColumn(c) {
			converted++
		}
	}
	if converted == 0 {
		return ds, "Data type optimization: no applicable columns"
	}
	return ds, fmt.Sprintf("Converted %d columns to better data types", converted)
}

func tryConvertColumn(c *dataset.Column) bool {
	numbers := make([]dataset.Value, len(c.Values))
	bools := make([]dataset.Value, len(c.Values))
	allNum, allBool := true, true
	nonNull := 0
	for i, v := range c.Values {
		if v.IsNull() {
			numbers[i], bools[i] = v, v
			continue
		}
		s, ok := v.Text()
		if !ok {
			// Mixed column already carrying typed cells: keep them.
			numbers[i], bools[i] = v, v
			if _, isNum := v.Float(); !isNum {
				allNum = false
			}
			if _, isBool := v.Bool(); !isBool {
				allBool = false
			}
			nonNull++
			continue
		}
		nonNull++
		parsed := dataset.ParseValue(s)
		switch parsed.Kind() {
		case dataset.KindNumber:
			numbers[i] = parsed
			allBool = false
		case dataset.KindBool:
			bools[i] = parsed
			allNum = false
		default:
			return false
		}
	}
	if nonNull == 0 {
		return false
	}
	if allNum {
		c.Values = numbers
		return true
	}
	if allBool {
		c.Values = bools
		return true
	}
	return false
}

// handleMissing imputes nulls: numeric columns take the column median,
// everything else the column mode, falling back to MissingPlaceholder when
// no mode exists.
func handleMissing(ds *dataset.Dataset) (*dataset.Dataset, string) {
	filled := 0
	for i := range ds.Columns {
		c := &ds.Columns[i]
		missing := c.Missing()
		if missing == 0 {
			continue
		}
		fill := fillValue(c)
		for j, v := range c.Values {
			if v.IsNull() {
				c.Values[j] = fill
				filled++
			}
		}
	}
	return ds, fmt.Sprintf("Filled %d missing values", filled)
}

func fillValue(c *dataset.Column) dataset.Value {
	if c.DominantKind() == dataset.KindNumber {
		vals := c.SortedFloats()
		if len(vals) > 0 {
			return dataset.Number(quality.Quantile(0.5, vals))
		}
		return dataset.Text(MissingPlaceholder)
	}
	mode, ok := columnMode(c)
	if !ok {
		return dataset.Text(MissingPlaceholder)
	}
	return mode
}

// columnMode finds the most frequent non-null value; ties break toward the
// lexicographically smaller display value so imputation is deterministic.
func columnMode(c *dataset.Column) (dataset.Value, bool) {
	counts := map[string]int{}
	byKey := map[string]dataset.Value{}
	for _, v := range c.Values {
		if v.IsNull() {
			continue
		}
		k := v.String()
		counts[k]++
		byKey[k] = v
	}
	best := ""
	bestN := 0
	for k, n := range counts {
		if n > bestN || (n == bestN && k < best) {
			best, bestN = k, n
		}
	}
	if bestN == 0 {
		return dataset.Null(), false
	}
	return byKey[best], true
}

var spaceRuns = regexp.MustCompile(`\s+`)

// cleanText trims and collapses whitespace in text columns.
func cleanText(ds *dataset.Dataset) (*dataset.Dataset, string) {
	textCols := 0
	changed := 0
	for i := range ds.Columns {
		c := &ds.Columns[i]
		if c.DominantKind() != dataset.KindText {
			continue
		}
		textCols++
		for j, v := range c.Values {
			s, ok := v.Text()
			if !ok {
				continue
			}
			cleaned := spaceRuns.ReplaceAllString(strings.TrimSpace(s), " ")
			if cleaned != s {
				c.Values[j] = dataset.Text(cleaned)
				changed++
			}
		}
	}
	if textCols == 0 {
		return ds, "Text cleaning: no applicable columns"
	}
	return ds, fmt.Sprintf("Cleaned whitespace in %d text values", changed)
}

// removeOutliers drops rows with any numeric cell outside its column's IQR
// fences, computed on the dataset as it stands at this point in the
// pipeline.
func removeOutliers(ds *dataset.Dataset) (*dataset.Dataset, string) {
	type fence struct {
		col          int
		lower, upper float64
	}
	var fences []fence
	for i := range ds.Columns {
		c := &ds.Columns[i]
		if c.DominantKind() != dataset.KindNumber {
			continue
		}
		vals := c.SortedFloats()
		if len(vals) == 0 {
			continue
		}
		lo, hi := quality.IQRFences(vals)
		fences = append(fences, fence{col: i, lower: lo, upper: hi})
	}
	if len(fences) == 0 {
		return ds, "Outlier removal: no applicable columns"
	}
	rows := ds.NumRows()
	keep := make([]int, 0, rows)
	for r := 0; r < rows; r++ {
		ok := true
		for _, f := range fences {
			if v, isNum := ds.Columns[f.col].Values[r].Float(); isNum {
				if v < f.lower || v > f.upper {
					ok = false
					break
				}
			}
		}
		if ok {
			keep = append(keep, r)
		}
	}
	removed := rows - len(keep)
	if removed == 0 {
		return ds, "Removed 0 outlier rows"
	}
	return ds.SelectRows(keep), fmt.Sprintf("Removed %d outlier rows", removed)
}
