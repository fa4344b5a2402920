// Package query answers simple natural-language questions about a dataset
// by keyword dispatch. It is deliberately offline: the same questions the
// AI assistant handles conversationally get deterministic answers here
// without an API key.
package query

import (
	"fmt"
	"sort"
	"strings"

	"gonum.org/v1/gonum/stat"

	"github.com/tablewise/tablewise/internal/dataset"
	"github.com/tablewise/tablewise/internal/quality"
)

const helpText = `I can answer questions like:
  - "how many missing values are there?"
  - "what are the data types?"
  - "show statistics" / "describe the data"
  - "correlation between numeric columns"
  - "unique values in <column>"
  - "what is the shape of the data?"
  - "show the first rows" (head)
For anything else, use the chat command with an API key configured.`

// Handle answers q against ds. Unanswerable questions get the help text
// back, never an error: a typo in a question is not a failure.
func Handle(ds *dataset.Dataset, q string) string {
	lq := strings.ToLower(q)
	switch {
	case containsAny(lq, "null", "missing", "empty value"):
		return answerMissing(ds)
	case containsAny(lq, "type", "dtype", "schema"):
		return answerTypes(ds)
	case containsAny(lq, "statistic", "describe", "summary", "stats"):
		return quality.Describe(ds, "data").Markdown()
	case containsAny(lq, "correlat"):
		return answerCorrelation(ds)
	case containsAny(lq, "unique", "distinct"):
		return answerUnique(ds, lq)
	case containsAny(lq, "shape", "how many rows", "how many columns", "size"):
		return fmt.Sprintf("The dataset has %d rows and %d columns.", ds.NumRows(), ds.NumCols())
	case containsAny(lq, "head", "first rows", "first few", "preview", "sample rows"):
		return answerHead(ds, 5)
	default:
		return helpText
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func answerMissing(ds *dataset.Dataset) string {
	var b strings.Builder
	total := 0
	var lines []string
	for i := range ds.Columns {
		c := &ds.Columns[i]
		if m := c.Missing(); m > 0 {
			total += m
			lines = append(lines, fmt.Sprintf("  - %s: %d missing", c.Name, m))
		}
	}
	if total == 0 {
		return "No missing values found. Every cell has a value."
	}
	fmt.Fprintf(&b, "Found %d missing values across %d columns:\n", total, len(lines))
	b.WriteString(strings.Join(lines, "\n"))
	return b.String()
}

func answerTypes(ds *dataset.Dataset) string {
	var b strings.Builder
	b.WriteString("Column types:\n")
	for i := range ds.Columns {
		c := &ds.Columns[i]
		fmt.Fprintf(&b, "  - %s: %s\n", c.Name, c.DominantKind())
	}
	return strings.TrimRight(b.String(), "\n")
}

// answerCorrelation reports pairwise Pearson correlation over numeric
// columns, aligned on rows where both cells are numeric.
func answerCorrelation(ds *dataset.Dataset) string {
	var numeric []*dataset.Column
	for i := range ds.Columns {
		c := &ds.Columns[i]
		if c.DominantKind() == dataset.KindNumber {
			numeric = append(numeric, c)
		}
	}
	if len(numeric) < 2 {
		return "Correlation needs at least two numeric columns; this dataset has fewer."
	}
	var b strings.Builder
	b.WriteString("Pearson correlation between numeric columns:\n")
	for i := 0; i < len(numeric); i++ {
		for j := i + 1; j < len(numeric); j++ {
			xs, ys := alignedPairs(numeric[i], numeric[j])
			if len(xs) < 2 {
				fmt.Fprintf(&b, "  - %s vs %s: not enough paired values\n", numeric[i].Name, numeric[j].Name)
				continue
			}
			r := stat.Correlation(xs, ys, nil)
			fmt.Fprintf(&b, "  - %s vs %s: %.3f\n", numeric[i].Name, numeric[j].Name, r)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func alignedPairs(a, b *dataset.Column) (xs, ys []float64) {
	n := len(a.Values)
	if len(b.Values) < n {
		n = len(b.Values)
	}
	for i := 0; i < n; i++ {
		x, okx := a.Values[i].Float()
		y, oky := b.Values[i].Float()
		if okx && oky {
			xs = append(xs, x)
			ys = append(ys, y)
		}
	}
	return xs, ys
}

// answerUnique looks for a column name mentioned in the question; without
// one it reports distinct counts for every column.
func answerUnique(ds *dataset.Dataset, lq string) string {
	for i := range ds.Columns {
		c := &ds.Columns[i]
		if strings.Contains(lq, strings.ToLower(c.Name)) {
			return uniqueValues(c)
		}
	}
	var b strings.Builder
	b.WriteString("Distinct values per column:\n")
	for i := range ds.Columns {
		c := &ds.Columns[i]
		fmt.Fprintf(&b, "  - %s: %d\n", c.Name, c.Distinct())
	}
	return strings.TrimRight(b.String(), "\n")
}

const uniqueListLimit = 20

func uniqueValues(c *dataset.Column) string {
	seen := map[string]struct{}{}
	var vals []string
	for _, v := range c.Values {
		if v.IsNull() {
			continue
		}
		s := v.String()
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		vals = append(vals, s)
	}
	sort.Strings(vals)
	if len(vals) == 0 {
		return fmt.Sprintf("Column %q has no non-null values.", c.Name)
	}
	shown := vals
	truncated := ""
	if len(vals) > uniqueListLimit {
		shown = vals[:uniqueListLimit]
		truncated = fmt.Sprintf(" (showing first %d)", uniqueListLimit)
	}
	return fmt.Sprintf("Column %q has %d unique values%s:\n  %s",
		c.Name, len(vals), truncated, strings.Join(shown, ", "))
}

func answerHead(ds *dataset.Dataset, n int) string {
	rows := ds.NumRows()
	if rows < n {
		n = rows
	}
	var b strings.Builder
	names := make([]string, ds.NumCols())
	for i := range ds.Columns {
		names[i] = ds.Columns[i].Name
	}
	b.WriteString(strings.Join(names, " | "))
	for r := 0; r < n; r++ {
		b.WriteString("\n")
		cells := make([]string, 0, ds.NumCols())
		for _, v := range ds.Row(r) {
			cells = append(cells, v.String())
		}
		b.WriteString(strings.Join(cells, " | "))
	}
	if rows > n {
		fmt.Fprintf(&b, "\n... %d more rows", rows-n)
	}
	return b.String()
}
