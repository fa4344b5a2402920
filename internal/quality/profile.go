package quality

import (
	"fmt"
	"sort"
	"strings"

	"gonum.org/v1/gonum/stat"

	"github.com/tablewise/tablewise/internal/dataset"
)

// Profile is a per-column exploratory summary of a dataset, rendered as
// Markdown for terminals and as compact context for the AI assistant.
type Profile struct {
	Name    string
	Rows    int
	Columns []ColumnProfile
}

// ColumnProfile captures inferred kind and basic statistics for one column.
type ColumnProfile struct {
	Name    string
	Kind    string
	NonNull int
	Missing int
	Unique  int
	// Numeric stats
	Min    float64
	Max    float64
	Mean   float64
	Std    float64
	Median float64
	// Categorical/text samples
	TopValues []ValueCount
	Examples  []string
}

type ValueCount struct {
	Value string
	Count int
}

// Describe profiles every column of ds. Like Analyze it is pure and safe to
// call repeatedly.
func Describe(ds *dataset.Dataset, name string) *Profile {
	p := &Profile{Name: name, Rows: ds.NumRows()}
	for i := range ds.Columns {
		p.Columns = append(p.Columns, describeColumn(&ds.Columns[i]))
	}
	return p
}

func describeColumn(c *dataset.Column) ColumnProfile {
	cp := ColumnProfile{
		Name:    c.Name,
		Kind:    c.DominantKind().String(),
		NonNull: c.NonNull(),
		Missing: c.Missing(),
		Unique:  c.Distinct(),
	}
	switch c.DominantKind() {
	case dataset.KindNumber:
		vals := c.SortedFloats()
		if len(vals) > 0 {
			cp.Min = vals[0]
			cp.Max = vals[len(vals)-1]
			cp.Mean = stat.Mean(vals, nil)
			cp.Median = Quantile(0.5, vals)
			if len(vals) > 1 {
				cp.Std = stat.StdDev(vals, nil)
			}
		}
	case dataset.KindText, dataset.KindBool:
		counts := map[string]int{}
		for _, v := range c.Values {
			if v.IsNull() {
				continue
			}
			counts[v.String()]++
			if len(cp.Examples) < 3 {
				cp.Examples = append(cp.Examples, v.String())
			}
		}
		tops := make([]ValueCount, 0, len(counts))
		for k, n := range counts {
			tops = append(tops, ValueCount{Value: k, Count: n})
		}
		sort.Slice(tops, func(i, j int) bool {
			if tops[i].Count == tops[j].Count {
				return tops[i].Value < tops[j].Value
			}
			return tops[i].Count > tops[j].Count
		})
		if len(tops) > 8 {
			tops = tops[:8]
		}
		cp.TopValues = tops
	}
	return cp
}

// Markdown renders a compact profile suitable for prompts or terminals.
func (p *Profile) Markdown() string {
	var b strings.Builder
	b.WriteString("[DATASET SUMMARY]\n")
	if p.Name != "" {
		fmt.Fprintf(&b, "Name: %s\n", p.Name)
	}
	fmt.Fprintf(&b, "Rows: %d\nColumns: %d\n\n", p.Rows, len(p.Columns))
	b.WriteString("[SCHEMA]\n")
	for _, c := range p.Columns {
		total := c.NonNull + c.Missing
		missPct := 0.0
		if total > 0 {
			missPct = float64(c.Missing) * 100 / float64(total)
		}
		fmt.Fprintf(&b, "- %s: %s (non-null %d, missing %.1f%%)", safeName(c.Name), c.Kind, c.NonNull, missPct)
		switch c.Kind {
		case "number":
			fmt.Fprintf(&b, " | min %.4g, max %.4g, mean %.4g, median %.4g, std %.4g",
				c.Min, c.Max, c.Mean, c.Median, c.Std)
		default:
			if len(c.TopValues) > 0 {
				b.WriteString(" | top: ")
				for i, tv := range c.TopValues {
					if i > 0 {
						b.WriteString(", ")
					}
					fmt.Fprintf(&b, "%s(%d)", safeVal(tv.Value), tv.Count)
				}
				if c.Unique > len(c.TopValues) {
					fmt.Fprintf(&b, "; unique=%d", c.Unique)
				}
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

func safeName(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "(unnamed)"
	}
	return s
}

func safeVal(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "\n", " "), "|", "/")
}
