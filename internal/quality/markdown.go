package quality

import (
	"fmt"
	"strings"
)

// Markdown renders the report as terminal-friendly Markdown, mirroring the
// section style of Profile.Markdown.
func (r *Report) Markdown() string {
	var b strings.Builder
	b.WriteString("[QUALITY REPORT]\n")
	fmt.Fprintf(&b, "Quality score: %.2f/100\n", r.QualityScore)
	fmt.Fprintf(&b, "Rows: %d (distinct %d)\nColumns: %d\nMemory: %s\n\n",
		r.DatasetInfo.Rows, r.DatasetInfo.DistinctRows, r.DatasetInfo.Columns,
		formatBytes(r.DatasetInfo.MemoryBytes))

	b.WriteString("[MISSING DATA]\n")
	fmt.Fprintf(&b, "Total missing: %d across %d columns (severity: %s)\n",
		r.MissingData.TotalMissing, r.MissingData.ColumnsWithMissing, r.MissingData.Severity)
	for _, cm := range r.MissingData.Columns {
		if cm.Count == 0 {
			continue
		}
		fmt.Fprintf(&b, "- %s: %d missing (%.2f%%, %s)\n", cm.Column, cm.Count, cm.Percentage, cm.Pattern)
	}

	b.WriteString("\n[DUPLICATES]\n")
	fmt.Fprintf(&b, "Duplicate rows: %d (%.2f%%)\n", r.Duplicates.TotalDuplicates, r.Duplicates.Percentage)

	if len(r.Outliers) > 0 {
		b.WriteString("\n[OUTLIERS]\n")
		for _, co := range r.Outliers {
			fmt.Fprintf(&b, "- %s: %d IQR outliers, %d z-score outliers, fences [%.4g, %.4g], severity %s\n",
				co.Column, co.IQROutliers, co.ZScoreOutliers, co.LowerFence, co.UpperFence, co.Severity)
		}
	}

	b.WriteString("\n[DATA TYPES]\n")
	for _, ct := range r.DataTypes {
		line := fmt.Sprintf("- %s: %s", ct.Column, ct.CurrentType)
		if ct.OptimizationPossible {
			line += fmt.Sprintf(" -> %s", ct.SuggestedType)
		}
		fmt.Fprintf(&b, "%s (%s)\n", line, formatBytes(ct.MemoryBytes))
	}

	if len(r.TextQuality) > 0 {
		b.WriteString("\n[TEXT QUALITY]\n")
		for _, tq := range r.TextQuality {
			fmt.Fprintf(&b, "- %s: %d untrimmed, %d with repeated spaces\n", tq.Column, tq.Untrimmed, tq.MultiSpace)
		}
	}
	return b.String()
}

func formatBytes(n int64) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.2f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.2f KB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
