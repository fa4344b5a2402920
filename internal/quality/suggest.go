package quality

import "fmt"

// Category groups cleaning recommendations.
type Category string

const (
	CategoryMissingValues    Category = "missing_values"
	CategoryDuplicates       Category = "duplicates"
	CategoryOutliers         Category = "outliers"
	CategoryTypeOptimization Category = "type_optimization"
	CategoryTextCleaning     Category = "text_cleaning"
)

// Categories lists every suggestion category in display order.
func Categories() []Category {
	return []Category{
		CategoryMissingValues,
		CategoryDuplicates,
		CategoryOutliers,
		CategoryTypeOptimization,
		CategoryTextCleaning,
	}
}

// Suggestions maps every category to an ordered list of recommendations.
// All five categories are always present; a category with nothing to report
// maps to an empty list.
type Suggestions map[Category][]string

// Suggest derives human-readable cleaning recommendations from a quality
// report. Pure function of the report: same report, same strings.
func Suggest(rep *Report) Suggestions {
	s := Suggestions{}
	for _, cat := range Categories() {
		s[cat] = []string{}
	}

	for _, cm := range rep.MissingData.Columns {
		switch cm.Pattern {
		case PatternNone:
		case PatternSevere:
			s[CategoryMissingValues] = append(s[CategoryMissingValues],
				fmt.Sprintf("Column '%s' is %.2f%% missing - consider dropping it", cm.Column, cm.Percentage))
		case PatternHigh:
			s[CategoryMissingValues] = append(s[CategoryMissingValues],
				fmt.Sprintf("Column '%s' has %.2f%% missing values - investigate before imputing", cm.Column, cm.Percentage))
		default:
			s[CategoryMissingValues] = append(s[CategoryMissingValues],
				fmt.Sprintf("Column '%s' has %.2f%% missing values - fill with median/mode via handle_missing_basic", cm.Column, cm.Percentage))
		}
	}

	if rep.Duplicates.TotalDuplicates > 0 {
		s[CategoryDuplicates] = append(s[CategoryDuplicates],
			fmt.Sprintf("Found %d duplicate rows (%.2f%%) - remove with remove_duplicates",
				rep.Duplicates.TotalDuplicates, rep.Duplicates.Percentage))
	}

	for _, co := range rep.Outliers {
		if co.IQROutliers == 0 {
			continue
		}
		s[CategoryOutliers] = append(s[CategoryOutliers],
			fmt.Sprintf("Column '%s' has %d values outside [%.4g, %.4g] (%s) - review before remove_outliers",
				co.Column, co.IQROutliers, co.LowerFence, co.UpperFence, co.Severity))
	}

	for _, ct := range rep.DataTypes {
		if !ct.OptimizationPossible {
			continue
		}
		msg := fmt.Sprintf("Column '%s' can be stored as %s instead of %s", ct.Column, ct.SuggestedType, ct.CurrentType)
		if saved := ct.MemoryBytes - ct.EstimatedBytes; saved > 0 {
			msg += fmt.Sprintf(" (saves ~%d bytes)", saved)
		}
		s[CategoryTypeOptimization] = append(s[CategoryTypeOptimization], msg)
	}

	for _, tq := range rep.TextQuality {
		s[CategoryTextCleaning] = append(s[CategoryTextCleaning],
			fmt.Sprintf("Column '%s' has %d values with irregular whitespace - apply clean_text",
				tq.Column, tq.Untrimmed+tq.MultiSpace))
	}

	return s
}
