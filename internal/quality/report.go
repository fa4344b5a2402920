package quality

// Report is an immutable point-in-time quality assessment of one dataset.
// Analyze never mutates its input and two runs over identical datasets
// produce identical reports, so a Report can be cached and compared.
type Report struct {
	DatasetInfo  DatasetInfo         `json:"dataset_info"`
	MissingData  MissingData         `json:"missing_data"`
	Duplicates   DuplicateStats      `json:"duplicates"`
	Outliers     []ColumnOutliers    `json:"outliers"`
	DataTypes    []ColumnType        `json:"data_types"`
	TextQuality  []ColumnTextQuality `json:"text_quality"`
	QualityScore float64             `json:"quality_score"`
}

type DatasetInfo struct {
	Rows         int   `json:"rows"`
	Columns      int   `json:"columns"`
	MemoryBytes  int64 `json:"memory_usage_bytes"`
	DistinctRows int   `json:"distinct_rows"`
}

type MissingData struct {
	Columns            []ColumnMissing `json:"patterns"`
	TotalMissing       int             `json:"total_missing"`
	ColumnsWithMissing int             `json:"columns_with_missing"`
	Severity           MissingPattern  `json:"severity"`
}

type ColumnMissing struct {
	Column     string         `json:"column"`
	Count      int            `json:"count"`
	Percentage float64        `json:"percentage"`
	Pattern    MissingPattern `json:"pattern"`
}

// MissingPattern classifies a column's missing-value proportion.
type MissingPattern string

const (
	PatternNone     MissingPattern = "none"     // 0%
	PatternFew      MissingPattern = "few"      // under 5%
	PatternModerate MissingPattern = "moderate" // 5-20%
	PatternHigh     MissingPattern = "high"     // 20-50%
	PatternSevere   MissingPattern = "severe"   // over 50%
)

type DuplicateStats struct {
	TotalDuplicates int     `json:"total_duplicates"`
	Percentage      float64 `json:"percentage"`
}

type ColumnOutliers struct {
	Column         string          `json:"column"`
	IQROutliers    int             `json:"iqr_outliers"`
	ZScoreOutliers int             `json:"z_score_outliers"`
	LowerFence     float64         `json:"lower_bound"`
	UpperFence     float64         `json:"upper_bound"`
	Severity       OutlierSeverity `json:"severity"`
}

// OutlierSeverity classifies the share of IQR outliers among a column's
// non-null values.
type OutlierSeverity string

const (
	OutlierNone     OutlierSeverity = "none"     // 0%
	OutlierLow      OutlierSeverity = "low"      // under 5%
	OutlierModerate OutlierSeverity = "moderate" // 5-10%
	OutlierHigh     OutlierSeverity = "high"     // over 10%
)

type ColumnType struct {
	Column               string `json:"column"`
	CurrentType          string `json:"current_type"`
	SuggestedType        string `json:"suggested_type"`
	MemoryBytes          int64  `json:"memory_usage_bytes"`
	EstimatedBytes       int64  `json:"estimated_bytes"`
	OptimizationPossible bool   `json:"optimization_possible"`
}

// ColumnTextQuality counts text cells needing whitespace normalization.
type ColumnTextQuality struct {
	Column     string `json:"column"`
	Untrimmed  int    `json:"untrimmed"`
	MultiSpace int    `json:"multi_space"`
}
