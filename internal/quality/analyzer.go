package quality

import (
	"math"
	"regexp"
	"strings"

	"gonum.org/v1/gonum/stat"

	"github.com/tablewise/tablewise/internal/dataset"
)

// IQRFenceFactor is the Tukey fence multiplier: values outside
// [Q1 − k·IQR, Q3 + k·IQR] count as outliers.
const IQRFenceFactor = 1.5

// ZScoreThreshold flags values more than this many standard deviations
// from the column mean.
const ZScoreThreshold = 3.0

// Analyze computes a full quality report over ds. It is a pure function:
// no side effects, no mutation of ds, deterministic output. Degenerate
// inputs (zero rows, zero columns, all-null columns, zero variance) produce
// zero-valued report sections rather than errors, and an empty dataset
// scores a perfect 100.
func Analyze(ds *dataset.Dataset) *Report {
	rows := ds.NumRows()
	cols := ds.NumCols()

	rep := &Report{
		DatasetInfo: DatasetInfo{
			Rows:         rows,
			Columns:      cols,
			MemoryBytes:  ds.MemoryEstimate(),
			DistinctRows: ds.DistinctRowCount(),
		},
	}

	rep.MissingData = analyzeMissing(ds)
	rep.Duplicates = analyzeDuplicates(ds)
	rep.Outliers = analyzeOutliers(ds)
	rep.DataTypes = analyzeTypes(ds)
	rep.TextQuality = analyzeTextQuality(ds)

	missingPct := 0.0
	if rows > 0 && cols > 0 {
		missingPct = float64(rep.MissingData.TotalMissing) / float64(rows*cols) * 100
	}
	rep.QualityScore = round2(qualityScore(missingPct, rep.Duplicates.Percentage, meanOutlierPct(ds, rep.Outliers)))
	return rep
}

func analyzeMissing(ds *dataset.Dataset) MissingData {
	rows := ds.NumRows()
	md := MissingData{Severity: PatternNone, Columns: make([]ColumnMissing, 0, ds.NumCols())}
	for i := range ds.Columns {
		c := &ds.Columns[i]
		miss := c.Missing()
		pct := 0.0
		if rows > 0 {
			pct = float64(miss) / float64(rows) * 100
		}
		pattern := classifyMissing(pct)
		md.Columns = append(md.Columns, ColumnMissing{
			Column:     c.Name,
			Count:      miss,
			Percentage: round2(pct),
			Pattern:    pattern,
		})
		md.TotalMissing += miss
		if miss > 0 {
			md.ColumnsWithMissing++
		}
		if patternRank[pattern] > patternRank[md.Severity] {
			md.Severity = pattern
		}
	}
	return md
}

func analyzeDuplicates(ds *dataset.Dataset) DuplicateStats {
	rows := ds.NumRows()
	if rows == 0 || ds.NumCols() == 0 {
		return DuplicateStats{}
	}
	dups := rows - ds.DistinctRowCount()
	return DuplicateStats{
		TotalDuplicates: dups,
		Percentage:      round2(float64(dups) / float64(rows) * 100),
	}
}

func analyzeOutliers(ds *dataset.Dataset) []ColumnOutliers {
	out := make([]ColumnOutliers, 0)
	for i := range ds.Columns {
		c := &ds.Columns[i]
		if c.DominantKind() != dataset.KindNumber {
			continue
		}
		vals := c.SortedFloats()
		if len(vals) == 0 {
			continue
		}
		lower, upper := IQRFences(vals)
		iqrCount := 0
		for _, v := range vals {
			if v < lower || v > upper {
				iqrCount++
			}
		}
		out = append(out, ColumnOutliers{
			Column:         c.Name,
			IQROutliers:    iqrCount,
			ZScoreOutliers: zScoreOutliers(vals),
			LowerFence:     lower,
			UpperFence:     upper,
			Severity:       classifyOutliers(float64(iqrCount) / float64(len(vals))),
		})
	}
	return out
}

// IQRFences computes Tukey fences over a sorted sample.
func IQRFences(sorted []float64) (lower, upper float64) {
	if len(sorted) == 0 {
		return 0, 0
	}
	q1 := Quantile(0.25, sorted)
	q3 := Quantile(0.75, sorted)
	iqr := q3 - q1
	return q1 - IQRFenceFactor*iqr, q3 + IQRFenceFactor*iqr
}

// Quantile computes the linear-interpolation quantile of a sorted sample:
// the value at fractional index p·(n−1), interpolated between the
// surrounding order statistics. This is the estimator spreadsheets and
// dataframe libraries use, so the median of [1,2,3] is 2 and the median of
// [10,20,30,40] is 25. An empty sample yields NaN.
func Quantile(p float64, sorted []float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	h := p * float64(n-1)
	i := int(h)
	if i >= n-1 {
		return sorted[n-1]
	}
	return sorted[i] + (h-float64(i))*(sorted[i+1]-sorted[i])
}

// zScoreOutliers counts values with |z| above ZScoreThreshold. Columns with
// fewer than two values or zero variance have no defined z-score and count
// zero outliers.
func zScoreOutliers(vals []float64) int {
	if len(vals) < 2 {
		return 0
	}
	mean := stat.Mean(vals, nil)
	sd := stat.StdDev(vals, nil)
	if sd == 0 || math.IsNaN(sd) {
		return 0
	}
	n := 0
	for _, v := range vals {
		if math.Abs(v-mean)/sd > ZScoreThreshold {
			n++
		}
	}
	return n
}

func meanOutlierPct(ds *dataset.Dataset, cols []ColumnOutliers) float64 {
	if len(cols) == 0 {
		return 0
	}
	sum := 0.0
	counted := 0
	for _, co := range cols {
		c, ok := ds.Column(co.Column)
		if !ok {
			continue
		}
		nonNull := len(c.Floats())
		if nonNull == 0 {
			continue
		}
		sum += float64(co.IQROutliers) / float64(nonNull) * 100
		counted++
	}
	if counted == 0 {
		return 0
	}
	return sum / float64(counted)
}

var multiSpaceRe = regexp.MustCompile(`\s{2,}`)

func analyzeTextQuality(ds *dataset.Dataset) []ColumnTextQuality {
	out := make([]ColumnTextQuality, 0)
	for i := range ds.Columns {
		c := &ds.Columns[i]
		if c.DominantKind() != dataset.KindText {
			continue
		}
		tq := ColumnTextQuality{Column: c.Name}
		for _, v := range c.Values {
			s, ok := v.Text()
			if !ok {
				continue
			}
			if s != strings.TrimSpace(s) {
				tq.Untrimmed++
			}
			if multiSpaceRe.MatchString(strings.TrimSpace(s)) {
				tq.MultiSpace++
			}
		}
		if tq.Untrimmed > 0 || tq.MultiSpace > 0 {
			out = append(out, tq)
		}
	}
	return out
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
