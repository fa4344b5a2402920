package quality

// Penalty weights for the composite quality score. The score starts at 100
// and loses weight×percentage points per concern:
//
//	score = 100 − 1.5·missing% − 1.0·duplicate% − 0.5·meanOutlier%
//
// clamped to [0,100]. Missingness weighs heaviest (lost information cannot
// be recovered), duplication next, outliers lightest (often legitimate
// extreme values). These constants are part of the report contract; changing
// them changes every score.
const (
	MissingPenaltyWeight   = 1.5
	DuplicatePenaltyWeight = 1.0
	OutlierPenaltyWeight   = 0.5
)

func qualityScore(missingPct, duplicatePct, outlierPct float64) float64 {
	score := 100 -
		MissingPenaltyWeight*missingPct -
		DuplicatePenaltyWeight*duplicatePct -
		OutlierPenaltyWeight*outlierPct
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func classifyMissing(pct float64) MissingPattern {
	switch {
	case pct == 0:
		return PatternNone
	case pct < 5:
		return PatternFew
	case pct <= 20:
		return PatternModerate
	case pct <= 50:
		return PatternHigh
	default:
		return PatternSevere
	}
}

var patternRank = map[MissingPattern]int{
	PatternNone:     0,
	PatternFew:      1,
	PatternModerate: 2,
	PatternHigh:     3,
	PatternSevere:   4,
}

func classifyOutliers(ratio float64) OutlierSeverity {
	switch {
	case ratio == 0:
		return OutlierNone
	case ratio < 0.05:
		return OutlierLow
	case ratio <= 0.10:
		return OutlierModerate
	default:
		return OutlierHigh
	}
}
