package services

import (
	"math"

	"github.com/SAP-F-2025/student-service/internal/models"
)

// GradePoint maps a mark total to a grade point on the fixed five-tier
// scale. Total over all integers: out-of-range and negative input falls
// through to 0.0, marks at or above 85 cap at 4.0.
func GradePoint(totalMarks int) float64 {
	switch {
	case totalMarks >= 85:
		return 4.0
	case totalMarks >= 75:
		return 3.5
	case totalMarks >= 65:
		return 3.0
	case totalMarks >= 55:
		return 2.5
	case totalMarks >= 50:
		return 2.0
	default:
		return 0.0
	}
}

// meanGradePoint is the one shared aggregation behind GPA, CGPA and the
// dashboard average: arithmetic mean of grade points rounded to two
// decimals. Returns 0.0 for an empty set; callers that must treat empty as
// an error check before calling.
func meanGradePoint(totals []int) float64 {
	if len(totals) == 0 {
		return 0.0
	}
	var sum float64
	for _, t := range totals {
		sum += GradePoint(t)
	}
	return round2(sum / float64(len(totals)))
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

func resultTotals(results []*models.Result) []int {
	totals := make([]int, len(results))
	for i, r := range results {
		totals[i] = r.TotalMarks
	}
	return totals
}
