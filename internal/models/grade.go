package models

// Grade is a letter grade on the institution's ten-point scale.
type Grade string

// Letter grades, best first.
const (
	GradeS Grade = "S"
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
	GradeE Grade = "E"
	GradeF Grade = "F"
)

var gradePoints = map[Grade]int{
	GradeS: 10,
	GradeA: 9,
	GradeB: 8,
	GradeC: 7,
	GradeD: 6,
	GradeE: 5,
	GradeF: 0,
}

var gradeDescriptions = map[Grade]string{
	GradeS: "Outstanding",
	GradeA: "Excellent",
	GradeB: "Very Good",
	GradeC: "Good",
	GradeD: "Average",
	GradeE: "Pass",
	GradeF: "Fail",
}

// Points returns the quality-point value used for GPA computation.
func (g Grade) Points() int {
	return gradePoints[g]
}

// Description returns the human-readable label for the grade.
func (g Grade) Description() string {
	return gradeDescriptions[g]
}

// GradeFromScore maps a numeric score to a letter grade. The thresholds
// are open-ended at both extremes: scores below 40 (including negative
// values) map to F and anything at or above 90 maps to S. Callers that
// need a hard 0-100 range must validate before calling.
func GradeFromScore(score float64) Grade {
	switch {
	case score >= 90:
		return GradeS
	case score >= 80:
		return GradeA
	case score >= 70:
		return GradeB
	case score >= 60:
		return GradeC
	case score >= 50:
		return GradeD
	case score >= 40:
		return GradeE
	default:
		return GradeF
	}
}
