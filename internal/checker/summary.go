package checker

import "math"

// Summary aggregates grades across every audited cookie in a response.
type Summary struct {
	Total        int `json:"total"`
	GradeA       int `json:"gradeA"`
	GradeB       int `json:"gradeB"`
	GradeC       int `json:"gradeC"`
	GradeD       int `json:"gradeD"`
	GradeF       int `json:"gradeF"`
	AverageScore int `json:"averageScore"`
}

// Summarize computes per-grade counts and the average score, rounded to
// the nearest integer. An empty audit list yields a zero summary.
func Summarize(audits []CookieAudit) Summary {
	summary := Summary{Total: len(audits)}
	if len(audits) == 0 {
		return summary
	}

	scoreTotal := 0
	for _, audit := range audits {
		scoreTotal += audit.Score
		switch audit.Grade {
		case "A":
			summary.GradeA++
		case "B":
			summary.GradeB++
		case "C":
			summary.GradeC++
		case "D":
			summary.GradeD++
		case "F":
			summary.GradeF++
		}
	}

	summary.AverageScore = int(math.Round(float64(scoreTotal) / float64(len(audits))))
	return summary
}
