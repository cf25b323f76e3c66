package cmd

import "fmt"

// MissingURLError indicates the positional target URL was not provided.
type MissingURLError struct{}

func (e *MissingURLError) Error() string {
	return "a target URL is required (e.g. cookie-check example.com)"
}

// InvalidGradeError reports an unusable --min-grade value.
type InvalidGradeError struct {
	Grade string
}

func (e *InvalidGradeError) Error() string {
	return fmt.Sprintf("invalid grade %q (must be one of A, B, C, D, F)", e.Grade)
}

// GradeThresholdError signals that at least one cookie graded below the
// configured minimum while --ci was set.
type GradeThresholdError struct {
	MinGrade string
	Failing  int
}

func (e *GradeThresholdError) Error() string {
	if e.Failing == 1 {
		return fmt.Sprintf("1 cookie graded below %s", e.MinGrade)
	}
	return fmt.Sprintf("%d cookies graded below %s", e.Failing, e.MinGrade)
}
