package cmd

import "github.com/fatih/color"

var (
	colorSuccess = color.New(color.FgGreen).SprintFunc()
	colorInfo    = color.New(color.FgCyan).SprintFunc()
	colorWarn    = color.New(color.FgYellow).SprintFunc()
	colorError   = color.New(color.FgRed).SprintFunc()
)

func formatGradeWithColor(grade string) string {
	switch grade {
	case "A":
		return colorSuccess(grade)
	case "B":
		return colorInfo(grade)
	case "C":
		return colorWarn(grade)
	case "D", "F":
		return colorError(grade)
	default:
		return grade
	}
}
