package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/LXGIC-Studios/cookie-check/internal/checker"
)

const (
	jsonPrefix = ""
	jsonIndent = "  "
)

// ScanReport is the full document produced by one run. The JSON field
// names are the tool's machine-readable contract; CI consumers depend on
// them.
type ScanReport struct {
	URL        string                `json:"url"`
	StatusCode int                   `json:"statusCode"`
	Cookies    []checker.CookieAudit `json:"cookies"`
	Summary    checker.Summary       `json:"summary"`
}

// renderJSON writes the report as an indented JSON document.
func renderJSON(w io.Writer, report ScanReport) error {
	b, err := json.MarshalIndent(report, jsonPrefix, jsonIndent)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

// renderText writes the colorized terminal report.
func renderText(w io.Writer, report ScanReport) {
	fmt.Fprintf(w, "%s %s (status %d)\n", colorInfo("Target:"), report.URL, report.StatusCode)

	if len(report.Cookies) == 0 {
		fmt.Fprintln(w, colorWarn("No Set-Cookie headers found."))
		return
	}

	for i, audit := range report.Cookies {
		fmt.Fprintf(w, "\n[%d] %s  grade %s (score %d)\n",
			i+1, cookieLabel(audit.Cookie), formatGradeWithColor(audit.Grade), audit.Score)
		for _, issue := range audit.Issues {
			fmt.Fprintf(w, "  %s %s\n", colorError("!"), issue)
		}
		for _, rec := range audit.Recommendations {
			fmt.Fprintf(w, "  %s %s\n", colorInfo("->"), rec)
		}
		if len(audit.Issues) == 0 {
			fmt.Fprintf(w, "  %s no issues found\n", colorSuccess("ok"))
		}
	}

	fmt.Fprintf(w, "\n%s\n", colorInfo("Summary"))
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Cookies:\t%d\n", report.Summary.Total)
	fmt.Fprintf(tw, "Grades:\tA=%d B=%d C=%d D=%d F=%d\n",
		report.Summary.GradeA, report.Summary.GradeB, report.Summary.GradeC,
		report.Summary.GradeD, report.Summary.GradeF)
	fmt.Fprintf(tw, "Average score:\t%d\n", report.Summary.AverageScore)
	_ = tw.Flush()
}

// cookieLabel names a cookie for its per-cookie heading. Parsed cookies
// may legitimately have an empty name.
func cookieLabel(attrs checker.CookieAttributes) string {
	if attrs.Name == "" {
		return "(unnamed cookie)"
	}
	return attrs.Name
}
