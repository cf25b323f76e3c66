package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/LXGIC-Studios/cookie-check/internal/checker"
)

// runScan executes the full audit for the root command: fetch the
// target, parse every Set-Cookie header, score each cookie, and render
// the report. Duplicate cookie names are audited independently in header
// order, never merged.
func runScan(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return &MissingURLError{}
	}
	cfg := cliConfig.Scan

	minGrade := strings.ToUpper(strings.TrimSpace(cfg.MinGrade))
	if !checker.ValidGrade(minGrade) {
		return &InvalidGradeError{Grade: cfg.MinGrade}
	}

	headers, err := parseHeaderFlags(cfg.Headers)
	if err != nil {
		return err
	}

	target := checker.NormalizeTarget(args[0])
	follow := cfg.FollowRedirects && !cfg.NoRedirects

	logger.Infow("fetching target",
		"url", target,
		"follow_redirects", follow,
		"timeout_ms", cfg.TimeoutMillis,
	)

	fetcher := &checker.Fetcher{
		Timeout:         time.Duration(cfg.TimeoutMillis) * time.Millisecond,
		FollowRedirects: follow,
		MaxRedirects:    cfg.MaxRedirects,
		Headers:         headers,
	}

	result, err := fetcher.Fetch(cmd.Context(), target)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", target, err)
	}

	logger.Infow("response received",
		"status", result.StatusCode,
		"set_cookie_headers", len(result.SetCookies),
		"secure_transport", result.SecureTransport,
	)

	audits := make([]checker.CookieAudit, 0, len(result.SetCookies))
	for _, raw := range result.SetCookies {
		attrs := checker.ParseSetCookie(raw)
		audits = append(audits, checker.ScoreCookie(attrs, result.SecureTransport))
	}

	report := ScanReport{
		URL:        result.URL,
		StatusCode: result.StatusCode,
		Cookies:    audits,
		Summary:    checker.Summarize(audits),
	}

	if cfg.JSONOutput {
		if err := renderJSON(cmd.OutOrStdout(), report); err != nil {
			return err
		}
	} else {
		renderText(cmd.OutOrStdout(), report)
	}

	if cfg.CIMode {
		failing := 0
		for _, audit := range audits {
			if !checker.GradeAtLeast(audit.Grade, minGrade) {
				failing++
			}
		}
		if failing > 0 {
			return &GradeThresholdError{MinGrade: minGrade, Failing: failing}
		}
	}

	return nil
}

// parseHeaderFlags splits repeated --header values on the first colon.
func parseHeaderFlags(raw []string) (map[string]string, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	headers := make(map[string]string, len(raw))
	for _, h := range raw {
		name, value, ok := strings.Cut(h, ":")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid header %q (expected \"Name: Value\")", h)
		}
		headers[name] = strings.TrimSpace(value)
	}
	return headers, nil
}
