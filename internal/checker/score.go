package checker

import "strings"

const (
	// maxCookieLifetimeSecs is one year; longer-lived cookies are flagged.
	maxCookieLifetimeSecs = 365 * 24 * 3600
	// maxCookieValueBytes flags values pushing the practical header size limit.
	maxCookieValueBytes = 4096

	securePrefix = "__Secure-"
	hostPrefix   = "__Host-"
)

// CookieAudit is the scored result for a single cookie. Issues and
// recommendations are ordered by rule evaluation order so output stays
// reproducible run to run.
type CookieAudit struct {
	Cookie          CookieAttributes `json:"cookie"`
	Score           int              `json:"score"`
	Grade           string           `json:"grade"`
	Issues          []string         `json:"issues"`
	Recommendations []string         `json:"recommendations"`
}

// cookieRule is one scoring heuristic. Check returns the points to
// deduct plus the findings to report; a zero deduction with no issues
// means the rule did not fire. Informational issues may carry no
// recommendation.
type cookieRule struct {
	Name  string
	Check func(attrs CookieAttributes, secureTransport bool) (int, []string, []string)
}

// cookieRules is evaluated in order. Deductions are additive, so the
// order only fixes the issue ordering, not the final score.
var cookieRules = []cookieRule{
	{Name: "httponly", Check: checkHTTPOnly},
	{Name: "secure-flag", Check: checkSecureFlag},
	{Name: "samesite", Check: checkSameSite},
	{Name: "path", Check: checkCookiePath},
	{Name: "lifetime", Check: checkLifetime},
	{Name: "secure-prefix", Check: checkSecurePrefix},
	{Name: "host-prefix", Check: checkHostPrefix},
	{Name: "value-size", Check: checkValueSize},
}

// ScoreCookie evaluates every rule against the cookie and produces its
// audit. The score starts at 100, each fired rule subtracts its
// deduction, and the result is clamped to [0,100] before grading. The
// function is pure: identical input always yields an identical audit.
func ScoreCookie(attrs CookieAttributes, secureTransport bool) CookieAudit {
	audit := CookieAudit{
		Cookie:          attrs,
		Issues:          []string{},
		Recommendations: []string{},
	}

	deducted := 0
	for _, rule := range cookieRules {
		points, issues, recommendations := rule.Check(attrs, secureTransport)
		deducted += points
		audit.Issues = append(audit.Issues, issues...)
		audit.Recommendations = append(audit.Recommendations, recommendations...)
	}

	audit.Score = clampScore(100 - deducted)
	audit.Grade = gradeForScore(audit.Score)
	return audit
}

func checkHTTPOnly(attrs CookieAttributes, _ bool) (int, []string, []string) {
	if attrs.HTTPOnly {
		return 0, nil, nil
	}
	return 25,
		[]string{"Missing HttpOnly flag; the cookie is readable by client-side scripts"},
		[]string{"Add the HttpOnly attribute to block script access"}
}

func checkSecureFlag(attrs CookieAttributes, secureTransport bool) (int, []string, []string) {
	if attrs.Secure {
		return 0, nil, nil
	}
	if secureTransport {
		return 25,
			[]string{"Missing Secure flag on a cookie served over HTTPS"},
			[]string{"Add the Secure attribute so the cookie is never sent in cleartext"}
	}
	return 20,
		[]string{"Missing Secure flag and the response was served over cleartext HTTP"},
		[]string{"Serve the site over HTTPS", "Add the Secure attribute"}
}

func checkSameSite(attrs CookieAttributes, _ bool) (int, []string, []string) {
	if attrs.SameSite == nil {
		return 20,
			[]string{"No SameSite attribute; cross-site request behavior is left to browser defaults"},
			[]string{"Set SameSite=Lax or SameSite=Strict"}
	}
	if !strings.EqualFold(*attrs.SameSite, "None") {
		return 0, nil, nil
	}
	deduction := 5
	issues := []string{"SameSite=None permits cross-site requests (CSRF risk)"}
	if !attrs.Secure {
		deduction += 15
		issues = append(issues, "SameSite=None requires the Secure attribute")
	}
	return deduction, issues,
		[]string{"Prefer SameSite=Lax unless cross-site delivery is required"}
}

// checkCookiePath fires only when Path is fully absent; an explicit
// Path=/ is fine.
func checkCookiePath(attrs CookieAttributes, _ bool) (int, []string, []string) {
	if attrs.Path != nil {
		return 0, nil, nil
	}
	return 5,
		[]string{"No Path attribute set"},
		[]string{"Set an explicit Path to scope the cookie"}
}

func checkLifetime(attrs CookieAttributes, _ bool) (int, []string, []string) {
	if attrs.MaxAge == nil && attrs.Expires == nil {
		return 2,
			[]string{"Session cookie (no Max-Age or Expires); cleared when the browser closes"},
			nil
	}
	if attrs.MaxAge != nil && *attrs.MaxAge > maxCookieLifetimeSecs {
		return 5,
			[]string{"Cookie lifetime exceeds one year"},
			[]string{"Shorten the cookie lifetime"}
	}
	return 0, nil, nil
}

func checkSecurePrefix(attrs CookieAttributes, _ bool) (int, []string, []string) {
	if !strings.HasPrefix(attrs.Name, securePrefix) || attrs.Secure {
		return 0, nil, nil
	}
	return 10, []string{"__Secure- prefixed cookie is missing the Secure attribute"}, nil
}

// checkHostPrefix validates the __Host- naming convention: Secure set,
// Path exactly "/", no Domain. An absent Path counts as a mismatch even
// though omission often implies root scope.
func checkHostPrefix(attrs CookieAttributes, _ bool) (int, []string, []string) {
	if !strings.HasPrefix(attrs.Name, hostPrefix) {
		return 0, nil, nil
	}
	deduction := 0
	var issues []string
	if !attrs.Secure {
		deduction += 10
		issues = append(issues, "__Host- prefixed cookie is missing the Secure attribute")
	}
	if attrs.Path == nil || *attrs.Path != "/" {
		deduction += 5
		issues = append(issues, "__Host- prefixed cookie must set Path=/")
	}
	if attrs.Domain != nil {
		deduction += 5
		issues = append(issues, "__Host- prefixed cookie must not set a Domain")
	}
	return deduction, issues, nil
}

func checkValueSize(attrs CookieAttributes, _ bool) (int, []string, []string) {
	if len(attrs.Value) <= maxCookieValueBytes {
		return 0, nil, nil
	}
	return 5,
		[]string{"Cookie value exceeds 4096 bytes"},
		[]string{"Move large payloads server-side and keep only an identifier in the cookie"}
}

// gradeForScore maps a clamped score to its letter grade. Lower bounds
// are inclusive: a score of exactly 90 is an A.
func gradeForScore(score int) string {
	switch {
	case score >= 90:
		return "A"
	case score >= 75:
		return "B"
	case score >= 60:
		return "C"
	case score >= 40:
		return "D"
	default:
		return "F"
	}
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// gradeRank orders grades for threshold comparisons, worst first.
var gradeRank = map[string]int{"F": 0, "D": 1, "C": 2, "B": 3, "A": 4}

// ValidGrade reports whether s names a known letter grade.
func ValidGrade(s string) bool {
	_, ok := gradeRank[s]
	return ok
}

// GradeAtLeast reports whether grade ranks at or above min (F<D<C<B<A).
func GradeAtLeast(grade, min string) bool {
	return gradeRank[grade] >= gradeRank[min]
}
