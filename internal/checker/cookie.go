package checker

import (
	"strconv"
	"strings"
)

// CookieAttributes is the structured form of a single Set-Cookie header.
// Optional attributes use pointers so "not set" stays distinct from an
// empty or zero value; several scoring rules branch on presence.
type CookieAttributes struct {
	Name     string  `json:"name"`
	Value    string  `json:"value"`
	HTTPOnly bool    `json:"httpOnly"`
	Secure   bool    `json:"secure"`
	SameSite *string `json:"sameSite,omitempty"`
	Path     *string `json:"path,omitempty"`
	Domain   *string `json:"domain,omitempty"`
	Expires  *string `json:"expires,omitempty"`
	MaxAge   *int    `json:"maxAge,omitempty"`
}

// ParseSetCookie converts one raw Set-Cookie header value into a
// CookieAttributes. It never fails: headers in the wild are frequently
// non-conformant and the tool's job is to report on them, not reject
// them. Unrecognized attribute segments are ignored, attribute keys match
// case-insensitively, and attribute values are kept verbatim. When an
// attribute repeats, the last occurrence wins.
func ParseSetCookie(raw string) CookieAttributes {
	segments := strings.Split(raw, ";")

	attrs := CookieAttributes{}
	attrs.Name, attrs.Value = splitPair(strings.TrimSpace(segments[0]))

	for _, segment := range segments[1:] {
		key, val := splitPair(strings.TrimSpace(segment))
		switch strings.ToLower(key) {
		case "httponly":
			attrs.HTTPOnly = true
		case "secure":
			attrs.Secure = true
		case "samesite":
			attrs.SameSite = &val
		case "path":
			attrs.Path = &val
		case "domain":
			attrs.Domain = &val
		case "expires":
			attrs.Expires = &val
		case "max-age":
			// Non-numeric Max-Age degrades to 0 rather than failing.
			seconds, err := strconv.Atoi(val)
			if err != nil {
				seconds = 0
			}
			attrs.MaxAge = &seconds
		}
	}

	return attrs
}

// splitPair splits a trimmed segment on the first '=' only, so values
// that themselves contain '=' (base64 payloads, Expires dates with
// colons) survive verbatim. A segment without '=' is all key.
func splitPair(segment string) (string, string) {
	if idx := strings.Index(segment, "="); idx >= 0 {
		return segment[:idx], segment[idx+1:]
	}
	return segment, ""
}
