package checker

import (
	"net/url"
	"strings"
)

// NormalizeTarget turns a user-supplied target into a full URL suitable
// for fetching. Handles the common input shapes:
//   - example.com
//   - example.com:8443/login
//   - http://example.com
//   - https://example.com/path
//
// Targets without an http(s) scheme are assumed to be https.
func NormalizeTarget(target string) string {
	target = strings.TrimSpace(target)

	parsed, err := url.Parse(target)

	// A bare "host:port" or "host/path" parses without an http(s) scheme
	// (or fails outright); prepend https:// and parse again.
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		parsed, err = url.Parse("https://" + target)
		if err != nil {
			return "https://" + target
		}
	}

	return parsed.String()
}
