// Package constants centralizes defaults shared across commands.
package constants

import "time"

const (
	// DefaultTimeoutMillis is the flag-facing default for --timeout.
	DefaultTimeoutMillis = 10000
	// DefaultTimeout bounds a fetch, including redirect hops.
	DefaultTimeout = DefaultTimeoutMillis * time.Millisecond
	// DefaultMaxRedirects bounds the Location-following chain.
	DefaultMaxRedirects = 5
	// RequestsPerSecond paces outgoing requests across redirect hops.
	RequestsPerSecond = 4
	// DefaultMinGrade is the gate applied when --ci is set.
	DefaultMinGrade = "C"
)
