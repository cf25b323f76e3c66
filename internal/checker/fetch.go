package checker

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	consts "github.com/LXGIC-Studios/cookie-check/internal/constants"
)

// FetchResult carries the parts of the HTTP exchange the audit needs:
// the final URL, the final status code, every raw Set-Cookie header
// instance, and whether the final request used a secure transport.
type FetchResult struct {
	URL             string
	StatusCode      int
	SetCookies      []string
	SecureTransport bool
}

// Fetcher performs the single GET used to collect Set-Cookie headers.
type Fetcher struct {
	Timeout         time.Duration
	FollowRedirects bool
	MaxRedirects    int
	Headers         map[string]string
}

// politeTransport rate-limits outgoing requests, including redirect
// hops, so a bounced chain never hammers the target.
type politeTransport struct {
	base    http.RoundTripper
	limiter *rate.Limiter
}

func (t *politeTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := t.limiter.Wait(req.Context()); err != nil {
		return nil, err
	}
	return t.base.RoundTrip(req)
}

// Fetch issues a GET against target and extracts the response data the
// scorer needs. Redirects are followed via the Location header up to
// MaxRedirects when enabled; when disabled, the first response is
// returned as-is so its Set-Cookie headers can still be audited.
func (f *Fetcher) Fetch(ctx context.Context, target string) (*FetchResult, error) {
	timeout := f.Timeout
	if timeout <= 0 {
		timeout = consts.DefaultTimeout
	}
	maxRedirects := f.MaxRedirects
	if maxRedirects <= 0 {
		maxRedirects = consts.DefaultMaxRedirects
	}

	client := &http.Client{
		Timeout: timeout,
		Transport: &politeTransport{
			base: &http.Transport{
				TLSClientConfig: &tls.Config{InsecureSkipVerify: false},
			},
			limiter: rate.NewLimiter(rate.Limit(consts.RequestsPerSecond), 1),
		},
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if !f.FollowRedirects {
				return http.ErrUseLastResponse
			}
			if len(via) >= maxRedirects {
				return fmt.Errorf("stopped after %d redirects", maxRedirects)
			}
			return nil
		},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	for name, value := range f.Headers {
		req.Header.Set(name, value)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	// Discard response body - ignore errors as this is just cleanup
	_, _ = io.Copy(io.Discard, resp.Body)

	final := resp.Request.URL
	return &FetchResult{
		URL:             final.String(),
		StatusCode:      resp.StatusCode,
		SetCookies:      append([]string(nil), resp.Header["Set-Cookie"]...),
		SecureTransport: isSecureURL(final),
	}, nil
}

// isSecureURL reports whether a request URL used a secure transport.
func isSecureURL(u *url.URL) bool {
	return u != nil && u.Scheme == "https"
}
