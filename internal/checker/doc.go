// Package checker holds the cookie-check core: parsing, scoring, and
// the single-target fetch that feeds them.
//
// Architecture overview:
//
//   - ParseSetCookie turns one raw Set-Cookie header value into a
//     CookieAttributes record. It is total: any input produces some
//     record, since the tool's job is to audit imperfect real-world
//     headers, not reject them.
//   - ScoreCookie folds an ordered table of scoring rules over a
//     CookieAttributes (plus the transport-security flag) and produces a
//     CookieAudit with a clamped 0-100 score, an A-F grade, and ordered
//     issue/recommendation lists.
//   - Fetcher performs the single GET (bounded redirect chain, timeout,
//     extra request headers, politeness rate limit) and reports the raw
//     Set-Cookie headers plus whether the final hop was HTTPS.
//   - Summarize aggregates audits into per-grade counts and an average
//     score for the report document.
//
// Parser and scorer are pure, synchronous functions with no shared
// state; all I/O lives in Fetcher so cmd/ stays thin glue.
package checker
