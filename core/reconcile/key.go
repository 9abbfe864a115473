package reconcile

import "regexp"

var authorityPrefix = regexp.MustCompile(`^https?://[^/]+`)

// NormalizeKey strips a leading scheme://host from a record link so that the
// same item served by two hosts yields the same key. Path and query are kept
// verbatim; links without a scheme are returned unchanged.
func NormalizeKey(link string) string {
	return authorityPrefix.ReplaceAllLiteralString(link, "")
}
