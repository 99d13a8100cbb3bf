package value

import (
	"net/url"
	"regexp"
	"strings"
)

var (
	slashRunRe      = regexp.MustCompile(`([^/])/{2,}`)
	leadingSlashRe  = regexp.MustCompile(`^/+`)
	trailingSlashRe = regexp.MustCompile(`/+$`)
)

// EscRe escapes regular expression metacharacters.
func EscRe(s string) string {
	return regexp.QuoteMeta(s)
}

// EscURL percent-encodes s for use as a single URL component.
func EscURL(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// JoinURL joins URL parts with single slashes, dropping empty parts.
func JoinURL(parts ...string) string {
	out := make([]string, 0, len(parts))

	for _, s := range parts {
		if s == "" {
			continue
		}

		// the first part may carry a scheme such as http://
		if len(out) > 0 {
			s = slashRunRe.ReplaceAllString(s, "$1/")
			s = leadingSlashRe.ReplaceAllString(s, "")
		}
		s = trailingSlashRe.ReplaceAllString(s, "")

		if s != "" {
			out = append(out, s)
		}
	}

	return strings.Join(out, "/")
}
