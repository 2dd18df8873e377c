// Package resolve turns operator input and page hrefs into fetchable URLs.
package resolve

import (
	"net/url"
	"strings"
)

// Normalize prefixes https:// unless the input already carries an http(s)
// scheme. Nothing else is validated; a bad result fails at fetch time.
func Normalize(input string) string {
	input = strings.TrimSpace(input)
	if strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://") {
		return input
	}
	return "https://" + input
}

// Resolve joins href onto base. Hrefs that already look absolute are
// returned as-is, and any parse failure falls back to the raw href.
func Resolve(base, href string) string {
	if strings.HasPrefix(href, "http") {
		return href
	}
	baseURL, err := url.Parse(base)
	if err != nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return baseURL.ResolveReference(ref).String()
}
