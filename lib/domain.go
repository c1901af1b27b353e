package lib

import (
	"net/url"
	"strings"
)

// DeriveDomain extracts the host from a product URL for display and
// per-retailer grouping. The original URL takes precedence over the
// normalized one when both are present.
func DeriveDomain(originalURL, productURL string) string {
	src := originalURL
	if src == "" {
		src = productURL
	}
	if src == "" {
		return ""
	}

	u, err := url.Parse(src)
	if err != nil || u.Host == "" {
		return ""
	}

	return strings.TrimPrefix(u.Hostname(), "www.")
}
