// Package links normalizes the free-text URLs organizers type into the CMS.
package links

import (
	"net/url"
	"strings"
)

// bareDomains get a "www." inserted when typed without scheme or subdomain.
var bareDomains = []string{"linkedin.com", "instagram.com"}

var instagramHosts = []string{"instagram.com", "instagr.am"}

// Normalize turns user-entered text into an absolute URL.
// It returns "" when the input is empty or blank. Anything that is not
// already http(s) gets an https:// prefix, even text that is not a URL.
func Normalize(raw string) string {
	u := strings.TrimSpace(raw)
	if u == "" {
		return ""
	}

	if strings.HasPrefix(u, "http://") || strings.HasPrefix(u, "https://") {
		return u
	}
	if strings.HasPrefix(u, "www.") {
		return "https://" + u
	}
	for _, d := range bareDomains {
		if strings.HasPrefix(u, d) {
			return "https://www." + u
		}
	}
	return "https://" + u
}

// IsInstagram reports whether raw normalizes to an Instagram URL.
func IsInstagram(raw string) bool {
	return hostMatches(Normalize(raw), instagramHosts...)
}

// IsLinkedIn reports whether raw normalizes to a LinkedIn URL.
func IsLinkedIn(raw string) bool {
	return hostMatches(Normalize(raw), "linkedin.com")
}

// hostMatches checks the host against each domain and its subdomains
func hostMatches(normalized string, domains ...string) bool {
	if normalized == "" {
		return false
	}
	u, err := url.Parse(normalized)
	if err != nil {
		return false
	}
	host := strings.ToLower(u.Hostname())
	for _, d := range domains {
		if host == d || strings.HasSuffix(host, "."+d) {
			return true
		}
	}
	return false
}
