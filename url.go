package jwnews

import (
	"net/url"
	"strings"
)

// TrustedHost is the only registrable domain articles may be read from.
// Subdomains of the trusted host are allowed, lookalike hosts that merely
// contain it are not.
const TrustedHost = "jw.org"

// ValidateURL checks that rawURL is an absolute https URL on the trusted
// domain. It returns an EINVALID error describing the first failed check.
func ValidateURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return Errorf(EINVALID, "invalid URL: %v", err)
	}
	if u.Scheme != "https" {
		return Errorf(EINVALID, "Only https URLs are allowed")
	}
	host := strings.ToLower(u.Hostname())
	if host != TrustedHost && !strings.HasSuffix(host, "."+TrustedHost) {
		return Errorf(EINVALID, "Only jw.org URLs are allowed")
	}
	return nil
}
