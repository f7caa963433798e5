package crawl

import (
	"net/url"
	"strings"

	"github.com/fwojciec/docskill"
)

// Scope parses the seed URL and returns the host that bounds the crawl.
// A seed that is not an absolute http(s) URL is an EINVALID error.
func Scope(seedURL string) (string, error) {
	u, err := ParseSeed(seedURL)
	if err != nil {
		return "", err
	}
	return u.Host, nil
}

// ParseSeed parses and normalizes the seed URL.
func ParseSeed(seedURL string) (*url.URL, error) {
	u, err := url.Parse(strings.TrimSpace(seedURL))
	if err != nil {
		return nil, docskill.Errorf(docskill.EINVALID, "invalid seed URL %q: %v", seedURL, err)
	}
	if !isHTTP(u.Scheme) {
		return nil, docskill.Errorf(docskill.EINVALID, "seed URL %q must use http or https", seedURL)
	}
	if u.Host == "" {
		return nil, docskill.Errorf(docskill.EINVALID, "seed URL %q has no host", seedURL)
	}
	return canonicalize(u), nil
}

// Normalize resolves href against base and strips the fragment.
// It returns false for links that should be silently dropped: non-HTTP
// schemes (mailto:, javascript:, tel:, data:), fragment-only anchors and
// unparsable hrefs.
func Normalize(href string, base *url.URL) (*url.URL, bool) {
	href = strings.TrimSpace(href)
	if href == "" || strings.HasPrefix(href, "#") {
		return nil, false
	}

	ref, err := url.Parse(href)
	if err != nil {
		return nil, false
	}
	resolved := base.ResolveReference(ref)
	if !isHTTP(resolved.Scheme) || resolved.Host == "" {
		return nil, false
	}
	return canonicalize(resolved), true
}

// Accept reports whether u is within the crawl scope.
// Subdomains are different hosts: docs.example.com does not accept
// links to example.com or api.docs.example.com.
func Accept(u *url.URL, scopeHost string, allDomains bool) bool {
	if allDomains {
		return true
	}
	return u.Host == scopeHost
}

func canonicalize(u *url.URL) *url.URL {
	c := *u
	c.Scheme = strings.ToLower(c.Scheme)
	c.Host = strings.ToLower(c.Host)
	c.Fragment = ""
	c.RawFragment = ""
	c.User = nil
	if c.Path == "" {
		c.Path = "/"
		c.RawPath = ""
	}
	return &c
}

func isHTTP(scheme string) bool {
	scheme = strings.ToLower(scheme)
	return scheme == "http" || scheme == "https"
}
