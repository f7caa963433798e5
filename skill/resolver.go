// Package skill derives a skill's name from its documentation site and
// asks a language model for the SKILL.md instruction document.
package skill

import (
	"context"
	"net"
	"net/url"
	"strconv"
	"strings"

	"github.com/fwojciec/docskill"
	"golang.org/x/net/publicsuffix"
)

// DefaultPrefixes are marketing prefixes commonly glued to product names
// in domains, as in getsuperapp.com or trynotion.com.
var DefaultPrefixes = []string{"get", "try", "use", "my", "go", "join", "hey"}

const maxTokenLen = 64

// ExtractToken returns the registrable label of the seed URL's host:
// hub.phantombuster.com gives "phantombuster" and docs.n8n.io gives "n8n".
// IP hosts map to their address with separators replaced by hyphens;
// IPv6 addresses are written out in full first, so [::1] gives
// "0-0-0-0-0-0-0-1".
func ExtractToken(seedURL string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(seedURL))
	if err != nil {
		return "", docskill.Errorf(docskill.EINVALID, "invalid seed URL %q: %v", seedURL, err)
	}
	host := strings.TrimSuffix(strings.ToLower(u.Hostname()), ".")
	if host == "" {
		return "", docskill.Errorf(docskill.EINVALID, "seed URL %q has no host", seedURL)
	}

	var label string
	if ip := net.ParseIP(host); ip != nil {
		label = ipLabel(ip)
	} else {
		label = registrableLabel(strings.TrimPrefix(host, "www."))
	}

	token, ok := docskill.SanitizeToken(label)
	if !ok {
		return "", docskill.Errorf(docskill.EINVALID, "cannot derive a name from host %q", host)
	}
	return token, nil
}

func ipLabel(ip net.IP) string {
	if v4 := ip.To4(); v4 != nil {
		return v4.String()
	}
	v6 := ip.To16()
	groups := make([]string, 8)
	for i := range groups {
		groups[i] = strconv.FormatUint(uint64(v6[2*i])<<8|uint64(v6[2*i+1]), 16)
	}
	return strings.Join(groups, "-")
}

// registrableLabel returns the label immediately before the public suffix.
func registrableLabel(host string) string {
	suffix, _ := publicsuffix.PublicSuffix(host)
	// A host that is itself a suffix (e.g. "localhost") is kept whole.
	rest := strings.TrimSuffix(host, "."+suffix)
	if i := strings.LastIndexByte(rest, '.'); i >= 0 {
		return rest[i+1:]
	}
	return rest
}

// HasMarketingPrefix reports whether token starts with one of prefixes
// followed by a plausible product name: longer than the prefix itself and
// at least three characters.
func HasMarketingPrefix(token string, prefixes []string) bool {
	for _, p := range prefixes {
		if p == "" || !strings.HasPrefix(token, p) {
			continue
		}
		rest := strings.TrimLeft(token[len(p):], "-")
		if len(rest) > len(p) && len(rest) >= 3 {
			return true
		}
	}
	return false
}

// Resolver turns a seed URL into a SkillIdentity.
type Resolver struct {
	// Gateway cleans marketing-prefixed tokens. Nil behaves like
	// docskill.NopGateway.
	Gateway docskill.Gateway

	// Prefixes overrides DefaultPrefixes when non-nil.
	Prefixes []string
}

// Clean asks the gateway to strip a marketing prefix from raw. Tokens
// without a known prefix are returned untouched with no gateway call.
//
// Failures are not fatal: the raw token is returned together with the
// error so the caller can report why cleanup was skipped.
func (r *Resolver) Clean(ctx context.Context, raw string) (string, error) {
	if !HasMarketingPrefix(raw, r.prefixes()) {
		return raw, nil
	}

	gw := r.Gateway
	if gw == nil {
		gw = docskill.NopGateway{}
	}
	resp, err := gw.Send(ctx, &docskill.Request{
		System: cleanupSystemPrompt,
		Prompt: BuildCleanupPrompt(raw),
	})
	if err != nil {
		return raw, err
	}

	token, ok := docskill.SanitizeToken(firstLine(resp.Text))
	if !ok {
		return raw, docskill.Errorf(docskill.EPROVIDER, "name cleanup reply %q has no usable name", resp.Text)
	}
	if len(token) > maxTokenLen {
		return raw, docskill.Errorf(docskill.EPROVIDER, "name cleanup reply is longer than %d characters", maxTokenLen)
	}
	return token, nil
}

// Resolve extracts the domain token from seedURL and cleans it. The only
// error is a seed whose host yields no token; cleanup failures are
// recorded in SkillIdentity.CleanupErr.
func (r *Resolver) Resolve(ctx context.Context, seedURL string) (*docskill.SkillIdentity, error) {
	raw, err := ExtractToken(seedURL)
	if err != nil {
		return nil, err
	}

	token, cleanupErr := r.Clean(ctx, raw)
	id := docskill.NewSkillIdentity(raw, token)
	id.CleanupErr = cleanupErr
	return id, nil
}

func (r *Resolver) prefixes() []string {
	if r.Prefixes != nil {
		return r.Prefixes
	}
	return DefaultPrefixes
}

func firstLine(s string) string {
	s = strings.Trim(strings.TrimSpace(s), "`\"'")
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
