package crawl

import (
	"strconv"
	"strings"
)

const (
	maxFilenameLen  = 100
	minFilenameTrim = 50
	maxPathSegments = 3
)

// noiseSegments are path segments that carry no information about the
// page itself.
var noiseSegments = map[string]bool{
	"docs":          true,
	"documentation": true,
	"reference":     true,
	"guide":         true,
	"api-reference": true,
	"en":            true,
	"v1":            true,
	"v2":            true,
	"v3":            true,
}

var pageExtensions = []string{".html", ".htm", ".php", ".aspx", ".asp"}

// DeriveFilename builds a resource filename from a URL path.
// The result always ends in ".md" and is never a member of existing;
// collisions get a numeric suffix starting at 2. The caller is
// responsible for adding the result to existing.
func DeriveFilename(urlPath string, existing map[string]bool) string {
	base := filenameBase(urlPath)

	name := base + ".md"
	for i := 2; existing[name]; i++ {
		name = base + "-" + strconv.Itoa(i) + ".md"
	}
	return name
}

func filenameBase(urlPath string) string {
	var segments []string
	for _, s := range strings.Split(urlPath, "/") {
		if s != "" {
			segments = append(segments, s)
		}
	}

	kept := make([]string, 0, len(segments))
	for _, s := range segments {
		if !noiseSegments[strings.ToLower(s)] {
			kept = append(kept, s)
		}
	}
	if len(kept) == 0 && len(segments) > 0 {
		kept = segments[len(segments)-1:]
	}
	if len(kept) > maxPathSegments {
		kept = kept[len(kept)-maxPathSegments:]
	}

	parts := make([]string, 0, len(kept))
	for _, s := range kept {
		if slug := slugify(stripExtension(s)); slug != "" {
			parts = append(parts, slug)
		}
	}

	name := strings.Join(parts, "-")
	if len(name) > maxFilenameLen {
		name = name[:maxFilenameLen]
		if i := strings.LastIndexByte(name, '-'); i > minFilenameTrim {
			name = name[:i]
		}
		name = strings.TrimRight(name, "-")
	}
	if name == "" {
		return "index"
	}
	return name
}

func stripExtension(segment string) string {
	lower := strings.ToLower(segment)
	for _, ext := range pageExtensions {
		if strings.HasSuffix(lower, ext) {
			return segment[:len(segment)-len(ext)]
		}
	}
	return segment
}

// slugify lowercases s and collapses every run of characters outside
// [a-z0-9] into a single hyphen.
func slugify(s string) string {
	var b strings.Builder
	pendingHyphen := false
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}
	return b.String()
}
