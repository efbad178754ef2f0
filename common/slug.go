package common

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrEmptySlug = errors.New("slug cannot be empty")
	nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)
)

func Slugify(input, fallback string) (string, error) {
	slug := slugify(input)
	if slug == "" {
		slug = slugify(fallback)
	}
	if slug == "" {
		return "", ErrEmptySlug
	}
	return slug, nil
}

// SubdomainSlug extracts the organization slug from a request host such as
// "hope-shelter.givebase.org:443" given the base domain "givebase.org".
// It returns false for the bare base domain or hosts outside it.
func SubdomainSlug(host, baseDomain string) (string, bool) {
	host = strings.ToLower(strings.TrimSpace(host))
	if i := strings.LastIndex(host, ":"); i != -1 && !strings.Contains(host[i:], "]") {
		host = host[:i]
	}
	baseDomain = strings.ToLower(strings.Trim(baseDomain, ". "))
	if baseDomain == "" || !strings.HasSuffix(host, "."+baseDomain) {
		return "", false
	}

	sub := strings.TrimSuffix(host, "."+baseDomain)
	// Only the label directly under the base domain identifies the tenant.
	if i := strings.LastIndex(sub, "."); i != -1 {
		sub = sub[i+1:]
	}
	slug := slugify(sub)
	if slug == "" || slug == "www" {
		return "", false
	}
	return slug, true
}

func slugify(s string) string {
	lower := strings.ToLower(strings.TrimSpace(s))
	slug := nonSlugChars.ReplaceAllString(lower, "-")
	return strings.Trim(slug, "-")
}
