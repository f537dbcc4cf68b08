package seo

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Slugify folds accents, lower-cases and joins alphanumeric runs with "-"
func Slugify(parts ...string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

	var b strings.Builder
	lastDash := true
	for _, part := range parts {
		folded, _, err := transform.String(t, part)
		if err != nil {
			folded = part
		}
		for _, r := range strings.ToLower(folded) {
			if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
				b.WriteRune(r)
				lastDash = false
				continue
			}
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
		if !lastDash {
			b.WriteByte('-')
			lastDash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// PageSlug builds the landing page slug for a service in a city, e.g. tax-preparation-san-jose-ca
func PageSlug(service, city, state string) string {
	return Slugify(service, city, state)
}

// TranslatedSlug appends a language suffix to a slug
func TranslatedSlug(slug, lang string) string {
	return slug + "-" + Slugify(lang)
}
