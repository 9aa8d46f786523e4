package common

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	ErrEmptySlug = errors.New("slug cannot be empty")
	nonSlugChars = regexp.MustCompile(`[^\p{Hangul}a-z0-9]+`)
)

// Slugify lowercases input and collapses everything that is not a Hangul
// syllable, an ASCII letter or a digit into single hyphens. Academy names are
// mostly Korean, so Hangul is kept rather than transliterated.
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

// WithSuffix returns the n-th collision candidate for slug. n < 2 returns the
// slug unchanged.
func WithSuffix(slug string, n int) string {
	if n < 2 {
		return slug
	}
	return fmt.Sprintf("%s-%d", slug, n)
}

func slugify(s string) string {
	lower := strings.ToLower(strings.TrimSpace(s))
	slug := nonSlugChars.ReplaceAllString(lower, "-")
	return strings.Trim(slug, "-")
}
