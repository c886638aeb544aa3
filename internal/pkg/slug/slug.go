package slug

import (
	"fmt"
	"strings"
)

// Make derives a URL-safe slug from a title: lowercase, alphanumeric
// and hyphen only, runs of other characters collapse into a single
// hyphen, no leading or trailing hyphen.
func Make(title string) string {
	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen

	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}

	return strings.TrimRight(b.String(), "-")
}

// WithSuffix appends a numeric suffix used when probing for a free slug.
func WithSuffix(base string, n int) string {
	return fmt.Sprintf("%s-%d", base, n)
}

// Unique probes exists until it finds a slug not yet taken, starting
// with the plain slug of the title and then numbered variants.
func Unique(title string, exists func(slug string) (bool, error)) (string, error) {
	base := Make(title)
	if base == "" {
		base = "untitled"
	}

	candidate := base
	for n := 2; ; n++ {
		taken, err := exists(candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		candidate = WithSuffix(base, n)
	}
}
