package slug

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// Make converts free-form text into a URL-safe slug: lowercase, alphanumerics
// and single hyphens only, no leading or trailing hyphen.
func Make(text string) string {
	var b strings.Builder
	lastHyphen := true // swallow leading separators

	for _, r := range strings.ToLower(text) {
		switch {
		case unicode.IsLetter(r) && r < 128, unicode.IsDigit(r) && r < 128:
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

// WithSuffix disambiguates a slug that already exists in the store by
// appending the current unix timestamp.
func WithSuffix(s string) string {
	return fmt.Sprintf("%s-%d", s, time.Now().Unix())
}
