package utils

import (
	"strings"
	"unicode"
)

// Slugify lower-cases s and joins runs of letters and digits with single dashes.
// "  Best Coffee in Town! " -> "best-coffee-in-town". Slashes are kept so nested
// paths such as "blog/first-post" survive.
func Slugify(s string) string {
	var sb strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if dash && sb.Len() > 0 {
				last := sb.String()[sb.Len()-1]
				if last != '/' {
					sb.WriteByte('-')
				}
			}
			dash = false
			sb.WriteRune(r)
		case r == '/':
			if sb.Len() > 0 && !strings.HasSuffix(sb.String(), "/") {
				sb.WriteByte('/')
			}
			dash = false
		default:
			dash = true
		}
	}
	return strings.Trim(sb.String(), "/")
}
