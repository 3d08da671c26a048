package domain

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizeName prepares a term name for storage:
//   - trims leading/trailing whitespace
//   - compresses runs of whitespace into a single space
//
// Case and diacritics are preserved.
func NormalizeName(name string) string {
	return strings.Join(strings.Fields(name), " ")
}

// Slugify derives a URL slug from a term name: diacritics are stripped,
// letters are lowercased, and every run of non-alphanumerics becomes a
// single hyphen. "Café Crème" becomes "cafe-creme".
func Slugify(name string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, name)
	if err != nil {
		stripped = name
	}

	var b strings.Builder
	b.Grow(len(stripped))
	pendingHyphen := false
	for _, r := range strings.ToLower(stripped) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
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
