package groupname

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldMarks decomposes characters and strips combining marks, so that "é"
// becomes "e" before the charset pass.
var foldMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Sanitize folds an arbitrary label into the permitted group character set:
// lowercase letters and digits pass through, diacritics are reduced to their
// ASCII base characters, and every run of other characters collapses to a
// single hyphen. Leading and trailing hyphens are trimmed.
//
// Sanitize is an explicit preparation step for human-supplied labels; the
// encode operations themselves reject invalid groups rather than rewriting
// them. An empty result means nothing usable survived, and the caller decides
// what to do about it.
//
//	groupname.Sanitize("Café Cluster #2") // "cafe-cluster-2"
func Sanitize(raw string) string {
	folded, _, err := transform.String(foldMarks, raw)
	if err != nil {
		folded = raw
	}

	var b strings.Builder
	b.Grow(len(folded))

	lastHyphen := true // swallow leading separators
	for _, r := range folded {
		r = unicode.ToLower(r)
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}
