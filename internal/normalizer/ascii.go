package normalizer

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// asciiFold decomposes accented characters, drops the combining marks, then
// drops whatever still falls outside ASCII. Mirrors a latin-1
// encode-with-ignore sink: unsupported characters disappear rather than
// erroring.
var asciiFold = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	runes.Remove(runes.Predicate(func(r rune) bool { return r > unicode.MaxASCII })),
)

// ToASCII transliterates s for print sinks that cannot render arbitrary
// characters. Accents are folded to their base letters; anything else
// non-ASCII is dropped.
func ToASCII(s string) string {
	out, _, err := transform.String(asciiFold, s)
	if err != nil {
		// Fall back to a plain filter on malformed input.
		var b strings.Builder
		for _, r := range s {
			if r <= unicode.MaxASCII {
				b.WriteRune(r)
			}
		}
		return b.String()
	}
	return out
}
