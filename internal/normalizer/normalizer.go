package normalizer

import (
	"regexp"
	"strings"
)

// Mode selects how aggressively text is canonicalized.
type Mode int

const (
	// Exact trims, collapses whitespace and upper-cases. Used for
	// substring containment and for document text.
	Exact Mode = iota
	// Fuzzy additionally strips the configured stopword tokens as whole
	// words, neutralizing linguistic variants of product names
	// (plural markers, "DAL", "SPLIT", "WHOLE").
	Fuzzy
)

// DefaultStopwords are the suffix/stopword tokens stripped in Fuzzy mode.
var DefaultStopwords = []string{"ES", "S", "DAL", "SPLIT", "WHOLE"}

// Normalizer canonicalizes raw strings into a comparable form. Pure and
// idempotent: Normalize(Normalize(x)) == Normalize(x) for both modes.
type Normalizer struct {
	stopwords *regexp.Regexp
}

// New creates a Normalizer with the given stopword tokens. An empty list
// makes Fuzzy mode behave like Exact mode.
func New(stopwords []string) *Normalizer {
	n := &Normalizer{}
	if len(stopwords) > 0 {
		quoted := make([]string, 0, len(stopwords))
		for _, w := range stopwords {
			w = strings.ToUpper(strings.TrimSpace(w))
			if w != "" {
				quoted = append(quoted, regexp.QuoteMeta(w))
			}
		}
		if len(quoted) > 0 {
			n.stopwords = regexp.MustCompile(`\b(?:` + strings.Join(quoted, "|") + `)\b`)
		}
	}
	return n
}

// Default returns a Normalizer with the default stopword set.
func Default() *Normalizer {
	return New(DefaultStopwords)
}

// Normalize canonicalizes raw text under the given mode. Upper-casing is
// applied to both expected values and document text so containment checks
// are case-insensitive.
func (n *Normalizer) Normalize(raw string, mode Mode) string {
	s := strings.ToUpper(collapseWhitespace(raw))
	if mode == Fuzzy && n.stopwords != nil {
		s = collapseWhitespace(n.stopwords.ReplaceAllString(s, " "))
	}
	return s
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
