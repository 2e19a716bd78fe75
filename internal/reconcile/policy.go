package reconcile

import (
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"docverify/pkg/contracts/domain"
)

// MatchPolicy decides whether a normalized expected value is present in a
// document's normalized text. Implementations are pure; the same inputs
// always produce the same answer.
type MatchPolicy interface {
	// Type identifies the policy in logs and reports.
	Type() domain.MatchMode
	// Match returns whether the value was found, plus the similarity score
	// in [0,100] when the policy computes one (scored=false for plain
	// containment).
	Match(label domain.FieldLabel, value, docText string) (matched bool, score int, scored bool)
}

// ExactPolicy matches iff the value is a contiguous substring of the
// document text.
type ExactPolicy struct{}

// Type implements MatchPolicy.
func (ExactPolicy) Type() domain.MatchMode { return domain.MatchExact }

// Match implements MatchPolicy.
func (ExactPolicy) Match(_ domain.FieldLabel, value, docText string) (bool, int, bool) {
	return strings.Contains(docText, value), 0, false
}

// FuzzyPolicy scores token-sort similarity between the value and the whole
// document text. The score is a looseness signal, not a span locator; it is
// never computed against a best-matching span.
type FuzzyPolicy struct {
	opts domain.RunOptions
}

// NewFuzzyPolicy creates a fuzzy policy with the run's thresholds.
func NewFuzzyPolicy(opts domain.RunOptions) FuzzyPolicy {
	return FuzzyPolicy{opts: opts}
}

// Type implements MatchPolicy.
func (FuzzyPolicy) Type() domain.MatchMode { return domain.MatchFuzzy }

// Match implements MatchPolicy.
func (p FuzzyPolicy) Match(label domain.FieldLabel, value, docText string) (bool, int, bool) {
	score := fuzzy.TokenSortRatio(value, docText)
	return score >= p.opts.ThresholdFor(label), score, true
}

// PolicyFor builds the policy selected by the run options.
func PolicyFor(opts domain.RunOptions) MatchPolicy {
	if opts.Mode == domain.MatchFuzzy {
		return NewFuzzyPolicy(opts)
	}
	return ExactPolicy{}
}
