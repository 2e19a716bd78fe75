package reconcile

import (
	"strings"

	"docverify/internal/normalizer"
	"docverify/pkg/contracts/domain"
)

// Document is the per-run prepared view of one comparison document: its text
// normalized once in each mode so the evaluator never re-normalizes a whole
// document per field.
type Document struct {
	Name   string
	Failed bool

	exact string
	fuzzy string
}

// PrepareDocument normalizes an extracted document for evaluation.
func PrepareDocument(n *normalizer.Normalizer, doc domain.DocumentText) Document {
	d := Document{Name: doc.Name, Failed: doc.Failed}
	if doc.Failed {
		return d
	}
	d.exact = n.Normalize(doc.Text, normalizer.Exact)
	d.fuzzy = n.Normalize(doc.Text, normalizer.Fuzzy)
	return d
}

// Evaluator applies the normalizer and the selected match policy to one
// (expected field, document) pair at a time. Side-effect free; calls for
// independent pairs may run concurrently.
type Evaluator struct {
	norm   *normalizer.Normalizer
	policy MatchPolicy
}

// NewEvaluator creates an evaluator. A nil normalizer falls back to the
// default stopword set.
func NewEvaluator(norm *normalizer.Normalizer, policy MatchPolicy) *Evaluator {
	if norm == nil {
		norm = normalizer.Default()
	}
	return &Evaluator{norm: norm, policy: policy}
}

// Evaluate decides the verdict for one field against one document. The
// second return is false when no verdict applies: empty field values are
// skipped entirely (never counted as matched or mismatched), and documents
// whose extraction failed produce no verdicts.
func (e *Evaluator) Evaluate(field domain.ExpectedField, doc Document) (domain.FieldVerdict, bool) {
	if strings.TrimSpace(field.Value) == "" {
		return domain.FieldVerdict{}, false
	}
	if doc.Failed {
		return domain.FieldVerdict{}, false
	}

	verdict := domain.FieldVerdict{
		Field:    field,
		Document: doc.Name,
		Reason:   field.Label.Reason(),
	}

	// Quantities are never fuzzy-matched: an off-by-one digit must always
	// surface, so containment applies regardless of the run policy.
	if field.Label == domain.LabelQuantity {
		value := e.norm.Normalize(field.Value, normalizer.Exact)
		verdict.Matched = strings.Contains(doc.exact, value)
		return verdict, true
	}

	mode := normalizer.Exact
	docText := doc.exact
	if e.policy.Type() == domain.MatchFuzzy && field.Label == domain.LabelProduct {
		// Stopword stripping only neutralizes product-name variants; HS
		// codes and header values keep their exact shape.
		mode = normalizer.Fuzzy
		docText = doc.fuzzy
	}

	value := e.norm.Normalize(field.Value, mode)
	verdict.Matched, verdict.Score, verdict.Scored = e.policy.Match(field.Label, value, docText)
	return verdict, true
}
