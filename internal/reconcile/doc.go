// Package reconcile is the field-reconciliation core: it checks every
// expected value from the master table against the text of every comparison
// document under a selected match policy and aggregates the per-cell
// verdicts into a row-ordered report with severity classification.
//
// Two interchangeable policies exist. Exact containment looks for the
// normalized value as a contiguous substring of the document text. Fuzzy
// matching scores token-sort similarity against the whole document text and
// flags values below a configurable threshold. Quantities are always checked
// with exact containment, whatever the run policy: a quantity that is off by
// one digit must always be flagged.
//
// The engine is synchronous and stateless across runs. When asked, it fans
// the per-document evaluation out over a bounded worker group; results are
// written into pre-sized slots so callers never observe reordering.
package reconcile
