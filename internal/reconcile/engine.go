package reconcile

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	apperrors "docverify/internal/errors"
	"docverify/internal/extractor"
	"docverify/internal/normalizer"
	"docverify/pkg/contracts/domain"
)

// Engine runs one reconciliation: every expected field against every
// comparison document, aggregated per row with severity classification.
type Engine struct {
	logger *slog.Logger
	norm   *normalizer.Normalizer
}

// NewEngine creates a reconciliation engine. A nil normalizer falls back to
// the default stopword set.
func NewEngine(logger *slog.Logger, norm *normalizer.Normalizer) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	if norm == nil {
		norm = normalizer.Default()
	}
	return &Engine{logger: logger, norm: norm}
}

// DocumentInput is one comparison document payload awaiting extraction.
type DocumentInput struct {
	Name   string
	Data   []byte
	Format extractor.Format
}

// ExtractDocuments converts payloads to document texts. A document that
// fails extraction is marked Failed and reported as such; it never aborts
// the other documents.
func (e *Engine) ExtractDocuments(ctx context.Context, ex extractor.Extractor, inputs []DocumentInput) ([]domain.DocumentText, error) {
	docs := make([]domain.DocumentText, len(inputs))
	for i, in := range inputs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		text, err := ex.Extract(ctx, in.Data, in.Format)
		if err != nil {
			if apperrors.IsFatal(err) && !apperrors.IsType(err, apperrors.ErrTypeExtraction) {
				return nil, err
			}
			e.logger.Warn("Document extraction failed",
				slog.String("document", in.Name),
				slog.String("error", err.Error()))
			docs[i] = domain.DocumentText{Name: in.Name, Failed: true}
			continue
		}
		e.logger.Info("Extracted document text",
			slog.String("document", in.Name),
			slog.Int("chars", len(text)))
		docs[i] = domain.DocumentText{Name: in.Name, Text: text}
	}
	return docs, nil
}

// cellVerdict aligns with the fields slice; ok is false where no verdict
// applies (empty value or failed document).
type cellVerdict struct {
	verdict domain.FieldVerdict
	ok      bool
}

// Reconcile evaluates all fields against all documents and aggregates the
// result. Row ordering follows master-row ordering; given identical inputs
// the report is reproducible bit for bit.
func (e *Engine) Reconcile(ctx context.Context, fields []domain.ExpectedField, docs []domain.DocumentText, opts domain.RunOptions) (*domain.ReconciliationReport, error) {
	if err := opts.Validate(); err != nil {
		return nil, apperrors.NewValidationError("invalid run options", err)
	}

	policy := PolicyFor(opts)
	eval := NewEvaluator(e.norm, policy)

	prepared := make([]Document, len(docs))
	verdicts := make([][]cellVerdict, len(docs))

	evaluateDoc := func(i int) {
		prepared[i] = PrepareDocument(e.norm, docs[i])
		cells := make([]cellVerdict, len(fields))
		for j, field := range fields {
			v, ok := eval.Evaluate(field, prepared[i])
			cells[j] = cellVerdict{verdict: v, ok: ok}
		}
		verdicts[i] = cells
	}

	if opts.Workers > 1 && len(docs) > 1 {
		// Fan out per document; each slot is written by exactly one
		// goroutine, so results land in input order regardless of
		// scheduling.
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(opts.Workers)
		for i := range docs {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				evaluateDoc(i)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	} else {
		for i := range docs {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			evaluateDoc(i)
		}
	}

	report := e.assemble(fields, prepared, verdicts)

	e.logger.Info("Reconciliation complete",
		slog.String("policy", string(policy.Type())),
		slog.Int("documents", len(docs)),
		slog.Int("total_rows", report.TotalRows),
		slog.Int("mismatched_rows", report.MismatchedRows))
	return report, nil
}

// assemble groups the per-cell verdicts by master row and classifies
// severity. Counts are computed after grouping, not per verdict.
func (e *Engine) assemble(fields []domain.ExpectedField, docs []Document, verdicts [][]cellVerdict) *domain.ReconciliationReport {
	report := &domain.ReconciliationReport{}
	for _, d := range docs {
		report.Documents = append(report.Documents, d.Name)
	}

	// Group row-scoped field indices by source row, preserving
	// first-appearance (master) order.
	var rowOrder []int
	rowFields := make(map[int][]int)
	var headerIdx []int
	for j, f := range fields {
		if f.Label == domain.LabelHeader {
			headerIdx = append(headerIdx, j)
			continue
		}
		if _, seen := rowFields[f.SourceRow]; !seen {
			rowOrder = append(rowOrder, f.SourceRow)
		}
		rowFields[f.SourceRow] = append(rowFields[f.SourceRow], j)
	}

	for _, row := range rowOrder {
		result := domain.RowResult{Row: row, Matched: true}
		for _, j := range rowFields[row] {
			switch fields[j].Label {
			case domain.LabelProduct:
				result.Product = fields[j].Value
			case domain.LabelHSCode:
				result.HSCode = fields[j].Value
			case domain.LabelQuantity:
				result.Quantity = fields[j].Value
			}
		}

		seenReasons := make(map[domain.ReasonCode]bool)
		productCritical := false
		for i, d := range docs {
			status := domain.DocumentStatus{Document: d.Name, Failed: d.Failed}
			for _, j := range rowFields[row] {
				cell := verdicts[i][j]
				if !cell.ok || cell.verdict.Matched {
					continue
				}
				status.Reasons = append(status.Reasons, cell.verdict.Reason)
				seenReasons[cell.verdict.Reason] = true
				// A row is Matched only if every field matched in every
				// document that could be read.
				result.Matched = false
				if cell.verdict.Reason == domain.ReasonProduct {
					if !cell.verdict.Scored || cell.verdict.Score < domain.ModerateFloor {
						productCritical = true
					}
				}
			}
			result.PerDocument = append(result.PerDocument, status)
		}

		result.Reasons = orderedReasons(seenReasons)
		if !result.Matched {
			result.Severity = classifySeverity(result.Reasons, productCritical)
		}
		report.Rows = append(report.Rows, result)
	}

	for _, j := range headerIdx {
		field := fields[j]
		hr := domain.HeaderFieldResult{Field: field.Name, Expected: field.Value, Matched: true}
		for i, d := range docs {
			status := domain.DocumentStatus{Document: d.Name, Failed: d.Failed}
			cell := verdicts[i][j]
			if cell.ok && !cell.verdict.Matched {
				status.Reasons = append(status.Reasons, cell.verdict.Reason)
				hr.Matched = false
			}
			hr.PerDocument = append(hr.PerDocument, status)
		}
		report.HeaderFields = append(report.HeaderFields, hr)
	}

	report.TotalRows = len(report.Rows)
	for _, r := range report.Rows {
		if !r.Matched {
			report.MismatchedRows++
		}
	}
	return report
}

// orderedReasons renders the distinct reason set in the fixed PNM, HSC, QTY
// report order.
func orderedReasons(seen map[domain.ReasonCode]bool) []domain.ReasonCode {
	var out []domain.ReasonCode
	for _, r := range []domain.ReasonCode{domain.ReasonProduct, domain.ReasonHSCode, domain.ReasonQuantity} {
		if seen[r] {
			out = append(out, r)
		}
	}
	return out
}

// classifySeverity applies the severity rules: quantity and HS-code
// mismatches always block shipment; a product-name mismatch is Moderate only
// when every document's similarity stayed at or above the moderate floor.
func classifySeverity(reasons []domain.ReasonCode, productCritical bool) domain.Severity {
	for _, r := range reasons {
		if r == domain.ReasonQuantity || r == domain.ReasonHSCode {
			return domain.SeverityCritical
		}
	}
	if productCritical {
		return domain.SeverityCritical
	}
	return domain.SeverityModerate
}
