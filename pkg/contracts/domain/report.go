package domain

import "strings"

// Severity classifies how serious a row's mismatches are.
type Severity string

const (
	// SeverityCritical blocks shipment readiness (quantity or HS code
	// wrong, or a badly mangled product name).
	SeverityCritical Severity = "Critical"
	// SeverityModerate is likely cosmetic, e.g. a spelling variant of the
	// product name.
	SeverityModerate Severity = "Moderate"
)

const (
	// MatchMarker is the per-cell marker for a fully matched check.
	MatchMarker = "✅"
	// MismatchMarker prefixes the comma-joined reason codes of a failed check.
	MismatchMarker = "❌"
	// ExtractionFailedMarker fills a document's column when its text could
	// not be extracted. Distinct from a mismatch.
	ExtractionFailedMarker = "EXTRACTION FAILED"
)

// DocumentStatus is the status of one row (or one header field) in one
// comparison document.
type DocumentStatus struct {
	Document string       `json:"document"`
	Failed   bool         `json:"failed,omitempty"`
	Reasons  []ReasonCode `json:"reasons,omitempty"`
}

// Marker renders the status as the report cell value.
func (s DocumentStatus) Marker() string {
	if s.Failed {
		return ExtractionFailedMarker
	}
	if len(s.Reasons) == 0 {
		return MatchMarker
	}
	return MismatchMarker + " " + joinReasons(s.Reasons)
}

// RowResult aggregates the verdicts for all fields of one master row across
// all documents.
type RowResult struct {
	Row      int    `json:"row"`
	Product  string `json:"product"`
	HSCode   string `json:"hs_code"`
	Quantity string `json:"quantity"`
	// PerDocument follows the report's document order.
	PerDocument []DocumentStatus `json:"per_document"`
	// Reasons is the distinct set of reason codes across all documents, in
	// PNM, HSC, QTY order.
	Reasons  []ReasonCode `json:"reasons,omitempty"`
	Matched  bool         `json:"matched"`
	Severity Severity     `json:"severity,omitempty"`
}

// Status renders the overall row status the way the operator sees it.
func (r RowResult) Status() string {
	if r.Matched {
		return MatchMarker
	}
	return MismatchMarker + " " + joinReasons(r.Reasons)
}

// HeaderFieldResult is the cross-document status of one header-zone field.
type HeaderFieldResult struct {
	Field       string           `json:"field"`
	Expected    string           `json:"expected"`
	PerDocument []DocumentStatus `json:"per_document"`
	Matched     bool             `json:"matched"`
}

// Status renders the overall header-field status.
func (r HeaderFieldResult) Status() string {
	if r.Matched {
		return MatchMarker
	}
	return MismatchMarker + " " + string(ReasonHeader)
}

// ReconciliationReport is the full result of one comparison run. Row order
// matches master-row order; given identical inputs the report is
// reproducible bit for bit.
type ReconciliationReport struct {
	// Documents lists the comparison document names in input order. Every
	// PerDocument slice in the report follows this order.
	Documents    []string            `json:"documents"`
	Rows         []RowResult         `json:"rows"`
	HeaderFields []HeaderFieldResult `json:"header_fields,omitempty"`
	// TotalRows and MismatchedRows count product rows only, computed after
	// grouping.
	TotalRows      int `json:"total_rows"`
	MismatchedRows int `json:"mismatched_rows"`
}

func joinReasons(reasons []ReasonCode) string {
	parts := make([]string, len(reasons))
	for i, r := range reasons {
		parts[i] = string(r)
	}
	return strings.Join(parts, ", ")
}
