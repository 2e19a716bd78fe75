package domain

// ReasonCode identifies which field of a row was missing from a document.
type ReasonCode string

const (
	// ReasonProduct - product name mismatch.
	ReasonProduct ReasonCode = "PNM"
	// ReasonHSCode - HS code mismatch.
	ReasonHSCode ReasonCode = "HSC"
	// ReasonQuantity - quantity mismatch.
	ReasonQuantity ReasonCode = "QTY"
	// ReasonHeader - header-zone field mismatch.
	ReasonHeader ReasonCode = "HEADER"
)

// FieldVerdict is the outcome of checking one expected field against one
// document. Derived data, never persisted beyond the report.
type FieldVerdict struct {
	Field    ExpectedField `json:"field"`
	Document string        `json:"document"`
	Matched  bool          `json:"matched"`
	// Score is the fuzzy similarity in [0,100]. Only meaningful when
	// Scored is true; exact containment produces no score.
	Score  int        `json:"score,omitempty"`
	Scored bool       `json:"scored,omitempty"`
	Reason ReasonCode `json:"reason"`
}
