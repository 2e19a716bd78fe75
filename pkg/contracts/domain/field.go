package domain

// FieldLabel identifies which semantic column of the master table a value
// was taken from.
type FieldLabel string

const (
	LabelProduct  FieldLabel = "product"
	LabelHSCode   FieldLabel = "hs_code"
	LabelQuantity FieldLabel = "quantity"
	// LabelHeader marks invoice-level values taken from the header zone of
	// the master sheet (exporter, buyer, ports, totals) rather than from a
	// product row.
	LabelHeader FieldLabel = "header"
)

// Reason returns the report reason code used when a field of this label
// cannot be found in a comparison document.
func (l FieldLabel) Reason() ReasonCode {
	switch l {
	case LabelProduct:
		return ReasonProduct
	case LabelHSCode:
		return ReasonHSCode
	case LabelQuantity:
		return ReasonQuantity
	default:
		return ReasonHeader
	}
}

// ExpectedField is one value from the master table that every comparison
// document is expected to contain. Immutable after creation.
type ExpectedField struct {
	Label FieldLabel `json:"label"`
	// Name is set for header-zone fields only (e.g. "Exporter", "Buyer").
	Name  string `json:"name,omitempty"`
	Value string `json:"value"`
	// SourceRow is the 1-based row in the original sheet, adjusted for
	// nothing: it is the row number the operator sees when opening the
	// workbook. Zero for header-zone fields.
	SourceRow int `json:"source_row,omitempty"`
}
