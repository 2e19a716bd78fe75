package dataprocessing

import (
	"strings"

	"docverify/pkg/contracts/domain"
)

// DefaultHeaderScanRows is how many top rows of the sheet are scanned for
// invoice-level values.
const DefaultHeaderScanRows = 20

// headerFieldOrder fixes the emission order so reports are reproducible.
var headerFieldOrder = []string{
	"Exporter",
	"Buyer",
	"Invoice No",
	"Date",
	"POL",
	"POD",
	"Total Box",
	"Total NW",
	"Total GW",
}

// ScanHeaderFields walks the first maxRows rows of the sheet and picks up
// invoice-level values by keyword. Later occurrences overwrite earlier ones,
// matching how the workbook templates repeat refined values further down the
// header block.
func ScanHeaderFields(rows [][]string, maxRows int) []domain.ExpectedField {
	found := make(map[string]string)

	limit := maxRows
	if limit > len(rows) {
		limit = len(rows)
	}
	for i := 0; i < limit; i++ {
		for _, cell := range rows[i] {
			value := strings.ToUpper(strings.TrimSpace(cell))
			if value == "" {
				continue
			}
			if name := classifyHeaderCell(value); name != "" {
				found[name] = value
			}
		}
	}

	var fields []domain.ExpectedField
	for _, name := range headerFieldOrder {
		if value, ok := found[name]; ok {
			fields = append(fields, domain.ExpectedField{
				Label: domain.LabelHeader,
				Name:  name,
				Value: value,
			})
		}
	}
	return fields
}

// classifyHeaderCell maps a header-zone cell to the invoice-level field it
// carries, or "" when it carries none.
func classifyHeaderCell(value string) string {
	switch {
	case strings.Contains(value, "EXPORTER"):
		return "Exporter"
	case strings.Contains(value, "BUYER"):
		return "Buyer"
	case strings.Contains(value, "CI/EXP") || strings.Contains(value, "INVOICE"):
		return "Invoice No"
	case strings.Contains(value, "PORT OF LOADING"):
		return "POL"
	case strings.Contains(value, "PORT OF DISCHARGE") || strings.Contains(value, "FINAL DESTINATION"):
		return "POD"
	case strings.Contains(value, "TOTAL BOX"):
		return "Total Box"
	case strings.Contains(value, "TOTAL NET"):
		return "Total NW"
	case strings.Contains(value, "TOTAL GROSS"):
		return "Total GW"
	case strings.Contains(value, "2024") || strings.Contains(value, "2025"):
		// Shipment dates in the templates carry the year in the cell text.
		return "Date"
	default:
		return ""
	}
}
