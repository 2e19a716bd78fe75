package dataprocessing

import (
	"log/slog"

	apperrors "docverify/internal/errors"
	"docverify/pkg/contracts/domain"
)

// PositionalLayout describes a fixed workbook template: a 1-based inclusive
// row range and 1-based column indices for the three semantic columns. Used
// when header inference is known to be unreliable for a given template.
type PositionalLayout struct {
	StartRow    int
	EndRow      int
	ProductCol  int
	HSCodeCol   int
	QuantityCol int
}

// DefaultPositionalLayout is the fixed template of the packing-list
// workbooks this mode was built for: product rows 24 to 60 with product,
// HS code and quantity in columns 3, 10 and 15.
var DefaultPositionalLayout = PositionalLayout{
	StartRow:    24,
	EndRow:      60,
	ProductCol:  3,
	HSCodeCol:   10,
	QuantityCol: 15,
}

// parsePositional extracts product rows from fixed offsets. A row is only
// emitted when all three values are non-empty.
func parsePositional(rows [][]string, layout PositionalLayout, logger *slog.Logger) ([]domain.ExpectedField, error) {
	logger.Info("Using positional layout",
		slog.Int("start_row", layout.StartRow),
		slog.Int("end_row", layout.EndRow),
		slog.Int("product_col", layout.ProductCol),
		slog.Int("hs_code_col", layout.HSCodeCol),
		slog.Int("quantity_col", layout.QuantityCol))

	var fields []domain.ExpectedField
	productRows := 0
	for i := layout.StartRow; i <= layout.EndRow && i <= len(rows); i++ {
		row := rows[i-1]
		product := cellAt(row, layout.ProductCol-1)
		hs := cellAt(row, layout.HSCodeCol-1)
		qty := cellAt(row, layout.QuantityCol-1)
		if product == "" || hs == "" || qty == "" {
			continue
		}
		productRows++

		fields = append(fields,
			domain.ExpectedField{Label: domain.LabelProduct, Value: product, SourceRow: i},
			domain.ExpectedField{Label: domain.LabelHSCode, Value: hs, SourceRow: i},
			domain.ExpectedField{Label: domain.LabelQuantity, Value: qty, SourceRow: i},
		)
	}

	if productRows == 0 {
		return nil, apperrors.NewEmptyMasterError()
	}

	logger.Info("Parsed positional rows", slog.Int("product_rows", productRows))
	return fields, nil
}
