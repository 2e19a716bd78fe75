package dataprocessing

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/xuri/excelize/v2"

	apperrors "docverify/internal/errors"
	"docverify/pkg/contracts/domain"
)

// ColumnMap holds the resolved 0-based column indices of the three semantic
// columns. -1 marks an unresolved column.
type ColumnMap struct {
	Product  int
	HSCode   int
	Quantity int
}

// Resolved reports whether at least one semantic column was found.
func (m ColumnMap) Resolved() bool {
	return m.Product >= 0 || m.HSCode >= 0 || m.Quantity >= 0
}

// ParseOptions controls how the master workbook is read.
type ParseOptions struct {
	// Sheet selects a sheet by name; empty means the first sheet.
	Sheet string
	// Layout switches to positional extraction when non-nil.
	Layout *PositionalLayout
	// HeaderFields also scans the header zone of the sheet for
	// invoice-level values.
	HeaderFields bool
	// HeaderScanRows bounds the header-zone scan. Zero means the default.
	HeaderScanRows int
	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// ParseMaster reads the master workbook and extracts the expected-field
// records, in master-row order.
func ParseMaster(filePath string, opts ParseOptions) ([]domain.ExpectedField, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open master workbook: %w", err)
	}
	defer f.Close()

	sheet := opts.Sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, apperrors.NewEmptyMasterError()
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}

	logger.Info("Loaded master workbook",
		slog.String("file", filePath),
		slog.String("sheet", sheet),
		slog.Int("total_rows", len(rows)))

	var fields []domain.ExpectedField
	if opts.Layout != nil {
		fields, err = parsePositional(rows, *opts.Layout, logger)
	} else {
		fields, err = parseByHeaders(rows, logger)
	}
	if err != nil {
		return nil, err
	}

	if opts.HeaderFields {
		scanRows := opts.HeaderScanRows
		if scanRows <= 0 {
			scanRows = DefaultHeaderScanRows
		}
		headerFields := ScanHeaderFields(rows, scanRows)
		logger.Info("Scanned header zone",
			slog.Int("scan_rows", scanRows),
			slog.Int("fields_found", len(headerFields)))
		fields = append(headerFields, fields...)
	}

	return fields, nil
}

// parseByHeaders resolves columns from the header row and walks the data
// rows below it.
func parseByHeaders(rows [][]string, logger *slog.Logger) ([]domain.ExpectedField, error) {
	headerRow := findHeaderRow(rows)
	if headerRow == -1 {
		return nil, apperrors.NewSchemaResolutionError()
	}

	columns := inferColumns(rows[headerRow])
	if !columns.Resolved() {
		return nil, apperrors.NewSchemaResolutionError()
	}

	logger.Info("Resolved master columns",
		slog.Int("header_row", headerRow+1),
		slog.Int("product_col", columns.Product),
		slog.Int("hs_code_col", columns.HSCode),
		slog.Int("quantity_col", columns.Quantity))

	var fields []domain.ExpectedField
	productRows := 0
	for i := headerRow + 1; i < len(rows); i++ {
		row := rows[i]
		product := cellAt(row, columns.Product)
		if product == "" {
			// Rows without a product value are layout noise (totals,
			// blank separators) and are skipped entirely.
			continue
		}
		productRows++
		sourceRow := i + 1 // 1-based position in the original sheet

		fields = append(fields, domain.ExpectedField{
			Label:     domain.LabelProduct,
			Value:     product,
			SourceRow: sourceRow,
		})
		if hs := cellAt(row, columns.HSCode); hs != "" {
			fields = append(fields, domain.ExpectedField{
				Label:     domain.LabelHSCode,
				Value:     hs,
				SourceRow: sourceRow,
			})
		}
		if qty := cellAt(row, columns.Quantity); qty != "" {
			fields = append(fields, domain.ExpectedField{
				Label:     domain.LabelQuantity,
				Value:     qty,
				SourceRow: sourceRow,
			})
		}
	}

	if productRows == 0 {
		return nil, apperrors.NewEmptyMasterError()
	}

	logger.Info("Parsed master rows",
		slog.Int("product_rows", productRows),
		slog.Int("expected_fields", len(fields)))
	return fields, nil
}

// findHeaderRow returns the index of the first row that resolves at least
// one semantic column, or -1. The first row is the usual hit; scanning
// tolerates title rows above the table.
func findHeaderRow(rows [][]string) int {
	for i, row := range rows {
		if inferColumns(row).Resolved() {
			return i
		}
	}
	return -1
}

// inferColumns maps header names to semantic columns by case-insensitive
// substring match. First matching column wins for each label.
func inferColumns(header []string) ColumnMap {
	columns := ColumnMap{Product: -1, HSCode: -1, Quantity: -1}
	for j, cell := range header {
		name := strings.ToLower(strings.TrimSpace(cell))
		if name == "" {
			continue
		}
		switch {
		case columns.Product == -1 && (strings.Contains(name, "product") || strings.Contains(name, "item")):
			columns.Product = j
		case columns.HSCode == -1 && strings.Contains(name, "hs"):
			columns.HSCode = j
		case columns.Quantity == -1 && strings.Contains(name, "qty"):
			columns.Quantity = j
		}
	}
	return columns
}

func cellAt(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}
