package exporter

import (
	"log/slog"
	"strconv"

	"docverify/pkg/contracts/domain"
)

// ReportExporter turns a reconciliation report into the operator-facing
// files: a row-oriented CSV table plus an optional header-field table.
type ReportExporter struct {
	writer *CSVWriter
	logger *slog.Logger
}

// NewReportExporter creates a report exporter
func NewReportExporter(writer *CSVWriter, logger *slog.Logger) *ReportExporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReportExporter{writer: writer, logger: logger}
}

// BuildTable flattens the report into the CSV table: one column per
// comparison document between the master columns and the overall status.
// Column ordering is fixed and matches the on-screen table verbatim.
func BuildTable(report *domain.ReconciliationReport) (headers []string, records [][]string) {
	headers = []string{"Row", "Product", "HS Code", "Quantity"}
	headers = append(headers, report.Documents...)
	headers = append(headers, "Status", "Severity")

	for _, row := range report.Rows {
		record := []string{
			strconv.Itoa(row.Row),
			row.Product,
			row.HSCode,
			row.Quantity,
		}
		for _, status := range row.PerDocument {
			record = append(record, status.Marker())
		}
		record = append(record, row.Status(), string(row.Severity))
		records = append(records, record)
	}
	return headers, records
}

// BuildHeaderFieldTable flattens the header-zone results into their own
// table.
func BuildHeaderFieldTable(report *domain.ReconciliationReport) (headers []string, records [][]string) {
	headers = []string{"Field", "Expected"}
	headers = append(headers, report.Documents...)
	headers = append(headers, "Status")

	for _, hf := range report.HeaderFields {
		record := []string{hf.Field, hf.Expected}
		for _, status := range hf.PerDocument {
			record = append(record, status.Marker())
		}
		record = append(record, hf.Status())
		records = append(records, record)
	}
	return headers, records
}

// ExportCSV writes the row-level comparison table.
func (e *ReportExporter) ExportCSV(report *domain.ReconciliationReport, filename string) error {
	headers, records := BuildTable(report)
	if err := e.writer.WriteSimpleCSV(filename, headers, records); err != nil {
		return err
	}

	e.logger.Info("Exported comparison report",
		slog.String("file", filename),
		slog.Int("total_rows", report.TotalRows),
		slog.Int("mismatched_rows", report.MismatchedRows))
	return nil
}

// ExportHeaderFieldsCSV writes the header-field table. No-op when the run
// did not scan header fields.
func (e *ReportExporter) ExportHeaderFieldsCSV(report *domain.ReconciliationReport, filename string) error {
	if len(report.HeaderFields) == 0 {
		return nil
	}
	headers, records := BuildHeaderFieldTable(report)
	if err := e.writer.WriteSimpleCSV(filename, headers, records); err != nil {
		return err
	}

	e.logger.Info("Exported header field report",
		slog.String("file", filename),
		slog.Int("fields", len(report.HeaderFields)))
	return nil
}
