package exporter

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"docverify/internal/normalizer"
	"docverify/pkg/contracts/domain"
)

// SummaryExporter writes the printable one-line-per-row summary. The print
// sink cannot render arbitrary characters, so every line is
// ASCII-transliterated before it is written.
type SummaryExporter struct {
	logger *slog.Logger
}

// NewSummaryExporter creates a summary exporter
func NewSummaryExporter(logger *slog.Logger) *SummaryExporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &SummaryExporter{logger: logger}
}

// Write renders the summary to w.
func (e *SummaryExporter) Write(w io.Writer, report *domain.ReconciliationReport) error {
	if _, err := fmt.Fprintln(w, "Document Comparison Report"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}

	for _, row := range report.Rows {
		line := normalizer.ToASCII(fmt.Sprintf("%s | Status: %s", row.Product, row.Status()))
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "\nTotal rows: %d, mismatched: %d\n",
		report.TotalRows, report.MismatchedRows)
	return err
}

// WriteFile renders the summary into a file, creating parent directories as
// needed.
func (e *SummaryExporter) WriteFile(path string, report *domain.ReconciliationReport) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create summary file: %w", err)
	}
	defer file.Close()

	if err := e.Write(file, report); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}

	e.logger.Info("Exported printable summary",
		slog.String("file", path),
		slog.Int("rows", len(report.Rows)))
	return nil
}
