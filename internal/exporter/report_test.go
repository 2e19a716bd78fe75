package exporter

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docverify/pkg/contracts/domain"
)

func sampleReport() *domain.ReconciliationReport {
	return &domain.ReconciliationReport{
		Documents: []string{"invoice.pdf", "bl.pdf"},
		Rows: []domain.RowResult{
			{
				Row:      2,
				Product:  "TOOR DAL",
				HSCode:   "07136000",
				Quantity: "100",
				PerDocument: []domain.DocumentStatus{
					{Document: "invoice.pdf"},
					{Document: "bl.pdf"},
				},
				Matched: true,
			},
			{
				Row:      3,
				Product:  "CUMIN SEEDS",
				HSCode:   "09093100",
				Quantity: "50",
				PerDocument: []domain.DocumentStatus{
					{Document: "invoice.pdf", Reasons: []domain.ReasonCode{domain.ReasonHSCode}},
					{Document: "bl.pdf", Failed: true},
				},
				Reasons:  []domain.ReasonCode{domain.ReasonHSCode},
				Severity: domain.SeverityCritical,
			},
		},
		HeaderFields: []domain.HeaderFieldResult{
			{
				Field:    "Invoice No.",
				Expected: "CI/EXP/2025/001",
				PerDocument: []domain.DocumentStatus{
					{Document: "invoice.pdf"},
					{Document: "bl.pdf", Reasons: []domain.ReasonCode{domain.ReasonHeader}},
				},
			},
		},
		TotalRows:      2,
		MismatchedRows: 1,
	}
}

func TestBuildTable(t *testing.T) {
	headers, records := BuildTable(sampleReport())

	assert.Equal(t, []string{
		"Row", "Product", "HS Code", "Quantity",
		"invoice.pdf", "bl.pdf",
		"Status", "Severity",
	}, headers)

	require.Len(t, records, 2)
	assert.Equal(t, []string{
		"2", "TOOR DAL", "07136000", "100",
		"✅", "✅",
		"✅", "",
	}, records[0])
	assert.Equal(t, []string{
		"3", "CUMIN SEEDS", "09093100", "50",
		"❌ HSC", "EXTRACTION FAILED",
		"❌ HSC", "Critical",
	}, records[1])
}

func TestBuildHeaderFieldTable(t *testing.T) {
	headers, records := BuildHeaderFieldTable(sampleReport())

	assert.Equal(t, []string{"Field", "Expected", "invoice.pdf", "bl.pdf", "Status"}, headers)
	require.Len(t, records, 1)
	assert.Equal(t, []string{
		"Invoice No.", "CI/EXP/2025/001",
		"✅", "❌ HEADER",
		"❌ HEADER",
	}, records[0])
}

func TestReportExporter_ExportCSV(t *testing.T) {
	dir := t.TempDir()
	exporter := NewReportExporter(NewCSVWriter(nil), nil)

	path := filepath.Join(dir, "comparison.csv")
	require.NoError(t, exporter.ExportCSV(sampleReport(), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	data = bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})

	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Row", rows[0][0])
	assert.Equal(t, "TOOR DAL", rows[1][1])
	assert.Equal(t, "❌ HSC", rows[2][6])
}

func TestReportExporter_HeaderFieldsNoOpWhenEmpty(t *testing.T) {
	dir := t.TempDir()
	exporter := NewReportExporter(NewCSVWriter(nil), nil)

	report := sampleReport()
	report.HeaderFields = nil

	path := filepath.Join(dir, "headers.csv")
	require.NoError(t, exporter.ExportHeaderFieldsCSV(report, path))

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}
