// Package exporter renders reconciliation reports to their output formats.
//
// Two sinks are supported: CSV files with a UTF-8 BOM so Excel opens them
// with correct encoding, and a printable plain-text summary transliterated
// to ASCII for print pipelines that cannot handle the full character set.
//
// CSVWriter is the shared low-level writer; ReportExporter and
// SummaryExporter build the report-specific tables on top of it.
package exporter
