// Package domain defines the data model shared by the verifier's packages:
// expected fields parsed from the master table, extracted document texts,
// per-field verdicts, and the aggregated reconciliation report.
//
// All entities are created fresh for a single comparison run (one master
// workbook plus one batch of comparison documents) and discarded once the
// report has been produced. Nothing here is persisted between runs.
package domain
