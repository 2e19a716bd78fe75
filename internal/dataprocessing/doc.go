// Package dataprocessing reads the master workbook (invoice or packing
// list) and extracts the expected-field records the reconciliation engine
// compares against the uploaded documents.
//
// # Architecture
//
// Column resolution runs in one of two modes:
//
//  1. Header inference: the header row is scanned for cells containing
//     "product"/"item", "hs" and "qty" (case-insensitive, first match wins).
//  2. Positional layout: fixed 1-based row range and column indices, for
//     workbook templates whose headers are known to be unreliable.
//
// A separate header-zone scan pulls invoice-level values (exporter, buyer,
// invoice number, ports, totals) out of the top rows of the sheet.
//
// # Error Handling
//
// Two fatal conditions are distinguished so the operator gets actionable
// guidance:
//
//   - SchemaResolutionError: none of the semantic columns could be resolved;
//     the message names the expected header keywords.
//   - EmptyMasterError: columns resolved but the sheet held zero non-empty
//     product rows.
//
// Partially filled rows are not errors: a missing HS code or quantity is
// simply not emitted, and the remaining fields are still compared.
package dataprocessing
