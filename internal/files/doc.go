// Package files provides file system discovery and management for
// comparison runs.
//
// Discovery locates the input files of a run: master Excel workbooks and
// the PDF/DOCX documents to compare against. Results are sorted by name so
// a run over the same directory always processes documents in the same
// order.
//
// Manager wraps the basic file operations the command line tool needs,
// resolved against a base path for portability.
package files
