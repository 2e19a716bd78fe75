package extractor

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/ledongthuc/pdf"

	apperrors "docverify/internal/errors"
)

// PDFExtractor extracts plain text from PDF payloads. The parsing library
// needs file-backed input, so the payload is written to a scratch file that
// lives only for the duration of the call.
type PDFExtractor struct {
	logger     *slog.Logger
	scratchDir string
}

// NewPDFExtractor creates a PDF extractor using scratchDir for temporary
// payload files.
func NewPDFExtractor(logger *slog.Logger, scratchDir string) *PDFExtractor {
	if logger == nil {
		logger = slog.Default()
	}
	if scratchDir == "" {
		scratchDir = os.TempDir()
	}
	return &PDFExtractor{logger: logger, scratchDir: scratchDir}
}

// Extract parses the PDF payload and returns its text with page breaks
// collapsed to single whitespace. Pages without text contribute nothing.
func (e *PDFExtractor) Extract(ctx context.Context, data []byte, _ Format) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if err := os.MkdirAll(e.scratchDir, 0755); err != nil {
		return "", apperrors.NewAppError(apperrors.ErrTypeExtraction, "failed to create scratch directory", err)
	}

	scratch := filepath.Join(e.scratchDir, "extract-"+uuid.NewString()+".pdf")
	if err := os.WriteFile(scratch, data, 0600); err != nil {
		return "", apperrors.NewAppError(apperrors.ErrTypeExtraction, "failed to write scratch file", err)
	}
	// Scratch space is released whether or not parsing succeeds.
	defer func() {
		if err := os.Remove(scratch); err != nil {
			e.logger.Warn("Failed to remove scratch file",
				slog.String("path", scratch),
				slog.String("error", err.Error()))
		}
	}()

	f, reader, err := pdf.Open(scratch)
	if err != nil {
		return "", apperrors.NewAppError(apperrors.ErrTypeExtraction, "failed to parse PDF", err)
	}
	defer f.Close()

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", apperrors.NewAppError(apperrors.ErrTypeExtraction, "failed to read PDF text", err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return "", apperrors.NewAppError(apperrors.ErrTypeExtraction, "failed to read PDF text", err)
	}

	text := collapseBreaks(buf.String())
	e.logger.Debug("Extracted PDF text",
		slog.Int("pages", reader.NumPage()),
		slog.Int("chars", len(text)))
	return text, nil
}
