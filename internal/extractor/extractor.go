package extractor

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"

	apperrors "docverify/internal/errors"
)

// Format is the file-format hint for a comparison document.
type Format string

const (
	FormatPDF     Format = "pdf"
	FormatDOCX    Format = "docx"
	FormatUnknown Format = ""
)

// DetectFormat infers the document format from a file name.
func DetectFormat(name string) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf":
		return FormatPDF
	case ".docx":
		return FormatDOCX
	default:
		return FormatUnknown
	}
}

// Extractor converts a document payload into plain text. Implementations
// must be deterministic for a given input and must return empty string (not
// an error) when a page simply yields no text. Page and paragraph breaks are
// collapsed to single whitespace.
type Extractor interface {
	Extract(ctx context.Context, data []byte, format Format) (string, error)
}

// DocumentExtractor dispatches to the format-specific extractors.
type DocumentExtractor struct {
	logger *slog.Logger
	pdf    *PDFExtractor
	docx   *DocxExtractor
}

// New creates a DocumentExtractor. scratchDir is where PDF payloads are
// written for the duration of a single extraction call.
func New(logger *slog.Logger, scratchDir string) *DocumentExtractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &DocumentExtractor{
		logger: logger,
		pdf:    NewPDFExtractor(logger, scratchDir),
		docx:   NewDocxExtractor(logger),
	}
}

// Extract converts the payload into plain text according to the format hint.
func (e *DocumentExtractor) Extract(ctx context.Context, data []byte, format Format) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(data) == 0 {
		return "", apperrors.NewAppError(apperrors.ErrTypeExtraction, "document is empty", nil)
	}

	switch format {
	case FormatPDF:
		return e.pdf.Extract(ctx, data, format)
	case FormatDOCX:
		return e.docx.Extract(ctx, data, format)
	default:
		return "", apperrors.NewAppError(apperrors.ErrTypeExtraction,
			"unsupported document format (expected .pdf or .docx)", nil)
	}
}

// collapseBreaks joins extracted fragments and collapses page/paragraph
// breaks to single whitespace.
func collapseBreaks(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
