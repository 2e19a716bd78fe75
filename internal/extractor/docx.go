package extractor

import (
	"bytes"
	"context"
	"log/slog"
	"strings"

	docx "github.com/fumiama/go-docx"

	apperrors "docverify/internal/errors"
)

// DocxExtractor extracts plain text from word-processor documents.
type DocxExtractor struct {
	logger *slog.Logger
}

// NewDocxExtractor creates a DOCX extractor.
func NewDocxExtractor(logger *slog.Logger) *DocxExtractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &DocxExtractor{logger: logger}
}

// Extract parses the DOCX payload and returns the concatenated paragraph and
// table text in document order, breaks collapsed to single whitespace.
func (e *DocxExtractor) Extract(ctx context.Context, data []byte, _ Format) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	doc, err := docx.Parse(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", apperrors.NewAppError(apperrors.ErrTypeExtraction, "failed to parse DOCX", err)
	}

	var parts []string
	for _, item := range doc.Document.Body.Items {
		switch it := item.(type) {
		case *docx.Paragraph:
			parts = append(parts, it.String())
		case *docx.Table:
			parts = append(parts, it.String())
		}
	}

	text := collapseBreaks(strings.Join(parts, " "))
	e.logger.Debug("Extracted DOCX text",
		slog.Int("items", len(doc.Document.Body.Items)),
		slog.Int("chars", len(text)))
	return text, nil
}
