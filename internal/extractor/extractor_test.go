package extractor

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "docverify/internal/errors"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name     string
		expected Format
	}{
		{"certificate_of_origin.pdf", FormatPDF},
		{"Bill Of Lading.PDF", FormatPDF},
		{"phyto.docx", FormatDOCX},
		{"FUMIGATION.DOCX", FormatDOCX},
		{"notes.txt", FormatUnknown},
		{"archive", FormatUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetectFormat(tt.name))
		})
	}
}

func TestDocumentExtractor_EmptyPayload(t *testing.T) {
	e := New(nil, t.TempDir())

	_, err := e.Extract(context.Background(), nil, FormatPDF)
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeExtraction))
	assert.False(t, apperrors.IsFatal(err))
}

func TestDocumentExtractor_UnsupportedFormat(t *testing.T) {
	e := New(nil, t.TempDir())

	_, err := e.Extract(context.Background(), []byte("anything"), FormatUnknown)
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeExtraction))
}

func TestDocumentExtractor_CorruptPDF(t *testing.T) {
	scratch := t.TempDir()
	e := New(nil, scratch)

	_, err := e.Extract(context.Background(), []byte("not a pdf at all"), FormatPDF)
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeExtraction))

	// Scratch space must be released on failure as well.
	entries, readErr := os.ReadDir(scratch)
	require.NoError(t, readErr)
	assert.Empty(t, entries, "scratch file should have been removed")
}

func TestDocumentExtractor_CorruptDOCX(t *testing.T) {
	e := New(nil, t.TempDir())

	_, err := e.Extract(context.Background(), []byte("not a zip archive"), FormatDOCX)
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeExtraction))
}

func TestDocumentExtractor_CancelledContext(t *testing.T) {
	e := New(nil, t.TempDir())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := e.Extract(ctx, []byte("payload"), FormatPDF)
	require.ErrorIs(t, err, context.Canceled)
}

func TestPDFExtractor_ScratchDirCreated(t *testing.T) {
	scratch := filepath.Join(t.TempDir(), "nested", "cache")
	e := NewPDFExtractor(nil, scratch)

	// Parsing fails on the bogus payload, but the scratch directory must
	// exist by then.
	_, err := e.Extract(context.Background(), []byte("bogus"), FormatPDF)
	require.Error(t, err)

	info, statErr := os.Stat(scratch)
	require.NoError(t, statErr)
	assert.True(t, info.IsDir())
}

func TestCollapseBreaks(t *testing.T) {
	assert.Equal(t, "PAGE ONE PAGE TWO", collapseBreaks("PAGE ONE\n\nPAGE\tTWO "))
	assert.Equal(t, "", collapseBreaks("\n \t"))
}
