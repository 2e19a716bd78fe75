package validation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestValidateFile(t *testing.T) {
	dir := t.TempDir()
	v := NewFileValidator(nil)

	path := writeFile(t, dir, "doc.pdf", "payload")
	assert.NoError(t, v.ValidateFile(path))

	err := v.ValidateFile(filepath.Join(dir, "missing.pdf"))
	assert.ErrorContains(t, err, "does not exist")

	err = v.ValidateFile(dir)
	assert.ErrorContains(t, err, "is a directory")
}

func TestValidateMasterWorkbook(t *testing.T) {
	dir := t.TempDir()
	v := NewFileValidator(nil)

	tests := []struct {
		name    string
		file    string
		content string
		wantErr string
	}{
		{name: "valid xlsx", file: "master.xlsx", content: "fake workbook"},
		{name: "wrong extension", file: "master.csv", content: "a,b", wantErr: "not an Excel workbook"},
		{name: "lock file", file: "~$master.xlsx", content: "lock", wantErr: "temporary Excel lock file"},
		{name: "empty workbook", file: "empty.xlsx", content: "", wantErr: "is empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, dir, tt.file, tt.content)
			err := v.ValidateMasterWorkbook(path)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateDocumentFile(t *testing.T) {
	dir := t.TempDir()
	v := NewFileValidator(nil)

	pdf := writeFile(t, dir, "invoice.pdf", "x")
	assert.NoError(t, v.ValidateDocumentFile(pdf))

	docx := writeFile(t, dir, "list.docx", "x")
	assert.NoError(t, v.ValidateDocumentFile(docx))

	txt := writeFile(t, dir, "notes.txt", "x")
	assert.ErrorContains(t, v.ValidateDocumentFile(txt), "unsupported format")
}

func TestValidateInputDirectory(t *testing.T) {
	v := NewFileValidator(nil)

	t.Run("counts supported documents", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "invoice.pdf", "x")
		writeFile(t, dir, "list.docx", "x")
		writeFile(t, dir, "~$list.docx", "x")
		writeFile(t, dir, "notes.txt", "x")

		count, err := v.ValidateInputDirectory(dir)
		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})

	t.Run("empty directory is not an error", func(t *testing.T) {
		count, err := v.ValidateInputDirectory(t.TempDir())
		require.NoError(t, err)
		assert.Equal(t, 0, count)
	})

	t.Run("missing directory", func(t *testing.T) {
		_, err := v.ValidateInputDirectory(filepath.Join(t.TempDir(), "nope"))
		assert.ErrorContains(t, err, "does not exist")
	})

	t.Run("path is a file", func(t *testing.T) {
		dir := t.TempDir()
		path := writeFile(t, dir, "file.pdf", "x")
		_, err := v.ValidateInputDirectory(path)
		assert.ErrorContains(t, err, "is not a directory")
	})
}

func TestValidateOutputDirectory(t *testing.T) {
	v := NewFileValidator(nil)

	dir := filepath.Join(t.TempDir(), "reports")
	require.NoError(t, v.ValidateOutputDirectory(dir))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
