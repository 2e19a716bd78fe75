package files

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, dir, name string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644))
}

func TestFindComparisonDocuments(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "invoice.pdf")
	touch(t, dir, "bl.PDF")
	touch(t, dir, "packing_list.docx")
	touch(t, dir, "~$packing_list.docx")
	touch(t, dir, "notes.txt")
	touch(t, dir, "master.xlsx")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "archive.pdf"), 0755))

	discovery := NewDiscovery(dir)
	found, err := discovery.FindComparisonDocuments(dir)
	require.NoError(t, err)

	names := make([]string, len(found))
	for i, f := range found {
		names[i] = f.Name
	}
	assert.Equal(t, []string{"bl.PDF", "invoice.pdf", "packing_list.docx"}, names)
}

func TestFindMasterWorkbooks(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "master.xlsx")
	touch(t, dir, "old_master.xls")
	touch(t, dir, "invoice.pdf")

	discovery := NewDiscovery(dir)
	found, err := discovery.FindMasterWorkbooks(dir)
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, "master.xlsx", found[0].Name)
	assert.Equal(t, "old_master.xls", found[1].Name)
}

func TestFindComparisonDocuments_RelativeDir(t *testing.T) {
	base := t.TempDir()
	docs := filepath.Join(base, "docs")
	require.NoError(t, os.Mkdir(docs, 0755))
	touch(t, docs, "invoice.pdf")

	discovery := NewDiscovery(base)
	found, err := discovery.FindComparisonDocuments("docs")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, filepath.Join(docs, "invoice.pdf"), found[0].Path)
}

func TestFindComparisonDocuments_MissingDir(t *testing.T) {
	discovery := NewDiscovery(t.TempDir())
	_, err := discovery.FindComparisonDocuments("does-not-exist")
	assert.Error(t, err)
}

func TestSelectMaster(t *testing.T) {
	t.Run("single workbook", func(t *testing.T) {
		master, err := SelectMaster([]FileInfo{{Name: "master.xlsx"}})
		require.NoError(t, err)
		assert.Equal(t, "master.xlsx", master.Name)
	})

	t.Run("none found", func(t *testing.T) {
		_, err := SelectMaster(nil)
		assert.ErrorContains(t, err, "no master workbook")
	})

	t.Run("ambiguous", func(t *testing.T) {
		_, err := SelectMaster([]FileInfo{{Name: "a.xlsx"}, {Name: "b.xlsx"}})
		assert.ErrorContains(t, err, "multiple master workbooks")
	})
}
