package files

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FileInfo represents information about a discovered file
type FileInfo struct {
	Path string
	Name string
	Size int64
}

// Discovery provides file discovery operations
type Discovery struct {
	basePath string
}

// NewDiscovery creates a new file discovery instance
func NewDiscovery(basePath string) *Discovery {
	return &Discovery{basePath: basePath}
}

// FindMasterWorkbooks finds all Excel workbooks in the specified directory.
// Results are sorted by name so repeated runs see the same order.
func (d *Discovery) FindMasterWorkbooks(dir string) ([]FileInfo, error) {
	return d.findByExtension(dir, ".xlsx", ".xls")
}

// FindComparisonDocuments finds all PDF and DOCX documents in the specified
// directory, sorted by name.
func (d *Discovery) FindComparisonDocuments(dir string) ([]FileInfo, error) {
	return d.findByExtension(dir, ".pdf", ".docx")
}

func (d *Discovery) findByExtension(dir string, exts ...string) ([]FileInfo, error) {
	fullPath := dir
	if !filepath.IsAbs(dir) {
		fullPath = filepath.Join(d.basePath, dir)
	}

	entries, err := os.ReadDir(fullPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", fullPath, err)
	}

	var files []FileInfo
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		// Office lock files start with ~$ and are not real documents
		if strings.HasPrefix(name, "~$") {
			continue
		}
		if !hasAnySuffix(strings.ToLower(name), exts) {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		files = append(files, FileInfo{
			Path: filepath.Join(fullPath, name),
			Name: name,
			Size: info.Size(),
		})
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].Name < files[j].Name
	})

	return files, nil
}

// SelectMaster picks the single master workbook from a discovery result.
// Exactly one workbook must be present; anything else is an error the
// operator has to resolve.
func SelectMaster(files []FileInfo) (FileInfo, error) {
	switch len(files) {
	case 0:
		return FileInfo{}, fmt.Errorf("no master workbook found")
	case 1:
		return files[0], nil
	default:
		names := make([]string, len(files))
		for i, f := range files {
			names[i] = f.Name
		}
		return FileInfo{}, fmt.Errorf("multiple master workbooks found (%s), pass one explicitly",
			strings.Join(names, ", "))
	}
}

func hasAnySuffix(name string, exts []string) bool {
	for _, ext := range exts {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}
