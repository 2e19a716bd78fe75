package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths contains all the application paths.
// This is the single source of truth for file locations:
//
//	<executable dir>/
//	  ├── config.yaml        (optional)
//	  ├── data/
//	  │   ├── documents/     (comparison documents to verify)
//	  │   ├── reports/       (generated CSV/text reports)
//	  │   └── cache/         (scratch space for document extraction)
//	  └── logs/
type Paths struct {
	ExecutableDir string
	DataDir       string
	DocumentsDir  string
	ReportsDir    string
	CacheDir      string
	LogsDir       string
}

// GetPaths returns the application paths relative to the executable
// location, never the current working directory, so the tool behaves the
// same wherever it is launched from.
func GetPaths() (*Paths, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("failed to get executable path: %w", err)
	}

	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve executable symlinks: %w", err)
	}

	return PathsIn(filepath.Dir(exe)), nil
}

// PathsIn builds the path set rooted at the given directory. Split out of
// GetPaths so tests can root everything in a temp dir.
func PathsIn(baseDir string) *Paths {
	dataDir := filepath.Join(baseDir, "data")
	return &Paths{
		ExecutableDir: baseDir,
		DataDir:       dataDir,
		DocumentsDir:  filepath.Join(dataDir, "documents"),
		ReportsDir:    filepath.Join(dataDir, "reports"),
		CacheDir:      filepath.Join(dataDir, "cache"),
		LogsDir:       filepath.Join(baseDir, "logs"),
	}
}

// EnsureDirectories creates all required directories
func (p *Paths) EnsureDirectories() error {
	dirs := []string{p.DataDir, p.DocumentsDir, p.ReportsDir, p.CacheDir, p.LogsDir}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// GetDocumentPath returns the full path for a comparison document
func (p *Paths) GetDocumentPath(filename string) string {
	return filepath.Join(p.DocumentsDir, filename)
}

// GetReportPath returns the full path for a report file
func (p *Paths) GetReportPath(filename string) string {
	return filepath.Join(p.ReportsDir, filename)
}

// GetCachePath returns the full path for a scratch file
func (p *Paths) GetCachePath(filename string) string {
	return filepath.Join(p.CacheDir, filename)
}

// GetLogPath returns the full path for a log file
func (p *Paths) GetLogPath(filename string) string {
	return filepath.Join(p.LogsDir, filename)
}
