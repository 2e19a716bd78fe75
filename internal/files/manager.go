package files

import (
	"fmt"
	"os"
	"path/filepath"
)

// Manager provides basic file management operations
type Manager struct {
	basePath string
}

// NewManager creates a new file manager instance
func NewManager(basePath string) *Manager {
	return &Manager{basePath: basePath}
}

func (m *Manager) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(m.basePath, path)
}

// FileExists checks if a file exists and is not a directory
func (m *Manager) FileExists(path string) bool {
	info, err := os.Stat(m.resolve(path))
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirExists checks if a directory exists
func (m *Manager) DirExists(path string) bool {
	info, err := os.Stat(m.resolve(path))
	if err != nil {
		return false
	}
	return info.IsDir()
}

// EnsureDir ensures a directory exists, creating it if necessary
func (m *Manager) EnsureDir(path string) error {
	fullPath := m.resolve(path)
	if err := os.MkdirAll(fullPath, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", fullPath, err)
	}
	return nil
}

// ReadFile reads a file's contents relative to the base path
func (m *Manager) ReadFile(path string) ([]byte, error) {
	fullPath := m.resolve(path)
	data, err := os.ReadFile(fullPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", fullPath, err)
	}
	return data, nil
}
