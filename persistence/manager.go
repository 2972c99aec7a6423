// Package persistence handles save/load of best-found solutions as TOML
// documents, one file per named run.
package persistence

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Manager handles save/load for solution files under a base directory
type Manager struct {
	basePath string
}

// NewManager creates a manager with the given base directory
func NewManager(basePath string) *Manager {
	return &Manager{basePath: basePath}
}

// FilePath returns the path for a named solution
func (m *Manager) FilePath(name string) string {
	return filepath.Join(m.basePath, name+".toml")
}

// Exists checks if a solution file exists
func (m *Manager) Exists(name string) bool {
	_, err := os.Stat(m.FilePath(name))
	return err == nil
}

// Save writes a solution to disk
func (m *Manager) Save(name string, dto SolutionDTO) error {
	if err := os.MkdirAll(m.basePath, 0755); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(dto); err != nil {
		return err
	}

	return os.WriteFile(m.FilePath(name), buf.Bytes(), 0644)
}

// Load reads a solution from disk
func (m *Manager) Load(name string) (SolutionDTO, error) {
	var dto SolutionDTO

	data, err := os.ReadFile(m.FilePath(name))
	if err != nil {
		return dto, err
	}

	if err := toml.Unmarshal(data, &dto); err != nil {
		return dto, err
	}
	return dto, nil
}
