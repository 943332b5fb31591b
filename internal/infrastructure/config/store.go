// Package config persists the mapping store as YAML under the user config
// directory (overridable via SEMANTIC_CONFIG or an explicit path).
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/semanticos/semantic/internal/domain"
	"github.com/semanticos/semantic/internal/pkg/filesystem"
	"github.com/semanticos/semantic/internal/ports"
)

// FileStore reads and writes ~/.config/semantic/config.yaml.
type FileStore struct {
	overridePath string
}

// NewFileStore builds a store. An empty path means resolve from the
// environment; tests pass a path inside a temp dir.
func NewFileStore(path string) *FileStore {
	return &FileStore{overridePath: path}
}

// Load implements ports.ConfigLoader. A missing or unreadable file yields
// ErrConfigUnreadable; a file that does not parse yields ErrConfigMalformed.
func (s *FileStore) Load() (domain.MappingStore, error) {
	path := s.Path()

	data, err := os.ReadFile(path)
	if err != nil {
		return domain.MappingStore{}, fmt.Errorf("%w: %s: %v", domain.ErrConfigUnreadable, path, err)
	}

	var store domain.MappingStore
	if err := yaml.Unmarshal(data, &store); err != nil {
		return domain.MappingStore{}, fmt.Errorf("%w: %s: %v", domain.ErrConfigMalformed, path, err)
	}
	if store.Commands == nil {
		store.Commands = map[string]string{}
	}
	if store.Paths == nil {
		store.Paths = map[string]string{}
	}

	return store, nil
}

// Save implements ports.ConfigSaver. Parent directories are created as
// needed and the full record is rewritten.
func (s *FileStore) Save(store domain.MappingStore) error {
	path := s.Path()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	raw, err := yaml.Marshal(store)
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o644)
}

// Path returns the resolved config file location (for display).
func (s *FileStore) Path() string {
	if s.overridePath != "" {
		return s.overridePath
	}
	if custom := os.Getenv("SEMANTIC_CONFIG"); custom != "" {
		return custom
	}
	return filepath.Join(Dir(), "config.yaml")
}

// Dir returns the tool's config directory.
func Dir() string {
	return filepath.Join(filesystem.UserConfigDir(), "semantic")
}

var _ ports.ConfigStore = (*FileStore)(nil)
