// Package assets handles demo asset loading and caching.
package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Manager loads raw asset bytes from a root directory, caching results.
// Decoding is the consumer's job; the manager only hands out bytes.
type Manager struct {
	root string

	mu    sync.RWMutex
	cache map[string][]byte
}

// NewManager creates an asset manager rooted at dir.
func NewManager(dir string) *Manager {
	return &Manager{
		root:  dir,
		cache: make(map[string][]byte),
	}
}

// Load reads an asset by its path relative to the root. Results are
// cached; assets never change during a run.
func (m *Manager) Load(path string) ([]byte, error) {
	m.mu.RLock()
	data, ok := m.cache[path]
	m.mu.RUnlock()
	if ok {
		return data, nil
	}

	full := filepath.Join(m.root, filepath.FromSlash(path))
	data, err := os.ReadFile(full)
	if err != nil {
		return nil, fmt.Errorf("loading asset %s: %w", path, err)
	}

	m.mu.Lock()
	m.cache[path] = data
	m.mu.Unlock()

	return data, nil
}

// Exists reports whether an asset is present without loading it.
func (m *Manager) Exists(path string) bool {
	m.mu.RLock()
	_, ok := m.cache[path]
	m.mu.RUnlock()
	if ok {
		return true
	}
	_, err := os.Stat(filepath.Join(m.root, filepath.FromSlash(path)))
	return err == nil
}
