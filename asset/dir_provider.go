package asset

import (
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/teranos/atlas/logger"
)

// DirectoryProvider serves metadata records from YAML card files under a
// root directory. The directory is scanned lazily on first access and the
// result cached until ClearCache is called. Scans are guarded by a mutex
// so concurrent resolution calls are safe once providers are registered.
type DirectoryProvider struct {
	root string

	mu    sync.RWMutex
	cache map[string]Metadata
}

// NewDirectoryProvider creates a provider rooted at the given directory.
// The directory is not touched until the first metadata access.
func NewDirectoryProvider(root string) *DirectoryProvider {
	return &DirectoryProvider{root: filepath.Clean(root)}
}

// Source identifies the provider by its root directory.
func (p *DirectoryProvider) Source() string {
	return "directory:" + p.root
}

// GetMetadata returns a fresh copy of the record stored under name.
func (p *DirectoryProvider) GetMetadata(name string) (Metadata, error) {
	index, err := p.load()
	if err != nil {
		return nil, err
	}
	record, ok := index[name]
	if !ok {
		return nil, NewNotFoundError(name)
	}
	return record.Copy(), nil
}

// Names returns every record name under the root, sorted.
func (p *DirectoryProvider) Names() ([]string, error) {
	index, err := p.load()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(index))
	for name := range index {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// ClearCache discards the scan cache; the next access re-scans the root.
func (p *DirectoryProvider) ClearCache() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cache = nil
}

func (p *DirectoryProvider) load() (map[string]Metadata, error) {
	p.mu.RLock()
	cache := p.cache
	p.mu.RUnlock()
	if cache != nil {
		return cache, nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cache != nil {
		return p.cache, nil
	}

	index, err := scanCardFS(os.DirFS(p.root), p.Source(), func(dir, rel string) string {
		return filepath.Join(p.root, filepath.FromSlash(dir), filepath.FromSlash(rel))
	})
	if err != nil {
		return nil, err
	}

	logger.Debugw("Scanned asset directory",
		"root", p.root,
		"records", len(index))

	p.cache = index
	return index, nil
}
