package asset

import (
	"io/fs"
	"sort"
	"sync"
)

// PackageProvider serves metadata records from card files bundled with
// the software distribution, typically an embed.FS. It implements the
// same contract as DirectoryProvider; path-valued fields are left
// untouched since embedded files have no on-disk location to resolve
// against.
type PackageProvider struct {
	fsys fs.FS
	name string

	mu    sync.RWMutex
	cache map[string]Metadata
}

// NewPackageProvider creates a provider over the given filesystem. name
// identifies the bundle in provenance tags, e.g. "atlas/cards".
func NewPackageProvider(fsys fs.FS, name string) *PackageProvider {
	return &PackageProvider{fsys: fsys, name: name}
}

// Source identifies the provider by its bundle name.
func (p *PackageProvider) Source() string {
	return "package:" + p.name
}

// GetMetadata returns a fresh copy of the record stored under name.
func (p *PackageProvider) GetMetadata(name string) (Metadata, error) {
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

// Names returns every bundled record name, sorted.
func (p *PackageProvider) Names() ([]string, error) {
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

// ClearCache discards the scan cache. Embedded bundles cannot change at
// runtime, but the contract is uniform across provider variants.
func (p *PackageProvider) ClearCache() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cache = nil
}

func (p *PackageProvider) load() (map[string]Metadata, error) {
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

	index, err := scanCardFS(p.fsys, p.Source(), nil)
	if err != nil {
		return nil, err
	}

	p.cache = index
	return index, nil
}
