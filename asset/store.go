package asset

import (
	"io/fs"
	"sort"
	"sync"
)

// Store orchestrates metadata providers and environment resolvers and
// implements the override/inheritance resolution algorithm.
//
// Provider lists are searched last-registered-first, and user-scope
// providers are always consulted before global-scope ones. A single
// read-write lock guards the lists: registration and ClearCache take the
// write lock, resolution runs under the read lock, so read-only
// resolution calls may proceed concurrently once providers are stable.
type Store struct {
	mu            sync.RWMutex
	envResolvers  []EnvironmentResolver
	providers     []MetadataProvider // global scope
	userProviders []MetadataProvider // user scope
}

// NewStore creates a store with the given initial global-scope providers.
func NewStore(providers ...MetadataProvider) *Store {
	return &Store{providers: providers}
}

// AddProvider appends a metadata provider to the given scope. Within a
// scope, the most recently added provider wins.
func (s *Store) AddProvider(provider MetadataProvider, scope Scope) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if scope == ScopeUser {
		s.userProviders = append(s.userProviders, provider)
	} else {
		s.providers = append(s.providers, provider)
	}
}

// AddDirectoryProvider appends a DirectoryProvider rooted at path to the
// given scope.
func (s *Store) AddDirectoryProvider(path string, scope Scope) {
	s.AddProvider(NewDirectoryProvider(path), scope)
}

// AddPackageProvider appends a PackageProvider over the given bundled
// filesystem to the global scope.
func (s *Store) AddPackageProvider(fsys fs.FS, name string) {
	s.AddProvider(NewPackageProvider(fsys, name), ScopeGlobal)
}

// AddEnvironmentResolver appends an environment resolver. Resolvers are
// evaluated in registration order on every RetrieveCard call.
func (s *Store) AddEnvironmentResolver(resolver EnvironmentResolver) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.envResolvers = append(s.envResolvers, resolver)
}

// ClearCache clears the cache of every registered metadata provider.
func (s *Store) ClearCache() {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, provider := range s.providers {
		provider.ClearCache()
	}
	for _, provider := range s.userProviders {
		provider.ClearCache()
	}
}

// RetrieveCard resolves the named asset into a card.
//
// The active environment list is computed once per call: each registered
// resolver contributes its non-empty tag in registration order, then the
// always-present "user" pseudo-environment is appended. For every tag, a
// "name@tag" record, when present, is shallow-merged over the accumulated
// metadata field by field with its own 'name' dropped. A 'base' field
// chains resolution to the parent record under the same environment list;
// circular base references fail instead of recursing unboundedly.
func (s *Store) RetrieveCard(name string, opts ...RetrieveOption) (*Card, error) {
	var cfg retrieveConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := checkName(name); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var envs []string
	if !cfg.ignoreEnvironment {
		envs = s.resolveEnvs()
	}

	return s.retrieveCard(name, envs, map[string]struct{}{})
}

func (s *Store) resolveEnvs() []string {
	var envs []string
	for _, resolver := range s.envResolvers {
		if env := resolver(); env != "" {
			envs = append(envs, env)
		}
	}
	return append(envs, userEnvironment)
}

func (s *Store) retrieveCard(name string, envs []string, visited map[string]struct{}) (*Card, error) {
	if _, seen := visited[name]; seen {
		return nil, NewCardError(name, "circular base reference")
	}
	visited[name] = struct{}{}

	metadata, err := s.lookupMetadata(name)
	if err != nil {
		return nil, err
	}

	// Overlay environment-specific records, later tags overriding earlier
	// ones. A missing per-environment variant is expected, not an error.
	for _, env := range envs {
		envMetadata, err := s.lookupMetadata(name + EnvSeparator + env)
		if err != nil {
			if IsNotFound(err) {
				continue
			}
			return nil, err
		}

		// The variant's own name must never override the base record's.
		delete(envMetadata, FieldName)

		for key, value := range envMetadata {
			metadata[key] = value
		}
	}

	var base *Card
	if rawBase, ok := metadata[FieldBase]; ok && rawBase != nil {
		baseName, ok := rawBase.(string)
		if !ok {
			return nil, NewCardError(name, "the value of the field '%s' must be a string, but is of type %T", FieldBase, rawBase)
		}
		if baseName != "" {
			base, err = s.retrieveCard(baseName, envs, visited)
			if err != nil {
				return nil, err
			}
		}
	}

	return NewCard(metadata, base), nil
}

// LookupMetadata searches the registered providers for the exact given
// name: user-scope providers most-recently-added-first, then global-scope
// providers likewise. The first hit wins; records are never merged across
// providers.
func (s *Store) LookupMetadata(name string) (Metadata, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lookupMetadata(name)
}

func (s *Store) lookupMetadata(name string) (Metadata, error) {
	for i := len(s.userProviders) - 1; i >= 0; i-- {
		metadata, err := s.userProviders[i].GetMetadata(name)
		if err != nil {
			if IsNotFound(err) {
				continue
			}
			return nil, err
		}
		return metadata, nil
	}

	for i := len(s.providers) - 1; i >= 0; i-- {
		metadata, err := s.providers[i].GetMetadata(name)
		if err != nil {
			if IsNotFound(err) {
				continue
			}
			return nil, err
		}
		return metadata, nil
	}

	return nil, NewNotFoundError(name)
}

// RetrieveNames enumerates all record names known to the providers of the
// given scope, deduplicated and sorted.
func (s *Store) RetrieveNames(scope Scope) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	providers := s.providers
	if scope == ScopeUser {
		providers = s.userProviders
	}

	seen := make(map[string]struct{})
	for _, provider := range providers {
		names, err := provider.Names()
		if err != nil {
			return nil, err
		}
		for _, name := range names {
			seen[name] = struct{}{}
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// directoryRoots returns the roots of all registered directory providers,
// in both scopes. Used by the watcher.
func (s *Store) directoryRoots() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var roots []string
	for _, provider := range append(append([]MetadataProvider{}, s.providers...), s.userProviders...) {
		if dp, ok := provider.(*DirectoryProvider); ok {
			roots = append(roots, dp.root)
		}
	}
	return roots
}
