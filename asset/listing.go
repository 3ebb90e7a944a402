package asset

import "sort"

// SourceAssets groups asset names by the provenance source they were
// scanned from.
type SourceAssets struct {
	Source string
	Names  []string
}

// ListAssets returns all asset names known to the given scope, grouped by
// provenance source, groups sorted by source and names sorted within.
// Bare names are resolved with the environment ignored so the listing
// reflects the stored records; environment-suffixed names resolve their
// base name under the active environment, mirroring what a caller in that
// environment would see.
func (s *Store) ListAssets(scope Scope) ([]SourceAssets, error) {
	names, err := s.RetrieveNames(scope)
	if err != nil {
		return nil, err
	}

	groups := make(map[string][]string)
	for _, name := range names {
		baseName, _ := SplitEnv(name)

		var opts []RetrieveOption
		if baseName == name {
			opts = append(opts, IgnoreEnvironment())
		}

		card, err := s.RetrieveCard(baseName, opts...)
		if err != nil {
			return nil, err
		}

		source := card.source()
		groups[source] = append(groups[source], name)
	}

	out := make([]SourceAssets, 0, len(groups))
	for source, names := range groups {
		sort.Strings(names)
		out = append(out, SourceAssets{Source: source, Names: names})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Source < out[j].Source })
	return out, nil
}
