package asset

import "strings"

// EnvSeparator is the reserved character separating an asset name from an
// environment tag ("name@env"). Plain asset names must not contain it.
const EnvSeparator = "@"

// SplitEnv splits a possibly environment-suffixed name into its base name
// and environment tag. A name without a separator returns an empty tag.
// The split is purely lexical, on the first separator.
func SplitEnv(name string) (base, env string) {
	if at := strings.Index(name, EnvSeparator); at != -1 {
		return name[:at], name[at+len(EnvSeparator):]
	}
	return name, ""
}

// checkName rejects names containing the reserved environment separator.
func checkName(name string) error {
	if strings.Contains(name, EnvSeparator) {
		return NewInvalidArgumentError("asset name '%s' must not contain the reserved '%s' character", name, EnvSeparator)
	}
	return nil
}
