package asset

import "os"

// userEnvironment is the always-present pseudo-environment appended to the
// active environment list. It lets a user override the metadata of any
// asset locally by defining a same-named record with a "@user" suffix,
// e.g. to point a gated model's checkpoint at a local path.
const userEnvironment = "user"

// EnvironmentResolver returns the name of the currently active deployment
// or runtime environment, or "" when none applies. Resolvers must be
// side-effect-free and fast: every RetrieveCard call invokes each of them
// synchronously. The store does not guard against panicking resolvers;
// they are trusted infrastructure code.
type EnvironmentResolver func() string

// StaticEnvironment returns a resolver that always reports the given tag.
func StaticEnvironment(tag string) EnvironmentResolver {
	return func() string { return tag }
}

// EnvironmentFromVar returns a resolver that reads the environment tag
// from the given process environment variable on every call.
func EnvironmentFromVar(key string) EnvironmentResolver {
	return func() string { return os.Getenv(key) }
}
