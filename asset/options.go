package asset

// RetrieveOption customizes a single RetrieveCard call.
type RetrieveOption func(*retrieveConfig)

type retrieveConfig struct {
	ignoreEnvironment bool
}

// IgnoreEnvironment resolves the bare asset name only, skipping both the
// registered environment resolvers and the "@user" override layer. Used
// by listing tooling to display a record exactly as stored.
func IgnoreEnvironment() RetrieveOption {
	return func(cfg *retrieveConfig) { cfg.ignoreEnvironment = true }
}
