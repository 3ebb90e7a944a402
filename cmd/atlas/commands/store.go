package commands

import (
	"fmt"

	"github.com/teranos/atlas/asset"
	"github.com/teranos/atlas/config"
)

// openStore bootstraps the asset store from the process environment and
// applies the application configuration on top: extra directories become
// providers, configured environment tags become static resolvers.
func openStore() (*asset.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	store := asset.Bootstrap()

	if cfg.Assets.Dir != "" {
		store.AddDirectoryProvider(cfg.Assets.Dir, asset.ScopeGlobal)
	}
	if cfg.Assets.UserDir != "" {
		store.AddDirectoryProvider(cfg.Assets.UserDir, asset.ScopeUser)
	}
	for _, env := range cfg.Assets.Environments {
		store.AddEnvironmentResolver(asset.StaticEnvironment(env))
	}

	return store, nil
}
