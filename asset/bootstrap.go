package asset

import (
	"os"
	"path/filepath"

	"github.com/teranos/atlas/asset/cards"
	"github.com/teranos/atlas/logger"
)

// Environment variables and fallback directories that select metadata
// provider roots at bootstrap time.
const (
	assetDirVar     = "ATLAS_ASSET_DIR"
	userAssetDirVar = "ATLAS_USER_ASSET_DIR"

	systemAssetDir = "/etc/atlas/assets"
	userAssetRel   = "atlas/assets"
)

// Bootstrap builds a store wired from the process environment. It is an
// explicit call made once by the hosting application, not an import-time
// side effect.
//
// The store always carries the builtin card bundle. The global asset
// directory comes from ATLAS_ASSET_DIR, falling back to /etc/atlas/assets;
// the user directory from ATLAS_USER_ASSET_DIR, falling back to
// $XDG_CONFIG_HOME/atlas/assets (or ~/.config/atlas/assets). A missing
// directory simply leaves that provider unregistered.
func Bootstrap() *Store {
	store := NewStore(NewPackageProvider(cards.Files, "atlas/cards"))

	if dir := resolveAssetDir(assetDirVar, systemAssetDir); dir != "" {
		store.AddDirectoryProvider(dir, ScopeGlobal)
	}

	if dir := resolveAssetDir(userAssetDirVar, defaultUserAssetDir()); dir != "" {
		store.AddDirectoryProvider(dir, ScopeUser)
	}

	return store
}

// resolveAssetDir reads a directory from the given environment variable,
// falling back to fallback. An explicitly configured path that does not
// exist is skipped with a warning; a missing fallback is skipped silently.
func resolveAssetDir(envVar, fallback string) string {
	if dir := os.Getenv(envVar); dir != "" {
		if _, err := os.Stat(dir); err != nil {
			logger.Warnw("Asset directory from environment does not exist, skipping",
				"var", envVar,
				"path", dir)
			return ""
		}
		return dir
	}

	if fallback == "" {
		return ""
	}
	if _, err := os.Stat(fallback); err != nil {
		return ""
	}
	return fallback
}

func defaultUserAssetDir() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configDir = filepath.Join(home, ".config")
	}
	return filepath.Join(configDir, userAssetRel)
}
