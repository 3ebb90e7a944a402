// Package cards holds the asset card files bundled with atlas.
package cards

import "embed"

// Files is the builtin card bundle served by the default package
// provider.
//
//go:embed *.yaml
var Files embed.FS
