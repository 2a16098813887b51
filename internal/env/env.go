// Package env computes the well-known directories gooseboy uses.
package env

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// ModDir returns the mod directory the game's plugin loader reads from,
// a fixed subdirectory of the user's home. The directory is not created
// here; the installer creates it on first install.
func ModDir() string {
	return filepath.Join(xdg.Home, ".gooseboy")
}
