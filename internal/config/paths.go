package config

import (
	"os"
	"path/filepath"
)

// Paths holds the resolved per-user locations mechsize reads and writes.
type Paths struct {
	ConfigDir string // $XDG_CONFIG_HOME/mechsize or ~/.config/mechsize
	DataDir   string // $XDG_DATA_HOME/mechsize or ~/.local/share/mechsize
	Store     string // <DataDir>/designs.db
}

// DefaultPaths resolves Paths from the XDG variables, falling back to the
// home directory. With no home directory either, paths are relative to the
// working directory.
func DefaultPaths() *Paths {
	home, _ := os.UserHomeDir()

	configRoot := os.Getenv("XDG_CONFIG_HOME")
	if configRoot == "" {
		configRoot = filepath.Join(home, ".config")
	}
	dataRoot := os.Getenv("XDG_DATA_HOME")
	if dataRoot == "" {
		dataRoot = filepath.Join(home, ".local", "share")
	}

	dataDir := filepath.Join(dataRoot, "mechsize")
	return &Paths{
		ConfigDir: filepath.Join(configRoot, "mechsize"),
		DataDir:   dataDir,
		Store:     filepath.Join(dataDir, "designs.db"),
	}
}
