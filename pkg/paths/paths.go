package paths

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for csvexport
	EnvConfigDir = "CSVEXPORT_CONFIG_DIR"

	// EnvScratchDir overrides the base folder of scratch exports
	EnvScratchDir = "CSVEXPORT_SCRATCH_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

const (
	// AppName is the directory name used under XDG base directories
	AppName = "csvexport"

	// ConfigFileName is the user configuration file inside ConfigDir
	ConfigFileName = "config.toml"

	// ProjectConfigFile is looked up in the working directory
	ProjectConfigFile = "csvexport.toml"

	// ScratchSubdir holds per-run scratch folders under the cache home
	ScratchSubdir = "exports"
)

// ConfigDir returns the directory holding the user configuration.
func ConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return ExpandHome(dir)
	}
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, AppName)
	}
	return filepath.Join(xdg.ConfigHome, AppName)
}

// ConfigFile returns the path of the user configuration file.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), ConfigFileName)
}

// ScratchBase returns the folder under which scratch exports are created.
func ScratchBase() string {
	if dir := os.Getenv(EnvScratchDir); dir != "" {
		return ExpandHome(dir)
	}
	if dir := os.Getenv("XDG_CACHE_HOME"); dir != "" {
		return filepath.Join(dir, AppName, ScratchSubdir)
	}
	return filepath.Join(xdg.CacheHome, AppName, ScratchSubdir)
}

// ScratchDir returns a fresh, timestamped scratch folder for a run
// started at now. The folder is not created.
func ScratchDir(now time.Time) string {
	return filepath.Join(ScratchBase(), now.Format("20060102-150405"))
}

// ResolveOutputDir returns dir with ~ expanded, or a scratch folder when
// dir is blank.
func ResolveOutputDir(dir string, now time.Time) string {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return ScratchDir(now)
	}
	return ExpandHome(dir)
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to HOME env var
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}
	// ~user forms are left alone
	return path
}
