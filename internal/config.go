// Package rofiobsidian lists Obsidian vaults and opens them.
package rofiobsidian

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"
	"github.com/mtth/rofi-obsidian/internal/fspath"
)

// configRelPath is the configuration file's location relative to XDG configuration directories.
var configRelPath = filepath.Join("rofi-obsidian", "config.toml")

// Config holds all user settings.
type Config struct {
	// How vaults are labelled in the menu.
	DisplayName DisplayMode  `toml:"display_name"`
	Source      SourceConfig `toml:"source"`
	Menu        MenuConfig   `toml:"menu"`
}

// SourceConfig controls where vaults are discovered.
type SourceConfig struct {
	// Read the registry of the Flatpak Obsidian install.
	Flatpak bool `toml:"flatpak"`
	// Read the registry of the native Obsidian install.
	Native bool `toml:"native"`
	// Paths to other obsidian.json registries. A leading ~ is expanded.
	AdditionalSources []fspath.Local `toml:"additional_sources"`
	// Directories searched for vaults, in addition to registries. A leading ~ is expanded.
	ScanRoots []fspath.Local `toml:"scan_roots"`
	// Glob patterns matched against vault paths. Matching vaults are hidden.
	Exclude []string `toml:"exclude"`
	// Hide vaults whose folder no longer exists.
	SkipMissing bool `toml:"skip_missing"`
}

// MenuConfig controls how the menu is presented.
type MenuConfig struct {
	Prompt string `toml:"prompt"`
	// Icon name attached to every entry. Empty for none.
	Icon string    `toml:"icon"`
	Sort SortOrder `toml:"sort"`
}

// DisplayMode selects how vaults are labelled.
type DisplayMode int

//go:generate go run github.com/dmarkham/enumer -type=DisplayMode -trimprefix DisplayMode -transform snake -text
const (
	// Shortest path suffix which is unique among all vaults.
	DisplayModeVaultName DisplayMode = iota
	// Full vault path.
	DisplayModePath
)

// SortOrder selects the order of vaults in the menu.
type SortOrder int

//go:generate go run github.com/dmarkham/enumer -type=SortOrder -trimprefix SortOrder -transform snake -text
const (
	// Alphabetical by path.
	SortOrderPath SortOrder = iota
	// Most recently opened first.
	SortOrderRecent
)

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		DisplayName: DisplayModeVaultName,
		Source: SourceConfig{
			Flatpak:           true,
			Native:            true,
			AdditionalSources: []fspath.Local{},
			ScanRoots:         []fspath.Local{},
			Exclude:           []string{},
		},
		Menu: MenuConfig{
			Prompt: "Vault",
			Sort:   SortOrderPath,
		},
	}
}

var (
	errMissingConfig = errors.New("missing configuration")
	errInvalidConfig = errors.New("invalid configuration")
)

// ReadConfig parses the configuration file at fp. Settings absent from the file keep their default
// value.
func ReadConfig(fp fspath.Local) (*Config, error) {
	data, err := os.ReadFile(fp)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errMissingConfig, err)
	}
	cfg := DefaultConfig()
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidConfig, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: unknown key %s", errInvalidConfig, undecoded[0])
	}
	slog.Debug("Read configuration.", slog.String("path", fp))
	return cfg, nil
}

// FindConfig reads the configuration from the first XDG configuration directory which contains
// one. If none does, the default configuration is returned.
func FindConfig() (*Config, error) {
	fp, err := xdg.SearchConfigFile(configRelPath)
	if err != nil {
		slog.Debug("No configuration found, using defaults.")
		return DefaultConfig(), nil
	}
	return ReadConfig(fp)
}

// ConfigPath returns the path where the configuration should be written, creating parent
// directories as needed.
func ConfigPath() (fspath.Local, error) {
	return xdg.ConfigFile(configRelPath)
}

// EncodeConfig writes the configuration as TOML.
func EncodeConfig(w io.Writer, cfg *Config) error {
	return toml.NewEncoder(w).Encode(cfg)
}

// WriteConfig saves the configuration to fp, creating parent directories as needed.
func WriteConfig(fp fspath.Local, cfg *Config) error {
	var buf bytes.Buffer
	if err := EncodeConfig(&buf, cfg); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(fp), 0755); err != nil {
		return err
	}
	if err := os.WriteFile(fp, buf.Bytes(), 0644); err != nil {
		return err
	}
	slog.Info("Wrote configuration.", slog.String("path", fp))
	return nil
}

// ConfigExists returns true if a file exists at fp.
func ConfigExists(fp fspath.Local) bool {
	_, err := os.Stat(fp)
	return !errors.Is(err, fs.ErrNotExist)
}
