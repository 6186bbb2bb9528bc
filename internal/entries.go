package rofiobsidian

import (
	"context"

	"github.com/mtth/rofi-obsidian/internal/fspath"
	"github.com/mtth/rofi-obsidian/internal/naming"
)

// Entry is a vault as presented to the user.
type Entry struct {
	// Label shown in menus.
	Name string `json:"name"`
	// Full path to the vault.
	Path fspath.Local `json:"path"`
}

// GatherEntries loads vaults and labels them according to the configuration.
func GatherEntries(ctx context.Context, cfg *Config) ([]Entry, error) {
	vaults, err := LoadVaults(ctx, cfg)
	if err != nil {
		return nil, err
	}
	paths := make([]fspath.Local, len(vaults))
	for i, v := range vaults {
		paths[i] = v.Path
	}
	return NewEntries(paths, cfg.DisplayName), nil
}

// NewEntries labels each path using the given mode.
func NewEntries(paths []fspath.Local, mode DisplayMode) []Entry {
	names := paths
	if mode == DisplayModeVaultName {
		names = naming.UniqueNames(paths)
	}
	entries := make([]Entry, len(paths))
	for i, fp := range paths {
		entries[i] = Entry{Name: names[i], Path: fp}
	}
	return entries
}

// FindEntry returns the entry whose path, or failing that whose name, equals query.
func FindEntry(entries []Entry, query string) (Entry, bool) {
	for _, entry := range entries {
		if entry.Path == query {
			return entry, true
		}
	}
	for _, entry := range entries {
		if entry.Name == query {
			return entry, true
		}
	}
	return Entry{}, false
}
