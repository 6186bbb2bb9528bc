// Package source reads the vault registries maintained by Obsidian.
package source

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"maps"
	"os"
	"slices"
	"time"

	"github.com/mtth/rofi-obsidian/internal/except"
	"github.com/mtth/rofi-obsidian/internal/fspath"
)

var (
	errMissingRegistry    = errors.New("missing registry")
	errUnreadableRegistry = errors.New("unreadable registry")
	errInvalidRegistry    = errors.New("invalid registry")
)

// registry is the layout of Obsidian's obsidian.json file. Fields other than the ones below are
// ignored.
type registry struct {
	Vaults map[string]registryEntry `json:"vaults"`
}

type registryEntry struct {
	Path string `json:"path"`
	TS   int64  `json:"ts"`
	Open bool   `json:"open"`
}

// ReadRegistry returns all vaults listed in the registry file at fp, ordered by vault ID.
func ReadRegistry(fp fspath.Local) ([]Vault, error) {
	data, err := os.ReadFile(fp)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %v", errMissingRegistry, err)
	} else if err != nil {
		return nil, fmt.Errorf("%w: %v", errUnreadableRegistry, err)
	}

	var reg registry
	if err := json.Unmarshal(data, &reg); err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidRegistry, err)
	}

	ids := slices.Collect(maps.Keys(reg.Vaults))
	slices.Sort(ids)
	vaults := make([]Vault, 0, len(ids))
	for _, id := range ids {
		entry := reg.Vaults[id]
		if entry.Path == "" {
			return nil, fmt.Errorf("%w: vault %s has no path", errInvalidRegistry, id)
		}
		vault := Vault{Path: entry.Path, Open: entry.Open}
		if entry.TS > 0 {
			vault.LastOpenedAt = time.UnixMilli(entry.TS)
		}
		vaults = append(vaults, vault)
	}
	return vaults, nil
}

// Load returns the merged vaults of all registries, in order. Missing registries are skipped, as
// are registries which can't be read or parsed (with a warning).
func Load(ctx context.Context, fps []fspath.Local) ([]Vault, error) {
	slog.Debug("Loading vaults...")

	var builder vaultsBuilder
	for _, fp := range fps {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		vaults, err := ReadRegistry(fp)
		switch {
		case errors.Is(err, errMissingRegistry):
			slog.Debug("Registry not found, skipping.", slog.String("path", fp))
		case err != nil:
			slog.Warn("Registry read failed, skipping.", slog.String("path", fp), except.LogErrAttr(err))
		default:
			slog.Debug("Read registry.", slog.String("path", fp), slog.Int("count", len(vaults)))
			builder.add(vaults...)
		}
	}

	vaults := builder.build()
	slog.Info(fmt.Sprintf("Found %v vault(s).", len(vaults)))
	return vaults, nil
}
