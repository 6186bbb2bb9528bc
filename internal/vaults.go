package rofiobsidian

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"

	"github.com/adrg/xdg"
	"github.com/gobwas/glob"
	"github.com/mtth/rofi-obsidian/internal/except"
	"github.com/mtth/rofi-obsidian/internal/fspath"
	"github.com/mtth/rofi-obsidian/internal/source"
	"github.com/mtth/rofi-obsidian/internal/vault"
)

// Vault is a vault location with metadata from Obsidian's registries.
type Vault = source.Vault

var (
	loadRegistries = source.Load
	findVaults     = vault.Find
	vaultExists    = vault.Exists
)

var errInvalidExclude = errors.New("invalid exclude pattern")

// registryPaths returns the locations of the registries enabled in the configuration.
func registryPaths(cfg *SourceConfig) []fspath.Local {
	var fps []fspath.Local
	if cfg.Native {
		fps = append(fps, filepath.Join(xdg.ConfigHome, "obsidian", "obsidian.json"))
	}
	if cfg.Flatpak {
		fps = append(fps, filepath.Join(
			xdg.Home, ".var", "app", "md.obsidian.Obsidian", "config", "obsidian", "obsidian.json",
		))
	}
	for _, fp := range cfg.AdditionalSources {
		fps = append(fps, fspath.ExpandHome(fp))
	}
	return fps
}

// LoadVaults returns all vaults from the configured registries and scan roots, filtered and sorted
// as configured.
func LoadVaults(ctx context.Context, cfg *Config) ([]Vault, error) {
	pred, err := newPathPredicate(cfg.Source.Exclude)
	if err != nil {
		return nil, err
	}

	registered, err := loadRegistries(ctx, registryPaths(&cfg.Source))
	if err != nil {
		return nil, err
	}
	var scanned []Vault
	for _, root := range cfg.Source.ScanRoots {
		fps, err := findVaults(fspath.ExpandHome(root))
		if err != nil {
			slog.Warn("Vault scan failed, skipping root.", slog.String("root", root), except.LogErrAttr(err))
			continue
		}
		for _, fp := range fps {
			scanned = append(scanned, Vault{Path: fp})
		}
	}

	var vaults []Vault
	for _, v := range source.Merge(registered, scanned) {
		switch {
		case pred.matches(v.Path):
			slog.Debug("Excluded vault.", slog.String("path", v.Path))
		case cfg.Source.SkipMissing && !vaultExists(v.Path):
			slog.Debug("Skipped missing vault.", slog.String("path", v.Path))
		default:
			vaults = append(vaults, v)
		}
	}
	sortVaults(vaults, cfg.Menu.Sort)
	slog.Info(fmt.Sprintf("Loaded %v vault(s).", len(vaults)))
	return vaults, nil
}

func sortVaults(vaults []Vault, order SortOrder) {
	switch order {
	case SortOrderRecent:
		slices.SortStableFunc(vaults, func(v1, v2 Vault) int {
			if c := v2.LastOpenedAt.Compare(v1.LastOpenedAt); c != 0 {
				return c
			}
			return cmp.Compare(v1.Path, v2.Path)
		})
	default:
		slices.SortStableFunc(vaults, func(v1, v2 Vault) int { return cmp.Compare(v1.Path, v2.Path) })
	}
}

// pathPredicate matches paths against any of a list of globs.
type pathPredicate []glob.Glob

func newPathPredicate(pats []string) (pathPredicate, error) {
	var globs []glob.Glob
	for _, pat := range pats {
		compiled, err := glob.Compile(fspath.ExpandHome(pat), filepath.Separator)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", errInvalidExclude, pat, err)
		}
		globs = append(globs, compiled)
	}
	return pathPredicate(globs), nil
}

func (p pathPredicate) matches(fp fspath.Local) bool {
	for _, g := range p {
		if g.Match(fp) {
			return true
		}
	}
	return false
}
