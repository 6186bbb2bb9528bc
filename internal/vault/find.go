package vault

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"path/filepath"
	"slices"

	"github.com/mtth/rofi-obsidian/internal/fspath"
)

var (
	// maxDepth is the maximum filesystem depth explored when searching for vaults in Find.
	maxDepth uint8 = 4

	// ignoredFolders contains folder names which are ignored when searching for vaults.
	ignoredFolders = []string{"node_modules", ".git", ".trash", ConfigDirName}

	// errVaultSearchFailed is returned when Find failed.
	errVaultSearchFailed = errors.New("unable to find vaults")
)

// Find walks the filesystem to find all vaults under the root, which may itself be a vault.
// Vaults nested inside other vaults are ignored.
func Find(root fspath.Local) ([]fspath.Local, error) {
	slog.Debug("Finding vaults...", slog.String("root", root))

	base := unabs(root)
	depths := make(map[fspath.POSIX]uint8)
	var vaults []fspath.Local
	if err := fs.WalkDir(fileSystem, base, func(fpath fspath.POSIX, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !entry.IsDir() {
			return nil
		}
		depth := depths[path.Dir(fpath)] + 1
		if fpath != base && (depth > maxDepth || slices.Contains(ignoredFolders, entry.Name())) {
			return fs.SkipDir
		}
		dpath := filepath.FromSlash("/" + fpath)
		if fpath == "." {
			dpath = string(filepath.Separator)
		}
		ok, err := IsVault(dpath)
		if err != nil {
			return err
		}
		if ok {
			vaults = append(vaults, dpath)
			return fs.SkipDir
		}
		depths[fpath] = depth
		return nil
	}); err != nil {
		return nil, fmt.Errorf("%w: %v", errVaultSearchFailed, err)
	}

	slog.Debug(fmt.Sprintf("Found %d vault(s) under root.", len(vaults)), slog.String("root", root))
	return vaults, nil
}
