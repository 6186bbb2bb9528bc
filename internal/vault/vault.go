// Package vault detects Obsidian vaults on the local filesystem.
package vault

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/mtth/rofi-obsidian/internal/except"
	"github.com/mtth/rofi-obsidian/internal/fspath"
)

// ConfigDirName is the name of the folder Obsidian creates at the root of every vault.
const ConfigDirName = ".obsidian"

// fileSystem is swapped out for testing.
var fileSystem = os.DirFS("/")

// unabs converts a local path into a path relative to the root of fileSystem.
func unabs(fpath fspath.Local) fspath.POSIX {
	absPath, err := filepath.Abs(fpath)
	except.Must(err == nil, "can't make path %v absolute: %v", fpath, err)
	rel := strings.TrimPrefix(absPath, filepath.VolumeName(absPath))
	rel = filepath.ToSlash(strings.TrimPrefix(rel, string(filepath.Separator)))
	if rel == "" {
		return "."
	}
	return rel
}

// IsVault returns whether the directory at dpath contains an Obsidian configuration folder. A
// missing directory is not an error.
func IsVault(dpath fspath.Local) (bool, error) {
	info, err := fs.Stat(fileSystem, unabs(filepath.Join(dpath, ConfigDirName)))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return info.IsDir(), nil
}

// Exists returns true iff dpath is an existing directory.
func Exists(dpath fspath.Local) bool {
	info, err := fs.Stat(fileSystem, unabs(dpath))
	return err == nil && info.IsDir()
}
