package vault

import (
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/mtth/rofi-obsidian/internal/effect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var emptyFile = &fstest.MapFile{}

func swapFileSystem(mapfs fstest.MapFS) func() {
	return effect.Swap[fs.FS](&fileSystem, mapfs)
}

func TestFind(t *testing.T) {
	t.Run("invalid folder", func(t *testing.T) {
		defer swapFileSystem(fstest.MapFS{
			"foo": emptyFile,
		})()
		vaults, err := Find("/bar")
		require.ErrorIs(t, err, errVaultSearchFailed)
		assert.Empty(t, vaults)
	})

	t.Run("single vault", func(t *testing.T) {
		defer swapFileSystem(fstest.MapFS{
			"root/notes/.obsidian/app.json": emptyFile,
			"root/notes/daily.md":           emptyFile,
			"root/other/readme.md":          emptyFile,
		})()
		vaults, err := Find("/root")
		require.NoError(t, err)
		assert.Equal(t, []string{"/root/notes"}, vaults)
	})

	t.Run("root is a vault", func(t *testing.T) {
		defer swapFileSystem(fstest.MapFS{
			"root/.obsidian/app.json":     emptyFile,
			"root/sub/.obsidian/app.json": emptyFile,
		})()
		vaults, err := Find("/root")
		require.NoError(t, err)
		assert.Equal(t, []string{"/root"}, vaults)
	})

	t.Run("ignores folders", func(t *testing.T) {
		defer swapFileSystem(fstest.MapFS{
			"root/node_modules/pkg/.obsidian/app.json": emptyFile,
			"root/.trash/old/.obsidian/app.json":       emptyFile,
		})()
		vaults, err := Find("/root")
		require.NoError(t, err)
		assert.Empty(t, vaults)
	})

	t.Run("ignores nested vaults", func(t *testing.T) {
		defer swapFileSystem(fstest.MapFS{
			"root/parent/.obsidian/app.json":               emptyFile,
			"root/parent/archive/child/.obsidian/app.json": emptyFile,
		})()
		vaults, err := Find("/root")
		require.NoError(t, err)
		assert.Equal(t, []string{"/root/parent"}, vaults)
	})

	t.Run("maximum depth", func(t *testing.T) {
		defer swapFileSystem(fstest.MapFS{
			"root/a/b/c/.obsidian/app.json":   emptyFile,
			"root/x/y/z/w/.obsidian/app.json": emptyFile,
		})()
		vaults, err := Find("/root")
		require.NoError(t, err)
		assert.Equal(t, []string{"/root/a/b/c"}, vaults)
	})

	t.Run("multiple vaults", func(t *testing.T) {
		defer swapFileSystem(fstest.MapFS{
			"root/one/.obsidian/app.json": emptyFile,
			"root/two/.obsidian/app.json": emptyFile,
		})()
		vaults, err := Find("/root")
		require.NoError(t, err)
		assert.Equal(t, []string{"/root/one", "/root/two"}, vaults)
	})
}

func TestIsVault(t *testing.T) {
	defer swapFileSystem(fstest.MapFS{
		"notes/.obsidian/app.json": emptyFile,
		"fake/.obsidian":           emptyFile,
		"plain/readme.md":          emptyFile,
	})()

	for key, tc := range map[string]struct {
		path string
		want bool
	}{
		"vault":          {path: "/notes", want: true},
		"file marker":    {path: "/fake", want: false},
		"plain folder":   {path: "/plain", want: false},
		"missing folder": {path: "/missing", want: false},
	} {
		t.Run(key, func(t *testing.T) {
			got, err := IsVault(tc.path)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestExists(t *testing.T) {
	defer swapFileSystem(fstest.MapFS{
		"notes/daily.md": emptyFile,
	})()

	assert.True(t, Exists("/notes"))
	assert.False(t, Exists("/notes/daily.md"))
	assert.False(t, Exists("/missing"))
}
