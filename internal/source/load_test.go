package source

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadRegistry(t *testing.T) {
	t.Run("base", func(t *testing.T) {
		vaults, err := ReadRegistry("testdata/base.json")
		require.NoError(t, err)
		assert.Equal(t, []Vault{
			{Path: "/home/ann/Documents/personal", LastOpenedAt: time.UnixMilli(1700000000000), Open: true},
			{Path: "/home/ann/Documents/work", LastOpenedAt: time.UnixMilli(1690000000000)},
		}, vaults)
	})

	t.Run("extra fields", func(t *testing.T) {
		vaults, err := ReadRegistry("testdata/extra_fields.json")
		require.NoError(t, err)
		assert.Len(t, vaults, 2)
	})

	for key, tc := range map[string]struct {
		path string
		err  error
	}{
		"missing":      {path: "testdata/absent.json", err: errMissingRegistry},
		"directory":    {path: "testdata", err: errUnreadableRegistry},
		"invalid":      {path: "testdata/invalid.json", err: errInvalidRegistry},
		"missing path": {path: "testdata/missing_path.json", err: errInvalidRegistry},
	} {
		t.Run(key, func(t *testing.T) {
			vaults, err := ReadRegistry(tc.path)
			assert.Nil(t, vaults)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("merges registries", func(t *testing.T) {
		vaults, err := Load(ctx, []string{
			"testdata/base.json",
			"testdata/absent.json",
			"testdata/invalid.json",
			"testdata/extra_fields.json",
		})
		require.NoError(t, err)
		assert.Equal(t, []Vault{
			{Path: "/home/ann/Documents/personal", LastOpenedAt: time.UnixMilli(1710000000000), Open: true},
			{Path: "/home/ann/Documents/work", LastOpenedAt: time.UnixMilli(1690000000000)},
			{Path: "/home/ann/Downloads/personal", LastOpenedAt: time.UnixMilli(1680000000000)},
		}, vaults)
	})

	t.Run("no registries", func(t *testing.T) {
		vaults, err := Load(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, vaults)
	})

	t.Run("cancelled", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		vaults, err := Load(cctx, []string{"testdata/base.json"})
		assert.Nil(t, vaults)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestMerge(t *testing.T) {
	t0 := time.UnixMilli(3600_000)
	t1 := time.UnixMilli(4800_000)

	got := Merge(
		[]Vault{{Path: "TEST", LastOpenedAt: t0}, {Path: "FOO"}},
		[]Vault{{Path: "TEST", LastOpenedAt: t1, Open: true}, {Path: "BAR", LastOpenedAt: t0}},
	)
	assert.Equal(t, []Vault{
		{Path: "TEST", LastOpenedAt: t1, Open: true},
		{Path: "FOO"},
		{Path: "BAR", LastOpenedAt: t0},
	}, got)
}
