package rofiobsidian

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGatherEntries(t *testing.T) {
	ctx := context.Background()
	defer swapSources(t, []Vault{
		{Path: "/home/ann/Documents/personal"},
		{Path: "/home/ann/Downloads/personal"},
		{Path: "/home/ann/Documents/work"},
	}, nil)()

	t.Run("vault names", func(t *testing.T) {
		entries, err := GatherEntries(ctx, DefaultConfig())
		require.NoError(t, err)
		assert.Equal(t, []Entry{
			{Name: "Documents/personal", Path: "/home/ann/Documents/personal"},
			{Name: "work", Path: "/home/ann/Documents/work"},
			{Name: "Downloads/personal", Path: "/home/ann/Downloads/personal"},
		}, entries)
	})

	t.Run("paths", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.DisplayName = DisplayModePath
		entries, err := GatherEntries(ctx, cfg)
		require.NoError(t, err)
		for _, entry := range entries {
			assert.Equal(t, entry.Path, entry.Name)
		}
	})
}

func TestNewEntries(t *testing.T) {
	assert.Empty(t, NewEntries(nil, DisplayModeVaultName))
	assert.Equal(t, []Entry{{Name: "/a/b", Path: "/a/b"}}, NewEntries([]string{"/a/b"}, DisplayModeVaultName))
}

func TestFindEntry(t *testing.T) {
	entries := []Entry{
		{Name: "personal", Path: "/home/ann/personal"},
		{Name: "/home/ann/personal", Path: "/srv/home/ann/personal"},
	}

	for key, tc := range map[string]struct {
		query string
		want  Entry
		found bool
	}{
		"by name":       {query: "personal", want: entries[0], found: true},
		"path first":    {query: "/home/ann/personal", want: entries[0], found: true},
		"by other path": {query: "/srv/home/ann/personal", want: entries[1], found: true},
		"missing":       {query: "work"},
	} {
		t.Run(key, func(t *testing.T) {
			got, ok := FindEntry(entries, tc.query)
			assert.Equal(t, tc.found, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}
