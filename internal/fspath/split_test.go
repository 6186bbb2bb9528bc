package fspath

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("POSIX separators only")
	}

	for key, tc := range map[string]struct {
		path string
		want Components
	}{
		"empty":              {path: "", want: Components{""}},
		"single segment":     {path: "notes", want: Components{"notes"}},
		"root":               {path: "/", want: Components{"/"}},
		"absolute":           {path: "/a/b", want: Components{"b", "a", "/"}},
		"home relative":      {path: "~/Documents/personal", want: Components{"personal", "Documents", "~"}},
		"repeated separator": {path: "a//b", want: Components{"b", "a"}},
		"trailing separator": {path: "/a/b/", want: Components{"b", "a", "/"}},
		"inner dot":          {path: "a/./b", want: Components{"b", "a"}},
		"leading dot":        {path: "./a", want: Components{"a", "."}},
		"parent":             {path: "a/../b", want: Components{"b", "..", "a"}},
		"backslash":          {path: `/a\/b`, want: Components{"b", `a\`, "/"}},
	} {
		t.Run(key, func(t *testing.T) {
			assert.Equal(t, tc.want, Split(tc.path))
		})
	}
}

func TestComponentsJoin(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("POSIX separators only")
	}

	for _, tc := range []string{
		"",
		"/",
		"notes",
		"/a/b",
		"~/Documents/personal",
		"a/../b",
		"./a",
	} {
		t.Run(tc, func(t *testing.T) {
			assert.Equal(t, tc, Split(tc).Join())
		})
	}

	t.Run("truncated", func(t *testing.T) {
		comps := Split("/home/ann/vaults/personal")
		assert.Equal(t, "vaults/personal", comps[:2].Join())
		assert.Equal(t, Components{"personal", "vaults", "ann", "home", "/"}, comps)
	})

	t.Run("empty components", func(t *testing.T) {
		assert.Equal(t, "", Components(nil).Join())
	})
}

func TestExpandHome(t *testing.T) {
	for key, tc := range map[string]struct {
		path string
		want string
	}{
		"home":     {path: "~", want: xdg.Home},
		"nested":   {path: "~/notes", want: filepath.Join(xdg.Home, "notes")},
		"absolute": {path: "/notes", want: "/notes"},
		"username": {path: "~ann/notes", want: "~ann/notes"},
	} {
		t.Run(key, func(t *testing.T) {
			assert.Equal(t, tc.want, ExpandHome(tc.path))
		})
	}
}
