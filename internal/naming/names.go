package naming

import (
	"slices"

	"github.com/mtth/rofi-obsidian/internal/fspath"
)

// splitter is swapped out for testing.
var splitter = fspath.HostSplitter

// UniqueNames returns a display name for each path, in the same order. Each name is the shortest
// trailing portion of its path which tells it apart from every other path. Identical paths get
// identical names.
//
// Every path is compared against all others, which is fine for the handful of vaults an Obsidian
// install typically records.
func UniqueNames(paths []fspath.Local) []string {
	comps := make([]fspath.Components, len(paths))
	for i, fp := range paths {
		comps[i] = splitter.Split(fp)
	}

	names := make([]string, len(paths))
	for i, own := range comps {
		names[i] = uniqueSuffix(own, comps, i).Join()
	}
	return names
}

// uniqueSuffix returns the leaf-first prefix of own needed to distinguish it from all peers. The
// peer at index self is skipped.
func uniqueSuffix(own fspath.Components, peers []fspath.Components, self int) fspath.Components {
	var prefixes []fspath.Components
	for j, peer := range peers {
		if j == self {
			continue
		}
		prefix, _ := diverge(own, peer)
		prefixes = append(prefixes, prefix)
	}
	if len(prefixes) == 0 {
		return own
	}
	return slices.MaxFunc(prefixes, compareLeafFirst)
}

// compareLeafFirst orders components element by element starting from the leaf. When one is a
// prefix of the other, the longer one is greater.
func compareLeafFirst(c1, c2 fspath.Components) int {
	return slices.Compare(c1, c2)
}
