package fspath

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// Splitter breaks local paths into leaf-first components.
type Splitter interface {
	Split(p Local) Components
}

// HostSplitter splits paths using the separator and volume rules of the current platform.
var HostSplitter Splitter = hostSplitter{}

// Split is a shorthand for HostSplitter.Split.
func Split(p Local) Components {
	return HostSplitter.Split(p)
}

type hostSplitter struct{}

// Split implements Splitter. It never returns an empty slice: the empty path yields a single empty
// component. Repeated and trailing separators are ignored, as are "." elements other than a
// leading one. ".." elements are kept as-is.
func (hostSplitter) Split(p Local) Components {
	vol := filepath.VolumeName(p)
	rest := p[len(vol):]

	var parts []string // root-to-leaf
	switch {
	case rest != "" && os.IsPathSeparator(rest[0]):
		parts = append(parts, vol+string(filepath.Separator))
	case vol != "":
		parts = append(parts, vol)
	}
	for _, part := range strings.FieldsFunc(rest, isSeparator) {
		if part == "." && len(parts) > 0 {
			continue
		}
		parts = append(parts, part)
	}
	if len(parts) == 0 {
		return Components{""}
	}

	comps := make(Components, len(parts))
	for i, part := range parts {
		comps[len(parts)-1-i] = part
	}
	return comps
}

func isSeparator(r rune) bool {
	return r < 0x80 && os.IsPathSeparator(uint8(r))
}

// Join reassembles components in root-to-leaf order using the platform separator. The receiver is
// not modified.
func (c Components) Join() Local {
	var b strings.Builder
	for i := len(c) - 1; i >= 0; i-- {
		elem := c[i]
		b.WriteString(elem)
		if i > 0 && !isRoot(elem) {
			b.WriteByte(filepath.Separator)
		}
	}
	return b.String()
}

// isRoot returns true if elem is a root component, which must not be followed by a separator.
func isRoot(elem string) bool {
	if elem == "" {
		return false
	}
	if os.IsPathSeparator(elem[len(elem)-1]) {
		return true
	}
	return filepath.VolumeName(elem) == elem
}

// ExpandHome replaces a leading "~" element with the user's home directory.
func ExpandHome(p Local) Local {
	if p == "~" {
		return xdg.Home
	}
	if rest, ok := strings.CutPrefix(p, "~"); ok && rest != "" && os.IsPathSeparator(rest[0]) {
		return filepath.Join(xdg.Home, rest)
	}
	return p
}
