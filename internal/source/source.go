package source

import (
	"time"

	"github.com/mtth/rofi-obsidian/internal/fspath"
)

// Vault captures information about a vault recorded by Obsidian.
type Vault struct {
	// Path to the vault's root folder, as recorded. Non-empty.
	Path fspath.Local
	// Last time the vault was opened. Zero if unknown.
	LastOpenedAt time.Time
	// True if the vault was open when the registry was last written.
	Open bool
}

// vaultsBuilder accumulates vaults, merging entries which share a path. The first occurrence of a
// path determines its position.
type vaultsBuilder struct {
	vaults  []Vault
	indices map[fspath.Local]int
}

func (b *vaultsBuilder) add(vaults ...Vault) {
	if b.indices == nil {
		b.indices = make(map[fspath.Local]int)
	}
	for _, vault := range vaults {
		i, ok := b.indices[vault.Path]
		if !ok {
			b.indices[vault.Path] = len(b.vaults)
			b.vaults = append(b.vaults, vault)
			continue
		}
		existing := &b.vaults[i]
		if vault.LastOpenedAt.After(existing.LastOpenedAt) {
			existing.LastOpenedAt = vault.LastOpenedAt
		}
		existing.Open = existing.Open || vault.Open
	}
}

func (b *vaultsBuilder) build() []Vault {
	return b.vaults
}

// Merge combines vault lists, deduplicating by path. Merged entries keep the most recent opening
// time and are open if any of their duplicates is.
func Merge(lists ...[]Vault) []Vault {
	var builder vaultsBuilder
	for _, vaults := range lists {
		builder.add(vaults...)
	}
	return builder.build()
}
