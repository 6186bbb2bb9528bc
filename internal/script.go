package rofiobsidian

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/mtth/rofi-obsidian/internal/fspath"
	"github.com/mtth/rofi-obsidian/internal/rofi"
	"github.com/mtth/rofi-obsidian/internal/vault"
)

var (
	// ErrOutsideRofi is returned when the script is invoked without rofi's environment.
	ErrOutsideRofi = errors.New("not running inside rofi")

	errUnknownVault = errors.New("unknown vault")

	openVault = OpenVault
	isVault   = vault.IsVault
)

// RunScript handles a single rofi script mode invocation: it either prints the menu or opens the
// vault the user picked. args are the script's command line arguments.
func RunScript(ctx context.Context, cfg *Config, env rofi.Env, args []string, out io.Writer) error {
	if !env.Active {
		return ErrOutsideRofi
	}
	slog.Debug("Running rofi script.", slog.Int("state", int(env.State)), slog.Any("args", args))

	switch env.State {
	case rofi.StateInitial:
		entries, err := GatherEntries(ctx, cfg)
		if err != nil {
			return err
		}
		return WriteMenu(out, cfg, entries)
	case rofi.StateSelected:
		if env.Info != "" {
			return openVault(env.Info)
		}
		// Entries written without info can still be matched by label.
		fallthrough
	case rofi.StateCustom:
		entries, err := GatherEntries(ctx, cfg)
		if err != nil {
			return err
		}
		return OpenQuery(entries, strings.Join(args, " "))
	default:
		slog.Warn("Unsupported rofi state, ignoring.", slog.Int("state", int(env.State)))
		return nil
	}
}

// WriteMenu outputs the entries in rofi's script mode format.
func WriteMenu(out io.Writer, cfg *Config, entries []Entry) error {
	w := rofi.NewWriter(out)
	if prompt := cfg.Menu.Prompt; prompt != "" {
		w.Option("prompt", prompt)
	}
	for _, entry := range entries {
		w.Row(rofi.Row{Label: entry.Name, Info: entry.Path, Icon: cfg.Menu.Icon})
	}
	return w.Flush()
}

// OpenQuery opens the entry matching query, by path or name. If no entry matches and query points
// to a vault folder, that folder is opened instead.
func OpenQuery(entries []Entry, query string) error {
	if entry, ok := FindEntry(entries, query); ok {
		return openVault(entry.Path)
	}
	fp := fspath.ExpandHome(query)
	if query != "" {
		ok, err := isVault(fp)
		if err != nil {
			return err
		}
		if ok {
			return openVault(fp)
		}
	}
	return fmt.Errorf("%w: %q", errUnknownVault, query)
}
