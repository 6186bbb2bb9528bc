package rofiobsidian

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/mtth/rofi-obsidian/internal/fspath"
)

const defaultEditor = "vi"

var getenv = os.Getenv

// editorCommand returns the user's preferred editor, split into program and arguments.
func editorCommand() (string, []string) {
	editor := cmp.Or(getenv("VISUAL"), getenv("EDITOR"), defaultEditor)
	fields := strings.Fields(editor)
	switch len(fields) {
	case 0:
		return defaultEditor, nil
	case 1:
		return fields[0], nil
	default:
		return fields[0], fields[1:]
	}
}

// EditConfig opens the configuration file at fp in the user's editor, first writing the default
// configuration if the file doesn't exist. The edited file is validated once the editor exits.
func EditConfig(ctx context.Context, fp fspath.Local) error {
	if !ConfigExists(fp) {
		if err := WriteConfig(fp, DefaultConfig()); err != nil {
			return err
		}
	}
	name, args := editorCommand()
	if err := runCommand(ctx, name, append(args, fp)); err != nil {
		return fmt.Errorf("editor %s failed: %w", name, err)
	}
	_, err := ReadConfig(fp)
	return err
}

var runCommand = func(ctx context.Context, name string, args []string) error {
	return attachedCommand(ctx, name, args, os.Stdin, os.Stdout, os.Stderr)
}

// attachedCommand runs a command connected to the given streams and waits for it to exit.
func attachedCommand(
	ctx context.Context,
	name string,
	args []string,
	stdin io.Reader,
	stdout, stderr io.Writer,
) error {
	slog.Debug("Running command.", slog.String("name", name), slog.Any("args", args))
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	return cmd.Run()
}
