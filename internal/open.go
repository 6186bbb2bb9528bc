package rofiobsidian

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os/exec"
	"runtime"
	"strings"

	"github.com/mtth/rofi-obsidian/internal/fspath"
)

const urlScheme = "obsidian"

// VaultURL returns the Obsidian URL which opens the vault at the given path.
func VaultURL(fp fspath.Local) string {
	query := url.Values{"path": {fp}}.Encode()
	// Obsidian does not decode + as a space.
	query = strings.ReplaceAll(query, "+", "%20")
	return urlScheme + "://open?" + query
}

var errOpenFailed = errors.New("unable to open vault")

// OpenVault asks the desktop environment to open the vault's URL. It returns once the opener has
// started, without waiting for it to exit.
func OpenVault(fp fspath.Local) error {
	u := VaultURL(fp)
	slog.Debug("Opening vault...", slog.String("url", u))
	if err := openURL(u); err != nil {
		return fmt.Errorf("%w: %v", errOpenFailed, err)
	}
	slog.Info("Opened vault.", slog.String("path", fp))
	return nil
}

var openURL = func(u string) error {
	name, args := openerCommand(runtime.GOOS)
	return startDetached(name, append(args, u))
}

// openerCommand returns the program and leading arguments which open URLs on the platform.
func openerCommand(goos string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", nil
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler"}
	default:
		return "xdg-open", nil
	}
}

// startDetached starts a command without waiting for it to complete.
func startDetached(name string, args []string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Process.Release()
}
