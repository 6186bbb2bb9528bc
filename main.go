// Package main implements the rofi-obsidian CLI.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/adrg/xdg"
	"github.com/fatih/color"
	rofiobsidian "github.com/mtth/rofi-obsidian/internal"
	"github.com/mtth/rofi-obsidian/internal/except"
	"github.com/mtth/rofi-obsidian/internal/picker"
	"github.com/mtth/rofi-obsidian/internal/rofi"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const appName = "rofi-obsidian"

func init() {
	var errs []error

	fp, ok := os.LookupEnv("LOGS_DIRECTORY")
	if !ok {
		var err error
		fp, err = xdg.StateFile(appName + "/log")
		if err != nil {
			errs = append(errs, err)
			fp = appName + ".log"
		}
	}

	// Standard output carries rofi's protocol, logs must never go there.
	var writer io.Writer
	if file, err := os.OpenFile(fp, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644); err == nil {
		writer = file
	} else {
		errs = append(errs, err)
		writer = os.Stderr
	}

	handler := slog.NewJSONHandler(writer, &slog.HandlerOptions{Level: slog.LevelDebug})
	slog.SetDefault(slog.New(handler))
	if len(errs) > 0 {
		slog.Error("Log setup failed.", except.LogErrAttr(errors.Join(errs...)))
	}
}

var (
	configPath string

	errNotTerminal = errors.New("not running in a terminal")
	errNoVaults    = errors.New("no vaults found")
)

func main() {
	ctx := context.Background()

	// Rofi passes the selected entry's label as argument, which must not be mistaken for a
	// subcommand.
	if env, err := rofi.ReadEnv(os.LookupEnv); err == nil && env.Active {
		if err := runScript(ctx, env, os.Args[1:]); err != nil {
			slog.Error("Rofi script failed.", except.LogErrAttr(err))
			fmt.Fprintf(os.Stderr, "Error: %v\n", err) //nolint:forbidigo
			os.Exit(1)
		}
		return
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run as a rofi script, the default behavior",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := rofi.ReadEnv(os.LookupEnv)
			if err != nil {
				return err
			}
			if !env.Active {
				msg := fmt.Sprintf("Error: %s cannot be run outside of rofi.", appName)
				if term.IsTerminal(int(os.Stdout.Fd())) {
					msg += fmt.Sprintf(" Try `%s pick` instead.", appName)
				}
				fmt.Fprintln(cmd.ErrOrStderr(), msg) //nolint:forbidigo
				return rofiobsidian.ErrOutsideRofi
			}
			return runScript(ctx, env, args)
		},
	}

	var listJSON bool
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List known vaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			entries, err := gatherEntries(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if listJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(entries)
			}
			nameColor := color.New(color.Bold)
			pathColor := color.New(color.Faint)
			for _, entry := range entries {
				fmt.Fprintf(out, "%s\t%s\n", nameColor.Sprint(entry.Name), pathColor.Sprint(entry.Path)) //nolint:forbidigo
			}
			return nil
		},
	}
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output entries as JSON")

	openCmd := &cobra.Command{
		Use:   "open NAME|PATH",
		Short: "Open a vault by name or path",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			entries, err := gatherEntries(ctx)
			if err != nil {
				return err
			}
			return rofiobsidian.OpenQuery(entries, args[0])
		},
	}

	pickCmd := &cobra.Command{
		Use:   "pick",
		Short: "Choose a vault to open interactively",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
				return errNotTerminal
			}
			entries, err := gatherEntries(ctx)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				return errNoVaults
			}
			items := make([]picker.Item, len(entries))
			for i, entry := range entries {
				items[i] = picker.Item{Name: entry.Name, Path: entry.Path}
			}
			item, ok, err := picker.Pick(ctx, "Obsidian vaults", items)
			if err != nil || !ok {
				return err
			}
			return rofiobsidian.OpenVault(item.Path)
		},
	}

	var force bool
	initConfigCmd := &cobra.Command{
		Use:   "init-config",
		Short: "Write the default configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fp, err := writablePath()
			if err != nil {
				return err
			}
			if rofiobsidian.ConfigExists(fp) && !force {
				return fmt.Errorf("configuration already exists at %s, use --force to overwrite", fp)
			}
			if err := rofiobsidian.WriteConfig(fp, rofiobsidian.DefaultConfig()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote configuration to %s.\n", fp) //nolint:forbidigo
			return nil
		},
	}
	initConfigCmd.Flags().BoolVar(&force, "force", false, "overwrite any existing configuration")

	var printConfig bool
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Edit the configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if printConfig {
				cfg, err := loadConfig()
				if err != nil {
					return err
				}
				return rofiobsidian.EncodeConfig(cmd.OutOrStdout(), cfg)
			}
			fp, err := writablePath()
			if err != nil {
				return err
			}
			return rofiobsidian.EditConfig(ctx, fp)
		},
	}
	configCmd.Flags().BoolVar(&printConfig, "print", false, "print the effective configuration")

	var check bool
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s\n", appName, rofiobsidian.Version) //nolint:forbidigo
			if !check {
				return nil
			}
			latest, err := rofiobsidian.LatestRelease(ctx)
			if err != nil {
				return err
			}
			if rofiobsidian.IsOutdated(rofiobsidian.Version, latest) {
				fmt.Fprintf(out, "A new version is available: %s\n", latest) //nolint:forbidigo
			}
			return nil
		},
	}
	versionCmd.Flags().BoolVar(&check, "check", false, "check for a newer release")

	rootCmd := &cobra.Command{
		Use:          appName,
		Short:        "List and open Obsidian vaults from rofi",
		Args:         cobra.ArbitraryArgs,
		RunE:         runCmd.RunE,
		SilenceUsage: true,
	}
	rootCmd.CompletionOptions.HiddenDefaultCmd = true
	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to configuration")
	rootCmd.AddCommand(runCmd, listCmd, openCmd, pickCmd, initConfigCmd, configCmd, versionCmd)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func runScript(ctx context.Context, env rofi.Env, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	return rofiobsidian.RunScript(ctx, cfg, env, args, os.Stdout)
}

func gatherEntries(ctx context.Context) ([]rofiobsidian.Entry, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return rofiobsidian.GatherEntries(ctx, cfg)
}

func loadConfig() (*rofiobsidian.Config, error) {
	if configPath != "" {
		return rofiobsidian.ReadConfig(configPath)
	}
	return rofiobsidian.FindConfig()
}

func writablePath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return rofiobsidian.ConfigPath()
}
