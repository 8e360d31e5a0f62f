// Package main provides the courtside CLI entry point.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/abelbrown/courtside/internal/config"
	"github.com/abelbrown/courtside/internal/fetch"
	"github.com/abelbrown/courtside/internal/logging"
	"github.com/abelbrown/courtside/internal/session"
	"github.com/abelbrown/courtside/internal/store"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveVersion prefers the ldflags version, then the module version from
// build info.
func resolveVersion(ldflags string, info *debug.BuildInfo) string {
	if ldflags != "dev" {
		return ldflags
	}
	if info == nil || info.Main.Version == "" || info.Main.Version == "(devel)" {
		return "dev"
	}
	return info.Main.Version
}

func currentVersion() string {
	info, _ := debug.ReadBuildInfo()
	return resolveVersion(version, info)
}

// newRootCmd creates the root command. Run without a subcommand it opens the
// interactive viewer.
func newRootCmd() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:           "courtside [#fragment]",
		Short:         "Browse NBA podcast episodes in the terminal",
		Long:          "Courtside loads the NBA podcast video sheet and shows a searchable, filterable feed with trending players, teams and topics.",
		Version:       currentVersion(),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			fragment := ""
			if len(args) == 1 {
				fragment = args[0]
			}
			return runViewer(cmd.Context(), cfg, fragment)
		},
	}

	rootCmd.SetVersionTemplate("courtside version {{.Version}}\n")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.ConfigPath(), "Path to config file")

	rootCmd.AddCommand(newListCmd(&configPath))
	rootCmd.AddCommand(newTrendingCmd(&configPath))
	rootCmd.AddCommand(newImportCmd(&configPath))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "courtside version %s\n", currentVersion())
		},
	}
}

// loadConfig reads the config for a non-interactive command and points the
// logger at stderr.
func loadConfig(cmd *cobra.Command, path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if err := logging.InitWriter(cmd.ErrOrStderr(), cfg.LogLevel); err != nil {
		return nil, err
	}
	return cfg, nil
}

// openSource builds the configured dataset source. The returned close
// function releases the SQLite handle when the source is the mirror.
func openSource(cfg *config.Config) (fetch.Source, func(), error) {
	if cfg.Source == config.SourceSQLite {
		st, err := openStore(cfg.DBPath)
		if err != nil {
			return nil, nil, err
		}
		return st, func() { st.Close() }, nil
	}

	src, err := fetch.NewSource(fetch.SourceConfig{
		Kind:    cfg.Source,
		URL:     cfg.SheetURL,
		Path:    cfg.CSVPath,
		Timeout: cfg.FetchTimeout,
	})
	if err != nil {
		return nil, nil, err
	}
	return src, func() {}, nil
}

// openStore opens the SQLite mirror, creating its directory if needed.
func openStore(path string) (*store.Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("create data directory: %w", err)
		}
	}
	st, err := store.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open mirror: %w", err)
	}
	return st, nil
}

// sessionOptions maps the view settings onto controller options.
func sessionOptions(cfg *config.Config) session.Options {
	return session.Options{
		PageSize:       cfg.PageSize,
		SearchDebounce: cfg.SearchDebounce,
		ScrollDebounce: cfg.ScrollDebounce,
		TrendingWindow: cfg.TrendingWindow,
	}
}

// loadSession opens the source and loads it into a fresh controller.
func loadSession(ctx context.Context, cfg *config.Config, fragment string) (*session.Controller, error) {
	src, closeSrc, err := openSource(cfg)
	if err != nil {
		return nil, err
	}
	defer closeSrc()

	ctrl := session.New(fragment, sessionOptions(cfg))
	if err := ctrl.Refresh(ctx, src); err != nil {
		ctrl.Close()
		return nil, err
	}
	return ctrl, nil
}
