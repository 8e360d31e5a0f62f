package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/abelbrown/courtside/internal/display"
	"github.com/abelbrown/courtside/internal/fetch"
	"github.com/abelbrown/courtside/internal/query"
	"github.com/abelbrown/courtside/internal/signal"
)

// newListCmd prints the feed as text.
func newListCmd(configPath *string) *cobra.Command {
	var (
		state   string
		filter  string
		sortBy  string
		search  string
		channel string
		pages   int
		all     bool
		width   int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the episode feed",
		Long:  "Print the episode feed. --state takes an address fragment such as #player-lebron-james; the other flags are applied on top of it in order.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, *configPath)
			if err != nil {
				return err
			}

			ctrl, err := loadSession(cmd.Context(), cfg, state)
			if err != nil {
				return err
			}
			defer ctrl.Close()

			if filter != "" {
				f, ok := query.ParseFilter(filter)
				if !ok {
					return fmt.Errorf("unknown filter %q", filter)
				}
				ctrl.SetFilter(f)
			}
			if sortBy != "" {
				s, ok := query.ParseSort(sortBy)
				if !ok {
					return fmt.Errorf("unknown sort %q", sortBy)
				}
				ctrl.SetSort(s)
			}
			if channel != "" {
				ctrl.SetChannelPin(channel)
			}
			if search != "" {
				ctrl.SetSearch(search)
			}

			for i := 1; all || i < pages; i++ {
				if !ctrl.AdvancePagination() {
					break
				}
			}

			snap := ctrl.Snapshot()
			cards := display.BuildCards(snap.Visible, signal.DefaultDictionary(), time.Now())
			f := display.NewTerminalFormatter(width)
			fmt.Fprint(cmd.OutOrStdout(), f.FormatFeed(cards, snap.Message()))
			if snap.HasMore {
				fmt.Fprintf(cmd.OutOrStdout(), "\nShowing %d of %d episodes\n", len(snap.Visible), snap.Total)
			}
			if snap.Fragment != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "\nView: %s\n", snap.Fragment)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&state, "state", "", "Start from an address fragment (e.g. #sort-views)")
	cmd.Flags().StringVarP(&filter, "filter", "f", "", "Filter: all, trending, new")
	cmd.Flags().StringVarP(&sortBy, "sort", "s", "", "Sort: date, views, rated, discussed, likes, comments, duration, channel")
	cmd.Flags().StringVarP(&search, "search", "q", "", "Search text (overrides filter and sort)")
	cmd.Flags().StringVarP(&channel, "channel", "c", "", "Pin an exact channel name")
	cmd.Flags().IntVarP(&pages, "pages", "p", 1, "Number of pages to show")
	cmd.Flags().BoolVar(&all, "all", false, "Show every matching episode")
	cmd.Flags().IntVarP(&width, "width", "w", 0, "Truncate titles to this many columns")

	return cmd
}

// newTrendingCmd prints the trending summary.
func newTrendingCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "trending",
		Short: "Print trending players, teams and topics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, *configPath)
			if err != nil {
				return err
			}

			ctrl, err := loadSession(cmd.Context(), cfg, "")
			if err != nil {
				return err
			}
			defer ctrl.Close()

			out := display.NewTerminalFormatter(0).FormatTrending(ctrl.Snapshot().Trending)
			if out == "" {
				out = "Nothing trending right now.\n"
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

// newImportCmd loads a CSV export into the SQLite mirror.
func newImportCmd(configPath *string) *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "import <csv>",
		Short: "Import a CSV export of the Videos sheet into the local mirror",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, *configPath)
			if err != nil {
				return err
			}
			if dbPath == "" {
				dbPath = cfg.DBPath
			}

			src := &fetch.FileSource{Path: args[0]}
			records, err := src.Records(cmd.Context())
			if err != nil {
				return err
			}

			st, err := openStore(dbPath)
			if err != nil {
				return err
			}
			defer st.Close()

			added, err := st.SaveRecords(cmd.Context(), records)
			if err != nil {
				return err
			}
			if err := st.RecordImport(src.Name(), len(records)); err != nil {
				return err
			}
			total, err := st.Count()
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d records (%d new) into %s\n", len(records), added, dbPath)
			fmt.Fprintf(cmd.OutOrStdout(), "Mirror now holds %d records\n", total)
			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite mirror path (defaults to db_path from config)")
	return cmd
}
