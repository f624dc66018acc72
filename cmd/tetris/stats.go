package main

import (
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var (
	flagRecent      int
	flagClear       bool
	flagInteractive bool
)

var statsCmd = &cobra.Command{
	Use:   "stats [mode]",
	Short: "Show run history",
	Long: `Display the best runs for a mode, or a summary of every mode when no
mode is given. Runs are ranked by lines cleared, then pieces placed.

Examples:
  tetris stats
  tetris stats tetris
  tetris stats --recent 5
  tetris stats tetris --clear
  tetris stats -i`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStats,
}

func init() {
	statsCmd.Flags().IntVar(&flagRecent, "recent", 0, "Show the N most recent runs across all modes")
	statsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the run history of the given mode")
	statsCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse the history in a full-screen view")
}

func runStats(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	switch {
	case flagInteractive:
		cfg := runtimeConfig()
		_, err := tui.RunStats(store, cfg.ScreenW, cfg.ScreenH)
		return err

	case flagRecent > 0:
		runs, err := store.RecentRuns(flagRecent)
		if err != nil {
			return err
		}
		printRecent(out, runs)
		return nil

	case len(args) == 0:
		if flagClear {
			return fmt.Errorf("--clear needs a mode")
		}
		all, err := store.GetAllGamesStats()
		if err != nil {
			return err
		}
		printSummary(out, all)
		return nil
	}

	gameID := args[0]
	info, ok := registry.Lookup(gameID)
	if !ok {
		return fmt.Errorf("unknown mode %q, run 'tetris list' to see available modes", gameID)
	}

	if flagClear {
		if err := store.ClearRuns(gameID); err != nil {
			return err
		}
		fmt.Fprintf(out, "Cleared run history for %s.\n", info.Title)
		return nil
	}

	runs, err := store.TopRuns(gameID, 10)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Best Runs - %s\n\n", info.Title)
	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Play 'tetris play %s' to record the first run!\n", gameID)
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-6s  %-6s  %-8s  %s\n", "Rank", "Lines", "Pieces", "Time", "Date")
	fmt.Fprintf(out, "  %-4s  %-6s  %-6s  %-8s  %s\n", "----", "-----", "------", "----", "----")
	for i, r := range runs {
		fmt.Fprintf(out, "  %-4d  %-6d  %-6d  %-8s  %s\n",
			i+1, r.Lines, r.Pieces, formatPlayTime(r.Duration), r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if s, err := store.GetGameStats(gameID); err == nil {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Games: %d  Best: %d  Average: %.1f  Play time: %s\n",
			s.GamesCount, s.BestLines, s.AvgLines, formatPlayTime(s.PlayTime))
	}
	return nil
}

func printRecent(out io.Writer, runs []storage.RunResult) {
	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		return
	}
	fmt.Fprintln(out, "Recent Runs")
	fmt.Fprintln(out)
	for _, r := range runs {
		fmt.Fprintf(out, "  %s  %-16s  %4d lines  %4d pieces  %s\n",
			r.CreatedAt.Format("2006-01-02 15:04"), r.GameID, r.Lines, r.Pieces, formatPlayTime(r.Duration))
	}
}

func printSummary(out io.Writer, all map[string]*storage.GameStats) {
	if len(all) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		return
	}

	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	fmt.Fprintln(out, "Run History")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %-16s  %-5s  %-5s  %-7s  %-9s  %s\n", "Mode", "Games", "Best", "Average", "Play time", "Last played")
	for _, id := range ids {
		s := all[id]
		fmt.Fprintf(out, "  %-16s  %-5d  %-5d  %-7.1f  %-9s  %s\n",
			id, s.GamesCount, s.BestLines, s.AvgLines, formatPlayTime(s.PlayTime), s.LastPlayed.Format("2006-01-02 15:04"))
	}
}

func formatPlayTime(d time.Duration) string {
	return d.Truncate(time.Second).String()
}
