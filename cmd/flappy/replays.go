package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/assets"
	"github.com/vovakirdan/tui-flappy/internal/replay"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var flagLimit int

var replaysCmd = &cobra.Command{
	Use:   "replays",
	Short: "List recorded runs",
	Long: `Display the most recent recorded runs, newest first.

Examples:
  flappy replays
  flappy replays --limit 50
  flappy replays delete 3`,
	Args: cobra.NoArgs,
	Run:  runReplays,
}

var replaysDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a recorded run",
	Args:  cobra.ExactArgs(1),
	Run:   runReplaysDelete,
}

var replayCmd = &cobra.Command{
	Use:   "replay <id>",
	Short: "Re-simulate a recorded run and verify it",
	Long: `Feed a recorded run's inputs back through a fresh simulation with the
same seed and configuration, then compare the outcome with the recording.
Exits with status 1 when the outcome diverges.

Examples:
  flappy replay 3
  flappy replay 3 --log-level debug`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func init() {
	replaysCmd.Flags().IntVar(&flagLimit, "limit", 20, "Number of runs to show")
	replaysCmd.AddCommand(replaysDeleteCmd)
}

func runReplays(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening replay database: %v", err)
	}
	defer store.Close()

	runs, err := store.Runs(flagLimit)
	if err != nil {
		fail("retrieving runs: %v", err)
	}

	fmt.Println("Recorded Runs")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'flappy play --record' to record one.")
		return
	}

	fmt.Printf("  %-4s  %-6s  %-8s  %-12s  %-20s  %s\n", "ID", "Score", "Ticks", "Mode", "Seed", "Date")
	fmt.Printf("  %-4s  %-6s  %-8s  %-12s  %-20s  %s\n", "--", "-----", "-----", "----", "----", "----")

	best := 0
	for _, r := range runs {
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-6d  %-8d  %-12s  %-20d  %s\n", r.ID, r.Score, r.Ticks, r.Mode, r.Seed, dateStr)
		best = max(best, r.Score)
	}

	fmt.Println()
	fmt.Printf("Best: %d\n", best)
}

func runReplaysDelete(cmd *cobra.Command, args []string) {
	id := parseRunID(args[0])

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening replay database: %v", err)
	}
	defer store.Close()

	if err := store.DeleteRun(id); err != nil {
		fail("%v", err)
	}
	fmt.Printf("Deleted run #%d\n", id)
}

func runReplay(cmd *cobra.Command, args []string) {
	id := parseRunID(args[0])

	logger, closer, err := newLogger(os.Stderr)
	if err != nil {
		fail("%v", err)
	}
	defer closer.Close()

	atlas, err := assets.Load(flagAtlas)
	if err != nil {
		fail("%v", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening replay database: %v", err)
	}
	run, err := store.LoadRun(id)
	store.Close()
	if errors.Is(err, storage.ErrRunNotFound) {
		fmt.Fprintf(os.Stderr, "Error: no run with ID %d\n", id)
		fmt.Fprintln(os.Stderr, "Run 'flappy replays' to see recorded runs.")
		os.Exit(1)
	}
	if err != nil {
		fail("loading run: %v", err)
	}

	res, err := replay.Play(run, atlas, logger)
	if err != nil {
		fail("%v", err)
	}

	fmt.Printf("Run #%d (seed %d, %d events)\n", run.ID, run.Seed, len(run.Events))
	fmt.Println()
	fmt.Printf("  %-10s  %-12s  %s\n", "", "Recorded", "Replayed")
	fmt.Printf("  %-10s  %-12d  %d\n", "Ticks", run.Ticks, res.Ticks)
	fmt.Printf("  %-10s  %-12d  %d\n", "Score", run.Score, res.Score)
	fmt.Printf("  %-10s  %-12s  %s\n", "Mode", run.Mode, res.Mode)
	fmt.Println()

	if !res.Match {
		fmt.Println("Result: DIVERGED")
		os.Exit(1)
	}
	fmt.Println("Result: match")
}

func parseRunID(s string) int64 {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		fail("invalid run ID %q", s)
	}
	return id
}
