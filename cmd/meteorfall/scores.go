package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/meteorfall/internal/registry"
	"github.com/vovakirdan/meteorfall/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresRun   string
)

var scoresCmd = &cobra.Command{
	Use:   "scores <variant>",
	Short: "Show high scores for a variant",
	Long: `Display the top high scores for the specified variant,
or a single recorded round by its run id.

Examples:
  meteorfall scores meteor
  meteorfall scores meteor_rush --limit 20
  meteorfall scores --run 3f2c9a1e-8d4b-4c57-9a61-0b7e2d5f4c18`,
	Args: func(cmd *cobra.Command, args []string) error {
		if flagScoresRun != "" {
			return cobra.NoArgs(cmd, args)
		}
		return cobra.ExactArgs(1)(cmd, args)
	},
	Run: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().StringVar(&flagScoresRun, "run", "", "Show the round recorded under this run id")
}

func runScores(cmd *cobra.Command, args []string) {
	if flagScoresRun != "" {
		runShowRun(flagScoresRun)
		return
	}

	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'meteorfall list' to see available variants.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'meteorfall play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-10s  %-6s  %-8s  %s\n", "Rank", "Score", "Result", "Run", "Date")
	fmt.Printf("  %-4s  %-10s  %-6s  %-8s  %s\n", "----", "-----", "------", "---", "----")

	for i, entry := range scores {
		result := "lost"
		if entry.Won {
			result = "won"
		}
		run := entry.RunID
		if len(run) > 8 {
			run = run[:8]
		}
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-6s  %-8s  %s\n", i+1, entry.Score, result, run, dateStr)
	}

	fmt.Println()
	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Printf("Best: %d  |  Rounds: %d  |  Wins: %d  |  Average: %.0f\n",
			stats.HighScore, stats.GamesCount, stats.Wins, stats.AvgScore)
	}
}

// runShowRun prints one recorded round.
func runShowRun(runID string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	entry, err := store.Run(runID)
	if errors.Is(err, storage.ErrNoRun) {
		fmt.Fprintf(os.Stderr, "Error: no round recorded under run id %q\n", runID)
		store.Close()
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving run: %v\n", err)
		return
	}

	result := "lost"
	if entry.Won {
		result = "won"
	}
	fmt.Printf("Run     %s\n", entry.RunID)
	fmt.Printf("Variant %s\n", entry.GameID)
	fmt.Printf("Score   %d\n", entry.Score)
	fmt.Printf("Result  %s\n", result)
	fmt.Printf("Date    %s\n", entry.CreatedAt.Format("2006-01-02 15:04"))
}
