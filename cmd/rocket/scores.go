package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-rocket/internal/registry"
	"github.com/vovakirdan/tui-rocket/internal/storage"
)

var (
	flagLimit int
	flagAll   bool
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show high scores for a level",
	Long: `Display the top high scores for the specified level.

Examples:
  rocket scores rocket
  rocket scores rocket --limit 25
  rocket scores rocket --all
  rocket scores rocket_collision --clear`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagAll, "all", false, "Show every recorded run")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores for the level")
	scoresCmd.MarkFlagsMutuallyExclusive("all", "clear")
}

func runScores(cmd *cobra.Command, args []string) error {
	gameID := args[0]

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'rocket list' to see available levels", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer closeStore(store)

	out := cmd.OutOrStdout()

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Fprintf(out, "Cleared scores for %s.\n", game.Title())
		return nil
	}

	var scores []storage.ScoreEntry
	if flagAll {
		scores, err = store.AllScores(gameID)
	} else {
		scores, err = store.TopScores(gameID, flagLimit)
	}
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Fprintf(out, "High Scores - %s\n\n", game.Title())

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Play 'rocket play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-10s  %-16s  %-20s  %s\n", "Rank", "Score", "Pilot", "Seed", "Date")
	fmt.Fprintf(out, "  %-4s  %-10s  %-16s  %-20s  %s\n", "----", "-----", "-----", "----", "----")
	for i, entry := range scores {
		player := entry.Player
		if player == "" {
			player = "-"
		}
		fmt.Fprintf(out, "  %-4d  %-10d  %-16s  %-20d  %s\n",
			i+1, entry.Score, player, entry.Seed, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats(gameID)
	if err != nil {
		logger.Debug("could not load stats", "game", gameID, "error", err)
		return nil
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Best: %d  Runs: %d  Pilots: %d  Average: %.0f\n",
		stats.HighScore, stats.GamesCount, stats.Players, stats.AvgScore)
	return nil
}
