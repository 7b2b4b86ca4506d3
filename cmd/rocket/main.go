// rocket is a terminal arcade shooter built on a small geometry library.
//
// Usage:
//
//	rocket list              - List available levels
//	rocket play <game>       - Play a level
//	rocket menu              - Start menu to pick levels interactively
//	rocket serve             - Start SSH server for remote play
//	rocket scores <game>     - Show high scores for a level
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.rocket/scores.db)
//	--log-level <level>  - Set log verbosity (debug, info, warn, error)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-rocket/internal/storage"

	// Import games to register them
	_ "github.com/vovakirdan/tui-rocket/internal/games/rocket"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string

	// logger is configured from --log-level before any command runs
	logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "rocket"})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rocket",
	Short: "Rocket - fly, shoot and dodge in your terminal",
	Long: `Rocket is a terminal arcade shooter. Steer a small craft around a
wrapping field, shoot down the swarm and clear space with expanding waves.
The collision lab level shows the hit tests behind it all.

Available commands:
  list     - Show all available levels
  play     - Play a specific level directly
  menu     - Interactive level picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  rocket list
  rocket play rocket
  rocket play rocket_collision
  rocket menu
  rocket serve --ssh :2222
  rocket scores rocket`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogger,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// setupLogger applies --log-level and checks the shared flags.
func setupLogger(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger.SetLevel(level)
	logger.SetReportTimestamp(level <= log.DebugLevel)

	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	return nil
}

// openStore opens the scores database. Games still run without one, so a
// failure is logged and nil returned.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be saved", "path", flagDBPath, "error", err)
		return nil
	}
	logger.Debug("opened scores database", "path", flagDBPath)
	return store
}

func closeStore(store *storage.Store) {
	if store == nil {
		return
	}
	if err := store.Close(); err != nil {
		logger.Warn("could not close scores database", "error", err)
	}
}
