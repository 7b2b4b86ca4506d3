package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-rocket/internal/config"
	"github.com/vovakirdan/tui-rocket/internal/core"
	"github.com/vovakirdan/tui-rocket/internal/games/rocket"
	"github.com/vovakirdan/tui-rocket/internal/platform/tui"
	"github.com/vovakirdan/tui-rocket/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a level",
	Long: `Start playing the specified level.

Controls:
  Arrows/WASD  - Steer (keys stay held briefly between repeats)
  Space        - Fire bullets (collision lab: change probe size)
  1/2/3        - Grass/fire/water wave
  P/Esc        - Pause
  R            - Restart (after game over)
  B            - Back to menu (paused or game over)
  Ctrl+S       - Save a screenshot to ~/.rocket/screenshots
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Five lives, slower swarm, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Two lives, faster swarm, starts at 70%
  fixed  - No progression, stays at config's initial level

Examples:
  rocket play rocket
  rocket play rocket --difficulty hard
  rocket play rocket --seed 42
  rocket play rocket_collision
  rocket play rocket --config ./my-rocket.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// applyGameFlags checks --config and --difficulty and hands them to the game
// package. Games fall back to defaults on a bad file, so it is loaded once
// here to report the problem.
func applyGameFlags() error {
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}
	if _, err := config.LoadRocket(flagConfig); err != nil {
		return err
	}

	rocket.SetConfigPath(flagConfig)
	rocket.SetDifficultyPreset(flagDifficulty)
	return nil
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	} else {
		logger.Debug("could not read terminal size, using defaults", "error", err)
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]

	game, err := registry.Create(gameID)
	if errors.Is(err, registry.ErrUnknownGame) {
		return fmt.Errorf("unknown game %q, run 'rocket list' to see available levels", gameID)
	}
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	// Flags are read by Reset, so the instance above still picks them up
	if err := applyGameFlags(); err != nil {
		return err
	}

	cfg := runtimeConfig()
	logger.Debug("starting game", "game", gameID, "size", fmt.Sprintf("%dx%d", cfg.ScreenW, cfg.ScreenH), "seed", cfg.Seed)

	store := openStore()
	defer closeStore(store)

	if _, err := tui.Run(game, store, cfg); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
