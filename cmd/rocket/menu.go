package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-rocket/internal/platform/tui"
	"github.com/vovakirdan/tui-rocket/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a level picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a level.
Press B on the pause or game over screen to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Left/Right   - Change difficulty
  Enter/Space  - Select level
  Tab          - High scores
  Q            - Quit

Examples:
  rocket menu
  rocket menu --fps 30
  rocket menu --difficulty easy
  rocket menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	// Uses global flags from main.go (--fps, --seed, --db) plus the game flags
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runMenu(_ *cobra.Command, _ []string) error {
	if err := applyGameFlags(); err != nil {
		return err
	}

	store := openStore()
	defer closeStore(store)

	cfg := runtimeConfig()
	seeded := flagSeed != 0
	difficulty := flagDifficulty

	for {
		menuResult, err := tui.RunMenu(store, cfg, difficulty)
		if err != nil {
			return err
		}
		cfg = menuResult.Config
		difficulty = menuResult.Difficulty

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if goBack {
				continue
			}
			return nil
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			logger.Error("could not create game", "game", menuResult.GameID, "error", err)
			continue
		}

		tui.ApplyDifficulty(game, menuResult.Difficulty)

		// A fixed --seed replays the same run every time
		if !seeded {
			cfg.Seed = time.Now().UnixNano()
		}

		backToMenu, err := tui.Run(game, store, cfg)
		if err != nil {
			return err
		}
		if !backToMenu {
			return nil
		}
	}
}
