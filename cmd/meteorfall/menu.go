package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/meteorfall/internal/platform/tui"
	"github.com/vovakirdan/meteorfall/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start meteorfall with a variant picker menu",
	Long: `Start meteorfall in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a variant.
After a round ends, press Esc to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select variant
  Tab          - Scoreboard
  Q            - Quit

Examples:
  meteorfall menu
  meteorfall menu --fps 30
  meteorfall menu --difficulty hard --sound`,
	Run: runMenu,
}

func init() {
	addGameFlags(menuCmd)
}

func runMenu(_ *cobra.Command, _ []string) {
	session, err := newGameSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer session.Close()

	cfg := terminalConfig()
	notice := ""

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(session.store, cfg, notice)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}
		notice = ""

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(session.store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from scoreboard
		}

		gameID := menuResult.GameID
		if gameID == "" {
			break
		}

		game, err := registry.Create(gameID)
		if err != nil {
			notice = fmt.Sprintf("Cannot create %s: %v", gameID, err)
			continue
		}

		// Fresh seed per round unless pinned
		roundCfg := cfg
		if flagSeed == 0 {
			roundCfg.Seed = time.Now().UnixNano()
		}

		if err := tui.Run(game, roundCfg, session.options()); err != nil {
			session.logger.Error("round failed", "game", gameID, "error", err)
			notice = fmt.Sprintf("Cannot play %s: %v", gameID, err)
		}

		// Loop back to menu
	}
}
