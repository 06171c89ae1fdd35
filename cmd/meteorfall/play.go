package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/meteorfall/internal/assets"
	"github.com/vovakirdan/meteorfall/internal/config"
	"github.com/vovakirdan/meteorfall/internal/core"
	"github.com/vovakirdan/meteorfall/internal/games/meteor"
	"github.com/vovakirdan/meteorfall/internal/platform/tui"
	"github.com/vovakirdan/meteorfall/internal/registry"
	"github.com/vovakirdan/meteorfall/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagSound      bool
	flagWatch      bool
	flagReleaseMs  int
)

var playCmd = &cobra.Command{
	Use:   "play <variant>",
	Short: "Play a variant",
	Long: `Start playing the specified variant.

Controls:
  Enter        - Start / restart a round
  Left/A       - Move left (hold to keep moving)
  Right/D      - Move right (hold to keep moving)
  Down/Space   - Stop
  P            - Pause
  Ctrl+S       - Save a screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - More lives, slower spawns and falls, faster catcher
  normal - Values from the config file
  hard   - Fewer lives, faster spawns and falls, slower catcher

Examples:
  meteorfall play meteor
  meteorfall play meteor --difficulty easy
  meteorfall play meteor_rush --sound
  meteorfall play meteor --config ./my-meteor.yaml --watch`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	addGameFlags(playCmd)
}

// addGameFlags registers the flags shared by every command that runs rounds.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom meteor config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	cmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound effects on the system audio device")
	cmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the config file when it changes")
	cmd.Flags().IntVar(&flagReleaseMs, "release-ms", 300, "Milliseconds without a key repeat before a key counts as released")
}

// gameSession holds the process-wide collaborators of one or more rounds.
type gameSession struct {
	logger  *log.Logger
	store   *storage.Store
	watcher *config.Watcher
	closers []func()
}

// newGameSession applies the game flags to the meteor package and opens
// the optional store, audio device and config watcher. Failures of the
// optional parts are reported and play continues without them.
func newGameSession() (*gameSession, error) {
	logger, closeLog, err := newLogger("meteorfall", nil)
	if err != nil {
		return nil, err
	}
	s := &gameSession{logger: logger, closers: []func(){closeLog}}

	meteor.SetConfigPath(flagConfig)
	meteor.SetDifficultyPreset(flagDifficulty)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
	} else {
		s.store = store
		s.closers = append(s.closers, func() { store.Close() })
	}

	if flagSound {
		out, err := assets.NewSpeakerOutput()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: sound disabled: %v\n", err)
		} else {
			meteor.SetAudioOutput(out)
			s.closers = append(s.closers, out.Close)
		}
	}

	if flagWatch {
		path := config.ResolvePath(flagConfig)
		if path == "" {
			fmt.Fprintln(os.Stderr, "Warning: no config file on disk to watch")
		} else if w, err := config.NewWatcher(path); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: cannot watch config: %v\n", err)
		} else {
			logger.Info("watching config", "path", w.Path())
			s.watcher = w
			s.closers = append(s.closers, func() { w.Close() })
		}
	}

	return s, nil
}

// options returns the model options for one round.
func (s *gameSession) options() tui.ModelOptions {
	return tui.ModelOptions{
		Store:        s.store,
		Logger:       s.logger,
		Watcher:      s.watcher,
		ReleaseAfter: time.Duration(flagReleaseMs) * time.Millisecond,
	}
}

// Close releases everything the session opened, newest first.
func (s *gameSession) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
}

// terminalConfig builds the runtime config from the terminal size and global flags.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if variant exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'meteorfall list' to see available variants.")
		os.Exit(1)
	}

	session, err := newGameSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		session.Close()
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	runErr := tui.Run(game, terminalConfig(), session.options())

	// Close everything before potential exit
	session.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
