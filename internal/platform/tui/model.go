package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/meteorfall/internal/config"
	"github.com/vovakirdan/meteorfall/internal/core"
	"github.com/vovakirdan/meteorfall/internal/registry"
	"github.com/vovakirdan/meteorfall/internal/storage"
)

// ConfigChangedMsg reports a change to the watched config file.
type ConfigChangedMsg struct {
	Path string
}

// configErrMsg reports a watcher error.
type configErrMsg struct {
	err error
}

// ModelOptions holds the optional collaborators of a game model.
type ModelOptions struct {
	Store        *storage.Store
	Logger       *log.Logger
	Watcher      *config.Watcher // Hot reload source, may be nil
	ReleaseAfter time.Duration   // Synthesized key release window
	Standalone   bool            // Back quits the program instead of returning to a menu
}

// Model is the Bubble Tea model for running a single game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	watcher    *config.Watcher
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	release    *ReleaseTracker
	standalone bool
	quitting   bool
	backToMenu bool
	scoreSaved bool   // Whether score has been saved for the current game over
	lastRunID  string // Run id of the last saved score
	err        error
	done       chan struct{} // Closed by Stop, ends a pending watchCmd
	stop       func()
}

// NewModel creates a new Bubble Tea model for the given game.
// The game must already have been Reset with cfg.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts ModelOptions) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	done := make(chan struct{})
	return Model{
		done:       done,
		stop:       sync.OnceFunc(func() { close(done) }),
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      opts.Store,
		logger:     logger,
		watcher:    opts.Watcher,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
		keyMapper:  NewKeyMapper(),
		release:    NewReleaseTracker(opts.ReleaseAfter),
		standalone: opts.Standalone,
	}
}

// Init starts the tick loop and, when configured, the config watcher.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(m.config.TickRate), m.watchCmd())
}

// watchCmd waits for the next config change. It returns nothing once the
// model is stopped, so a watcher shared across rounds only feeds the live one.
func (m Model) watchCmd() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	w, done := m.watcher, m.done
	return func() tea.Msg {
		select {
		case <-done:
			return nil
		case path, ok := <-w.Events:
			if !ok {
				return nil
			}
			return ConfigChangedMsg{Path: path}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return configErrMsg{err: err}
		}
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))

	case ConfigChangedMsg:
		m.reloadConfig(msg.Path)
		return m, m.watchCmd()

	case configErrMsg:
		m.logger.Warn("config watcher error", "error", msg.err)
		return m, m.watchCmd()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKeyToFrame(msg, &m.inputFrame)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}
	m.release.Press(action, time.Now())

	// Back to menu when the round is not in progress or paused
	if action == core.ActionBack && (!m.gameState.Running || m.gameState.Paused) {
		m.backToMenu = true
		if m.standalone {
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// handleResize processes window resize events.
// A running round keeps its field; the new size applies from the next title screen.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if m.gameState.Running {
		return m, nil
	}
	if err := m.game.Reset(m.config); err != nil {
		m.logger.Error("game reset failed", "game", m.game.ID(), "error", err)
		m.err = err
		m.quitting = true
		return m, tea.Quit
	}
	m.release.Reset()
	m.gameState = m.game.State()
	return m, nil
}

// handleTick processes one platform frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.release.Expire(now, &m.inputFrame)

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.Running {
		m.scoreSaved = false
	}

	// Save score on game over (once)
	if m.gameState.GameOver && !m.scoreSaved {
		m.saveScore()
		m.scoreSaved = true
		// A key held at the end must not step the player in the next round
		m.release.Reset()
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveScore records the finished round. Storage failures are logged and ignored.
func (m *Model) saveScore() {
	if m.store == nil || m.gameState.Score <= 0 {
		return
	}
	runID, err := m.store.SaveScore(m.game.ID(), m.gameState.Score, m.gameState.Won)
	if err != nil {
		m.logger.Warn("could not save score", "game", m.game.ID(), "error", err)
		return
	}
	m.lastRunID = runID
	m.logger.Info("score saved", "game", m.game.ID(), "score", m.gameState.Score, "won", m.gameState.Won, "run", runID)
}

// reloadConfig asks the game to re-read its configuration.
func (m *Model) reloadConfig(path string) {
	r, ok := m.game.(registry.Reloader)
	if !ok {
		return
	}
	if err := r.ReloadConfig(); err != nil {
		m.logger.Warn("config reload failed", "path", path, "error", err)
		return
	}
	m.logger.Info("config change detected", "path", path)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".meteorfall", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// LastRunID returns the run id of the last saved score, if any.
func (m Model) LastRunID() string {
	return m.lastRunID
}

// Stop ends the model's pending watcher command. Safe to call more than once.
func (m Model) Stop() {
	m.stop()
}

// Err returns the error that stopped the model, if any.
func (m Model) Err() error {
	return m.err
}

// Run resets the game and starts the Bubble Tea program for it.
// A failed Reset is returned before the terminal is taken over.
func Run(game registry.Game, cfg core.RuntimeConfig, opts ModelOptions) error {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if err := game.Reset(cfg); err != nil {
		return err
	}

	opts.Standalone = true
	model := NewModel(game, cfg, opts)
	defer model.Stop()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok && fm.Err() != nil {
		return fm.Err()
	}
	return nil
}
