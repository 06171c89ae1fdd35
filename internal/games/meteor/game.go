// Package meteor implements a falling-object catch game.
// Meteors fall from the top of the field on their own timers and the
// player moves a catcher left and right to catch them. Game logic is
// driven by a typed event bus and a virtual-clock scheduler so it runs
// identically at any platform frame rate.
package meteor

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/meteorfall/internal/assets"
	"github.com/vovakirdan/meteorfall/internal/bus"
	"github.com/vovakirdan/meteorfall/internal/config"
	"github.com/vovakirdan/meteorfall/internal/core"
	"github.com/vovakirdan/meteorfall/internal/entity"
	"github.com/vovakirdan/meteorfall/internal/sched"
)

// Timer names on the game scheduler.
const (
	MainTimerName  = "main-tick"
	SpawnTimerName = "spawn"
)

// Asset ids required by the game.
const (
	SpritePlayer = "player"
	SpriteMeteor = "meteor"
	SpriteLife   = "life"
	SoundHit     = "hit"
	SoundLose    = "lose"
)

// Game implements the meteor catch game logic.
type Game struct {
	id      string
	title   string
	runtime core.RuntimeConfig
	cfg     config.Variant
	pending *config.Variant // Reloaded settings applied at the next start
	pinned  bool            // Variant set by WithVariant, never loaded from disk

	bus      *bus.Bus
	sched    *sched.Scheduler
	state    *State
	rng      *rand.Rand
	frame    *core.Screen
	renderer *Renderer
	logger   *log.Logger

	pack   assets.Provider
	audio  assets.Output
	player *assets.Sprite
	meteor *assets.Sprite
	life   *assets.Sprite
}

// Option configures a Game.
type Option func(*Game)

// WithVariant uses v instead of loading the variant from configuration.
func WithVariant(v config.Variant) Option {
	return func(g *Game) {
		g.cfg = v
		g.pinned = true
		if v.Title != "" {
			g.title = v.Title
		}
	}
}

// WithAssets uses p instead of loading the embedded asset pack.
func WithAssets(p assets.Provider) Option {
	return func(g *Game) { g.pack = p }
}

// WithAudio routes sounds to out.
func WithAudio(out assets.Output) Option {
	return func(g *Game) { g.audio = out }
}

// WithLogger sets the logger used for phase transitions and recovered panics.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// New creates a game for the variant id.
func New(id string, opts ...Option) *Game {
	g := &Game{
		id:     id,
		title:  config.DefaultMeteorConfig().Variants[id].Title,
		bus:    bus.New(),
		sched:  sched.New(),
		state:  &State{},
		logger: log.New(io.Discard),
	}
	if g.title == "" {
		g.title = id
	}
	for _, opt := range opts {
		opt(g)
	}
	g.subscribe()
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// Reset loads configuration and assets, cancels every timer and shows the
// title frame. The game cannot start if Reset returns an error.
func (g *Game) Reset(runtime core.RuntimeConfig) error {
	g.runtime = runtime

	if !g.pinned {
		v, err := loadVariant(g.id)
		if err != nil {
			return err
		}
		g.cfg = v
		g.pending = nil
	}
	if err := g.cfg.Validate(); err != nil {
		return fmt.Errorf("meteor: %w", err)
	}
	if g.cfg.Title != "" {
		g.title = g.cfg.Title
	}

	if err := g.loadAssets(); err != nil {
		return err
	}

	g.sched.StopAll()
	seed := runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.rng = rand.New(rand.NewSource(seed))

	*g.state = State{Phase: PhaseNotStarted, Message: MessageIntro}
	g.frame = core.NewScreen(runtime.ScreenW, runtime.ScreenH)
	g.renderer = NewRenderer(g.title, g.life)
	g.draw()

	g.logger.Debug("game reset", "game", g.id, "seed", seed, "width", runtime.ScreenW, "height", runtime.ScreenH)
	return nil
}

// loadVariant reads the variant from the configured search path and applies the preset.
func loadVariant(id string) (config.Variant, error) {
	s := currentSettings()
	cfg, err := config.LoadMeteor(s.configPath)
	if err != nil {
		return config.Variant{}, fmt.Errorf("meteor: %w", err)
	}
	v, err := cfg.Variant(id)
	if err != nil {
		return config.Variant{}, fmt.Errorf("meteor: %w", err)
	}
	if s.preset != "" {
		config.ApplyPreset(&v, s.preset)
	}
	return v, nil
}

// loadAssets resolves every asset the game needs, blocking until all have loaded.
func (g *Game) loadAssets() error {
	if g.pack == nil {
		pack, err := assets.Load(context.Background(), assets.DefaultFS(), g.audio)
		if err != nil {
			return fmt.Errorf("meteor: load assets: %w", err)
		}
		g.pack = pack
	}

	var err error
	if g.player, err = g.pack.Sprite(SpritePlayer); err != nil {
		return fmt.Errorf("meteor: %w", err)
	}
	if g.meteor, err = g.pack.Sprite(SpriteMeteor); err != nil {
		return fmt.Errorf("meteor: %w", err)
	}
	if g.life, err = g.pack.Sprite(SpriteLife); err != nil {
		return fmt.Errorf("meteor: %w", err)
	}
	for _, id := range []string{SoundHit, SoundLose} {
		if _, err := g.pack.Sound(id); err != nil {
			return fmt.Errorf("meteor: %w", err)
		}
	}
	return nil
}

// ReloadConfig re-reads the variant configuration.
// The new settings take effect at the next start.
func (g *Game) ReloadConfig() error {
	if g.pinned {
		return nil
	}
	v, err := loadVariant(g.id)
	if err != nil {
		return err
	}
	if err := v.Validate(); err != nil {
		return fmt.Errorf("meteor: %w", err)
	}
	g.pending = &v
	g.logger.Info("config reloaded", "game", g.id, "applies", "next start")
	return nil
}

// Start begins a new round. Every timer is cancelled first, so calling
// Start twice leaves exactly one main tick and one spawn timer armed.
func (g *Game) Start() {
	g.sched.StopAll()
	if g.pending != nil {
		g.cfg = *g.pending
		g.pending = nil
	}

	st := g.state
	st.reset(g.cfg.Gameplay.Lives)

	field := g.field()
	pc := g.cfg.Player
	py := core.Clamp(int(float64(field.H)*pc.YRatio), 0, core.Max(0, field.H-pc.Height))
	st.Player = entity.NewPlayer((field.W-pc.Width)/2, py, pc.Width, pc.Height, pc.Speed, pc.Step, g.player)
	st.Live = append(st.Live, st.Player)
	g.spawnObstacle()

	g.sched.Every(MainTimerName, g.cfg.Timing.TickInterval(), func(*sched.Timer) {
		g.tick()
	})
	if !g.targetSpawned() {
		g.sched.Every(SpawnTimerName, g.cfg.Timing.SpawnInterval(), func(t *sched.Timer) {
			g.spawnObstacle()
			if g.targetSpawned() {
				t.Stop()
			}
		})
	}

	g.logger.Debug("round started", "game", g.id, "lives", st.Lives, "target", g.cfg.Gameplay.Target,
		"tick", g.cfg.Timing.TickInterval(), "spawn", g.cfg.Timing.SpawnInterval())
	g.draw()
}

// targetSpawned reports whether a finite target has been fully spawned.
func (g *Game) targetSpawned() bool {
	target := g.cfg.Gameplay.Target
	return target > 0 && g.state.Spawned >= target
}

// spawnObstacle adds an obstacle at a random column and arms its fall timer.
func (g *Game) spawnObstacle() {
	if g.targetSpawned() {
		return
	}
	field := g.field()
	oc := g.cfg.Obstacles
	x := g.rng.Intn(core.Max(1, field.W-oc.Width+1))
	o := entity.NewObstacle(x, 0, oc.Width, oc.Height, oc.FallStep, g.meteor)
	o.Arm(g.sched, g.cfg.Timing.FallInterval(), field)
	g.state.Live = append(g.state.Live, o)
	g.state.Spawned++
}

// Step advances the game by one platform frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.handleInput(in)
	if g.state.Phase == PhaseRunning && !g.state.Paused {
		g.sched.Advance(g.runtime.FrameDuration())
	}
	return core.StepResult{State: g.State()}
}

// handleInput maps platform actions to bus events. Unmapped actions are ignored.
func (g *Game) handleInput(in core.InputFrame) {
	if in.Has(core.ActionConfirm) {
		g.bus.Publish(GameStart{})
	}

	st := g.state
	if st.Phase != PhaseRunning {
		return
	}
	if in.Has(core.ActionPause) {
		st.Paused = !st.Paused
		g.logger.Debug("pause toggled", "game", g.id, "paused", st.Paused)
		g.draw()
	}
	if st.Paused {
		return
	}

	switch {
	case in.Has(core.ActionLeft):
		g.bus.Publish(PlayerSpeedLeft{})
	case in.Has(core.ActionRight):
		g.bus.Publish(PlayerSpeedRight{})
	case in.Has(core.ActionDown), in.Has(core.ActionSpace):
		g.bus.Publish(PlayerSpeedZero{})
	}

	if in.WasReleased(core.ActionLeft) {
		g.bus.Publish(PlayerSpeedZero{})
		g.bus.Publish(PlayerMoveLeft{})
	}
	if in.WasReleased(core.ActionRight) {
		g.bus.Publish(PlayerSpeedZero{})
		g.bus.Publish(PlayerMoveRight{})
	}
}

// Render copies the last drawn frame into dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.frame != nil {
		dst.CopyFrom(g.frame)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := g.state
	return core.GameState{
		Score:    st.Score,
		Lives:    st.Lives,
		Running:  st.Phase == PhaseRunning,
		GameOver: st.Phase == PhaseEnded,
		Won:      st.Won,
		Paused:   st.Paused,
	}
}

// Phase returns the current lifecycle phase.
func (g *Game) Phase() Phase {
	return g.state.Phase
}

// field returns the playing area.
func (g *Game) field() core.Rect {
	return core.NewRect(0, 0, g.runtime.ScreenW, g.runtime.ScreenH)
}

// draw renders the current state into the game's own frame.
func (g *Game) draw() {
	if g.frame == nil || g.renderer == nil {
		return
	}
	g.renderer.Draw(g.frame, g.state, g.cfg.Gameplay)
}

// play plays a sound from the pack, ignoring unknown ids.
func (g *Game) play(id string) {
	if g.pack == nil {
		return
	}
	if s, err := g.pack.Sound(id); err == nil {
		s.Play()
	}
}
