// Package game adapts a Dark Path world to the frame-stepped game contract
// used by the terminal host: it maps input frames onto the world, keeps HUD
// state and renders the active level into a core.Screen.
package game

import (
	"github.com/vovakirdan/darkpath/internal/core"
	"github.com/vovakirdan/darkpath/internal/world"
)

// messageDuration is how long an interaction message stays on the HUD, in seconds.
const messageDuration = 2.0

// Options configures the view and world of a Game.
type Options struct {
	// CellWidth is the number of world units per screen column.
	CellWidth float64
	// CellHeight is the number of world units per screen row.
	CellHeight float64
	// ShowMezzanine draws the decorative background layer.
	ShowMezzanine bool
	// PauseKey labels the key that resumes a paused game.
	PauseKey string
	// Seeds overrides the level seed source. When nil, a non-zero
	// RuntimeConfig.Seed selects reproducible seeds, otherwise wall-clock seeds.
	Seeds world.SeedSource
	// OnEvent is called for every interaction that did something.
	OnEvent func(world.Event)
}

// DefaultOptions returns the view used when no configuration is loaded.
func DefaultOptions() Options {
	return Options{
		CellWidth:     6,
		CellHeight:    12,
		ShowMezzanine: true,
		PauseKey:      "p",
	}
}

// Game is a single-player Dark Path session.
type Game struct {
	opts   Options
	config core.RuntimeConfig
	world  *world.World

	score      int
	paused     bool
	message    string
	messageTTL float64
	fps        float64
}

// New creates a game. Call Reset before stepping it.
func New(opts Options) *Game {
	def := DefaultOptions()
	if opts.CellWidth <= 0 {
		opts.CellWidth = def.CellWidth
	}
	if opts.CellHeight <= 0 {
		opts.CellHeight = def.CellHeight
	}
	if opts.PauseKey == "" {
		opts.PauseKey = def.PauseKey
	}
	return &Game{opts: opts}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "darkpath"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Dark Path"
}

// Reset starts a fresh world in the hub.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.config = cfg
	g.world = world.New(world.WithSeedSource(g.seedSource(cfg)))
	g.score = 0
	g.paused = false
	g.message = ""
	g.messageTTL = 0
	g.fps = 0
}

func (g *Game) seedSource(cfg core.RuntimeConfig) world.SeedSource {
	if g.opts.Seeds != nil {
		return g.opts.Seeds
	}
	if cfg.Seed != 0 {
		return world.SeededSource(cfg.Seed)
	}
	return world.WallClockSeeds
}

// Resize updates the screen dimensions without touching the world.
func (g *Game) Resize(w, h int) {
	g.config.ScreenW = w
	g.config.ScreenH = h
}

// Step advances the game by dt seconds. Held directions move the player;
// ActionInteract uses whatever is under the player after the move.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	if g.world == nil {
		g.Reset(g.config)
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tickHUD(dt)

	state := in.State()
	g.world.Update(state, dt)

	var events []string
	if state.Interact {
		ev := g.world.Interact()
		if ev.Kind != world.EventNone {
			if ev.Kind == world.EventPickup {
				g.score++
			}
			g.message = ev.String()
			g.messageTTL = messageDuration
			events = append(events, ev.String())
			if g.opts.OnEvent != nil {
				g.opts.OnEvent(ev)
			}
		}
	}

	return core.StepResult{State: g.State(), Events: events}
}

// tickHUD ages the HUD message and smooths the FPS readout.
func (g *Game) tickHUD(dt float64) {
	if g.messageTTL > 0 {
		g.messageTTL -= dt
		if g.messageTTL <= 0 {
			g.message = ""
		}
	}
	if dt > 0 {
		if g.fps == 0 {
			g.fps = 1 / dt
		} else {
			g.fps = g.fps*0.9 + 0.1/dt
		}
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:  g.score,
		Paused: g.paused,
	}
}

// World exposes the underlying world.
func (g *Game) World() *world.World {
	return g.world
}

// Message returns the current HUD message, if any.
func (g *Game) Message() string {
	return g.message
}

// LevelRow is one line of the level overview.
type LevelRow struct {
	Index         int
	PortalRoom    bool
	Seed          int64
	Frontier      int
	Portals       int
	ActivePickups int
	TotalPickups  int
	Active        bool
}

// Overview lists every generated level.
func (g *Game) Overview() []LevelRow {
	if g.world == nil {
		return nil
	}
	levels := g.world.Levels()
	rows := make([]LevelRow, 0, len(levels))
	for i, l := range levels {
		s := l.Stats()
		rows = append(rows, LevelRow{
			Index:         i,
			PortalRoom:    s.PortalRoom,
			Seed:          s.Seed,
			Frontier:      s.Frontier,
			Portals:       s.Portals,
			ActivePickups: s.ActivePickups,
			TotalPickups:  s.TotalPickups,
			Active:        i == g.world.Active(),
		})
	}
	return rows
}
