// Package world owns the levels of a Dark Path session, the player and the
// per-frame update and interaction logic.
package world

import (
	"time"

	"github.com/vovakirdan/darkpath/internal/core"
	"github.com/vovakirdan/darkpath/internal/level"
	"github.com/vovakirdan/darkpath/internal/terrain"
)

// Gameplay constants.
const (
	// Speed is both the walking/climbing speed and the fall speed, in world
	// units per second.
	Speed = 100.0

	// ReentryX is where the player appears after taking a portal.
	ReentryX = -60.0

	hubLevel = 0
)

// SeedSource returns the generation seed for the level at index.
type SeedSource func(index int) int64

// WallClockSeeds seeds every level with the current Unix time. Runs are not
// reproducible; only the seed a level was generated with matters for it.
func WallClockSeeds(int) int64 {
	return time.Now().Unix()
}

// SeededSource returns a reproducible source deriving level seeds from base.
func SeededSource(base int64) SeedSource {
	return func(index int) int64 {
		return base + int64(index)
	}
}

// Option configures a World.
type Option func(*World)

// WithSeedSource overrides how new levels are seeded.
func WithSeedSource(src SeedSource) Option {
	return func(w *World) {
		w.seeds = src
	}
}

// Player is the player token.
type Player struct {
	Pos core.Vec2
	// ClimbDirection is the logical direction of an ongoing climb (-1, 0, 1).
	ClimbDirection int
}

// World is a single-player session: an append-only list of levels, the
// active level index and the player.
type World struct {
	levels []*level.Level
	active int
	player Player
	seeds  SeedSource
}

// New creates a world whose level 0 is the hub portal room, with the player
// standing at its start.
func New(opts ...Option) *World {
	w := &World{seeds: WallClockSeeds}
	for _, opt := range opts {
		opt(w)
	}

	w.levels = append(w.levels, level.New(w.seeds(hubLevel), hubLevel, true))
	w.player = Player{
		Pos: core.Vec2{X: 0, Y: float64(w.levels[hubLevel].Height(0, terrain.Base, false))},
	}
	return w
}

// Levels returns all generated levels in index order.
func (w *World) Levels() []*level.Level {
	return w.levels
}

// Level returns the level at index i, or nil if it was not generated yet.
func (w *World) Level(i int) *level.Level {
	if i < 0 || i >= len(w.levels) {
		return nil
	}
	return w.levels[i]
}

// Active returns the active level index.
func (w *World) Active() int {
	return w.active
}

// ActiveLevel returns the active level.
func (w *World) ActiveLevel() *level.Level {
	return w.levels[w.active]
}

// Player returns the player state.
func (w *World) Player() Player {
	return w.player
}

// SetPlayer replaces the player state.
func (w *World) SetPlayer(p Player) {
	w.player = p
}

// ensureLevel generates every missing level up to and including index and
// returns how many were created.
func (w *World) ensureLevel(index int) int {
	created := 0
	for i := len(w.levels); i <= index; i++ {
		w.levels = append(w.levels, level.New(w.seeds(i), i, false))
		created++
	}
	return created
}

// height returns the active level's base height at x, or OutOfRange.
func (w *World) height(x float64) float64 {
	return float64(w.ActiveLevel().Height(x, terrain.Base, false))
}

// inRange reports whether the active level has materialized terrain at x.
func (w *World) inRange(x float64) bool {
	return w.ActiveLevel().Height(x, terrain.Base, false) != terrain.OutOfRange
}
