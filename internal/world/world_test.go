package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/darkpath/internal/core"
	"github.com/vovakirdan/darkpath/internal/level"
	"github.com/vovakirdan/darkpath/internal/terrain"
)

const frame = 0.016

func newTestWorld() *World {
	return New(WithSeedSource(SeededSource(100)))
}

// withTerrain replaces the hub with a normal level built from base samples.
func withTerrain(w *World, base ...int) {
	w.levels[hubLevel] = &level.Level{
		Number:    hubLevel,
		Thickness: level.Thickness,
		Terrain:   terrain.FromSamples(1, base, base),
	}
}

func right() core.InputState { return core.InputState{Right: true} }
func left() core.InputState  { return core.InputState{Left: true} }

func TestNewWorld(t *testing.T) {
	w := newTestWorld()

	require.Len(t, w.Levels(), 1)
	assert.Equal(t, 0, w.Active())
	assert.True(t, w.ActiveLevel().PortalRoom)
	assert.Equal(t, int64(100), w.ActiveLevel().Terrain.Seed())
	assert.Equal(t, core.Vec2{X: 0, Y: 128}, w.Player().Pos)
	assert.Nil(t, w.Level(1))
	assert.Nil(t, w.Level(-1))
}

func TestWalkAcrossPortalRoom(t *testing.T) {
	w := newTestWorld()

	for i := 0; i < 10; i++ {
		w.Update(right(), frame)
	}

	p := w.Player().Pos
	assert.InDelta(t, -16.0, p.X, 1e-9)
	assert.Equal(t, 128.0, p.Y)

	for i := 0; i < 10; i++ {
		w.Update(left(), frame)
	}
	assert.InDelta(t, 0.0, w.Player().Pos.X, 1e-9)
}

func TestBothDirectionsCancel(t *testing.T) {
	w := newTestWorld()

	w.Update(core.InputState{Left: true, Right: true}, frame)
	assert.Equal(t, core.Vec2{X: 0, Y: 128}, w.Player().Pos)
}

func TestNonPositiveFrameTimeIsNoop(t *testing.T) {
	w := newTestWorld()
	w.SetPlayer(Player{Pos: core.Vec2{X: 0, Y: 200}})

	w.Update(right(), 0)
	w.Update(right(), -1)
	assert.Equal(t, core.Vec2{X: 0, Y: 200}, w.Player().Pos)
}

func TestPortalToNewLevel(t *testing.T) {
	w := newTestWorld()
	w.SetPlayer(Player{Pos: core.Vec2{X: -72, Y: 128}})

	ev := w.Interact()

	assert.Equal(t, EventPortal, ev.Kind)
	assert.Equal(t, 0, ev.From)
	assert.Equal(t, 1, ev.To)
	assert.Equal(t, 1, ev.Generated)

	require.Len(t, w.Levels(), 2)
	assert.Equal(t, 1, w.Active())
	l := w.ActiveLevel()
	assert.Equal(t, 1, l.Number)
	assert.False(t, l.PortalRoom)
	assert.Equal(t, int64(101), l.Terrain.Seed())

	p := w.Player().Pos
	assert.Equal(t, ReentryX, p.X)
	assert.Equal(t, float64(l.Terrain.Base()[4]), p.Y)
}

func TestPortalBackToHub(t *testing.T) {
	w := newTestWorld()
	w.SetPlayer(Player{Pos: core.Vec2{X: -72, Y: 128}})
	w.Interact()

	portal := w.ActiveLevel().Entities[0]
	w.SetPlayer(Player{Pos: core.Vec2{X: portal.Position.X, Y: portal.Position.Y}})

	ev := w.Interact()
	assert.Equal(t, EventPortal, ev.Kind)
	assert.Equal(t, 0, ev.To)
	assert.Equal(t, 0, ev.Generated)
	assert.Equal(t, 0, w.Active())
	assert.Len(t, w.Levels(), 2)
	assert.Equal(t, core.Vec2{X: ReentryX, Y: 128}, w.Player().Pos)
}

func TestPortalGeneratesMissingLevels(t *testing.T) {
	w := newTestWorld()
	w.levels[hubLevel].Entities = append(w.levels[hubLevel].Entities, level.Entity{
		Kind:     level.KindPortal,
		Position: level.Fixed(0, 128),
		Payload:  level.PortalTo(4),
		Active:   true,
	})

	ev := w.Interact()

	assert.Equal(t, 4, ev.Generated)
	require.Len(t, w.Levels(), 5)
	assert.Equal(t, 4, w.Active())
	for i, l := range w.Levels()[1:] {
		assert.Equal(t, i+1, l.Number)
		assert.Equal(t, int64(100+i+1), l.Terrain.Seed())
		assert.Equal(t, terrain.InitialSamples, l.Terrain.Len())
	}
}

func TestInteractWithNothing(t *testing.T) {
	w := newTestWorld()

	ev := w.Interact()
	assert.Equal(t, EventNone, ev.Kind)
	assert.Empty(t, ev.String())
	assert.Len(t, w.Levels(), 1)
}

func TestPickupExtendsTargetOnce(t *testing.T) {
	w := newTestWorld()
	w.levels[hubLevel].Entities = append(w.levels[hubLevel].Entities, level.Entity{
		Kind:     level.KindPickup,
		Position: level.Fixed(0, 128),
		Payload:  level.ExtendLevel(2, 7),
		Active:   true,
	})

	ev := w.Interact()

	assert.Equal(t, EventPickup, ev.Kind)
	assert.Equal(t, 2, ev.Target)
	assert.Equal(t, 7, ev.Amount)
	assert.Equal(t, 7, ev.Added)
	assert.Equal(t, 2, ev.Generated, "levels up to the target are generated first")
	require.Len(t, w.Levels(), 3)
	assert.Equal(t, 27, w.Level(2).Terrain.Len())
	assert.Equal(t, 0, w.Active(), "pickups never switch levels")
	assert.Equal(t, "level 2 grew by 7", ev.String())

	again := w.Interact()
	assert.Equal(t, EventNone, again.Kind)
	assert.Equal(t, 27, w.Level(2).Terrain.Len())
	assert.False(t, w.levels[hubLevel].Entities[1].Active)
}

func TestExtendOnlyPickupGrowsHub(t *testing.T) {
	w := newTestWorld()
	w.levels[hubLevel].Entities = append(w.levels[hubLevel].Entities, level.Entity{
		Kind:     level.KindPickup,
		Position: level.Fixed(0, 128),
		Payload:  level.ExtendOnly(1),
		Active:   true,
	})

	ev := w.Interact()

	assert.Equal(t, EventPickup, ev.Kind)
	assert.Equal(t, 0, ev.Target)
	assert.Equal(t, terrain.PortalRoomSamples, ev.Added)
	assert.Equal(t, 10, w.ActiveLevel().Terrain.Len())
	assert.Len(t, w.ActiveLevel().Entities, 3, "the hub grows a new portal")
}

func TestClimbTallerColumn(t *testing.T) {
	w := newTestWorld()
	withTerrain(w, 100, 160, 160, 160, 160)
	w.SetPlayer(Player{Pos: core.Vec2{X: 0, Y: 100}})

	w.Update(right(), frame)

	p := w.Player()
	assert.Equal(t, 0.0, p.Pos.X, "climbing converts horizontal motion")
	assert.InDelta(t, 101.6, p.Pos.Y, 1e-9)
	assert.Equal(t, 1, p.ClimbDirection)

	frames := 0
	for w.Player().Pos.X == 0 && frames < 100 {
		w.Update(right(), frame)
		frames++
	}

	p = w.Player()
	require.Less(t, frames, 100)
	assert.Equal(t, 160.0, p.Pos.Y, "the player lands on the column top")
	assert.InDelta(t, -1.6, p.Pos.X, 1e-9)
	assert.Equal(t, 0, p.ClimbDirection)
}

func TestReverseDuringClimbSnapsOnTop(t *testing.T) {
	w := newTestWorld()
	withTerrain(w, 100, 160, 160, 160, 160)
	w.SetPlayer(Player{Pos: core.Vec2{X: 0, Y: 100}})

	w.Update(right(), frame)
	w.Update(left(), frame)

	p := w.Player()
	assert.Equal(t, 160.0, p.Pos.Y)
	assert.InDelta(t, 1.6, p.Pos.X, 1e-9)
	assert.Equal(t, 0, p.ClimbDirection)
}

func TestGravityLandsOnSurface(t *testing.T) {
	w := newTestWorld()
	withTerrain(w, 100, 100, 100, 100, 100)
	w.SetPlayer(Player{Pos: core.Vec2{X: 0, Y: 150}})

	w.Update(core.InputState{}, 0.1)
	assert.InDelta(t, 140.0, w.Player().Pos.Y, 1e-9)

	for i := 0; i < 10; i++ {
		w.Update(core.InputState{}, 0.1)
	}
	assert.Equal(t, 100.0, w.Player().Pos.Y)
}

func TestWalkOffLedgeFalls(t *testing.T) {
	w := newTestWorld()
	withTerrain(w, 160, 160, 40, 40, 40)
	w.SetPlayer(Player{Pos: core.Vec2{X: -11, Y: 160}})

	w.Update(right(), frame)

	p := w.Player().Pos
	assert.Less(t, p.X, -12.0)
	assert.InDelta(t, 160-1.6, p.Y, 1e-9)
}

func TestWallPolicy(t *testing.T) {
	tests := []struct {
		name  string
		start core.Vec2
		in    core.InputState
	}{
		{"past the frontier", core.Vec2{X: -80, Y: 128}, right()},
		{"behind the start", core.Vec2{X: 35, Y: 128}, left()},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := newTestWorld()
			w.SetPlayer(Player{Pos: tc.start})

			w.Update(tc.in, 0.1)

			assert.Equal(t, tc.start, w.Player().Pos)
		})
	}
}

func TestNoGravityOutOfRange(t *testing.T) {
	w := newTestWorld()
	w.SetPlayer(Player{Pos: core.Vec2{X: -500, Y: 300}})

	w.Update(core.InputState{}, 0.1)
	assert.Equal(t, core.Vec2{X: -500, Y: 300}, w.Player().Pos)
}

func TestSeededSourceIsReproducible(t *testing.T) {
	a := New(WithSeedSource(SeededSource(7)))
	b := New(WithSeedSource(SeededSource(7)))
	a.ensureLevel(3)
	b.ensureLevel(3)

	for i := range a.Levels() {
		assert.Equal(t, a.Level(i).Terrain.Base(), b.Level(i).Terrain.Base())
	}
}

func TestEventString(t *testing.T) {
	assert.Equal(t, "portal 0 → 1", Event{Kind: EventPortal, From: 0, To: 1}.String())
	assert.Equal(t, "portal 0 → 3 (3 new)", Event{Kind: EventPortal, From: 0, To: 3, Generated: 3}.String())
}
