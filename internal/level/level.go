// Package level builds playable levels from a height field and the portals
// and pickups placed along it.
package level

import (
	"math"

	"github.com/vovakirdan/darkpath/internal/core"
	"github.com/vovakirdan/darkpath/internal/terrain"
)

// Layout constants in world units.
const (
	Thickness = 24.0
	Gap       = 0.0
)

// Generation constants.
const (
	PickupCount     = 20
	extendOnlyEvery = 9
	extendOnlyStep  = 1
	maxPickupAmount = 100
	hubLevel        = 0
	firstLevel      = 1
	portalRoomY     = 128.0
)

// Level is one playable strip of terrain with its entities.
type Level struct {
	Number     int
	PortalRoom bool
	Thickness  float64
	Gap        float64
	Terrain    *terrain.HeightField
	Entities   []Entity
}

// New creates and populates a level. Portal rooms are a flat strip with a
// single portal to level 1; normal levels get procedural terrain, a portal
// back to the hub and PickupCount pickups.
func New(seed int64, number int, portalRoom bool) *Level {
	l := &Level{
		Number:     number,
		PortalRoom: portalRoom,
		Thickness:  Thickness,
		Gap:        Gap,
		Terrain:    terrain.New(seed, portalRoom),
	}
	if portalRoom {
		l.addFarPortal(firstLevel)
		return l
	}
	l.populate(seed, int64(number))
	return l
}

func (l *Level) populate(seed, number int64) {
	t := l.Thickness

	portalY := math.Min(
		float64(l.Height(-2*t, terrain.Base, true)),
		float64(l.Height(-3*t, terrain.Base, true)),
	)
	l.Entities = append(l.Entities, Entity{
		Kind:     KindPortal,
		Position: Fixed(-3*t, portalY),
		Payload:  PortalTo(hubLevel),
		Active:   true,
	})

	for i := int64(0); i < PickupCount; i++ {
		var payload Payload
		if i%extendOnlyEvery == 0 {
			payload = ExtendOnly(extendOnlyStep)
		} else {
			target := (seed * number) % (i + 1)
			if target < firstLevel {
				target = firstLevel
			}
			payload = ExtendLevel(int(target), int(abs64(seed*i)%maxPickupAmount))
		}

		distance := (seed / (i + 1) * (number + 1)) % (8 * (number + 1))
		x := -t * float64(distance*(i+1)*(number+1))

		l.Entities = append(l.Entities, Entity{
			Kind:     KindPickup,
			Position: OnTerrain(x),
			Payload:  payload,
			Active:   true,
		})
	}
}

// addFarPortal places a portal two tiles before the end of the strip.
func (l *Level) addFarPortal(target int) {
	x := -l.Thickness*float64(l.Terrain.Len()) + l.Thickness*2
	l.Entities = append(l.Entities, Entity{
		Kind:     KindPortal,
		Position: Fixed(x, portalRoomY),
		Payload:  PortalTo(target),
		Active:   true,
	})
}

// Extend grows the level's terrain and returns the number of samples added.
// Portal rooms grow by a fixed strip and gain a portal to the next level
// number at the new far end.
func (l *Level) Extend(amount int) int {
	added := l.Terrain.Extend(amount)
	if l.PortalRoom {
		l.addFarPortal(l.Terrain.Len() / terrain.PortalRoomSamples)
	}
	return added
}

// Height returns the terrain height of a layer at world x.
func (l *Level) Height(x float64, layer terrain.Layer, predictive bool) int {
	return l.Terrain.Height(x, l.Thickness, layer, predictive)
}

// ResolveY returns the anchor height of an entity. Terrain-following
// entities use the predictive base height, which equals the materialized
// height wherever the terrain exists.
func (l *Level) ResolveY(e *Entity) float64 {
	if e.Position.FollowTerrain {
		return float64(l.Height(e.Position.X, terrain.Base, true))
	}
	return e.Position.Y
}

// EntityAt returns the first entity whose box intersects the player
// footprint at p, in insertion order, or nil.
func (l *Level) EntityAt(p core.Vec2) *Entity {
	query := QueryBox(p)
	for i := range l.Entities {
		e := &l.Entities[i]
		if entityBox(e.Position.X, l.ResolveY(e)).Intersects(query) {
			return e
		}
	}
	return nil
}

// Stats summarises a level for overviews.
type Stats struct {
	Number        int
	PortalRoom    bool
	Seed          int64
	Frontier      int
	Portals       int
	ActivePickups int
	TotalPickups  int
}

// Stats returns a summary of the level.
func (l *Level) Stats() Stats {
	s := Stats{
		Number:     l.Number,
		PortalRoom: l.PortalRoom,
		Seed:       l.Terrain.Seed(),
		Frontier:   l.Terrain.Len(),
	}
	for _, e := range l.Entities {
		switch e.Kind {
		case KindPortal:
			s.Portals++
		case KindPickup:
			s.TotalPickups++
			if e.Active {
				s.ActivePickups++
			}
		}
	}
	return s
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
