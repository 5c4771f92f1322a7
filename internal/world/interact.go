package world

import (
	"fmt"

	"github.com/vovakirdan/darkpath/internal/core"
	"github.com/vovakirdan/darkpath/internal/level"
	"github.com/vovakirdan/darkpath/internal/terrain"
)

// EventKind identifies the outcome of an interaction.
type EventKind int

const (
	EventNone EventKind = iota
	EventPortal
	EventPickup
)

// Event describes what an interaction did.
type Event struct {
	Kind EventKind

	// Portal jumps.
	From, To int

	// Pickups.
	Target int
	Amount int
	Added  int

	// Generated is the number of levels created to satisfy the interaction.
	Generated int
}

// String returns a short description suitable for a status line.
func (e Event) String() string {
	switch e.Kind {
	case EventPortal:
		if e.Generated > 0 {
			return fmt.Sprintf("portal %d → %d (%d new)", e.From, e.To, e.Generated)
		}
		return fmt.Sprintf("portal %d → %d", e.From, e.To)
	case EventPickup:
		return fmt.Sprintf("level %d grew by %d", e.Target, e.Added)
	default:
		return ""
	}
}

// Interact uses the entity under the player. Portals switch the active level,
// generating any missing levels first; active pickups extend their target
// level and are consumed. Anything else is a no-op.
func (w *World) Interact() Event {
	e := w.ActiveLevel().EntityAt(w.player.Pos)
	if e == nil || !e.Active {
		return Event{Kind: EventNone}
	}

	switch e.Kind {
	case level.KindPortal:
		return w.takePortal(e.Payload.Target)
	case level.KindPickup:
		return w.consumePickup(e)
	}
	return Event{Kind: EventNone}
}

func (w *World) takePortal(target int) Event {
	if target < 0 {
		return Event{Kind: EventNone}
	}
	ev := Event{Kind: EventPortal, From: w.active, To: target}
	ev.Generated = w.ensureLevel(target)
	w.active = target

	l := w.ActiveLevel()
	y := l.Height(ReentryX, terrain.Base, false)
	if y == terrain.OutOfRange {
		y = l.Height(ReentryX, terrain.Base, true)
	}
	w.player = Player{Pos: core.Vec2{X: ReentryX, Y: float64(y)}}
	return ev
}

func (w *World) consumePickup(e *level.Entity) Event {
	target := hubLevel
	if e.Payload.HasTarget {
		target = e.Payload.Target
	}
	if target < 0 {
		return Event{Kind: EventNone}
	}

	e.Consume()
	ev := Event{Kind: EventPickup, Target: target, Amount: e.Payload.Amount}
	ev.Generated = w.ensureLevel(target)
	ev.Added = w.levels[target].Extend(e.Payload.Amount)
	return ev
}
