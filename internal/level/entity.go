package level

import "github.com/vovakirdan/darkpath/internal/core"

// Kind identifies what an entity does when the player interacts with it.
type Kind int

const (
	KindPortal Kind = iota
	KindPickup
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindPortal:
		return "portal"
	case KindPickup:
		return "pickup"
	default:
		return "unknown"
	}
}

// Position is where an entity sits: either at fixed world coordinates or at
// an x that follows the terrain surface.
type Position struct {
	X             float64
	Y             float64
	FollowTerrain bool
}

// Fixed returns a position at fixed world coordinates.
func Fixed(x, y float64) Position {
	return Position{X: x, Y: y}
}

// OnTerrain returns a position whose height is resolved from the terrain.
func OnTerrain(x float64) Position {
	return Position{X: x, FollowTerrain: true}
}

// Payload carries the kind-specific data of an entity.
type Payload struct {
	// Target is the destination level of a portal or the level a pickup
	// extends. Meaningless for pickups without a target.
	Target int
	// HasTarget is false for extension-only pickups.
	HasTarget bool
	// Amount is the number of samples a pickup appends.
	Amount int
}

// PortalTo returns the payload of a portal leading to level target.
func PortalTo(target int) Payload {
	return Payload{Target: target, HasTarget: true}
}

// ExtendLevel returns the payload of a pickup that extends level target.
func ExtendLevel(target, amount int) Payload {
	return Payload{Target: target, HasTarget: true, Amount: amount}
}

// ExtendOnly returns the payload of a pickup without a target level.
func ExtendOnly(amount int) Payload {
	return Payload{Amount: amount}
}

// Entity is a portal or pickup marker placed along a level.
type Entity struct {
	Kind     Kind
	Position Position
	Payload  Payload
	Active   bool
}

// Entity and query box sizes in world units.
const (
	EntitySize  = 30.0
	QueryWidth  = 10.0
	QueryHeight = 14.0
)

// Consume deactivates a pickup. It returns false when the entity is a portal
// or was already consumed.
func (e *Entity) Consume() bool {
	if e.Kind != KindPickup || !e.Active {
		return false
	}
	e.Active = false
	return true
}

// QueryBox returns the player's collision footprint centred on p.
func QueryBox(p core.Vec2) core.Box {
	return core.NewBox(p.X-QueryWidth/2, p.Y-QueryHeight/2, QueryWidth, QueryHeight)
}

// entityBox returns the box of an entity whose anchor height is y.
func entityBox(x, y float64) core.Box {
	return core.NewBox(x-EntitySize/2, y, EntitySize, EntitySize)
}
