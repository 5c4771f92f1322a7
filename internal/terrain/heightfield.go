package terrain

import "math"

// Layer selects one of the two parallel height profiles.
type Layer int

const (
	// Base is the solid foreground profile the player walks on.
	Base Layer = iota
	// Mezzanine is the busier decorative background profile.
	Mezzanine
)

// String returns the layer name.
func (l Layer) String() string {
	if l == Mezzanine {
		return "mezzanine"
	}
	return "base"
}

// Generation constants.
const (
	InitialSamples    = 20
	PortalRoomSamples = 5
	PortalRoomBase    = 128
	PortalRoomMezz    = 127
)

// OutOfRange is returned by non-predictive height queries that miss the
// materialized samples.
const OutOfRange = -1

// HeightField holds the base and mezzanine samples of a level.
// Both slices always have the same length and only ever grow.
type HeightField struct {
	noise      *Noise
	portalRoom bool
	base       []int
	mezzanine  []int
}

// New creates a height field. Normal fields start with InitialSamples noise
// samples per layer; portal rooms start with a flat floor of
// PortalRoomSamples samples.
func New(seed int64, portalRoom bool) *HeightField {
	h := &HeightField{
		noise:      NewNoise(seed),
		portalRoom: portalRoom,
	}
	if portalRoom {
		h.appendFlat(PortalRoomSamples)
	} else {
		h.appendNoise(InitialSamples)
	}
	return h
}

// Extend appends samples to both layers and returns how many were added.
// Portal rooms always grow by PortalRoomSamples flat samples; normal fields
// grow by amount noise samples continuing from the current frontier.
func (h *HeightField) Extend(amount int) int {
	if h.portalRoom {
		h.appendFlat(PortalRoomSamples)
		return PortalRoomSamples
	}
	if amount <= 0 {
		return 0
	}
	h.appendNoise(amount)
	return amount
}

func (h *HeightField) appendNoise(n int) {
	start := len(h.base)
	for i := start; i < start+n; i++ {
		h.base = append(h.base, h.sample(Base, i))
		h.mezzanine = append(h.mezzanine, h.sample(Mezzanine, i))
	}
}

func (h *HeightField) appendFlat(n int) {
	for i := 0; i < n; i++ {
		h.base = append(h.base, PortalRoomBase)
		h.mezzanine = append(h.mezzanine, PortalRoomMezz)
	}
}

// sample computes the value of a layer at an index without touching the
// stored arrays.
func (h *HeightField) sample(layer Layer, index int) int {
	if h.portalRoom {
		if layer == Mezzanine {
			return PortalRoomMezz
		}
		return PortalRoomBase
	}
	if layer == Mezzanine {
		return h.noise.Sample(MezzanineFrequency, index)
	}
	return h.noise.Sample(BaseFrequency, index)
}

// Index maps a world x-coordinate to a sample index. Tile i spans the world
// around x = -thickness * (i - 1).
func Index(x, thickness float64) int {
	return int(math.Round(-x/thickness)) + 1
}

// Height returns the height of a layer at world x. Non-predictive queries
// outside the materialized samples return OutOfRange; predictive queries
// compute the value the samples will have once extended that far.
func (h *HeightField) Height(x, thickness float64, layer Layer, predictive bool) int {
	return h.At(Index(x, thickness), layer, predictive)
}

// At is Height addressed by sample index.
func (h *HeightField) At(index int, layer Layer, predictive bool) int {
	if index < 0 || index >= len(h.base) {
		if !predictive {
			return OutOfRange
		}
		return h.sample(layer, index)
	}
	if layer == Mezzanine {
		return h.mezzanine[index]
	}
	return h.base[index]
}

// Len returns the number of materialized samples (the frontier).
func (h *HeightField) Len() int {
	return len(h.base)
}

// Base returns the base layer samples. Callers must not modify the slice.
func (h *HeightField) Base() []int {
	return h.base
}

// Mezzanine returns the mezzanine layer samples. Callers must not modify the slice.
func (h *HeightField) Mezzanine() []int {
	return h.mezzanine
}

// Seed returns the generation seed.
func (h *HeightField) Seed() int64 {
	return h.noise.Seed()
}

// PortalRoom reports whether this is a flat portal-room field.
func (h *HeightField) PortalRoom() bool {
	return h.portalRoom
}

// FromSamples builds a normal height field from explicit samples. Further
// extension continues with noise for seed from the given frontier.
func FromSamples(seed int64, base, mezzanine []int) *HeightField {
	n := len(base)
	if len(mezzanine) < n {
		n = len(mezzanine)
	}
	return &HeightField{
		noise:     NewNoise(seed),
		base:      append([]int(nil), base[:n]...),
		mezzanine: append([]int(nil), mezzanine[:n]...),
	}
}
