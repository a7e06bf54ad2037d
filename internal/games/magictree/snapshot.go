package magictree

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/vovakirdan/magic-tree/internal/core"
)

// Snapshot is a detached copy of the world for rendering, replay and
// headless reports. It shares no memory with the live world.
type Snapshot struct {
	Tick    int        `msgpack:"tick"`
	Phase   core.Phase `msgpack:"phase"`
	Paused  bool       `msgpack:"paused"`
	Score   int        `msgpack:"score"`
	Scroll  float64    `msgpack:"scroll"`
	Section int        `msgpack:"section"`
	ViewW   float64    `msgpack:"view_w"`
	ViewH   float64    `msgpack:"view_h"`

	Player       PlayerSnapshot  `msgpack:"player"`
	Platforms    []Platform      `msgpack:"platforms"`
	Enemies      []EnemySnapshot `msgpack:"enemies"`
	Projectiles  []Projectile    `msgpack:"projectiles"`
	Collectibles []Collectible   `msgpack:"collectibles"`
	Hazards      []Hazard        `msgpack:"hazards"`
}

// PlayerSnapshot is the exported part of the player's state.
type PlayerSnapshot struct {
	X, Y         float64
	W, H         float64
	VelY         float64
	Airborne     bool
	Lives        int
	FacingRight  bool
	Frame        int
	Invulnerable bool
}

// EnemySnapshot flattens an enemy and its behavior state.
type EnemySnapshot struct {
	Kind EnemyKind
	X, Y float64
	W, H float64
	Dir  float64
	// Timer is the last jump or attack time in ms for periodic kinds.
	Timer float64
}

// Snapshot returns a copy of the current world.
func (g *Game) Snapshot() Snapshot {
	w := g.world
	if w == nil {
		return Snapshot{}
	}
	p := w.Player
	snap := Snapshot{
		Tick:    w.Tick,
		Phase:   w.Phase,
		Paused:  g.paused,
		Score:   w.Score,
		Scroll:  w.Scroll,
		Section: w.Section,
		ViewW:   w.viewW,
		ViewH:   w.viewH,
		Player: PlayerSnapshot{
			X: p.X, Y: p.Y, W: p.W, H: p.H,
			VelY:         p.VelY,
			Airborne:     p.Airborne,
			Lives:        p.Lives,
			FacingRight:  p.FacingRight,
			Frame:        p.Frame,
			Invulnerable: w.invulnerable(),
		},
		Platforms:    append([]Platform(nil), w.Platforms...),
		Projectiles:  append([]Projectile(nil), w.Projectiles...),
		Collectibles: append([]Collectible(nil), w.Collectibles...),
		Hazards:      append([]Hazard(nil), w.Hazards...),
		Enemies:      make([]EnemySnapshot, 0, len(w.Enemies)),
	}
	for _, e := range w.Enemies {
		es := EnemySnapshot{Kind: e.Kind, X: e.X, Y: e.Y, W: e.W, H: e.H, Dir: e.Dir}
		switch b := e.Behavior.(type) {
		case *Hop:
			es.Timer = b.LastJumpMS
		case *Storm:
			es.Timer = b.LastAttackMS
		}
		snap.Enemies = append(snap.Enemies, es)
	}
	return snap
}

// Encode serializes the snapshot with MessagePack.
func (s Snapshot) Encode() ([]byte, error) {
	data, err := msgpack.Marshal(&s)
	if err != nil {
		return nil, fmt.Errorf("magictree: encode snapshot: %w", err)
	}
	return data, nil
}

// DecodeSnapshot parses a snapshot produced by Encode.
func DecodeSnapshot(data []byte) (Snapshot, error) {
	var s Snapshot
	if err := msgpack.Unmarshal(data, &s); err != nil {
		return Snapshot{}, fmt.Errorf("magictree: decode snapshot: %w", err)
	}
	return s, nil
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (s Snapshot) Hash() uint64 {
	data, err := s.Encode()
	if err != nil {
		return 0
	}
	var h uint64
	for _, b := range data {
		h = h*31 + uint64(b)
	}
	return h
}
