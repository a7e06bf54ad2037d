// Package audio defines the audio collaborator the simulation talks to.
// Requests are fire-and-forget: callers never inspect a result.
package audio

// Clip identifies an audio asset.
type Clip string

// Clips requested by the simulation.
const (
	ClipBGMMain     Clip = "bgm_main"
	ClipBGMSection2 Clip = "bgm_section2"
	ClipJump        Clip = "sfx_jump"
	ClipAppleDrop   Clip = "sfx_apple_drop"
	ClipEnemyHit    Clip = "sfx_enemy_hit"
	ClipDiamond     Clip = "sfx_diamond"
	ClipThunder     Clip = "sfx_thunder"
	ClipGameOver    Clip = "sfx_game_over"
	ClipGameClear   Clip = "sfx_game_clear"
)

// IsMusic reports whether the clip is background music rather than an
// effect. Music and effects have separate volume controls.
func (c Clip) IsMusic() bool {
	return len(c) > 4 && c[:4] == "bgm_"
}

// Player is the audio capability consumed by the simulation.
type Player interface {
	// Play starts a clip from the beginning. Volume is in [0, 1].
	Play(clip Clip, loop bool, volume float64)
	// Stop halts a clip and rewinds it.
	Stop(clip Clip)
	// StopAll halts every clip.
	StopAll()
}

// Nop discards every request.
type Nop struct{}

func (Nop) Play(Clip, bool, float64) {}
func (Nop) Stop(Clip)                {}
func (Nop) StopAll()                 {}

// Op is the kind of a recorded request.
type Op string

const (
	OpPlay    Op = "play"
	OpStop    Op = "stop"
	OpStopAll Op = "stop_all"
)

// Call is one recorded request.
type Call struct {
	Op     Op
	Clip   Clip
	Loop   bool
	Volume float64
}

// Recorder keeps every request in order. Used by tests and the headless
// runner to assert on what the simulation asked for.
type Recorder struct {
	Calls []Call
}

func (r *Recorder) Play(clip Clip, loop bool, volume float64) {
	r.Calls = append(r.Calls, Call{Op: OpPlay, Clip: clip, Loop: loop, Volume: volume})
}

func (r *Recorder) Stop(clip Clip) {
	r.Calls = append(r.Calls, Call{Op: OpStop, Clip: clip})
}

func (r *Recorder) StopAll() {
	r.Calls = append(r.Calls, Call{Op: OpStopAll})
}

// Played returns the clips passed to Play, in order.
func (r *Recorder) Played() []Clip {
	var out []Clip
	for _, c := range r.Calls {
		if c.Op == OpPlay {
			out = append(out, c.Clip)
		}
	}
	return out
}

// Count returns how many times the clip was played.
func (r *Recorder) Count(clip Clip) int {
	n := 0
	for _, c := range r.Calls {
		if c.Op == OpPlay && c.Clip == clip {
			n++
		}
	}
	return n
}

// Reset forgets all recorded calls.
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
}
