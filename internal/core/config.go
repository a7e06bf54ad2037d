package core

// RuntimeConfig contains the bootstrap parameters passed to the simulation.
// The viewport is measured in world units, not terminal cells; hosts scale it.
type RuntimeConfig struct {
	ViewW    int   // Viewport width in world units
	ViewH    int   // Viewport height in world units
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ViewW:    480,
		ViewH:    720,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Phase is the session's position in the game state machine.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhasePlaying
	PhaseGameOver
	PhaseCleared
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not-started"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game-over"
	case PhaseCleared:
		return "game-cleared"
	default:
		return "unknown"
	}
}

// Finished reports whether the phase ends a run.
func (p Phase) Finished() bool {
	return p == PhaseGameOver || p == PhaseCleared
}

// GameState represents the current session state.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Phase   Phase
	Score   int  // Current score
	Lives   int  // Remaining lives
	Section int  // Current difficulty section
	Paused  bool // Whether the game is paused
}

// EventKind identifies something notable that happened during a tick.
type EventKind int

const (
	EventStart EventKind = iota
	EventReset
	EventJump
	EventDrop
	EventKill
	EventPickup
	EventDamage
	EventAttack
	EventSection
	EventGameOver
	EventCleared
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventStart:
		return "start"
	case EventReset:
		return "reset"
	case EventJump:
		return "jump"
	case EventDrop:
		return "drop"
	case EventKill:
		return "kill"
	case EventPickup:
		return "pickup"
	case EventDamage:
		return "damage"
	case EventAttack:
		return "attack"
	case EventSection:
		return "section"
	case EventGameOver:
		return "game-over"
	case EventCleared:
		return "cleared"
	default:
		return "unknown"
	}
}

// Event is one entry of the per-tick event log. Value carries the score
// awarded, damage taken or new section depending on Kind.
type Event struct {
	Kind  EventKind
	Value int
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
