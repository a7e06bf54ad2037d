package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the simulation to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, A - move left (held)
	ActionRight          // Right arrow, D - move right (held)
	ActionJump           // Space, Up, W - jump (held)
	ActionDrop           // X, J - drop an apple (edge-triggered)
	ActionConfirm        // Enter - start / restart (edge-triggered)
	ActionPause          // P, Escape - pause/unpause
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionJump:
		return "Jump"
	case ActionDrop:
		return "Drop"
	case ActionConfirm:
		return "Confirm"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// EdgeTriggered reports whether the action fires once per press rather
// than for as long as the key is held.
func (a Action) EdgeTriggered() bool {
	switch a {
	case ActionDrop, ActionConfirm, ActionPause, ActionQuit:
		return true
	}
	return false
}

// InputFrame is the polled input snapshot for one simulation tick.
// Held actions (move, jump) stay set while the key is down; edge-triggered
// actions are set once per press and consumed by whoever acts on them.
type InputFrame struct {
	// Actions maps action types to whether they are active this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as active for this frame.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is active this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Consume reports whether the action is active and clears it.
// The map is shared with the caller's frame, so a consumed edge is not
// replayed on the next tick even if the host forgets to clear it.
func (f *InputFrame) Consume(a Action) bool {
	if !f.Has(a) {
		return false
	}
	delete(f.Actions, a)
	return true
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
