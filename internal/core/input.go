package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone     Action = iota
	ActionLeft            // held: walk/climb left
	ActionRight           // held: walk/climb right
	ActionInteract        // one-shot: use the portal or pickup under the player
	ActionPause           // one-shot: pause/unpause
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
	case ActionInteract:
		return "Interact"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were active this frame.
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

// InputState is the per-frame intent consumed by the world update.
type InputState struct {
	Left     bool
	Right    bool
	Interact bool
}

// State extracts the movement and interaction intent from the frame.
func (f InputFrame) State() InputState {
	return InputState{
		Left:     f.Has(ActionLeft),
		Right:    f.Has(ActionRight),
		Interact: f.Has(ActionInteract),
	}
}

// Direction returns the logical horizontal direction: Right is +1, Left is -1.
// Holding both cancels out.
func (s InputState) Direction() int {
	d := 0
	if s.Right {
		d++
	}
	if s.Left {
		d--
	}
	return d
}
