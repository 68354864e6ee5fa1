package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionUp               // W, Up arrow - move menu cursor up
	ActionDown             // S, Down arrow - move menu cursor down
	ActionLeft             // A, H, Left arrow - move tube cursor left
	ActionRight            // D, L, Right arrow - move tube cursor right
	ActionSelect           // Space, Enter - select or pour into the tube under the cursor
	ActionConfirm          // Enter - confirm selection in menu
	ActionBack             // B, Escape - go back to menu
	ActionRestart          // R key - regenerate the current level
	ActionNextLevel        // N key - advance after a win
	ActionHint             // H key - show a suggested pour
	ActionQuit             // Q, Ctrl+C - exit game/session
	ActionPause            // P - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionSelect:
		return "Select"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionNextLevel:
		return "NextLevel"
	case ActionHint:
		return "Hint"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input collected between two game steps.
// Besides semantic actions it can carry a direct object pick (digit keys)
// and a mouse click position.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	pick    int // 1-based index picked with a digit key, 0 = none
	clickX  int
	clickY  int
	clicked bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// SetPick records a direct pick of the n-th object (1-based).
func (f *InputFrame) SetPick(n int) {
	if n < 1 {
		return
	}
	f.pick = n
}

// Pick returns the 0-based picked index, if any.
func (f InputFrame) Pick() (int, bool) {
	if f.pick < 1 {
		return 0, false
	}
	return f.pick - 1, true
}

// SetClick records a mouse click at screen cell (x, y).
func (f *InputFrame) SetClick(x, y int) {
	f.clickX, f.clickY = x, y
	f.clicked = true
}

// Click returns the mouse click position, if any.
func (f InputFrame) Click() (x, y int, ok bool) {
	return f.clickX, f.clickY, f.clicked
}

// Empty reports whether nothing happened this frame.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0 && f.pick == 0 && !f.clicked
}

// Clear resets all input for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.pick = 0
	f.clicked = false
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.pick = f.pick
	clone.clickX, clone.clickY, clone.clicked = f.clickX, f.clickY, f.clicked
	return clone
}
