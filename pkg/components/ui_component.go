package components

// InteractionState represents the current interaction state of a UI element.
// It is derived from the element's highlighting/pressing flags and never set directly.
type InteractionState int

const (
	// StateNormal indicates the UI element is in its default state.
	StateNormal InteractionState = iota
	// StateHighlighted indicates the pointer is over the element or it holds focus.
	StateHighlighted
	// StatePressed indicates the element is being pressed.
	StatePressed
)

// String returns the lower-case state name used in logs.
func (s InteractionState) String() string {
	switch s {
	case StateNormal:
		return "normal"
	case StateHighlighted:
		return "highlight"
	case StatePressed:
		return "pressed"
	}
	return "unknown"
}

// ResolveInteractionState maps the two interaction flags to a state.
// Pressing wins over highlighting.
func ResolveInteractionState(highlighting, pressing bool) InteractionState {
	if pressing {
		return StatePressed
	}
	if highlighting {
		return StateHighlighted
	}
	return StateNormal
}
