package components

import "testing"

// TestInteractionStateValues tests that InteractionState constants are defined correctly.
func TestInteractionStateValues(t *testing.T) {
	tests := []struct {
		name  string
		state InteractionState
		value int
		str   string
	}{
		{"StateNormal should be 0", StateNormal, 0, "normal"},
		{"StateHighlighted should be 1", StateHighlighted, 1, "highlight"},
		{"StatePressed should be 2", StatePressed, 2, "pressed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if int(tt.state) != tt.value {
				t.Errorf("Expected %s to be %d, got %d", tt.name, tt.value, int(tt.state))
			}
			if tt.state.String() != tt.str {
				t.Errorf("String() = %q, want %q", tt.state.String(), tt.str)
			}
		})
	}
}

// TestResolveInteractionState tests the flag -> state mapping.
func TestResolveInteractionState(t *testing.T) {
	tests := []struct {
		highlighting, pressing bool
		want                   InteractionState
	}{
		{false, false, StateNormal},
		{true, false, StateHighlighted},
		{false, true, StatePressed},
		{true, true, StatePressed},
	}

	for _, tt := range tests {
		if got := ResolveInteractionState(tt.highlighting, tt.pressing); got != tt.want {
			t.Errorf("ResolveInteractionState(%v, %v) = %v, want %v", tt.highlighting, tt.pressing, got, tt.want)
		}
	}
}
