package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"histpad/binding"
)

// gestureFor distills a key event into the binder's gesture value. Only
// Alt+Up and Alt+Down qualify as history navigation; anything else comes out
// with the modifier unset or no direction and is dropped by the binder.
func gestureFor(msg tea.KeyMsg) binding.Gesture {
	g := binding.Gesture{ModifierHeld: msg.Alt}
	switch msg.Type {
	case tea.KeyUp:
		g.Direction = binding.Older
	case tea.KeyDown:
		g.Direction = binding.Newer
	}
	return g
}
