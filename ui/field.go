package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"histpad/config"
)

var promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))

// Field is one input line of the pad. It implements binding.Element; the
// binder only ever sees the displayed value.
type Field struct {
	name        string
	withHistory bool
	input       textinput.Model
}

func newField(cfg config.Field) *Field {
	input := textinput.New()
	input.Prompt = promptStyle.Render(cfg.Prompt)
	return &Field{
		name:        cfg.Name,
		withHistory: cfg.History,
		input:       input,
	}
}

func (f *Field) Value() string {
	return f.input.Value()
}

// SetValue replaces the displayed value and parks the cursor at the end.
func (f *Field) SetValue(value string) {
	f.input.SetValue(value)
	f.input.SetCursor(999)
}
