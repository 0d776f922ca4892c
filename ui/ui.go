package ui

import (
	"fmt"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"histpad/binding"
	"histpad/command"
	"histpad/config"
	"histpad/message"
)

type Model struct {
	output chan message.Message

	binder  *binding.Binder
	fields  []*Field
	focused int
	done    bool
}

// New builds the pad program. Fields come from config; only fields carrying
// the history marker are wired to the binder.
func New(config config.Config, output chan message.Message) *tea.Program {
	return tea.NewProgram(newModel(config, output))
}

func newModel(cfg config.Config, output chan message.Message) *Model {
	m := &Model{
		output: output,
		binder: binding.New(binding.NewMapStore(), cfg.Capacity),
	}
	for _, field := range cfg.Fields {
		m.fields = append(m.fields, newField(field))
	}
	return m
}

func (m *Model) Init() tea.Cmd {
	m.fields[m.focused].input.Focus()
	return tea.Batch(textinput.Blink, tea.Println("Alt+Up/Alt+Down browse history, Tab switches fields, <ctrl-d> exits"))
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			m.focusedField().SetValue("")
		case tea.KeyCtrlD:
			return m, m.shutdown()
		case tea.KeyEnter:
			cmds = append(cmds, m.handleEnter())
		case tea.KeyTab:
			m.cycleFocus(1)
		case tea.KeyShiftTab:
			m.cycleFocus(-1)
		case tea.KeyEsc:
			f := m.focusedField()
			if f.withHistory {
				m.binder.Reset(f)
			}
		case tea.KeyUp, tea.KeyDown:
			f := m.focusedField()
			if f.withHistory {
				// The binder drops gestures without the modifier.
				m.binder.OnNavigate(f, gestureFor(msg))
			}
		}
	case message.Print:
		cmds = append(cmds, tea.Println(msg.Obj...))
	}

	f := m.focusedField()
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	if cmd != nil {
		cmds = append(cmds, cmd)
	}

	// Bubbletea does not validate sequence commands, so we must do it ourselves to avoid high CPU usage.
	var validCmds []tea.Cmd //nolint:prealloc
	for _, c := range cmds {
		if c == nil {
			continue
		}
		validCmds = append(validCmds, c)
	}
	switch len(validCmds) {
	case 0:
		return m, nil
	case 1:
		return m, validCmds[0]
	default:
		return m, tea.Sequence(validCmds...)
	}
}

func (m *Model) View() string {
	lines := make([]string, 0, len(m.fields))
	for _, f := range m.fields {
		lines = append(lines, f.input.View())
	}
	return strings.Join(lines, "\n")
}

func (m *Model) focusedField() *Field {
	return m.fields[m.focused]
}

// handleEnter commits the focused field's line, then parses and dispatches
// it as a command.
func (m *Model) handleEnter() tea.Cmd {
	f := m.focusedField()
	cmds := []tea.Cmd{tea.Println(f.input.View())}
	input := f.Value()
	if f.withHistory {
		m.binder.OnCommit(f)
	}
	f.SetValue("")
	cmd, err := command.Parse(input)
	if err != nil {
		return tea.Sequence(append(cmds, tea.Println(err))...)
	}
	if cmd == nil {
		return tea.Sequence(cmds...)
	}
	log.Printf("Command: %+v", cmd)
	switch cmd.(type) {
	case command.History:
		cmds = append(cmds, m.printHistory(f))
	case command.Clear:
		cmds = append(cmds, tea.ClearScreen)
	case command.Quit:
		cmds = append(cmds, m.shutdown())
	default:
		m.output <- message.Command{Cmd: cmd}
	}
	return tea.Sequence(cmds...)
}

// cycleFocus moves focus by delta. The field losing focus commits its
// displayed value.
func (m *Model) cycleFocus(delta int) {
	if len(m.fields) < 2 {
		return
	}
	f := m.focusedField()
	if f.withHistory {
		m.binder.OnCommit(f)
	}
	f.input.Blur()
	m.focused = (m.focused + delta + len(m.fields)) % len(m.fields)
	m.fields[m.focused].input.Focus()
}

func (m *Model) printHistory(f *Field) tea.Cmd {
	entries := m.binder.Entries(f)
	if len(entries) == 0 {
		return tea.Println("No history for field ", f.name)
	}
	var output string
	for i, entry := range entries {
		output += fmt.Sprintf("%3d: %s\n", i+1, entry)
	}
	return tea.Println(strings.TrimSuffix(output, "\n"))
}

// shutdown closes the outgoing channel, which makes the router close its
// side so main can unwind.
func (m *Model) shutdown() tea.Cmd {
	if !m.done {
		m.done = true
		close(m.output)
	}
	return tea.Quit
}
