package mode

import (
	"github.com/dshills/scribe/internal/engine/buffer"
	"github.com/dshills/scribe/internal/input/key"
)

// Prompt is the character that starts every command line.
const Prompt = ':'

// Result describes what the machine did with a key.
type Result struct {
	// Consumed is false when the key has no meaning in the current mode.
	Consumed bool

	// Submitted is true when Enter completed a command line.
	Submitted bool

	// Command is the submitted command line, prompt included.
	Command string
}

// ChangeCallback is called after the mode changes.
type ChangeCallback func(from, to Mode)

// Machine is the modal input state machine.
// It is not safe for concurrent use; the event loop is its only caller.
type Machine struct {
	mode Mode
	body *buffer.Buffer

	// line holds the command being typed. It is only meaningful in
	// Command mode and is cleared on entry and exit.
	line []rune

	callbacks []ChangeCallback
}

// NewMachine creates a machine in Edit mode that edits body.
func NewMachine(body *buffer.Buffer) *Machine {
	if body == nil {
		body = buffer.NewBuffer()
	}
	return &Machine{
		mode: Edit,
		body: body,
		line: make([]rune, 0, 64),
	}
}

// Mode returns the current mode.
func (m *Machine) Mode() Mode {
	return m.mode
}

// Body returns the buffer being edited.
func (m *Machine) Body() *buffer.Buffer {
	return m.body
}

// CommandLine returns the in-progress command text.
func (m *Machine) CommandLine() string {
	return string(m.line)
}

// OnChange registers a callback invoked after every mode transition.
func (m *Machine) OnChange(cb ChangeCallback) {
	m.callbacks = append(m.callbacks, cb)
}

// HandleKey applies one key event to the current mode.
func (m *Machine) HandleKey(ev key.Event) Result {
	switch m.mode {
	case View:
		return m.handleView(ev)
	case Edit:
		return m.handleEdit(ev)
	case Command:
		return m.handleCommand(ev)
	}
	panic(unhandled(m.mode))
}

func (m *Machine) handleView(ev key.Event) Result {
	switch {
	case ev.Is(Prompt):
		m.switchTo(Command)
		m.line = append(m.line[:0], Prompt)
	case ev.Is('i'):
		m.switchTo(Edit)
	default:
		return Result{}
	}
	return Result{Consumed: true}
}

func (m *Machine) handleEdit(ev key.Event) Result {
	switch ev.Key {
	case key.KeyEnter:
		m.body.AppendNewline()
	case key.KeyEscape:
		m.switchTo(View)
	case key.KeyTab:
		m.body.AppendTab()
	case key.KeyBackspace:
		m.body.RemoveLast()
	default:
		if !ev.IsPrintable() {
			return Result{}
		}
		m.body.AppendChar(ev.Rune)
	}
	return Result{Consumed: true}
}

func (m *Machine) handleCommand(ev key.Event) Result {
	switch ev.Key {
	case key.KeyEnter:
		line := string(m.line)
		m.line = m.line[:0]
		return Result{Consumed: true, Submitted: true, Command: line}
	case key.KeyEscape:
		m.line = m.line[:0]
		m.switchTo(View)
	case key.KeyBackspace:
		if len(m.line) > 0 {
			m.line = m.line[:len(m.line)-1]
		}
	default:
		if !ev.IsPrintable() {
			return Result{}
		}
		m.line = append(m.line, ev.Rune)
	}
	return Result{Consumed: true}
}

func (m *Machine) switchTo(to Mode) {
	from := m.mode
	if from == Command || to == Command {
		m.line = m.line[:0]
	}
	m.mode = to
	for _, cb := range m.callbacks {
		cb(from, to)
	}
}
