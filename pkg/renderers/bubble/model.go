// Package bubble exposes a field as a Bubble Tea model. Unlike the bubbles
// textinput component the model keeps no value of its own: each key message
// becomes one field edit and the next View reads whatever props the owning
// form pushed back.
package bubble

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/goliatone/go-formfield/pkg/field"
	"github.com/goliatone/go-formfield/pkg/render"
)

// ErrAborted is returned by Run when the user cancels.
var ErrAborted = errors.New("bubble: aborted")

// Styles used by View.
type Styles struct {
	Label       lipgloss.Style
	Value       lipgloss.Style
	Placeholder lipgloss.Style
	Cursor      lipgloss.Style
	Error       lipgloss.Style
	Status      lipgloss.Style
}

// DefaultStyles returns the built-in palette.
func DefaultStyles() Styles {
	return Styles{
		Label:       lipgloss.NewStyle().Bold(true),
		Value:       lipgloss.NewStyle(),
		Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Cursor:      lipgloss.NewStyle().Reverse(true),
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Status:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
	}
}

// Option configures a Model.
type Option func(*Model)

// WithKeyMap overrides the key bindings.
func WithKeyMap(keys KeyMap) Option {
	return func(m *Model) {
		m.keys = keys
	}
}

// WithStyles overrides the palette.
func WithStyles(styles Styles) Option {
	return func(m *Model) {
		m.styles = styles
	}
}

// WithLogger attaches a logger; the default discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(m *Model) {
		m.logger = logger
	}
}

// Model drives one field.
type Model struct {
	field  *field.Field
	keys   KeyMap
	styles Styles
	help   help.Model
	logger zerolog.Logger

	cursor    int
	status    string
	submitted bool
	aborted   bool
}

var _ tea.Model = Model{}

// New builds a model for f with the cursor at the end of its value.
func New(f *field.Field, options ...Option) Model {
	m := Model{
		field:  f,
		keys:   DefaultKeyMap(),
		styles: DefaultStyles(),
		help:   help.New(),
		logger: zerolog.Nop(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(&m)
		}
	}
	if f != nil {
		m.cursor = len([]rune(f.Props().Value))
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Submitted reports whether the user submitted a valid value.
func (m Model) Submitted() bool {
	return m.submitted
}

// Aborted reports whether the user cancelled.
func (m Model) Aborted() bool {
	return m.aborted
}

// Value returns the field's current value.
func (m Model) Value() string {
	if m.field == nil {
		return ""
	}
	return m.field.Props().Value
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.field == nil {
		return m, nil
	}
	m.status = ""
	view := m.field.Render()

	switch {
	case key.Matches(keyMsg, m.keys.Abort):
		m.aborted = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Submit):
		return m.submit(view)
	case key.Matches(keyMsg, m.keys.Enter):
		if !view.Multiline() {
			return m.submit(view)
		}
		m.field.Handle(field.Newline{At: m.cursor})
		m.cursor++
	case key.Matches(keyMsg, m.keys.Backspace):
		m.field.Handle(field.DeleteBackward{At: m.cursor})
		m.cursor--
	case key.Matches(keyMsg, m.keys.Left):
		m.cursor--
	case key.Matches(keyMsg, m.keys.Right):
		m.cursor++
	case key.Matches(keyMsg, m.keys.Home):
		m.cursor = 0
	case key.Matches(keyMsg, m.keys.End):
		m.cursor = len([]rune(view.Value))
	case keyMsg.Type == tea.KeyRunes || keyMsg.Type == tea.KeySpace:
		m.typeRunes(keyMsg)
	default:
		return m, nil
	}

	m.cursor = clamp(m.cursor, len([]rune(m.field.Props().Value)))
	m.logger.Debug().Str("field", view.Name).Str("key", keyMsg.String()).Int("cursor", m.cursor).Msg("key message")
	return m, nil
}

// typeRunes turns typed runes into edits. A paste arrives as one message and
// becomes one edit.
func (m *Model) typeRunes(msg tea.KeyMsg) {
	runes := msg.Runes
	if msg.Type == tea.KeySpace && len(runes) == 0 {
		runes = []rune{' '}
	}
	if msg.Paste {
		m.field.Handle(field.Insert{Text: string(runes), At: m.cursor})
		m.cursor += len(runes)
		return
	}
	for _, r := range runes {
		m.field.Handle(field.Insert{Text: string(r), At: m.cursor})
		m.cursor++
	}
}

func (m Model) submit(view field.View) (tea.Model, tea.Cmd) {
	if len(view.Errors) > 0 {
		m.status = fmt.Sprintf("cannot submit: %d error(s)", len(view.Errors))
		return m, nil
	}
	m.submitted = true
	return m, tea.Quit
}

// View implements tea.Model.
func (m Model) View() string {
	if m.field == nil {
		return ""
	}
	view := m.field.Render()

	var b strings.Builder
	label := view.Label
	if label == "" {
		label = view.Name + ":"
	}
	b.WriteString(m.styles.Label.Render(label))
	b.WriteByte('\n')

	if view.Value == "" && view.Placeholder != "" {
		b.WriteString(m.styles.Cursor.Render(" "))
		b.WriteString(m.styles.Placeholder.Render(view.Placeholder))
	} else {
		b.WriteString(m.renderValue(view.Value))
	}
	b.WriteByte('\n')

	for _, msg := range render.NormalizeMessages(view.VisibleErrors()) {
		b.WriteString(m.styles.Error.Render("‣ " + msg))
		b.WriteByte('\n')
	}
	if m.status != "" {
		b.WriteString(m.styles.Status.Render(m.status))
		b.WriteByte('\n')
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) renderValue(value string) string {
	runes := []rune(value)
	cursor := clamp(m.cursor, len(runes))
	before := string(runes[:cursor])
	under := " "
	after := ""
	if cursor < len(runes) && runes[cursor] != '\n' {
		under = string(runes[cursor])
		after = string(runes[cursor+1:])
	} else if cursor < len(runes) {
		after = string(runes[cursor:])
	}
	return m.styles.Value.Render(before) + m.styles.Cursor.Render(under) + m.styles.Value.Render(after)
}

// Run edits f in a Bubble Tea program reading from in and drawing to out. It
// returns the submitted value, ErrAborted, or the context error.
func Run(ctx context.Context, f *field.Field, in io.Reader, out io.Writer, options ...Option) (string, error) {
	if f == nil {
		return "", errors.New("bubble: field is nil")
	}
	program := tea.NewProgram(New(f, options...),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)
	final, err := program.Run()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		return "", fmt.Errorf("bubble: run: %w", err)
	}
	model, ok := final.(Model)
	if !ok {
		return "", fmt.Errorf("bubble: unexpected model %T", final)
	}
	if model.Aborted() {
		return "", ErrAborted
	}
	return model.Value(), nil
}

func clamp(cursor, n int) int {
	if cursor < 0 {
		return 0
	}
	if cursor > n {
		return n
	}
	return cursor
}
