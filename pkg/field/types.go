package field

import (
	"errors"
	"fmt"
	"strings"
)

// Mode selects the input widget a field renders.
type Mode string

const (
	// ModeSingleLine renders a one-line text box.
	ModeSingleLine Mode = "single-line"
	// ModeMultiLine renders a multi-line text area.
	ModeMultiLine Mode = "multi-line"
)

// RoleTextbox is the accessible role shared by both input modes.
const RoleTextbox = "textbox"

// ErrUnsupportedMode is returned by ParseMode for unknown mode identifiers.
var ErrUnsupportedMode = errors.New("field: unsupported mode")

// ParseMode resolves a mode identifier. Besides the canonical names it accepts
// the widget aliases used by HTML ("text", "input", "textarea").
func ParseMode(raw string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", string(ModeSingleLine), "text", "input", "single":
		return ModeSingleLine, nil
	case string(ModeMultiLine), "textarea", "multi", "multiline":
		return ModeMultiLine, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedMode, raw)
	}
}

// Valid reports whether m is one of the supported modes.
func (m Mode) Valid() bool {
	return m == ModeSingleLine || m == ModeMultiLine
}

// Multiline reports whether m renders a multi-line text area.
func (m Mode) Multiline() bool {
	return m == ModeMultiLine
}

// orDefault maps unknown modes onto ModeSingleLine.
func (m Mode) orDefault() Mode {
	if m.Valid() {
		return m
	}
	return ModeSingleLine
}

// ChangeHandler receives the value an edit produced together with the field
// name so one handler can serve every field of a form.
type ChangeHandler func(value, name string)

// Validator returns the human-readable error messages for value. An empty
// result means the value is valid.
type Validator func(value string) []string

// Props are supplied by the owning form on every render.
type Props struct {
	ID          string
	Mode        Mode
	Name        string
	Label       string
	Placeholder string
	Value       string
	OnChange    ChangeHandler
	Validate    Validator
}

// State is the interaction state of a mounted field.
type State int

const (
	// Untouched is the initial state; validation messages are hidden.
	Untouched State = iota
	// Touched is entered on the first edit and kept until the field is
	// dropped.
	Touched
)

func (s State) String() string {
	switch s {
	case Untouched:
		return "untouched"
	case Touched:
		return "touched"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// View is the outcome of a single render. Renderers consume it without ever
// calling back into the Field.
type View struct {
	ID          string   `json:"id"`
	Mode        Mode     `json:"mode"`
	Role        string   `json:"role"`
	Name        string   `json:"name"`
	Label       string   `json:"label,omitempty"`
	LabelFor    string   `json:"labelFor,omitempty"`
	Placeholder string   `json:"placeholder,omitempty"`
	Value       string   `json:"value"`
	Touched     bool     `json:"touched"`
	Errors      []string `json:"errors,omitempty"`
}

// VisibleErrors returns the messages that should reach the user: all of them
// once the field is touched, none before.
func (v View) VisibleErrors() []string {
	if !v.Touched {
		return nil
	}
	return v.Errors
}

// Invalid reports whether visible errors exist.
func (v View) Invalid() bool {
	return len(v.VisibleErrors()) > 0
}

// Multiline reports whether the view renders as a text area.
func (v View) Multiline() bool {
	return v.Mode.Multiline()
}

func labelText(label string) string {
	if strings.TrimSpace(label) == "" {
		return ""
	}
	return label + ":"
}
