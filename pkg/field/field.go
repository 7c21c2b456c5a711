package field

// Field is a mounted text input. It is not safe for concurrent use; edits are
// expected one at a time in delivery order.
type Field struct {
	props   Props
	touched bool
}

// New mounts a field in the Untouched state.
func New(props Props) *Field {
	return &Field{props: props}
}

// Props returns the props of the latest render.
func (f *Field) Props() Props {
	return f.props
}

// SetProps replaces the props, typically after the owning form stored a new
// value. The touched flag is kept.
func (f *Field) SetProps(props Props) {
	f.props = props
}

// Touched reports whether the field received at least one edit.
func (f *Field) Touched() bool {
	return f.touched
}

// State reports the interaction state.
func (f *Field) State() State {
	if f.touched {
		return Touched
	}
	return Untouched
}

// Render validates the current value and projects props and state into a
// View. Validate is called on every render, touched or not.
func (f *Field) Render() View {
	errs := f.validate()

	return View{
		ID:          f.props.ID,
		Mode:        f.props.Mode.orDefault(),
		Role:        RoleTextbox,
		Name:        f.props.Name,
		Label:       labelText(f.props.Label),
		LabelFor:    f.props.ID,
		Placeholder: f.props.Placeholder,
		Value:       f.props.Value,
		Touched:     f.touched,
		Errors:      errs,
	}
}

// Handle applies edit to the current value, forwards the result through
// OnChange exactly once and marks the field touched. Edits with no effect,
// such as Backspace at the start of the value, are dropped: no OnChange and
// no touch. The field's own value is left alone; the returned string is the
// value after the edit.
func (f *Field) Handle(edit Edit) string {
	if edit == nil {
		return f.props.Value
	}
	next, changed := edit.Apply(f.props.Value, f.props.Mode.orDefault())
	if !changed {
		return next
	}
	if f.props.OnChange != nil {
		f.props.OnChange(next, f.props.Name)
	}
	f.touched = true
	return next
}

// Type simulates keyboard input: one Insert at the end of the value per rune.
// A "\n" rune becomes a Newline edit.
func (f *Field) Type(text string) {
	for _, r := range text {
		if r == '\n' {
			f.Handle(Newline{At: End})
			continue
		}
		f.Handle(Insert{Text: string(r), At: End})
	}
}

func (f *Field) validate() []string {
	if f.props.Validate == nil {
		return nil
	}
	out := f.props.Validate(f.props.Value)
	if len(out) == 0 {
		return nil
	}
	return append([]string(nil), out...)
}
