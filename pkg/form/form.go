// Package form is a small owning form for text fields: it keeps the values,
// hands every field props bound to its own state, and pushes new props back
// after each change. It exists so the CLI and renderer sessions have a real
// source of truth to drive fields against.
package form

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/goliatone/go-formfield/pkg/field"
)

// Definition describes one field of a form.
type Definition struct {
	ID          string
	Mode        field.Mode
	Name        string
	Label       string
	Placeholder string
	Value       string
	Validate    field.Validator
}

// ChangeListener observes accepted changes.
type ChangeListener func(name, value string)

// Option configures a Form.
type Option func(*Form)

// WithChangeListener registers a listener called after each stored change.
func WithChangeListener(fn ChangeListener) Option {
	return func(f *Form) {
		if fn != nil {
			f.listeners = append(f.listeners, fn)
		}
	}
}

// WithValues prefills values by field name, overriding definition defaults.
func WithValues(values map[string]string) Option {
	return func(f *Form) {
		for name, value := range values {
			f.prefill[name] = value
		}
	}
}

// Form owns the values of its fields.
type Form struct {
	mu        sync.RWMutex
	defs      []Definition
	values    map[string]string
	prefill   map[string]string
	fields    map[string]*field.Field
	listeners []ChangeListener
}

// New mounts one field per definition. Names must be unique and non-empty.
func New(defs []Definition, options ...Option) (*Form, error) {
	f := &Form{
		values:  make(map[string]string, len(defs)),
		prefill: make(map[string]string),
		fields:  make(map[string]*field.Field, len(defs)),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(f)
	}

	for _, def := range defs {
		name := strings.TrimSpace(def.Name)
		if name == "" {
			return nil, errors.New("form: field name is required")
		}
		if _, exists := f.fields[name]; exists {
			return nil, fmt.Errorf("form: duplicate field %q", name)
		}
		def.Name = name
		if def.ID == "" {
			def.ID = name
		}
		value := def.Value
		if prefilled, ok := f.prefill[name]; ok {
			value = prefilled
		}
		f.values[name] = value
		f.defs = append(f.defs, def)
		f.fields[name] = field.New(f.props(def, value))
	}
	return f, nil
}

// Set stores value for name and re-renders the matching field with it. Its
// signature matches field.ChangeHandler.
func (f *Form) Set(value, name string) {
	f.mu.Lock()
	fld, ok := f.fields[name]
	if !ok {
		f.mu.Unlock()
		return
	}
	f.values[name] = value
	def := f.definition(name)
	listeners := append([]ChangeListener(nil), f.listeners...)
	f.mu.Unlock()

	fld.SetProps(f.props(def, value))
	for _, listener := range listeners {
		listener(name, value)
	}
}

// Get returns the stored value for name.
func (f *Form) Get(name string) string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.values[name]
}

// Values returns a copy of all stored values.
func (f *Form) Values() map[string]string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make(map[string]string, len(f.values))
	for k, v := range f.values {
		out[k] = v
	}
	return out
}

// Field returns the mounted field for name.
func (f *Form) Field(name string) (*field.Field, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	fld, ok := f.fields[name]
	return fld, ok
}

// Fields returns the mounted fields in definition order.
func (f *Form) Fields() []*field.Field {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]*field.Field, 0, len(f.defs))
	for _, def := range f.defs {
		out = append(out, f.fields[def.Name])
	}
	return out
}

// Views renders every field in definition order.
func (f *Form) Views() []field.View {
	fields := f.Fields()
	out := make([]field.View, 0, len(fields))
	for _, fld := range fields {
		out = append(out, fld.Render())
	}
	return out
}

// Errors validates every stored value regardless of touched state, keyed by
// field name. Fields without errors are omitted.
// Validators run without the lock held, so they may read the form.
func (f *Form) Errors() map[string][]string {
	f.mu.RLock()
	defs := append([]Definition(nil), f.defs...)
	values := make(map[string]string, len(f.values))
	for k, v := range f.values {
		values[k] = v
	}
	f.mu.RUnlock()

	out := make(map[string][]string)
	for _, def := range defs {
		if def.Validate == nil {
			continue
		}
		if msgs := def.Validate(values[def.Name]); len(msgs) > 0 {
			out[def.Name] = append([]string(nil), msgs...)
		}
	}
	return out
}

// Valid reports whether every stored value passes validation.
func (f *Form) Valid() bool {
	return len(f.Errors()) == 0
}

func (f *Form) definition(name string) Definition {
	for _, def := range f.defs {
		if def.Name == name {
			return def
		}
	}
	return Definition{}
}

func (f *Form) props(def Definition, value string) field.Props {
	return field.Props{
		ID:          def.ID,
		Mode:        def.Mode,
		Name:        def.Name,
		Label:       def.Label,
		Placeholder: def.Placeholder,
		Value:       value,
		OnChange:    f.Set,
		Validate:    def.Validate,
	}
}
