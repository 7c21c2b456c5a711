package uischema

import (
	"fmt"

	"github.com/goliatone/go-formfield/pkg/field"
	"github.com/goliatone/go-formfield/pkg/form"
	"github.com/goliatone/go-formfield/pkg/validation"
)

// Definition compiles the config into a form definition.
func (c FieldConfig) Definition() (form.Definition, error) {
	mode, err := field.ParseMode(c.Mode)
	if err != nil {
		return form.Definition{}, fmt.Errorf("uischema: field %q: %w", c.Name, err)
	}
	validate, err := validation.Build(c.Validations)
	if err != nil {
		return form.Definition{}, fmt.Errorf("uischema: field %q: %w", c.Name, err)
	}
	return form.Definition{
		ID:          c.ID,
		Mode:        mode,
		Name:        c.Name,
		Label:       c.Label,
		Placeholder: c.Placeholder,
		Value:       c.Value,
		Validate:    validate,
	}, nil
}

// Definitions compiles every field of the form in file order.
func (f Form) Definitions() ([]form.Definition, error) {
	out := make([]form.Definition, 0, len(f.Fields))
	for _, cfg := range f.Fields {
		def, err := cfg.Definition()
		if err != nil {
			return nil, fmt.Errorf("uischema: form %q: %w", f.ID, err)
		}
		out = append(out, def)
	}
	return out, nil
}

// Overlay applies the form's field configs to definitions derived elsewhere,
// matching by name. Non-empty config values replace the derived ones and
// validations, when present, replace the derived validator. Fields only
// present in the config are appended.
func (f Form) Overlay(defs []form.Definition) ([]form.Definition, error) {
	index := make(map[string]int, len(defs))
	out := make([]form.Definition, len(defs))
	copy(out, defs)
	for i, def := range out {
		index[def.Name] = i
	}

	for _, cfg := range f.Fields {
		pos, ok := index[cfg.Name]
		if !ok {
			def, err := cfg.Definition()
			if err != nil {
				return nil, err
			}
			out = append(out, def)
			continue
		}
		def := out[pos]
		if cfg.ID != "" {
			def.ID = cfg.ID
		}
		if cfg.Mode != "" {
			mode, err := field.ParseMode(cfg.Mode)
			if err != nil {
				return nil, fmt.Errorf("uischema: field %q: %w", cfg.Name, err)
			}
			def.Mode = mode
		}
		if cfg.Label != "" {
			def.Label = cfg.Label
		}
		if cfg.Placeholder != "" {
			def.Placeholder = cfg.Placeholder
		}
		if cfg.Value != "" {
			def.Value = cfg.Value
		}
		if len(cfg.Validations) > 0 {
			validate, err := validation.Build(cfg.Validations)
			if err != nil {
				return nil, fmt.Errorf("uischema: field %q: %w", cfg.Name, err)
			}
			def.Validate = validate
		}
		out[pos] = def
	}
	return out, nil
}
