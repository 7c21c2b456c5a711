package uischema

import (
	"github.com/goliatone/go-formfield/pkg/validation"
)

// Store holds every form found while loading.
type Store struct {
	forms map[string]Form
}

// Form groups the fields of one form document entry.
type Form struct {
	ID     string
	Source string
	Title  string
	Fields []FieldConfig
}

// FieldConfig is a single field as written in a schema file. Empty strings
// mean "not set" when the config is used as an overlay.
type FieldConfig struct {
	ID          string            `json:"id" yaml:"id"`
	Mode        string            `json:"mode" yaml:"mode"`
	Name        string            `json:"name" yaml:"name"`
	Label       string            `json:"label" yaml:"label"`
	Placeholder string            `json:"placeholder" yaml:"placeholder"`
	Value       string            `json:"value" yaml:"value"`
	Validations []validation.Rule `json:"validations" yaml:"validations"`
}

type documentFile struct {
	Forms map[string]formFile `json:"forms" yaml:"forms"`
}

type formFile struct {
	Title  string        `json:"title" yaml:"title"`
	Fields []FieldConfig `json:"fields" yaml:"fields"`
}
