package openapi

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formfield/pkg/field"
	"github.com/goliatone/go-formfield/pkg/form"
	"github.com/goliatone/go-formfield/pkg/validation"
)

const (
	extensionNamespace = "x-formgen"
	textareaFormat     = "textarea"
	// Strings allowed to grow past this render as multi-line.
	multiLineThreshold = 255
)

// Definitions derives one definition per string property of the operation's
// request body. Read-only properties are skipped. Fields are ordered by
// x-formgen.order, then by name.
func (s *Spec) Definitions(operationID string) ([]form.Definition, error) {
	schema, err := s.requestSchema(operationID)
	if err != nil {
		return nil, err
	}

	required := make(map[string]bool, len(schema.Required))
	for _, name := range schema.Required {
		required[name] = true
	}

	type entry struct {
		order int
		def   form.Definition
	}
	var entries []entry
	for name, ref := range schema.Properties {
		if ref == nil || ref.Value == nil {
			continue
		}
		prop := ref.Value
		if !isString(prop) || prop.ReadOnly {
			continue
		}
		hints := extension(prop.Extensions)
		def, err := definition(name, prop, hints, required[name])
		if err != nil {
			return nil, fmt.Errorf("openapi: operation %q property %q: %w", operationID, name, err)
		}
		entries = append(entries, entry{order: intHint(hints, "order"), def: def})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].order != entries[j].order {
			return entries[i].order < entries[j].order
		}
		return entries[i].def.Name < entries[j].def.Name
	})
	out := make([]form.Definition, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.def)
	}
	return out, nil
}

func definition(name string, prop *openapi3.Schema, hints map[string]any, required bool) (form.Definition, error) {
	label := strings.TrimSpace(prop.Title)
	if label == "" {
		label = name
	}

	def := form.Definition{
		ID:          stringHint(hints, "id"),
		Mode:        fieldMode(prop, hints),
		Name:        name,
		Label:       label,
		Placeholder: placeholder(prop, hints),
	}
	if value, ok := prop.Default.(string); ok {
		def.Value = value
	}

	validate, err := validation.Build(rules(prop, label, messageHints(hints), required))
	if err != nil {
		return form.Definition{}, err
	}
	def.Validate = validate
	return def, nil
}

func fieldMode(prop *openapi3.Schema, hints map[string]any) field.Mode {
	if widget := stringHint(hints, "widget"); widget != "" {
		if mode, err := field.ParseMode(widget); err == nil {
			return mode
		}
	}
	if strings.EqualFold(prop.Format, textareaFormat) {
		return field.ModeMultiLine
	}
	if prop.MaxLength != nil && *prop.MaxLength > multiLineThreshold {
		return field.ModeMultiLine
	}
	return field.ModeSingleLine
}

func placeholder(prop *openapi3.Schema, hints map[string]any) string {
	if value := stringHint(hints, "placeholder"); value != "" {
		return value
	}
	if prop.Example != nil {
		return fmt.Sprint(prop.Example)
	}
	return ""
}

func rules(prop *openapi3.Schema, label string, messages map[string]string, required bool) []validation.Rule {
	var out []validation.Rule
	if required {
		out = append(out, validation.Rule{
			Kind:    validation.KindRequired,
			Message: withDefault(messages[validation.KindRequired], label+" is required"),
		})
	}
	if prop.MinLength > 0 {
		out = append(out, validation.Rule{
			Kind:    validation.KindMinLength,
			Value:   strconv.FormatUint(prop.MinLength, 10),
			Message: messages[validation.KindMinLength],
		})
	}
	if prop.MaxLength != nil {
		out = append(out, validation.Rule{
			Kind:    validation.KindMaxLength,
			Value:   strconv.FormatUint(*prop.MaxLength, 10),
			Message: messages[validation.KindMaxLength],
		})
	}
	if prop.Pattern != "" {
		out = append(out, validation.Rule{
			Kind:    validation.KindPattern,
			Value:   prop.Pattern,
			Message: messages[validation.KindPattern],
		})
	}
	return out
}

func isString(prop *openapi3.Schema) bool {
	if prop.Type == nil {
		return false
	}
	for _, t := range prop.Type.Slice() {
		if t == openapi3.TypeString {
			return true
		}
	}
	return false
}

func extension(raw map[string]any) map[string]any {
	if len(raw) == 0 {
		return nil
	}
	mapped, _ := raw[extensionNamespace].(map[string]any)
	return mapped
}

func stringHint(hints map[string]any, key string) string {
	value, _ := hints[key].(string)
	return strings.TrimSpace(value)
}

func intHint(hints map[string]any, key string) int {
	switch value := hints[key].(type) {
	case float64:
		return int(value)
	case int:
		return value
	case string:
		n, _ := strconv.Atoi(value)
		return n
	}
	return 0
}

func messageHints(hints map[string]any) map[string]string {
	raw, _ := hints["messages"].(map[string]any)
	out := make(map[string]string, len(raw))
	for key, value := range raw {
		if text, ok := value.(string); ok {
			out[key] = text
		}
	}
	return out
}

func withDefault(value, fallback string) string {
	if strings.TrimSpace(value) != "" {
		return value
	}
	return fallback
}
