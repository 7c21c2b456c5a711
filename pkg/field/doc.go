// Package field implements a controlled text-entry form field that supports a
// single-line and a multi-line input mode.
//
// A Field never owns its value. The owning form passes the current value and
// a validator through Props, receives every edit through the OnChange
// callback, and pushes a new value back with SetProps. The only state a Field
// keeps is whether the user has edited it yet: validation runs on every
// Render, but the resulting messages are only marked visible once the field
// has been touched.
//
//	f := field.New(field.Props{
//		ID:       "speciesName",
//		Mode:     field.ModeSingleLine,
//		Name:     "speciesName",
//		Label:    "Species Name",
//		Value:    form.Get("speciesName"),
//		OnChange: form.Set,
//		Validate: validation.Required("Species name is required"),
//	})
//	f.Type("Humans")
//	view := f.Render()
//
// Renderers under pkg/renderers turn a View into HTML, line prompts, or an
// interactive terminal editor.
package field
