package vanilla

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

const (
	fieldTemplate    = "templates/field.tmpl"
	inputTemplate    = "templates/input.tmpl"
	textareaTemplate = "templates/textarea.tmpl"
	errorsTemplate   = "templates/errors.tmpl"
)

// TemplatesFS exposes the embedded template bundle so callers can copy or
// extend the default markup.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
