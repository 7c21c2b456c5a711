// Package formfield wires the field, form and renderer packages together:
// it loads definitions from schema files and OpenAPI documents, mounts them in
// a form and renders every field with a named renderer.
package formfield

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-formfield/pkg/form"
	"github.com/goliatone/go-formfield/pkg/openapi"
	"github.com/goliatone/go-formfield/pkg/render"
	"github.com/goliatone/go-formfield/pkg/renderers/tui"
	"github.com/goliatone/go-formfield/pkg/renderers/vanilla"
	"github.com/goliatone/go-formfield/pkg/uischema"
)

// RenderOptions aliases render.RenderOptions for callers that only import the
// root package.
type RenderOptions = render.RenderOptions

// Source says where field definitions come from. With an OpenAPI document
// the operation's request body provides the fields and the schema form, if
// any, is overlaid on top. Without one the schema form alone is used.
type Source struct {
	SchemaFS    fs.FS
	FormID      string
	OpenAPI     *openapi.Document
	OperationID string
}

// LoadDefinitions resolves src into form definitions.
func LoadDefinitions(ctx context.Context, src Source) ([]form.Definition, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	store, err := uischema.LoadFS(src.SchemaFS)
	if err != nil {
		return nil, err
	}
	schemaForm, hasForm := store.Form(src.FormID)
	if src.FormID != "" && !hasForm && src.OpenAPI == nil {
		return nil, fmt.Errorf("formfield: form %q not found", src.FormID)
	}

	if src.OpenAPI == nil {
		if !hasForm {
			return nil, errors.New("formfield: a form id or an OpenAPI document is required")
		}
		return schemaForm.Definitions()
	}

	if src.OperationID == "" {
		return nil, errors.New("formfield: operation id is required with an OpenAPI document")
	}
	spec, err := openapi.Parse(ctx, *src.OpenAPI)
	if err != nil {
		return nil, err
	}
	defs, err := spec.Definitions(src.OperationID)
	if err != nil {
		return nil, err
	}
	if hasForm {
		return schemaForm.Overlay(defs)
	}
	return defs, nil
}

// NewRegistry returns a registry holding the HTML renderer (under "vanilla")
// and the plain-text prompt renderer (under "tui").
func NewRegistry(logger zerolog.Logger) (*render.Registry, error) {
	html, err := vanilla.New(vanilla.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	text, err := tui.New(tui.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	registry := render.NewRegistry()
	if err := registry.Register(html); err != nil {
		return nil, err
	}
	if err := registry.Register(text); err != nil {
		return nil, err
	}
	return registry, nil
}

// RenderForm renders every field of f in definition order and joins the
// output.
func RenderForm(ctx context.Context, renderer render.Renderer, f *form.Form, opts RenderOptions) ([]byte, error) {
	if renderer == nil {
		return nil, errors.New("formfield: renderer is required")
	}
	if f == nil {
		return nil, errors.New("formfield: form is required")
	}
	var buf bytes.Buffer
	for _, view := range f.Views() {
		out, err := renderer.Render(ctx, view, opts)
		if err != nil {
			return nil, fmt.Errorf("formfield: render %q: %w", view.Name, err)
		}
		buf.Write(out)
	}
	return buf.Bytes(), nil
}
