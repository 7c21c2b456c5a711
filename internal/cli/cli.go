// Package cli provides the command-line interface for formfield.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/rs/zerolog"

	formfield "github.com/goliatone/go-formfield"
	"github.com/goliatone/go-formfield/pkg/openapi"
	"github.com/goliatone/go-formfield/pkg/uischema"
)

type CommandLineOpts struct {
	RenderCommand RenderCommand `command:"render" description:"render or interactively edit the fields of a form"`
	ListCommand   ListCommand   `command:"list" description:"list forms and operations"`
}

var Opts CommandLineOpts

// SourceFlags are shared by every command that needs field definitions.
type SourceFlags struct {
	Config    string `short:"c" long:"config" description:"directory holding JSON/YAML field definitions; the bundled sample is used if omitted" value-name:"<DIR>"`
	Form      string `short:"f" long:"form" description:"form id inside the config" value-name:"<ID>"`
	OpenAPI   string `long:"openapi" description:"OpenAPI document whose request body provides the fields" value-name:"<FILE>"`
	Operation string `long:"operation" description:"operation id inside the OpenAPI document" value-name:"<ID>"`
	Verbose   bool   `short:"v" long:"verbose" description:"log debug output"`
}

func (s SourceFlags) schemaFS() (fs.FS, error) {
	if strings.TrimSpace(s.Config) == "" {
		return uischema.EmbeddedFS(), nil
	}
	info, err := os.Stat(s.Config)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("config: %s is not a directory", s.Config)
	}
	return os.DirFS(s.Config), nil
}

func (s SourceFlags) document(ctx context.Context) (*openapi.Document, error) {
	if strings.TrimSpace(s.OpenAPI) == "" {
		return nil, nil
	}
	doc, err := openapi.LoadFile(ctx, s.OpenAPI)
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// source resolves the flags into a formfield.Source. Without --form the
// operation id doubles as the overlay form id, and a config holding a single
// form selects it.
func (s SourceFlags) source(ctx context.Context) (formfield.Source, error) {
	fsys, err := s.schemaFS()
	if err != nil {
		return formfield.Source{}, err
	}
	doc, err := s.document(ctx)
	if err != nil {
		return formfield.Source{}, err
	}

	formID := strings.TrimSpace(s.Form)
	if formID == "" && doc != nil {
		formID = s.Operation
	}
	if formID == "" && doc == nil {
		store, err := uischema.LoadFS(fsys)
		if err != nil {
			return formfield.Source{}, err
		}
		ids := store.IDs()
		if len(ids) != 1 {
			return formfield.Source{}, errors.New("--form is required when the config holds several forms")
		}
		formID = ids[0]
	}

	return formfield.Source{
		SchemaFS:    fsys,
		FormID:      formID,
		OpenAPI:     doc,
		OperationID: s.Operation,
	}, nil
}

func (s SourceFlags) logger(base zerolog.Logger) zerolog.Logger {
	if s.Verbose {
		return base.Level(zerolog.DebugLevel)
	}
	return base.Level(zerolog.InfoLevel)
}
