package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/goliatone/go-formfield/pkg/openapi"
	"github.com/goliatone/go-formfield/pkg/uischema"
)

// Flags for the `list` command.
type ListCommand struct {
	SourceFlags

	out io.Writer
}

// Execute prints the form ids of the config and, with --openapi, the
// operation ids of the document.
func (command *ListCommand) Execute(args []string) error {
	return command.run(context.Background())
}

func (command *ListCommand) run(ctx context.Context) error {
	out := command.out
	if out == nil {
		out = os.Stdout
	}

	fsys, err := command.schemaFS()
	if err != nil {
		return err
	}
	store, err := uischema.LoadFS(fsys)
	if err != nil {
		return err
	}
	for _, id := range store.IDs() {
		form, _ := store.Form(id)
		fmt.Fprintf(out, "form\t%s\t%d field(s)\t%s\n", id, len(form.Fields), form.Source)
	}

	doc, err := command.document(ctx)
	if err != nil || doc == nil {
		return err
	}
	spec, err := openapi.Parse(ctx, *doc)
	if err != nil {
		return err
	}
	for _, id := range spec.OperationIDs() {
		fmt.Fprintf(out, "operation\t%s\n", id)
	}
	return nil
}
