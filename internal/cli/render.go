package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"

	formfield "github.com/goliatone/go-formfield"
	"github.com/goliatone/go-formfield/pkg/field"
	"github.com/goliatone/go-formfield/pkg/form"
	"github.com/goliatone/go-formfield/pkg/renderers/bubble"
	"github.com/goliatone/go-formfield/pkg/renderers/terminal"
	"github.com/goliatone/go-formfield/pkg/renderers/tui"
)

// Flags for the `render` command.
type RenderCommand struct {
	SourceFlags

	Renderer string   `short:"r" long:"renderer" description:"html and text print every field; tui, terminal and bubble edit them interactively" default:"html" choice:"html" choice:"text" choice:"tui" choice:"terminal" choice:"bubble"`
	Touched  bool     `long:"touched" description:"render fields as if the user had already edited them"`
	Values   []string `long:"value" description:"prefill a field" value-name:"<NAME=VALUE>"`

	out    io.Writer
	in     io.Reader
	tty    io.Writer
	driver tui.PromptDriver
	screen tcell.Screen
}

// Execute runs the render command.
func (command *RenderCommand) Execute(args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return command.run(ctx)
}

func (command *RenderCommand) run(ctx context.Context) error {
	logger := command.logger(log.Logger)
	out := command.out
	if out == nil {
		out = os.Stdout
	}

	src, err := command.source(ctx)
	if err != nil {
		return err
	}
	defs, err := formfield.LoadDefinitions(ctx, src)
	if err != nil {
		return err
	}
	values, err := parseValues(command.Values)
	if err != nil {
		return err
	}
	f, err := form.New(defs, form.WithValues(values), form.WithChangeListener(func(name, value string) {
		logger.Debug().Str("field", name).Str("value", value).Msg("change")
	}))
	if err != nil {
		return err
	}
	logger.Debug().Str("form", src.FormID).Int("fields", len(defs)).Str("renderer", command.Renderer).Msg("loaded definitions")

	switch command.Renderer {
	case "tui":
		session, err := tui.New(tui.WithPromptDriver(command.driver), tui.WithLogger(logger))
		if err != nil {
			return err
		}
		if err := session.PromptAll(ctx, f.Fields()); err != nil {
			return err
		}
		return writeValues(out, f)
	case "terminal":
		options := []terminal.Option{terminal.WithLogger(logger)}
		if command.screen != nil {
			options = append(options, terminal.WithScreen(command.screen))
		}
		editor, err := terminal.New(options...)
		if err != nil {
			return err
		}
		for _, fld := range f.Fields() {
			if _, err := editor.Edit(ctx, fld); err != nil {
				editor.Close()
				return err
			}
		}
		editor.Close()
		return writeValues(out, f)
	case "bubble":
		in, tty := command.in, command.tty
		if in == nil {
			in = os.Stdin
		}
		if tty == nil {
			tty = os.Stderr
		}
		for _, fld := range f.Fields() {
			if _, err := bubble.Run(ctx, fld, in, tty, bubble.WithLogger(logger)); err != nil {
				return err
			}
		}
		return writeValues(out, f)
	}

	if command.Touched {
		for _, fld := range f.Fields() {
			fld.Handle(field.Replace{Value: fld.Props().Value})
		}
	}

	registry, err := formfield.NewRegistry(logger)
	if err != nil {
		return err
	}
	name := "vanilla"
	if command.Renderer == "text" {
		name = "tui"
	}
	renderer, err := registry.Get(name)
	if err != nil {
		return err
	}
	rendered, err := formfield.RenderForm(ctx, renderer, f, formfield.RenderOptions{})
	if err != nil {
		return err
	}
	_, err = out.Write(rendered)
	return err
}

func parseValues(raw []string) (map[string]string, error) {
	values := make(map[string]string, len(raw))
	for _, entry := range raw {
		name, value, ok := strings.Cut(entry, "=")
		if !ok || strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("--value expects NAME=VALUE, got %q", entry)
		}
		values[strings.TrimSpace(name)] = value
	}
	return values, nil
}

func writeValues(out io.Writer, f *form.Form) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(f.Values())
}
