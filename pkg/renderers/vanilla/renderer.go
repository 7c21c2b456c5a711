package vanilla

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"

	"github.com/goliatone/go-formfield/pkg/field"
	"github.com/goliatone/go-formfield/pkg/render"
	rendertemplate "github.com/goliatone/go-formfield/pkg/render/template"
	gotemplate "github.com/goliatone/go-formfield/pkg/render/template/gotemplate"
)

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	policy           *bluemonday.Policy
	logger           zerolog.Logger
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithMessagePolicy marks validator messages as HTML. They are sanitised with
// policy and written unescaped, e.g. bluemonday.UGCPolicy() keeps inline
// emphasis. Without a policy messages are plain text and escaped.
func WithMessagePolicy(policy *bluemonday.Policy) Option {
	return func(cfg *config) {
		if policy != nil {
			cfg.policy = policy
		}
	}
}

// WithLogger attaches a logger; the default discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(cfg *config) {
		cfg.logger = logger
	}
}

// Renderer renders field views to HTML fragments.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
	policy    *bluemonday.Policy
	logger    zerolog.Logger
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the vanilla renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{
		templateFS: TemplatesFS(),
		logger:     zerolog.Nop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}
	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{
		templates: renderer,
		policy:    cfg.policy,
		logger:    cfg.logger,
	}, nil
}

func (r *Renderer) Name() string {
	return "vanilla"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render writes the label, the control and, once the field is touched, the
// validation messages.
func (r *Renderer) Render(ctx context.Context, view field.View, opts render.RenderOptions) ([]byte, error) {
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}
	if r.templates == nil {
		return nil, fmt.Errorf("vanilla renderer: template renderer is nil")
	}

	messages := r.sanitizeMessages(render.NormalizeMessages(view.VisibleErrors()))
	errorID := errorListID(view, opts)

	control, err := r.renderControl(view, opts, errorID, len(messages) > 0)
	if err != nil {
		return nil, err
	}

	var errorsHTML string
	if len(messages) > 0 {
		errorsHTML, err = r.templates.RenderTemplate(partial(opts, render.PartialErrors, errorsTemplate), map[string]any{
			"errorID":  errorID,
			"messages": messages,
			"trusted":  r.policy != nil,
		})
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: render errors for %q: %w", view.Name, err)
		}
	}

	out, err := r.templates.RenderTemplate(fieldTemplate, map[string]any{
		"classes":  wrapperClasses(view, len(messages) > 0),
		"name":     view.Name,
		"state":    stateName(view),
		"style":    themeStyle(opts),
		"label":    view.Label,
		"labelFor": view.LabelFor,
		"labelID":  labelID(view),
		"control":  control,
		"errors":   errorsHTML,
	})
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render field %q: %w", view.Name, err)
	}

	r.logger.Debug().
		Str("field", view.Name).
		Str("mode", string(view.Mode)).
		Bool("touched", view.Touched).
		Int("errors", len(view.Errors)).
		Int("visible_errors", len(messages)).
		Msg("rendered field")

	return []byte(out), nil
}

// RenderField renders f in its current state.
func (r *Renderer) RenderField(ctx context.Context, f *field.Field, opts render.RenderOptions) ([]byte, error) {
	if f == nil {
		return nil, fmt.Errorf("vanilla renderer: field is nil")
	}
	return r.Render(ctx, f.Render(), opts)
}

func (r *Renderer) renderControl(view field.View, opts render.RenderOptions, errorID string, invalid bool) (string, error) {
	data := map[string]any{
		"id":          view.ID,
		"name":        view.Name,
		"value":       view.Value,
		"placeholder": view.Placeholder,
		"invalid":     invalid,
		"errorID":     errorID,
		"attrs":       attributeString(opts.Attributes),
	}

	name := partial(opts, render.PartialInput, inputTemplate)
	if view.Multiline() {
		name = partial(opts, render.PartialTextarea, textareaTemplate)
		data["leadingNewline"] = len(view.Value) > 0 && view.Value[0] == '\n'
	}

	out, err := r.templates.RenderTemplate(name, data)
	if err != nil {
		return "", fmt.Errorf("vanilla renderer: render control for %q: %w", view.Name, err)
	}
	return out, nil
}

func (r *Renderer) sanitizeMessages(messages []string) []string {
	if len(messages) == 0 || r.policy == nil {
		return messages
	}
	out := make([]string, 0, len(messages))
	for _, message := range messages {
		if cleaned := r.policy.Sanitize(message); cleaned != "" {
			out = append(out, cleaned)
		}
	}
	return out
}
