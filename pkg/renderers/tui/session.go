package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-formfield/pkg/field"
	"github.com/goliatone/go-formfield/pkg/render"
)

const defaultMaxAttempts = 3

// Session edits fields through line-based prompts. Each answer reaches the
// field as one Replace edit, so the owning form sees a single change per
// prompt and the field becomes touched after the first answer.
type Session struct {
	driver      PromptDriver
	maxAttempts int
	theme       Theme
	out         io.Writer
	logger      zerolog.Logger
}

var _ render.Renderer = (*Session)(nil)

// New constructs a session with defaults: survey driver on stdout, and up to
// three re-prompts after the first answer.
func New(options ...Option) (*Session, error) {
	s := &Session{
		maxAttempts: defaultMaxAttempts,
		out:         os.Stdout,
		theme:       Theme{ErrorPrefix: "✗ "},
		logger:      zerolog.Nop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	if s.driver == nil {
		s.driver = newSurveyDriver(s.out)
	}
	return s, nil
}

// Name reports the renderer identifier.
func (s *Session) Name() string {
	return "tui"
}

// ContentType reports the format produced by Render.
func (s *Session) ContentType() string {
	return "text/plain; charset=utf-8"
}

// Render prints a view as plain text: "<label> <value>" followed by one
// prefixed line per visible error.
func (s *Session) Render(ctx context.Context, view field.View, _ render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var b strings.Builder
	b.WriteString(promptMessage(view))
	if view.Value != "" {
		b.WriteByte(' ')
		b.WriteString(view.Value)
	} else if view.Placeholder != "" {
		b.WriteString(" (")
		b.WriteString(view.Placeholder)
		b.WriteByte(')')
	}
	b.WriteByte('\n')
	for _, msg := range render.NormalizeMessages(view.VisibleErrors()) {
		b.WriteString("  ")
		b.WriteString(s.theme.ErrorPrefix)
		b.WriteString(msg)
		b.WriteByte('\n')
	}
	return []byte(b.String()), nil
}

// Prompt asks for f's value until it renders without visible errors. The
// owning form must push the new value back through SetProps from its
// OnChange handler; a form that ignores changes keeps the field invalid.
func (s *Session) Prompt(ctx context.Context, f *field.Field) (string, error) {
	if ctx == nil {
		return "", errors.New("tui: context is required")
	}
	if f == nil {
		return "", errors.New("tui: field is nil")
	}

	for attempt := 0; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		view := f.Render()
		messages := render.NormalizeMessages(view.VisibleErrors())
		if view.Touched && len(messages) == 0 {
			return view.Value, nil
		}
		if len(messages) > 0 {
			if attempt > s.maxAttempts {
				return view.Value, fmt.Errorf("%w: %s: %s", ErrInvalid, view.Name, strings.Join(messages, "; "))
			}
			for _, msg := range messages {
				if err := s.driver.Info(ctx, s.theme.ErrorPrefix+msg); err != nil {
					return "", err
				}
			}
		}

		answer, err := s.ask(ctx, view)
		if err != nil {
			return "", err
		}
		sent := f.Handle(field.Replace{Value: answer})
		s.logger.Debug().Str("field", view.Name).Int("attempt", attempt).Str("value", sent).Msg("prompt answered")
	}
}

// PromptAll prompts every field in order and stops at the first error.
func (s *Session) PromptAll(ctx context.Context, fields []*field.Field) error {
	for _, f := range fields {
		if _, err := s.Prompt(ctx, f); err != nil {
			return err
		}
	}
	return nil
}

func (s *Session) ask(ctx context.Context, view field.View) (string, error) {
	message := promptMessage(view)
	if view.Multiline() {
		return s.driver.TextArea(ctx, TextAreaConfig{
			Message: message,
			Default: view.Value,
			Help:    view.Placeholder,
		})
	}
	return s.driver.Input(ctx, InputConfig{
		Message:     message,
		Default:     view.Value,
		Placeholder: view.Placeholder,
	})
}

func promptMessage(view field.View) string {
	if view.Label != "" {
		return view.Label
	}
	return view.Name + ":"
}
