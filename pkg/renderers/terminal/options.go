package terminal

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
)

// Styles controls how the editor paints each part of the field.
type Styles struct {
	Label       tcell.Style
	Value       tcell.Style
	Placeholder tcell.Style
	Error       tcell.Style
	Status      tcell.Style
}

// DefaultStyles returns the built-in palette.
func DefaultStyles() Styles {
	return Styles{
		Label:       tcell.StyleDefault.Bold(true),
		Value:       tcell.StyleDefault,
		Placeholder: tcell.StyleDefault.Foreground(tcell.ColorGray),
		Error:       tcell.StyleDefault.Foreground(tcell.ColorRed),
		Status:      tcell.StyleDefault.Foreground(tcell.ColorDarkGray).Italic(true),
	}
}

// Option configures an Editor.
type Option func(*Editor)

// WithScreen uses an already initialised screen. The caller keeps ownership
// and must Fini it.
func WithScreen(screen tcell.Screen) Option {
	return func(e *Editor) {
		if screen != nil {
			e.screen = screen
			e.ownsScreen = false
		}
	}
}

// WithStyles overrides the palette.
func WithStyles(styles Styles) Option {
	return func(e *Editor) {
		e.styles = styles
	}
}

// WithLogger attaches a logger; the default discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(e *Editor) {
		e.logger = logger
	}
}
