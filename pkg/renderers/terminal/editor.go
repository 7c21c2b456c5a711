package terminal

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/goliatone/go-formfield/pkg/field"
	"github.com/goliatone/go-formfield/pkg/render"
)

var (
	// ErrAborted is returned when the user leaves with Esc or Ctrl+C.
	ErrAborted = errors.New("terminal: aborted")
	// ErrScreenClosed is returned when the screen stops delivering events.
	ErrScreenClosed = errors.New("terminal: screen closed")
)

const (
	submitHint   = "enter: submit  esc: cancel"
	multiHint    = "ctrl+d: submit  esc: cancel"
	blockedHint  = "cannot submit: %d error(s)"
	statusMargin = 1
)

// Editor draws a field and turns key events into field edits.
type Editor struct {
	screen     tcell.Screen
	ownsScreen bool
	styles     Styles
	logger     zerolog.Logger
}

// New constructs an editor. Without WithScreen a terminal screen is created
// and initialised; call Close when done.
func New(options ...Option) (*Editor, error) {
	e := &Editor{
		styles: DefaultStyles(),
		logger: zerolog.Nop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(e)
	}

	if e.screen == nil {
		screen, err := tcell.NewScreen()
		if err != nil {
			return nil, fmt.Errorf("terminal: create screen: %w", err)
		}
		if err := screen.Init(); err != nil {
			return nil, fmt.Errorf("terminal: init screen: %w", err)
		}
		screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorReset).Foreground(tcell.ColorReset))
		e.screen = screen
		e.ownsScreen = true
	}
	return e, nil
}

// Close finalises the screen if the editor created it.
func (e *Editor) Close() {
	if e.ownsScreen && e.screen != nil {
		e.screen.Fini()
	}
}

// Edit runs the key loop for f until the user submits or aborts. Submitting
// is refused while the current value has validation errors. The returned
// value is whatever the owning form holds at submit time.
func (e *Editor) Edit(ctx context.Context, f *field.Field) (string, error) {
	if ctx == nil {
		return "", errors.New("terminal: context is required")
	}
	if f == nil {
		return "", errors.New("terminal: field is nil")
	}

	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			_ = e.screen.PostEvent(tcell.NewEventInterrupt(ctx.Err()))
		case <-stop:
		}
	}()

	cursor := runeLen(f.Props().Value)
	status := ""
	for {
		view := f.Render()
		cursor = clampCursor(cursor, view.Value)
		e.draw(view, cursor, status)
		status = ""

		switch ev := e.screen.PollEvent().(type) {
		case nil:
			return "", ErrScreenClosed
		case *tcell.EventInterrupt:
			if err := ctx.Err(); err != nil {
				return "", err
			}
		case *tcell.EventResize:
			e.screen.Sync()
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape, tcell.KeyCtrlC:
				return "", ErrAborted
			case tcell.KeyCtrlD:
				if value, ok := submit(view); ok {
					return value, nil
				}
				status = fmt.Sprintf(blockedHint, len(view.Errors))
			case tcell.KeyEnter:
				if view.Multiline() {
					f.Handle(field.Newline{At: cursor})
					cursor++
					break
				}
				if value, ok := submit(view); ok {
					return value, nil
				}
				status = fmt.Sprintf(blockedHint, len(view.Errors))
			case tcell.KeyBackspace, tcell.KeyBackspace2:
				f.Handle(field.DeleteBackward{At: cursor})
				cursor--
			case tcell.KeyLeft:
				cursor--
			case tcell.KeyRight:
				cursor++
			case tcell.KeyHome:
				cursor = 0
			case tcell.KeyEnd:
				cursor = runeLen(view.Value)
			case tcell.KeyRune:
				f.Handle(field.Insert{Text: string(ev.Rune()), At: cursor})
				cursor++
			}
			e.logger.Debug().Str("field", view.Name).Int("key", int(ev.Key())).Int("cursor", cursor).Msg("key event")
		}
		if cursor < 0 {
			cursor = 0
		}
	}
}

func submit(view field.View) (string, bool) {
	if len(view.Errors) > 0 {
		return "", false
	}
	return view.Value, true
}

func (e *Editor) draw(view field.View, cursor int, status string) {
	e.screen.Clear()
	width, height := e.screen.Size()

	row := 0
	label := view.Label
	if label == "" {
		label = view.Name + ":"
	}
	e.drawText(0, row, width, e.styles.Label, label)
	row++

	valueRow := row
	lines := strings.Split(view.Value, "\n")
	if view.Value == "" && view.Placeholder != "" {
		e.drawText(0, row, width, e.styles.Placeholder, view.Placeholder)
		row++
	} else {
		for _, line := range lines {
			e.drawText(0, row, width, e.styles.Value, line)
			row++
		}
	}

	for _, msg := range render.NormalizeMessages(view.VisibleErrors()) {
		e.drawText(0, row, width, e.styles.Error, "✗ "+msg)
		row++
	}

	if status == "" {
		status = submitHint
		if view.Multiline() {
			status = multiHint
		}
	}
	e.drawText(0, height-statusMargin, width, e.styles.Status, status)

	x, y := cursorPosition(view.Value, cursor)
	e.screen.ShowCursor(x, valueRow+y)
	e.screen.Show()
}

func (e *Editor) drawText(x, y, width int, style tcell.Style, text string) {
	col := x
	for _, r := range text {
		if col >= width {
			return
		}
		e.screen.SetContent(col, y, r, nil, style)
		col++
	}
}

// cursorPosition maps a rune offset onto column and line within value.
func cursorPosition(value string, cursor int) (int, int) {
	x, y := 0, 0
	i := 0
	for _, r := range value {
		if i == cursor {
			break
		}
		if r == '\n' {
			x = 0
			y++
		} else {
			x++
		}
		i++
	}
	return x, y
}

func clampCursor(cursor int, value string) int {
	if cursor < 0 {
		return 0
	}
	if n := runeLen(value); cursor > n {
		return n
	}
	return cursor
}

func runeLen(s string) int {
	return len([]rune(s))
}
