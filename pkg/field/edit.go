package field

import "strings"

// End positions an edit at the end of the current value.
const End = -1

// Edit is a discrete user edit. Apply returns the value the input would hold
// after the edit and whether the edit had any effect; positions count runes.
type Edit interface {
	Apply(value string, mode Mode) (string, bool)
}

// Insert adds Text at rune offset At (End appends).
type Insert struct {
	Text string
	At   int
}

// Apply implements Edit. Line breaks are dropped in single-line mode, the way
// a browser strips them from pasted text.
func (e Insert) Apply(value string, mode Mode) (string, bool) {
	text := e.Text
	if !mode.Multiline() {
		text = stripLineBreaks(text)
	}
	if text == "" {
		return value, false
	}
	runes := []rune(value)
	at := clamp(e.At, len(runes))
	return string(runes[:at]) + text + string(runes[at:]), true
}

// DeleteBackward removes the rune before At, like Backspace.
type DeleteBackward struct {
	At int
}

// Apply implements Edit.
func (e DeleteBackward) Apply(value string, _ Mode) (string, bool) {
	runes := []rune(value)
	at := clamp(e.At, len(runes))
	if at == 0 {
		return value, false
	}
	return string(runes[:at-1]) + string(runes[at:]), true
}

// Replace swaps the whole value, as a paste over a selection or a prompt
// answer does. It always counts as an edit, even when the value is the same:
// submitting an answer is an interaction.
type Replace struct {
	Value string
}

// Apply implements Edit.
func (e Replace) Apply(_ string, mode Mode) (string, bool) {
	if !mode.Multiline() {
		return stripLineBreaks(e.Value), true
	}
	return e.Value, true
}

// Newline inserts a line break. Single-line inputs ignore it.
type Newline struct {
	At int
}

// Apply implements Edit.
func (e Newline) Apply(value string, mode Mode) (string, bool) {
	if !mode.Multiline() {
		return value, false
	}
	return Insert{Text: "\n", At: e.At}.Apply(value, mode)
}

var lineBreaks = strings.NewReplacer("\r\n", "", "\n", "", "\r", "")

func stripLineBreaks(s string) string {
	return lineBreaks.Replace(s)
}

func clamp(at, length int) int {
	if at < 0 || at > length {
		return length
	}
	return at
}
