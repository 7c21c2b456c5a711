// Package terminal edits a single field interactively on a tcell screen.
// Every key event becomes exactly one field edit, which mirrors how a browser
// delivers one input event per keystroke.
package terminal
