// Package key describes key presses in terms the mode machine needs.
//
// Terminal backends translate their own events into an Event, so the mode
// package never depends on the terminal library. Only Enter, Escape, Tab,
// Backspace and character keys are told apart; anything else is KeyNone.
package key
