// Package command parses and executes the editor's command-line language.
//
// A command line starts with ':' followed by whitespace-separated tokens.
// The first token selects the command:
//
//	:quit, :q          leave the editor
//	:write F, :w F     write the buffer to file F
//
// Anything else is ignored.
package command

import (
	"errors"
	"fmt"
	"strings"
)

// Prefix starts every command line.
const Prefix = ":"

// ErrMissingPrefix is returned by Parse for text that does not start
// with Prefix.
var ErrMissingPrefix = errors.New("command line must start with " + Prefix)

// Kind identifies a parsed command.
type Kind uint8

const (
	// KindNone is an empty command line.
	KindNone Kind = iota
	// KindQuit ends the editing session.
	KindQuit
	// KindWrite saves the buffer.
	KindWrite
	// KindUnknown is any unrecognized verb.
	KindUnknown
)

// String returns the kind's name.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindQuit:
		return "quit"
	case KindWrite:
		return "write"
	case KindUnknown:
		return "unknown"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

var verbs = map[string]Kind{
	"quit":  KindQuit,
	"q":     KindQuit,
	"write": KindWrite,
	"w":     KindWrite,
}

// Command is a parsed command line.
type Command struct {
	Kind Kind

	// Name is the verb as typed.
	Name string

	// Args holds the tokens after the verb.
	Args []string
}

// Target returns the file a write command saves to: the last token on
// the line. With no arguments that is the verb itself.
func (c Command) Target() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Args[len(c.Args)-1]
}

// Parse splits a command line into a Command.
// An empty or blank line after the prefix parses as KindNone.
func Parse(line string) (Command, error) {
	rest, ok := strings.CutPrefix(line, Prefix)
	if !ok {
		return Command{}, ErrMissingPrefix
	}

	fields := strings.Fields(rest)
	if len(fields) == 0 {
		return Command{Kind: KindNone}, nil
	}

	kind, known := verbs[fields[0]]
	if !known {
		kind = KindUnknown
	}
	return Command{Kind: kind, Name: fields[0], Args: fields[1:]}, nil
}
