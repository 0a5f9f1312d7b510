package app

import (
	"errors"

	"github.com/dshills/scribe/internal/command"
	"github.com/dshills/scribe/internal/renderer/backend"
	"github.com/dshills/scribe/internal/renderer/layout"
)

// eventLoop draws a frame, then blocks for exactly one event, until an
// event handler returns an error.
func (app *Application) eventLoop() error {
	for {
		app.render()
		if err := app.handleBackendEvent(app.backend.PollEvent()); err != nil {
			return err
		}
	}
}

// render plans and draws the current state.
func (app *Application) render() {
	width, height := app.backend.Size()
	app.renderer.Render(layout.Plan(app.state(), width, height))
}

func (app *Application) state() layout.State {
	return layout.State{
		Mode:        app.machine.Mode(),
		Body:        app.machine.Body().Text(),
		CommandLine: app.machine.CommandLine(),
		Message:     app.message,
	}
}

// handleBackendEvent processes a backend event and routes it appropriately.
// Returns ErrQuit if the application should exit.
func (app *Application) handleBackendEvent(ev backend.Event) error {
	switch ev.Type {
	case backend.EventKey:
		return app.handleKeyEvent(ev)
	case backend.EventResize:
		// The next frame is planned for the new size.
		return nil
	default:
		return nil
	}
}

// handleKeyEvent feeds a key to the mode machine and runs any submitted
// command line.
func (app *Application) handleKeyEvent(ev backend.Event) error {
	app.message = ""

	result := app.machine.HandleKey(ev.Key)
	if !result.Consumed {
		app.logger.WithComponent("input").Debug("ignored %s in %s mode", ev.Key, app.machine.Mode())
	}
	if !result.Submitted {
		return nil
	}
	return app.execute(result.Command)
}

// execute runs a submitted command line.
func (app *Application) execute(line string) error {
	log := app.logger.WithComponent("command")

	out, err := app.commands.Execute(line, app.machine.Body())
	if err != nil {
		var writeErr *command.WriteError
		if errors.As(err, &writeErr) {
			return &OperationError{Op: "write", Path: writeErr.Path, Err: writeErr.Err}
		}
		return err
	}

	switch {
	case out.Quit:
		log.Info("quit")
		return ErrQuit
	case out.Command.Kind == command.KindWrite:
		log.WithFields(map[string]any{"path": out.Command.Target(), "bytes": out.Written}).Info("wrote file")
	case out.Command.Kind == command.KindUnknown:
		log.Warn("not a command: %q", line)
	}

	app.message = out.Message
	return nil
}
