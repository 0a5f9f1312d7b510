// Package app wires the editor together and runs its event loop.
package app

import (
	"errors"
	"io"
	"runtime/debug"
	"sync/atomic"

	"github.com/dshills/scribe/internal/command"
	"github.com/dshills/scribe/internal/config"
	"github.com/dshills/scribe/internal/engine/buffer"
	"github.com/dshills/scribe/internal/fileio"
	"github.com/dshills/scribe/internal/input/mode"
	"github.com/dshills/scribe/internal/renderer"
	"github.com/dshills/scribe/internal/renderer/backend"
)

// Application owns the editor state and the terminal for one session.
type Application struct {
	opts Options

	config    *config.Config
	logger    *Logger
	logCloser io.Closer

	fs       fileio.FileSystem
	machine  *mode.Machine
	commands *command.Interpreter

	backend  backend.Backend
	renderer *renderer.Renderer
	theme    renderer.Theme

	// message is command feedback shown until the next key press.
	message string

	running atomic.Bool
}

// Options configures the application.
type Options struct {
	// ConfigPath is the TOML configuration file. Empty uses defaults.
	ConfigPath string

	// File is loaded into the body on startup, and created if absent.
	// It is not remembered as a save target.
	File string

	// LogLevel overrides [log].level when set.
	LogLevel string

	// LogFile overrides [log].file when set.
	LogFile string

	// FS performs file reads and writes. Nil uses the OS file system.
	FS fileio.FileSystem

	// Logger replaces the logger built from configuration.
	Logger *Logger
}

// New creates an Application and loads the initial file.
func New(opts Options) (*Application, error) {
	app := &Application{opts: opts}

	if err := app.bootstrap(); err != nil {
		_ = app.Close()
		return nil, err
	}
	return app, nil
}

// bootstrap initializes components in dependency order.
func (app *Application) bootstrap() error {
	// 1. Configuration, with flag overrides
	cfg, err := config.Load(app.opts.ConfigPath)
	if err != nil {
		return &InitError{Component: "config", Err: err}
	}
	if app.opts.LogLevel != "" {
		cfg.Log.Level = app.opts.LogLevel
	}
	if app.opts.LogFile != "" {
		cfg.Log.File = app.opts.LogFile
	}
	if err := cfg.Validate(); err != nil {
		return &InitError{Component: "config", Err: err}
	}
	app.config = cfg

	// 2. Logger
	if app.opts.Logger != nil {
		app.logger = app.opts.Logger
	} else {
		logger, closer, err := OpenLogger(ParseLogLevel(cfg.Log.Level), cfg.Log.File)
		if err != nil {
			return &InitError{Component: "logger", Err: err}
		}
		app.logger, app.logCloser = logger, closer
	}

	// 3. Theme
	border, text, status, err := cfg.Theme.Colors()
	if err != nil {
		return &InitError{Component: "theme", Err: err}
	}
	app.theme = renderer.NewTheme(border, text, status)

	// 4. File system and initial document
	app.fs = app.opts.FS
	if app.fs == nil {
		app.fs = fileio.DefaultFS()
	}

	body := buffer.NewBuffer()
	if app.opts.File != "" {
		data, err := app.fs.LoadOrCreate(app.opts.File)
		if err != nil {
			return &InitError{Component: "document", Err: &OperationError{Op: "open", Path: app.opts.File, Err: err}}
		}
		body = buffer.NewBufferFromBytes(data)
		app.logger.WithFields(map[string]any{"path": app.opts.File, "bytes": len(data)}).Info("loaded file")
	}

	// 5. Mode machine and command interpreter
	app.machine = mode.NewMachine(body)
	app.machine.OnChange(func(from, to mode.Mode) {
		app.logger.WithComponent("mode").Debug("%s -> %s", from, to)
	})
	app.commands = command.NewInterpreter(app.fs)

	return nil
}

// SetBackend sets the terminal backend.
// Must be called before Run().
func (app *Application) SetBackend(b backend.Backend) error {
	if app.running.Load() {
		return ErrAlreadyRunning
	}
	app.backend = b
	return nil
}

// Run takes over the terminal and processes input until a quit command
// or a fatal error. A quit returns ErrQuit. The terminal is restored on
// every return path, panics included; a panic is returned as a
// *PanicError.
func (app *Application) Run() (err error) {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	if app.backend == nil {
		return ErrNoBackend
	}

	// Registered before Shutdown so it runs after the terminal is restored.
	defer func() {
		if r := recover(); r != nil {
			perr := &PanicError{Value: r, Stack: debug.Stack()}
			app.logger.Error("recovered %v\n%s", perr, perr.Stack)
			err = perr
		}
	}()

	if err := app.backend.Init(); err != nil {
		return &InitError{Component: "backend", Err: err}
	}
	defer app.backend.Shutdown()

	app.renderer = renderer.New(app.backend, app.theme)
	app.logger.Info("editor started")

	err = app.eventLoop()
	if !errors.Is(err, ErrQuit) {
		app.logger.Error("event loop: %v", err)
	}
	return err
}

// Mode returns the current editor mode.
func (app *Application) Mode() mode.Mode {
	return app.machine.Mode()
}

// Body returns the document text.
func (app *Application) Body() string {
	return app.machine.Body().Text()
}

// Config returns the effective configuration.
func (app *Application) Config() *config.Config {
	return app.config
}

// Logger returns the application's logger.
func (app *Application) Logger() *Logger {
	if app.logger == nil {
		return NullLogger
	}
	return app.logger
}

// Close releases the log file, if any.
func (app *Application) Close() error {
	if app.logCloser == nil {
		return nil
	}
	err := app.logCloser.Close()
	app.logCloser = nil
	return err
}
