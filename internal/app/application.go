// Package app is the application shell: it acquires a window and a UI
// context, declares the ribbon, sidebar and content panels every frame, and
// releases everything on shutdown.
package app

import (
	"errors"
	"fmt"

	"noteplus/internal/command"
	"noteplus/internal/debug/timing"
	"noteplus/internal/logger"
	"noteplus/internal/platform"
	"noteplus/internal/ui"
)

var (
	ErrPlatformInit = errors.New("failed to initialize windowing library")
	ErrWindowCreate = errors.New("failed to create window")
	ErrUIInit       = errors.New("failed to initialize ui")
	ErrShutdown     = errors.New("shell already shut down")
)

const frameOperation = "frame"

// Deps are the collaborators the shell is built from
type Deps struct {
	Platform platform.Provider
	Toolkit  ui.Toolkit
	// Registry receives the shell's own handlers. Optional.
	Registry *command.Registry
	Logger   logger.Logger
}

// State is the UI state owned by a running shell
type State struct {
	Viewport        ui.Size
	SidebarVisible  bool
	SidebarExpanded bool
}

// Running is a shell between a successful Initialize and Shutdown
type Running struct {
	config   Config
	logger   logger.Logger
	registry *command.Registry
	frames   *timing.Tracker

	platform platform.Provider
	window   platform.Window
	context  ui.Context
	input    ui.WindowBinding
	renderer ui.RendererBinding
	handlers map[command.Action]command.Handler

	state      State
	terminated bool
}

// Initialize acquires the window and UI context. On failure everything
// acquired so far is released again.
func Initialize(cfg Config, deps Deps) (*Running, error) {
	log := deps.Logger
	if log == nil {
		log = logger.NoOpLogger{}
	}
	registry := deps.Registry
	if registry == nil {
		registry = command.NewRegistry(log)
	}

	if err := deps.Platform.Init(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPlatformInit, err)
	}

	window, err := deps.Platform.CreateWindow(cfg.window())
	if err != nil {
		deps.Platform.Terminate()
		return nil, fmt.Errorf("%w: %w", ErrWindowCreate, err)
	}

	r := &Running{
		config:   cfg,
		logger:   log,
		registry: registry,
		frames:   timing.NewTracker(nil),
		platform: deps.Platform,
		window:   window,
		state: State{
			Viewport:        ui.Size{Width: cfg.Width, Height: cfg.Height},
			SidebarVisible:  true,
			SidebarExpanded: true,
		},
	}

	window.SetResizeCallback(r.resize)
	window.MakeContextCurrent()

	if err := r.initUI(deps.Toolkit); err != nil {
		r.release()
		return nil, fmt.Errorf("%w: %w", ErrUIInit, err)
	}

	r.registerHandlers()

	log.Info("Shell", "initialized", map[string]interface{}{
		"title":  cfg.Title,
		"width":  cfg.Width,
		"height": cfg.Height,
	})
	return r, nil
}

func (r *Running) initUI(toolkit ui.Toolkit) error {
	ctx, err := toolkit.CreateContext()
	if err != nil {
		return err
	}
	r.context = ctx

	input, err := ctx.BindWindow(r.window)
	if err != nil {
		return err
	}
	r.input = input

	renderer, err := ctx.BindRenderer(r.config.GLSLVersion)
	if err != nil {
		return err
	}
	r.renderer = renderer
	return nil
}

// resize is the window's framebuffer-size callback
func (r *Running) resize(width, height int) {
	r.state.Viewport = ui.Size{Width: max(width, 0), Height: max(height, 0)}
}

// State returns a copy of the current UI state
func (r *Running) State() State {
	return r.state
}

func (r *Running) Registry() *command.Registry {
	return r.registry
}

// RequestClose sets the window's close flag. The frame loop stops at its
// next check, not immediately.
func (r *Running) RequestClose() {
	if r.terminated {
		return
	}
	r.window.SetShouldClose(true)
}

// Frames reports how many frames have been rendered
func (r *Running) Frames() int {
	return r.frames.Stats(frameOperation).Count
}
