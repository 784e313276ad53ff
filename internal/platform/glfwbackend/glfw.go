// Package glfwbackend implements platform.Provider on top of GLFW 3.3.
// Every function here must be called from the main OS thread.
package glfwbackend

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"

	"noteplus/internal/logger"
	"noteplus/internal/platform"
)

type Provider struct {
	logger logger.Logger
}

func New(log logger.Logger) *Provider {
	return &Provider{logger: log}
}

func (p *Provider) Init() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("%w: %v", platform.ErrInit, err)
	}

	major, minor, rev := glfw.GetVersion()
	p.logger.Debug("GLFW", "initialized", map[string]interface{}{
		"version": fmt.Sprintf("%d.%d.%d", major, minor, rev),
	})
	return nil
}

func (p *Provider) CreateWindow(cfg platform.WindowConfig) (platform.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, cfg.GLMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, cfg.GLMinor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	w, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", platform.ErrCreateWindow, err)
	}

	p.logger.Debug("GLFW", "window created", map[string]interface{}{
		"title":  cfg.Title,
		"width":  cfg.Width,
		"height": cfg.Height,
	})
	return &Window{window: w, swapInterval: cfg.SwapInterval}, nil
}

func (p *Provider) Terminate() {
	glfw.Terminate()
}

// Window adapts *glfw.Window to platform.Window
type Window struct {
	window       *glfw.Window
	swapInterval int
}

// GLFW exposes the underlying handle for the UI windowing binding
func (w *Window) GLFW() *glfw.Window {
	return w.window
}

func (w *Window) MakeContextCurrent() {
	w.window.MakeContextCurrent()
	glfw.SwapInterval(w.swapInterval)
}

func (w *Window) SetResizeCallback(fn func(width, height int)) {
	w.window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		fn(width, height)
	})
}

func (w *Window) ShouldClose() bool {
	return w.window.ShouldClose()
}

func (w *Window) SetShouldClose(value bool) {
	w.window.SetShouldClose(value)
}

func (w *Window) PollEvents() {
	glfw.PollEvents()
}

func (w *Window) SwapBuffers() {
	w.window.SwapBuffers()
}

func (w *Window) FramebufferSize() (int, int) {
	return w.window.GetFramebufferSize()
}

func (w *Window) Size() (int, int) {
	return w.window.GetSize()
}

func (w *Window) Destroy() {
	w.window.Destroy()
}
