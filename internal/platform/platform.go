// Package platform describes the windowing and graphics-context provider the
// shell runs on. The GLFW implementation lives in glfwbackend.
package platform

import "errors"

var (
	ErrInit         = errors.New("windowing library initialization failed")
	ErrCreateWindow = errors.New("window creation failed")
)

// WindowConfig describes the window and the GL context created with it
type WindowConfig struct {
	Title        string
	Width        int
	Height       int
	GLMajor      int
	GLMinor      int
	SwapInterval int
}

// Provider owns the windowing library's global state
type Provider interface {
	Init() error
	CreateWindow(cfg WindowConfig) (Window, error)
	Terminate()
}

// Window is an OS window with a graphics context bound to it
type Window interface {
	MakeContextCurrent()
	// SetResizeCallback is invoked with the new framebuffer size whenever
	// the OS reports a change.
	SetResizeCallback(fn func(width, height int))
	ShouldClose() bool
	SetShouldClose(value bool)
	PollEvents()
	SwapBuffers()
	FramebufferSize() (width, height int)
	Size() (width, height int)
	Destroy()
}
