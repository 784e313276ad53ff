package app

import (
	"time"

	"noteplus/internal/platform"
	"noteplus/internal/ui"
)

const (
	AppName    = "Note+"
	AppVersion = "1.0.0"
)

type Config struct {
	Title        string
	Width        int
	Height       int
	GLMajor      int
	GLMinor      int
	SwapInterval int
	GLSLVersion  string
	// SlowFrame is the render time above which a frame is logged. Zero
	// disables the check.
	SlowFrame time.Duration

	RibbonHeight     float32
	SidebarWidth     float32
	SlimSidebarWidth float32
	ClearColor       ui.Color
}

func DefaultConfig() Config {
	return Config{
		Title:        AppName,
		Width:        1280,
		Height:       720,
		GLMajor:      3,
		GLMinor:      2,
		SwapInterval: 1,
		GLSLVersion:  "#version 150",
		SlowFrame:    100 * time.Millisecond,

		RibbonHeight:     100,
		SidebarWidth:     250,
		SlimSidebarWidth: 60,
		ClearColor:       ui.Color{R: 0.45, G: 0.55, B: 0.60, A: 1.00},
	}
}

func (c Config) window() platform.WindowConfig {
	return platform.WindowConfig{
		Title:        c.Title,
		Width:        c.Width,
		Height:       c.Height,
		GLMajor:      c.GLMajor,
		GLMinor:      c.GLMinor,
		SwapInterval: c.SwapInterval,
	}
}
