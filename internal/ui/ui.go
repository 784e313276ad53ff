// Package ui is the immediate-mode UI surface the shell declares its widgets
// against. Nothing is retained between frames: every frame the shell calls
// NewFrame, declares widgets through Widgets, and collects the result with
// Render.
package ui

import (
	"errors"
	"math"

	"noteplus/internal/platform"
)

var (
	ErrContext  = errors.New("ui context creation failed")
	ErrBinding  = errors.New("ui platform binding failed")
	ErrGraphics = errors.New("graphics context initialization failed")
)

// FillWidth as a button width stretches it to the remaining content width
const FillWidth = -math.SmallestNonzeroFloat32

type Vec2 struct {
	X, Y float32
}

type Size struct {
	Width, Height int
}

type Color struct {
	R, G, B, A float32
}

type PanelFlags int

const (
	PanelNoMove PanelFlags = 1 << iota
	PanelNoResize
	PanelNoTitleBar

	PanelFixed = PanelNoMove | PanelNoResize | PanelNoTitleBar
)

// Toolkit creates UI contexts
type Toolkit interface {
	CreateContext() (Context, error)
}

// Context is one instance of the UI library's state
type Context interface {
	BindWindow(w platform.Window) (WindowBinding, error)
	BindRenderer(glslVersion string) (RendererBinding, error)
	NewFrame()
	Widgets() Widgets
	Render() DrawData
	Destroy()
}

// WindowBinding feeds window input into the UI library
type WindowBinding interface {
	NewFrame()
	Shutdown()
}

// RendererBinding turns draw data into graphics calls
type RendererBinding interface {
	NewFrame()
	Clear(viewport Size, color Color)
	RenderDrawData(data DrawData, display, framebuffer Size)
	Shutdown()
}

// DrawData is the finished output of a frame
type DrawData interface {
	Valid() bool
}

// Widgets declares the contents of the current frame. Begin* calls that
// return true must be matched by their End*.
type Widgets interface {
	// BeginPanel places a top-level window at pos with the given size.
	// EndPanel must be called regardless of the result.
	BeginPanel(id string, pos, size Vec2, flags PanelFlags) bool
	EndPanel()
	BeginTabBar(id string) bool
	EndTabBar()
	BeginTabItem(label string) bool
	EndTabItem()
	Button(label string, size Vec2) bool
	SameLine()
	Spacing()
	Separator()
	Text(text string)
	Columns(count int, id string)
	SetColumnWidth(index int, width float32)
	NextColumn()
	// BeginChild opens a child region; EndChild must always follow.
	BeginChild(id string, size Vec2, border bool) bool
	EndChild()
}
