// Package imguibackend implements the ui interfaces with Dear ImGui
// (inkyblackness/imgui-go), a GLFW input binding and an OpenGL 3.2 core
// renderer.
package imguibackend

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/inkyblackness/imgui-go/v4"

	"noteplus/internal/logger"
	"noteplus/internal/platform"
	"noteplus/internal/ui"
)

// Toolkit creates imgui contexts
type Toolkit struct {
	logger logger.Logger
}

func New(log logger.Logger) *Toolkit {
	return &Toolkit{logger: log}
}

func (t *Toolkit) CreateContext() (ui.Context, error) {
	ctx := imgui.CreateContext(nil)
	imgui.StyleColorsDark()

	t.logger.Debug("ImGui", "context created", map[string]interface{}{
		"version": imgui.Version(),
	})

	return &Context{
		context: ctx,
		io:      imgui.CurrentIO(),
		logger:  t.logger,
	}, nil
}

// Context wraps one imgui context
type Context struct {
	context *imgui.Context
	io      imgui.IO
	logger  logger.Logger
	widgets widgets
}

type glfwWindow interface {
	GLFW() *glfw.Window
}

func (c *Context) BindWindow(w platform.Window) (ui.WindowBinding, error) {
	native, ok := w.(glfwWindow)
	if !ok {
		return nil, fmt.Errorf("%w: window %T is not backed by GLFW", ui.ErrBinding, w)
	}
	return newWindowBinding(c.io, native.GLFW()), nil
}

func (c *Context) BindRenderer(glslVersion string) (ui.RendererBinding, error) {
	return newRenderer(c.io, glslVersion, c.logger)
}

func (c *Context) NewFrame() {
	imgui.NewFrame()
}

func (c *Context) Widgets() ui.Widgets {
	return c.widgets
}

func (c *Context) Render() ui.DrawData {
	imgui.Render()
	return drawData{imgui.RenderedDrawData()}
}

func (c *Context) Destroy() {
	c.context.Destroy()
}

type drawData struct {
	imgui.DrawData
}

func vec2(v ui.Vec2) imgui.Vec2 {
	return imgui.Vec2{X: v.X, Y: v.Y}
}

func windowFlags(flags ui.PanelFlags) imgui.WindowFlags {
	var out imgui.WindowFlags
	if flags&ui.PanelNoMove != 0 {
		out |= imgui.WindowFlagsNoMove
	}
	if flags&ui.PanelNoResize != 0 {
		out |= imgui.WindowFlagsNoResize
	}
	if flags&ui.PanelNoTitleBar != 0 {
		out |= imgui.WindowFlagsNoTitleBar
	}
	return out
}

// widgets forwards declarations to the current imgui context
type widgets struct{}

func (widgets) BeginPanel(id string, pos, size ui.Vec2, flags ui.PanelFlags) bool {
	imgui.SetNextWindowPos(vec2(pos))
	imgui.SetNextWindowSize(vec2(size))
	return imgui.BeginV(id, nil, windowFlags(flags))
}

func (widgets) EndPanel() { imgui.End() }

func (widgets) BeginTabBar(id string) bool {
	return imgui.BeginTabBarV(id, imgui.TabBarFlagsReorderable)
}

func (widgets) EndTabBar() { imgui.EndTabBar() }

func (widgets) BeginTabItem(label string) bool { return imgui.BeginTabItem(label) }

func (widgets) EndTabItem() { imgui.EndTabItem() }

func (widgets) Button(label string, size ui.Vec2) bool {
	return imgui.ButtonV(label, vec2(size))
}

func (widgets) SameLine()  { imgui.SameLine() }
func (widgets) Spacing()   { imgui.Spacing() }
func (widgets) Separator() { imgui.Separator() }

func (widgets) Text(text string) { imgui.Text(text) }

func (widgets) Columns(count int, id string) {
	imgui.ColumnsV(count, id, false)
}

func (widgets) SetColumnWidth(index int, width float32) {
	imgui.SetColumnWidth(index, width)
}

func (widgets) NextColumn() { imgui.NextColumn() }

func (widgets) BeginChild(id string, size ui.Vec2, border bool) bool {
	return imgui.BeginChildV(id, vec2(size), border, 0)
}

func (widgets) EndChild() { imgui.EndChild() }
