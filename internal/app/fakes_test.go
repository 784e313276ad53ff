package app

import (
	"noteplus/internal/platform"
	"noteplus/internal/ui"
)

// journal records collaborator calls in the order they happen
type journal struct {
	calls []string
}

func (j *journal) add(call string) { j.calls = append(j.calls, call) }

func (j *journal) since(mark int) []string {
	out := make([]string, len(j.calls)-mark)
	copy(out, j.calls[mark:])
	return out
}

type fakePlatform struct {
	j         *journal
	initErr   error
	createErr error
	window    *fakeWindow
	config    platform.WindowConfig
}

func (p *fakePlatform) Init() error {
	p.j.add("platform.init")
	return p.initErr
}

func (p *fakePlatform) CreateWindow(cfg platform.WindowConfig) (platform.Window, error) {
	p.j.add("platform.create_window")
	if p.createErr != nil {
		return nil, p.createErr
	}
	p.config = cfg
	p.window = &fakeWindow{j: p.j, width: cfg.Width, height: cfg.Height}
	return p.window, nil
}

func (p *fakePlatform) Terminate() { p.j.add("platform.terminate") }

type fakeWindow struct {
	j           *journal
	resize      func(width, height int)
	shouldClose bool
	width       int
	height      int
}

func (w *fakeWindow) MakeContextCurrent()                 { w.j.add("window.make_current") }
func (w *fakeWindow) SetResizeCallback(fn func(int, int)) { w.resize = fn }
func (w *fakeWindow) ShouldClose() bool                   { return w.shouldClose }
func (w *fakeWindow) SetShouldClose(value bool)           { w.shouldClose = value }
func (w *fakeWindow) PollEvents()                         { w.j.add("window.poll") }
func (w *fakeWindow) SwapBuffers()                        { w.j.add("window.swap") }
func (w *fakeWindow) FramebufferSize() (int, int)         { return w.width, w.height }
func (w *fakeWindow) Size() (int, int)                    { return w.width, w.height }
func (w *fakeWindow) Destroy()                            { w.j.add("window.destroy") }

// simulateResize behaves like the OS resizing the window
func (w *fakeWindow) simulateResize(width, height int) {
	w.width, w.height = width, height
	w.resize(width, height)
}

type fakeToolkit struct {
	j               *journal
	createErr       error
	bindWindowErr   error
	bindRendererErr error
	context         *fakeContext
}

func (t *fakeToolkit) CreateContext() (ui.Context, error) {
	t.j.add("ui.create_context")
	if t.createErr != nil {
		return nil, t.createErr
	}
	t.context = &fakeContext{
		j:        t.j,
		toolkit:  t,
		widgets:  newFakeWidgets(),
		renderer: &fakeRenderer{j: t.j},
	}
	return t.context, nil
}

type fakeContext struct {
	j        *journal
	toolkit  *fakeToolkit
	widgets  *fakeWidgets
	renderer *fakeRenderer
	glsl     string
}

func (c *fakeContext) BindWindow(platform.Window) (ui.WindowBinding, error) {
	c.j.add("ui.bind_window")
	if c.toolkit.bindWindowErr != nil {
		return nil, c.toolkit.bindWindowErr
	}
	return &fakeInput{j: c.j}, nil
}

func (c *fakeContext) BindRenderer(glslVersion string) (ui.RendererBinding, error) {
	c.j.add("ui.bind_renderer")
	if c.toolkit.bindRendererErr != nil {
		return nil, c.toolkit.bindRendererErr
	}
	c.glsl = glslVersion
	return c.renderer, nil
}

func (c *fakeContext) NewFrame() {
	c.j.add("ui.new_frame")
	c.widgets.reset()
}

func (c *fakeContext) Widgets() ui.Widgets { return c.widgets }

func (c *fakeContext) Render() ui.DrawData {
	c.j.add("ui.render")
	return fakeDrawData{}
}

func (c *fakeContext) Destroy() { c.j.add("ui.destroy_context") }

type fakeDrawData struct{}

func (fakeDrawData) Valid() bool { return true }

type fakeInput struct {
	j *journal
}

func (i *fakeInput) NewFrame() { i.j.add("input.new_frame") }
func (i *fakeInput) Shutdown() { i.j.add("input.shutdown") }

type fakeRenderer struct {
	j           *journal
	viewport    ui.Size
	color       ui.Color
	display     ui.Size
	framebuffer ui.Size
}

func (r *fakeRenderer) NewFrame() { r.j.add("renderer.new_frame") }

func (r *fakeRenderer) Clear(viewport ui.Size, color ui.Color) {
	r.j.add("renderer.clear")
	r.viewport, r.color = viewport, color
}

func (r *fakeRenderer) RenderDrawData(_ ui.DrawData, display, framebuffer ui.Size) {
	r.j.add("renderer.draw")
	r.display, r.framebuffer = display, framebuffer
}

func (r *fakeRenderer) Shutdown() { r.j.add("renderer.shutdown") }

// decl is one widget declaration
type decl struct {
	kind  string
	id    string
	pos   ui.Vec2
	size  ui.Vec2
	width float32
}

// fakeWidgets records declarations. Buttons listed in clicks report a
// click the next time they are declared; only selectedTab is open.
type fakeWidgets struct {
	decls       []decl
	clicks      map[string]bool
	selectedTab string
}

func newFakeWidgets() *fakeWidgets {
	return &fakeWidgets{clicks: make(map[string]bool), selectedTab: "Home"}
}

func (w *fakeWidgets) reset() { w.decls = nil }

func (w *fakeWidgets) click(label string) { w.clicks[label] = true }

func (w *fakeWidgets) add(d decl) { w.decls = append(w.decls, d) }

func (w *fakeWidgets) find(kind, id string) (decl, bool) {
	for _, d := range w.decls {
		if d.kind == kind && d.id == id {
			return d, true
		}
	}
	return decl{}, false
}

func (w *fakeWidgets) has(kind, id string) bool {
	_, ok := w.find(kind, id)
	return ok
}

func (w *fakeWidgets) buttons() []string {
	var out []string
	for _, d := range w.decls {
		if d.kind == "button" {
			out = append(out, d.id)
		}
	}
	return out
}

func (w *fakeWidgets) BeginPanel(id string, pos, size ui.Vec2, _ ui.PanelFlags) bool {
	w.add(decl{kind: "panel", id: id, pos: pos, size: size})
	return true
}

func (w *fakeWidgets) EndPanel() { w.add(decl{kind: "end_panel"}) }

func (w *fakeWidgets) BeginTabBar(id string) bool {
	w.add(decl{kind: "tab_bar", id: id})
	return true
}

func (w *fakeWidgets) EndTabBar() { w.add(decl{kind: "end_tab_bar"}) }

func (w *fakeWidgets) BeginTabItem(label string) bool {
	w.add(decl{kind: "tab", id: label})
	return label == w.selectedTab
}

func (w *fakeWidgets) EndTabItem() { w.add(decl{kind: "end_tab"}) }

func (w *fakeWidgets) Button(label string, size ui.Vec2) bool {
	w.add(decl{kind: "button", id: label, size: size})
	if w.clicks[label] {
		delete(w.clicks, label)
		return true
	}
	return false
}

func (w *fakeWidgets) SameLine()  { w.add(decl{kind: "same_line"}) }
func (w *fakeWidgets) Spacing()   { w.add(decl{kind: "spacing"}) }
func (w *fakeWidgets) Separator() { w.add(decl{kind: "separator"}) }

func (w *fakeWidgets) Text(text string) { w.add(decl{kind: "text", id: text}) }

func (w *fakeWidgets) Columns(count int, id string) {
	w.add(decl{kind: "columns", id: id, width: float32(count)})
}

func (w *fakeWidgets) SetColumnWidth(index int, width float32) {
	w.add(decl{kind: "column_width", width: width})
}

func (w *fakeWidgets) NextColumn() { w.add(decl{kind: "next_column"}) }

func (w *fakeWidgets) BeginChild(id string, size ui.Vec2, _ bool) bool {
	w.add(decl{kind: "child", id: id, size: size})
	return true
}

func (w *fakeWidgets) EndChild() { w.add(decl{kind: "end_child"}) }
