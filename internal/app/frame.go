package app

import (
	"noteplus/internal/command"
	"noteplus/internal/debug/timing"
	"noteplus/internal/ui"
)

type sidebarEntry struct {
	icon   string
	label  string
	action command.Action
}

var sidebarEntries = []sidebarEntry{
	{icon: "📂", label: "Open File", action: command.OpenFile},
	{icon: "⚙️", label: "Settings", action: command.Settings},
	{icon: "❌", label: "Exit", action: command.Exit},
}

const sidebarButtonHeight = 40

// RenderFrame draws one frame. It returns false once the window's close
// flag is set, without declaring anything.
func (r *Running) RenderFrame() bool {
	if r.terminated || r.window.ShouldClose() {
		return false
	}

	defer r.endFrame(r.frames.StartTiming(frameOperation))

	r.window.PollEvents()
	r.renderer.NewFrame()
	r.input.NewFrame()
	r.context.NewFrame()

	w := r.context.Widgets()
	r.drawRibbon(w)
	r.drawMainArea(w)

	data := r.context.Render()
	r.resize(r.window.FramebufferSize())
	r.renderer.Clear(r.state.Viewport, r.config.ClearColor)

	displayWidth, displayHeight := r.window.Size()
	r.renderer.RenderDrawData(data, ui.Size{Width: displayWidth, Height: displayHeight}, r.state.Viewport)
	r.window.SwapBuffers()
	return true
}

func (r *Running) endFrame(span timing.Span) {
	stats := r.frames.EndTiming(span)
	if r.config.SlowFrame > 0 && stats.Last > r.config.SlowFrame {
		r.logger.Warning("Shell", "slow frame", map[string]interface{}{
			"frame":    stats.Count,
			"duration": stats.Last.String(),
		})
	}
}

func (r *Running) button(w ui.Widgets, label string, size ui.Vec2, action command.Action) {
	if w.Button(label, size) {
		r.registry.Dispatch(action)
	}
}

func (r *Running) drawRibbon(w ui.Widgets) {
	width := float32(r.state.Viewport.Width)

	if w.BeginPanel("Ribbon", ui.Vec2{}, ui.Vec2{X: width, Y: r.config.RibbonHeight}, ui.PanelFixed) {
		if w.BeginTabBar("RibbonTabs") {
			if w.BeginTabItem("Home") {
				w.Spacing()
				r.button(w, "Toggle Sidebar", ui.Vec2{}, command.ToggleSidebar)
				for _, b := range []struct {
					label  string
					action command.Action
				}{{"Paste", command.Paste}, {"Cut", command.Cut}, {"Copy", command.Copy}} {
					w.SameLine()
					r.button(w, b.label, ui.Vec2{X: 60, Y: 40}, b.action)
				}
				w.EndTabItem()
			}

			if w.BeginTabItem("Insert") {
				w.Text("Insert Options")
				r.button(w, "Picture", ui.Vec2{X: 100, Y: 50}, command.InsertPicture)
				w.SameLine()
				r.button(w, "Table", ui.Vec2{X: 100, Y: 50}, command.InsertTable)
				w.EndTabItem()
			}
			w.EndTabBar()
		}
	}
	w.EndPanel()
}

func (r *Running) drawMainArea(w ui.Widgets) {
	width := float32(r.state.Viewport.Width)
	height := max(float32(r.state.Viewport.Height)-r.config.RibbonHeight, 0)

	if w.BeginPanel("MainArea", ui.Vec2{Y: r.config.RibbonHeight}, ui.Vec2{X: width, Y: height}, ui.PanelFixed) {
		// Read once: the sidebar's own buttons may flip visibility mid-frame.
		split := r.state.SidebarVisible
		if split {
			w.Columns(2, "MainColumns")
			w.SetColumnWidth(0, r.sidebarWidth())
			r.drawSidebar(w)
			w.NextColumn()
		}

		if w.BeginChild("MainContent", ui.Vec2{}, false) {
			w.Text("Welcome to Noteplus - Document Editor")
			w.Text("Edit your content here.")
		}
		w.EndChild()

		if split {
			w.Columns(1, "")
		}
	}
	w.EndPanel()
}

func (r *Running) sidebarWidth() float32 {
	if r.state.SidebarExpanded {
		return r.config.SidebarWidth
	}
	return r.config.SlimSidebarWidth
}

func (r *Running) drawSidebar(w ui.Widgets) {
	if w.BeginChild("Sidebar", ui.Vec2{}, true) {
		w.Text("Sidebar")
		w.Separator()

		toggle := ">>"
		if r.state.SidebarExpanded {
			toggle = "<<"
		}
		r.button(w, toggle, ui.Vec2{X: ui.FillWidth}, command.ToggleSidebarWidth)
		w.Separator()

		for _, entry := range sidebarEntries {
			label := entry.icon
			if r.state.SidebarExpanded {
				label = entry.icon + " " + entry.label
			}
			r.button(w, label, ui.Vec2{X: ui.FillWidth, Y: sidebarButtonHeight}, entry.action)
		}
	}
	w.EndChild()
}
