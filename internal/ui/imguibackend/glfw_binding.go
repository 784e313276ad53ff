package imguibackend

import (
	"math"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/inkyblackness/imgui-go/v4"
)

// keysDownSize is the length of imgui's KeysDown array
const keysDownSize = 512

var mouseButtons = []glfw.MouseButton{glfw.MouseButton1, glfw.MouseButton2, glfw.MouseButton3}

var keyMap = map[int]glfw.Key{
	imgui.KeyTab:        glfw.KeyTab,
	imgui.KeyLeftArrow:  glfw.KeyLeft,
	imgui.KeyRightArrow: glfw.KeyRight,
	imgui.KeyUpArrow:    glfw.KeyUp,
	imgui.KeyDownArrow:  glfw.KeyDown,
	imgui.KeyPageUp:     glfw.KeyPageUp,
	imgui.KeyPageDown:   glfw.KeyPageDown,
	imgui.KeyHome:       glfw.KeyHome,
	imgui.KeyEnd:        glfw.KeyEnd,
	imgui.KeyInsert:     glfw.KeyInsert,
	imgui.KeyDelete:     glfw.KeyDelete,
	imgui.KeyBackspace:  glfw.KeyBackspace,
	imgui.KeySpace:      glfw.KeySpace,
	imgui.KeyEnter:      glfw.KeyEnter,
	imgui.KeyEscape:     glfw.KeyEscape,
	imgui.KeyA:          glfw.KeyA,
	imgui.KeyC:          glfw.KeyC,
	imgui.KeyV:          glfw.KeyV,
	imgui.KeyX:          glfw.KeyX,
	imgui.KeyY:          glfw.KeyY,
	imgui.KeyZ:          glfw.KeyZ,
}

// windowBinding feeds GLFW input into imgui
type windowBinding struct {
	io     imgui.IO
	window *glfw.Window

	time             float64
	mouseJustPressed [3]bool
}

func newWindowBinding(io imgui.IO, window *glfw.Window) *windowBinding {
	b := &windowBinding{io: io, window: window}

	for imguiKey, nativeKey := range keyMap {
		io.KeyMap(imguiKey, int(nativeKey))
	}
	io.SetClipboard(clipboard{window: window})

	window.SetMouseButtonCallback(b.mouseButtonChange)
	window.SetScrollCallback(b.mouseScrollChange)
	window.SetKeyCallback(b.keyChange)
	window.SetCharCallback(b.charChange)
	return b
}

func (b *windowBinding) NewFrame() {
	width, height := b.window.GetSize()
	b.io.SetDisplaySize(imgui.Vec2{X: float32(width), Y: float32(height)})

	now := glfw.GetTime()
	if b.time > 0 {
		b.io.SetDeltaTime(float32(now - b.time))
	}
	b.time = now

	if b.window.GetAttrib(glfw.Focused) != 0 {
		x, y := b.window.GetCursorPos()
		b.io.SetMousePosition(imgui.Vec2{X: float32(x), Y: float32(y)})
	} else {
		b.io.SetMousePosition(imgui.Vec2{X: -math.MaxFloat32, Y: -math.MaxFloat32})
	}

	// A press and release inside one frame still has to register as a click.
	for i, button := range mouseButtons {
		down := b.mouseJustPressed[i] || b.window.GetMouseButton(button) == glfw.Press
		b.io.SetMouseButtonDown(i, down)
		b.mouseJustPressed[i] = false
	}
}

func (b *windowBinding) Shutdown() {
	b.window.SetMouseButtonCallback(nil)
	b.window.SetScrollCallback(nil)
	b.window.SetKeyCallback(nil)
	b.window.SetCharCallback(nil)
}

func (b *windowBinding) mouseButtonChange(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	if action != glfw.Press {
		return
	}
	for i, known := range mouseButtons {
		if known == button {
			b.mouseJustPressed[i] = true
		}
	}
}

func (b *windowBinding) mouseScrollChange(_ *glfw.Window, x, y float64) {
	b.io.AddMouseWheelDelta(float32(x), float32(y))
}

// trackedKey reports whether key indexes into KeysDown. GLFW sends
// KeyUnknown (-1) for keys it has no mapping for.
func trackedKey(key glfw.Key) bool {
	return key >= 0 && int(key) < keysDownSize
}

func (b *windowBinding) keyChange(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if !trackedKey(key) {
		return
	}

	switch action {
	case glfw.Press:
		b.io.KeyPress(int(key))
	case glfw.Release:
		b.io.KeyRelease(int(key))
	}

	b.io.KeyCtrl(int(glfw.KeyLeftControl), int(glfw.KeyRightControl))
	b.io.KeyShift(int(glfw.KeyLeftShift), int(glfw.KeyRightShift))
	b.io.KeyAlt(int(glfw.KeyLeftAlt), int(glfw.KeyRightAlt))
	b.io.KeySuper(int(glfw.KeyLeftSuper), int(glfw.KeyRightSuper))
}

func (b *windowBinding) charChange(_ *glfw.Window, char rune) {
	b.io.AddInputCharacters(string(char))
}

type clipboard struct {
	window *glfw.Window
}

func (c clipboard) Text() (string, error) {
	return c.window.GetClipboardString(), nil
}

func (c clipboard) SetText(text string) {
	c.window.SetClipboardString(text)
}
