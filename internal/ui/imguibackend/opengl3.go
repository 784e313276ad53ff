package imguibackend

import (
	"fmt"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/inkyblackness/imgui-go/v4"

	"noteplus/internal/logger"
	"noteplus/internal/ui"
)

const vertexShader = `
uniform mat4 ProjMtx;
in vec2 Position;
in vec2 UV;
in vec4 Color;
out vec2 Frag_UV;
out vec4 Frag_Color;
void main()
{
	Frag_UV = UV;
	Frag_Color = Color;
	gl_Position = ProjMtx * vec4(Position.xy, 0, 1);
}
`

const fragmentShader = `
uniform sampler2D Texture;
in vec2 Frag_UV;
in vec4 Frag_Color;
out vec4 Out_Color;
void main()
{
	Out_Color = vec4(Frag_Color.rgb, Frag_Color.a * texture(Texture, Frag_UV.st).r);
}
`

// renderer draws imgui draw data with OpenGL 3.2 core. Device objects are
// created on the first NewFrame, once a context is current.
type renderer struct {
	io          imgui.IO
	glslVersion string
	logger      logger.Logger

	ready          bool
	fontTexture    uint32
	shaderHandle   uint32
	vertHandle     uint32
	fragHandle     uint32
	attribTexture  int32
	attribProjMtx  int32
	attribPosition int32
	attribUV       int32
	attribColor    int32
	vboHandle      uint32
	elementsHandle uint32
	vaoHandle      uint32
}

func newRenderer(io imgui.IO, glslVersion string, log logger.Logger) (*renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("%w: %v", ui.ErrGraphics, err)
	}

	log.Debug("OpenGL", "loader initialized", map[string]interface{}{
		"version": gl.GoStr(gl.GetString(gl.VERSION)),
		"glsl":    glslVersion,
	})

	return &renderer{io: io, glslVersion: glslVersion, logger: log}, nil
}

func (r *renderer) NewFrame() {
	if r.ready {
		return
	}
	r.createDeviceObjects()
	r.ready = true
}

func (r *renderer) Clear(viewport ui.Size, color ui.Color) {
	gl.Viewport(0, 0, int32(viewport.Width), int32(viewport.Height))
	gl.ClearColor(color.R, color.G, color.B, color.A)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (r *renderer) RenderDrawData(data ui.DrawData, display, framebuffer ui.Size) {
	dd, ok := data.(drawData)
	if !ok || !dd.Valid() {
		return
	}
	if display.Width <= 0 || display.Height <= 0 || framebuffer.Width <= 0 || framebuffer.Height <= 0 {
		return
	}

	displayWidth, displayHeight := float32(display.Width), float32(display.Height)
	fbWidth, fbHeight := float32(framebuffer.Width), float32(framebuffer.Height)
	dd.ScaleClipRects(imgui.Vec2{X: fbWidth / displayWidth, Y: fbHeight / displayHeight})

	gl.Enable(gl.BLEND)
	gl.BlendEquation(gl.FUNC_ADD)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.SCISSOR_TEST)
	gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))

	orthoProjection := [4][4]float32{
		{2.0 / displayWidth, 0.0, 0.0, 0.0},
		{0.0, 2.0 / -displayHeight, 0.0, 0.0},
		{0.0, 0.0, -1.0, 0.0},
		{-1.0, 1.0, 0.0, 1.0},
	}
	gl.UseProgram(r.shaderHandle)
	gl.Uniform1i(r.attribTexture, 0)
	gl.UniformMatrix4fv(r.attribProjMtx, 1, false, &orthoProjection[0][0])

	gl.BindVertexArray(r.vaoHandle)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vboHandle)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.elementsHandle)
	gl.ActiveTexture(gl.TEXTURE0)

	indexSize := imgui.IndexBufferLayout()
	indexType := uint32(gl.UNSIGNED_SHORT)
	if indexSize == 4 {
		indexType = gl.UNSIGNED_INT
	}

	for _, list := range dd.CommandLists() {
		vertexBuffer, vertexBufferSize := list.VertexBuffer()
		gl.BufferData(gl.ARRAY_BUFFER, vertexBufferSize, vertexBuffer, gl.STREAM_DRAW)

		indexBuffer, indexBufferSize := list.IndexBuffer()
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, indexBufferSize, indexBuffer, gl.STREAM_DRAW)

		indexOffset := 0
		for _, cmd := range list.Commands() {
			count := cmd.ElementCount()
			if cmd.HasUserCallback() {
				cmd.CallUserCallback(list)
			} else if clip := cmd.ClipRect(); clip.Z > clip.X && clip.W > clip.Y {
				gl.BindTexture(gl.TEXTURE_2D, uint32(cmd.TextureID()))
				gl.Scissor(int32(clip.X), int32(fbHeight)-int32(clip.W), int32(clip.Z-clip.X), int32(clip.W-clip.Y))
				gl.DrawElements(gl.TRIANGLES, int32(count), indexType, gl.PtrOffset(indexOffset))
			}
			indexOffset += count * indexSize
		}
	}

	// Leave scissoring off so the next frame's clear covers the whole buffer.
	gl.Disable(gl.SCISSOR_TEST)
	gl.BindVertexArray(0)

	if code := gl.GetError(); code != gl.NO_ERROR {
		r.logger.Debug("OpenGL", "error after draw", map[string]interface{}{
			"code": fmt.Sprintf("0x%04x", code),
		})
	}
}

func (r *renderer) Shutdown() {
	r.destroyDeviceObjects()
}

func (r *renderer) createDeviceObjects() {
	var lastTexture, lastArrayBuffer, lastVertexArray int32
	gl.GetIntegerv(gl.TEXTURE_BINDING_2D, &lastTexture)
	gl.GetIntegerv(gl.ARRAY_BUFFER_BINDING, &lastArrayBuffer)
	gl.GetIntegerv(gl.VERTEX_ARRAY_BINDING, &lastVertexArray)

	r.shaderHandle = gl.CreateProgram()
	r.vertHandle = r.compile(gl.VERTEX_SHADER, vertexShader)
	r.fragHandle = r.compile(gl.FRAGMENT_SHADER, fragmentShader)
	gl.AttachShader(r.shaderHandle, r.vertHandle)
	gl.AttachShader(r.shaderHandle, r.fragHandle)
	gl.LinkProgram(r.shaderHandle)

	var status int32
	gl.GetProgramiv(r.shaderHandle, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		r.logger.Warning("OpenGL", "shader program failed to link", nil)
	}

	r.attribTexture = gl.GetUniformLocation(r.shaderHandle, gl.Str("Texture\x00"))
	r.attribProjMtx = gl.GetUniformLocation(r.shaderHandle, gl.Str("ProjMtx\x00"))
	r.attribPosition = gl.GetAttribLocation(r.shaderHandle, gl.Str("Position\x00"))
	r.attribUV = gl.GetAttribLocation(r.shaderHandle, gl.Str("UV\x00"))
	r.attribColor = gl.GetAttribLocation(r.shaderHandle, gl.Str("Color\x00"))

	gl.GenBuffers(1, &r.vboHandle)
	gl.GenBuffers(1, &r.elementsHandle)
	gl.GenVertexArrays(1, &r.vaoHandle)

	gl.BindVertexArray(r.vaoHandle)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vboHandle)
	gl.EnableVertexAttribArray(uint32(r.attribPosition))
	gl.EnableVertexAttribArray(uint32(r.attribUV))
	gl.EnableVertexAttribArray(uint32(r.attribColor))

	vertexSize, vertexOffsetPos, vertexOffsetUv, vertexOffsetCol := imgui.VertexBufferLayout()
	gl.VertexAttribPointer(uint32(r.attribPosition), 2, gl.FLOAT, false, int32(vertexSize), gl.PtrOffset(vertexOffsetPos))
	gl.VertexAttribPointer(uint32(r.attribUV), 2, gl.FLOAT, false, int32(vertexSize), gl.PtrOffset(vertexOffsetUv))
	gl.VertexAttribPointer(uint32(r.attribColor), 4, gl.UNSIGNED_BYTE, true, int32(vertexSize), gl.PtrOffset(vertexOffsetCol))

	r.createFontsTexture()

	gl.BindTexture(gl.TEXTURE_2D, uint32(lastTexture))
	gl.BindBuffer(gl.ARRAY_BUFFER, uint32(lastArrayBuffer))
	gl.BindVertexArray(uint32(lastVertexArray))
}

func (r *renderer) compile(kind uint32, body string) uint32 {
	handle := gl.CreateShader(kind)
	source, free := gl.Strs(r.glslVersion + "\n" + body + "\x00")
	gl.ShaderSource(handle, 1, source, nil)
	free()
	gl.CompileShader(handle)

	var status int32
	gl.GetShaderiv(handle, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		r.logger.Warning("OpenGL", "shader failed to compile", map[string]interface{}{
			"kind": kind,
		})
	}
	return handle
}

func (r *renderer) createFontsTexture() {
	image := r.io.Fonts().TextureDataAlpha8()

	gl.GenTextures(1, &r.fontTexture)
	gl.BindTexture(gl.TEXTURE_2D, r.fontTexture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RED, int32(image.Width), int32(image.Height),
		0, gl.RED, gl.UNSIGNED_BYTE, image.Pixels)

	r.io.Fonts().SetTextureID(imgui.TextureID(r.fontTexture))
}

func (r *renderer) destroyDeviceObjects() {
	if !r.ready {
		return
	}

	gl.DeleteVertexArrays(1, &r.vaoHandle)
	gl.DeleteBuffers(1, &r.vboHandle)
	gl.DeleteBuffers(1, &r.elementsHandle)

	gl.DetachShader(r.shaderHandle, r.vertHandle)
	gl.DeleteShader(r.vertHandle)
	gl.DetachShader(r.shaderHandle, r.fragHandle)
	gl.DeleteShader(r.fragHandle)
	gl.DeleteProgram(r.shaderHandle)

	gl.DeleteTextures(1, &r.fontTexture)
	r.io.Fonts().SetTextureID(0)

	r.ready = false
}
