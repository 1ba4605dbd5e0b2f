// Package highlight outlines the voxel under the crosshair.
package highlight

import (
	"path/filepath"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"mini-voxel/internal/graphics"
	renderer "mini-voxel/internal/graphics/renderer"
	"mini-voxel/internal/physics"
	"mini-voxel/internal/profiling"
	"mini-voxel/internal/voxel"
)

const ShadersDir = "assets/shaders/highlight"

var (
	WireframeVertShader = filepath.Join(ShadersDir, "wireframe.vert")
	WireframeFragShader = filepath.Join(ShadersDir, "wireframe.frag")
)

// Highlight draws a wireframe cube around the hovered voxel.
type Highlight struct {
	shader *graphics.Shader
	vao    uint32
	vbo    uint32
}

func NewHighlight() *Highlight {
	return &Highlight{}
}

func (h *Highlight) Init() error {
	var err error
	h.shader, err = graphics.NewShader(WireframeVertShader, WireframeFragShader)
	if err != nil {
		return err
	}

	h.setupWireframeVAO()
	return nil
}

func (h *Highlight) Render(ctx renderer.RenderContext) {
	if !ctx.Player.HasHoveredVoxel {
		return
	}
	defer profiling.Track("renderer.renderHighlight")()
	h.renderHoveredVoxel(ctx.Player.HoveredVoxel, ctx.View, ctx.Proj)
}

func (h *Highlight) Dispose() {
	if h.vao != 0 {
		gl.DeleteVertexArrays(1, &h.vao)
	}
	if h.vbo != 0 {
		gl.DeleteBuffers(1, &h.vbo)
	}
	if h.shader != nil {
		h.shader.Dispose()
	}
}

// SetViewport is part of the Renderable interface; nothing to do here.
func (h *Highlight) SetViewport(width, height int) {}

func (h *Highlight) setupWireframeVAO() {
	gl.GenVertexArrays(1, &h.vao)
	gl.BindVertexArray(h.vao)

	gl.GenBuffers(1, &h.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, h.vbo)

	// Unit cube edges, centered on the origin.
	vertices := []float32{
		// Front face
		-0.5, -0.5, 0.5, 0.5, -0.5, 0.5,
		0.5, -0.5, 0.5, 0.5, 0.5, 0.5,
		0.5, 0.5, 0.5, -0.5, 0.5, 0.5,
		-0.5, 0.5, 0.5, -0.5, -0.5, 0.5,

		// Back face
		-0.5, -0.5, -0.5, 0.5, -0.5, -0.5,
		0.5, -0.5, -0.5, 0.5, 0.5, -0.5,
		0.5, 0.5, -0.5, -0.5, 0.5, -0.5,
		-0.5, 0.5, -0.5, -0.5, -0.5, -0.5,

		// Connecting edges
		-0.5, -0.5, 0.5, -0.5, -0.5, -0.5,
		0.5, -0.5, 0.5, 0.5, -0.5, -0.5,
		0.5, 0.5, 0.5, 0.5, 0.5, -0.5,
		-0.5, 0.5, 0.5, -0.5, 0.5, -0.5,
	}

	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
}

func (h *Highlight) renderHoveredVoxel(cell [3]int, view, projection mgl32.Mat4) {
	h.shader.Use()
	h.shader.SetMat4("proj", projection)
	h.shader.SetMat4("view", view)

	center := physics.CellCenter(cell)
	model := mgl32.Translate3D(center.X(), center.Y(), center.Z()).
		Mul4(mgl32.Scale3D(voxel.Size*1.01, voxel.Size*1.01, voxel.Size*1.01))

	h.shader.SetMat4("model", model)
	h.shader.SetVec3("color", mgl32.Vec3{0, 0, 0})

	gl.BindVertexArray(h.vao)
	gl.LineWidth(1.0)
	gl.DrawArrays(gl.LINES, 0, 24)
}
