// Package chunks draws chunk geometry. It implements game.GeometrySink, so
// the session pushes mesh updates here and the render pass only ever draws
// buffers that are already resident.
package chunks

import (
	"path/filepath"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"mini-voxel/internal/graphics"
	renderer "mini-voxel/internal/graphics/renderer"
	"mini-voxel/internal/meshing"
	"mini-voxel/internal/profiling"
	"mini-voxel/internal/world"
)

const ShadersDir = "assets/shaders/chunks"

var (
	MainVertShader = filepath.Join(ShadersDir, "main.vert")
	MainFragShader = filepath.Join(ShadersDir, "main.frag")
)

type chunkMesh struct {
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
	origin     mgl32.Vec3
}

func (m *chunkMesh) dispose() {
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
	}
	if m.ebo != 0 {
		gl.DeleteBuffers(1, &m.ebo)
	}
}

// Chunks renders all uploaded chunk meshes.
type Chunks struct {
	shader *graphics.Shader
	meshes map[world.ChunkCoord]*chunkMesh
}

func NewChunks() *Chunks {
	return &Chunks{meshes: make(map[world.ChunkCoord]*chunkMesh)}
}

// Init compiles the chunk shader.
func (c *Chunks) Init() error {
	var err error
	c.shader, err = graphics.NewShader(MainVertShader, MainFragShader)
	if err != nil {
		return err
	}

	c.shader.Use()
	c.shader.SetVec3("lightDir", mgl32.Vec3{0.5, 1.0, 0.3}.Normalize())
	return nil
}

// UploadChunk replaces the GPU buffers for one chunk with fresh geometry.
func (c *Chunks) UploadChunk(coord world.ChunkCoord, g *meshing.Geometry, origin mgl32.Vec3) {
	defer profiling.Track("renderer.uploadChunk")()

	if old, ok := c.meshes[coord]; ok {
		old.dispose()
	}

	m := &chunkMesh{origin: origin, indexCount: int32(len(g.Indices))}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	vertices := g.Interleaved()
	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(g.Indices)*4, gl.Ptr(g.Indices), gl.STATIC_DRAW)

	stride := int32(meshing.VertexStride * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, stride, 6*4)

	c.meshes[coord] = m
}

// DropChunk releases the GPU buffers for an evicted or emptied chunk.
func (c *Chunks) DropChunk(coord world.ChunkCoord) {
	if m, ok := c.meshes[coord]; ok {
		m.dispose()
		delete(c.meshes, coord)
	}
}

// Render draws every resident chunk mesh.
func (c *Chunks) Render(ctx renderer.RenderContext) {
	defer profiling.Track("renderer.renderChunks")()

	c.shader.Use()
	c.shader.SetMat4("proj", ctx.Proj)
	c.shader.SetMat4("view", ctx.View)

	for _, m := range c.meshes {
		model := mgl32.Translate3D(m.origin.X(), m.origin.Y(), m.origin.Z())
		c.shader.SetMat4("model", model)
		gl.BindVertexArray(m.vao)
		gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, nil)
	}
}

// Dispose releases all GPU resources.
func (c *Chunks) Dispose() {
	for coord, m := range c.meshes {
		m.dispose()
		delete(c.meshes, coord)
	}
	if c.shader != nil {
		c.shader.Dispose()
	}
}

// SetViewport is part of the Renderable interface; chunk rendering has no
// viewport-dependent state.
func (c *Chunks) SetViewport(width, height int) {}

// MeshCount returns the number of resident chunk meshes.
func (c *Chunks) MeshCount() int {
	return len(c.meshes)
}
