// Package meshing derives renderable and collidable geometry from chunk
// voxel data. Both consumers run the same face-culled pass over the same
// face table, so the surface the renderer draws and the surface physics
// collides with are congruent by construction.
package meshing

import (
	"github.com/go-gl/mathgl/mgl32"

	"mini-voxel/internal/voxel"
	"mini-voxel/internal/world"
)

// VertexStride is the number of float32 per interleaved vertex
// (position.xyz + normal.xyz + uv).
const VertexStride = 8

// Geometry is a triangle list with parallel per-vertex attribute arrays.
// Positions are chunk-local; the chunk origin is applied by the consumer's
// model transform (renderer) or baked in (collider).
type Geometry struct {
	Positions [][3]float32
	Normals   [][3]float32
	UVs       [][2]float32
	Indices   []uint32
}

// FaceCount returns the number of emitted quads.
func (g *Geometry) FaceCount() int {
	return len(g.Positions) / 4
}

// Interleaved flattens the geometry into position+normal+uv vertex records
// for GPU upload.
func (g *Geometry) Interleaved() []float32 {
	out := make([]float32, 0, len(g.Positions)*VertexStride)
	for i, p := range g.Positions {
		n := g.Normals[i]
		uv := g.UVs[i]
		out = append(out, p[0], p[1], p[2], n[0], n[1], n[2], uv[0], uv[1])
	}
	return out
}

// BuildChunkMesh walks the chunk's voxels and emits one quad per visible
// face: a face is visible when the neighbor cell behind it is outside the
// chunk or not solid. No face is ever emitted between two solid voxels.
// Returns nil when the chunk holds no solid voxel at all, so empty chunks
// cost no buffers.
func BuildChunkMesh(c *world.Chunk) *Geometry {
	g := &Geometry{}

	for x := 0; x < world.VoxelsX; x++ {
		for y := 0; y < world.VoxelsY; y++ {
			for z := 0; z < world.VoxelsZ; z++ {
				if !c.IsSolid(x, y, z) {
					continue
				}
				min := mgl32.Vec3{
					float32(x) * voxel.Size,
					float32(y) * voxel.Size,
					float32(z) * voxel.Size,
				}
				for _, f := range voxel.Faces {
					dx, dy, dz := f.Offset()
					if c.IsSolid(x+dx, y+dy, z+dz) {
						continue
					}
					emitFace(g, f, min)
				}
			}
		}
	}

	if len(g.Positions) == 0 {
		return nil
	}
	return g
}

// emitFace appends the quad for one face: 4 vertices from the shared face
// table and 2 CCW triangles (0-1-2, 0-2-3).
func emitFace(g *Geometry, f voxel.Face, min mgl32.Vec3) {
	base := uint32(len(g.Positions))
	corners := f.Corners(min, voxel.Size)
	n := f.Normal()
	uvs := f.UVs()

	for i := 0; i < 4; i++ {
		g.Positions = append(g.Positions, corners[i])
		g.Normals = append(g.Normals, [3]float32{n.X(), n.Y(), n.Z()})
		g.UVs = append(g.UVs, uvs[i])
	}
	g.Indices = append(g.Indices,
		base, base+1, base+2,
		base, base+2, base+3,
	)
}
