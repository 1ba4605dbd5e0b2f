package meshing

import (
	"mini-voxel/internal/world"
)

// Collider is an untextured triangle mesh in world space, suitable for a
// fixed-body trimesh in a physics backend.
type Collider struct {
	Vertices  [][3]float32
	Triangles [][3]uint32
}

// BuildChunkCollider derives the chunk's collision surface. It reuses the
// render mesher's pass verbatim and only moves the vertices into world
// space, so the collision surface and the rendered surface cannot diverge.
// Returns nil for chunks with no solid voxels.
func BuildChunkCollider(c *world.Chunk) *Collider {
	g := BuildChunkMesh(c)
	if g == nil {
		return nil
	}
	return ColliderFromGeometry(g, c)
}

// ColliderFromGeometry converts already-built chunk-local geometry into a
// world-space collider. Callers that mesh a dirty chunk once per tick use
// this to feed both consumers from a single pass.
func ColliderFromGeometry(g *Geometry, c *world.Chunk) *Collider {
	if g == nil {
		return nil
	}
	origin := c.Origin()

	verts := make([][3]float32, len(g.Positions))
	for i, p := range g.Positions {
		verts[i] = [3]float32{
			p[0] + origin.X(),
			p[1] + origin.Y(),
			p[2] + origin.Z(),
		}
	}

	tris := make([][3]uint32, 0, len(g.Indices)/3)
	for i := 0; i+2 < len(g.Indices); i += 3 {
		tris = append(tris, [3]uint32{g.Indices[i], g.Indices[i+1], g.Indices[i+2]})
	}

	return &Collider{Vertices: verts, Triangles: tris}
}
