// Package game wires the voxel core into one cooperative per-tick
// sequence: stream chunks, regenerate stale geometry, publish it.
package game

import (
	"github.com/go-gl/mathgl/mgl32"

	"mini-voxel/internal/config"
	"mini-voxel/internal/meshing"
	"mini-voxel/internal/profiling"
	"mini-voxel/internal/world"
)

// GeometrySink receives published chunk geometry. The renderer implements
// it to (re)upload GPU buffers; a physics backend would implement it to
// swap collision bodies.
type GeometrySink interface {
	// UploadChunk publishes freshly built geometry for a chunk. origin is
	// the chunk's world-space minimum corner (the model translation).
	UploadChunk(coord world.ChunkCoord, g *meshing.Geometry, origin mgl32.Vec3)
	// DropChunk retires a chunk's geometry (evicted, or now empty).
	DropChunk(coord world.ChunkCoord)
}

// Session owns the world and runs the tick sequence. Within one tick the
// chunk index has a single owner; consumers only ever see the geometry
// published at the end of the meshing pass, never a chunk whose voxels and
// geometry disagree.
type Session struct {
	World *world.World

	sink      GeometrySink
	colliders map[world.ChunkCoord]*meshing.Collider
	meshed    map[world.ChunkCoord]bool
}

// NewSession builds a session around a generated world using the
// configured streaming radii.
func NewSession(gen world.TerrainGenerator, sink GeometrySink) *Session {
	s := &Session{
		World:     world.New(gen, config.GetLoadRadius(), config.GetEvictRadius()),
		sink:      sink,
		colliders: make(map[world.ChunkCoord]*meshing.Collider),
		meshed:    make(map[world.ChunkCoord]bool),
	}
	s.World.SetListener(s.onChunkEvent)
	return s
}

func (s *Session) onChunkEvent(coord world.ChunkCoord, ev world.ChunkEvent) {
	if ev == world.ChunkEvicted {
		delete(s.colliders, coord)
		delete(s.meshed, coord)
		if s.sink != nil {
			s.sink.DropChunk(coord)
		}
	}
	// Loaded chunks are picked up by the next meshing pass; they are not
	// published here because their geometry does not exist yet.
}

// Tick runs one full update against the viewer's position: streaming
// first, then one meshing pass over every new or dirty chunk. Render and
// collision geometry are rebuilt together, in the same pass, before the
// dirty flag clears, so no consumer can observe one without the other.
func (s *Session) Tick(viewerPos mgl32.Vec3) {
	func() {
		defer profiling.Track("world.Update")()
		s.World.Update(viewerPos)
	}()

	defer profiling.Track("meshing.Regenerate")()
	s.World.EachChunk(func(c *world.Chunk) {
		if s.meshed[c.Coord] && !c.Dirty() {
			return
		}
		g := meshing.BuildChunkMesh(c)
		if g == nil {
			delete(s.colliders, c.Coord)
			if s.sink != nil {
				s.sink.DropChunk(c.Coord)
			}
		} else {
			s.colliders[c.Coord] = meshing.ColliderFromGeometry(g, c)
			if s.sink != nil {
				s.sink.UploadChunk(c.Coord, g, c.Origin())
			}
		}
		c.ClearDirty()
		s.meshed[c.Coord] = true
	})
}

// ColliderAt returns the current collision mesh for a chunk, if it has one.
func (s *Session) ColliderAt(coord world.ChunkCoord) (*meshing.Collider, bool) {
	col, ok := s.colliders[coord]
	return col, ok
}

// ColliderCount returns how many chunks currently have collision geometry.
func (s *Session) ColliderCount() int {
	return len(s.colliders)
}
