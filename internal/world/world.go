package world

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"mini-voxel/internal/voxel"
)

// ChunkEvent describes a chunk lifecycle transition reported to listeners.
type ChunkEvent int

const (
	// ChunkLoaded fires after a chunk has been generated and published;
	// its voxel data is complete when the listener runs.
	ChunkLoaded ChunkEvent = iota
	// ChunkEvicted fires after a chunk left the index; derived geometry
	// must be dropped.
	ChunkEvicted
)

// ChunkListener observes chunk lifecycle transitions, typically to upload
// or release derived geometry.
type ChunkListener func(coord ChunkCoord, event ChunkEvent)

// World owns the chunk index and the terrain generator. At most one chunk
// exists per coordinate; a coordinate is either absent or maps to exactly
// one live, fully generated chunk. The index is mutated only by the
// per-tick Update/mutation sequence; consumers read published geometry
// snapshots, never the index mid-tick.
type World struct {
	chunks      map[ChunkCoord]*Chunk
	gen         TerrainGenerator
	loadRadius  int
	evictRadius int
	listener    ChunkListener
}

// New creates an empty world. evictRadius is clamped to at least
// loadRadius+1 so the streaming boundary has hysteresis.
func New(gen TerrainGenerator, loadRadius, evictRadius int) *World {
	if loadRadius < 1 {
		loadRadius = 1
	}
	if evictRadius <= loadRadius {
		evictRadius = loadRadius + 1
	}
	return &World{
		chunks:      make(map[ChunkCoord]*Chunk),
		gen:         gen,
		loadRadius:  loadRadius,
		evictRadius: evictRadius,
	}
}

// SetListener installs the chunk lifecycle listener.
func (w *World) SetListener(l ChunkListener) {
	w.listener = l
}

func (w *World) notify(coord ChunkCoord, ev ChunkEvent) {
	if w.listener != nil {
		w.listener(coord, ev)
	}
}

// Update runs one streaming tick against the viewer's position: every
// coordinate within the load radius of the viewer's chunk is loaded, every
// loaded coordinate beyond the evict radius is discarded. Generation is
// synchronous, and a chunk is published into the index only after the
// generator has filled it, so no consumer ever observes a half-generated
// chunk.
func (w *World) Update(viewerPos mgl32.Vec3) {
	center := ChunkCoordAt(viewerPos)

	for x := center.X - w.loadRadius; x <= center.X+w.loadRadius; x++ {
		for z := center.Z - w.loadRadius; z <= center.Z+w.loadRadius; z++ {
			coord := ChunkCoord{X: x, Z: z}
			if _, ok := w.chunks[coord]; ok {
				continue
			}
			c := NewChunk(coord)
			w.gen.Generate(c)
			w.chunks[coord] = c
			w.notify(coord, ChunkLoaded)
		}
	}

	for coord := range w.chunks {
		if coord.Chebyshev(center) > w.evictRadius {
			delete(w.chunks, coord)
			w.notify(coord, ChunkEvicted)
		}
	}
}

// ChunkAt returns the loaded chunk at a coordinate, if any.
func (w *World) ChunkAt(coord ChunkCoord) (*Chunk, bool) {
	c, ok := w.chunks[coord]
	return c, ok
}

// ChunkCount returns the number of loaded chunks.
func (w *World) ChunkCount() int {
	return len(w.chunks)
}

// EachChunk calls fn for every loaded chunk.
func (w *World) EachChunk(fn func(*Chunk)) {
	for _, c := range w.chunks {
		fn(c)
	}
}

// WorldToVoxel resolves a world-space point to its owning chunk and local
// voxel index. It reports false when the chunk is not loaded or the point
// lies outside the chunk's vertical bounds. Every coordinate transform in
// the engine funnels through this and VoxelCenter so the render mesh, the
// collision mesh and the ray caster agree on cell positions exactly.
func (w *World) WorldToVoxel(pos mgl32.Vec3) (ChunkCoord, int, int, int, bool) {
	coord := ChunkCoordAt(pos)
	if _, ok := w.chunks[coord]; !ok {
		return coord, 0, 0, 0, false
	}

	localX := pos.X() - float32(coord.X)*ChunkWorldSize
	localY := pos.Y()
	localZ := pos.Z() - float32(coord.Z)*ChunkWorldSize
	if localX < 0 || localY < 0 || localZ < 0 {
		return coord, 0, 0, 0, false
	}

	vx := int(math.Floor(float64(localX / voxel.Size)))
	vy := int(math.Floor(float64(localY / voxel.Size)))
	vz := int(math.Floor(float64(localZ / voxel.Size)))
	if !inBounds(vx, vy, vz) {
		return coord, 0, 0, 0, false
	}
	return coord, vx, vy, vz, true
}

// VoxelAt returns the voxel containing a world-space point, or false when
// the position maps to no loaded cell.
func (w *World) VoxelAt(pos mgl32.Vec3) (voxel.Voxel, bool) {
	coord, x, y, z, ok := w.WorldToVoxel(pos)
	if !ok {
		return voxel.Voxel{}, false
	}
	return w.chunks[coord].Get(x, y, z)
}

// IsSolidAt reports whether a world-space point lies inside a solid voxel.
// Unloaded space counts as empty.
func (w *World) IsSolidAt(pos mgl32.Vec3) bool {
	v, ok := w.VoxelAt(pos)
	return ok && v.IsSolid()
}

// VoxelCenterAt returns the world-space center of the cell containing pos,
// or false when the position maps to no loaded cell.
func (w *World) VoxelCenterAt(pos mgl32.Vec3) (mgl32.Vec3, bool) {
	coord, x, y, z, ok := w.WorldToVoxel(pos)
	if !ok {
		return mgl32.Vec3{}, false
	}
	return w.chunks[coord].VoxelCenter(x, y, z), true
}

// TypeAtCell returns the voxel type at a global voxel grid cell, crossing
// chunk borders as needed. Unloaded or out-of-range cells are air.
func (w *World) TypeAtCell(ix, iy, iz int) voxel.Type {
	if iy < 0 || iy >= VoxelsY {
		return voxel.Air
	}
	coord := ChunkCoord{X: floorDiv(ix, VoxelsX), Z: floorDiv(iz, VoxelsZ)}
	c, ok := w.chunks[coord]
	if !ok {
		return voxel.Air
	}
	v, ok := c.Get(mod(ix, VoxelsX), iy, mod(iz, VoxelsZ))
	if !ok {
		return voxel.Air
	}
	return v.Type
}

// SetVoxelAt overwrites the voxel containing a world-space point and marks
// the owning chunk's derived geometry stale. It returns false, changing
// nothing, when the position maps to no loaded cell. Border writes also
// dirty the adjacent loaded chunk, whose mesh may gain or lose a face.
func (w *World) SetVoxelAt(pos mgl32.Vec3, t voxel.Type) bool {
	coord, x, y, z, ok := w.WorldToVoxel(pos)
	if !ok {
		return false
	}
	c := w.chunks[coord]
	c.Set(x, y, z, voxel.New(t))
	c.MarkDirty()

	if x == 0 {
		w.markDirty(ChunkCoord{X: coord.X - 1, Z: coord.Z})
	} else if x == VoxelsX-1 {
		w.markDirty(ChunkCoord{X: coord.X + 1, Z: coord.Z})
	}
	if z == 0 {
		w.markDirty(ChunkCoord{X: coord.X, Z: coord.Z - 1})
	} else if z == VoxelsZ-1 {
		w.markDirty(ChunkCoord{X: coord.X, Z: coord.Z + 1})
	}
	return true
}

func (w *World) markDirty(coord ChunkCoord) {
	if c, ok := w.chunks[coord]; ok {
		c.MarkDirty()
	}
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// mod returns the non-negative remainder of a/b.
func mod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
