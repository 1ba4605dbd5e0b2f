package world

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"mini-voxel/internal/voxel"
)

const (
	// ChunkSize is the nominal horizontal chunk dimension in world units.
	ChunkSize = 16
	// ChunkHeight is the chunk's vertical extent in world units. Chunks
	// span the full world height; there is no vertical streaming.
	ChunkHeight = 256

	// VoxelsX/VoxelsY/VoxelsZ are the chunk's dense array dimensions.
	VoxelsX = ChunkSize * voxel.Precision
	VoxelsY = ChunkHeight * voxel.Precision
	VoxelsZ = ChunkSize * voxel.Precision

	// ChunkWorldSize is the chunk's horizontal footprint in world space.
	ChunkWorldSize = float32(VoxelsX) * voxel.Size
)

// ChunkCoord identifies a chunk's position on the horizontal chunk grid.
type ChunkCoord struct {
	X, Z int
}

// ChunkCoordAt maps a continuous world-space point to the chunk containing
// it. Flooring (not truncation) keeps negative coordinates exact: world
// x = -0.5 belongs to chunk -1, not chunk 0.
func ChunkCoordAt(pos mgl32.Vec3) ChunkCoord {
	return ChunkCoord{
		X: int(math.Floor(float64(pos.X() / ChunkWorldSize))),
		Z: int(math.Floor(float64(pos.Z() / ChunkWorldSize))),
	}
}

// Chebyshev returns the chessboard distance to another chunk coordinate,
// the metric all streaming radii are measured in.
func (c ChunkCoord) Chebyshev(o ChunkCoord) int {
	dx := c.X - o.X
	if dx < 0 {
		dx = -dx
	}
	dz := c.Z - o.Z
	if dz < 0 {
		dz = -dz
	}
	if dx > dz {
		return dx
	}
	return dz
}

// Chunk owns a dense 3-D array of voxels. A chunk is tied to its coordinate
// for its whole lifetime; geometry derived from it is disposable and
// recomputed whenever the dirty flag is raised.
type Chunk struct {
	Coord  ChunkCoord
	voxels []voxel.Voxel
	dirty  bool
}

// NewChunk allocates a chunk filled with default (air) voxels.
func NewChunk(coord ChunkCoord) *Chunk {
	return &Chunk{
		Coord:  coord,
		voxels: make([]voxel.Voxel, VoxelsX*VoxelsY*VoxelsZ),
	}
}

func voxelIndex(x, y, z int) int {
	return (x*VoxelsY+y)*VoxelsZ + z
}

func inBounds(x, y, z int) bool {
	return x >= 0 && x < VoxelsX && y >= 0 && y < VoxelsY && z >= 0 && z < VoxelsZ
}

// Get returns the voxel at a local index, or false outside bounds. Callers
// treat an absent voxel as non-solid.
func (c *Chunk) Get(x, y, z int) (voxel.Voxel, bool) {
	if !inBounds(x, y, z) {
		return voxel.Voxel{}, false
	}
	return c.voxels[voxelIndex(x, y, z)], true
}

// Set overwrites the voxel at a local index. Out-of-bounds writes are
// no-ops. Set has no side effects beyond the array write; dirtying and
// re-meshing are the caller's responsibility.
func (c *Chunk) Set(x, y, z int, v voxel.Voxel) {
	if !inBounds(x, y, z) {
		return
	}
	c.voxels[voxelIndex(x, y, z)] = v
}

// IsSolid reports whether the voxel at a local index is solid. Out-of-range
// cells count as empty.
func (c *Chunk) IsSolid(x, y, z int) bool {
	v, ok := c.Get(x, y, z)
	return ok && v.IsSolid()
}

// Origin returns the world-space position of the chunk's minimum corner.
func (c *Chunk) Origin() mgl32.Vec3 {
	return mgl32.Vec3{
		float32(c.Coord.X) * ChunkWorldSize,
		0,
		float32(c.Coord.Z) * ChunkWorldSize,
	}
}

// VoxelCenter returns the world-space center of the cell at a local index.
// It is the inverse of World.WorldToVoxel up to half a voxel.
func (c *Chunk) VoxelCenter(x, y, z int) mgl32.Vec3 {
	origin := c.Origin()
	return mgl32.Vec3{
		origin.X() + float32(x)*voxel.Size + voxel.Size/2,
		float32(y)*voxel.Size + voxel.Size/2,
		origin.Z() + float32(z)*voxel.Size + voxel.Size/2,
	}
}

// Dirty reports whether voxel data changed since the last geometry build.
func (c *Chunk) Dirty() bool {
	return c.dirty
}

// MarkDirty flags the chunk's derived geometry (render and collision) as
// stale.
func (c *Chunk) MarkDirty() {
	c.dirty = true
}

// ClearDirty marks the chunk's derived geometry as current again.
func (c *Chunk) ClearDirty() {
	c.dirty = false
}
