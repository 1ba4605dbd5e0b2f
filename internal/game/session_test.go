package game

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"mini-voxel/internal/meshing"
	"mini-voxel/internal/voxel"
	"mini-voxel/internal/world"
)

// recordingSink captures sink calls for inspection.
type recordingSink struct {
	uploads map[world.ChunkCoord]int
	drops   map[world.ChunkCoord]int
	last    map[world.ChunkCoord]*meshing.Geometry
}

func newRecordingSink() *recordingSink {
	return &recordingSink{
		uploads: make(map[world.ChunkCoord]int),
		drops:   make(map[world.ChunkCoord]int),
		last:    make(map[world.ChunkCoord]*meshing.Geometry),
	}
}

func (s *recordingSink) UploadChunk(coord world.ChunkCoord, g *meshing.Geometry, origin mgl32.Vec3) {
	s.uploads[coord]++
	s.last[coord] = g
}

func (s *recordingSink) DropChunk(coord world.ChunkCoord) {
	s.drops[coord]++
	delete(s.last, coord)
}

func newTestSession(sink GeometrySink) *Session {
	return NewSession(world.NewFlatGenerator(3), sink)
}

func TestTickPublishesGeometryForLoadedChunks(t *testing.T) {
	sink := newRecordingSink()
	s := newTestSession(sink)

	s.Tick(mgl32.Vec3{8, 50, 8})

	if s.World.ChunkCount() == 0 {
		t.Fatal("tick loaded no chunks")
	}
	s.World.EachChunk(func(c *world.Chunk) {
		if sink.uploads[c.Coord] != 1 {
			t.Errorf("chunk %v uploaded %d times, want 1", c.Coord, sink.uploads[c.Coord])
		}
		if _, ok := s.ColliderAt(c.Coord); !ok {
			t.Errorf("chunk %v has no collider", c.Coord)
		}
		if c.Dirty() {
			t.Errorf("chunk %v still dirty after tick", c.Coord)
		}
	})
	if s.ColliderCount() != s.World.ChunkCount() {
		t.Errorf("%d colliders for %d chunks", s.ColliderCount(), s.World.ChunkCount())
	}
}

func TestTickIsIdleWhenNothingChanged(t *testing.T) {
	sink := newRecordingSink()
	s := newTestSession(sink)

	s.Tick(mgl32.Vec3{8, 50, 8})
	s.Tick(mgl32.Vec3{8, 50, 8})

	for coord, n := range sink.uploads {
		if n != 1 {
			t.Errorf("chunk %v re-uploaded %d times without changing", coord, n)
		}
	}
}

// Breaking a voxel must refresh both the render geometry and the collider
// in the very next tick. No intermediate state is observable from outside.
func TestMutationRebuildsGeometryAndCollider(t *testing.T) {
	sink := newRecordingSink()
	s := newTestSession(sink)
	viewer := mgl32.Vec3{8, 50, 8}
	s.Tick(viewer)

	target := world.ChunkCoord{}
	before, _ := s.ColliderAt(target)
	facesBefore := sink.last[target].FaceCount()

	if !s.World.SetVoxelAt(mgl32.Vec3{5.5, 3.5, 5.5}, voxel.Air) {
		t.Fatal("mutation failed")
	}
	s.Tick(viewer)

	if sink.uploads[target] != 2 {
		t.Errorf("dirty chunk uploaded %d times, want 2", sink.uploads[target])
	}
	after, ok := s.ColliderAt(target)
	if !ok || after == before {
		t.Error("collider not rebuilt alongside the render mesh")
	}
	// A hole in a flat surface exposes four side faces and a new floor
	// while removing the grass top.
	if facesAfter := sink.last[target].FaceCount(); facesAfter <= facesBefore {
		t.Errorf("face count %d after carving a hole, want more than %d", facesAfter, facesBefore)
	}

	// Geometry and collider still agree.
	if len(after.Vertices) != len(sink.last[target].Positions) {
		t.Error("collider and render mesh diverged after the rebuild")
	}
}

func TestBorderMutationRefreshesNeighbor(t *testing.T) {
	sink := newRecordingSink()
	s := newTestSession(sink)
	viewer := mgl32.Vec3{8, 50, 8}
	s.Tick(viewer)

	// Last voxel column of chunk (0,0); the +X neighbor's mesh may change.
	if !s.World.SetVoxelAt(mgl32.Vec3{15.5, 3.5, 5.5}, voxel.Air) {
		t.Fatal("border mutation failed")
	}
	s.Tick(viewer)

	if sink.uploads[world.ChunkCoord{X: 0, Z: 0}] != 2 {
		t.Error("owning chunk not re-uploaded")
	}
	if sink.uploads[world.ChunkCoord{X: 1, Z: 0}] != 2 {
		t.Error("+X neighbor not re-uploaded after a border write")
	}
	if sink.uploads[world.ChunkCoord{X: 0, Z: 1}] != 1 {
		t.Error("unrelated chunk re-uploaded")
	}
}

func TestEvictionDropsGeometryAndCollider(t *testing.T) {
	sink := newRecordingSink()
	s := newTestSession(sink)
	s.Tick(mgl32.Vec3{8, 50, 8})
	before := s.World.ChunkCount()

	// Move far; the old neighborhood leaves the evict radius.
	s.Tick(mgl32.Vec3{8 + 30*world.ChunkWorldSize, 50, 8})

	if len(sink.drops) == 0 {
		t.Fatal("no geometry dropped after a long viewer move")
	}
	origin := world.ChunkCoord{}
	if sink.drops[origin] != 1 {
		t.Errorf("origin chunk dropped %d times, want 1", sink.drops[origin])
	}
	if _, ok := s.ColliderAt(origin); ok {
		t.Error("evicted chunk still has a collider")
	}
	if s.World.ChunkCount() != before {
		t.Errorf("chunk count %d after the move, want %d", s.World.ChunkCount(), before)
	}
}
