package physics

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"mini-voxel/internal/voxel"
	"mini-voxel/internal/world"
)

// testWorld loads a flat floor (surface cell y=3) around the origin so
// rays have loaded chunks to traverse.
func testWorld(t *testing.T) *world.World {
	t.Helper()
	w := world.New(world.NewFlatGenerator(3), 2, 4)
	w.Update(mgl32.Vec3{8, 50, 8})
	return w
}

func setCell(t *testing.T, w *world.World, cell [3]int, typ voxel.Type) {
	t.Helper()
	if !w.SetVoxelAt(CellCenter(cell), typ) {
		t.Fatalf("could not set cell %v", cell)
	}
}

func TestCastRayHitsEntryFace(t *testing.T) {
	w := testWorld(t)
	setCell(t, w, [3]int{5, 5, 5}, voxel.Stone)

	hit, ok := CastRay(w, mgl32.Vec3{5.5, 5.5, 20}, mgl32.Vec3{0, 0, -1}, 30)
	if !ok {
		t.Fatal("ray missed the voxel straight ahead")
	}
	if hit.Voxel != [3]int{5, 5, 5} {
		t.Errorf("hit voxel %v, want (5,5,5)", hit.Voxel)
	}
	if hit.Normal != [3]int{0, 0, 1} {
		t.Errorf("hit normal %v, want +Z entry face", hit.Normal)
	}
	if f, ok := hit.Face(); !ok || f != voxel.FacePosZ {
		t.Errorf("face %v, want FacePosZ", f)
	}
	if hit.PlaceCell() != ([3]int{5, 5, 6}) {
		t.Errorf("place cell %v, want (5,5,6)", hit.PlaceCell())
	}
}

func TestCastRayDownHitsFloorTop(t *testing.T) {
	w := testWorld(t)

	hit, ok := CastRay(w, mgl32.Vec3{8.5, 10, 8.5}, mgl32.Vec3{0, -1, 0}, MaxReachDistance)
	if !ok {
		t.Fatal("downward ray missed the floor")
	}
	if hit.Voxel != [3]int{8, 3, 8} {
		t.Errorf("hit voxel %v, want the surface cell (8,3,8)", hit.Voxel)
	}
	if hit.Normal != [3]int{0, 1, 0} {
		t.Errorf("hit normal %v, want +Y", hit.Normal)
	}
}

// A ray through a corner region must visit cells one boundary at a time;
// a diagonal may not skip past a thin wall.
func TestCastRayDiagonalDoesNotTunnel(t *testing.T) {
	w := testWorld(t)
	// One-voxel wall in the x=6 plane around the diagonal's crossing.
	for y := 4; y <= 8; y++ {
		for z := 4; z <= 8; z++ {
			setCell(t, w, [3]int{6, y, z}, voxel.Stone)
		}
	}

	hit, ok := CastRay(w, mgl32.Vec3{4.5, 6.2, 4.7}, mgl32.Vec3{1, 0.1, 0.3}.Normalize(), 10)
	if !ok {
		t.Fatal("diagonal ray tunneled through a one-voxel wall")
	}
	if hit.Voxel[0] != 6 {
		t.Errorf("hit voxel %v, want a wall cell at x=6", hit.Voxel)
	}
	if hit.Normal != [3]int{-1, 0, 0} {
		t.Errorf("hit normal %v, want -X entry face", hit.Normal)
	}
}

func TestCastRayMissBeyondMaxDistance(t *testing.T) {
	w := testWorld(t)
	setCell(t, w, [3]int{5, 5, 5}, voxel.Stone)

	if _, ok := CastRay(w, mgl32.Vec3{5.5, 5.5, 20}, mgl32.Vec3{0, 0, -1}, 5); ok {
		t.Error("ray reported a hit past its maximum distance")
	}
}

func TestCastRayMissIntoSky(t *testing.T) {
	w := testWorld(t)
	if _, ok := CastRay(w, mgl32.Vec3{8, 10, 8}, mgl32.Vec3{0, 1, 0}, MaxReachDistance); ok {
		t.Error("upward ray over a flat floor reported a hit")
	}
}

// Starting inside a solid voxel there is no entry face; the caller gets
// the containing cell with the documented default normal.
func TestCastRayOriginInsideSolid(t *testing.T) {
	w := testWorld(t)

	hit, ok := CastRay(w, mgl32.Vec3{8.5, 2.5, 8.5}, mgl32.Vec3{0, 0, 1}, MaxReachDistance)
	if !ok {
		t.Fatal("ray from inside a solid voxel must hit immediately")
	}
	if hit.Voxel != [3]int{8, 2, 8} {
		t.Errorf("hit voxel %v, want the containing cell (8,2,8)", hit.Voxel)
	}
	if hit.Normal != [3]int{0, -1, 0} {
		t.Errorf("hit normal %v, want the (0,-1,0) default", hit.Normal)
	}
}

func TestCastRayAxisParallelComponentZero(t *testing.T) {
	w := testWorld(t)
	setCell(t, w, [3]int{10, 5, 8}, voxel.Stone)

	// dir.y and dir.z are exactly zero; their axes must simply never step.
	hit, ok := CastRay(w, mgl32.Vec3{5.5, 5.5, 8.5}, mgl32.Vec3{1, 0, 0}, MaxReachDistance)
	if !ok {
		t.Fatal("axis-parallel ray missed")
	}
	if hit.Voxel != [3]int{10, 5, 8} {
		t.Errorf("hit voxel %v, want (10,5,8)", hit.Voxel)
	}
	if hit.Normal != [3]int{-1, 0, 0} {
		t.Errorf("hit normal %v, want -X", hit.Normal)
	}
}

func TestCastRayThroughUnloadedSpaceMisses(t *testing.T) {
	w := testWorld(t)
	// Fire across the streaming edge at x=48; unloaded cells count as air.
	if _, ok := CastRay(w, mgl32.Vec3{44, 6.5, 8}, mgl32.Vec3{1, 0, 0}, 10); ok {
		t.Error("ray into unloaded space reported a hit")
	}
}
