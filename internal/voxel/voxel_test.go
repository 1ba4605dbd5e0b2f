package voxel

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestTypeSolidity(t *testing.T) {
	if Air.IsSolid() {
		t.Error("air must not be solid")
	}
	for _, typ := range []Type{Stone, Dirt, Grass} {
		if !typ.IsSolid() {
			t.Errorf("%v must be solid", typ)
		}
	}
}

func TestFaceOffsetsMatchNormals(t *testing.T) {
	for _, f := range Faces {
		n := f.Normal()
		dx, dy, dz := f.Offset()
		if int(n.X()) != dx || int(n.Y()) != dy || int(n.Z()) != dz {
			t.Errorf("face %d: normal %v does not match offset (%d,%d,%d)", f, n, dx, dy, dz)
		}
	}
}

// Each face's winding must be counter-clockwise seen from outside: the
// cross product of its first two edges has to point along the outward
// normal.
func TestFaceCornersWoundOutward(t *testing.T) {
	for _, f := range Faces {
		corners := f.Corners(mgl32.Vec3{}, 1)
		c0 := mgl32.Vec3{corners[0][0], corners[0][1], corners[0][2]}
		c1 := mgl32.Vec3{corners[1][0], corners[1][1], corners[1][2]}
		c2 := mgl32.Vec3{corners[2][0], corners[2][1], corners[2][2]}

		cross := c1.Sub(c0).Cross(c2.Sub(c0))
		if cross.Dot(f.Normal()) <= 0 {
			t.Errorf("face %d: winding is not CCW from outside (cross %v, normal %v)", f, cross, f.Normal())
		}
	}
}

func TestFaceCornersLieOnFacePlane(t *testing.T) {
	for _, f := range Faces {
		n := f.Normal()
		corners := f.Corners(mgl32.Vec3{}, 1)
		for i, c := range corners {
			// On the unit cube the face plane is at 0 along the normal
			// axis for negative faces and at 1 for positive faces.
			v := mgl32.Vec3{c[0], c[1], c[2]}
			d := v.Dot(n)
			want := float32(0)
			if n.X() > 0 || n.Y() > 0 || n.Z() > 0 {
				want = 1
			}
			if d != want {
				t.Errorf("face %d corner %d: projection %v, want %v", f, i, d, want)
			}
		}
	}
}

func TestFaceCornersScaleAndTranslate(t *testing.T) {
	min := mgl32.Vec3{2, 3, 4}
	corners := FacePosY.Corners(min, 0.5)
	for i, c := range corners {
		if c[1] != 3.5 {
			t.Errorf("corner %d: y = %v, want 3.5", i, c[1])
		}
		if c[0] < 2 || c[0] > 2.5 || c[2] < 4 || c[2] > 4.5 {
			t.Errorf("corner %d out of cell: %v", i, c)
		}
	}
}

func TestFaceFromNormal(t *testing.T) {
	for _, f := range Faces {
		got, ok := FaceFromNormal(f.Normal())
		if !ok || got != f {
			t.Errorf("FaceFromNormal(%v) = %v, %v; want %v", f.Normal(), got, ok, f)
		}
	}
	if _, ok := FaceFromNormal(mgl32.Vec3{0, 0, 0}); ok {
		t.Error("zero vector must not resolve to a face")
	}
}
