package voxel

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Face identifies one of the six faces of a voxel cell.
type Face int

const (
	FaceNegX Face = iota
	FacePosX
	FaceNegY
	FacePosY
	FaceNegZ
	FacePosZ

	FaceCount = 6
)

// Faces lists all six faces in index order, for range loops.
var Faces = [FaceCount]Face{FaceNegX, FacePosX, FaceNegY, FacePosY, FaceNegZ, FacePosZ}

var faceNormals = [FaceCount][3]float32{
	{-1, 0, 0},
	{1, 0, 0},
	{0, -1, 0},
	{0, 1, 0},
	{0, 0, -1},
	{0, 0, 1},
}

var faceOffsets = [FaceCount][3]int{
	{-1, 0, 0},
	{1, 0, 0},
	{0, -1, 0},
	{0, 1, 0},
	{0, 0, -1},
	{0, 0, 1},
}

// faceCorners holds the four corners of each face's quad on the unit cube,
// wound counter-clockwise as seen from outside the solid. This table is the
// single source of truth for face geometry: the render mesher, the collision
// mesher and the highlight all consume it, so their surfaces coincide exactly.
var faceCorners = [FaceCount][4][3]float32{
	{{0, 0, 1}, {0, 1, 1}, {0, 1, 0}, {0, 0, 0}}, // -X
	{{1, 0, 0}, {1, 1, 0}, {1, 1, 1}, {1, 0, 1}}, // +X
	{{0, 0, 0}, {1, 0, 0}, {1, 0, 1}, {0, 0, 1}}, // -Y
	{{0, 1, 1}, {1, 1, 1}, {1, 1, 0}, {0, 1, 0}}, // +Y
	{{0, 0, 0}, {0, 1, 0}, {1, 1, 0}, {1, 0, 0}}, // -Z
	{{1, 0, 1}, {1, 1, 1}, {0, 1, 1}, {0, 0, 1}}, // +Z
}

// faceUVs maps the four corners of any face onto the unit square, in the
// same order as faceCorners.
var faceUVs = [4][2]float32{{0, 0}, {0, 1}, {1, 1}, {1, 0}}

// Normal returns the outward unit normal of the face.
func (f Face) Normal() mgl32.Vec3 {
	n := faceNormals[f]
	return mgl32.Vec3{n[0], n[1], n[2]}
}

// Offset returns the grid step to the neighbor cell behind the face.
func (f Face) Offset() (dx, dy, dz int) {
	o := faceOffsets[f]
	return o[0], o[1], o[2]
}

// Corners returns the face's quad corners in CCW order for a cell whose
// minimum corner is min and whose edge length is size.
func (f Face) Corners(min mgl32.Vec3, size float32) [4][3]float32 {
	var out [4][3]float32
	for i, c := range faceCorners[f] {
		out[i] = [3]float32{
			min.X() + c[0]*size,
			min.Y() + c[1]*size,
			min.Z() + c[2]*size,
		}
	}
	return out
}

// UVs returns texture coordinates matching the corner order of Corners.
func (f Face) UVs() [4][2]float32 {
	return faceUVs
}

// FaceFromNormal resolves a face from an outward normal, or false when the
// vector is not axis-dominant.
func FaceFromNormal(n mgl32.Vec3) (Face, bool) {
	const eps = 0.5
	switch {
	case n.X() < -eps:
		return FaceNegX, true
	case n.X() > eps:
		return FacePosX, true
	case n.Y() < -eps:
		return FaceNegY, true
	case n.Y() > eps:
		return FacePosY, true
	case n.Z() < -eps:
		return FaceNegZ, true
	case n.Z() > eps:
		return FacePosZ, true
	}
	return FaceNegX, false
}
