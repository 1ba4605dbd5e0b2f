package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"mini-voxel/internal/voxel"
	"mini-voxel/internal/world"
)

const (
	// MaxReachDistance bounds the player's break/place ray.
	MaxReachDistance = 10.0
)

var infinity = float32(math.Inf(1))

// RayHit describes the first solid voxel along a ray. Voxel is a global
// voxel grid cell; Normal is the outward normal of the struck face.
type RayHit struct {
	Voxel  [3]int
	Normal [3]int
}

// Face resolves the struck face enumerant from the hit normal.
func (h RayHit) Face() (voxel.Face, bool) {
	return voxel.FaceFromNormal(mgl32.Vec3{
		float32(h.Normal[0]),
		float32(h.Normal[1]),
		float32(h.Normal[2]),
	})
}

// PlaceCell returns the empty cell adjacent to the struck face, where a
// new voxel would be placed.
func (h RayHit) PlaceCell() [3]int {
	return [3]int{
		h.Voxel[0] + h.Normal[0],
		h.Voxel[1] + h.Normal[1],
		h.Voxel[2] + h.Normal[2],
	}
}

// CastRay finds the first solid voxel along the ray by exact grid
// traversal: it advances cell by cell through every voxel boundary the ray
// crosses, in order, so thin walls are never tunneled through and the hit
// face is always the face actually crossed. A fixed-size march cannot
// guarantee either. Returns false when nothing solid lies within
// maxDistance.
//
// When the origin is already inside a solid voxel there is no entry face
// to compute; the voxel is returned immediately with the -Y normal as a
// caller-visible default.
func CastRay(w *world.World, origin, dir mgl32.Vec3, maxDistance float32) (RayHit, bool) {
	cell := [3]int{
		int(math.Floor(float64(origin.X() / voxel.Size))),
		int(math.Floor(float64(origin.Y() / voxel.Size))),
		int(math.Floor(float64(origin.Z() / voxel.Size))),
	}

	if w.TypeAtCell(cell[0], cell[1], cell[2]).IsSolid() {
		return RayHit{Voxel: cell, Normal: [3]int{0, -1, 0}}, true
	}

	var step [3]int
	var tMax, tDelta [3]float32
	for axis := 0; axis < 3; axis++ {
		d := dir[axis]
		switch {
		case d > 0:
			step[axis] = 1
		case d < 0:
			step[axis] = -1
		}

		if d == 0 {
			// Parallel to this axis: its boundaries are never crossed.
			tMax[axis] = infinity
			tDelta[axis] = infinity
			continue
		}

		boundary := float32(cell[axis]) * voxel.Size
		if step[axis] > 0 {
			boundary += voxel.Size
		}
		tMax[axis] = (boundary - origin[axis]) / d
		tDelta[axis] = voxel.Size / float32(math.Abs(float64(d)))
	}

	maxSteps := int(maxDistance/voxel.Size) + 1
	var normal [3]int

	for i := 0; i < maxSteps; i++ {
		// Advance along the axis whose next boundary is nearest.
		if tMax[0] < tMax[1] && tMax[0] < tMax[2] {
			cell[0] += step[0]
			tMax[0] += tDelta[0]
			normal = [3]int{-step[0], 0, 0}
		} else if tMax[1] < tMax[2] {
			cell[1] += step[1]
			tMax[1] += tDelta[1]
			normal = [3]int{0, -step[1], 0}
		} else {
			cell[2] += step[2]
			tMax[2] += tDelta[2]
			normal = [3]int{0, 0, -step[2]}
		}

		if w.TypeAtCell(cell[0], cell[1], cell[2]).IsSolid() {
			return RayHit{Voxel: cell, Normal: normal}, true
		}
	}

	return RayHit{}, false
}

// CellCenter returns the world-space center of a global voxel grid cell.
func CellCenter(cell [3]int) mgl32.Vec3 {
	return mgl32.Vec3{
		(float32(cell[0]) + 0.5) * voxel.Size,
		(float32(cell[1]) + 0.5) * voxel.Size,
		(float32(cell[2]) + 0.5) * voxel.Size,
	}
}

// CellMin returns the world-space minimum corner of a global voxel cell.
func CellMin(cell [3]int) mgl32.Vec3 {
	return mgl32.Vec3{
		float32(cell[0]) * voxel.Size,
		float32(cell[1]) * voxel.Size,
		float32(cell[2]) * voxel.Size,
	}
}
