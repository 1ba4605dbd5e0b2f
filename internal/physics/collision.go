package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"mini-voxel/internal/voxel"
	"mini-voxel/internal/world"
)

// cellRange returns the inclusive voxel cell indices covered by [min, max]
// on one axis.
func cellRange(min, max float32) (int, int) {
	return int(math.Floor(float64(min / voxel.Size))),
		int(math.Floor(float64(max / voxel.Size)))
}

// Collides reports whether an axis-aligned box (feet position, half width,
// height) overlaps any solid voxel.
func Collides(w *world.World, pos mgl32.Vec3, halfWidth, height float32) bool {
	minX, maxX := cellRange(pos.X()-halfWidth, pos.X()+halfWidth)
	minY, maxY := cellRange(pos.Y(), pos.Y()+height)
	minZ, maxZ := cellRange(pos.Z()-halfWidth, pos.Z()+halfWidth)

	for x := minX; x <= maxX; x++ {
		for y := minY; y <= maxY; y++ {
			for z := minZ; z <= maxZ; z++ {
				if w.TypeAtCell(x, y, z).IsSolid() {
					return true
				}
			}
		}
	}
	return false
}

// IntersectsCell reports whether the same box overlaps one specific voxel
// cell. Used to refuse placing a voxel inside the player.
func IntersectsCell(pos mgl32.Vec3, halfWidth, height float32, cell [3]int) bool {
	cellMin := CellMin(cell)
	cellMax := cellMin.Add(mgl32.Vec3{voxel.Size, voxel.Size, voxel.Size})

	return pos.X()-halfWidth < cellMax.X() && pos.X()+halfWidth > cellMin.X() &&
		pos.Y() < cellMax.Y() && pos.Y()+height > cellMin.Y() &&
		pos.Z()-halfWidth < cellMax.Z() && pos.Z()+halfWidth > cellMin.Z()
}

// GroundLevel scans down from fromY for the highest solid cell under the
// box footprint and returns the world Y of its top surface. Falls back to
// fromY when there is nothing below (for example over a fully carved
// column).
func GroundLevel(w *world.World, x, z float32, fromY float32, halfWidth float32) float32 {
	minX, maxX := cellRange(x-halfWidth, x+halfWidth)
	minZ, maxZ := cellRange(z-halfWidth, z+halfWidth)
	startY := int(math.Floor(float64(fromY / voxel.Size)))
	if startY >= world.VoxelsY {
		startY = world.VoxelsY - 1
	}

	best := float32(-1)
	for cx := minX; cx <= maxX; cx++ {
		for cz := minZ; cz <= maxZ; cz++ {
			for cy := startY; cy >= 0; cy-- {
				if w.TypeAtCell(cx, cy, cz).IsSolid() {
					top := float32(cy+1) * voxel.Size
					if top > best {
						best = top
					}
					break
				}
			}
		}
	}
	if best < 0 {
		return fromY
	}
	return best
}
