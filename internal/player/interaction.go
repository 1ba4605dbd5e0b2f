package player

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"mini-voxel/internal/physics"
	"mini-voxel/internal/voxel"
	"mini-voxel/internal/world"
)

// ActionCooldown is the minimum delay between break/place actions for a
// single player.
const ActionCooldown = 0.2

// HandleMouseButton breaks on left click and places stone on right click,
// subject to this player's own cooldown.
func (p *Player) HandleMouseButton(button glfw.MouseButton, action glfw.Action) {
	if action != glfw.Press || !p.HasHoveredVoxel || p.actionCooldown > 0 {
		return
	}

	switch button {
	case glfw.MouseButtonLeft:
		if p.World.SetVoxelAt(physics.CellCenter(p.HoveredVoxel), voxel.Air) {
			p.actionCooldown = ActionCooldown
		}
	case glfw.MouseButtonRight:
		p.placeVoxel(voxel.Stone)
	}
}

func (p *Player) placeVoxel(t voxel.Type) {
	cell := [3]int{
		p.HoveredVoxel[0] + p.HoveredNormal[0],
		p.HoveredVoxel[1] + p.HoveredNormal[1],
		p.HoveredVoxel[2] + p.HoveredNormal[2],
	}
	if cell[1] < 0 || cell[1] >= world.VoxelsY {
		return
	}
	if p.World.TypeAtCell(cell[0], cell[1], cell[2]).IsSolid() {
		return
	}

	// Never place a voxel inside the player's own collision box.
	halfWidth, height := p.GetBounds()
	if physics.IntersectsCell(p.Position, halfWidth, height, cell) {
		return
	}

	if p.World.SetVoxelAt(physics.CellCenter(cell), t) {
		p.actionCooldown = ActionCooldown
	}
}

// UpdateHoveredVoxel refreshes the voxel under the crosshair via an exact
// grid walk from the eye along the view direction.
func (p *Player) UpdateHoveredVoxel() {
	hit, ok := physics.CastRay(p.World, p.GetEyePosition(), p.GetFrontVector(), physics.MaxReachDistance)
	p.HasHoveredVoxel = ok
	if ok {
		p.HoveredVoxel = hit.Voxel
		p.HoveredNormal = hit.Normal
	}
}
