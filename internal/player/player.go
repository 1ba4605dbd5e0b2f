package player

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"mini-voxel/internal/profiling"
	"mini-voxel/internal/world"
)

const (
	PlayerEyeHeight = 1.62
	PlayerHeight    = 1.8
	PlayerHalfWidth = 0.3

	Gravity          = 32.0
	TerminalVelocity = -78.4
	JumpVelocity     = 9.4

	WalkSpeed = 4.5
	FlySpeed  = 12.0
)

// Player is the viewer: a position plus look angles, with simple
// walk/fly movement against the voxel grid.
type Player struct {
	Position mgl32.Vec3
	Velocity mgl32.Vec3
	OnGround bool
	IsFlying bool

	CamYaw     float64
	CamPitch   float64
	LastMouseX float64
	LastMouseY float64
	FirstMouse bool

	// Interaction
	HoveredVoxel    [3]int
	HoveredNormal   [3]int
	HasHoveredVoxel bool

	World *world.World

	// Seconds until this player may break or place again. Each player
	// tracks its own cooldown; two players never throttle each other.
	actionCooldown float64
}

func New(w *world.World, spawn mgl32.Vec3) *Player {
	return &Player{
		Position:   spawn,
		Velocity:   mgl32.Vec3{0, 0, 0},
		IsFlying:   true,
		CamYaw:     -90.0,
		CamPitch:   0.0,
		FirstMouse: true,
		World:      w,
	}
}

// GetEyePosition returns the camera origin: feet position plus eye height.
func (p *Player) GetEyePosition() mgl32.Vec3 {
	return p.Position.Add(mgl32.Vec3{0, PlayerEyeHeight, 0})
}

// GetBounds returns the collision half-width and height of the player box.
func (p *Player) GetBounds() (halfWidth, height float32) {
	return PlayerHalfWidth, PlayerHeight
}

// Update advances the player one frame: input, movement, then the
// hovered-voxel pick for interaction and highlighting.
func (p *Player) Update(dt float64, window *glfw.Window) {
	defer profiling.Track("player.Update")()

	if p.actionCooldown > 0 {
		p.actionCooldown -= dt
	}

	p.handleMovementInput(dt, window)
	p.applyPhysics(dt)
	p.UpdateHoveredVoxel()
}
