package player

import (
	"math"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"mini-voxel/internal/physics"
)

func (p *Player) handleMovementInput(dt float64, window *glfw.Window) {
	yaw := mgl32.DegToRad(float32(p.CamYaw))
	forward := mgl32.Vec3{float32(math.Cos(float64(yaw))), 0, float32(math.Sin(float64(yaw)))}
	right := mgl32.Vec3{-forward.Z(), 0, forward.X()}

	wish := mgl32.Vec3{}
	if window.GetKey(glfw.KeyW) == glfw.Press {
		wish = wish.Add(forward)
	}
	if window.GetKey(glfw.KeyS) == glfw.Press {
		wish = wish.Sub(forward)
	}
	if window.GetKey(glfw.KeyD) == glfw.Press {
		wish = wish.Add(right)
	}
	if window.GetKey(glfw.KeyA) == glfw.Press {
		wish = wish.Sub(right)
	}
	if wish.Len() > 0 {
		wish = wish.Normalize()
	}

	speed := float32(WalkSpeed)
	if p.IsFlying {
		speed = FlySpeed
	}
	p.Velocity[0] = wish.X() * speed
	p.Velocity[2] = wish.Z() * speed

	if p.IsFlying {
		p.Velocity[1] = 0
		if window.GetKey(glfw.KeySpace) == glfw.Press {
			p.Velocity[1] = speed
		}
		if window.GetKey(glfw.KeyLeftShift) == glfw.Press {
			p.Velocity[1] = -speed
		}
	} else if window.GetKey(glfw.KeySpace) == glfw.Press && p.OnGround {
		p.Velocity[1] = JumpVelocity
		p.OnGround = false
	}
}

// ToggleFlight flips between walking and free flight.
func (p *Player) ToggleFlight() {
	p.IsFlying = !p.IsFlying
	if p.IsFlying {
		p.Velocity[1] = 0
	}
}

func (p *Player) applyPhysics(dt float64) {
	if !p.IsFlying {
		p.Velocity[1] -= Gravity * float32(dt)
		if p.Velocity[1] < TerminalVelocity {
			p.Velocity[1] = TerminalVelocity
		}
	}

	halfWidth, height := p.GetBounds()
	step := p.Velocity.Mul(float32(dt))

	// Move one axis at a time so sliding along walls works.
	for axis := 0; axis < 3; axis++ {
		if step[axis] == 0 {
			continue
		}
		next := p.Position
		next[axis] += step[axis]
		if physics.Collides(p.World, next, halfWidth, height) {
			if axis == 1 && step[axis] < 0 {
				p.OnGround = true
			}
			p.Velocity[axis] = 0
			continue
		}
		p.Position = next
	}

	if p.Velocity[1] != 0 {
		p.OnGround = false
	}
}

// SnapToGround drops the player onto the highest solid surface under the
// current position. Used at spawn so the viewer never starts inside terrain.
func (p *Player) SnapToGround() {
	ground := physics.GroundLevel(p.World, p.Position.X(), p.Position.Z(), p.Position.Y()+64, PlayerHalfWidth)
	p.Position[1] = ground
	p.Velocity[1] = 0
}
