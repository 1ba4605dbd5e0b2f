package renderer

import (
	"github.com/go-gl/mathgl/mgl32"

	"mini-voxel/internal/graphics"
	"mini-voxel/internal/player"
	"mini-voxel/internal/world"
)

// RenderContext provides shared per-frame context for all renderables.
type RenderContext struct {
	Camera *graphics.Camera
	World  *world.World
	Player *player.Player
	DT     float64
	View   mgl32.Mat4
	Proj   mgl32.Mat4
}

// Renderable defines the lifecycle for renderable features.
type Renderable interface {
	Init() error
	Render(ctx RenderContext)
	Dispose()
	SetViewport(width, height int)
}
