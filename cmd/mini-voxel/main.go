package main

import (
	"log"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/xlab/closer"

	"mini-voxel/internal/config"
	"mini-voxel/internal/game"
	"mini-voxel/internal/graphics/renderables/chunks"
	"mini-voxel/internal/graphics/renderables/crosshair"
	"mini-voxel/internal/graphics/renderables/highlight"
	renderer "mini-voxel/internal/graphics/renderer"
	"mini-voxel/internal/player"
	"mini-voxel/internal/world"
)

const settingsPath = "settings.yaml"

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := config.LoadFile(settingsPath); err != nil {
		log.Fatalf("could not load settings: %v", err)
	}

	if err := glfw.Init(); err != nil {
		log.Fatalf("could not init glfw: %v", err)
	}
	closer.Bind(glfw.Terminate)

	window, err := setupWindow()
	if err != nil {
		log.Fatalf("could not create window: %v", err)
	}

	chunksRenderer := chunks.NewChunks()
	highlightRenderer := highlight.NewHighlight()
	crosshairRenderer := crosshair.NewCrosshair()

	r, err := renderer.NewRenderer(chunksRenderer, highlightRenderer, crosshairRenderer)
	if err != nil {
		log.Fatalf("could not init renderer: %v", err)
	}
	closer.Bind(r.Dispose)

	gen := world.NewGenerator(config.GetHeightSeed(), config.GetCaveSeed())
	session := game.NewSession(gen, chunksRenderer)

	p := player.New(session.World, mgl32.Vec3{0, 120, 0})

	// Load and mesh the spawn area before the first frame, then drop the
	// player onto the terrain.
	session.Tick(p.Position)
	p.SnapToGround()

	paused := false
	setupInputHandlers(window, r, p, &paused)

	runGameLoop(window, r, session, p, &paused)

	closer.Close()
}
