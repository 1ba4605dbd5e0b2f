package main

import (
	"fmt"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"

	"mini-voxel/internal/game"
	renderer "mini-voxel/internal/graphics/renderer"
	"mini-voxel/internal/player"
	"mini-voxel/internal/profiling"
)

// maxFrameDT caps the simulation step so a stall (window drag, debugger)
// doesn't teleport the player through terrain.
const maxFrameDT = 0.1

func runGameLoop(window *glfw.Window, r *renderer.Renderer, session *game.Session, p *player.Player, paused *bool) {
	frames := 0
	lastFPSCheckTime := time.Now()
	lastTime := time.Now()

	for !window.ShouldClose() {
		profiling.ResetFrame()
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now
		if dt > maxFrameDT {
			dt = maxFrameDT
		}

		if !*paused {
			p.Update(dt, window)
			func() {
				defer profiling.Track("game.Tick")()
				session.Tick(p.Position)
			}()
		}

		r.Render(session.World, p, dt)
		frames++

		if time.Since(lastFPSCheckTime) >= time.Second {
			fmt.Printf("FPS: %d  chunks: %d  %v\n", frames, session.World.ChunkCount(), profiling.TopN(3))
			frames = 0
			lastFPSCheckTime = time.Now()
		}

		func() { defer profiling.Track("glfw.SwapBuffers")(); window.SwapBuffers() }()
		func() { defer profiling.Track("glfw.PollEvents")(); glfw.PollEvents() }()
	}
}
