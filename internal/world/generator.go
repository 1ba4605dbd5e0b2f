package world

import (
	"math"

	"github.com/aquilax/go-perlin"

	"mini-voxel/internal/config"
	"mini-voxel/internal/voxel"
)

const (
	noiseAlpha   = 2.0
	noiseBeta    = 2.0
	noiseOctaves = 3
)

// TerrainGenerator fills freshly allocated chunks with voxel data.
// Implementations must be pure functions of the chunk coordinate.
type TerrainGenerator interface {
	Generate(c *Chunk)
}

// Generator fills chunks with terrain from coherent noise. Generation is
// pure: the same chunk coordinate always yields byte-identical voxels, so
// an evicted chunk can be regenerated losslessly without persistence.
type Generator struct {
	height *perlin.Perlin
	cave   *perlin.Perlin
}

// NewGenerator creates a terrain generator. The surface heightmap and the
// cave field take independent seeds so their patterns are uncorrelated.
func NewGenerator(heightSeed, caveSeed int64) *Generator {
	return &Generator{
		height: perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, heightSeed),
		cave:   perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, caveSeed),
	}
}

// HeightAt returns the surface height at world (x, z), mapping the noise
// range [-1, 1] onto the configured height band.
func (g *Generator) HeightAt(worldX, worldZ float64) float64 {
	n := g.height.Noise2D(worldX*config.HeightNoiseScale, worldZ*config.HeightNoiseScale)
	if n < -1 {
		n = -1
	}
	if n > 1 {
		n = 1
	}
	return config.MinSurfaceHeight + (n+1)/2*(config.MaxSurfaceHeight-config.MinSurfaceHeight)
}

// Generate fills every voxel of the chunk. Per column: air above the
// surface, grass on the topmost cell, dirt for the next few cells, stone
// below that unless the cave field carves the cell out.
func (g *Generator) Generate(c *Chunk) {
	origin := c.Origin()

	for x := 0; x < VoxelsX; x++ {
		for z := 0; z < VoxelsZ; z++ {
			worldX := float64(origin.X() + float32(x)*voxel.Size)
			worldZ := float64(origin.Z() + float32(z)*voxel.Size)

			surface := g.HeightAt(worldX, worldZ)
			grassTop := math.Floor(surface/float64(voxel.Size)) * float64(voxel.Size)
			dirtFloor := surface - config.DirtDepth

			for y := 0; y < VoxelsY; y++ {
				worldY := float64(y) * float64(voxel.Size)

				var t voxel.Type
				switch {
				case worldY > surface:
					t = voxel.Air
				case worldY > dirtFloor:
					if worldY == grassTop {
						t = voxel.Grass
					} else {
						t = voxel.Dirt
					}
				default:
					if g.isCave(worldX, worldY, worldZ) {
						t = voxel.Air
					} else {
						t = voxel.Stone
					}
				}
				c.Set(x, y, z, voxel.New(t))
			}
		}
	}
}

func (g *Generator) isCave(worldX, worldY, worldZ float64) bool {
	n := g.cave.Noise3D(
		worldX*config.CaveNoiseScale,
		worldY*config.CaveNoiseScale,
		worldZ*config.CaveNoiseScale,
	)
	return n > config.CaveThreshold
}

// FlatGenerator fills every column identically up to a fixed height: grass
// on top, dirt beneath, stone below. Useful for controlled setups.
type FlatGenerator struct {
	Height int
}

func NewFlatGenerator(height int) *FlatGenerator {
	if height < 0 {
		height = 0
	}
	if height >= VoxelsY {
		height = VoxelsY - 1
	}
	return &FlatGenerator{Height: height}
}

func (g *FlatGenerator) Generate(c *Chunk) {
	dirtFloor := g.Height - int(config.DirtDepth)

	for x := 0; x < VoxelsX; x++ {
		for z := 0; z < VoxelsZ; z++ {
			for y := 0; y <= g.Height; y++ {
				var t voxel.Type
				switch {
				case y == g.Height:
					t = voxel.Grass
				case y > dirtFloor:
					t = voxel.Dirt
				default:
					t = voxel.Stone
				}
				c.Set(x, y, z, voxel.New(t))
			}
		}
	}
}
