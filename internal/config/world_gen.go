package config

import "sync"

// Terrain tunables, taken as-is from the generator this engine grew out of.
// They are configuration, not structural invariants: changing them reshapes
// the terrain but never the coordinate math.
const (
	// HeightNoiseScale is the horizontal frequency of the surface heightmap.
	HeightNoiseScale = 0.01
	// CaveNoiseScale is the frequency of the 3-D cave field.
	CaveNoiseScale = 0.02
	// CaveThreshold carves a cave wherever the cave field exceeds it.
	CaveThreshold = 0.3
	// MinSurfaceHeight/MaxSurfaceHeight bound the band the height noise
	// ([-1,1]) is mapped onto.
	MinSurfaceHeight = 32.0
	MaxSurfaceHeight = 96.0
	// DirtDepth is how many cells below the surface stay dirt before stone.
	DirtDepth = 3.0
)

// WorldSettings holds streaming configuration for the chunk index.
type WorldSettings struct {
	mu          sync.RWMutex
	loadRadius  int
	evictMargin int
	heightSeed  int64
	caveSeed    int64
}

var globalWorldSettings = &WorldSettings{
	loadRadius:  5,
	evictMargin: 2,
	heightSeed:  12345,
	caveSeed:    54321,
}

// GetLoadRadius returns the Chebyshev radius (in chunks) kept loaded around
// the viewer.
func GetLoadRadius() int {
	globalWorldSettings.mu.RLock()
	defer globalWorldSettings.mu.RUnlock()
	return globalWorldSettings.loadRadius
}

// SetLoadRadius sets the load radius, clamped to [1, 32].
func SetLoadRadius(r int) {
	globalWorldSettings.mu.Lock()
	defer globalWorldSettings.mu.Unlock()
	if r < 1 {
		r = 1
	}
	if r > 32 {
		r = 32
	}
	globalWorldSettings.loadRadius = r
}

// GetEvictRadius returns the radius beyond which loaded chunks are
// discarded. It always exceeds the load radius so chunks at the boundary
// don't thrash between loaded and unloaded.
func GetEvictRadius() int {
	globalWorldSettings.mu.RLock()
	defer globalWorldSettings.mu.RUnlock()
	return globalWorldSettings.loadRadius + globalWorldSettings.evictMargin
}

// SetEvictMargin sets the hysteresis band between load and evict radii.
func SetEvictMargin(m int) {
	globalWorldSettings.mu.Lock()
	defer globalWorldSettings.mu.Unlock()
	if m < 1 {
		m = 1
	}
	globalWorldSettings.evictMargin = m
}

// GetHeightSeed returns the surface heightmap seed.
func GetHeightSeed() int64 {
	globalWorldSettings.mu.RLock()
	defer globalWorldSettings.mu.RUnlock()
	return globalWorldSettings.heightSeed
}

// SetHeightSeed sets the surface heightmap seed.
func SetHeightSeed(s int64) {
	globalWorldSettings.mu.Lock()
	defer globalWorldSettings.mu.Unlock()
	globalWorldSettings.heightSeed = s
}

// GetCaveSeed returns the cave field seed. Height and cave noise use
// independent seeds so their patterns stay uncorrelated.
func GetCaveSeed() int64 {
	globalWorldSettings.mu.RLock()
	defer globalWorldSettings.mu.RUnlock()
	return globalWorldSettings.caveSeed
}

// SetCaveSeed sets the cave field seed.
func SetCaveSeed(s int64) {
	globalWorldSettings.mu.Lock()
	defer globalWorldSettings.mu.Unlock()
	globalWorldSettings.caveSeed = s
}
