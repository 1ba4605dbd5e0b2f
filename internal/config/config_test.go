package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetSettings() {
	SetWindowSize(1280, 720)
	SetVSync(true)
	SetFOV(60)
	SetMouseSensitivity(0.1)
	SetLoadRadius(5)
	SetEvictMargin(2)
	SetHeightSeed(12345)
	SetCaveSeed(54321)
}

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFileMissingIsNotAnError(t *testing.T) {
	defer resetSettings()
	require.NoError(t, LoadFile(filepath.Join(t.TempDir(), "absent.yaml")))

	w, h := GetWindowSize()
	assert.Equal(t, 1280, w)
	assert.Equal(t, 720, h)
}

func TestLoadFileMalformed(t *testing.T) {
	defer resetSettings()
	path := writeSettings(t, "window: [not a mapping")
	assert.Error(t, LoadFile(path))
}

func TestLoadFileAppliesOverrides(t *testing.T) {
	defer resetSettings()
	path := writeSettings(t, `
window:
  width: 1920
  height: 1080
  vsync: false
camera:
  fov: 90
  sensitivity: 0.25
world:
  load_radius: 8
  evict_margin: 3
  height_seed: 777
  cave_seed: 888
`)
	require.NoError(t, LoadFile(path))

	w, h := GetWindowSize()
	assert.Equal(t, 1920, w)
	assert.Equal(t, 1080, h)
	assert.False(t, GetVSync())
	assert.Equal(t, float32(90), GetFOV())
	assert.Equal(t, 0.25, GetMouseSensitivity())
	assert.Equal(t, 8, GetLoadRadius())
	assert.Equal(t, 11, GetEvictRadius())
	assert.Equal(t, int64(777), GetHeightSeed())
	assert.Equal(t, int64(888), GetCaveSeed())
}

func TestLoadFilePartialOverrides(t *testing.T) {
	defer resetSettings()
	path := writeSettings(t, "camera:\n  fov: 75\n")
	require.NoError(t, LoadFile(path))

	assert.Equal(t, float32(75), GetFOV())
	// Untouched keys keep their defaults.
	w, h := GetWindowSize()
	assert.Equal(t, 1280, w)
	assert.Equal(t, 720, h)
	assert.Equal(t, 5, GetLoadRadius())
}

func TestSettersClamp(t *testing.T) {
	defer resetSettings()

	SetFOV(5)
	assert.Equal(t, float32(30), GetFOV())
	SetFOV(170)
	assert.Equal(t, float32(110), GetFOV())

	SetWindowSize(10, 10)
	w, h := GetWindowSize()
	assert.Equal(t, 320, w)
	assert.Equal(t, 240, h)

	SetLoadRadius(0)
	assert.Equal(t, 1, GetLoadRadius())
	SetLoadRadius(100)
	assert.Equal(t, 32, GetLoadRadius())

	SetEvictMargin(0)
	assert.Equal(t, 32+1, GetEvictRadius())

	SetMouseSensitivity(-1)
	assert.Equal(t, 0.1, GetMouseSensitivity())
}

// The evict radius always exceeds the load radius regardless of the
// configured margin.
func TestEvictRadiusAlwaysBeyondLoadRadius(t *testing.T) {
	defer resetSettings()
	for _, r := range []int{1, 5, 32} {
		SetLoadRadius(r)
		SetEvictMargin(1)
		assert.Greater(t, GetEvictRadius(), GetLoadRadius())
	}
}
