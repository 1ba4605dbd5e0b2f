package config

import (
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

// ViewerSettings holds window/input configuration for the viewer binary.
type ViewerSettings struct {
	mu               sync.RWMutex
	windowWidth      int
	windowHeight     int
	fov              float32
	mouseSensitivity float64
	vsync            bool
}

var globalViewerSettings = &ViewerSettings{
	windowWidth:      1280,
	windowHeight:     720,
	fov:              60.0,
	mouseSensitivity: 0.1,
	vsync:            true,
}

// settingsFile mirrors the optional YAML settings file. Absent keys keep
// their defaults.
type settingsFile struct {
	Window struct {
		Width  *int  `yaml:"width"`
		Height *int  `yaml:"height"`
		VSync  *bool `yaml:"vsync"`
	} `yaml:"window"`
	Camera struct {
		FOV         *float32 `yaml:"fov"`
		Sensitivity *float64 `yaml:"sensitivity"`
	} `yaml:"camera"`
	World struct {
		LoadRadius  *int   `yaml:"load_radius"`
		EvictMargin *int   `yaml:"evict_margin"`
		HeightSeed  *int64 `yaml:"height_seed"`
		CaveSeed    *int64 `yaml:"cave_seed"`
	} `yaml:"world"`
}

// LoadFile applies overrides from a YAML settings file. A missing file is
// not an error; a malformed one is.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read settings: %w", err)
	}

	var sf settingsFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return fmt.Errorf("parse settings %s: %w", path, err)
	}

	if sf.Window.Width != nil && sf.Window.Height != nil {
		SetWindowSize(*sf.Window.Width, *sf.Window.Height)
	}
	if sf.Window.VSync != nil {
		SetVSync(*sf.Window.VSync)
	}
	if sf.Camera.FOV != nil {
		SetFOV(*sf.Camera.FOV)
	}
	if sf.Camera.Sensitivity != nil {
		SetMouseSensitivity(*sf.Camera.Sensitivity)
	}
	if sf.World.LoadRadius != nil {
		SetLoadRadius(*sf.World.LoadRadius)
	}
	if sf.World.EvictMargin != nil {
		SetEvictMargin(*sf.World.EvictMargin)
	}
	if sf.World.HeightSeed != nil {
		SetHeightSeed(*sf.World.HeightSeed)
	}
	if sf.World.CaveSeed != nil {
		SetCaveSeed(*sf.World.CaveSeed)
	}
	return nil
}

// GetWindowSize returns the configured window dimensions.
func GetWindowSize() (int, int) {
	globalViewerSettings.mu.RLock()
	defer globalViewerSettings.mu.RUnlock()
	return globalViewerSettings.windowWidth, globalViewerSettings.windowHeight
}

// SetWindowSize sets the window dimensions, clamped to a sane minimum.
func SetWindowSize(w, h int) {
	globalViewerSettings.mu.Lock()
	defer globalViewerSettings.mu.Unlock()
	if w < 320 {
		w = 320
	}
	if h < 240 {
		h = 240
	}
	globalViewerSettings.windowWidth = w
	globalViewerSettings.windowHeight = h
}

// GetFOV returns the vertical field of view in degrees.
func GetFOV() float32 {
	globalViewerSettings.mu.RLock()
	defer globalViewerSettings.mu.RUnlock()
	return globalViewerSettings.fov
}

// SetFOV sets the vertical field of view, clamped to [30, 110] degrees.
func SetFOV(fov float32) {
	globalViewerSettings.mu.Lock()
	defer globalViewerSettings.mu.Unlock()
	if fov < 30 {
		fov = 30
	}
	if fov > 110 {
		fov = 110
	}
	globalViewerSettings.fov = fov
}

// GetMouseSensitivity returns the mouse look sensitivity.
func GetMouseSensitivity() float64 {
	globalViewerSettings.mu.RLock()
	defer globalViewerSettings.mu.RUnlock()
	return globalViewerSettings.mouseSensitivity
}

// SetMouseSensitivity sets the mouse look sensitivity.
func SetMouseSensitivity(s float64) {
	globalViewerSettings.mu.Lock()
	defer globalViewerSettings.mu.Unlock()
	if s <= 0 {
		s = 0.1
	}
	globalViewerSettings.mouseSensitivity = s
}

// GetVSync reports whether buffer swaps wait for vertical sync.
func GetVSync() bool {
	globalViewerSettings.mu.RLock()
	defer globalViewerSettings.mu.RUnlock()
	return globalViewerSettings.vsync
}

// SetVSync sets whether buffer swaps wait for vertical sync.
func SetVSync(v bool) {
	globalViewerSettings.mu.Lock()
	defer globalViewerSettings.mu.Unlock()
	globalViewerSettings.vsync = v
}
