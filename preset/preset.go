// Package preset loads camera definitions from YAML files, so viewport
// sizes, framing targets, and starting positions can be tuned without
// recompiling. Pair it with Watcher to rebuild cameras while the game is
// running.
package preset

import (
	"fmt"
	"os"

	"github.com/jakecoffman/cp"
	"gopkg.in/yaml.v3"

	"github.com/brightfall/lens"
)

// Load reads and decodes one YAML preset file into T.
func Load[T any](path string) (*T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("preset: load %s: %w", path, err)
	}
	var p T
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("preset: unmarshal %s: %w", path, err)
	}
	return &p, nil
}

// Parse decodes one YAML preset document into T.
func Parse[T any](data []byte) (*T, error) {
	var p T
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("preset: unmarshal: %w", err)
	}
	return &p, nil
}

// Camera describes a solved-ratio camera. Exactly one of target_width and
// target_height must be set, matching lens.Target.
type Camera struct {
	Name           string  `yaml:"name"`
	ViewportWidth  int     `yaml:"viewport_width"`
	ViewportHeight int     `yaml:"viewport_height"`
	TargetWidth    float64 `yaml:"target_width"`
	TargetHeight   float64 `yaml:"target_height"`
	PositionX      float64 `yaml:"position_x"`
	PositionY      float64 `yaml:"position_y"`
}

// Build constructs the camera this preset describes.
func (c *Camera) Build() (*lens.Camera, error) {
	cam, err := lens.NewCamera(c.ViewportWidth, c.ViewportHeight, lens.Target{
		Width:  c.TargetWidth,
		Height: c.TargetHeight,
	})
	if err != nil {
		return nil, fmt.Errorf("preset: camera %q: %w", c.Name, err)
	}
	cam.Position = cp.Vector{X: c.PositionX, Y: c.PositionY}
	return cam, nil
}

// OldCamera describes a legacy fixed-ratio camera. Omitted viewport
// dimensions fall back to 800x600 and an omitted ratio to 64 pixels per
// game unit.
type OldCamera struct {
	Name           string  `yaml:"name"`
	OriginX        int     `yaml:"origin_x"`
	OriginY        int     `yaml:"origin_y"`
	ViewportWidth  int     `yaml:"viewport_width"`
	ViewportHeight int     `yaml:"viewport_height"`
	PixelRatio     float64 `yaml:"pixel_ratio"`
	PositionX      float64 `yaml:"position_x"`
	PositionY      float64 `yaml:"position_y"`
}

// Build constructs the camera this preset describes.
func (c *OldCamera) Build() *lens.OldCamera {
	vw, vh := c.ViewportWidth, c.ViewportHeight
	if vw == 0 {
		vw = 800
	}
	if vh == 0 {
		vh = 600
	}
	ratio := c.PixelRatio
	if ratio == 0 {
		ratio = 64
	}
	cam := lens.NewOldCamera(c.OriginX, c.OriginY, vw, vh, ratio)
	cam.Position = cp.Vector{X: c.PositionX, Y: c.PositionY}
	return cam
}
