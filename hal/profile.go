//go:build !tinygo

package hal

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultWidth  = 160
	DefaultHeight = 80
	DefaultScale  = 4
	DefaultTPS    = 60
)

// Profile describes the simulated panel used by host backends.
type Profile struct {
	Name   string `yaml:"name"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Scale  int    `yaml:"scale"`
	TPS    int    `yaml:"tps"`
}

// DefaultProfile matches the 0.96" ST7735 module in landscape.
func DefaultProfile() Profile {
	return Profile{
		Name:   "st7735-160x80",
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Scale:  DefaultScale,
		TPS:    DefaultTPS,
	}
}

// LoadProfile reads a YAML profile. Missing fields keep their defaults.
func LoadProfile(path string) (Profile, error) {
	p := DefaultProfile()
	data, err := os.ReadFile(path)
	if err != nil {
		return p, err
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("profile %s: %w", path, err)
	}
	if err := p.Validate(); err != nil {
		return p, fmt.Errorf("profile %s: %w", path, err)
	}
	return p, nil
}

// Validate rejects geometry the renderer cannot drive.
func (p Profile) Validate() error {
	// pixel.Image stores dimensions as int16.
	if p.Width <= 0 || p.Height <= 0 || p.Width > 32767 || p.Height > 32767 {
		return fmt.Errorf("invalid size %dx%d", p.Width, p.Height)
	}
	if p.Scale <= 0 {
		return fmt.Errorf("invalid scale %d", p.Scale)
	}
	if p.TPS <= 0 {
		return fmt.Errorf("invalid tps %d", p.TPS)
	}
	return nil
}
