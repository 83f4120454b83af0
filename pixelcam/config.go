package pixelcam

import (
	"math"

	"github.com/automoto/pixelcam/shared/pixelmath"
)

const (
	DefaultPixelsPerUnit = 100
	DefaultZoomLevel     = 1
)

// AdvancedSettings holds the optional tuning bag.
type AdvancedSettings struct {
	// Material, when set, replaces the fallback compositing material.
	Material Material
	// AspectStretch scales the final quad for non-square output pixels.
	// A component <= pixelmath.Epsilon disables stretching.
	AspectStretch pixelmath.Vec2
	// PerspectiveZ is the depth that renders pixel perfect in perspective mode.
	// It is clamped to the camera clip planes.
	PerspectiveZ float64
	// Downsample divides the buffer resolution. Values below 1 count as 1.
	Downsample float64
}

// DefaultAdvancedSettings is the identity bag for a camera with the given far
// clip plane: no stretch, perspective depth at half the far plane, no
// downsampling.
func DefaultAdvancedSettings(farClip float64) AdvancedSettings {
	return AdvancedSettings{
		AspectStretch: pixelmath.One,
		PerspectiveZ:  farClip / 2,
		Downsample:    1,
	}
}

// Config holds the camera tunables.
type Config struct {
	PixelsPerUnit float64
	ZoomLevel     float64
	// Advanced is optional. When nil every advanced property takes its
	// DefaultAdvancedSettings value.
	Advanced *AdvancedSettings
}

// Option configures a Config.
type Option func(*Config)

// NewConfig returns a Config with defaults applied, then opts.
func NewConfig(opts ...Option) Config {
	c := Config{
		PixelsPerUnit: DefaultPixelsPerUnit,
		ZoomLevel:     DefaultZoomLevel,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

func WithPixelsPerUnit(ppu float64) Option {
	return func(c *Config) {
		if ppu > 0 && !math.IsInf(ppu, 1) {
			c.PixelsPerUnit = ppu
		}
	}
}

func WithZoomLevel(zoom float64) Option {
	return func(c *Config) { c.ZoomLevel = zoom }
}

// WithAdvanced copies a into the config.
func WithAdvanced(a AdvancedSettings) Option {
	return func(c *Config) { c.Advanced = &a }
}

// resolveAdvanced is the only place the optional bag is inspected.
func (c Config) resolveAdvanced(near, far float64) AdvancedSettings {
	a := DefaultAdvancedSettings(far)
	if c.Advanced != nil {
		a = *c.Advanced
	}
	a.AspectStretch = pixelmath.NormalizeStretch(a.AspectStretch)
	a.PerspectiveZ = pixelmath.ClampPerspectiveZ(a.PerspectiveZ, near, far)
	if !(a.Downsample >= 1) || math.IsInf(a.Downsample, 1) {
		a.Downsample = 1
	}
	return a
}
