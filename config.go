package responsive

import "fmt"

// Breakpoints holds the width thresholds separating device classes.
// Widths at or below MobileMax are mobile, widths at or below TabletMax
// are tablet, and anything wider is desktop.
type Breakpoints struct {
	MobileMax float32
	TabletMax float32
}

// DefaultBreakpoints returns the standard thresholds: mobile up to 600,
// tablet up to 1024.
func DefaultBreakpoints() Breakpoints {
	return Breakpoints{
		MobileMax: 600,
		TabletMax: 1024,
	}
}

// NewBreakpoints validates the thresholds and returns a Breakpoints value.
// MobileMax must be positive and TabletMax must exceed MobileMax.
func NewBreakpoints(mobileMax, tabletMax float32) (Breakpoints, error) {
	bp := Breakpoints{MobileMax: mobileMax, TabletMax: tabletMax}
	if err := bp.validate(); err != nil {
		return Breakpoints{}, err
	}
	return bp, nil
}

func (bp Breakpoints) validate() error {
	if bp.MobileMax <= 0 {
		return fmt.Errorf("invalid breakpoints: MobileMax %v must be positive", bp.MobileMax)
	}
	if bp.TabletMax <= bp.MobileMax {
		return fmt.Errorf("invalid breakpoints: TabletMax %v must exceed MobileMax %v", bp.TabletMax, bp.MobileMax)
	}
	return nil
}

// Config holds the reference design size and scaling limits. A Config is
// replaced wholesale via Init; fields are never mutated in place.
type Config struct {
	// DesignWidth and DesignHeight are the logical screen size all base
	// magnitudes were authored against.
	DesignWidth  float32
	DesignHeight float32

	// MaxTextScale caps the multiplier suggested by TextScaleFactor.
	MaxTextScale float32

	Breakpoints Breakpoints
}

// DefaultConfig returns the built-in configuration: a 375x812 design
// frame, text scale capped at 2.0 and the standard breakpoints.
func DefaultConfig() Config {
	return Config{
		DesignWidth:  375,
		DesignHeight: 812,
		MaxTextScale: 2.0,
		Breakpoints:  DefaultBreakpoints(),
	}
}

// Validate reports whether the config satisfies its construction contract:
// positive design dimensions, MaxTextScale of at least 1 and valid
// breakpoints.
func (c Config) Validate() error {
	if c.DesignWidth <= 0 || c.DesignHeight <= 0 {
		return fmt.Errorf("invalid config: design size %vx%v must be positive", c.DesignWidth, c.DesignHeight)
	}
	if c.MaxTextScale < 1 {
		return fmt.Errorf("invalid config: MaxTextScale %v must be at least 1", c.MaxTextScale)
	}
	return c.Breakpoints.validate()
}

// activeConfig holds the registered configuration.
// If nil, Current falls back to DefaultConfig.
var activeConfig *Config

// Init validates the config and registers it as the active configuration.
// Call it once at app startup, before the first render pass, on the UI
// thread. Init does no locking; re-initialization from other goroutines
// must be serialized by the caller.
func Init(c Config) error {
	if err := c.Validate(); err != nil {
		return err
	}
	activeConfig = &c
	return nil
}

// Current returns the active configuration, or the defaults when Init has
// never been called.
func Current() Config {
	if activeConfig != nil {
		return *activeConfig
	}
	return DefaultConfig()
}

// Reset restores the default configuration. Intended for tests.
func Reset() {
	activeConfig = nil
}
