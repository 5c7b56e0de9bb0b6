package responsive

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// fileConfig mirrors Config with optional fields so a file only overrides
// the values it actually sets.
type fileConfig struct {
	DesignWidth  *float32        `toml:"design_width" yaml:"design_width"`
	DesignHeight *float32        `toml:"design_height" yaml:"design_height"`
	MaxTextScale *float32        `toml:"max_text_scale" yaml:"max_text_scale"`
	Breakpoints  fileBreakpoints `toml:"breakpoints" yaml:"breakpoints"`
}

type fileBreakpoints struct {
	MobileMax *float32 `toml:"mobile_max" yaml:"mobile_max"`
	TabletMax *float32 `toml:"tablet_max" yaml:"tablet_max"`
}

// LoadConfig reads a config file and merges it over the defaults. The
// format is chosen by extension: .toml, .yaml or .yml. Fields absent from
// the file keep their default values; the merged config must still
// validate.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	var fc fileConfig
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if err := toml.Unmarshal(data, &fc); err != nil {
			return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	default:
		return Config{}, fmt.Errorf("unsupported config format %q (want .toml, .yaml or .yml)", ext)
	}

	cfg := DefaultConfig()
	if fc.DesignWidth != nil {
		cfg.DesignWidth = *fc.DesignWidth
	}
	if fc.DesignHeight != nil {
		cfg.DesignHeight = *fc.DesignHeight
	}
	if fc.MaxTextScale != nil {
		cfg.MaxTextScale = *fc.MaxTextScale
	}
	if fc.Breakpoints.MobileMax != nil {
		cfg.Breakpoints.MobileMax = *fc.Breakpoints.MobileMax
	}
	if fc.Breakpoints.TabletMax != nil {
		cfg.Breakpoints.TabletMax = *fc.Breakpoints.TabletMax
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// InitFromFile loads a config file and registers it as the active
// configuration. Same startup contract as Init.
func InitFromFile(path string) error {
	cfg, err := LoadConfig(path)
	if err != nil {
		return err
	}
	return Init(cfg)
}
