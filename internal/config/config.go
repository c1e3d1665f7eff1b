package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/fieldops/om-dispatch/pkg/core/dispatch"
)

// Coordinates is a resolved latitude/longitude pair
type Coordinates struct {
	Latitude  float64 `yaml:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `yaml:"longitude" validate:"min=-180,max=180"`
}

// StretchMode configures the bounded skill-requirement relaxation policy
type StretchMode struct {
	Enabled           bool    `yaml:"enabled"`
	DefaultMultiplier float64 `yaml:"defaultMultiplier,omitempty" validate:"omitempty,gte=1"`
	MaxMultiplier     float64 `yaml:"maxMultiplier,omitempty" validate:"omitempty,gte=1"`
}

// Policy carries the dispatch policy settings
type Policy struct {
	VehicleCapacity int          `yaml:"vehicleCapacity" validate:"required,min=1"`
	SoloDriverID    string       `yaml:"soloDriverID,omitempty"`
	StretchMode     StretchMode  `yaml:"stretchMode"`
	BaseLocation    *Coordinates `yaml:"baseLocation,omitempty"`
}

// Config represents the application configuration
type Config struct {
	DatabaseURL string `yaml:"databaseURL" validate:"required"`
	Policy      Policy `yaml:"policy"`

	// SkillDimensions overrides the default skill model when set
	SkillDimensions     []string `yaml:"skillDimensions,omitempty" validate:"omitempty,min=1,dive,required"`
	LeadershipDimension string   `yaml:"leadershipDimension,omitempty"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Load loads and validates the configuration from dispatch_config.yaml.
// It looks for the config file in the current directory first, then in the
// user's home directory.
func Load() (*Config, error) {
	configPath, err := findConfigFile("dispatch_config.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadWithEnv loads the configuration for a named environment, e.g.
// dispatch_config.test.yaml for "test"
func LoadWithEnv(env string) (*Config, error) {
	if env == "" {
		return Load()
	}

	configPath, err := findConfigFile(fmt.Sprintf("dispatch_config.%s.yaml", env))
	if err != nil {
		return nil, fmt.Errorf("failed to find config file for env %q: %w", env, err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration struct and cross-field constraints
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	sm := cfg.Policy.StretchMode
	if sm.MaxMultiplier > 0 && sm.DefaultMultiplier > sm.MaxMultiplier {
		return fmt.Errorf("config validation failed: stretch defaultMultiplier %.2f exceeds maxMultiplier %.2f",
			sm.DefaultMultiplier, sm.MaxMultiplier)
	}

	if cfg.LeadershipDimension != "" && len(cfg.SkillDimensions) > 0 {
		found := false
		for _, dim := range cfg.SkillDimensions {
			if dim == cfg.LeadershipDimension {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("config validation failed: leadershipDimension %q is not in skillDimensions", cfg.LeadershipDimension)
		}
	}

	return nil
}

// PolicyConfig converts the loaded policy settings into the engine's
// PolicyConfig value
func (c *Config) PolicyConfig() dispatch.PolicyConfig {
	policy := dispatch.PolicyConfig{
		VehicleCapacity:      c.Policy.VehicleCapacity,
		SoloDriverID:         c.Policy.SoloDriverID,
		StretchEnabled:       c.Policy.StretchMode.Enabled,
		StretchMultiplier:    c.Policy.StretchMode.DefaultMultiplier,
		MaxStretchMultiplier: c.Policy.StretchMode.MaxMultiplier,
	}

	if c.Policy.BaseLocation != nil {
		lat := c.Policy.BaseLocation.Latitude
		lon := c.Policy.BaseLocation.Longitude
		policy.BaseLatitude = &lat
		policy.BaseLongitude = &lon
	}

	return policy
}

// SkillModel converts the configured dimension list into the engine's
// SkillModel, falling back to the default model when unset
func (c *Config) SkillModel() dispatch.SkillModel {
	if len(c.SkillDimensions) == 0 {
		return dispatch.DefaultSkillModel()
	}

	model := dispatch.SkillModel{
		Dimensions:          make([]dispatch.SkillDimension, len(c.SkillDimensions)),
		LeadershipDimension: dispatch.DimLeadership,
	}
	for i, dim := range c.SkillDimensions {
		model.Dimensions[i] = dispatch.SkillDimension(dim)
	}
	if c.LeadershipDimension != "" {
		model.LeadershipDimension = dispatch.SkillDimension(c.LeadershipDimension)
	}

	return model
}

// findConfigFile searches for the named file in the current directory and
// the home directory
func findConfigFile(name string) (string, error) {
	if _, err := os.Stat(name); err == nil {
		return name, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homePath := filepath.Join(homeDir, name)
	if _, err := os.Stat(homePath); err == nil {
		return homePath, nil
	}

	return "", fmt.Errorf("config file %s not found in current directory or home directory", name)
}
