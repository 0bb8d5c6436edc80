// Package config handles lithophane tool configuration loading and management.
package config

// Config holds all tool settings.
type Config struct {
	Shape   ShapeConfig   `yaml:"shape"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// ShapeConfig holds generation parameters shared by all shapes plus the
// per-shape dimensions. Lengths are millimeters.
type ShapeConfig struct {
	Kind          string         `yaml:"kind"` // flat, cylinder or prism
	MinThickness  float64        `yaml:"min_thickness"`
	MaxThickness  float64        `yaml:"max_thickness"`
	Resolution    float64        `yaml:"resolution"` // pixels per mm
	Mode          string         `yaml:"mode"`       // stretch, fit, cover or tile
	IncludeTop    bool           `yaml:"include_top"`
	IncludeBottom bool           `yaml:"include_bottom"`
	Flat          FlatConfig     `yaml:"flat"`
	Cylinder      CylinderConfig `yaml:"cylinder"`
	Prism         PrismConfig    `yaml:"prism"`
}

// FlatConfig holds flat panel dimensions.
type FlatConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// CylinderConfig holds cylinder dimensions.
type CylinderConfig struct {
	Diameter float64 `yaml:"diameter"`
	Height   float64 `yaml:"height"`
}

// PrismConfig holds prism dimensions.
type PrismConfig struct {
	Sides  int     `yaml:"sides"`
	Radius float64 `yaml:"radius"`
	Height float64 `yaml:"height"`
}

// OutputConfig holds export settings.
type OutputConfig struct {
	Dir       string `yaml:"dir"`
	Format    string `yaml:"format"`     // binary or ascii
	ModelName string `yaml:"model_name"` // empty means lithophane_<kind>
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Shape: ShapeConfig{
			Kind:          "flat",
			MinThickness:  0.8,
			MaxThickness:  3.0,
			Resolution:    5,
			Mode:          "fit",
			IncludeTop:    false,
			IncludeBottom: false,
			Flat: FlatConfig{
				Width:  100,
				Height: 100,
			},
			Cylinder: CylinderConfig{
				Diameter: 80,
				Height:   100,
			},
			Prism: PrismConfig{
				Sides:  4,
				Radius: 40,
				Height: 100,
			},
		},
		Output: OutputConfig{
			Dir:    ".",
			Format: "binary",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
