package config

import "github.com/spf13/pflag"

// Flags holds command-line overrides bound to a flag set. Only flags the
// user actually set override file values.
type Flags struct {
	fs *pflag.FlagSet

	config     *string
	debug      *bool
	logFile    *string
	shape      *string
	width      *float64
	height     *float64
	diameter   *float64
	radius     *float64
	sides      *int
	minT       *float64
	maxT       *float64
	resolution *float64
	mode       *string
	top        *bool
	bottom     *bool
	format     *string
	out        *string
	name       *string
}

// BindFlags registers the override flags on fs.
func BindFlags(fs *pflag.FlagSet) *Flags {
	return &Flags{
		fs:         fs,
		config:     fs.String("config", "", "Path to config file"),
		debug:      fs.Bool("debug", false, "Enable debug logging"),
		logFile:    fs.String("log-file", "", "Also write logs to this file"),
		shape:      fs.StringP("shape", "s", "", "Shape: flat, cylinder or prism"),
		width:      fs.Float64("width", 0, "Flat panel width (mm)"),
		height:     fs.Float64("height", 0, "Height of the selected shape (mm)"),
		diameter:   fs.Float64("diameter", 0, "Cylinder diameter (mm)"),
		radius:     fs.Float64("radius", 0, "Prism circumradius (mm)"),
		sides:      fs.Int("sides", 0, "Prism side count (3-8)"),
		minT:       fs.Float64("min", 0, "Minimum wall thickness (mm)"),
		maxT:       fs.Float64("max", 0, "Maximum wall thickness (mm)"),
		resolution: fs.Float64("resolution", 0, "Raster resolution (px/mm)"),
		mode:       fs.StringP("mode", "m", "", "Image adjustment: stretch, fit, cover or tile"),
		top:        fs.Bool("top", false, "Close the top of cylinders and prisms"),
		bottom:     fs.Bool("bottom", false, "Close the bottom of cylinders and prisms"),
		format:     fs.String("format", "", "STL format: binary or ascii"),
		out:        fs.StringP("out", "o", "", "Output directory"),
		name:       fs.String("name", "", "Model name written to the STL header"),
	}
}

// ConfigPath returns the explicit config path if provided via --config.
func (f *Flags) ConfigPath() string {
	if f == nil {
		return ""
	}
	return *f.config
}

func (f *Flags) changed(name string) bool {
	return f.fs.Changed(name)
}

// Apply applies the set flags to cfg. The shape flag is applied first so
// --height lands on the selected shape.
func (f *Flags) Apply(cfg *Config) {
	if f == nil {
		return
	}
	s := &cfg.Shape

	if *f.debug {
		cfg.Logging.Level = "debug"
	}
	if f.changed("log-file") {
		cfg.Logging.LogFile = *f.logFile
	}
	if f.changed("shape") {
		s.Kind = *f.shape
	}
	if f.changed("width") {
		s.Flat.Width = *f.width
	}
	if f.changed("height") {
		switch s.Kind {
		case "cylinder":
			s.Cylinder.Height = *f.height
		case "prism":
			s.Prism.Height = *f.height
		default:
			s.Flat.Height = *f.height
		}
	}
	if f.changed("diameter") {
		s.Cylinder.Diameter = *f.diameter
	}
	if f.changed("radius") {
		s.Prism.Radius = *f.radius
	}
	if f.changed("sides") {
		s.Prism.Sides = *f.sides
	}
	if f.changed("min") {
		s.MinThickness = *f.minT
	}
	if f.changed("max") {
		s.MaxThickness = *f.maxT
	}
	if f.changed("resolution") {
		s.Resolution = *f.resolution
	}
	if f.changed("mode") {
		s.Mode = *f.mode
	}
	if f.changed("top") {
		s.IncludeTop = *f.top
	}
	if f.changed("bottom") {
		s.IncludeBottom = *f.bottom
	}
	if f.changed("format") {
		cfg.Output.Format = *f.format
	}
	if f.changed("out") {
		cfg.Output.Dir = *f.out
	}
	if f.changed("name") {
		cfg.Output.ModelName = *f.name
	}
}
