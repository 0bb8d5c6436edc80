package config

import (
	"fmt"

	"github.com/Faultbox/lithophane/internal/heightmap"
	"github.com/Faultbox/lithophane/internal/lithophane"
)

// BuildShape returns the shape parameters for the configured kind.
func (c *Config) BuildShape() (lithophane.Shape, error) {
	kind, err := lithophane.ParseShapeKind(c.Shape.Kind)
	if err != nil {
		return nil, err
	}
	s := c.Shape
	switch kind {
	case lithophane.KindFlat:
		return lithophane.Flat{
			Width:        s.Flat.Width,
			Height:       s.Flat.Height,
			MinThickness: s.MinThickness,
			MaxThickness: s.MaxThickness,
		}, nil
	case lithophane.KindCylinder:
		return lithophane.Cylinder{
			Diameter:      s.Cylinder.Diameter,
			Height:        s.Cylinder.Height,
			MinThickness:  s.MinThickness,
			MaxThickness:  s.MaxThickness,
			IncludeTop:    s.IncludeTop,
			IncludeBottom: s.IncludeBottom,
		}, nil
	case lithophane.KindPrism:
		return lithophane.Prism{
			Sides:         s.Prism.Sides,
			Radius:        s.Prism.Radius,
			Height:        s.Prism.Height,
			MinThickness:  s.MinThickness,
			MaxThickness:  s.MaxThickness,
			IncludeTop:    s.IncludeTop,
			IncludeBottom: s.IncludeBottom,
		}, nil
	}
	return nil, fmt.Errorf("%w: %q", lithophane.ErrInvalidShapeType, c.Shape.Kind)
}

// AdjustmentMode parses the configured mode.
func (c *Config) AdjustmentMode() (heightmap.AdjustmentMode, error) {
	return heightmap.ParseMode(c.Shape.Mode)
}
