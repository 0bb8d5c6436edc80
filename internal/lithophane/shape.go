package lithophane

import (
	"fmt"
	gomath "math"
	"strings"

	"go.uber.org/multierr"

	"github.com/Faultbox/lithophane/internal/mesh"
)

// ShapeKind names a carrier shape.
type ShapeKind string

// Supported shape kinds.
const (
	KindFlat     ShapeKind = "flat"
	KindCylinder ShapeKind = "cylinder"
	KindPrism    ShapeKind = "prism"
)

// ParseShapeKind parses a shape name case-insensitively.
func ParseShapeKind(s string) (ShapeKind, error) {
	switch k := ShapeKind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindFlat, KindCylinder, KindPrism:
		return k, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidShapeType, s)
}

// Shape is the parameter record of one carrier shape: Flat, Cylinder or Prism.
type Shape interface {
	Kind() ShapeKind
	// Validate reports every violated bound, each wrapping ErrInvalidDimensions.
	Validate() error
	shape()
}

// Flat is a rectangular panel.
type Flat struct {
	Width        float64
	Height       float64
	MinThickness float64
	MaxThickness float64
}

// Cylinder is a tube with the image wrapped around its outside.
type Cylinder struct {
	Diameter      float64
	Height        float64
	MinThickness  float64
	MaxThickness  float64
	IncludeTop    bool
	IncludeBottom bool
}

// Prism is an N-sided lamp with one image per face. Each face sits Radius
// from the axis and is 2*Radius*sin(pi/Sides) wide.
type Prism struct {
	Sides         int
	Radius        float64
	Height        float64
	MinThickness  float64
	MaxThickness  float64
	IncludeTop    bool
	IncludeBottom bool
}

func (Flat) Kind() ShapeKind     { return KindFlat }
func (Cylinder) Kind() ShapeKind { return KindCylinder }
func (Prism) Kind() ShapeKind    { return KindPrism }

func (Flat) shape()     {}
func (Cylinder) shape() {}
func (Prism) shape()    {}

// Validate implements Shape.
func (f Flat) Validate() error {
	return multierr.Combine(
		positive("width", f.Width),
		positive("height", f.Height),
		thickness(f.MinThickness, f.MaxThickness),
	)
}

// Validate implements Shape.
func (c Cylinder) Validate() error {
	err := multierr.Combine(
		positive("diameter", c.Diameter),
		positive("height", c.Height),
		thickness(c.MinThickness, c.MaxThickness),
	)
	if c.Diameter > 0 && c.MinThickness > 0 && c.Diameter <= c.MinThickness {
		err = multierr.Append(err, fmt.Errorf("%w: diameter %v must exceed min thickness %v", ErrInvalidDimensions, c.Diameter, c.MinThickness))
	}
	return err
}

// Validate implements Shape.
func (p Prism) Validate() error {
	var err error
	if p.Sides < mesh.MinSides || p.Sides > mesh.MaxSides {
		err = fmt.Errorf("%w: sides %d outside [%d, %d]", ErrInvalidDimensions, p.Sides, mesh.MinSides, mesh.MaxSides)
	}
	return multierr.Combine(
		err,
		positive("radius", p.Radius),
		positive("height", p.Height),
		thickness(p.MinThickness, p.MaxThickness),
	)
}

func positive(name string, v float64) error {
	if v > 0 && !gomath.IsInf(v, 1) {
		return nil
	}
	return fmt.Errorf("%w: %s must be a positive length, got %v", ErrInvalidDimensions, name, v)
}

func thickness(minT, maxT float64) error {
	err := positive("min thickness", minT)
	if !(maxT > minT) || gomath.IsInf(maxT, 1) {
		err = multierr.Append(err, fmt.Errorf("%w: max thickness %v must exceed min thickness %v", ErrInvalidDimensions, maxT, minT))
	}
	return err
}
