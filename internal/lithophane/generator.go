// Package lithophane turns images into printable lithophane meshes.
package lithophane

import (
	"context"
	"fmt"
	"image"
	gomath "math"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/lithophane/internal/heightmap"
	"github.com/Faultbox/lithophane/internal/logger"
	"github.com/Faultbox/lithophane/internal/mesh"
)

// Request holds the inputs of one generation call. Images must be fully
// decoded before Generate is called.
type Request struct {
	Shape  Shape
	Images []image.Image
	Mode   heightmap.AdjustmentMode
	// Resolution is the raster density in pixels per millimeter.
	Resolution float64
}

// Minimum raster sizes the builders can triangulate.
const (
	minPanelSamples    = 2
	minCylinderColumns = 3
	minCylinderRows    = 2
)

// Generate builds the mesh for req. Identical requests produce identical
// vertex and index buffers. ctx is checked between pipeline stages.
func Generate(ctx context.Context, req Request) (*mesh.Mesh, error) {
	if err := checkResolution(req.Resolution); err != nil {
		return nil, err
	}
	start := time.Now()

	var (
		m   *mesh.Mesh
		err error
	)
	switch s := req.Shape.(type) {
	case Flat:
		m, err = generateFlat(ctx, s, req)
	case Cylinder:
		m, err = generateCylinder(ctx, s, req)
	case Prism:
		m, err = generatePrism(ctx, s, req)
	default:
		return nil, fmt.Errorf("%w: %T", ErrInvalidShapeType, req.Shape)
	}
	if err != nil {
		return nil, err
	}

	logger.Debug("lithophane generated",
		zap.String("shape", string(req.Shape.Kind())),
		zap.Int("vertices", len(m.Vertices)),
		zap.Int("triangles", m.TriangleCount()),
		zap.Duration("elapsed", time.Since(start)),
	)
	return m, nil
}

func generateFlat(ctx context.Context, s Flat, req Request) (*mesh.Mesh, error) {
	if len(req.Images) < 1 {
		return nil, fmt.Errorf("%w: flat panel needs 1 image, got 0", ErrInsufficientImages)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	w, h, err := RasterSize(s.Width, s.Height, req.Resolution)
	if err != nil {
		return nil, err
	}
	hm, err := buildHeightMap(ctx, req.Images[0], max(w, minPanelSamples), max(h, minPanelSamples), req.Mode)
	if err != nil {
		return nil, err
	}
	return mesh.BuildFlat(hm, s.Width, s.Height, s.MinThickness, s.MaxThickness)
}

func generateCylinder(ctx context.Context, s Cylinder, req Request) (*mesh.Mesh, error) {
	if len(req.Images) < 1 {
		return nil, fmt.Errorf("%w: cylinder needs 1 image, got 0", ErrInsufficientImages)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	w, h, err := RasterSize(gomath.Pi*s.Diameter, s.Height, req.Resolution)
	if err != nil {
		return nil, err
	}
	hm, err := buildHeightMap(ctx, req.Images[0], max(w, minCylinderColumns), max(h, minCylinderRows), req.Mode)
	if err != nil {
		return nil, err
	}
	return mesh.BuildCylinder(hm, s.Diameter, s.Height, s.MinThickness, s.MaxThickness, s.IncludeTop, s.IncludeBottom)
}

func generatePrism(ctx context.Context, s Prism, req Request) (*mesh.Mesh, error) {
	if s.Sides > 0 && len(req.Images) < s.Sides {
		return nil, fmt.Errorf("%w: prism with %d sides needs %d images, got %d", ErrInsufficientImages, s.Sides, s.Sides, len(req.Images))
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	w, h, err := RasterSize(mesh.SideWidth(s.Sides, s.Radius), s.Height, req.Resolution)
	if err != nil {
		return nil, err
	}
	w, h = max(w, minPanelSamples), max(h, minPanelSamples)

	maps := make([]*heightmap.HeightMap, s.Sides)
	for i := 0; i < s.Sides; i++ {
		hm, err := buildHeightMap(ctx, req.Images[i], w, h, req.Mode)
		if err != nil {
			return nil, fmt.Errorf("prism face %d: %w", i, err)
		}
		maps[i] = hm
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return mesh.BuildPrism(maps, s.Sides, s.Radius, s.Height, s.MinThickness, s.MaxThickness, s.IncludeTop, s.IncludeBottom)
}

func buildHeightMap(ctx context.Context, img image.Image, w, h int, mode heightmap.AdjustmentMode) (*heightmap.HeightMap, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	hm, err := heightmap.Build(img, w, h, mode)
	if err != nil {
		return nil, err
	}
	if logger.Log.Core().Enabled(zap.DebugLevel) {
		st := hm.Summarize()
		logger.Debug("height map built",
			zap.Int("width", w),
			zap.Int("height", h),
			zap.Stringer("mode", mode),
			zap.Float64("mean", st.Mean),
			zap.Float64("stddev", st.StdDev),
		)
	}
	return hm, nil
}

// RasterSize converts a physical size in millimeters to a pixel raster at
// resolution pixels per millimeter.
func RasterSize(widthMM, heightMM, resolution float64) (int, int, error) {
	if err := checkResolution(resolution); err != nil {
		return 0, 0, err
	}
	w := int(gomath.Round(widthMM * resolution))
	h := int(gomath.Round(heightMM * resolution))
	if w < 1 || h < 1 {
		return 0, 0, fmt.Errorf("%w: %.3gx%.3g mm at %.3g px/mm rounds to %dx%d px", ErrInvalidResolution, widthMM, heightMM, resolution, w, h)
	}
	return w, h, nil
}

func checkResolution(resolution float64) error {
	if !(resolution > 0) || gomath.IsInf(resolution, 0) {
		return fmt.Errorf("%w: resolution must be a positive px/mm, got %v", ErrInvalidResolution, resolution)
	}
	return nil
}

// Filename returns the conventional export name, e.g. lithophane_flat.stl.
func Filename(kind ShapeKind, ext string) string {
	return fmt.Sprintf("lithophane_%s.%s", kind, ext)
}
