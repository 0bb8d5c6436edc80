package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Faultbox/lithophane/internal/imageio"
	"github.com/Faultbox/lithophane/internal/lithophane"
	"github.com/Faultbox/lithophane/internal/logger"
	"github.com/Faultbox/lithophane/pkg/formats"
)

func newGenerateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "generate IMAGE...",
		Short: "Generate an STL lithophane from one or more images",
		Long: `Generate builds a lithophane for the configured shape and writes it as STL.

A flat panel or cylinder uses the first image. A prism uses one image per
side in order; extra images are ignored.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.generate(cmd, args)
		},
	}
}

func (a *app) generate(cmd *cobra.Command, paths []string) error {
	ctx := cmd.Context()
	cfg := a.cfg

	shape, err := cfg.BuildShape()
	if err != nil {
		return err
	}
	mode, err := cfg.AdjustmentMode()
	if err != nil {
		return err
	}
	format, err := formats.ParseSTLFormat(cfg.Output.Format)
	if err != nil {
		return err
	}

	start := time.Now()
	images, err := imageio.LoadAll(ctx, paths)
	if err != nil {
		return err
	}
	logger.Debug("images decoded", zap.Int("count", len(images)), zap.Duration("elapsed", time.Since(start)))

	m, err := lithophane.Generate(ctx, lithophane.Request{
		Shape:      shape,
		Images:     images,
		Mode:       mode,
		Resolution: cfg.Shape.Resolution,
	})
	if err != nil {
		return err
	}

	filename := lithophane.Filename(shape.Kind(), "stl")
	name := cfg.Output.ModelName
	if name == "" {
		name = strings.TrimSuffix(filename, ".stl")
	}

	if err := os.MkdirAll(cfg.Output.Dir, 0755); err != nil {
		return err
	}
	path := filepath.Join(cfg.Output.Dir, filename)
	if err := formats.SaveSTL(m.ToSTL(name), path, format); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	size := m.Bounds().Size()
	logger.Info("lithophane written",
		zap.String("path", path),
		zap.Stringer("format", format),
		zap.Int("triangles", m.TriangleCount()),
		zap.Duration("elapsed", time.Since(start)),
	)
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d triangles, %.1f x %.1f x %.1f mm\n",
		path, m.TriangleCount(), size.X, size.Y, size.Z)
	return nil
}
