package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Faultbox/lithophane/internal/mesh"
	"github.com/Faultbox/lithophane/pkg/formats"
)

func newInspectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect FILE.stl",
		Short: "Print facet count, bounds and watertightness of an STL file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := formats.LoadSTL(args[0])
			if err != nil {
				return err
			}
			m := mesh.FromSTL(s)
			b := m.Bounds()
			size := b.Size()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "name:       %s\n", s.Name)
			fmt.Fprintf(out, "format:     %s\n", s.Format)
			fmt.Fprintf(out, "facets:     %d\n", len(s.Facets))
			fmt.Fprintf(out, "vertices:   %d\n", len(m.Vertices))
			fmt.Fprintf(out, "bounds:     (%.2f, %.2f, %.2f) .. (%.2f, %.2f, %.2f)\n",
				b.Min.X, b.Min.Y, b.Min.Z, b.Max.X, b.Max.Y, b.Max.Z)
			fmt.Fprintf(out, "size:       %.2f x %.2f x %.2f mm\n", size.X, size.Y, size.Z)
			open := m.OpenEdges()
			fmt.Fprintf(out, "open edges: %d\n", open)
			if open == 0 {
				fmt.Fprintf(out, "volume:     %.1f mm^3\n", m.Volume())
			}
			return nil
		},
	}
}
