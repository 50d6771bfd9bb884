package main

import (
	"fmt"

	"fortio.org/log"
	"github.com/spf13/cobra"
	"github.com/taigrr/vec2/pkg/math2d"
	"github.com/taigrr/vec2/pkg/uvmap"
)

type uvFlags struct {
	plane    string
	texCoord int
	flipV    bool
	offset   string
	rotate   float64
	scale    string
	fit      bool
	clean    bool
}

func newUVCmd() *cobra.Command {
	var f uvFlags
	cmd := &cobra.Command{
		Use:   "uv <model.obj|model.stl|model.glb|model.gltf>",
		Short: "Display texture-coordinate layout statistics",
		Long: `Load the texture coordinates of a model and report bounds, area and
winding. STL files carry no texture coordinates, so their vertices are
projected onto --plane. The layout can be cleaned, transformed and fitted
to the unit square before the report.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUV(cmd, args[0], f)
		},
	}

	cmd.Flags().StringVar(&f.plane, "plane", "xy", "Projection plane for STL files (xy, xz, yz)")
	cmd.Flags().IntVar(&f.texCoord, "texcoord", 0, "glTF TEXCOORD set")
	cmd.Flags().BoolVar(&f.flipV, "flip-v", false, "Flip v for glTF top-left origin")
	cmd.Flags().StringVar(&f.offset, "offset", "0,0", "Texture offset x,y")
	cmd.Flags().Float64Var(&f.rotate, "rotate", 0, "Texture rotation in radians")
	cmd.Flags().StringVar(&f.scale, "scale", "1,1", "Texture scale x,y")
	cmd.Flags().BoolVar(&f.fit, "fit", false, "Fit the layout into the unit square")
	cmd.Flags().BoolVar(&f.clean, "clean", false, "Drop degenerate and duplicate faces and unused coordinates")
	return cmd
}

func runUV(cmd *cobra.Command, path string, f uvFlags) error {
	plane, err := uvmap.ParsePlane(f.plane)
	if err != nil {
		return err
	}
	offset, err := parseVector(f.offset)
	if err != nil {
		return fmt.Errorf("--offset: %w", err)
	}
	scale, err := parseVector(f.scale)
	if err != nil {
		return fmt.Errorf("--scale: %w", err)
	}

	layout, err := uvmap.Load(path, uvmap.Options{Plane: plane, TexCoord: f.texCoord, FlipV: f.flipV})
	if err != nil {
		return fmt.Errorf("load layout: %w", err)
	}

	if f.clean {
		faces, coords := layout.Clean()
		log.Infof("Removed %d faces and %d coordinates", faces, coords)
	}
	if f.rotate != 0 || !offset.Equal(math2d.New(0, 0)) || !scale.Equal(math2d.New(1, 1)) {
		m := uvmap.TextureTransform(offset, f.rotate, scale)
		layout.Transform(&m)
	}
	if f.fit {
		layout.Fit()
	}

	printStats(cmd, layout.Stats())
	return nil
}

func printStats(cmd *cobra.Command, s uvmap.Stats) {
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Layout:     %s\n", s.Name)
	fmt.Fprintf(w, "Coords:     %d\n", s.Coords)
	fmt.Fprintf(w, "Faces:      %d\n", s.Faces)
	fmt.Fprintf(w, "Flipped:    %d\n", s.Flipped)
	fmt.Fprintf(w, "Area:       %s\n", formatScalar(s.Area))
	fmt.Fprintf(w, "Bounds Min: %s\n", s.Min.FormatDigits(digits))
	fmt.Fprintf(w, "Bounds Max: %s\n", s.Max.FormatDigits(digits))
	fmt.Fprintf(w, "Centroid:   %s\n", s.Centroid.FormatDigits(digits))
}
