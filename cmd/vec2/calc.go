package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/taigrr/vec2/pkg/math2d"
)

// vectorCmd builds a command taking n vector arguments and printing a vector.
func vectorCmd(use, short string, n int, fn func(vs []*math2d.Vector2) *math2d.Vector2) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(n),
		RunE: func(cmd *cobra.Command, args []string) error {
			vs, err := parseVectors(args)
			if err != nil {
				return err
			}
			printVector(cmd, fn(vs))
			return nil
		},
	}
}

// scalarCmd builds a command taking n vector arguments and printing a number.
func scalarCmd(use, short string, n int, fn func(vs []*math2d.Vector2) float64) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(n),
		RunE: func(cmd *cobra.Command, args []string) error {
			vs, err := parseVectors(args)
			if err != nil {
				return err
			}
			printScalar(cmd, fn(vs))
			return nil
		},
	}
}

func calcCommands() []*cobra.Command {
	return []*cobra.Command{
		vectorCmd("add <v> <w>", "Sum of two vectors", 2, func(vs []*math2d.Vector2) *math2d.Vector2 {
			return math2d.Add(vs[0], vs[1])
		}),
		vectorCmd("sub <v> <w>", "Difference v - w", 2, func(vs []*math2d.Vector2) *math2d.Vector2 {
			return math2d.Subtract(vs[0], vs[1])
		}),
		vectorCmd("project <v> <w>", "Projection of w onto v", 2, func(vs []*math2d.Vector2) *math2d.Vector2 {
			return math2d.Project(vs[0], vs[1])
		}),
		vectorCmd("min <v> <w>", "Component-wise minimum", 2, func(vs []*math2d.Vector2) *math2d.Vector2 {
			return math2d.Min(vs[0], vs[1])
		}),
		vectorCmd("max <v> <w>", "Component-wise maximum", 2, func(vs []*math2d.Vector2) *math2d.Vector2 {
			return math2d.Max(vs[0], vs[1])
		}),
		vectorCmd("normalize <v>", "Unit vector in the direction of v", 1, func(vs []*math2d.Vector2) *math2d.Vector2 {
			return math2d.Normalize(vs[0])
		}),
		vectorCmd("perp <v>", "v rotated a quarter turn counter-clockwise", 1, func(vs []*math2d.Vector2) *math2d.Vector2 {
			return math2d.Perpendicular(vs[0])
		}),
		scalarCmd("dot <v> <w>", "Dot product", 2, func(vs []*math2d.Vector2) float64 {
			return math2d.Dot(vs[0], vs[1])
		}),
		scalarCmd("cross <v> <w>", "Scalar cross product", 2, func(vs []*math2d.Vector2) float64 {
			return math2d.Cross(vs[0], vs[1])
		}),
		scalarCmd("rad <v> <w>", "Angle between two unit vectors in radians", 2, func(vs []*math2d.Vector2) float64 {
			return math2d.Rad(vs[0], vs[1])
		}),
		scalarCmd("norm <v>", "Euclidean length", 1, func(vs []*math2d.Vector2) float64 {
			return vs[0].Norm()
		}),
		newScaleCmd(),
		newRotationCmd(),
		newBaryCmd(),
		newMat2Cmd(),
		newMat3Cmd("affine", "Apply a 3x3 matrix as an affine transform (w = 1)", math2d.Multiply2x3Matrix3),
		newMat3Cmd("homog", "Apply a 3x3 matrix with the perspective divide", math2d.MultiplyMatrix3),
	}
}

func newScaleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scale <v> <s>",
		Short: "Multiply a vector by a scalar",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseVector(args[0])
			if err != nil {
				return err
			}
			s, err := parseScalar(args[1])
			if err != nil {
				return err
			}
			printVector(cmd, math2d.MultiplyScalar(v, s))
			return nil
		},
	}
}

func newRotationCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rotation <radians>",
		Short: "Unit vector at an angle from the x axis",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rad, err := parseScalar(args[0])
			if err != nil {
				return err
			}
			printVector(cmd, math2d.Rotation(rad))
			return nil
		},
	}
}

func newBaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bary <v0> <v1> <v2> <u> <v>",
		Short: "Point at barycentric (u, v) of a triangle",
		Long:  "Point at barycentric (u, v) of a triangle: v0 + u(v1 - v0) + v(v2 - v0).",
		Args:  cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			vs, err := parseVectors(args[:3])
			if err != nil {
				return err
			}
			u, err := parseScalar(args[3])
			if err != nil {
				return err
			}
			v, err := parseScalar(args[4])
			if err != nil {
				return err
			}
			printVector(cmd, math2d.BarycentricUV(vs[0], vs[1], vs[2], u, v))
			return nil
		},
	}
}

func newMat2Cmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mat2 <m00,m10,m01,m11> <v>",
		Short: "Multiply a vector by a column-major 2x2 matrix",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := parseMatrix2(args[0])
			if err != nil {
				return err
			}
			v, err := parseVector(args[1])
			if err != nil {
				return err
			}
			printVector(cmd, math2d.MultiplyMatrix2(m, v))
			return nil
		},
	}
}

func newMat3Cmd(name, short string, apply func(*math2d.Matrix3, *math2d.Vector2) *math2d.Vector2) *cobra.Command {
	return &cobra.Command{
		Use:   fmt.Sprintf("%s <m0,...,m8> <v>", name),
		Short: short,
		Long:  short + ". The matrix is 9 values in column-major order.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := parseMatrix3(args[0])
			if err != nil {
				return err
			}
			v, err := parseVector(args[1])
			if err != nil {
				return err
			}
			printVector(cmd, apply(m, v))
			return nil
		},
	}
}
