// vec2 - 2D vector calculator
// Evaluate Vector2 operations, inspect texture-coordinate layouts and
// simulate spring and projectile motion from the command line.
//
// Vectors are written x,y. Negative vectors need parentheses, (-1,2), or
// a "--" before the arguments so they are not read as flags.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"fortio.org/log"
	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
	"github.com/taigrr/vec2/pkg/math2d"
)

var version = "dev"

var (
	digits  int
	verbose bool
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := fang.Execute(ctx, newRootCmd(), fang.WithVersion(version)); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vec2",
		Short: "2D vector calculator",
		Long: `vec2 - 2D vector calculator

Evaluate Vector2 operations, inspect texture-coordinate layouts and
simulate spring and projectile motion.

Vectors are written x,y. Matrices are comma lists in column-major order:
4 values for a 2x2 matrix, 9 for a 3x3 matrix. Write negative vectors as
(-1,2) or put "--" before the arguments.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.SetLogLevel(log.Debug)
			}
		},
	}

	cmd.PersistentFlags().IntVar(&digits, "digits", 3, "Digits after the decimal point")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Debug logging")

	cmd.AddCommand(calcCommands()...)
	cmd.AddCommand(newUVCmd(), newFollowCmd(), newThrowCmd())
	return cmd
}

func printVector(cmd *cobra.Command, v *math2d.Vector2) {
	fmt.Fprintln(cmd.OutOrStdout(), v.FormatDigits(digits))
}

func printScalar(cmd *cobra.Command, f float64) {
	fmt.Fprintln(cmd.OutOrStdout(), formatScalar(f))
}
