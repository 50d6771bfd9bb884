package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/taigrr/vec2/pkg/motion"
)

func newFollowCmd() *cobra.Command {
	var (
		from, to         string
		fps, frames      int
		frequency, ratio float64
		epsilon          float64
	)
	cmd := &cobra.Command{
		Use:   "follow",
		Short: "Trace a spring pulling a point toward a target",
		Long: `Trace a spring pulling a point toward a target, printing one position per
frame until it settles within --epsilon or --frames run out.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := parseVector(from)
			if err != nil {
				return fmt.Errorf("--from: %w", err)
			}
			target, err := parseVector(to)
			if err != nil {
				return fmt.Errorf("--to: %w", err)
			}
			if fps <= 0 {
				return fmt.Errorf("--fps must be positive, got %d", fps)
			}

			f := motion.NewFollower(fps, frequency, ratio)
			f.Reset(start)
			w := cmd.OutOrStdout()
			for i := 1; i <= frames; i++ {
				p := f.Update(target)
				fmt.Fprintf(w, "%d %s\n", i, p.FormatDigits(digits))
				if f.Settled(target, epsilon) {
					break
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "0,0", "Start position x,y")
	cmd.Flags().StringVar(&to, "to", "1,1", "Target position x,y")
	cmd.Flags().IntVar(&fps, "fps", 60, "Frames per second")
	cmd.Flags().IntVar(&frames, "frames", 300, "Maximum frames")
	cmd.Flags().Float64Var(&frequency, "freq", 6, "Spring angular frequency")
	cmd.Flags().Float64Var(&ratio, "damping", 1, "Damping ratio (1 = critically damped)")
	cmd.Flags().Float64Var(&epsilon, "epsilon", 1e-3, "Distance and speed that count as settled")
	return cmd
}

func newThrowCmd() *cobra.Command {
	var (
		pos, vel, gravity string
		fps, frames       int
	)
	cmd := &cobra.Command{
		Use:   "throw",
		Short: "Trace a projectile under constant acceleration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parseVector(pos)
			if err != nil {
				return fmt.Errorf("--pos: %w", err)
			}
			v, err := parseVector(vel)
			if err != nil {
				return fmt.Errorf("--vel: %w", err)
			}
			g := motion.Gravity()
			if gravity != "" {
				if g, err = parseVector(gravity); err != nil {
					return fmt.Errorf("--gravity: %w", err)
				}
			}
			if fps <= 0 {
				return fmt.Errorf("--fps must be positive, got %d", fps)
			}

			b := motion.NewBallistic(fps, p, v, g)
			w := cmd.OutOrStdout()
			for i := 1; i <= frames; i++ {
				fmt.Fprintf(w, "%d %s\n", i, b.Update().FormatDigits(digits))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&pos, "pos", "0,0", "Start position x,y")
	cmd.Flags().StringVar(&vel, "vel", "1,1", "Start velocity x,y")
	cmd.Flags().StringVar(&gravity, "gravity", "", "Acceleration x,y (default 0,-9.81)")
	cmd.Flags().IntVar(&fps, "fps", 60, "Frames per second")
	cmd.Flags().IntVar(&frames, "frames", 60, "Frames to simulate")
	return cmd
}
