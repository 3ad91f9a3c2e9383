// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvnum/number"
)

func newPolarCmd(s *settings) *cobra.Command {
	var from bool

	c := &cobra.Command{
		Use:   "polar number | polar --from modulus degrees",
		Short: "Convert between rectangular and polar form",
		Long: `Print the modulus and argument (degrees, [0, 360)) of a number, or with
--from build a number from a modulus and an argument in degrees.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if from {
				if len(args) != 2 {
					return fmt.Errorf("%w: want modulus and degrees, got %d", errArgCount, len(args))
				}
				mod, err := strconv.ParseFloat(args[0], 64)
				if err != nil {
					return fmt.Errorf("modulus %q: %w", args[0], err)
				}
				deg, err := strconv.ParseFloat(args[1], 64)
				if err != nil {
					return fmt.Errorf("degrees %q: %w", args[1], err)
				}
				_, err = fmt.Fprintln(out, s.format(s.finish(number.FromPolar(mod, deg))))
				return err
			}

			if len(args) != 1 {
				return fmt.Errorf("%w: want one number, got %d", errArgCount, len(args))
			}
			n, err := number.Parse(args[0])
			if err != nil {
				return err
			}
			mod, deg := number.Polar(n)
			_, err = fmt.Fprintln(out,
				s.format(s.finish(number.NewReal(mod))),
				s.format(s.finish(number.NewReal(deg))))
			return err
		},
	}
	c.Flags().BoolVar(&from, "from", false, "build a number from modulus and degrees")

	return c
}
