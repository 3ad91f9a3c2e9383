// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvnum/number"
	"github.com/katalvlaran/lvnum/numutil"
)

func newGCDCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "gcd a b",
		Short: "Greatest common divisor of two whole numbers",
		Long: `Print the greatest common divisor of two whole real numbers. When either
operand is not whole, the second operand is printed unchanged. Operands
below 2 in absolute value yield 1.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := number.Parse(args[0])
			if err != nil {
				return err
			}
			b, err := number.Parse(args[1])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), s.format(numutil.GCDOf(a, b)))
			return err
		},
	}
}
