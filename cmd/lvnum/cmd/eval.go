// SPDX-License-Identifier: MIT

package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvnum/internal/rpn"
)

func newEvalCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "eval [expression]",
		Short: "Evaluate a reverse-Polish expression",
		Long: `Evaluate a reverse-Polish expression, e.g.

  lvnum eval "1+2i 3 *"       → 3+6i
  lvnum eval -- -4 sqrt       → 2i

Without arguments every line of standard input is evaluated.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ev := rpn.New(
				rpn.WithLogger(s.log.WithName("rpn")),
				rpn.WithAccuracy(s.accuracy),
				rpn.WithSmartRound(s.smart),
			)
			out := cmd.OutOrStdout()

			if len(args) > 0 {
				res, err := ev.Eval(cmd.Context(), strings.Join(args, " "))
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(out, s.format(res))
				return err
			}

			sc := bufio.NewScanner(cmd.InOrStdin())
			for sc.Scan() {
				line := strings.TrimSpace(sc.Text())
				if line == "" {
					continue
				}
				res, err := ev.Eval(cmd.Context(), line)
				if err != nil {
					return fmt.Errorf("%q: %w", line, err)
				}
				if _, err := fmt.Fprintln(out, s.format(res)); err != nil {
					return err
				}
			}

			return sc.Err()
		},
	}
}
