// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvnum/number"
)

func newFmtCmd(s *settings) *cobra.Command {
	var asYAML bool

	c := &cobra.Command{
		Use:   "fmt number...",
		Short: "Parse numbers and print them with the configured layout",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values := make([]number.Value, 0, len(args))
			for _, arg := range args {
				n, err := number.Parse(arg)
				if err != nil {
					return err
				}
				values = append(values, number.ValueOf(s.finish(n)))
			}

			out := cmd.OutOrStdout()
			if asYAML {
				enc := yaml.NewEncoder(out)
				if err := enc.Encode(values); err != nil {
					return err
				}
				return enc.Close()
			}
			for _, v := range values {
				if _, err := fmt.Fprintln(out, s.format(v.Get())); err != nil {
					return err
				}
			}

			return nil
		},
	}
	c.Flags().BoolVar(&asYAML, "yaml", false, "print a YAML list with full precision instead")

	return c
}
