// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"
)

func newApplyCmd(a *app) *cobra.Command {
	var vector []float64

	cmd := &cobra.Command{
		Use:   "apply <scenario>",
		Short: "Apply a scenario's CMTM base to a tangent vector",
		Long: `Apply the base of the scenario's CMTM to an angular velocity (dimension 3)
or a twist [ω, v] (dimension 6).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.resolve(args[0])
			if err != nil {
				return err
			}
			out, err := r.Apply(vector)
			if err != nil {
				return err
			}

			return writeVector(cmd.OutOrStdout(), out, a.cfg.Output.Precision)
		},
	}
	cmd.Flags().Float64SliceVarP(&vector, "vector", "x", nil, "comma-separated vector of the scenario's dimension")
	_ = cmd.MarkFlagRequired("vector")

	return cmd
}
