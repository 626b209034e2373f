// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/mathrobo/cmtm"
)

func newBlockCmd(a *app) *cobra.Command {
	var order int

	cmd := &cobra.Command{
		Use:   "block <scenario>",
		Short: "Print the block matrix of a scenario's CMTM",
		Long: `Print the (D·k)×(D·k) lower-block-triangular matrix of the scenario's CMTM.
k defaults to the CMTM order (number of derivatives + 1).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.resolve(args[0])
			if err != nil {
				return err
			}
			var opts []cmtm.Option
			if cmd.Flags().Changed("order") {
				opts = append(opts, cmtm.WithOrder(order))
			}
			m, err := r.BlockMatrix(opts...)
			if err != nil {
				return err
			}
			a.logger.Info("block matrix", "dimension", r.Dimension, "rows", m.Rows(), "order", m.Rows()/r.Dimension)

			return writeRows(cmd.OutOrStdout(), m.RawRows(), a.cfg.Output.Precision)
		},
	}
	cmd.Flags().IntVarP(&order, "order", "k", 0, "number of block rows (1..order); defaults to the full order")

	return cmd
}
