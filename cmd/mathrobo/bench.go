// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/mathrobo/cmtm"
	"github.com/katalvlaran/mathrobo/internal/scenario"
)

// benchScenario is used when bench runs without a scenario file.
const benchScenario = `
dimension = 6
derivatives = [[0, 0, 1, 0.1, 0, 0], [0, 0, 0, 0, 0, 0.5], [0.2, 0, 0, 0, 0, 0]]

[[frames]]
name = "base"
axis = [0, 0, 1]
angle = 0.7
translation = [0, 0, 0.3]

[[frames]]
name = "shoulder"
euler = [0, 0.4, 0]
translation = [0.4, 0, 0]

[[frames]]
name = "wrist"
rotation_vector = [0.1, 0.2, 0.3]
translation = [0.25, 0, 0]
`

// sink keeps the timed loops from being optimised away.
var sink float64

type benchResult struct {
	name  string
	ops   int
	total time.Duration
}

func newBenchCmd(a *app) *cobra.Command {
	var iterations, workers, blocks int

	cmd := &cobra.Command{
		Use:   "bench [scenario]",
		Short: "Time the rotation, transform and CMTM kernels",
		Long: `Time SO(3) and SE(3) point maps and the CMTM action in tight loops, then
build block matrices in parallel. Without a scenario a built-in
three-link arm is used.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.benchScenario(args)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("iterations") {
				iterations = a.cfg.Bench.Iterations
			}
			if !cmd.Flags().Changed("workers") {
				workers = a.cfg.Bench.Workers
			}
			if iterations <= 0 || workers <= 0 || blocks <= 0 {
				return errors.New("bench: --iterations, --workers and --blocks need positive values")
			}

			results := []benchResult{
				timeLoop("so3.apply", iterations, func(i int) float64 {
					p := r.Transform.Rotation().Apply([3]float64{float64(i), 1, 2})
					return p[0]
				}),
				timeLoop("se3.apply", iterations, func(i int) float64 {
					p := r.Transform.Apply([3]float64{float64(i), 1, 2})
					return p[1]
				}),
				timeLoop("cmtm.apply", iterations, func(i int) float64 {
					v := make([]float64, r.Dimension)
					v[0] = float64(i)
					out, _ := r.Apply(v)
					return out[0]
				}),
			}
			block, err := parallelBlocks(cmd.Context(), r, blocks, workers)
			if err != nil {
				return err
			}
			results = append(results, block)

			out := cmd.OutOrStdout()
			for _, res := range results {
				perOp := res.total / time.Duration(res.ops)
				a.logger.Info("benchmark", "case", res.name, "ops", res.ops, "total", res.total, "per_op", perOp)
				if _, err = fmt.Fprintf(out, "%-12s %10d ops %12s/op\n", res.name, res.ops, perOp); err != nil {
					return err
				}
			}
			a.logger.Debug("bench sink", "value", sink)

			return nil
		},
	}
	cmd.Flags().IntVarP(&iterations, "iterations", "n", 0, "loop iterations per kernel (defaults to bench.iterations)")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "parallel block-matrix workers (defaults to bench.workers)")
	cmd.Flags().IntVar(&blocks, "blocks", 256, "number of block matrices built in parallel")

	return cmd
}

func (a *app) benchScenario(args []string) (*scenario.Resolved, error) {
	if len(args) == 1 {
		return a.resolve(args[0])
	}
	f, err := scenario.Parse([]byte(benchScenario))
	if err != nil {
		return nil, err
	}

	return scenario.Resolve(f, a.logger)
}

func timeLoop(name string, n int, body func(i int) float64) benchResult {
	start := time.Now()
	acc := 0.0
	for i := 0; i < n; i++ {
		acc += body(i)
	}
	sink += acc

	return benchResult{name: name, ops: n, total: time.Since(start)}
}

// parallelBlocks builds n block matrices with at most workers goroutines and
// stops at the first error or when ctx is cancelled.
func parallelBlocks(ctx context.Context, r *scenario.Resolved, n, workers int) (benchResult, error) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	order := r.Order()
	start := time.Now()
	for i := 0; i < n; i++ {
		k := 1 + i%order
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			_, err := r.BlockMatrix(cmtm.WithOrder(k))
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return benchResult{}, fmt.Errorf("bench: block matrices: %w", err)
	}

	return benchResult{name: "cmtm.block", ops: n, total: time.Since(start)}, nil
}
