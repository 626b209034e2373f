// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/mathrobo/internal/config"
	"github.com/katalvlaran/mathrobo/internal/scenario"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// app carries what every subcommand needs once the root has loaded config.
type app struct {
	cfg    *config.Config
	logger *log.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	var cfgFile string

	root := &cobra.Command{
		Use:   "mathrobo",
		Short: "Rotations, rigid transforms and CMTMs from the command line",
		Long: `mathrobo reads a TOML scenario (a chain of frames plus derivative
vectors) and prints the resulting composite motion transformation
matrix, applies it to vectors, or times the underlying kernels.

Examples:
  mathrobo block arm.toml             Print the full block matrix
  mathrobo block arm.toml --order 2   Print the order-2 block matrix
  mathrobo apply arm.toml -x 0,0,1,0,0,0
  mathrobo bench --iterations 50000`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger = log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
				Prefix:          "mathrobo",
				Level:           cfg.Level(),
				ReportTimestamp: cfg.Log.Timestamps,
			})
			return nil
		},
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (TOML); MATHROBO_* environment variables take precedence")

	root.AddCommand(newBlockCmd(a))
	root.AddCommand(newApplyCmd(a))
	root.AddCommand(newBenchCmd(a))

	return root
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	if err := fang.Execute(
		context.Background(),
		newRootCmd(),
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		return 1
	}
	return 0
}

// resolve loads the scenario at path; the configured tolerance applies when
// the file does not set its own.
func (a *app) resolve(path string) (*scenario.Resolved, error) {
	f, err := scenario.Load(path)
	if err != nil {
		return nil, err
	}
	if f.Tolerance == 0 {
		f.Tolerance = a.cfg.Tolerance
	}
	a.logger.Debug("loaded scenario", "path", path, "dimension", f.Dimension, "frames", len(f.Frames))

	return scenario.Resolve(f, a.logger)
}
