// Copyright 2025 blasbench Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/simpleopenblas/blasbench/bench"
	"github.com/simpleopenblas/blasbench/blas"
	"github.com/simpleopenblas/blasbench/report"
)

// options holds the persistent flags shared by every subcommand.
type options struct {
	backend  string
	format   string
	logLevel string

	out    io.Writer
	errOut io.Writer
}

// envOr returns the environment variable key, or def when it is unset.
func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// setup resolves the persistent flags into a runner and an output format.
func (o *options) setup() (*bench.Runner, report.Format, error) {
	level, err := zerolog.ParseLevel(o.logLevel)
	if err != nil {
		return nil, "", fmt.Errorf("invalid log level %q: %w", o.logLevel, err)
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: o.errOut, TimeFormat: time.TimeOnly}).
		Level(level).
		With().Timestamp().Logger()

	format, err := report.ParseFormat(o.format)
	if err != nil {
		return nil, "", err
	}
	b, err := blas.Lookup(o.backend)
	if err != nil {
		return nil, "", err
	}
	logger.Debug().Str("backend", b.Name()).Str("level", blas.CurrentLevel().String()).Msg("backend selected")
	return bench.NewRunner(b, logger), format, nil
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	o := &options{out: out, errOut: errOut}
	gridFlags := newGridFlags()

	cmd := &cobra.Command{
		Use:           "blasbench",
		Short:         "Dense linear-algebra micro-benchmarks over a BLAS backend",
		Long:          "With no subcommand, runs the grid throughput benchmark with its reference settings.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGrid(o, gridFlags.config())
		},
	}
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	pf := cmd.PersistentFlags()
	pf.StringVar(&o.backend, "backend", envOr("BLASBENCH_BACKEND", blas.DefaultName()), "BLAS backend (see 'blasbench backends')")
	pf.StringVar(&o.format, "format", envOr("BLASBENCH_FORMAT", string(report.FormatText)), "output format: text or yaml")
	pf.StringVar(&o.logLevel, "log-level", envOr("BLASBENCH_LOG_LEVEL", zerolog.WarnLevel.String()), "log level (debug, info, warn, error)")
	gridFlags.register(cmd)

	cmd.AddCommand(
		newGridCmd(o),
		newOuterCmd(o),
		newLoopCmd(o, "gemm", "Time repeated matrix-matrix multiplies", (*bench.Runner).MatMul),
		newLoopCmd(o, "gemv", "Time repeated matrix-vector multiplies", (*bench.Runner).MatVec),
		newAllCmd(o),
		newBackendsCmd(o),
		newCPUCmd(o),
	)
	return cmd
}
