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

	"github.com/spf13/cobra"

	"github.com/simpleopenblas/blasbench/bench"
	"github.com/simpleopenblas/blasbench/blas"
	"github.com/simpleopenblas/blasbench/grid"
	"github.com/simpleopenblas/blasbench/report"
)

type gridFlags struct {
	cfg bench.GridConfig
}

func newGridFlags() *gridFlags {
	return &gridFlags{cfg: bench.DefaultGridConfig()}
}

func (g *gridFlags) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.IntVar(&g.cfg.Trials, "trials", g.cfg.Trials, "number of timed trials")
	f.DurationVar(&g.cfg.MinDuration, "duration", g.cfg.MinDuration, "minimum wall-clock time per trial")
	f.IntVar(&g.cfg.Count, "count", g.cfg.Count, "requested number of sample points")
	f.Float64Var(&g.cfg.Min, "min", g.cfg.Min, "lower bound of the sample cube")
	f.Float64Var(&g.cfg.Max, "max", g.cfg.Max, "upper bound of the sample cube")
}

func (g *gridFlags) config() bench.GridConfig {
	return g.cfg
}

func newGridCmd(o *options) *cobra.Command {
	g := newGridFlags()
	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Transform a 3-D point lattice through an orthographic matrix and report points/s",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGrid(o, g.config())
		},
	}
	g.register(cmd)
	return cmd
}

func runGrid(o *options, cfg bench.GridConfig) error {
	r, format, err := o.setup()
	if err != nil {
		return err
	}

	// Text output streams one line per trial as it finishes.
	var onTrial func(int, grid.ThroughputSample)
	var writeErr error
	if format == report.FormatText {
		onTrial = func(i int, s grid.ThroughputSample) {
			if writeErr == nil {
				writeErr = report.WriteTrial(o.out, i, s)
			}
		}
	}

	res, err := r.Grid(cfg, onTrial)
	if err != nil {
		return err
	}
	if format == report.FormatText {
		return writeErr
	}
	return report.Write(o.out, format, res)
}

func newOuterCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "outer",
		Short: "Rank-1 update A += alpha*x*y^T on a column-major 2x3 matrix",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, format, err := o.setup()
			if err != nil {
				return err
			}
			return report.Write(o.out, format, r.Outer())
		},
	}
}

type loopFlags struct {
	cfg       bench.LoopConfig
	layout    string
	precision string
}

func (l *loopFlags) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.IntVarP(&l.cfg.Size, "size", "n", l.cfg.Size, "matrix dimension")
	f.IntVarP(&l.cfg.Iterations, "iterations", "i", l.cfg.Iterations, "number of calls to time")
	f.Uint64Var(&l.cfg.Seed, "seed", l.cfg.Seed, "random seed for the input buffers")
	f.StringVar(&l.layout, "layout", "row", "matrix layout: row or col")
	f.StringVar(&l.precision, "precision", "double", "element type: double or float")
}

func (l *loopFlags) config() (bench.LoopConfig, error) {
	cfg := l.cfg
	var err error
	if cfg.Layout, err = blas.ParseLayout(l.layout); err != nil {
		return cfg, err
	}
	if cfg.Precision, err = bench.ParsePrecision(l.precision); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func newLoopCmd(o *options, use, short string, run func(*bench.Runner, bench.LoopConfig) (bench.LoopResult, error)) *cobra.Command {
	l := &loopFlags{cfg: bench.DefaultLoopConfig()}
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := l.config()
			if err != nil {
				return err
			}
			r, format, err := o.setup()
			if err != nil {
				return err
			}
			res, err := run(r, cfg)
			if err != nil {
				return err
			}
			return report.Write(o.out, format, res)
		},
	}
	l.register(cmd)
	return cmd
}

// allResult groups the four benchmarks for YAML output.
type allResult struct {
	Outer bench.OuterResult `yaml:"outer"`
	Gemm  bench.LoopResult  `yaml:"gemm"`
	Gemv  bench.LoopResult  `yaml:"gemv"`
	Grid  bench.GridResult  `yaml:"grid"`
}

func newAllCmd(o *options) *cobra.Command {
	g := newGridFlags()
	cmd := &cobra.Command{
		Use:   "all",
		Short: "Run every benchmark with default settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, format, err := o.setup()
			if err != nil {
				return err
			}
			var res allResult
			res.Outer = r.Outer()
			if res.Gemm, err = r.MatMul(bench.DefaultLoopConfig()); err != nil {
				return err
			}
			if res.Gemv, err = r.MatVec(bench.DefaultLoopConfig()); err != nil {
				return err
			}
			if res.Grid, err = r.Grid(g.config(), nil); err != nil {
				return err
			}

			if format == report.FormatYAML {
				return report.Write(o.out, format, res)
			}
			for _, v := range []any{res.Outer, res.Gemm, res.Gemv, res.Grid} {
				if err := report.Write(o.out, format, v); err != nil {
					return err
				}
			}
			return nil
		},
	}
	g.register(cmd)
	return cmd
}

func newBackendsCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "backends",
		Short: "List the registered BLAS backends, default first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			def := blas.DefaultName()
			for _, name := range blas.Names() {
				marker := ""
				if name == def {
					marker = " (default)"
				}
				if _, err := fmt.Fprintf(o.out, "%s%s\n", name, marker); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newCPUCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "cpu",
		Short: "Show the detected CPU features and memory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := report.ParseFormat(o.format)
			if err != nil {
				return err
			}
			return report.Write(o.out, format, blas.CPU())
		},
	}
}
