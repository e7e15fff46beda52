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

// Package report renders benchmark results as plain text or YAML.
package report

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
	"gopkg.in/yaml.v3"

	"github.com/simpleopenblas/blasbench/bench"
	"github.com/simpleopenblas/blasbench/blas"
	"github.com/simpleopenblas/blasbench/grid"
)

// ErrUnknownFormat is returned for formats other than text and yaml.
var ErrUnknownFormat = errors.New("report: unknown format")

// Format selects the output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
)

// ParseFormat validates s.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatYAML:
		return f, nil
	}
	return "", fmt.Errorf("%w %q", ErrUnknownFormat, s)
}

// Write renders v, which must be one of the bench result types or
// blas.CPUInfo. Grid results in text form print one line per trial.
func Write(w io.Writer, format Format, v any) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("report: encoding yaml: %w", err)
		}
		return enc.Close()
	case FormatText:
		return writeText(w, v)
	}
	return fmt.Errorf("%w %q", ErrUnknownFormat, format)
}

func writeText(w io.Writer, v any) error {
	switch r := v.(type) {
	case bench.OuterResult:
		return writeOuter(w, r)
	case bench.LoopResult:
		return writeLoop(w, r)
	case bench.GridResult:
		for i, s := range r.Trials {
			if err := WriteTrial(w, i+1, s); err != nil {
				return err
			}
		}
		return nil
	case blas.CPUInfo:
		_, err := fmt.Fprintf(w, "arch: %s\nlevel: %s\ncpus: %d\navx2: %t fma: %t avx512: %t asimd: %t\nmemory: %d bytes\n",
			r.Arch, r.Level, r.NumCPU, r.HasAVX2, r.HasFMA, r.HasAVX512, r.HasASIMD, r.TotalMemory)
		return err
	}
	return fmt.Errorf("report: cannot render %T as text", v)
}

// WriteTrial prints a single grid trial: "trial N: RATE points/s".
func WriteTrial(w io.Writer, n int, s grid.ThroughputSample) error {
	_, err := fmt.Fprintf(w, "trial %d: %.0f points/s\n", n, s.Rate)
	return err
}

// writeOuter prints A in storage order, then as a matrix.
func writeOuter(w io.Writer, r bench.OuterResult) error {
	parts := make([]string, len(r.A))
	for i, v := range r.A {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	if _, err := fmt.Fprintln(w, strings.Join(parts, " ")); err != nil {
		return err
	}

	layout, err := blas.ParseLayout(r.Layout)
	if err != nil {
		return err
	}
	var m mat.Matrix
	if layout == blas.ColMajor {
		m = mat.NewDense(r.Cols, r.Rows, r.A).T()
	} else {
		m = mat.NewDense(r.Rows, r.Cols, r.A)
	}
	_, err = fmt.Fprintf(w, "A = %v\n", mat.Formatted(m, mat.Prefix("    "), mat.Squeeze()))
	return err
}

func writeLoop(w io.Writer, r bench.LoopResult) error {
	_, err := fmt.Fprintf(w, "%s %s %dx%d %s: %d calls in %v, %.0f ops/s, %.3f GFLOP/s\n",
		r.Op, r.Precision, r.Size, r.Size, r.Layout, r.Iterations, r.Elapsed, r.OpsPerSec, r.FLOPS/1e9)
	return err
}
