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

package bench

import (
	"errors"
	"fmt"
	"time"

	"github.com/simpleopenblas/blasbench/grid"
)

// ErrInvalidGridConfig reports a non-positive trial count.
var ErrInvalidGridConfig = errors.New("bench: invalid grid configuration")

// Ortho holds the six bounds of an orthographic projection.
type Ortho struct {
	Left, Right, Bottom, Top, Near, Far float64
}

// GridConfig drives the grid throughput benchmark.
type GridConfig struct {
	Projection  Ortho
	Min, Max    float64
	Count       int
	Trials      int
	MinDuration time.Duration
}

// DefaultGridConfig is the reference setup: a (-1000, 1000)^2 x (0.1, 1000)
// projection, 125000 points in [-100, 100]^3, five one-second trials.
func DefaultGridConfig() GridConfig {
	return GridConfig{
		Projection:  Ortho{Left: -1000, Right: 1000, Bottom: -1000, Top: 1000, Near: 0.1, Far: 1000},
		Min:         -100,
		Max:         100,
		Count:       125000,
		Trials:      5,
		MinDuration: time.Second,
	}
}

// GridResult collects every trial of one grid run.
type GridResult struct {
	Backend     string                  `yaml:"backend"`
	Requested   int                     `yaml:"requested"`
	SampleCount int                     `yaml:"sample_count"`
	MinDuration time.Duration           `yaml:"min_duration"`
	Transform   grid.Transform4x4       `yaml:"transform,flow"`
	Trials      []grid.ThroughputSample `yaml:"trials"`
	// Last is the final transformed point, kept so the work is observable.
	Last grid.Point4 `yaml:"last,flow"`
}

// Grid builds the transform and sample set once, then runs cfg.Trials timed
// trials over them. onTrial, if non-nil, is called after each trial with its
// 1-based index so callers can print as results arrive.
func (r *Runner) Grid(cfg GridConfig, onTrial func(int, grid.ThroughputSample)) (GridResult, error) {
	if cfg.Trials < 1 {
		return GridResult{}, fmt.Errorf("%w: trials %d", ErrInvalidGridConfig, cfg.Trials)
	}
	p := cfg.Projection
	m, err := grid.BuildOrthographicTransform(p.Left, p.Right, p.Bottom, p.Top, p.Near, p.Far)
	if err != nil {
		return GridResult{}, fmt.Errorf("building transform: %w", err)
	}
	samples, err := grid.GenerateSampleGrid(cfg.Min, cfg.Max, cfg.Count)
	if err != nil {
		return GridResult{}, fmt.Errorf("generating samples: %w", err)
	}

	log := r.Log.With().Str("op", "grid").Int("samples", len(samples)).Logger()
	if len(samples) != cfg.Count {
		log.Info().Int("requested", cfg.Count).Msg("sample count is not a perfect cube, lattice truncated")
	}

	res := GridResult{
		Backend:     r.Backend.Name(),
		Requested:   cfg.Count,
		SampleCount: len(samples),
		MinDuration: cfg.MinDuration,
		Transform:   m,
		Trials:      make([]grid.ThroughputSample, 0, cfg.Trials),
	}

	var scratch grid.Point4
	for i := 1; i <= cfg.Trials; i++ {
		log.Debug().Int("trial", i).Dur("min_duration", cfg.MinDuration).Msg("starting trial")
		s, err := grid.RunTimedThroughputTrial(r.Backend, &m, samples, cfg.MinDuration, &scratch)
		if err != nil {
			return res, fmt.Errorf("trial %d: %w", i, err)
		}
		log.Debug().Int("trial", i).Int64("passes", s.Passes).Float64("rate", s.Rate).Msg("trial done")
		res.Trials = append(res.Trials, s)
		if onTrial != nil {
			onTrial(i, s)
		}
	}
	res.Last = scratch
	return res, nil
}
