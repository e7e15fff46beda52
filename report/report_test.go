package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/simpleopenblas/blasbench/bench"
	"github.com/simpleopenblas/blasbench/blas"
	"github.com/simpleopenblas/blasbench/grid"
)

func outerResult() bench.OuterResult {
	return bench.OuterResult{
		Backend: "native",
		Layout:  "col-major",
		Rows:    2,
		Cols:    3,
		Alpha:   10,
		A:       []float64{20, 40, 10, 20, 30, 60},
	}
}

func TestWriteOuterText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatText, outerResult()))

	lines := strings.Split(buf.String(), "\n")
	assert.Equal(t, "20 40 10 20 30 60", lines[0])
	// Column-major storage reads back as rows (20 10 30) and (40 20 60).
	assert.Contains(t, lines[1], "20  10  30")
	assert.Contains(t, lines[2], "40  20  60")
}

func TestWriteGridText(t *testing.T) {
	res := bench.GridResult{
		Trials: []grid.ThroughputSample{
			{Passes: 2, Applications: 54, Elapsed: time.Second, Rate: 54},
			{Passes: 4, Applications: 108, Elapsed: time.Second, Rate: 108},
		},
	}
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatText, res))
	assert.Equal(t, "trial 1: 54 points/s\ntrial 2: 108 points/s\n", buf.String())
}

func TestWriteLoopText(t *testing.T) {
	res := bench.LoopResult{
		Op: "gemv", Precision: bench.Float32, Layout: "row-major",
		Size: 4, Iterations: 10, Elapsed: time.Millisecond, OpsPerSec: 10000, FLOPS: 320000,
	}
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatText, res))
	assert.Equal(t, "gemv float 4x4 row-major: 10 calls in 1ms, 10000 ops/s, 0.000 GFLOP/s\n", buf.String())
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatYAML, outerResult()))

	var back map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &back))
	assert.Equal(t, "native", back["backend"])
	assert.Equal(t, "col-major", back["layout"])
	assert.Len(t, back["a"], 6)
}

func TestWriteYAMLPrecisionByName(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatYAML, bench.LoopResult{Op: "gemm", Precision: bench.Float32}))
	assert.Contains(t, buf.String(), "precision: float")
}

func TestWriteCPUText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatText, blas.CPU()))
	assert.Contains(t, buf.String(), "level: "+blas.CurrentLevel().String())
}

func TestWriteErrors(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, Format("xml"), outerResult())
	assert.True(t, errors.Is(err, ErrUnknownFormat))

	err = Write(&buf, FormatText, 42)
	assert.Error(t, err)

	_, err = ParseFormat("json")
	assert.True(t, errors.Is(err, ErrUnknownFormat))
	f, err := ParseFormat("YAML")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)
}
