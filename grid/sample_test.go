package grid

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// floorCbrt returns the largest f with f^3 <= n.
func floorCbrt(n int) int {
	f := 0
	for (f+1)*(f+1)*(f+1) <= n {
		f++
	}
	return f
}

func TestGenerateSampleGridPerfectCubes(t *testing.T) {
	const lo, hi = -100.0, 100.0
	for n := 2; n <= 8; n++ {
		count := n * n * n
		samples, err := GenerateSampleGrid(lo, hi, count)
		require.NoError(t, err)
		require.Len(t, samples, count)

		seen := make(map[Point4]bool, count)
		for _, p := range samples {
			for axis := range 3 {
				if p[axis] < lo || p[axis] > hi {
					t.Fatalf("n=%d: point %v outside [%v, %v]", n, p, lo, hi)
				}
			}
			if p.W() != 1 {
				t.Fatalf("n=%d: w = %v, want 1", n, p.W())
			}
			if seen[p] {
				t.Fatalf("n=%d: duplicate point %v", n, p)
			}
			seen[p] = true
		}

		assert.Equal(t, NewPoint(lo, lo, lo), samples[0])
		assert.Equal(t, NewPoint(lo, lo, hi), samples[n-1])
		assert.Equal(t, NewPoint(hi, hi, hi), samples[count-1])
	}
}

func TestGenerateSampleGridCountBounds(t *testing.T) {
	for count := 1; count <= 400; count++ {
		samples, err := GenerateSampleGrid(0, 1, count)
		require.NoError(t, err)
		if len(samples) > count {
			t.Errorf("count=%d: got %d points, more than requested", count, len(samples))
		}
		if f := floorCbrt(count); len(samples) < f*f*f {
			t.Errorf("count=%d: got %d points, want at least %d", count, len(samples), f*f*f)
		}
	}
}

func TestGenerateSampleGridEarlyTermination(t *testing.T) {
	// round(cbrt(20)) = 3, so generation stops part-way through i == 2.
	require.Equal(t, 3, AxisResolution(20))
	samples, err := GenerateSampleGrid(0, 2, 20)
	require.NoError(t, err)
	require.Len(t, samples, 20)
	assert.Equal(t, NewPoint(2, 0, 1), samples[19])

	// round(cbrt(10)) = 2: only 8 lattice points exist.
	samples, err = GenerateSampleGrid(0, 2, 10)
	require.NoError(t, err)
	assert.Len(t, samples, 8)
}

func TestGenerateSampleGridSingleAxisPoint(t *testing.T) {
	for _, count := range []int{1, 2, 3} {
		samples, err := GenerateSampleGrid(-4, 8, count)
		require.NoError(t, err)
		require.Len(t, samples, 1, "count=%d", count)
		assert.Equal(t, NewPoint(2, 2, 2), samples[0])
	}
}

func TestGenerateSampleGridErrors(t *testing.T) {
	tests := []struct {
		name    string
		lo, hi  float64
		count   int
		wantErr error
	}{
		{"zero count", 0, 1, 0, ErrInvalidCount},
		{"negative count", 0, 1, -5, ErrInvalidCount},
		{"empty range", 1, 1, 8, ErrDegenerateBounds},
		{"inverted range", 2, 1, 8, ErrDegenerateBounds},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateSampleGrid(tt.lo, tt.hi, tt.count)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestGenerateSampleGridExtremeBounds(t *testing.T) {
	tests := []struct {
		name   string
		lo, hi float64
		count  int
	}{
		{"full float64 range", -math.MaxFloat64, math.MaxFloat64, 27},
		{"full range single point", -math.MaxFloat64, math.MaxFloat64, 1},
		{"upper half single point", math.MaxFloat64 / 2, math.MaxFloat64, 1},
		{"upper half lattice", math.MaxFloat64 / 2, math.MaxFloat64, 64},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			samples, err := GenerateSampleGrid(tt.lo, tt.hi, tt.count)
			require.NoError(t, err)
			require.NotEmpty(t, samples)
			for _, p := range samples {
				for axis := range 3 {
					v := p[axis]
					if math.IsNaN(v) || math.IsInf(v, 0) {
						t.Fatalf("point %v has a non-finite coordinate", p)
					}
					if v < tt.lo || v > tt.hi {
						t.Fatalf("point %v outside [%v, %v]", p, tt.lo, tt.hi)
					}
				}
			}
		})
	}
}

func TestGenerateSampleGridDeterministic(t *testing.T) {
	a, err := GenerateSampleGrid(-1, 1, 1000)
	require.NoError(t, err)
	b, err := GenerateSampleGrid(-1, 1, 1000)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestGenerateSampleGridIntoReusesBuffer(t *testing.T) {
	dst := make(SampleSet, 5, 27)
	out, err := GenerateSampleGridInto(dst, 0, 1, 27)
	require.NoError(t, err)
	require.Len(t, out, 27)
	assert.Same(t, &dst[:1][0], &out[0])

	fresh, err := GenerateSampleGrid(0, 1, 27)
	require.NoError(t, err)
	assert.Equal(t, fresh, out)
}
