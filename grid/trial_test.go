package grid

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simpleopenblas/blasbench/blas"
)

func backends(t *testing.T) []*blas.Backend {
	t.Helper()
	var out []*blas.Backend
	for _, name := range blas.Names() {
		b, err := blas.Lookup(name)
		require.NoError(t, err)
		out = append(out, b)
	}
	return out
}

func testTransform(t *testing.T) Transform4x4 {
	t.Helper()
	m, err := BuildOrthographicTransform(-1000, 1000, -1000, 1000, 0.1, 1000)
	require.NoError(t, err)
	return m
}

func TestMatVec4x4MatchesApply(t *testing.T) {
	m := testTransform(t)
	samples, err := GenerateSampleGrid(-500, 500, 64)
	require.NoError(t, err)

	for _, b := range backends(t) {
		t.Run(b.Name(), func(t *testing.T) {
			for i := range samples {
				var out Point4
				MatVec4x4(b, &m, &samples[i], &out)
				assert.InDeltaSlice(t, m.Apply(samples[i]).slice(), out.slice(), 1e-12)
			}
		})
	}
}

func TestMatVec4x4ColMajorAgrees(t *testing.T) {
	m := testTransform(t)
	col := m.ColMajor()
	v := NewPoint(10, -20, 30)

	for _, b := range backends(t) {
		t.Run(b.Name(), func(t *testing.T) {
			var row, colOut Point4
			MatVec4x4(b, &m, &v, &row)
			b.Dgemv(blas.ColMajor, blas.NoTrans, 4, 4, 1, col[:], 4, v[:], 1, 0, colOut[:], 1)
			assert.InDeltaSlice(t, row.slice(), colOut.slice(), 1e-12)
		})
	}
}

// recordingBackend captures the arguments of the last Dgemv call.
type recordingBackend struct {
	layout blas.Layout
	tA     blas.Transpose
	m, n   int
	a      []float64
	lda    int
}

func (r *recordingBackend) Dgemv(layout blas.Layout, tA blas.Transpose, m, n int, alpha float64, a []float64, lda int, x []float64, incX int, beta float64, y []float64, incY int) {
	r.layout, r.tA, r.m, r.n, r.a, r.lda = layout, tA, m, n, a, lda
}

func TestMatVec4x4PassesRowMajorStorage(t *testing.T) {
	m := testTransform(t)
	v := NewPoint(1, 2, 3)
	var out Point4
	rec := &recordingBackend{}
	MatVec4x4(rec, &m, &v, &out)

	assert.Equal(t, blas.RowMajor, rec.layout)
	assert.Equal(t, blas.NoTrans, rec.tA)
	assert.Equal(t, 4, rec.m)
	assert.Equal(t, 4, rec.n)
	assert.Equal(t, 4, rec.lda)
	require.Len(t, rec.a, 16)
	assert.Same(t, &m.RowMajor()[0], &rec.a[0])
	assert.Equal(t, m.At(2, 3), rec.a[2*4+3])
}

func TestMatVec4x4Idempotent(t *testing.T) {
	m := testTransform(t)
	v := NewPoint(1, 2, 3)
	for _, b := range backends(t) {
		var first, second Point4
		MatVec4x4(b, &m, &v, &first)
		MatVec4x4(b, &m, &v, &second)
		if first != second {
			t.Errorf("%s: %v != %v", b.Name(), first, second)
		}
	}
}

func TestMatVec4x4NilBackendPanics(t *testing.T) {
	m := Identity()
	var v, out Point4
	assert.Panics(t, func() { MatVec4x4(nil, &m, &v, &out) })
}

func TestRunTimedThroughputTrial(t *testing.T) {
	m := testTransform(t)
	samples, err := GenerateSampleGrid(-100, 100, 27)
	require.NoError(t, err)
	require.Len(t, samples, 27)

	const minDuration = 10 * time.Millisecond
	for _, b := range backends(t) {
		t.Run(b.Name(), func(t *testing.T) {
			var scratch Point4
			s, err := RunTimedThroughputTrial(b, &m, samples, minDuration, &scratch)
			require.NoError(t, err)

			assert.GreaterOrEqual(t, s.Elapsed, minDuration)
			assert.GreaterOrEqual(t, s.Passes, int64(1))
			assert.Zero(t, s.Applications%27)
			assert.Equal(t, s.Passes*27, s.Applications)
			assert.InDelta(t, float64(s.Applications)/s.Elapsed.Seconds(), s.Rate, 1e-6*s.Rate)

			last := m.Apply(samples[len(samples)-1])
			assert.InDeltaSlice(t, last.slice(), scratch.slice(), 1e-12)
		})
	}
}

func TestRunTimedThroughputTrialZeroDuration(t *testing.T) {
	m := Identity()
	samples := SampleSet{NewPoint(1, 2, 3)}
	b, err := blas.Lookup("native")
	require.NoError(t, err)

	s, err := RunTimedThroughputTrial(b, &m, samples, 0, nil)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, s.Passes, int64(1))
	assert.Positive(t, s.Elapsed)
	assert.False(t, s.Rate <= 0)
}

func TestRunTimedThroughputTrialEmpty(t *testing.T) {
	m := Identity()
	b, err := blas.Lookup("native")
	require.NoError(t, err)

	_, err = RunTimedThroughputTrial(b, &m, nil, time.Second, nil)
	if !errors.Is(err, ErrEmptySampleSet) {
		t.Fatalf("error = %v, want ErrEmptySampleSet", err)
	}
}

func (p Point4) slice() []float64 {
	return p[:]
}

func BenchmarkMatVec4x4(b *testing.B) {
	m, err := BuildOrthographicTransform(-1000, 1000, -1000, 1000, 0.1, 1000)
	if err != nil {
		b.Fatal(err)
	}
	for _, name := range blas.Names() {
		backend, err := blas.Lookup(name)
		if err != nil {
			b.Fatal(err)
		}
		v := NewPoint(1, 2, 3)
		var out Point4
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				MatVec4x4(backend, &m, &v, &out)
			}
		})
	}
}
