package vector

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const tolerance = 1e-9

func within(t *testing.T, want, got, tol float64) {
	t.Helper()
	assert.InDelta(t, want, got, tol)
}

func TestTFLog_ZeroWhenTFZero(t *testing.T) {
	out := TFLog([]float64{0, 1, 10})
	within(t, 0, out[0], tolerance)
	within(t, 1, out[1], tolerance)
	within(t, 2, out[2], tolerance)
}

func TestIDF_ZeroWhenDFZero(t *testing.T) {
	out := IDF([]int{0, 10}, 100)
	within(t, 0, out[0], tolerance)
	within(t, 1, out[1], tolerance)
}

func TestLTC_UnitMagnitudeOrZero(t *testing.T) {
	v := LTC([]float64{3, 1}, []int{5, 50}, 100)
	mag := Magnitude(v)
	if mag != 0 {
		within(t, 1, mag, 1e-9)
	}
}

func TestLTC_ZeroVectorLeftUnchanged(t *testing.T) {
	v := LTC([]float64{0, 0}, []int{0, 0}, 100)
	assert.Equal(t, []float64{0, 0}, v)
}

func TestLTU_SourceFormulaPinned(t *testing.T) {
	tf := []float64{4}
	df := []int{2}
	n := 10
	docLen, avgLen, slope := 8.0, 4.0, 0.75

	ltn := LTN(tf, df, n)
	pivot := docLen / avgLen
	wantPivotNorm := (1-slope)*pivot + slope*Magnitude(ltn)
	want := ltn[0] / wantPivotNorm

	got := LTU(tf, df, n, docLen, avgLen, slope)
	within(t, want, got[0], 1e-12)

	// The textbook variant (1-slope) + slope*pivot must NOT match,
	// pinning that the source formula (not the textbook one) is used.
	textbookNorm := (1 - slope) + slope*pivot
	textbookValue := ltn[0] / textbookNorm
	assert.NotEqual(t, math.Round(textbookValue*1e12), math.Round(got[0]*1e12))
}

func TestCosine_ZeroDenominator(t *testing.T) {
	assert.Equal(t, 0.0, Cosine([]float64{0, 0}, []float64{1, 1}))
}

func TestCosineWithNorm_MatchesManualComputation(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{4, 5, 6}
	norm := Magnitude(a) * Magnitude(b)
	want := Dot(a, b) / norm
	within(t, want, CosineWithNorm(a, b, norm), 1e-12)
}
