// Package vector implements the SMART-notation TF-IDF weightings and
// vector similarities of spec.md §4.6.
package vector

import "math"

// TFLog computes the logarithmic term-frequency component: 1+log10(tf)
// for tf>0, else 0.
func TFLog(tf []float64) []float64 {
	out := make([]float64, len(tf))
	for i, v := range tf {
		if v > 0 {
			out[i] = 1 + math.Log10(v)
		}
	}
	return out
}

// IDF computes log10(N/df) for df>0, else 0.
func IDF(df []int, n int) []float64 {
	out := make([]float64, len(df))
	for i, d := range df {
		if d > 0 {
			out[i] = math.Log10(float64(n) / float64(d))
		}
	}
	return out
}

// Magnitude returns the Euclidean norm of v.
func Magnitude(v []float64) float64 {
	sum := 0.0
	for _, x := range v {
		sum += x * x
	}
	return math.Sqrt(sum)
}

// Dot returns the standard dot product of a and b. Both slices must be
// aligned by the same term ordering; len(a) must equal len(b).
func Dot(a, b []float64) float64 {
	sum := 0.0
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		sum += a[i] * b[i]
	}
	return sum
}

// LTN computes the unnormalised ltn weighting: tf_log(tf) componentwise
// times idf(df, n).
func LTN(tf []float64, df []int, n int) []float64 {
	logged := TFLog(tf)
	weights := IDF(df, n)
	out := make([]float64, len(logged))
	for i := range out {
		out[i] = logged[i] * weights[i]
	}
	return out
}

// LTC computes the ltn vector divided by its Euclidean magnitude; if
// the magnitude is 0 the vector is left unchanged (spec.md §4.6).
func LTC(tf []float64, df []int, n int) []float64 {
	v := LTN(tf, df, n)
	mag := Magnitude(v)
	if mag == 0 {
		return v
	}
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = x / mag
	}
	return out
}

// LTU computes the pivoted-normalisation ltu weighting. pivot =
// docLength/avgDocLength; pivotNorm = (1-slope)*pivot +
// slope*||ltn||. This is the source formula verbatim (spec.md §9 open
// question): it differs from the textbook pivoted-cosine formula
// (1-slope) + slope*pivot, and that substitution must never be made
// silently because it changes returned scores.
func LTU(tf []float64, df []int, n int, docLength, avgDocLength, slope float64) []float64 {
	v := LTN(tf, df, n)
	pivot := 0.0
	if avgDocLength != 0 {
		pivot = docLength / avgDocLength
	}
	pivotNorm := (1-slope)*pivot + slope*Magnitude(v)
	out := make([]float64, len(v))
	if pivotNorm == 0 {
		return out
	}
	for i, x := range v {
		out[i] = x / pivotNorm
	}
	return out
}

// Cosine returns the cosine similarity of a and b, 0 if either
// magnitude is 0.
func Cosine(a, b []float64) float64 {
	return CosineWithNorm(a, b, Magnitude(a)*Magnitude(b))
}

// CosineWithNorm divides the dot product of a and b by a
// caller-supplied denominator, returning 0 when norm is 0. This avoids
// recomputing magnitudes the caller already has on hand.
func CosineWithNorm(a, b []float64, norm float64) float64 {
	if norm == 0 {
		return 0
	}
	return Dot(a, b) / norm
}
