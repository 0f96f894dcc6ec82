/*****************************************************************************************************************/

// Package fsmr implements frequency-selective mesh-to-mesh resampling: an irregularly sampled
// signal is modelled as a sparse combination of 2D DCT basis functions by weighted matching
// pursuit, then the model is evaluated at an arbitrary target mesh.
package fsmr

/*****************************************************************************************************************/

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

/*****************************************************************************************************************/

// dctBasisDict evaluates the K^2 2D DCT-II basis functions at mesh positions (x, y), returning a
// K^2 x len(x) matrix. Basis row i corresponds to frequency pair (k, l) = (i/K, i%K).
func dctBasisDict(x, y []float64, k int) *mat.Dense {
	n := len(x)
	l2 := k * k

	data := make([]float64, l2*n)

	for i := 0; i < l2; i++ {
		ki := float64(i / k)
		li := float64(i % k)

		weight := dctWeight(i/k == 0, i%k == 0, k)

		row := data[i*n : (i+1)*n]
		for j := 0; j < n; j++ {
			cos1 := math.Cos((math.Pi / float64(k)) * (y[j] - 0.5) * ki)
			cos2 := math.Cos((math.Pi / float64(k)) * (x[j] - 0.5) * li)
			row[j] = cos1 * cos2 * weight
		}
	}

	return mat.NewDense(l2, n, data)
}

/*****************************************************************************************************************/

func dctWeight(kZero, lZero bool, transformLength int) float64 {
	switch {
	case kZero && lZero:
		return 1 / float64(transformLength)
	case kZero != lZero:
		return math.Sqrt2 / float64(transformLength)
	default:
		return 2 / float64(transformLength)
	}
}

/*****************************************************************************************************************/

// dctFrequencyWeighting returns the per-basis-function weight sigma^sqrt(k^2+l^2), in the same
// (k, l) row ordering as dctBasisDict.
func dctFrequencyWeighting(k int, sigma float64) []float64 {
	l2 := k * k
	weights := make([]float64, l2)

	for i := 0; i < l2; i++ {
		ki := float64(i / k)
		li := float64(i % k)
		weights[i] = math.Pow(sigma, math.Sqrt(ki*ki+li*li))
	}

	return weights
}

/*****************************************************************************************************************/
