/*****************************************************************************************************************/

package fsmr

/*****************************************************************************************************************/

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

/*****************************************************************************************************************/

// weightedMatchingPursuit runs a fixed number of matching pursuit iterations, at each step picking
// the frequency-weighted basis function that best explains the current residual, applying an
// orthogonality-deficiency-compensated (odc) fraction of its coefficient, and subtracting that
// fraction's contribution from the residual. There is no early exit: it always runs exactly
// maxIterations steps, so the same (basisDict, spatialWeighting, freqWeighting, odc, maxIterations)
// always produce the same coefficients regardless of how quickly the residual decays.
func weightedMatchingPursuit(meshVal []float64, basisDict *mat.Dense, spatialWeighting, freqWeighting []float64, odc float64, maxIterations int) []float64 {
	l, n := basisDict.Dims()

	residual := append([]float64(nil), meshVal...)
	coeffs := make([]float64, l)

	d := make([]float64, l)
	for i := 0; i < l; i++ {
		row := basisDict.RawRowView(i)
		var sum float64
		for j := 0; j < n; j++ {
			sum += row[j] * row[j] * spatialWeighting[j]
		}
		d[i] = sum
	}

	weightedResidual := make([]float64, n)
	projectedResidual := make([]float64, l)
	obj := make([]float64, l)

	for iter := 0; iter < maxIterations; iter++ {
		floats.MulTo(weightedResidual, residual, spatialWeighting)

		for i := 0; i < l; i++ {
			row := basisDict.RawRowView(i)
			projectedResidual[i] = floats.Dot(row, weightedResidual)
			obj[i] = freqWeighting[i] * projectedResidual[i] * projectedResidual[i] / d[i]
		}

		idx := floats.MaxIdx(obj)

		c := projectedResidual[idx] / d[idx]
		coeffs[idx] += odc * c

		row := basisDict.RawRowView(idx)
		for j := 0; j < n; j++ {
			residual[j] -= odc * row[j] * c
		}
	}

	return coeffs
}

/*****************************************************************************************************************/
