/*****************************************************************************************************************/

package fsmr

/*****************************************************************************************************************/

import (
	"fmt"

	"github.com/meridianvr/var/pkg/resamplerr"
	"gonum.org/v1/gonum/mat"
)

/*****************************************************************************************************************/

// Point is an irregular mesh position (x, y).
type Point struct {
	X, Y float64
}

/*****************************************************************************************************************/

// Params configures a single FSMR resampling call.
type Params struct {
	// TransformLength is the DCT transform length K; the dictionary has K^2 basis functions.
	TransformLength int

	// ODC is the orthogonality deficiency compensation factor applied to every matching pursuit step.
	ODC float64

	// Sigma is the frequency weighting decay: basis function (k, l) is weighted by sigma^sqrt(k^2+l^2).
	Sigma float64

	// Shift is added to every mesh coordinate before evaluating basis functions, keeping the DCT
	// argument away from coordinates centered on zero.
	Shift float64

	// MaxIterations is the fixed number of matching pursuit steps.
	MaxIterations int

	// SpatialWeighting optionally weights each source sample's contribution to the fit. Nil means
	// every sample is weighted equally.
	SpatialWeighting []float64
}

/*****************************************************************************************************************/

// DefaultParams returns the reference FSMR configuration used by the viewport-adaptive resampler.
func DefaultParams() Params {
	return Params{
		TransformLength: 32,
		ODC:             0.5,
		Sigma:           0.93,
		Shift:           16,
		MaxIterations:   1000,
	}
}

/*****************************************************************************************************************/

func (p Params) validate(numSource int) error {
	if p.TransformLength <= 0 {
		return fmt.Errorf("%w: fsmr transform length must be positive, got %d", resamplerr.ErrNumericDomain, p.TransformLength)
	}

	if p.MaxIterations <= 0 {
		return fmt.Errorf("%w: fsmr max iterations must be positive, got %d", resamplerr.ErrNumericDomain, p.MaxIterations)
	}

	if p.SpatialWeighting != nil && len(p.SpatialWeighting) != numSource {
		return fmt.Errorf("%w: fsmr spatial weighting has %d entries, want %d", resamplerr.ErrDimensionMismatch, len(p.SpatialWeighting), numSource)
	}

	return nil
}

/*****************************************************************************************************************/

// Resample fits an FSMR model to (sourceMesh, sourceVal) and evaluates it at targetMesh, returning
// one value per target point. sourceMesh and targetMesh are never mutated: Shift is applied to
// private copies, unlike the reference implementation's in-place mesh offset.
func Resample(sourceMesh []Point, sourceVal []float64, targetMesh []Point, params Params) ([]float64, error) {
	if len(sourceMesh) != len(sourceVal) {
		return nil, fmt.Errorf("%w: fsmr source mesh has %d points, source values has %d", resamplerr.ErrDimensionMismatch, len(sourceMesh), len(sourceVal))
	}

	if err := params.validate(len(sourceMesh)); err != nil {
		return nil, err
	}

	spatialWeighting := params.SpatialWeighting
	if spatialWeighting == nil {
		spatialWeighting = make([]float64, len(sourceMesh))
		for i := range spatialWeighting {
			spatialWeighting[i] = 1
		}
	}

	sourceX, sourceY := shiftedCoords(sourceMesh, params.Shift)
	targetX, targetY := shiftedCoords(targetMesh, params.Shift)

	basisSource := dctBasisDict(sourceX, sourceY, params.TransformLength)
	freqWeighting := dctFrequencyWeighting(params.TransformLength, params.Sigma)

	coeffs := weightedMatchingPursuit(sourceVal, basisSource, spatialWeighting, freqWeighting, params.ODC, params.MaxIterations)

	basisTarget := dctBasisDict(targetX, targetY, params.TransformLength)

	coeffsVec := mat.NewVecDense(len(coeffs), coeffs)
	var targetVal mat.VecDense
	targetVal.MulVec(basisTarget.T(), coeffsVec)

	result := make([]float64, len(targetMesh))
	for i := range result {
		result[i] = targetVal.AtVec(i)
	}

	return result, nil
}

/*****************************************************************************************************************/

func shiftedCoords(mesh []Point, shift float64) (x, y []float64) {
	x = make([]float64, len(mesh))
	y = make([]float64, len(mesh))

	for i, p := range mesh {
		x[i] = p.X + shift
		y[i] = p.Y + shift
	}

	return x, y
}

/*****************************************************************************************************************/
