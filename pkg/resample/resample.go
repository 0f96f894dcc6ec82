/*****************************************************************************************************************/

// Package resample adapts mesh-to-mesh resampling algorithms (FSMR, nearest neighbor) to a single
// callable shape so the viewport-adaptive resampler can dispatch to whichever one its
// configuration names.
package resample

/*****************************************************************************************************************/

import "github.com/meridianvr/var/pkg/fsmr"

/*****************************************************************************************************************/

// MeshResampler fits a model to (srcPts, srcVal) and evaluates it at tgtPts, returning one value
// per target point.
type MeshResampler func(srcPts []fsmr.Point, srcVal []float64, tgtPts []fsmr.Point) ([]float64, error)

/*****************************************************************************************************************/

// NewFSMR returns a MeshResampler backed by FSMR with the reference default parameters.
func NewFSMR() MeshResampler {
	return NewFSMRWithParams(fsmr.DefaultParams())
}

/*****************************************************************************************************************/

// NewFSMRWithParams returns a MeshResampler backed by FSMR with caller-supplied parameters.
// params.SpatialWeighting, if set, is shared across every call and must have a fixed length
// matching every srcPts this resampler is ever invoked with.
func NewFSMRWithParams(params fsmr.Params) MeshResampler {
	return func(srcPts []fsmr.Point, srcVal []float64, tgtPts []fsmr.Point) ([]float64, error) {
		return fsmr.Resample(srcPts, srcVal, tgtPts, params)
	}
}

/*****************************************************************************************************************/
