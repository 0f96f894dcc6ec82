/*****************************************************************************************************************/

package resample

/*****************************************************************************************************************/

import (
	"fmt"
	"math"

	"github.com/meridianvr/var/pkg/fsmr"
	"github.com/meridianvr/var/pkg/resamplerr"
	"gonum.org/v1/gonum/spatial/vptree"
)

/*****************************************************************************************************************/

// meshSample pairs a mesh position with its source value and implements vptree.Comparable so a
// set of samples can be indexed in a VP-tree for nearest-neighbor queries.
type meshSample struct {
	pt  fsmr.Point
	val float64
}

/*****************************************************************************************************************/

func (s meshSample) Distance(c vptree.Comparable) float64 {
	o, ok := c.(meshSample)
	if !ok {
		panic("resample: incompatible type for distance calculation")
	}

	dx := s.pt.X - o.pt.X
	dy := s.pt.Y - o.pt.Y

	return math.Hypot(dx, dy)
}

/*****************************************************************************************************************/

// NewNearestNeighbor returns a MeshResampler that assigns each target point the value of its
// nearest source point by Euclidean distance on the mesh plane, using a VP-tree for the search.
func NewNearestNeighbor() MeshResampler {
	return func(srcPts []fsmr.Point, srcVal []float64, tgtPts []fsmr.Point) ([]float64, error) {
		if len(srcPts) != len(srcVal) {
			return nil, fmt.Errorf("%w: nearest neighbor source mesh has %d points, source values has %d", resamplerr.ErrDimensionMismatch, len(srcPts), len(srcVal))
		}

		if len(srcPts) == 0 {
			return nil, fmt.Errorf("%w: nearest neighbor requires at least one source point", resamplerr.ErrInvalidConfig)
		}

		comparables := make([]vptree.Comparable, len(srcPts))
		for i, p := range srcPts {
			comparables[i] = meshSample{pt: p, val: srcVal[i]}
		}

		tree, err := vptree.New(comparables, 1, nil)
		if err != nil {
			return nil, err
		}

		result := make([]float64, len(tgtPts))
		for i, p := range tgtPts {
			nearest, _ := tree.Nearest(meshSample{pt: p})

			sample, ok := nearest.(meshSample)
			if !ok {
				return nil, fmt.Errorf("%w: vp-tree returned unexpected type", resamplerr.ErrDimensionMismatch)
			}

			result[i] = sample.val
		}

		return result, nil
	}
}

/*****************************************************************************************************************/
