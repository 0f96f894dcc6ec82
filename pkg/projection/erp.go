/*****************************************************************************************************************/

package projection

/*****************************************************************************************************************/

import (
	"math"

	"github.com/meridianvr/var/pkg/coord"
	"github.com/meridianvr/var/pkg/raster"
)

/*****************************************************************************************************************/

// ERP is the equirectangular projection: a latitude/longitude rectangular unwrap of the sphere.
type ERP struct {
	size raster.Size
}

/*****************************************************************************************************************/

// NewERP constructs an equirectangular projection for a canvas of the given size.
func NewERP(size raster.Size) *ERP {
	return &ERP{size: size}
}

/*****************************************************************************************************************/

// Size returns the projection's canvas size.
func (e *ERP) Size() raster.Size {
	return e.size
}

/*****************************************************************************************************************/

func (e *ERP) FocalLength() float64 {
	return 1 / math.Tan(math.Pi/float64(e.size.H))
}

/*****************************************************************************************************************/

func (e *ERP) ToSphere(y, x float64) (xs, ys, zs float64) {
	phi := -((x + 0.5) / float64(e.size.W)) * 2 * math.Pi
	theta := ((y + 0.5) / float64(e.size.H)) * math.Pi
	return coord.SphericalToCartesian(1, theta, phi)
}

/*****************************************************************************************************************/

func (e *ERP) FromSphere(xs, ys, zs float64) (y, x float64, aux bool) {
	_, theta, phi := coord.CartesianToSpherical(xs, ys, zs)

	if phi > 0 {
		phi -= 2 * math.Pi
	}

	y = (theta/math.Pi)*float64(e.size.H) - 0.5
	x = -(phi/(2*math.Pi))*float64(e.size.W) - 0.5

	return y, x, false
}

/*****************************************************************************************************************/
