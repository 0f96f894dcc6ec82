/*****************************************************************************************************************/

// Package projection provides the bidirectional mappings between pixel coordinates and points on the
// unit sphere for equirectangular, cubemap and perspective/radial projections.
package projection

/*****************************************************************************************************************/

import "github.com/meridianvr/var/pkg/raster"

/*****************************************************************************************************************/

// Projection maps pixel coordinates to points on the unit sphere and back.
type Projection interface {
	// FocalLength returns the projection's focal length in pixels.
	FocalLength() float64

	// ToSphere projects the pixel coordinate (y, x) onto the unit sphere.
	ToSphere(y, x float64) (xs, ys, zs float64)

	// FromSphere reprojects the unit-sphere point (xs, ys, zs) back to a pixel coordinate.
	// aux carries projection-specific auxiliary information (e.g. a behind-camera flag for
	// Perspective/Radial); ERP and CMP always return false.
	FromSphere(xs, ys, zs float64) (y, x float64, aux bool)
}

/*****************************************************************************************************************/

// ToSphereGrid evaluates ToSphere at every pixel center of a size Hs x Ws image, returning three
// row-major Hs*Ws slices (xs, ys, zs). This is the fused loop that stands in for the source's
// array-broadcast precomputation step.
func ToSphereGrid(p Projection, size raster.Size) (xs, ys, zs []float64) {
	n := size.H * size.W
	xs = make([]float64, n)
	ys = make([]float64, n)
	zs = make([]float64, n)

	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			idx := y*size.W + x
			xs[idx], ys[idx], zs[idx] = p.ToSphere(float64(y), float64(x))
		}
	}

	return xs, ys, zs
}

/*****************************************************************************************************************/
