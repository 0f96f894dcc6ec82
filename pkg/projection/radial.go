/*****************************************************************************************************************/

package projection

/*****************************************************************************************************************/

import "github.com/meridianvr/var/pkg/coord"

/*****************************************************************************************************************/

// Radial is a Projection whose to_sphere/from_sphere go through a radially symmetric lens model,
// parameterized by a radius(theta) / theta(r) pair of hooks.
type Radial interface {
	Projection

	// MaxFOV returns the maximum field of view this radial model can represent.
	MaxFOV() float64

	// Radius returns the sensor radius (in pixels) for a given incident angle w.r.t. the optical axis.
	Radius(theta float64) float64

	// Theta returns the incident angle w.r.t. the optical axis for a given sensor radius (in pixels).
	Theta(r float64) float64
}

/*****************************************************************************************************************/

// radialToSphere implements the shared Radial to_sphere: it goes through (r, phi) = cart_to_polar,
// applies the model's theta(r) hook, then rewires axes so the optical axis points toward -x on the
// sphere, +y is image right and +z is image up.
func radialToSphere(r Radial, centerY, centerX, y, x float64) (xs, ys, zs float64) {
	radius, phi := coord.CartesianToPolar(y-centerY, x-centerX)
	theta := r.Theta(radius)
	xsr, ysr, zsr := coord.SphericalToCartesian(1, theta, phi)
	return -zsr, xsr, -ysr
}

/*****************************************************************************************************************/

// radialFromSphere implements the shared Radial from_sphere inverse of radialToSphere.
func radialFromSphere(r Radial, centerY, centerX, xs, ys, zs float64) (y, x float64, behind bool) {
	_, theta, phi := coord.CartesianToSpherical(ys, -zs, -xs)
	radius := r.Radius(theta)
	dy, dx := coord.PolarToCartesian(radius, phi)
	return dy + centerY, dx + centerX, radius < 0
}

/*****************************************************************************************************************/
