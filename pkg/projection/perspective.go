/*****************************************************************************************************************/

package projection

/*****************************************************************************************************************/

import (
	"math"

	"github.com/meridianvr/var/pkg/coord"
)

/*****************************************************************************************************************/

// Perspective is the perspective/radial projection: radius(theta) = f*tan(theta).
type Perspective struct {
	focalLength      float64
	centerY, centerX float64
}

/*****************************************************************************************************************/

// NewPerspective constructs a perspective projection with the given focal length (pixels) and
// optical center (cy, cx) in pixels.
func NewPerspective(focalLength, centerY, centerX float64) *Perspective {
	return &Perspective{focalLength: focalLength, centerY: centerY, centerX: centerX}
}

/*****************************************************************************************************************/

// OpticalCenter returns the projection's optical center (cy, cx) in pixels.
func (p *Perspective) OpticalCenter() (cy, cx float64) {
	return p.centerY, p.centerX
}

/*****************************************************************************************************************/

func (p *Perspective) FocalLength() float64 {
	return p.focalLength
}

/*****************************************************************************************************************/

func (p *Perspective) MaxFOV() float64 {
	return math.Pi
}

/*****************************************************************************************************************/

func (p *Perspective) Radius(theta float64) float64 {
	return p.focalLength * math.Tan(theta)
}

/*****************************************************************************************************************/

func (p *Perspective) Theta(r float64) float64 {
	return math.Atan(r / p.focalLength)
}

/*****************************************************************************************************************/

func (p *Perspective) ToSphere(y, x float64) (xs, ys, zs float64) {
	return p.ToSphereVIP(y, x, false)
}

/*****************************************************************************************************************/

// ToSphereVIP is ToSphere with an optional Virtual Image Plane compensation switch: when vip is
// true, the ray is reflected through the origin (phi -= pi, theta = pi - theta) to mark samples
// that would otherwise land behind the image plane. The viewport-adaptive resampler never sets
// this; it is preserved for callers that need it directly.
func (p *Perspective) ToSphereVIP(y, x float64, vip bool) (xs, ys, zs float64) {
	if !vip {
		return radialToSphere(p, p.centerY, p.centerX, y, x)
	}

	radius, phi := coord.CartesianToPolar(y-p.centerY, x-p.centerX)
	theta := p.Theta(radius)
	phi -= math.Pi
	theta = math.Pi - theta

	xsr, ysr, zsr := coord.SphericalToCartesian(1, theta, phi)
	return -zsr, xsr, -ysr
}

/*****************************************************************************************************************/

func (p *Perspective) FromSphere(xs, ys, zs float64) (y, x float64, aux bool) {
	return radialFromSphere(p, p.centerY, p.centerX, xs, ys, zs)
}

/*****************************************************************************************************************/
