/*****************************************************************************************************************/

// Package rotation builds the per-block viewing rotation used by the viewport-adaptive resampler:
// given a unit vector, it constructs the 3x3 rotation that carries that vector onto (-1, 0, 0), so a
// target block's center aligns with a virtual perspective camera's optical axis.
package rotation

/*****************************************************************************************************************/

import (
	"math"

	"github.com/meridianvr/var/pkg/matrix"
)

/*****************************************************************************************************************/

// Rotation is an orthogonal 3x3 rotation, cached in row-major order for cheap repeated application
// across many unit-sphere samples without per-sample allocation.
type Rotation struct {
	m [9]float64
}

/*****************************************************************************************************************/

// FromDirection builds the rotation R = Ry(beta) * Rz(gamma) that carries the unit vector (x, y, z)
// onto (-1, 0, 0), where gamma = pi - atan2(y, x) and beta = -atan2(z', |x'|) with (x', y', z') the
// vector after applying Rz(gamma).
func FromDirection(x, y, z float64) (Rotation, error) {
	gamma := math.Pi - math.Atan2(y, x)

	rz, err := axisZ(gamma)
	if err != nil {
		return Rotation{}, err
	}

	v, err := matrix.NewFromSlice([]float64{x, y, z}, 3, 1)
	if err != nil {
		return Rotation{}, err
	}

	rotated, err := rz.Multiply(v)
	if err != nil {
		return Rotation{}, err
	}

	beta := -math.Atan2(rotated.Value[2], math.Abs(rotated.Value[0]))

	ry, err := axisY(beta)
	if err != nil {
		return Rotation{}, err
	}

	r, err := ry.Multiply(rz)
	if err != nil {
		return Rotation{}, err
	}

	var m [9]float64
	copy(m[:], r.Value)

	return Rotation{m: m}, nil
}

/*****************************************************************************************************************/

// Apply rotates the unit-sphere point (x, y, z) and returns the rotated (x, y, z).
func (r Rotation) Apply(x, y, z float64) (xr, yr, zr float64) {
	m := r.m
	return m[0]*x + m[1]*y + m[2]*z,
		m[3]*x + m[4]*y + m[5]*z,
		m[6]*x + m[7]*y + m[8]*z
}

/*****************************************************************************************************************/

func axisZ(gamma float64) (*matrix.Matrix, error) {
	m, err := matrix.New(3, 3)
	if err != nil {
		return nil, err
	}

	c, s := math.Cos(gamma), math.Sin(gamma)

	copy(m.Value, []float64{
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	})

	return m, nil
}

/*****************************************************************************************************************/

func axisY(beta float64) (*matrix.Matrix, error) {
	m, err := matrix.New(3, 3)
	if err != nil {
		return nil, err
	}

	c, s := math.Cos(beta), math.Sin(beta)

	copy(m.Value, []float64{
		c, 0, s,
		0, 1, 0,
		-s, 0, c,
	})

	return m, nil
}

/*****************************************************************************************************************/
