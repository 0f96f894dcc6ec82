/*****************************************************************************************************************/

// Package metrics provides the numeric quality measures and synthetic test signals used to check
// the resampling pipeline's round-trip fidelity.
package metrics

/*****************************************************************************************************************/

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/meridianvr/var/pkg/raster"
	"github.com/meridianvr/var/pkg/resamplerr"
)

/*****************************************************************************************************************/

// NormalDistributedRandomNumber generates a normally distributed random number.
// mean: the mean of the distribution.
// stdDev: the standard deviation of the distribution.
func NormalDistributedRandomNumber(mean, stdDev float64) float64 {
	// Box-Muller transform; u1 lies in (0, 1] so the logarithm is finite.
	u1 := 1 - rand.Float64()
	u2 := rand.Float64()
	z := math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
	return z*stdDev + mean
}

/*****************************************************************************************************************/

// PSNR returns the peak signal-to-noise ratio, in decibels, between a reference image and a test
// image of the same size, with peak taken as the reference image's maximum absolute sample value.
// It returns +Inf when the images are identical.
func PSNR(reference, test *raster.Image) (float64, error) {
	if reference.Size != test.Size {
		return 0, fmt.Errorf("%w: reference size %dx%d, test size %dx%d",
			resamplerr.ErrDimensionMismatch, reference.H, reference.W, test.H, test.W)
	}

	return psnr(reference, test, 0, reference.H), nil
}

/*****************************************************************************************************************/

// PSNRRowBand is PSNR restricted to the row range [yLo, yHi), e.g. to exclude a projection's polar
// rows from a quality measurement where those rows are known to be poorly conditioned.
func PSNRRowBand(reference, test *raster.Image, yLo, yHi int) (float64, error) {
	if reference.Size != test.Size {
		return 0, fmt.Errorf("%w: reference size %dx%d, test size %dx%d",
			resamplerr.ErrDimensionMismatch, reference.H, reference.W, test.H, test.W)
	}

	if yLo < 0 || yHi > reference.H || yLo >= yHi {
		return 0, fmt.Errorf("%w: row band [%d, %d) is invalid for image height %d",
			resamplerr.ErrInvalidConfig, yLo, yHi, reference.H)
	}

	return psnr(reference, test, yLo, yHi), nil
}

/*****************************************************************************************************************/

func psnr(reference, test *raster.Image, yLo, yHi int) float64 {
	var sumSquaredError float64
	var peak float64
	var n int

	for y := yLo; y < yHi; y++ {
		for x := 0; x < reference.W; x++ {
			ref := reference.At(y, x)
			d := ref - test.At(y, x)
			sumSquaredError += d * d
			n++

			if abs := math.Abs(ref); abs > peak {
				peak = abs
			}
		}
	}

	mse := sumSquaredError / float64(n)
	if mse == 0 {
		return math.Inf(1)
	}

	return 20*math.Log10(peak) - 10*math.Log10(mse)
}

/*****************************************************************************************************************/
