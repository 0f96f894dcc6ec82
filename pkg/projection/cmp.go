/*****************************************************************************************************************/

package projection

/*****************************************************************************************************************/

import (
	"fmt"
	"math"

	"github.com/meridianvr/var/pkg/raster"
	"github.com/meridianvr/var/pkg/resamplerr"
)

/*****************************************************************************************************************/

// axis identifies one of the three 3D cartesian axes.
type axis int

/*****************************************************************************************************************/

const (
	axisX axis = iota
	axisY
	axisZ
)

/*****************************************************************************************************************/

// coordMap is a linear map between a 1D interval on the unfolded 2D canvas and a 1D interval on
// one of the x/y/z axes in 3D.
type coordMap struct {
	interval2D [2]float64
	interval3D [2]float64
	axis3D     axis
}

/*****************************************************************************************************************/

func (c coordMap) val3DFor2D(v float64) float64 {
	return lerp(v, c.interval2D[0], c.interval2D[1], c.interval3D[0], c.interval3D[1])
}

/*****************************************************************************************************************/

func (c coordMap) val2DFor3D(v float64) float64 {
	return lerp(v, c.interval3D[0], c.interval3D[1], c.interval2D[0], c.interval2D[1])
}

/*****************************************************************************************************************/

func lerp(v, a1, b1, a2, b2 float64) float64 {
	return (v-a1)*((b2-a2)/(b1-a1)) + a2
}

/*****************************************************************************************************************/

// region is one of the six cube faces: a 2D interval on the unfolded canvas, two coordinate maps
// to the corresponding 3D axes, and the constant value of the remaining (plane) axis.
type region struct {
	xMap, yMap coordMap
	planeAxis  axis
	planeVal   float64
}

/*****************************************************************************************************************/

func newRegion(xMap, yMap coordMap, planeVal float64) (region, error) {
	if xMap.axis3D == yMap.axis3D {
		return region{}, fmt.Errorf("%w: cubemap region x and y maps share 3d axis %d", resamplerr.ErrInvalidConfig, xMap.axis3D)
	}

	var planeAxis axis
	for _, a := range []axis{axisX, axisY, axisZ} {
		if a != xMap.axis3D && a != yMap.axis3D {
			planeAxis = a
		}
	}

	return region{xMap: xMap, yMap: yMap, planeAxis: planeAxis, planeVal: planeVal}, nil
}

/*****************************************************************************************************************/

func (r region) withinRegionMask(yn, xn float64) bool {
	return yn >= math.Min(r.yMap.interval2D[0], r.yMap.interval2D[1]) &&
		yn <= math.Max(r.yMap.interval2D[0], r.yMap.interval2D[1]) &&
		xn >= math.Min(r.xMap.interval2D[0], r.xMap.interval2D[1]) &&
		xn <= math.Max(r.xMap.interval2D[0], r.xMap.interval2D[1])
}

/*****************************************************************************************************************/

func (r region) withinCubefaceMask(xs, ys, zs float64) bool {
	vals := [3]float64{xs, ys, zs}
	absVals := [3]float64{math.Abs(xs), math.Abs(ys), math.Abs(zs)}

	var inFront bool
	if math.Signbit(r.planeVal) {
		inFront = vals[r.planeAxis] < 0
	} else {
		inFront = vals[r.planeAxis] > 0
	}

	return inFront &&
		absVals[r.planeAxis] > absVals[r.xMap.axis3D] &&
		absVals[r.planeAxis] > absVals[r.yMap.axis3D]
}

/*****************************************************************************************************************/

func (r region) to3D(yn, xn float64) (xs, ys, zs float64) {
	coords := [3]float64{}
	coords[r.yMap.axis3D] = r.yMap.val3DFor2D(yn)
	coords[r.xMap.axis3D] = r.xMap.val3DFor2D(xn)
	coords[r.planeAxis] = r.planeVal
	return coords[axisX], coords[axisY], coords[axisZ]
}

/*****************************************************************************************************************/

func (r region) to2D(xs, ys, zs float64) (yn, xn float64) {
	vals := [3]float64{xs, ys, zs}

	var rr float64
	switch r.planeAxis {
	case axisX:
		rr = r.planeVal / vals[axisX]
	case axisY:
		rr = r.planeVal / vals[axisY]
	default:
		rr = r.planeVal / vals[axisZ]
	}

	scaled := [3]float64{xs * rr, ys * rr, zs * rr}

	yn = r.yMap.val2DFor3D(scaled[r.yMap.axis3D])
	xn = r.xMap.val2DFor3D(scaled[r.xMap.axis3D])

	return yn, xn
}

/*****************************************************************************************************************/

// CMP is the cubemap projection: six unfolded cube faces laid out as a 2x3 grid (top, left, front,
// right, back, bottom), each an FxF square.
type CMP struct {
	size    raster.Size
	regions [6]region
}

/*****************************************************************************************************************/

// NewCMP constructs a cubemap projection for a 2Fx3F canvas, rejecting any size that is not a
// valid 2:3 cubemap canvas.
func NewCMP(size raster.Size) (*CMP, error) {
	if size.H <= 0 || size.W <= 0 || size.H%2 != 0 || size.W%3 != 0 || size.H/2 != size.W/3 {
		return nil, fmt.Errorf("%w: cubemap canvas %dx%d is not a valid 2Fx3F layout", resamplerr.ErrInvalidConfig, size.H, size.W)
	}

	top, err := newRegion(
		coordMap{interval2D: [2]float64{0, 1.0 / 3}, interval3D: [2]float64{-1, 1}, axis3D: axisX},
		coordMap{interval2D: [2]float64{0.5, 1}, interval3D: [2]float64{-1, 1}, axis3D: axisY},
		1,
	)
	if err != nil {
		return nil, err
	}

	left, err := newRegion(
		coordMap{interval2D: [2]float64{0, 1.0 / 3}, interval3D: [2]float64{1, -1}, axis3D: axisX},
		coordMap{interval2D: [2]float64{0, 0.5}, interval3D: [2]float64{1, -1}, axis3D: axisZ},
		-1,
	)
	if err != nil {
		return nil, err
	}

	front, err := newRegion(
		coordMap{interval2D: [2]float64{1.0 / 3, 2.0 / 3}, interval3D: [2]float64{-1, 1}, axis3D: axisY},
		coordMap{interval2D: [2]float64{0, 0.5}, interval3D: [2]float64{1, -1}, axis3D: axisZ},
		-1,
	)
	if err != nil {
		return nil, err
	}

	right, err := newRegion(
		coordMap{interval2D: [2]float64{2.0 / 3, 1}, interval3D: [2]float64{-1, 1}, axis3D: axisX},
		coordMap{interval2D: [2]float64{0, 0.5}, interval3D: [2]float64{1, -1}, axis3D: axisZ},
		1,
	)
	if err != nil {
		return nil, err
	}

	back, err := newRegion(
		coordMap{interval2D: [2]float64{1.0 / 3, 2.0 / 3}, interval3D: [2]float64{1, -1}, axis3D: axisZ},
		coordMap{interval2D: [2]float64{0.5, 1}, interval3D: [2]float64{-1, 1}, axis3D: axisY},
		1,
	)
	if err != nil {
		return nil, err
	}

	bottom, err := newRegion(
		coordMap{interval2D: [2]float64{2.0 / 3, 1}, interval3D: [2]float64{1, -1}, axis3D: axisX},
		coordMap{interval2D: [2]float64{0.5, 1}, interval3D: [2]float64{-1, 1}, axis3D: axisY},
		-1,
	)
	if err != nil {
		return nil, err
	}

	return &CMP{
		size:    size,
		regions: [6]region{top, left, front, right, back, bottom},
	}, nil
}

/*****************************************************************************************************************/

// Size returns the projection's canvas size.
func (c *CMP) Size() raster.Size {
	return c.size
}

/*****************************************************************************************************************/

func (c *CMP) FocalLength() float64 {
	return 1 / math.Tan(math.Pi/float64(c.size.H))
}

/*****************************************************************************************************************/

func (c *CMP) ToSphere(y, x float64) (xs, ys, zs float64) {
	yn := (y + 0.5) / float64(c.size.H)
	xn := (x + 0.5) / float64(c.size.W)

	for _, r := range c.regions {
		if r.withinRegionMask(yn, xn) {
			xs, ys, zs = r.to3D(yn, xn)
			norm := math.Sqrt(xs*xs + ys*ys + zs*zs)
			return xs / norm, ys / norm, zs / norm
		}
	}

	return math.NaN(), math.NaN(), math.NaN()
}

/*****************************************************************************************************************/

func (c *CMP) FromSphere(xs, ys, zs float64) (y, x float64, aux bool) {
	for _, r := range c.regions {
		if r.withinCubefaceMask(xs, ys, zs) {
			yn, xn := r.to2D(xs, ys, zs)
			return yn*float64(c.size.H) - 0.5, xn*float64(c.size.W) - 0.5, false
		}
	}

	return math.NaN(), math.NaN(), false
}

/*****************************************************************************************************************/

// CMPSize picks a 2Fx3F cubemap canvas size for the given equirectangular size. It starts from
// v = floor(sqrt(H*W/6)), the face size whose six faces hold about as many samples as the
// equirectangular grid, and moves it to a multiple of block: up to the next multiple when
// v mod block < block/2 (a full block up when v is already a multiple), down otherwise. The result
// is not always the multiple closest to v: (1024, 2048) with block 32 gives v = 591 and F = 608.
func CMPSize(erp raster.Size, block int) raster.Size {
	v := math.Floor(math.Sqrt(float64(erp.H*erp.W) / 6))

	residual := math.Mod(v, float64(block))

	var face float64
	if residual < float64(block)/2 {
		face = v + (float64(block) - residual)
	} else {
		face = v - residual
	}

	return raster.Size{H: int(face) * 2, W: int(face) * 3}
}

/*****************************************************************************************************************/
