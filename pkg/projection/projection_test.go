/*****************************************************************************************************************/

package projection

/*****************************************************************************************************************/

import (
	"math"
	"testing"

	"github.com/meridianvr/var/pkg/raster"
)

/*****************************************************************************************************************/

const epsilon = 1e-9

/*****************************************************************************************************************/

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

/*****************************************************************************************************************/

func TestERPToSphereUnitNorm(t *testing.T) {
	erp := NewERP(raster.Size{H: 64, W: 128})

	for _, yx := range [][2]float64{{0, 0}, {10, 37}, {63, 127}, {32, 64}} {
		xs, ys, zs := erp.ToSphere(yx[0], yx[1])
		norm := math.Sqrt(xs*xs + ys*ys + zs*zs)

		if !almostEqual(norm, 1) {
			t.Errorf("ToSphere(%v) produced non-unit vector, norm = %v", yx, norm)
		}
	}
}

/*****************************************************************************************************************/

func TestERPRoundTrip(t *testing.T) {
	erp := NewERP(raster.Size{H: 64, W: 128})

	for _, yx := range [][2]float64{{0.5, 0.5}, {10.5, 37.5}, {62.5, 126.5}, {32.5, 64.5}} {
		xs, ys, zs := erp.ToSphere(yx[0], yx[1])
		y, x, aux := erp.FromSphere(xs, ys, zs)

		if aux {
			t.Fatalf("ERP.FromSphere unexpectedly set aux")
		}

		if !almostEqual(y, yx[0]) || !almostEqual(x, yx[1]) {
			t.Errorf("round trip mismatch: got (%v, %v), want (%v, %v)", y, x, yx[0], yx[1])
		}
	}
}

/*****************************************************************************************************************/

func TestPerspectiveRoundTrip(t *testing.T) {
	p := NewPerspective(256, 127.5, 127.5)

	for _, yx := range [][2]float64{{127.5, 127.5}, {100, 150}, {30, 200}} {
		xs, ys, zs := p.ToSphere(yx[0], yx[1])
		y, x, behind := p.FromSphere(xs, ys, zs)

		if behind {
			t.Fatalf("point unexpectedly marked behind the image plane")
		}

		if !almostEqual(y, yx[0]) || !almostEqual(x, yx[1]) {
			t.Errorf("round trip mismatch: got (%v, %v), want (%v, %v)", y, x, yx[0], yx[1])
		}
	}
}

/*****************************************************************************************************************/

func TestPerspectiveOpticalAxisMapsToNegativeX(t *testing.T) {
	p := NewPerspective(256, 127.5, 127.5)

	xs, ys, zs := p.ToSphere(127.5, 127.5)

	if !almostEqual(xs, -1) || !almostEqual(ys, 0) || !almostEqual(zs, 0) {
		t.Errorf("optical axis did not map to (-1, 0, 0), got (%v, %v, %v)", xs, ys, zs)
	}
}

/*****************************************************************************************************************/

func TestCMPRejectsInvalidCanvas(t *testing.T) {
	if _, err := NewCMP(raster.Size{H: 64, W: 65}); err == nil {
		t.Fatalf("expected error for non 2Fx3F canvas")
	}

	if _, err := NewCMP(raster.Size{H: 0, W: 0}); err == nil {
		t.Fatalf("expected error for zero-sized canvas")
	}
}

/*****************************************************************************************************************/

func TestCMPToSphereUnitNormOrNaN(t *testing.T) {
	const face = 32

	cmp, err := NewCMP(raster.Size{H: face * 2, W: face * 3})
	if err != nil {
		t.Fatalf("NewCMP failed: %v", err)
	}

	for y := 0; y < face*2; y++ {
		for x := 0; x < face*3; x++ {
			xs, ys, zs := cmp.ToSphere(float64(y), float64(x))

			if math.IsNaN(xs) || math.IsNaN(ys) || math.IsNaN(zs) {
				continue
			}

			norm := math.Sqrt(xs*xs + ys*ys + zs*zs)
			if !almostEqual(norm, 1) {
				t.Fatalf("ToSphere(%d, %d) produced non-unit vector, norm = %v", y, x, norm)
			}
		}
	}
}

/*****************************************************************************************************************/

func TestCMPRoundTrip(t *testing.T) {
	const face = 32

	cmp, err := NewCMP(raster.Size{H: face * 2, W: face * 3})
	if err != nil {
		t.Fatalf("NewCMP failed: %v", err)
	}

	samples := [][2]float64{{5.5, 5.5}, {20.5, 50.5}, {40.5, 70.5}, {60.5, 90.5}, {10.5, 30.5}}

	for _, yx := range samples {
		xs, ys, zs := cmp.ToSphere(yx[0], yx[1])
		if math.IsNaN(xs) {
			t.Fatalf("sample (%v) landed outside every region", yx)
		}

		y, x, _ := cmp.FromSphere(xs, ys, zs)

		if !almostEqual(y, yx[0]) || !almostEqual(x, yx[1]) {
			t.Errorf("round trip mismatch for %v: got (%v, %v)", yx, y, x)
		}
	}
}

/*****************************************************************************************************************/

func TestCMPEveryPixelAssignedToExactlyOneRegion(t *testing.T) {
	const face = 16

	cmp, err := NewCMP(raster.Size{H: face * 2, W: face * 3})
	if err != nil {
		t.Fatalf("NewCMP failed: %v", err)
	}

	for y := 0; y < face*2; y++ {
		for x := 0; x < face*3; x++ {
			yn := (float64(y) + 0.5) / float64(face*2)
			xn := (float64(x) + 0.5) / float64(face*3)

			count := 0
			for _, r := range cmp.regions {
				if r.withinRegionMask(yn, xn) {
					count++
				}
			}

			if count != 1 {
				t.Fatalf("pixel (%d, %d) matched %d regions, want exactly 1", y, x, count)
			}
		}
	}
}

/*****************************************************************************************************************/

func TestCMPSize(t *testing.T) {
	size := CMPSize(raster.Size{H: 1024, W: 2048}, 32)

	if size.H%32 != 0 || size.W%32 != 0 {
		t.Fatalf("CMPSize(%v) not a multiple of block size: %v", raster.Size{H: 1024, W: 2048}, size)
	}

	if size.H*3 != size.W*2 {
		t.Fatalf("CMPSize(%v) is not a 2F x 3F layout: %v", raster.Size{H: 1024, W: 2048}, size)
	}

	want := raster.Size{H: 1216, W: 1824}
	if size != want {
		t.Errorf("CMPSize(1024, 2048, 32) = %v, want %v", size, want)
	}
}

/*****************************************************************************************************************/

func TestToSphereGridMatchesPointwise(t *testing.T) {
	erp := NewERP(raster.Size{H: 8, W: 16})

	xs, ys, zs := ToSphereGrid(erp, raster.Size{H: 8, W: 16})

	for y := 0; y < 8; y++ {
		for x := 0; x < 16; x++ {
			idx := y*16 + x
			wxs, wys, wzs := erp.ToSphere(float64(y), float64(x))

			if xs[idx] != wxs || ys[idx] != wys || zs[idx] != wzs {
				t.Fatalf("grid mismatch at (%d,%d)", y, x)
			}
		}
	}
}

/*****************************************************************************************************************/
