/*****************************************************************************************************************/

package raster

/*****************************************************************************************************************/

import "testing"

/*****************************************************************************************************************/

func TestNewRejectsNonPositiveDimensions(t *testing.T) {
	if _, err := New(Size{H: 0, W: 4}); err == nil {
		t.Errorf("expected error for zero height")
	}

	if _, err := New(Size{H: 4, W: -1}); err == nil {
		t.Errorf("expected error for negative width")
	}
}

/*****************************************************************************************************************/

func TestAtSet(t *testing.T) {
	img, err := New(Size{H: 3, W: 4})

	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	img.Set(1, 2, 5.5)

	if img.At(1, 2) != 5.5 {
		t.Errorf("expected 5.5, got %v", img.At(1, 2))
	}

	if img.At(0, 0) != 0 {
		t.Errorf("expected zero-initialized image, got %v", img.At(0, 0))
	}
}

/*****************************************************************************************************************/

func TestNewFromSliceValidatesLength(t *testing.T) {
	if _, err := NewFromSlice(make([]float64, 5), Size{H: 2, W: 3}); err == nil {
		t.Errorf("expected error for mismatched data length")
	}

	img, err := NewFromSlice(make([]float64, 6), Size{H: 2, W: 3})

	if err != nil {
		t.Fatalf("NewFromSlice() error: %v", err)
	}

	if img.H != 2 || img.W != 3 {
		t.Errorf("expected size 2x3, got %dx%d", img.H, img.W)
	}
}

/*****************************************************************************************************************/
