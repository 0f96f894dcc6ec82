/*****************************************************************************************************************/

package raster

/*****************************************************************************************************************/

import "fmt"

/*****************************************************************************************************************/

// Size is a pair of positive pixel dimensions (H, W).
type Size struct {
	H int
	W int
}

/*****************************************************************************************************************/

// Image is a 2D array of real-valued samples indexed (y, x) with y in [0, H) and x in [0, W).
// Pixel centers lie at integer coordinates; the continuous coordinate of pixel (y, x) is (y+0.5, x+0.5).
type Image struct {
	Size
	Data []float64 // row-major, length H*W
}

/*****************************************************************************************************************/

// New allocates a zero-valued image of the given size.
func New(size Size) (*Image, error) {
	if size.H <= 0 || size.W <= 0 {
		return nil, fmt.Errorf("image dimensions must be positive, got %dx%d", size.H, size.W)
	}

	return &Image{
		Size: size,
		Data: make([]float64, size.H*size.W),
	}, nil
}

/*****************************************************************************************************************/

// NewFromSlice wraps an existing row-major slice as an image, validating its length against the size.
func NewFromSlice(data []float64, size Size) (*Image, error) {
	if size.H <= 0 || size.W <= 0 {
		return nil, fmt.Errorf("image dimensions must be positive, got %dx%d", size.H, size.W)
	}

	if len(data) != size.H*size.W {
		return nil, fmt.Errorf("data length %d does not match image size %dx%d", len(data), size.H, size.W)
	}

	return &Image{Size: size, Data: data}, nil
}

/*****************************************************************************************************************/

// At returns the sample value at pixel (y, x). It does not bounds-check: the resampling pipeline
// only ever calls it with indices already validated against Size.
func (img *Image) At(y, x int) float64 {
	return img.Data[y*img.W+x]
}

/*****************************************************************************************************************/

// Set writes the sample value at pixel (y, x).
func (img *Image) Set(y, x int, v float64) {
	img.Data[y*img.W+x] = v
}

/*****************************************************************************************************************/
