/*****************************************************************************************************************/

// Package rawimage reads and writes the minimal raw float64 grid format used by the resample CLI
// demonstrator. It deliberately does not decode any real image codec or color space: image I/O and
// color conversion are outside this module's scope, and this format exists only so the CLI has
// something concrete to read and write.
package rawimage

/*****************************************************************************************************************/

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/meridianvr/var/pkg/raster"
)

/*****************************************************************************************************************/

// magic identifies the format: the ASCII bytes "VARG" (VAR Grid) followed by a version byte.
var magic = [5]byte{'V', 'A', 'R', 'G', 1}

/*****************************************************************************************************************/

// Write encodes img as: magic, H (uint32 BE), W (uint32 BE), then H*W float64s (BE), row-major.
func Write(w io.Writer, img *raster.Image) error {
	if _, err := w.Write(magic[:]); err != nil {
		return fmt.Errorf("rawimage: writing magic: %w", err)
	}

	header := make([]byte, 8)
	binary.BigEndian.PutUint32(header[0:4], uint32(img.H))
	binary.BigEndian.PutUint32(header[4:8], uint32(img.W))

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("rawimage: writing header: %w", err)
	}

	buf := make([]byte, 8*len(img.Data))
	for i, v := range img.Data {
		binary.BigEndian.PutUint64(buf[i*8:(i+1)*8], math.Float64bits(v))
	}

	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("rawimage: writing data: %w", err)
	}

	return nil
}

/*****************************************************************************************************************/

// Read decodes a grid previously written by Write.
func Read(r io.Reader) (*raster.Image, error) {
	got := make([]byte, len(magic))
	if _, err := io.ReadFull(r, got); err != nil {
		return nil, fmt.Errorf("rawimage: reading magic: %w", err)
	}

	for i := range magic {
		if got[i] != magic[i] {
			return nil, fmt.Errorf("rawimage: not a VARG file")
		}
	}

	header := make([]byte, 8)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, fmt.Errorf("rawimage: reading header: %w", err)
	}

	size := raster.Size{
		H: int(binary.BigEndian.Uint32(header[0:4])),
		W: int(binary.BigEndian.Uint32(header[4:8])),
	}

	buf := make([]byte, 8*size.H*size.W)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("rawimage: reading data: %w", err)
	}

	data := make([]float64, size.H*size.W)
	for i := range data {
		data[i] = math.Float64frombits(binary.BigEndian.Uint64(buf[i*8 : (i+1)*8]))
	}

	return raster.NewFromSlice(data, size)
}

/*****************************************************************************************************************/
