/*****************************************************************************************************************/

// Package viewport implements block-wise viewport-adaptive resampling (VAR) between two spherical
// projection formats: the target canvas is split into fixed-size blocks, each block is rotated
// onto a shared virtual perspective camera, a neighborhood of source samples within the rotated
// block's incident-angle window is projected onto the same perspective plane, and the configured
// mesh-to-mesh resampler fits and evaluates the block from that neighborhood.
package viewport

/*****************************************************************************************************************/

import (
	"context"
	"fmt"
	"math"
	"sync/atomic"

	"github.com/meridianvr/var/pkg/fsmr"
	"github.com/meridianvr/var/pkg/projection"
	"github.com/meridianvr/var/pkg/raster"
	"github.com/meridianvr/var/pkg/resample"
	"github.com/meridianvr/var/pkg/resamplerr"
	"github.com/meridianvr/var/pkg/rotation"
	"golang.org/x/sync/errgroup"
)

/*****************************************************************************************************************/

// Config configures a Resampler. SourceProjection, TargetSize, TargetProjection and
// MeshToMeshResampler are required; BlockSize and IncidentAngleFactor fall back to the reference
// defaults (8 and 2) when left zero.
type Config struct {
	SourceSize       raster.Size
	SourceProjection projection.Projection

	TargetSize       raster.Size
	TargetProjection projection.Projection

	MeshToMeshResampler resample.MeshResampler

	// BlockSize is the side length, in target pixels, of each independently resampled block.
	BlockSize int

	// IncidentAngleFactor scales the block's maximum incident angle to pick the source sample
	// neighborhood radius; it must be large enough that every target sample in a block can see a
	// source reference, typically at least 1.
	IncidentAngleFactor float64

	// OnBlockDone, if set, is invoked after each block is resampled and written successfully,
	// receiving the number of blocks completed so far and the total block count. It is not invoked
	// for a block that fails or is skipped after cancellation. It may be called concurrently from
	// multiple goroutines.
	OnBlockDone func(done, total int)
}

/*****************************************************************************************************************/

const (
	defaultBlockSize           = 8
	defaultIncidentAngleFactor = 2
)

/*****************************************************************************************************************/

// Resampler resamples images between a fixed pair of source and target spherical projections.
type Resampler struct {
	cfg Config

	blocksI, blocksJ int

	sSrcX, sSrcY, sSrcZ []float64
	sTarX, sTarY, sTarZ []float64

	perspective *projection.Perspective
}

/*****************************************************************************************************************/

// New builds a Resampler, precomputing the unit-sphere coordinates of every source and target
// pixel up front so Resample can be called repeatedly against the same projection pair.
func New(cfg Config) (*Resampler, error) {
	if cfg.BlockSize == 0 {
		cfg.BlockSize = defaultBlockSize
	}

	if cfg.IncidentAngleFactor == 0 {
		cfg.IncidentAngleFactor = defaultIncidentAngleFactor
	}

	if cfg.SourceProjection == nil || cfg.TargetProjection == nil {
		return nil, fmt.Errorf("%w: source and target projections are required", resamplerr.ErrInvalidConfig)
	}

	if cfg.MeshToMeshResampler == nil {
		return nil, fmt.Errorf("%w: mesh-to-mesh resampler is required", resamplerr.ErrInvalidConfig)
	}

	if cfg.TargetSize.H%cfg.BlockSize != 0 || cfg.TargetSize.W%cfg.BlockSize != 0 {
		return nil, fmt.Errorf("%w: target size %dx%d is not divisible by block size %d (partial blocks are not supported)",
			resamplerr.ErrInvalidConfig, cfg.TargetSize.H, cfg.TargetSize.W, cfg.BlockSize)
	}

	sSrcX, sSrcY, sSrcZ := projection.ToSphereGrid(cfg.SourceProjection, cfg.SourceSize)
	sTarX, sTarY, sTarZ := projection.ToSphereGrid(cfg.TargetProjection, cfg.TargetSize)

	return &Resampler{
		cfg:         cfg,
		blocksI:     cfg.TargetSize.H / cfg.BlockSize,
		blocksJ:     cfg.TargetSize.W / cfg.BlockSize,
		sSrcX:       sSrcX,
		sSrcY:       sSrcY,
		sSrcZ:       sSrcZ,
		sTarX:       sTarX,
		sTarY:       sTarY,
		sTarZ:       sTarZ,
		perspective: projection.NewPerspective(cfg.SourceProjection.FocalLength(), 0, 0),
	}, nil
}

/*****************************************************************************************************************/

// Resample converts image, which must match the configured source size, into the configured
// target projection and size. Blocks are resampled concurrently; if any block fails, Resample
// returns the first error and no partial image.
func (r *Resampler) Resample(ctx context.Context, image *raster.Image) (*raster.Image, error) {
	if image.Size != r.cfg.SourceSize {
		return nil, fmt.Errorf("%w: image size %dx%d does not match configured source size %dx%d",
			resamplerr.ErrDimensionMismatch, image.H, image.W, r.cfg.SourceSize.H, r.cfg.SourceSize.W)
	}

	out, err := raster.New(r.cfg.TargetSize)
	if err != nil {
		return nil, err
	}

	total := r.blocksI * r.blocksJ
	var done atomic.Int64

	g, ctx := errgroup.WithContext(ctx)

	for i := 0; i < r.blocksI; i++ {
		for j := 0; j < r.blocksJ; j++ {
			i, j := i, j

			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}

				block, err := r.resampleBlock(i, j, image)
				if err != nil {
					return fmt.Errorf("block (%d, %d): %w", i, j, err)
				}

				r.writeBlock(out, i, j, block)

				if r.cfg.OnBlockDone != nil {
					r.cfg.OnBlockDone(int(done.Add(1)), total)
				}

				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

/*****************************************************************************************************************/

func (r *Resampler) writeBlock(out *raster.Image, i, j int, block []float64) {
	bs := r.cfg.BlockSize

	for bi := 0; bi < bs; bi++ {
		for bj := 0; bj < bs; bj++ {
			out.Set(i*bs+bi, j*bs+bj, block[bi*bs+bj])
		}
	}
}

/*****************************************************************************************************************/

// resampleBlock reproduces ViewportAdaptiveResampler._resample_block: rotate the block onto the
// shared perspective camera, mask the source grid down to the block's incident-angle window,
// reproject both onto the perspective plane, and hand off to the mesh-to-mesh resampler.
func (r *Resampler) resampleBlock(i, j int, image *raster.Image) ([]float64, error) {
	bs := r.cfg.BlockSize

	yTarC := (float64(i)+0.5)*float64(bs) - 0.5
	xTarC := (float64(j)+0.5)*float64(bs) - 0.5

	xsC, ysC, zsC := r.cfg.TargetProjection.ToSphere(yTarC, xTarC)

	rot, err := rotation.FromDirection(xsC, ysC, zsC)
	if err != nil {
		return nil, err
	}

	blockRotX := make([]float64, bs*bs)
	blockRotY := make([]float64, bs*bs)
	blockRotZ := make([]float64, bs*bs)

	maxTheta := 0.0
	sawNaN := false
	for bi := 0; bi < bs; bi++ {
		for bj := 0; bj < bs; bj++ {
			idx := bi*bs + bj
			srcIdx := (i*bs+bi)*r.cfg.TargetSize.W + (j*bs + bj)

			xr, yr, zr := rot.Apply(r.sTarX[srcIdx], r.sTarY[srcIdx], r.sTarZ[srcIdx])
			blockRotX[idx], blockRotY[idx], blockRotZ[idx] = xr, yr, zr

			theta := math.Acos(-xr)
			switch {
			case math.IsNaN(theta):
				sawNaN = true
			case theta > maxTheta:
				maxTheta = theta
			}
		}
	}

	// A NaN anywhere in the block's target thetas poisons the whole-block max, mirroring
	// numpy's plain (non-nan-aware) max: the block then selects no source neighborhood at all.
	if sawNaN {
		maxTheta = math.NaN()
	}

	maxTheta *= r.cfg.IncidentAngleFactor

	if maxTheta > math.Pi/2 {
		return nil, fmt.Errorf("%w: %v > pi/2", resamplerr.ErrIncidentAngleTooLarge, maxTheta)
	}

	srcPts := make([]fsmr.Point, 0, len(image.Data)/4)
	srcVal := make([]float64, 0, len(image.Data)/4)

	for idx := range r.sSrcX {
		xr, yr, zr := rot.Apply(r.sSrcX[idx], r.sSrcY[idx], r.sSrcZ[idx])

		// theta < maxTheta is false whenever theta is NaN (an off-canvas cubemap sample), which
		// excludes it from the neighborhood exactly as intended without a separate NaN check.
		theta := math.Acos(-xr)
		if theta < maxTheta {
			yp, xp, _ := r.perspective.FromSphere(xr, yr, zr)
			srcPts = append(srcPts, fsmr.Point{X: xp, Y: yp})
			srcVal = append(srcVal, image.Data[idx])
		}
	}

	tgtPts := make([]fsmr.Point, bs*bs)
	for idx := range tgtPts {
		yp, xp, _ := r.perspective.FromSphere(blockRotX[idx], blockRotY[idx], blockRotZ[idx])
		tgtPts[idx] = fsmr.Point{X: xp, Y: yp}
	}

	return r.cfg.MeshToMeshResampler(srcPts, srcVal, tgtPts)
}

/*****************************************************************************************************************/
