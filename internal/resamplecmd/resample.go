/*****************************************************************************************************************/

// Package resamplecmd wires the viewport-adaptive resampling pipeline up as cobra subcommands.
package resamplecmd

/*****************************************************************************************************************/

import (
	"context"
	"fmt"
	"os"

	"github.com/meridianvr/var/internal/rawimage"
	"github.com/meridianvr/var/pkg/projection"
	"github.com/meridianvr/var/pkg/raster"
	"github.com/meridianvr/var/pkg/resample"
	"github.com/meridianvr/var/pkg/viewport"
	"github.com/spf13/cobra"
)

/*****************************************************************************************************************/

var (
	inputFileLocation  string
	outputFileLocation string
	sourceFormat       string
	targetFormat       string
	targetHeight       int
	targetWidth        int
	blockSize          int
	incidentFactor     float64
	method             string
)

/*****************************************************************************************************************/

// ResampleCommand converts a raw grid from one spherical projection format to another using
// viewport-adaptive resampling.
var ResampleCommand = &cobra.Command{
	Use:   "resample",
	Short: "resample",
	Long:  "resample an equirectangular, cubemap or perspective grid into another projection format",
	RunE: func(cmd *cobra.Command, args []string) error {
		inputFile, err := os.Open(inputFileLocation)
		if err != nil {
			return fmt.Errorf("failed to open input file: %w", err)
		}
		defer inputFile.Close()

		image, err := rawimage.Read(inputFile)
		if err != nil {
			return fmt.Errorf("failed to read input grid: %w", err)
		}

		srcProjection, err := buildProjection(sourceFormat, image.Size)
		if err != nil {
			return fmt.Errorf("failed to build source projection: %w", err)
		}

		targetSize := raster.Size{H: targetHeight, W: targetWidth}

		tarProjection, err := buildProjection(targetFormat, targetSize)
		if err != nil {
			return fmt.Errorf("failed to build target projection: %w", err)
		}

		meshResampler, err := buildMeshResampler(method)
		if err != nil {
			return fmt.Errorf("failed to build mesh-to-mesh resampler: %w", err)
		}

		resampler, err := viewport.New(viewport.Config{
			SourceSize:           image.Size,
			SourceProjection:     srcProjection,
			TargetSize:           targetSize,
			TargetProjection:     tarProjection,
			MeshToMeshResampler:  meshResampler,
			BlockSize:            blockSize,
			IncidentAngleFactor:  incidentFactor,
			OnBlockDone: func(done, total int) {
				fmt.Fprintf(os.Stderr, "\rresampling block %d/%d", done, total)
			},
		})
		if err != nil {
			return fmt.Errorf("failed to configure resampler: %w", err)
		}

		out, err := resampler.Resample(context.Background(), image)
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return fmt.Errorf("failed to resample: %w", err)
		}

		outputFile, err := os.Create(outputFileLocation)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer outputFile.Close()

		if err := rawimage.Write(outputFile, out); err != nil {
			return fmt.Errorf("failed to write output grid: %w", err)
		}

		return nil
	},
}

/*****************************************************************************************************************/

func buildProjection(format string, size raster.Size) (projection.Projection, error) {
	switch format {
	case "erp":
		return projection.NewERP(size), nil
	case "cmp":
		return projection.NewCMP(size)
	case "perspective":
		return projection.NewPerspective(float64(size.H)/2, float64(size.H)/2-0.5, float64(size.W)/2-0.5), nil
	default:
		return nil, fmt.Errorf("unknown projection format %q (want erp, cmp or perspective)", format)
	}
}

/*****************************************************************************************************************/

func buildMeshResampler(method string) (resample.MeshResampler, error) {
	switch method {
	case "fsmr":
		return resample.NewFSMR(), nil
	case "nearest":
		return resample.NewNearestNeighbor(), nil
	default:
		return nil, fmt.Errorf("unknown resampling method %q (want fsmr or nearest)", method)
	}
}

/*****************************************************************************************************************/

func init() {
	ResampleCommand.Flags().StringVarP(&inputFileLocation, "input", "i", "", "input raw grid file location")
	ResampleCommand.MarkFlagRequired("input")

	ResampleCommand.Flags().StringVarP(&outputFileLocation, "output", "o", "", "output raw grid file location")
	ResampleCommand.MarkFlagRequired("output")

	ResampleCommand.Flags().StringVar(&sourceFormat, "source-format", "erp", "source projection format: erp, cmp or perspective")
	ResampleCommand.Flags().StringVar(&targetFormat, "target-format", "erp", "target projection format: erp, cmp or perspective")

	ResampleCommand.Flags().IntVar(&targetHeight, "target-height", 0, "target grid height in pixels")
	ResampleCommand.MarkFlagRequired("target-height")

	ResampleCommand.Flags().IntVar(&targetWidth, "target-width", 0, "target grid width in pixels")
	ResampleCommand.MarkFlagRequired("target-width")

	ResampleCommand.Flags().IntVar(&blockSize, "block-size", 8, "block size in target pixels")
	ResampleCommand.Flags().Float64Var(&incidentFactor, "incident-angle-factor", 2, "incident angle factor for source neighborhood selection")
	ResampleCommand.Flags().StringVar(&method, "method", "fsmr", "mesh-to-mesh resampling method: fsmr or nearest")
}

/*****************************************************************************************************************/
