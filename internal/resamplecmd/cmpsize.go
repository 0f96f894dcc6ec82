/*****************************************************************************************************************/

package resamplecmd

/*****************************************************************************************************************/

import (
	"fmt"

	"github.com/meridianvr/var/pkg/projection"
	"github.com/meridianvr/var/pkg/raster"
	"github.com/spf13/cobra"
)

/*****************************************************************************************************************/

var (
	erpHeight int
	erpWidth  int
	cmpBlock  int
)

/*****************************************************************************************************************/

// CMPSizeCommand prints the cubemap canvas size that projection.CMPSize derives from a given
// equirectangular size, with every cube face dimension a multiple of --block.
var CMPSizeCommand = &cobra.Command{
	Use:   "cmp-size",
	Short: "cmp-size",
	Long:  "compute the cubemap canvas size matching a given equirectangular grid's sample count",
	RunE: func(cmd *cobra.Command, args []string) error {
		size := projection.CMPSize(raster.Size{H: erpHeight, W: erpWidth}, cmpBlock)
		fmt.Printf("%d %d\n", size.H, size.W)
		return nil
	},
}

/*****************************************************************************************************************/

func init() {
	CMPSizeCommand.Flags().IntVar(&erpHeight, "erp-height", 0, "equirectangular grid height in pixels")
	CMPSizeCommand.MarkFlagRequired("erp-height")

	CMPSizeCommand.Flags().IntVar(&erpWidth, "erp-width", 0, "equirectangular grid width in pixels")
	CMPSizeCommand.MarkFlagRequired("erp-width")

	CMPSizeCommand.Flags().IntVar(&cmpBlock, "block", 32, "cube face dimension must be a multiple of this")
}

/*****************************************************************************************************************/
