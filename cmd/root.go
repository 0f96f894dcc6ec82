/*****************************************************************************************************************/

package main

/*****************************************************************************************************************/

import (
	"github.com/meridianvr/var/internal/resamplecmd"
	"github.com/spf13/cobra"
)

/*****************************************************************************************************************/

var rootCommand = &cobra.Command{
	Use:   "var",
	Short: "var is a command-line tool for resampling 360 imagery between spherical projection formats.",
	Long:  "var is a command-line tool for resampling 360 imagery between spherical projection formats.",
}

/*****************************************************************************************************************/

func init() {
	rootCommand.AddCommand(resamplecmd.ResampleCommand)
	rootCommand.AddCommand(resamplecmd.CMPSizeCommand)
}

/*****************************************************************************************************************/

func execute() {
	if err := rootCommand.Execute(); err != nil {
		panic(err)
	}
}

/*****************************************************************************************************************/
