package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of tourkit",
	Long:  `All software has versions. This is tourkit's.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("tourkit %s\n", rootCmd.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
