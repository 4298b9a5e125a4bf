package cmd

import (
	"fmt"

	"github.com/outlierai/outlier/pkg/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Outlier CLI version",
	Example: `
outlier version
`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("CLI version: %s\n", version.Version())
	},
}

func init() {
	RootCmd.AddCommand(versionCmd)
}
