package cmd

import (
	"fmt"

	"github.com/deploymenttheory/go-api-magento-client/version"
	"github.com/spf13/cobra"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.GetAppName()+" "+version.GetVersion())
		},
	}
}
