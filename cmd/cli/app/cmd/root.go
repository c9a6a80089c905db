package cmd

import (
	"os"

	"redeploy/internal/logger"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "redeploy",
	Short: "Rolls new container images out to Rancher2 workloads",
	Long: `Redeploy updates the container images of a Rancher2 workload from a CI job.
It fetches the workload through the Rancher2 API, replaces the images whose
name matches one of the requested images and submits the workload back.

Configuration is stored in ~/.redeploy/config.yaml. Run 'redeploy initialize'
to create a sample configuration file.

Common workflows:
  redeploy credential add rancher --endpoint https://rancher.example.com/v3
  redeploy run -w /project/c-abc:p-xyz/workloads/deployment:default:api -i registry.example.com/api:1.4.2`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logger.EnableVerbose()
		}
	},
}

func Execute() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log requests and responses")
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
