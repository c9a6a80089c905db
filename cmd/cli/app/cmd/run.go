package cmd

import (
	"os"

	"redeploy/cmd/cli/app"
	"redeploy/internal/core/handler"

	"github.com/spf13/cobra"
)

const (
	envCredential = "REDEPLOY_CREDENTIAL"
	envWorkload   = "REDEPLOY_WORKLOAD"
	envImages     = "REDEPLOY_IMAGES"
)

var (
	runCredential string
	runWorkload   string
	runImages     string
	runAlwaysPull bool
)

func init() {
	runCmd.Flags().StringVarP(&runCredential, "credential", "c", "", "credential id, 'env' for RANCHER2_* variables (env "+envCredential+")")
	runCmd.Flags().StringVarP(&runWorkload, "workload", "w", "", "workload API path, e.g. /project/<cluster>:<project>/workloads/<type>:<namespace>:<name> (env "+envWorkload+")")
	runCmd.Flags().StringVarP(&runImages, "images", "i", "", "semicolon separated image references to roll out (env "+envImages+")")
	runCmd.Flags().BoolVar(&runAlwaysPull, "always-pull", false, "set imagePullPolicy to Always on updated containers")
	_ = runCmd.RegisterFlagCompletionFunc("credential", CredentialIDCompletion)
	rootCmd.AddCommand(runCmd)
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Redeploy a workload with new images",
	Long: `Fetch a Rancher2 workload, replace the image of every container whose image
name matches one of the given images and submit the workload back. The
cattle.io/timestamp annotation is refreshed on every run, so the workload is
rolled out even when no image changes.

Every requested image must match at least one container, otherwise nothing is
submitted. Values may reference environment variables as $VAR or ${VAR}.`,
	Example: `  # Roll out a new tag
  redeploy run -c rancher -w /project/c-abc:p-xyz/workloads/deployment:default:api -i registry.example.com/api:1.4.2

  # Update two containers and force a pull
  redeploy run -w '$WORKLOAD' -i 'api:${BUILD_NUMBER};worker:${BUILD_NUMBER}' --always-pull

  # Credentials from RANCHER2_ENDPOINT and RANCHER2_BEARER_TOKEN
  redeploy run -c env -w /p/c-abc:p-xyz/workload/deployment:default:api`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		redeployHandler, err := app.InjectRedeployCommandHandler()
		if err != nil {
			return err
		}

		request := handler.RedeployRequest{
			Credential: flagOrEnv(runCredential, envCredential),
			Workload:   flagOrEnv(runWorkload, envWorkload),
			Images:     flagOrEnv(runImages, envImages),
		}
		if cmd.Flags().Changed("always-pull") {
			request.AlwaysPull = &runAlwaysPull
		}
		return redeployHandler.Handle(cmd.Context(), request)
	},
}

func flagOrEnv(value string, key string) string {
	if value != "" {
		return value
	}
	return os.Getenv(key)
}
