package cmd

import (
	"os"

	"redeploy/cmd/cli/app"
	"redeploy/internal/core/handler"

	"github.com/spf13/cobra"
)

var (
	credentialEndpoint    string
	credentialTrustCert   bool
	credentialDescription string
	credentialTokenStdin  bool
)

func init() {
	credentialAddCmd.Flags().StringVar(&credentialEndpoint, "endpoint", "", "Rancher2 API endpoint, e.g. https://rancher.example.com/v3")
	credentialAddCmd.Flags().BoolVar(&credentialTrustCert, "trust-cert", false, "skip TLS certificate verification for this endpoint")
	credentialAddCmd.Flags().StringVar(&credentialDescription, "description", "", "free text shown by 'credential list'")
	credentialAddCmd.Flags().BoolVar(&credentialTokenStdin, "token-stdin", false, "read the bearer token from stdin")
	_ = credentialAddCmd.MarkFlagRequired("endpoint")

	credentialCmd.AddCommand(credentialAddCmd)
	credentialCmd.AddCommand(credentialListCmd)
	credentialCmd.AddCommand(credentialDeleteCmd)
	credentialCmd.AddCommand(credentialTestCmd)
	credentialCmd.AddCommand(credentialResetCmd)
	rootCmd.AddCommand(credentialCmd)
}

var credentialCmd = &cobra.Command{
	Use:   "credential",
	Short: "Manage Rancher2 API credentials",
	Long: `Manage Rancher2 API credentials. Bearer tokens are kept in an encrypted file
whose key is stored in the OS keyring.

The id 'env' is reserved: it reads RANCHER2_ENDPOINT, RANCHER2_BEARER_TOKEN and
RANCHER2_TRUST_CERT from the environment instead of the store.`,
}

var credentialAddCmd = &cobra.Command{
	Use:   "add <id>",
	Short: "Add or replace a credential",
	Long:  `Store a credential. The bearer token is prompted without echo unless --token-stdin is given.`,
	Example: `  # Prompt for the token
  redeploy credential add rancher --endpoint https://rancher.example.com/v3

  # Pipe the token, e.g. from a secret manager
  echo "$RANCHER_TOKEN" | redeploy credential add rancher --endpoint https://rancher.example.com/v3 --token-stdin`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		credentialHandler, err := app.InjectCredentialCommandHandler()
		if err != nil {
			return err
		}

		request := handler.AddCredentialRequest{
			ID:          args[0],
			Endpoint:    credentialEndpoint,
			TrustCert:   credentialTrustCert,
			Description: credentialDescription,
		}
		if credentialTokenStdin {
			request.TokenInput = os.Stdin
		}
		return credentialHandler.HandleAdd(request)
	},
}

var credentialListCmd = &cobra.Command{
	Use:   "list",
	Short: "List credentials",
	Long:  `List stored credentials with their endpoints (tokens are not shown).`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		credentialHandler, err := app.InjectCredentialCommandHandler()
		if err != nil {
			return err
		}

		return credentialHandler.HandleList()
	},
}

var credentialDeleteCmd = &cobra.Command{
	Use:               "delete <id>",
	Short:             "Delete a credential",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: CredentialIDCompletion,
	RunE: func(cmd *cobra.Command, args []string) error {
		credentialHandler, err := app.InjectCredentialCommandHandler()
		if err != nil {
			return err
		}

		return credentialHandler.HandleDelete(args[0])
	},
}

var credentialTestCmd = &cobra.Command{
	Use:   "test <id>",
	Short: "Check that a credential can reach its endpoint",
	Long:  `List the projects visible to the credential to check the endpoint and the token.`,
	Example: `  redeploy credential test rancher

  # Check the credential described by RANCHER2_* variables
  redeploy credential test env`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: CredentialIDCompletion,
	RunE: func(cmd *cobra.Command, args []string) error {
		credentialHandler, err := app.InjectCredentialCommandHandler()
		if err != nil {
			return err
		}

		return credentialHandler.HandleTest(cmd.Context(), args[0])
	},
}

var credentialResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Remove all credentials and their encryption key",
	Long: `Delete the credential store and its keyring entry. Use this when the keyring
entry was lost and the store can no longer be decrypted.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		credentialHandler, err := app.InjectCredentialCommandHandler()
		if err != nil {
			return err
		}

		return credentialHandler.HandleReset()
	},
}
