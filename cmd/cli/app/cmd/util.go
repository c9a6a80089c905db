package cmd

import (
	"redeploy/cmd/cli/app"
	"redeploy/internal/core/domain"

	"github.com/spf13/cobra"
)

func CredentialIDCompletion(
	cmd *cobra.Command,
	args []string,
	toComplete string,
) ([]cobra.Completion, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	credentialHandler, err := app.InjectCredentialCommandHandler()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	ids, err := credentialHandler.ListIDs()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	return append(ids, domain.EnvironmentCredentialID), cobra.ShellCompDirectiveNoFileComp
}
