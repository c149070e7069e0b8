// Package cmd implements the command-line interface for wow-renovate-data.
package cmd

import (
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/RagedUnicorn/wow-renovate-data/curseforge"
	"github.com/RagedUnicorn/wow-renovate-data/icon"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(authCmd)
	authCmd.AddCommand(authSetCmd)
	authCmd.AddCommand(authDeleteCmd)
	authCmd.AddCommand(authStatusCmd)

	authSetCmd.Flags().StringP("key", "k", "", "Provide the API key directly instead of being prompted")
}

// authCmd manages the CurseForge credential stored in the system keyring.
var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the CurseForge API key stored in the system keyring",
	Long: "Store, inspect or remove the CurseForge API key in the system keyring.\n" +
		"The WOW_RENOVATE_DATA_CURSEFORGE_API_KEY environment variable always takes precedence when set.",
}

// authSetCmd stores the CurseForge API key in the system keyring.
var authSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Store the CurseForge API key in the system keyring",
	Run: func(cmd *cobra.Command, args []string) {
		apiKey := lo.Must(cmd.Flags().GetString("key"))

		if apiKey == "" {
			prompt := &survey.Password{Message: "CurseForge API key:"}
			handleErr(survey.AskOne(prompt, &apiKey, survey.WithValidator(survey.Required)))
		}

		if apiKey == "" {
			handleErr(errors.New("no API key provided"))
		}

		handleErr(curseforge.SaveAPIKey(apiKey))
		fmt.Printf("%s API key stored\n", icon.Get(icon.Success))
	},
}

// authDeleteCmd removes the CurseForge API key from the system keyring.
var authDeleteCmd = &cobra.Command{
	Use:     "delete",
	Short:   "Remove the CurseForge API key from the system keyring",
	Aliases: []string{"remove"},
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(curseforge.DeleteAPIKey())
		fmt.Printf("%s API key removed\n", icon.Get(icon.Success))
	},
}

// authStatusCmd reports whether a CurseForge credential can currently be resolved.
var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Report whether a CurseForge credential can be resolved",
	Run: func(cmd *cobra.Command, args []string) {
		if _, err := curseforge.APIKey(); err != nil {
			fmt.Printf("%s no credential found\n", icon.Get(icon.Fail))
			return
		}

		fmt.Printf("%s credential resolved\n", icon.Get(icon.Success))
	},
}
