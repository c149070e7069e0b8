// Package cmd implements the command-line interface for wow-renovate-data.
package cmd

import (
	"fmt"

	"github.com/RagedUnicorn/wow-renovate-data/curseforge"
	"github.com/RagedUnicorn/wow-renovate-data/gameversion"
	"github.com/RagedUnicorn/wow-renovate-data/icon"
	"github.com/RagedUnicorn/wow-renovate-data/pipeline"
	"github.com/RagedUnicorn/wow-renovate-data/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Bool("versions", false, "Publish only the addon interface version artifact")
	runCmd.Flags().Bool("version-ids", false, "Publish only the game version id artifact")
	runCmd.Flags().BoolP("dry-run", "n", false, "Report the change decision without writing any artifact")
	runCmd.MarkFlagsMutuallyExclusive("versions", "version-ids")
}

// runCmd fetches upstream version data and publishes the JSON artifacts.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Fetch CurseForge version data and publish the JSON artifacts",
	Long: "Fetch World of Warcraft version metadata from the CurseForge API, normalize it\n" +
		"and publish the addon interface version and game version id artifacts.",
	Run: func(cmd *cobra.Command, args []string) {
		var (
			versionsOnly = lo.Must(cmd.Flags().GetBool("versions"))
			idsOnly      = lo.Must(cmd.Flags().GetBool("version-ids"))
			dryRun       = lo.Must(cmd.Flags().GetBool("dry-run"))
		)

		// Credential precondition, checked before any network call.
		_, err := curseforge.APIKey()
		handleErr(err)

		catalog := gameversion.NewCatalog()

		var jobs []pipeline.Job
		if !idsOnly {
			jobs = append(jobs, pipeline.NewAddonVersions(catalog))
		}
		if !versionsOnly {
			jobs = append(jobs, pipeline.NewGameVersionIds(catalog))
		}

		for _, job := range jobs {
			e := util.PrintErasable(fmt.Sprintf("%s Publishing %s...", icon.Get(icon.Progress), job.Name()))
			changed, err := pipeline.Run(job, dryRun)
			e()
			handleErr(err)

			switch {
			case dryRun && changed:
				fmt.Printf("%s %s would change\n", icon.Get(icon.Warning), util.Capitalize(job.Name()))
			case dryRun:
				fmt.Printf("%s %s unchanged\n", icon.Get(icon.Success), util.Capitalize(job.Name()))
			case changed:
				fmt.Printf("%s %s written to %s\n", icon.Get(icon.Success), util.Capitalize(job.Name()), job.Target())
			default:
				fmt.Printf("%s %s unchanged\n", icon.Get(icon.Success), util.Capitalize(job.Name()))
			}
		}
	},
}
