package cmd

import (
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Lint changed files and update the index",
	Long: `Finds every file whose content changed since the last clean run, runs the
lint chain configured for its extension, and records the files that no lint
reported on. Files a lint reports on are left out of the index and are linted
again next time. Lint findings do not make this command fail; a lint that
cannot be started does, and then the index is not written.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		result, err := client.Run(cmd.Context())
		if err != nil {
			return err
		}

		clean, dirty, dropped := result.Totals()
		info("")
		info("Lint complete: %d unchanged, %d linted, %d reported, %d indexed.",
			clean, dirty, dropped, result.Index.Len())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
