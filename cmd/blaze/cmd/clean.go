package cmd

import (
	"github.com/spf13/cobra"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Delete the file index",
	Long: `Removes the file index so the next run lints every matching file from the
first stage.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		if err := client.Clean(); err != nil {
			return err
		}
		info("Removed %s", client.IndexPath())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cleanCmd)
}
