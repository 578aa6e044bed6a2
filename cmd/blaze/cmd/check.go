package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "List files that would be linted",
	Long: `Hashes all matching files and compares them against the index without
running any lint or writing the index. Exit 0 if nothing needs linting;
exit non-zero otherwise. Suitable for CI pipelines.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		result, err := client.Check(cmd.Context())
		if err != nil {
			return err
		}

		if result.Clean {
			info("All files match the index.")
			return nil
		}

		exts := make([]string, 0, len(result.Dirty))
		for ext := range result.Dirty {
			exts = append(exts, ext)
		}
		sort.Strings(exts)

		total := 0
		for _, ext := range exts {
			files := append([]string(nil), result.Dirty[ext]...)
			sort.Strings(files)
			for _, f := range files {
				info("  dirty   %s", f)
			}
			total += len(files)
		}

		return fmt.Errorf("check failed: %d file(s) need linting", total)
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
