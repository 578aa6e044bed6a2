package cmd

import (
	"fmt"
	"strings"

	"github.com/bianoble/blaze/internal/config"
	"github.com/bianoble/blaze/internal/engine"
	"github.com/bianoble/blaze/internal/index"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show blaze configuration and index information",
	Long: `Displays the blaze version, the resolved config and index paths, the lint
chain for each configured file type, the ignore list, and the number of files
currently recorded as clean. With --verbose the clean files are listed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			cfg *config.Config
			ix  *index.Index
		)
		cfgPath, idxPath := configPath, indexPath

		// Missing resources are shown, not treated as errors.
		client, err := newClient()
		if err == nil {
			cfgPath, idxPath = client.ConfigPath(), client.IndexPath()
			cfg, _ = client.LoadConfig()
			ix, _ = client.LoadIndex()
		}

		result := engine.Info(version, cfg, ix, rootDir, cfgPath, idxPath)

		fmt.Printf("blaze %s\n", result.Version)
		fmt.Printf("  root:          %s\n", result.Root)
		fmt.Printf("  config:        %s\n", orNone(result.ConfigPath))
		fmt.Printf("  index:         %s\n", orNone(result.IndexPath))
		fmt.Printf("  indexed files: %d\n", result.Indexed)

		if len(result.Ignore) > 0 {
			fmt.Printf("  ignore:        %s\n", strings.Join(result.Ignore, ", "))
		}

		if len(result.Filetypes) > 0 {
			fmt.Println("\nLint chains:")
			for _, ft := range result.Filetypes {
				fmt.Printf("  %-10s → %s\n", "."+ft.Ext, strings.Join(ft.Lints, " → "))
			}
		}

		if verbose && ix != nil && ix.Len() > 0 {
			fmt.Println("\nIndexed files:")
			for _, p := range ix.Paths() {
				detail("%s", p)
			}
		}

		return nil
	},
}

func orNone(s string) string {
	if s == "" {
		return "(not found)"
	}
	return s
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
