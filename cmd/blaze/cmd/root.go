package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Build-time variables set via -ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Global flags.
var (
	configPath  string
	indexPath   string
	rootDir     string
	envFile     string
	jobs        int
	lintTimeout string
	verbose     bool
	quiet       bool
	noColor     bool
)

var rootCmd = &cobra.Command{
	Use:   "blaze",
	Short: "Incremental lint runner",
	Long: `blaze runs your configured lint chains only against files that changed
since the last clean run. It records the content digest of every file that
passed all lints for its type, so unchanged, lint-clean files are skipped the
next time.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadEnvFile()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("blaze %s\n", version)
		fmt.Printf("  commit:  %s\n", commit)
		fmt.Printf("  built:   %s\n", date)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to lint config (default: discovered under <root>/blaze)")
	rootCmd.PersistentFlags().StringVar(&indexPath, "index", "", "path to file index (default: <root>/blaze/file_index.json)")
	rootCmd.PersistentFlags().StringVar(&rootDir, "root", ".", "project root to lint")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "optional env file loaded before lints run")
	rootCmd.PersistentFlags().IntVar(&jobs, "jobs", 0, "concurrent hashing workers (default: one per CPU)")
	rootCmd.PersistentFlags().StringVar(&lintTimeout, "timeout", "", "default per-lint timeout, e.g. 5m (default: none)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "detailed output")
	rootCmd.PersistentFlags().BoolVar(&quiet, "quiet", false, "minimal output (errors only)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(versionCmd)
}

// loadEnvFile exports variables from the env file so lint processes
// inherit them. A missing file is fine.
func loadEnvFile() error {
	if envFile == "" {
		return nil
	}
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(envFile); err != nil {
		return fmt.Errorf("loading env file %s: %w", envFile, err)
	}
	return nil
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return err
	}
	return nil
}
