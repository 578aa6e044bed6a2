package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bianoble/blaze/internal/config"
	"github.com/spf13/cobra"
)

var initForce bool

// initTemplate is the default lint config scaffold.
const initTemplate = `# blaze lint configuration
#
# Each key under filetypes is a file extension without the dot. Its lints
# run in order; a file passes a lint when the lint's output does not mention
# its path, and only passing files reach the next lint.
filetypes:
  py:
    - name: flake8
      command: flake8
      args: []
    # - name: pylint
    #   command: pylint
    #   args: ["--score=n", "--msg-template={path}:{line}: {msg_id} {msg}"]
    #   timeout: 5m

  # js:
  #   - name: eslint
  #     command: npx
  #     args: ["eslint", "--format", "unix"]

  # go:
  #   - name: gofmt
  #     command: gofmt
  #     args: ["-l"]

# Names (not paths) skipped everywhere in the tree. Ignored directories are
# never entered.
global_ignore:
  - .git
  - blaze
  - node_modules
  - venv
`

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a starter lint configuration",
	Long: `Creates blaze/lint_config.yaml under the project root (or the --config path)
with a commented template.

Use --force to overwrite an existing configuration file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		outPath := configPath
		if outPath == "" {
			outPath = config.DefaultPath(rootDir)
		}
		if !filepath.IsAbs(outPath) {
			abs, err := filepath.Abs(outPath)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			outPath = abs
		}

		if !initForce {
			if _, err := os.Stat(outPath); err == nil {
				return fmt.Errorf("%s already exists (use --force to overwrite)", outPath)
			}
		}

		if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
			return fmt.Errorf("creating config directory: %w", err)
		}
		if err := os.WriteFile(outPath, []byte(initTemplate), 0644); err != nil {
			return fmt.Errorf("writing config: %w", err)
		}

		info("Created %s", outPath)
		info("")
		info("Next steps:")
		info("  1. Edit the file to list the lints for your file types")
		info("  2. Run 'blaze check' to see which files would be linted")
		info("  3. Run 'blaze run' to lint them and record the clean ones")
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite existing config file")
	rootCmd.AddCommand(initCmd)
}
