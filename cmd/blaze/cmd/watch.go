package cmd

import (
	"os"
	"os/signal"
	"slices"
	"syscall"
	"time"

	"github.com/bianoble/blaze/internal/watch"
	"github.com/spf13/cobra"
)

var watchDebounce time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-run lints whenever files change",
	Long: `Runs once, then watches the project root and runs again after files stop
changing for the debounce window. The config is reloaded on every run, and
edits to global_ignore take effect for the watched set after that run. A
failed run is reported and watching continues; the index keeps the state of
the last successful run. Stop with Ctrl-C.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		cfg, err := client.LoadConfig()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		w, err := watch.New(client.ProjectRoot(), watch.Options{
			Ignore:   cfg.GlobalIgnore,
			Skip:     []string{client.IndexPath()},
			Debounce: watchDebounce,
		})
		if err != nil {
			return err
		}
		defer w.Close()

		// An edited global_ignore resizes the watched set; a config that no
		// longer loads keeps the previous one.
		ignore := cfg.GlobalIgnore
		reloadIgnore := func() {
			next, loadErr := client.LoadConfig()
			if loadErr != nil || slices.Equal(next.GlobalIgnore, ignore) {
				return
			}
			ignore = next.GlobalIgnore
			if err := w.SetIgnore(ignore); err != nil {
				errorf("%s", err)
			}
		}

		runOnce := func() {
			result, runErr := client.Run(ctx)
			reloadIgnore()
			if runErr != nil {
				if ctx.Err() == nil {
					errorf("%s", runErr)
				}
				return
			}
			clean, dirty, dropped := result.Totals()
			info("Lint complete: %d unchanged, %d linted, %d reported. Watching for changes...",
				clean, dirty, dropped)
		}

		runOnce()
		return w.Run(ctx, runOnce)
	},
}

func init() {
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", watch.DefaultDebounce, "quiet period before re-running")
	rootCmd.AddCommand(watchCmd)
}
