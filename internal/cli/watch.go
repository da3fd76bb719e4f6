package cli

import (
	"fmt"
	"sync"

	"github.com/jmylchreest/contrast/internal/colour"
	"github.com/jmylchreest/contrast/internal/config"
	"github.com/spf13/cobra"
)

func newWatchCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "watch <file>",
		Short: "Re-check colours whenever a TOML file changes",
		Long: `Watch a TOML file holding foreground and background colours and print a
fresh contrast report every time it is saved. The file uses the same keys
as the config file (-q suppresses the reports):

  foreground = "#777777"
  background = "#ffffff"
  format = "table"

Press Ctrl+C to stop.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, root, args[0])
		},
	}
}

func runWatch(cmd *cobra.Command, root *rootOptions, path string) error {
	logger := root.logger.Named("watch")

	cfg, err := config.Load(path, logger)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}

	out := cmd.OutOrStdout()
	st := newStyles(out)

	// Renders come from both this goroutine and the watcher.
	var mu sync.Mutex
	render := func(cfg *config.Config) {
		mu.Lock()
		defer mu.Unlock()

		report := colour.NewReport(cfg.Foreground, cfg.Background)
		warnInvalid(logger, report)
		if root.quiet {
			return
		}
		output, err := formatReport(report, cfg.Format, previewEnabled(out, cfg.Preview), st)
		if err != nil {
			logger.Error("failed to render report", "error", err)
			return
		}
		fmt.Fprint(out, output)
		fmt.Fprintln(out, st.muted.Render("---"))
	}

	ctx := cmd.Context()
	watcher := config.NewWatcher(path, logger, render)
	if err := watcher.Start(ctx); err != nil {
		return err
	}
	defer watcher.Stop()

	render(cfg)
	<-ctx.Done()
	return nil
}
