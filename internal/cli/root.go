// Package cli provides the command-line interface for contrast.
package cli

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/jmylchreest/contrast/internal/config"
	"github.com/jmylchreest/contrast/internal/logging"
	"github.com/jmylchreest/contrast/internal/version"
	"github.com/spf13/cobra"
)

// annotationSkipConfig marks commands that run before a config file exists.
const annotationSkipConfig = "contrast/skip-config"

// rootOptions carries global flags and the state resolved from them.
type rootOptions struct {
	verbose    bool
	quiet      bool
	configPath string

	cfg    *config.Config
	logger hclog.Logger
}

// resolveConfigPath returns --config if given, otherwise the default location.
func (o *rootOptions) resolveConfigPath() (string, error) {
	if o.configPath != "" {
		return o.configPath, nil
	}
	return config.DefaultPath()
}

// NewRootCmd builds the contrast command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "contrast",
		Short: "Check colour contrast against WCAG 2.1",
		Long: `contrast computes the WCAG 2.1 contrast ratio between a foreground and
background colour and reports whether it meets the AA and AAA levels for
normal and large text.

It can also suggest a foreground colour that reaches a target ratio.`,
		Version:           version.Short(),
		SilenceUsage:      true,
		PersistentPreRunE: opts.setup,
	}

	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default: $XDG_CONFIG_HOME/contrast/config.toml)")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCheckCmd(opts))
	rootCmd.AddCommand(newSuggestCmd(opts))
	rootCmd.AddCommand(newWatchCmd(opts))
	rootCmd.AddCommand(newConfigCmd(opts))

	return rootCmd
}

// setup builds the logger and loads configuration before any subcommand runs.
// An explicit --config must exist; the default location may be absent.
func (o *rootOptions) setup(cmd *cobra.Command, _ []string) error {
	o.logger = logging.New(o.verbose, o.quiet, cmd.ErrOrStderr())

	if cmd.Annotations[annotationSkipConfig] == "true" {
		return nil
	}

	if o.configPath != "" {
		cfg, err := config.Load(o.configPath, o.logger.Named("config"))
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		o.cfg = cfg
		return nil
	}

	path, err := config.DefaultPath()
	if err != nil {
		o.logger.Debug("no user config directory, using defaults", "error", err)
		o.cfg = config.Default()
		return nil
	}

	cfg, err := config.LoadOrDefault(path, o.logger.Named("config"))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	o.cfg = cfg
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
