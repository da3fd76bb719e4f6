package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/jmylchreest/contrast/internal/config"
	"github.com/spf13/cobra"
)

// ErrConfigExists is returned by config init when the file is already present.
var ErrConfigExists = errors.New("config file already exists")

func newConfigCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the contrast configuration file",
	}
	cmd.AddCommand(newConfigInitCmd(root))
	return cmd
}

func newConfigInitCmd(root *rootOptions) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration file",
		Long: `Write the default configuration (black on white, target 4.5:1, text
output) to the config file so it can be edited. The file is written to
--config if given, otherwise $XDG_CONFIG_HOME/contrast/config.toml.

An existing file is left alone unless --force is given.`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationSkipConfig: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := root.resolveConfigPath()
			if err != nil {
				return err
			}

			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%w: %s (use --force to overwrite)", ErrConfigExists, path)
			}

			if err := config.Save(path, config.Default()); err != nil {
				return err
			}
			root.logger.Debug("wrote default configuration", "path", path)

			if !root.quiet {
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote default configuration to %s\n", path)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")
	return cmd
}
