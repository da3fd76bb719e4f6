package cli

import (
	"encoding/json"
	"fmt"

	"github.com/jmylchreest/contrast/internal/colour"
	"github.com/jmylchreest/contrast/internal/config"
	"github.com/spf13/cobra"
)

type suggestOptions struct {
	target float64
	level  levelValue
	format string
}

// suggestion is the JSON form of a suggest result.
type suggestion struct {
	Foreground string            `json:"foreground"`
	Background string            `json:"background"`
	Suggested  string            `json:"suggested"`
	Target     float64           `json:"target"`
	Ratio      float64           `json:"ratio"`
	Reached    bool              `json:"reached"`
	Compliance colour.Compliance `json:"compliance"`
}

func newSuggestCmd(root *rootOptions) *cobra.Command {
	opts := &suggestOptions{}

	cmd := &cobra.Command{
		Use:   "suggest <foreground> <background>",
		Short: "Suggest a foreground colour that meets a target contrast",
		Long: `Suggest a variant of the foreground colour that reaches the target
contrast ratio against the background.

The foreground is darkened on light backgrounds and lightened on dark ones,
in steps of 5 per channel for at most 100 steps. If the target cannot be
reached the closest colour found is printed and reported as not reached.

Examples:
  # Fix grey text on white for AA normal text (4.5:1)
  contrast suggest '#777777' '#ffffff'

  # Aim for AAA normal text
  contrast suggest --level aaa '#777777' '#ffffff'

  # Custom ratio, JSON output
  contrast suggest --target 6 --format json 336699 000000`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSuggest(cmd, root, opts, args[0], args[1])
		},
	}

	cmd.Flags().Float64VarP(&opts.target, "target", "r", colour.DefaultTargetRatio, "target contrast ratio (1-21)")
	cmd.Flags().Var(&opts.level, "level", "target a WCAG level instead of a ratio (aa, aa-large, aaa, aaa-large)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", config.FormatText, "output format (text, json)")
	cmd.MarkFlagsMutuallyExclusive("target", "level")

	return cmd
}

func runSuggest(cmd *cobra.Command, root *rootOptions, opts *suggestOptions, fg, bg string) error {
	target := root.cfg.TargetRatio
	switch {
	case opts.level.set:
		target = opts.level.level.Threshold()
	case cmd.Flags().Changed("target"):
		target = opts.target
	}
	if !(target >= 1 && target <= 21) {
		return fmt.Errorf("invalid target ratio %.2f: must be between 1 and 21", target)
	}
	if err := validateFormat(opts.format, config.FormatText, config.FormatJSON); err != nil {
		return err
	}

	suggested := colour.Suggest(fg, bg, target)
	ratio := colour.ContrastRatio(suggested, bg)
	result := suggestion{
		Foreground: fg,
		Background: bg,
		Suggested:  suggested,
		Target:     target,
		Ratio:      ratio,
		Reached:    ratio >= target,
		Compliance: colour.Evaluate(ratio),
	}

	report := colour.NewReport(fg, bg)
	warnInvalid(root.logger, report)
	if report.Valid() && !result.Reached {
		root.logger.Warn("target ratio not reached", "target", target, "best", suggested, "ratio", ratio)
	}
	root.logger.Debug("suggestion computed", "from", fg, "to", suggested, "ratio", ratio)

	out := cmd.OutOrStdout()
	if root.quiet {
		fmt.Fprintln(out, suggested)
		return nil
	}

	switch opts.format {
	case config.FormatText, "":
		fmt.Fprintf(out, "Suggested: %s\n", result.Suggested)
		fmt.Fprintf(out, "Contrast Ratio: %s (target %s)\n", colour.FormatRatio(result.Ratio), colour.FormatRatio(result.Target))
		if !result.Reached {
			fmt.Fprintf(out, "Target not reached after %d steps\n", colour.SuggestMaxIterations)
		}
	case config.FormatJSON:
		jsonBytes, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to convert to JSON: %w", err)
		}
		fmt.Fprintln(out, string(jsonBytes))
	default:
		return fmt.Errorf("unsupported format: %s (supported: text, json)", opts.format)
	}
	return nil
}
