package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/jmylchreest/contrast/internal/colour"
	"github.com/jmylchreest/contrast/internal/config"
	"github.com/spf13/cobra"
)

// ErrThresholdNotMet is returned by check when --require is not satisfied.
var ErrThresholdNotMet = errors.New("contrast below required level")

type checkOptions struct {
	format    string
	swap      bool
	preview   bool
	noPreview bool
	require   levelValue
}

func newCheckCmd(root *rootOptions) *cobra.Command {
	opts := &checkOptions{}

	cmd := &cobra.Command{
		Use:   "check [foreground] [background]",
		Short: "Check the contrast ratio between two colours",
		Long: `Compute the WCAG 2.1 contrast ratio between a foreground and background
colour and report pass/fail for each conformance level:

  AA Text          4.5:1
  AA Large Text    3:1
  AAA Text         7:1
  AAA Large Text   4.5:1

Colours are 6-digit hex values with an optional leading '#'. Missing
colours are taken from the config file (default black on white). Invalid
colours give a ratio of 1:1, which fails every level.

Examples:
  # Check black text on a white background
  contrast check '#000000' '#ffffff'

  # Show the result as a table
  contrast check --format table 777777 ffffff

  # Fail unless AAA normal text is met (useful in scripts)
  contrast check -q --require aaa '#595959' '#ffffff'`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, root, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", config.FormatText, "output format (text, table, json)")
	cmd.Flags().BoolVarP(&opts.swap, "swap", "s", false, "swap foreground and background")
	cmd.Flags().BoolVar(&opts.preview, "preview", false, "show colour previews in terminal")
	cmd.Flags().BoolVar(&opts.noPreview, "no-preview", false, "never show colour previews")
	cmd.Flags().Var(&opts.require, "require", "exit with an error unless this level passes (aa, aa-large, aaa, aaa-large)")
	cmd.MarkFlagsMutuallyExclusive("preview", "no-preview")

	return cmd
}

func runCheck(cmd *cobra.Command, root *rootOptions, opts *checkOptions, args []string) error {
	fg, bg := root.cfg.Foreground, root.cfg.Background
	if len(args) > 0 {
		fg = args[0]
	}
	if len(args) > 1 {
		bg = args[1]
	}

	format := root.cfg.Format
	if cmd.Flags().Changed("format") {
		format = opts.format
	}

	if err := validateFormat(format, config.FormatText, config.FormatTable, config.FormatJSON); err != nil {
		return err
	}

	showPreview := root.cfg.Preview
	if opts.preview {
		showPreview = true
	}
	if opts.noPreview {
		showPreview = false
	}

	report := colour.NewReport(fg, bg)
	if opts.swap {
		report = report.Swap()
	}
	warnInvalid(root.logger, report)
	root.logger.Debug("contrast computed", "foreground", report.Foreground, "background", report.Background, "ratio", report.Ratio)

	if !root.quiet {
		out := cmd.OutOrStdout()
		output, err := formatReport(report, format, previewEnabled(out, showPreview), newStyles(out))
		if err != nil {
			return err
		}
		fmt.Fprint(out, output)
	}

	if opts.require.set && !report.Compliance.Passes(opts.require.level) {
		return fmt.Errorf("%w: %s requires %s, got %s", ErrThresholdNotMet,
			opts.require.level.Label(), colour.FormatRatio(opts.require.level.Threshold()), colour.FormatRatio(report.Ratio))
	}
	return nil
}

// validateFormat rejects formats outside allowed. An empty format means text.
func validateFormat(format string, allowed ...string) error {
	if format == "" {
		return nil
	}
	for _, f := range allowed {
		if format == f {
			return nil
		}
	}
	return fmt.Errorf("unsupported format: %s (supported: %s)", format, strings.Join(allowed, ", "))
}

// formatReport renders a report in the requested format.
func formatReport(report colour.Report, format string, showPreview bool, st styles) (string, error) {
	switch format {
	case config.FormatText, "":
		return previewLines(report, showPreview) + report.Text(), nil
	case config.FormatTable:
		return previewLines(report, showPreview) + formatReportTable(report, st), nil
	case config.FormatJSON:
		jsonBytes, err := report.ToJSON()
		if err != nil {
			return "", fmt.Errorf("failed to convert to JSON: %w", err)
		}
		return string(jsonBytes) + "\n", nil
	default:
		return "", fmt.Errorf("unsupported format: %s (supported: text, table, json)", format)
	}
}

func formatReportTable(report colour.Report, st styles) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s on %s\n", st.header.Render("Contrast Ratio:"), report.Foreground, report.Background)
	fmt.Fprintf(&sb, "%s\n\n", st.header.Render(colour.FormatRatio(report.Ratio)))

	colours := NewTable([]string{"Colour", "HEX", "RGB"})
	colours.AddRow(colourRow("Foreground", report.Foreground, report.ForegroundRGB))
	colours.AddRow(colourRow("Background", report.Background, report.BackgroundRGB))
	sb.WriteString(colours.Render())
	sb.WriteString("\n")

	table := NewTable([]string{"Level", "Required", "Result"})
	for _, l := range colour.Levels {
		table.AddRow([]string{
			"WCAG 2.1 " + l.Label(),
			st.muted.Render(colour.FormatRatio(l.Threshold())),
			st.badge(report.Compliance.Passes(l)),
		})
	}
	sb.WriteString(table.Render())
	return sb.String()
}

// colourRow describes one colour; unparsable input is shown as given.
func colourRow(role, raw string, rgb *colour.RGB) []string {
	if rgb == nil {
		return []string{role, raw, "invalid"}
	}
	return []string{role, rgb.HexUpper(), rgb.String()}
}

// previewLines renders swatches for both colours, text samples and buttons.
func previewLines(report colour.Report, showPreview bool) string {
	if !showPreview || !report.Valid() {
		return ""
	}
	fg, bg := *report.ForegroundRGB, *report.BackgroundRGB
	return fmt.Sprintf("%s\n%s\n%s\n%s\n%s\n\n",
		colour.FormatColourWithPreview(fg, 8),
		colour.FormatColourWithPreview(bg, 8),
		colour.SamplePreview(fg, bg, "Small Text", 25),
		colour.LargeSamplePreview(fg, bg, "Large Text", 25),
		colour.ButtonPreview(fg, bg, "Button"),
	)
}

// previewEnabled reports whether ANSI previews should be written to w.
func previewEnabled(w io.Writer, want bool) bool {
	if !want {
		return false
	}
	f, ok := w.(*os.File)
	return ok && colour.SupportsANSIColours(f)
}

func warnInvalid(logger hclog.Logger, report colour.Report) {
	if report.ForegroundRGB == nil {
		logger.Warn("invalid foreground colour, expected #rrggbb", "value", report.Foreground)
	}
	if report.BackgroundRGB == nil {
		logger.Warn("invalid background colour, expected #rrggbb", "value", report.Background)
	}
}
