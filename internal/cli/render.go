package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/inkwell/pkg/config"
	"github.com/matzehuels/inkwell/pkg/pipeline"
	"github.com/matzehuels/inkwell/pkg/render/sink"
	"github.com/matzehuels/inkwell/pkg/surface"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	signatureOpts
	output     string  // output path, "-" for stdout
	format     string  // png, jpeg, svg
	quality    float64 // JPEG quality in (0, 1]
	background string  // #RRGGBB fill behind the signature
	smooth     bool    // SVG flourishes as quadratic curves
	noCache    bool    // skip the artifact cache
}

// renderCommand creates the render command for static exports.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [text]",
		Short: "Render a signature to PNG, JPEG or SVG",
		Long: `Render a signature in its final, fully drawn state.

The output file defaults to "<text>-signature.<ext>" in the current directory.`,
		Example: `  inkwell render "Ada Lovelace"
  inkwell render "Ada Lovelace" --style elegant --format svg
  inkwell render --example 5 -o gallery.jpg --format jpeg --quality 0.8`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, cfg, err := opts.resolve(cmd, c.config, args)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("format") {
				cfg.Format = opts.format
			}
			if cmd.Flags().Changed("quality") {
				cfg.Quality = opts.quality
			}
			if cmd.Flags().Changed("background") {
				cfg.Background = opts.background
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return runRender(cmd.Context(), p, cfg, opts)
		},
	}

	addSignatureFlags(cmd, &opts.signatureOpts)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (\"-\" for stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: png (default), jpeg, svg")
	cmd.Flags().Float64Var(&opts.quality, "quality", 0, "JPEG quality in (0, 1]")
	cmd.Flags().StringVar(&opts.background, "background", "", "background color as #RRGGBB (default transparent; JPEG uses white)")
	cmd.Flags().BoolVar(&opts.smooth, "smooth", false, "draw SVG flourishes as quadratic curves")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")

	return cmd
}

// runRender exports p, serving repeats from the artifact cache.
func runRender(ctx context.Context, p surface.Params, cfg config.Config, opts renderOpts) error {
	logger := loggerFromContext(ctx)

	popts, err := pipeline.FromConfig(cfg, p)
	if err != nil {
		return err
	}
	popts.Smooth = opts.smooth
	popts.Logger = logger

	out := opts.output
	if out == "" {
		out = sink.Filename(p.Text, popts.Format)
	}

	runner, err := newRunner(ctx, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(logger)
	result, err := runner.Export(ctx, popts)
	if err != nil {
		return err
	}
	if !result.CacheHit {
		prog.done(fmt.Sprintf("Rendered %s signature", p.Style))
	}

	if err := writeOutput(out, result.Data); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	if out == "-" {
		return nil
	}

	printSuccess("Rendered %s", StyleHighlight.Render(p.Text))
	printFile(out)
	printExportStats(result.Format, len(result.Data), result.CacheHit)
	return nil
}
