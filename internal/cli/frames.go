package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/inkwell/pkg/config"
	"github.com/matzehuels/inkwell/pkg/pipeline"
	"github.com/matzehuels/inkwell/pkg/surface"
)

// framesOpts holds the command-line flags for the frames command.
type framesOpts struct {
	signatureOpts
	dir        string // output directory
	fps        int    // frames per second
	duration   string // animation length, e.g. "1s"
	background string // #RRGGBB fill behind every frame
}

// framesCommand creates the frames command, which exports the animation
// as a numbered PNG sequence.
func (c *CLI) framesCommand() *cobra.Command {
	var opts framesOpts

	cmd := &cobra.Command{
		Use:   "frames [text]",
		Short: "Export the signature animation as a PNG sequence",
		Long: `Play the signature animation on a simulated clock and write every frame
as frame-NNNN.png. The first frame is blank and the last frame is identical
to 'inkwell render' output.`,
		Example: `  inkwell frames "Ada Lovelace" --dir frames --fps 30
  ffmpeg -framerate 30 -i frames/frame-%04d.png signature.mp4`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, cfg, err := opts.resolve(cmd, c.config, args)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("fps") {
				cfg.FPS = opts.fps
			}
			if cmd.Flags().Changed("duration") {
				if err := cfg.SetDuration(opts.duration); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("background") {
				cfg.Background = opts.background
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return runFrames(cmd.Context(), p, cfg, opts.dir)
		},
	}

	addSignatureFlags(cmd, &opts.signatureOpts)
	cmd.Flags().StringVarP(&opts.dir, "dir", "d", "frames", "output directory")
	cmd.Flags().IntVar(&opts.fps, "fps", 0, "frames per second (default from config, 60)")
	cmd.Flags().StringVar(&opts.duration, "duration", "", "animation length (default from config, 1s)")
	cmd.Flags().StringVar(&opts.background, "background", "", "background color as #RRGGBB (default transparent)")

	return cmd
}

// runFrames writes one PNG per animation frame into dir.
func runFrames(ctx context.Context, p surface.Params, cfg config.Config, dir string) error {
	logger := loggerFromContext(ctx)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}
	popts, err := pipeline.FromConfig(cfg, p)
	if err != nil {
		return err
	}
	popts.Logger = logger

	spinner := newSpinnerWithContext(ctx, "Rendering frames...")
	spinner.Start()

	prog := newProgress(logger)
	runner := pipeline.NewRunner(nil, nil, logger)
	n, err := runner.Frames(ctx, popts, func(i int, data []byte) error {
		return os.WriteFile(filepath.Join(dir, frameName(i)), data, 0o644)
	})
	if err != nil {
		if spinner.Cancelled() {
			spinner.Stop()
			return err
		}
		spinner.StopWithError("Frame export failed")
		return err
	}
	prog.done(fmt.Sprintf("Exported %d frames", n))
	spinner.StopWithSuccess(fmt.Sprintf("Exported %s frames at %s fps", StyleNumber.Render(fmt.Sprint(n)), StyleNumber.Render(fmt.Sprint(cfg.FPS))))
	printFile(filepath.Join(dir, frameName(0)))
	printFile(filepath.Join(dir, frameName(n-1)))
	printNextStep("Encode a video", fmt.Sprintf("ffmpeg -framerate %d -i %s %s", cfg.FPS, filepath.Join(dir, "frame-%04d.png"), "signature.mp4"))
	return nil
}

func frameName(i int) string {
	return fmt.Sprintf("frame-%04d.png", i)
}
