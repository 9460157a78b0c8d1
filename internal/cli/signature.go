package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/inkwell/pkg/config"
	"github.com/matzehuels/inkwell/pkg/errors"
	"github.com/matzehuels/inkwell/pkg/render"
	"github.com/matzehuels/inkwell/pkg/surface"
)

// signatureOpts holds the flags shared by every command that draws a
// signature. Unset flags fall back to the config file, then to the
// built-in defaults.
type signatureOpts struct {
	example     int     // gallery entry to start from
	style       string  // calligraphy, handwriting, modern, elegant
	font        string  // font ID, name or CSS family
	color       string  // #RRGGBB
	strokeWidth float64 // 1 to 10
	width       int     // surface width in pixels
	height      int     // surface height in pixels
	systemFonts bool    // look up installed font files first
}

func addSignatureFlags(cmd *cobra.Command, o *signatureOpts) {
	cmd.Flags().IntVarP(&o.example, "example", "e", 0, "start from a gallery example (see 'inkwell examples')")
	cmd.Flags().StringVarP(&o.style, "style", "s", "", "signature style: calligraphy (default), handwriting, modern, elegant")
	cmd.Flags().StringVar(&o.font, "font", "", "font ID or name (default: first font of the style)")
	cmd.Flags().StringVarP(&o.color, "color", "c", "", "ink color as #RRGGBB")
	cmd.Flags().Float64Var(&o.strokeWidth, "stroke", 0, "stroke width, 1 to 10")
	cmd.Flags().IntVar(&o.width, "width", 0, "surface width in pixels")
	cmd.Flags().IntVar(&o.height, "height", 0, "surface height in pixels")
	cmd.Flags().BoolVar(&o.systemFonts, "system-fonts", false, "use installed font files when available")
}

// resolve merges flags over cfg and returns the signature parameters along
// with the effective config. Text comes from args, or from the example when
// --example is given.
func (o *signatureOpts) resolve(cmd *cobra.Command, cfg config.Config, args []string) (surface.Params, config.Config, error) {
	flags := cmd.Flags()
	if flags.Changed("style") {
		cfg.Style = o.style
		if !flags.Changed("font") {
			cfg.Font = ""
		}
	}
	if flags.Changed("font") {
		cfg.Font = o.font
	}
	if flags.Changed("color") {
		cfg.Color = o.color
	}
	if flags.Changed("stroke") {
		cfg.StrokeWidth = o.strokeWidth
	}
	if flags.Changed("width") {
		cfg.Width = o.width
	}
	if flags.Changed("height") {
		cfg.Height = o.height
	}
	if flags.Changed("system-fonts") {
		cfg.SystemFonts = o.systemFonts
	}
	if err := cfg.Validate(); err != nil {
		return surface.Params{}, cfg, err
	}

	if o.example == 0 {
		text := strings.TrimSpace(strings.Join(args, " "))
		if text == "" {
			return surface.Params{}, cfg, errors.New(errors.ErrCodeInvalidText, "signature text required (or use --example)")
		}
		p, err := cfg.Params(text)
		return p, cfg, err
	}

	ex, ok := surface.ExampleByID(o.example)
	if !ok {
		return surface.Params{}, cfg, errors.New(errors.ErrCodeInvalidInput, "unknown example %d", o.example)
	}
	p := ex.Params()
	if len(args) > 0 {
		p.Text = strings.Join(args, " ")
	}
	if flags.Changed("style") {
		style, err := render.ParseStyle(o.style)
		if err != nil {
			return surface.Params{}, cfg, err
		}
		p.Style = style
		p.Font = ""
	}
	if flags.Changed("font") {
		p.Font = o.font
	}
	if flags.Changed("color") {
		p.Color = o.color
	}
	if flags.Changed("stroke") {
		p.StrokeWidth = o.strokeWidth
	}
	return p, cfg, p.Validate()
}
