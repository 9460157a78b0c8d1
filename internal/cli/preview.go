package cli

import (
	"context"
	"fmt"
	"image"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/inkwell/pkg/config"
	"github.com/matzehuels/inkwell/pkg/frame"
	"github.com/matzehuels/inkwell/pkg/render"
	"github.com/matzehuels/inkwell/pkg/surface"
)

// Preview styles
var (
	previewBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorShadow).
			Padding(0, 1)
	previewBarStyle  = lipgloss.NewStyle().Foreground(colorInk)
	previewRestStyle = lipgloss.NewStyle().Foreground(colorShadow)
)

const (
	previewCols = 72
	previewRows = 14
	barWidth    = 40
)

// asciiRamp orders characters from empty to full ink coverage.
const asciiRamp = " .:-=+*#%@"

// previewCommand creates the preview command, a live terminal view of the
// animation.
func (c *CLI) previewCommand() *cobra.Command {
	var opts signatureOpts

	cmd := &cobra.Command{
		Use:   "preview [text]",
		Short: "Play the signature animation in the terminal",
		Long: `Play the signature animation in the terminal at the configured frame rate.

Keys: r replays, s switches style, q quits.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, cfg, err := opts.resolve(cmd, c.config, args)
			if err != nil {
				return err
			}
			return runPreview(cmd.Context(), p, cfg)
		},
	}

	addSignatureFlags(cmd, &opts)
	return cmd
}

func runPreview(ctx context.Context, p surface.Params, cfg config.Config) error {
	ticker := frame.NewTicker(frame.WithFPS(cfg.FPS))
	defer ticker.Stop()

	ctrl, err := newSurface(ctx, ticker, p, cfg)
	if err != nil {
		return err
	}
	defer ctrl.Close()

	if err := ctrl.Replay(); err != nil {
		return err
	}

	m := newPreviewModel(ctrl, cfg.Interval())
	_, err = tea.NewProgram(m, tea.WithContext(ctx)).Run()
	return err
}

// tickMsg asks the preview to sample the surface again.
type tickMsg time.Time

// previewModel samples a running surface and draws it as text.
type previewModel struct {
	ctrl      *surface.Controller
	interval  time.Duration
	progress  float64
	animating bool
	art       string
	err       error
}

func newPreviewModel(ctrl *surface.Controller, interval time.Duration) previewModel {
	return previewModel{ctrl: ctrl, interval: interval}
}

func (m previewModel) Init() tea.Cmd {
	return m.tick()
}

func (m previewModel) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "r":
			m.err = m.ctrl.Replay()
		case "s":
			p := m.ctrl.Params()
			p.Style = nextStyle(p.Style)
			p.Font = ""
			p.Animate = false
			if m.err = m.ctrl.Update(p); m.err == nil {
				m.err = m.ctrl.Replay()
			}
		}
		return m.sample(), nil
	case tickMsg:
		return m.sample(), m.tick()
	}
	return m, nil
}

// sample reads progress and pixels from the surface.
func (m previewModel) sample() previewModel {
	m.progress = m.ctrl.Progress()
	m.animating = m.ctrl.Animating()
	img, err := m.ctrl.Snapshot()
	if err != nil {
		m.err = err
		return m
	}
	m.art = asciiArt(img, previewCols, previewRows)
	return m
}

func (m previewModel) View() string {
	var b strings.Builder

	p := m.ctrl.Params()
	b.WriteString(StyleTitle.Render("inkwell preview"))
	b.WriteString("  ")
	b.WriteString(StyleDim.Render(fmt.Sprintf("%s · %s · %s", p.Style, p.Color, fontLabel(p))))
	b.WriteString("\n")
	b.WriteString(previewBoxStyle.Render(m.art))
	b.WriteString("\n")
	b.WriteString(progressBar(m.progress, barWidth))

	status := StyleSuccess.Render("done")
	if m.animating {
		status = StyleHighlight.Render("drawing")
	}
	b.WriteString(fmt.Sprintf(" %3.0f%% %s\n", m.progress*100, status))

	if m.err != nil {
		b.WriteString(styleIconError.Render(iconError) + " " + m.err.Error() + "\n")
	}
	b.WriteString(StyleDim.Render("r replay  s next style  q quit"))
	return b.String()
}

func fontLabel(p surface.Params) string {
	f, err := p.FontEntry()
	if err != nil {
		return p.Font
	}
	return f.Name
}

func nextStyle(s render.Style) render.Style {
	if s >= render.Elegant {
		return render.Calligraphy
	}
	return s + 1
}

// progressBar renders p in [0, 1] as a bar of width cells.
func progressBar(p float64, width int) string {
	filled := int(math.Round(math.Max(0, math.Min(1, p)) * float64(width)))
	return previewBarStyle.Render(strings.Repeat("█", filled)) +
		previewRestStyle.Render(strings.Repeat("░", width-filled))
}

// asciiArt downsamples img to cols×rows characters by average alpha
// coverage.
func asciiArt(img *image.RGBA, cols, rows int) string {
	b := img.Bounds()
	if b.Empty() || cols <= 0 || rows <= 0 {
		return ""
	}

	var sb strings.Builder
	for row := 0; row < rows; row++ {
		y0 := b.Min.Y + row*b.Dy()/rows
		y1 := max(y0+1, b.Min.Y+(row+1)*b.Dy()/rows)
		for col := 0; col < cols; col++ {
			x0 := b.Min.X + col*b.Dx()/cols
			x1 := max(x0+1, b.Min.X+(col+1)*b.Dx()/cols)

			var sum, n int
			for y := y0; y < y1 && y < b.Max.Y; y++ {
				for x := x0; x < x1 && x < b.Max.X; x++ {
					sum += int(img.RGBAAt(x, y).A)
					n++
				}
			}
			level := 0
			if n > 0 {
				level = sum * (len(asciiRamp) - 1) / (n * 0xff)
			}
			sb.WriteByte(asciiRamp[level])
		}
		if row < rows-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
