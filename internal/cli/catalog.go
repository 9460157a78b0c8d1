package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/inkwell/pkg/errors"
	"github.com/matzehuels/inkwell/pkg/fonts"
	"github.com/matzehuels/inkwell/pkg/hexcolor"
	"github.com/matzehuels/inkwell/pkg/render"
	"github.com/matzehuels/inkwell/pkg/surface"
)

var tableHeaderStyle = lipgloss.NewStyle().Foreground(colorSlate).Bold(true)

// newTable returns a table in the CLI's house style.
func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorShadow)).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeaderStyle
			}
			if col == 0 {
				return lipgloss.NewStyle().Foreground(colorInk).Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
}

// stylesCommand lists the signature styles.
func (c *CLI) stylesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "styles",
		Short: "List signature styles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(stylesTable().Render())
			return nil
		},
	}
}

func stylesTable() *table.Table {
	t := newTable("Style", "Name", "Description", "Default font")
	for _, info := range render.Styles {
		def, _ := fonts.Default(info.Style.String())
		t.Row(info.Style.String(), info.Name, info.Description, def.Name)
	}
	return t
}

// fontsCommand lists the font table, optionally for one style.
func (c *CLI) fontsCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "fonts [style]",
		Short:     "List the fonts available for each style",
		Long:      `List the fonts available for each style and whether an installed copy was found. Fonts that are not installed render with a built-in fallback face.`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: fonts.Styles,
		RunE: func(cmd *cobra.Command, args []string) error {
			styles := fonts.Styles
			if len(args) == 1 {
				style, err := render.ParseStyle(args[0])
				if err != nil {
					return err
				}
				styles = []string{style.String()}
			}
			installed := fonts.NewResolver().Installed()
			fmt.Println(fontsTable(styles, installed).Render())
			printDetail("%d of %d fonts installed", len(installed), countFonts())
			return nil
		},
	}
}

func fontsTable(styles []string, installed map[string]string) *table.Table {
	t := newTable("ID", "Name", "Style", "Family", "Installed")
	for _, style := range styles {
		for _, f := range fonts.ForStyle(style) {
			mark := StyleDim.Render("fallback")
			if _, ok := installed[f.ID]; ok {
				mark = StyleSuccess.Render(iconSuccess)
			}
			t.Row(f.ID, f.Name, f.Style, f.Family, mark)
		}
	}
	return t
}

func countFonts() int {
	n := 0
	for _, style := range fonts.Styles {
		n += len(fonts.ForStyle(style))
	}
	return n
}

// palettesCommand prints the built-in color swatches.
func (c *CLI) palettesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "palettes",
		Short: "Show the built-in color palettes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, p := range hexcolor.Palettes {
				fmt.Println(paletteLine(p))
			}
			return nil
		},
	}
}

func paletteLine(p hexcolor.Palette) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Width(14).Foreground(colorSlate).Render(p.Name))
	for _, hex := range p.Colors {
		swatch := lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("  ")
		b.WriteString(" " + swatch + " " + StyleValue.Render(hex))
	}
	return b.String()
}

// examplesCommand lists the gallery or prints one entry.
func (c *CLI) examplesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "examples [id]",
		Short: "List the signature gallery",
		Long:  `List the signature gallery. Any entry can be rendered with 'inkwell render --example <id>'.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				fmt.Println(examplesTable(surface.Examples).Render())
				printNextStep("Render one", "inkwell render --example 1")
				return nil
			}
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return errors.New(errors.ErrCodeInvalidInput, "example id %q is not a number", args[0])
			}
			ex, ok := surface.ExampleByID(id)
			if !ok {
				return errors.New(errors.ErrCodeInvalidInput, "unknown example %d", id)
			}
			printKeyValue("Text", ex.Text)
			printKeyValue("Style", ex.Style.String())
			printKeyValue("Font", ex.Font)
			printKeyValue("Color", ex.Color)
			printKeyValue("Stroke", strconv.FormatFloat(ex.StrokeWidth, 'g', -1, 64))
			return nil
		},
	}
}

func examplesTable(examples []surface.Example) *table.Table {
	t := newTable("ID", "Text", "Style", "Font", "Color")
	for _, ex := range examples {
		t.Row(strconv.Itoa(ex.ID), ex.Text, ex.Style.String(), ex.Font, ex.Color)
	}
	return t
}
