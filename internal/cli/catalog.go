package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/jasonlovesdoggo/gitsocial/pkg/card"
	"github.com/jasonlovesdoggo/gitsocial/pkg/palette"
)

// styleSummaries describes each card style for `gitsocial styles`.
var styleSummaries = map[card.StyleID]string{
	card.StyleClassic:   "window chrome, wrapped description, star count, contributor avatars",
	card.StyleCompact:   "centered title and description over a row of stats",
	card.StyleDetailed:  "language, dates, and counts in two columns, topics, avatars",
	card.StyleDashboard: "stat tiles, activity sparkline, topic pills",
	card.StyleMinimal:   "large name and description, star count, language",
	card.StyleModern:    "grid background, stat columns, topics, avatars",
}

func themeNames() []string {
	out := make([]string, 0, len(palette.Themes()))
	for _, t := range palette.Themes() {
		out = append(out, string(t))
	}
	return out
}

func themeList() string {
	return strings.Join(themeNames(), ", ")
}

func styleNames() []string {
	out := make([]string, 0, len(card.Styles()))
	for _, s := range card.Styles() {
		out = append(out, string(s))
	}
	return out
}

var headerStyle = lipgloss.NewStyle().Foreground(colorGray).Bold(true)

func catalogTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
}

// themesCommand lists the available palettes with color swatches.
func (c *CLI) themesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List the available color themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t := catalogTable("Theme", "Name", "Base", "Accents")
			for _, id := range palette.Themes() {
				p, err := palette.Lookup(id)
				if err != nil {
					return err
				}
				t.Row(string(id), id.Title(), palette.Hex(p.Base), swatches(p))
			}
			fmt.Fprintln(cmd.OutOrStdout(), t.Render())
			return nil
		},
	}
}

// stylesCommand lists the available card styles.
func (c *CLI) stylesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "styles",
		Short: "List the available card styles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t := catalogTable("Style", "Layout")
			for _, s := range card.Styles() {
				t.Row(string(s), styleSummaries[s])
			}
			fmt.Fprintln(cmd.OutOrStdout(), t.Render())
			return nil
		},
	}
}
