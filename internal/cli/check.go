package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/snapdeck/snapdeck/pkg/deck"
)

// newCheckCmd creates the check command for validating deck files.
func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <deck.toml>",
		Short: "Validate a deck file and print a summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			prog := newProgress(logger)

			d, err := deck.Load(args[0])
			if err != nil {
				fmt.Println(styleError.Render("✗ " + err.Error()))
				return err
			}

			fmt.Println(styleTitle.Render(d.DisplayTitle()))
			fmt.Println(styleDim.Render(args[0]))
			fmt.Println()
			fmt.Println(summaryTable(d))
			fmt.Println()
			fmt.Println(styleSuccess.Render(fmt.Sprintf("✓ %d slides, no problems found", len(d.Slides))))

			prog.done(fmt.Sprintf("Checked %s", args[0]))
			return nil
		},
	}
}

func summaryTable(d *deck.Deck) string {
	rows := make([][]string, len(d.Slides))
	for i, s := range d.Slides {
		width := "default"
		if s.Width > 0 {
			width = strconv.FormatFloat(s.Width, 'f', -1, 64)
		} else if d.Settings.SlideWidth > 0 {
			width = strconv.FormatFloat(d.Settings.SlideWidth, 'f', -1, 64)
		}
		title := s.Title
		if title == "" {
			title = styleDim.Render("(untitled)")
		}
		rows[i] = []string{strconv.Itoa(i + 1), s.ID, title, width}
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "ID", "Title", "Width").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			return lipgloss.NewStyle()
		}).
		Render()
}
