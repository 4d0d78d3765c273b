package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tint/internal/tui"
)

func newPaletteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "palette",
		Short: "Browse styles and colors interactively",
		Long: `Palette opens an interactive browser over the style attributes, the basic
colors and the 256-color palette. Selecting a cell prints its escape sequence
so it can be pasted into scripts or theme files.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			program := tea.NewProgram(tui.NewModel(), tea.WithOutput(cmd.OutOrStdout()))

			final, err := program.Run()
			if err != nil {
				return fmt.Errorf("palette browser failed: %w", err)
			}

			model, ok := final.(tui.Model)
			if !ok || model.Selection == "" {
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%q\n", model.Selection)
			return nil
		},
	}
}
