package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tint/internal/theme"
)

func newStylesCmd(flags *rootFlags) *cobra.Command {
	var themePath string

	cmd := &cobra.Command{
		Use:   "styles",
		Short: "List the styles defined in a theme",
		Long: `Styles prints every entry of a theme file, each name rendered in its own
style so the theme can be previewed at a glance.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(cmd, flags)

			t, err := theme.Parse(themePath)
			if err != nil {
				return err
			}

			log.WithFields(map[string]any{
				"theme":  t.Name,
				"styles": len(t.Styles),
			}).Debug("theme loaded")

			for _, entry := range t.Styles {
				resolved, err := theme.Resolve(entry)
				if err != nil {
					return err
				}

				line := resolved.Apply(entry.Name)
				if !styledOutput(flags) {
					line = stripSequences(line)
				}
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&themePath, "theme", "t", "", "Theme file to list")
	_ = cmd.MarkFlagRequired("theme")

	return cmd
}
