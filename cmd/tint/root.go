package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/tint/internal/logger"
)

type rootFlags struct {
	verbose   bool
	colorMode string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "tint",
		Short:         "tint wraps terminal text in ANSI color and style sequences",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.colorMode, "color", "auto", "Emit escape sequences: auto, always or never")

	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newStylesCmd(flags))
	cmd.AddCommand(newPaletteCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func newLogger(cmd *cobra.Command, flags *rootFlags) *logger.Logger {
	return logger.New(logger.Options{
		Verbose:       flags.verbose,
		HumanReadable: true,
		Writer:        cmd.ErrOrStderr(),
	})
}

// styledOutput decides whether escape sequences should reach the output.
// In auto mode styling is dropped when stdout is not a terminal.
func styledOutput(flags *rootFlags) bool {
	switch flags.colorMode {
	case "always":
		return true
	case "never":
		return false
	default:
		return term.IsTerminal(int(os.Stdout.Fd()))
	}
}
