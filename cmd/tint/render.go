package main

import (
	"fmt"
	"regexp"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tint/internal/logger"
	"github.com/alexisbeaulieu97/tint/internal/theme"
	"github.com/alexisbeaulieu97/tint/pkg/sgr"
)

type renderOptions struct {
	styleName string
	themePath string
	fg        string
	bg        string
	attrs     []string
}

func newRenderCmd(flags *rootFlags) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render [flags] TEMPLATE [ARGS...]",
		Short: "Render styled text to stdout",
		Long: `Render wraps TEMPLATE in the requested style and prints the result.

With --style naming a style kind (bold, red, bg-bright-blue, fg256, rgb, ...)
TEMPLATE may start with the sigil grammar: an output sigil ('%' deferred
format, '@' string, '#' const-format) followed by a revert sigil ('!' keep
formatting, '*' reset everything), then an optional comma. Without sigils the
template is literal text and takes no arguments; with them it is an fmt
template for the remaining ARGS.

With --theme (plus --style picking an entry) or with --fg/--bg/--attr the
template carries no sigils: it is fixed text, or an fmt template when ARGS
are given. The revert behavior comes from the theme entry.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, flags, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.styleName, "style", "s", "", "Style kind or theme entry name")
	cmd.Flags().StringVarP(&opts.themePath, "theme", "t", "", "Theme file defining named styles")
	cmd.Flags().StringVar(&opts.fg, "fg", "", "Foreground color (name, #hex, index or (r,g,b))")
	cmd.Flags().StringVar(&opts.bg, "bg", "", "Background color")
	cmd.Flags().StringArrayVar(&opts.attrs, "attr", nil, "Style attribute, repeatable")

	return cmd
}

func runRender(cmd *cobra.Command, flags *rootFlags, opts *renderOptions, args []string) error {
	log := newLogger(cmd, flags)

	template := args[0]
	extra := make([]any, 0, len(args)-1)
	for _, arg := range args[1:] {
		extra = append(extra, arg)
	}

	var (
		out string
		err error
	)
	switch {
	case opts.themePath != "":
		out, err = renderWithTheme(log, opts, template, extra)
	case opts.styleName != "":
		out, err = renderWithKind(log, opts.styleName, template, extra)
	case opts.fg != "" || opts.bg != "" || len(opts.attrs) > 0:
		out, err = renderWithFlags(log, opts, template, extra)
	default:
		return fmt.Errorf("specify a style with --style, --theme or --fg/--bg/--attr")
	}
	if err != nil {
		return err
	}

	if !styledOutput(flags) {
		out = stripSequences(out)
	}

	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

func renderWithKind(log *logger.Logger, name, template string, args []any) (string, error) {
	log.WithFields(map[string]any{"style": name}).Debug("rendering with style kind")

	inv, err := sgr.ParseInvocation(name, template, args...)
	if err != nil {
		return "", err
	}
	return inv.Render()
}

func renderWithTheme(log *logger.Logger, opts *renderOptions, template string, args []any) (string, error) {
	if opts.styleName == "" {
		return "", fmt.Errorf("--theme requires --style to pick an entry")
	}

	log.WithFields(map[string]any{"theme": opts.themePath, "style": opts.styleName}).Debug("rendering with theme entry")

	t, err := theme.Parse(opts.themePath)
	if err != nil {
		return "", err
	}

	resolved, err := t.Resolve(opts.styleName)
	if err != nil {
		return "", err
	}

	if len(args) == 0 {
		return resolved.Apply(template), nil
	}
	return resolved.Sprintf(template, args...), nil
}

func renderWithFlags(log *logger.Logger, opts *renderOptions, template string, args []any) (string, error) {
	log.WithFields(map[string]any{"fg": opts.fg, "bg": opts.bg}).Debug("rendering with ad-hoc style")

	resolved, err := theme.Resolve(theme.Entry{
		Name:  "cli",
		Fg:    opts.fg,
		Bg:    opts.bg,
		Attrs: opts.attrs,
	})
	if err != nil {
		return "", err
	}

	if len(args) == 0 {
		return resolved.Apply(template), nil
	}
	return resolved.Sprintf(template, args...), nil
}

var sequencePattern = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// stripSequences drops SGR sequences for non-terminal output.
func stripSequences(s string) string {
	return sequencePattern.ReplaceAllString(s, "")
}
