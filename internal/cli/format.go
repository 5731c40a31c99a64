package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/robenli/textalign/pkg/align"
	"github.com/robenli/textalign/pkg/config"
	"github.com/robenli/textalign/pkg/errors"
	"github.com/robenli/textalign/pkg/sink"
)

// formatOpts holds the command-line flags for the format command.
type formatOpts struct {
	width      int    // maximum line width in text units
	alignToken string // alignment token: left, right, justify
	output     string // destination file path ("" means stdout)
	configPath string // config file override ("" means XDG default)

	// whether the flag was set explicitly, so config file values only
	// apply when it was not
	widthSet bool
	alignSet bool
}

// formatCommand creates the format command, the tool's primary operation.
//
// Defaults resolve in order: explicit flag, config file value, built-in
// default (width 80, left alignment).
func (c *CLI) formatCommand() *cobra.Command {
	var opts formatOpts

	cmd := &cobra.Command{
		Use:   "format [file]",
		Short: "Reformat a text file into fixed-width aligned lines",
		Long: `Format wraps the words of a text file into lines no wider than the
configured width and renders each line according to the alignment mode:

  left     words joined by single spaces, no padding
  right    leading spaces pad every line out to the full width
  justify  extra spaces are spread across the gaps so every line is full

Output goes to stdout unless --output names a destination file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.widthSet = cmd.Flags().Changed("width")
			opts.alignSet = cmd.Flags().Changed("align")
			return c.runFormat(args[0], &opts)
		},
	}

	cmd.Flags().IntVarP(&opts.width, "width", "w", config.DefaultWidth, "maximum line width in text units")
	cmd.Flags().StringVarP(&opts.alignToken, "align", "a", config.DefaultAlign, "alignment: left, right, or justify")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "destination file (default: stdout)")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "config file (default: ~/.config/textalign/config.toml)")

	return cmd
}

// runFormat reads the input file, resolves settings, and runs the core
// through the stdout or file sink.
func (c *CLI) runFormat(input string, opts *formatOpts) error {
	width, mode, err := c.resolveSettings(opts)
	if err != nil {
		return err
	}
	c.Logger.Debugf("Formatting %s (width=%d, align=%s)", input, width, mode)

	content, err := readSource(input)
	if err != nil {
		return err
	}
	c.Logger.Debugf("Read %d bytes, %d words", len(content), len(strings.Fields(content)))

	s, closeSink, err := newSink(opts.output)
	if err != nil {
		return err
	}

	prog := newProgress(c.Logger)
	if err := align.Run(content, s, width, mode); err != nil {
		_ = closeSink()
		return err
	}
	if err := closeSink(); err != nil {
		return errors.Wrap(errors.ErrCodeSinkWrite, err, "close %s", opts.output)
	}

	if opts.output != "" {
		prog.done(fmt.Sprintf("Formatted %s -> %s", input, opts.output))
	} else {
		c.Logger.Debugf("Formatted %s (%s)", input, mode)
	}
	return nil
}

// resolveSettings merges flags over config file values over built-in
// defaults and validates the result.
func (c *CLI) resolveSettings(opts *formatOpts) (int, align.Mode, error) {
	cfg, err := c.loadConfig(opts.configPath)
	if err != nil {
		return 0, align.Left, err
	}

	width := cfg.Width
	if opts.widthSet {
		width = opts.width
	}
	token := cfg.Align
	if opts.alignSet {
		token = opts.alignToken
	}

	if width <= 0 {
		return 0, align.Left, errors.New(errors.ErrCodeInvalidWidth, "width must be positive, got %d", width)
	}
	mode, err := align.ParseMode(token)
	if err != nil {
		return 0, align.Left, err
	}
	return width, mode, nil
}

// loadConfig loads the config file at path, or the XDG default when path
// is empty. An unresolvable home directory just means defaults apply.
func (c *CLI) loadConfig(path string) (config.Config, error) {
	if path == "" {
		p, err := config.Path()
		if err != nil {
			c.Logger.Debugf("No config path available: %v", err)
			return config.Default(), nil
		}
		path = p
	}
	return config.Load(path)
}

// readSource reads the whole input file as text.
func readSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.Wrap(errors.ErrCodeFileNotFound, err, "no such file: %s", path)
		}
		return "", errors.Wrap(errors.ErrCodeInvalidPath, err, "read %s", path)
	}
	return string(data), nil
}

// newSink picks the output sink: a file sink when output is set, the
// stdout sink otherwise. The returned closer releases the file sink and
// is a no-op for stdout.
func newSink(output string) (sink.Sink, func() error, error) {
	if output == "" {
		return sink.NewStdout(), func() error { return nil }, nil
	}
	f, err := sink.NewFile(output)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}
