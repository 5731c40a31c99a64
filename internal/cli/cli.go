// Package cli implements the textalign command-line interface.
//
// This package provides commands for reformatting text files into
// fixed-width aligned lines, previewing the result interactively, and
// serving the formatter over HTTP. The CLI is built using cobra and
// supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - format: Reformat a text file with left, right, or justify alignment
//   - preview: Interactively preview alignment while adjusting width and mode
//   - serve: Expose the formatter as an HTTP API
//   - completion: Generate shell completion scripts
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Logs go to
// stderr so formatted output on stdout stays clean for piping.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/robenli/textalign/pkg/buildinfo"
)

// appName is the application name used for directories and display.
const appName = "textalign"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Textalign reformats text into fixed-width aligned lines",
		Long:         `Textalign is a CLI tool that wraps plain text into lines of a configured maximum width and renders each line left-aligned, right-aligned, or justified.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.formatCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}
