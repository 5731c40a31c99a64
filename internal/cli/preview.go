package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/robenli/textalign/pkg/align"
	"github.com/robenli/textalign/pkg/errors"
	"github.com/robenli/textalign/pkg/sink"
)

// Width bounds for the interactive preview.
const (
	previewMinWidth = 1
	previewMaxWidth = 200
)

// previewCommand creates the preview command for interactively exploring
// alignment settings before committing to a format run.
func (c *CLI) previewCommand() *cobra.Command {
	var opts formatOpts

	cmd := &cobra.Command{
		Use:   "preview [file]",
		Short: "Interactively preview aligned output",
		Long: `Preview renders the aligned output in the terminal and re-renders it
live while you adjust the settings:

  +/-, left/right  adjust the line width
  tab, a           cycle the alignment mode
  q, esc           quit`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.widthSet = cmd.Flags().Changed("width")
			opts.alignSet = cmd.Flags().Changed("align")
			return c.runPreview(args[0], &opts)
		},
	}

	cmd.Flags().IntVarP(&opts.width, "width", "w", 0, "initial line width (default: config or 80)")
	cmd.Flags().StringVarP(&opts.alignToken, "align", "a", "", "initial alignment (default: config or left)")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "config file (default: ~/.config/textalign/config.toml)")

	return cmd
}

// runPreview loads the source file and runs the bubbletea preview loop.
func (c *CLI) runPreview(input string, opts *formatOpts) error {
	width, mode, err := c.resolveSettings(opts)
	if err != nil {
		return err
	}
	content, err := readSource(input)
	if err != nil {
		return err
	}

	m := newPreviewModel(input, content, width, mode)
	if _, err := tea.NewProgram(m).Run(); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "preview terminated")
	}
	return nil
}

// previewModel is the bubbletea model for the interactive preview.
type previewModel struct {
	source  string // file name shown in the heading
	content string
	width   int
	modeIdx int // index into align.Modes()

	rendered string // current aligned output
	err      error  // rendering error shown instead of output
}

func newPreviewModel(source, content string, width int, mode align.Mode) previewModel {
	m := previewModel{source: source, content: content, width: width}
	for i, candidate := range align.Modes() {
		if candidate == mode {
			m.modeIdx = i
		}
	}
	m.refresh()
	return m
}

func (m previewModel) mode() align.Mode {
	return align.Modes()[m.modeIdx]
}

// refresh re-runs the core into an in-memory sink with the current settings.
func (m *previewModel) refresh() {
	var buf sink.Buffer
	if err := align.Run(m.content, &buf, m.width, m.mode()); err != nil {
		m.rendered, m.err = "", err
		return
	}
	m.rendered, m.err = buf.String(), nil
}

func (m previewModel) Init() tea.Cmd {
	return nil
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "+", "=", "right":
		if m.width < previewMaxWidth {
			m.width++
			m.refresh()
		}
	case "-", "left":
		if m.width > previewMinWidth {
			m.width--
			m.refresh()
		}
	case "tab", "a":
		m.modeIdx = (m.modeIdx + 1) % len(align.Modes())
		m.refresh()
	}
	return m, nil
}

func (m previewModel) View() string {
	var b strings.Builder

	b.WriteString(styleTitle.Render("Preview " + m.source))
	b.WriteString("\n")
	b.WriteString(styleStatus.Render(fmt.Sprintf("width %d  align %s", m.width, m.mode())))
	b.WriteString("\n")
	b.WriteString(styleHint.Render("+/- width  tab align  q quit"))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(styleError.Render(errors.UserMessage(m.err)))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(styleFrame.Render(strings.TrimSuffix(m.rendered, "\n")))
	b.WriteString("\n")
	return b.String()
}
