package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/timeaxis/pkg/core/render/axis"
	"github.com/matzehuels/timeaxis/pkg/core/render/axis/sink"
	"github.com/matzehuels/timeaxis/pkg/errors"
	"github.com/matzehuels/timeaxis/pkg/pipeline"
)

const (
	exploreMinWidth  = 20
	exploreMaxPoints = 200
)

var exploreHelpStyle = lipgloss.NewStyle().Foreground(colorDim)

// exploreCommand opens an interactive view of an axis.
func (c *CLI) exploreCommand() *cobra.Command {
	var flags axisFlags

	cmd := &cobra.Command{
		Use:   "explore",
		Short: "Interactively explore the ticks of an axis",
		Long: `Show the axis as a terminal ruler that follows the window width.

Keys: + and - change the key point budget, t toggles the tick table, q quits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options()
			if err != nil {
				return err
			}
			runner, err := c.newRunner(flags.noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			m, err := newExploreModel(cmd.Context(), runner, opts)
			if err != nil {
				return err
			}
			_, err = tea.NewProgram(m, tea.WithContext(cmd.Context()), tea.WithAltScreen()).Run()
			return err
		},
	}

	flags.bind(cmd, pipeline.KindDateTime)
	return cmd
}

// exploreModel is the bubbletea model of the explore view. The layout is
// recomputed whenever the width or the budget changes.
type exploreModel struct {
	ctx       context.Context
	runner    *pipeline.Runner
	opts      pipeline.Options
	width     int
	showTable bool
	layout    axis.Layout
	err       error
}

func newExploreModel(ctx context.Context, runner *pipeline.Runner, opts pipeline.Options) (exploreModel, error) {
	m := exploreModel{ctx: ctx, runner: runner, opts: opts, width: pipeline.DefaultColumns}
	m = m.relayout()
	return m, m.err
}

func (m exploreModel) Init() tea.Cmd {
	return nil
}

func (m exploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "+", "=", "right", "l":
			if m.opts.MaxPoints < exploreMaxPoints {
				m.opts.MaxPoints++
				m = m.relayout()
			}
		case "-", "left", "h":
			if m.opts.MaxPoints > 1 {
				m.opts.MaxPoints--
				m = m.relayout()
			}
		case "t":
			m.showTable = !m.showTable
		}
	case tea.WindowSizeMsg:
		m.width = max(msg.Width, exploreMinWidth)
		m = m.relayout()
	}
	return m, nil
}

// relayout maps the axis onto the current terminal width, one pixel per
// column.
func (m exploreModel) relayout() exploreModel {
	opts := m.opts
	opts.Pixels = [2]int{0, m.width - 1}
	m.layout, m.err = m.runner.Layout(m.ctx, opts)
	return m
}

func (m exploreModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(fmt.Sprintf("%s axis", m.opts.Kind)))
	b.WriteString(StyleDim.Render(fmt.Sprintf("  %s → %s", m.opts.Begin, m.opts.End)))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(StyleWarning.Render(errors.UserMessage(m.err)))
		b.WriteString("\n")
	} else {
		b.WriteString(sink.RenderText(m.layout, m.width))
		b.WriteString("\n\n")
		b.WriteString(tickSummary(m.layout, false))
		b.WriteString("\n")
		if m.showTable && len(m.layout.Ticks) > 0 {
			b.WriteString(tickTable(m.layout))
			b.WriteString("\n")
		}
	}

	format := "auto"
	if m.opts.LabelFormat != "" {
		format = axis.Describe(m.opts.LabelFormat)
	}
	b.WriteString("\n")
	b.WriteString(exploreHelpStyle.Render(fmt.Sprintf("budget %d · labels %s · +/- budget  t table  q quit", m.opts.MaxPoints, format)))
	return b.String()
}
