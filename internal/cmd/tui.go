package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/coregx/rexspan/internal/ui"
)

func newTUICmd(a *app) *cobra.Command {
	var (
		pattern string
		input   string
	)

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Start the interactive pattern tester",
		Long: `Start an interactive tester: edit the pattern and the input and watch the
capture spans and the search result update as you type.

Keys:
  tab        switch between pattern and input
  ctrl+right move the offset forward
  ctrl+left  move the offset back
  esc        quit

Examples:
  rexspan tui
  rexspan tui --pattern '(\w+)=(\w+)' --input 'set key=value'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			model := ui.NewModel(a.patternConfig())
			model.SetPattern(pattern)
			model.SetInput(input)

			program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithInput(a.in), tea.WithOutput(a.out))
			if _, err := program.Run(); err != nil {
				return fmt.Errorf("TUI error: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&pattern, "pattern", "", "initial pattern")
	cmd.Flags().StringVar(&input, "input", "", "initial input")
	return cmd
}
