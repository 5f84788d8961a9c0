package cmd

import (
	"github.com/spf13/cobra"
)

func newMatchCmd(a *app) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "match <pattern> [input]",
		Short: "Report whether the whole input matches the pattern",
		Long: `Report whether the entire input matches the pattern, anchored at both
ends. Prints true or false and exits with status 1 on false.

Examples:
  rexspan match 'a+' aaa
  rexspan match '\d{3}-\d{4}' --file number.txt`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.compile(args[0])
			if err != nil {
				return err
			}
			defer p.Close()

			input, err := a.readInput(args[1:], file)
			if err != nil {
				return err
			}

			ok, err := p.Match(input)
			if err != nil {
				return err
			}
			if err := a.printer().match(ok); err != nil {
				return err
			}
			if !ok {
				return ErrNoMatch
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "read input from file instead of stdin")
	return cmd
}
