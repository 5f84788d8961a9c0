package cmd

import (
	"github.com/spf13/cobra"
)

func newSearchCmd(a *app) *cobra.Command {
	var (
		file   string
		offset int
	)

	cmd := &cobra.Command{
		Use:   "search <pattern> [input]",
		Short: "Print the capture group that begins rightmost",
		Long: `Run one unanchored match starting at --offset and print a single span: the
group whose begin is strictly greater than every group before it, or the
whole match if no group starts after offset 0.

Examples:
  rexspan search '(\w+)=(\w+)' 'set key=value'
  rexspan search '(a)(b)' xab --offset 1 --format json`,
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

			span, ok, err := p.Search(input, offset)
			if err != nil {
				return err
			}

			if err := a.printer().search(input, span, ok); err != nil {
				return err
			}
			if !ok {
				return ErrNoMatch
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "read input from file instead of stdin")
	cmd.Flags().IntVarP(&offset, "offset", "o", 0, "byte offset to start matching at")
	return cmd
}
