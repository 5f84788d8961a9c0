package cmd

import (
	"github.com/spf13/cobra"
)

func newCaptureCmd(a *app) *cobra.Command {
	var (
		file   string
		offset int
	)

	cmd := &cobra.Command{
		Use:   "capture <pattern> [input]",
		Short: "Print the span of every capture group",
		Long: `Run one unanchored match starting at --offset and print the span of every
group, group 0 first. Groups that did not take part print {-1,-1}.

Exits with status 1 when the pattern does not match or the offset is past
the end of the input.

Examples:
  rexspan capture '(a)(b)' xab
  rexspan capture '(a)(b)' xab --offset 1 --format json`,
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

			spans, err := p.Capture(input, offset)
			if err != nil {
				return err
			}
			a.logger.Debugf("capture at offset %d: %v", offset, spans)

			if err := a.printer().captures(input, spans); err != nil {
				return err
			}
			if len(spans) == 0 || !spans[0].Matched() {
				return ErrNoMatch
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "read input from file instead of stdin")
	cmd.Flags().IntVarP(&offset, "offset", "o", 0, "byte offset to start matching at")
	return cmd
}
