package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coregx/rexspan/internal/luahost"
)

func newScriptCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "script <file.lua>",
		Short: "Run a Lua script with the regexp2 class available",
		Long: `Run a Lua script in a sandboxed state where the global regexp2 class
compiles patterns with the configured backend.

  local re = regexp2("(a)(b)")
  for _, s in ipairs(re:capture("xab", 1)) do print(s.begin, s["end"]) end
  print(re:search("xab").begin)

Examples:
  rexspan script check.lua
  rexspan script check.lua --backend re2`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			state := luahost.NewState(
				luahost.WithOutput(a.out),
				luahost.WithPatternConfig(a.patternConfig()),
				luahost.WithStateLogger(a.logger),
			)
			defer state.Close()

			a.logger.Infof("running script %s", args[0])
			if err := state.DoFile(a.fs, args[0]); err != nil {
				return fmt.Errorf("script %s: %w", args[0], err)
			}
			return nil
		},
	}
}
